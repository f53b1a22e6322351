// Package property implements per-instance storage of named, typed
// properties with declared defaults and a change stream per property.
//
// Descriptors are registered once into an explicit Registry, then any
// number of Stores created against that registry may hold values for them:
//
//	reg := property.NewRegistry()
//	title := property.Register(reg, "Window", "Title", property.Metadata[string]{DefaultValue: "untitled"})
//
//	s := property.NewStore(reg)
//	property.Changed(s, title).Listen(func(v string) { ... })
//	property.Set(s, title, "hello")
package property

import (
	"fmt"
	"reflect"

	"github.com/omnigui/omnigui/pkg/errors"
)

// Descriptor is the untyped view of a registered property.
type Descriptor interface {
	// Owner returns the owning type name.
	Owner() string
	// Name returns the property name.
	Name() string
	// ValueType returns the declared value type.
	ValueType() reflect.Type
	// DefaultValue returns the declared default.
	DefaultValue() any

	slot() *slot
}

type slot struct {
	registry *Registry
	index    int
	owner    string
	name     string
	typ      reflect.Type
	def      any
}

// Metadata carries per-property registration options.
type Metadata[T any] struct {
	DefaultValue T
}

// Key is a registered property holding values of type T.
type Key[T any] struct {
	s *slot
}

// Owner implements Descriptor.
func (k *Key[T]) Owner() string { return k.s.owner }

// Name implements Descriptor.
func (k *Key[T]) Name() string { return k.s.name }

// ValueType implements Descriptor.
func (k *Key[T]) ValueType() reflect.Type { return k.s.typ }

// DefaultValue implements Descriptor.
func (k *Key[T]) DefaultValue() any { return k.s.def }

// Default returns the typed default.
func (k *Key[T]) Default() T {
	v, _ := k.s.def.(T)
	return v
}

func (k *Key[T]) slot() *slot {
	if k == nil {
		return nil
	}
	return k.s
}

func (k *Key[T]) String() string {
	return k.s.owner + "." + k.s.name
}

type registryKey struct {
	owner string
	name  string
}

// Registry is a table of property descriptors keyed by (owner, name).
// A registry is owned by one initialization context and is not safe for
// concurrent registration.
type Registry struct {
	byKey map[registryKey]Descriptor
	all   []Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[registryKey]Descriptor)}
}

// Register declares a property of type T owned by owner. Registering the
// same (owner, name) twice panics with a *errors.ProgrammingError.
func Register[T any](r *Registry, owner, name string, meta Metadata[T]) *Key[T] {
	if r == nil {
		errors.Panicf("property.Register", "nil registry for %s.%s", owner, name)
	}
	k := registryKey{owner: owner, name: name}
	if _, dup := r.byKey[k]; dup {
		errors.Panicf("property.Register", "property %s.%s already registered", owner, name)
	}
	key := &Key[T]{s: &slot{
		registry: r,
		index:    len(r.all),
		owner:    owner,
		name:     name,
		typ:      reflect.TypeFor[T](),
		def:      meta.DefaultValue,
	}}
	r.byKey[k] = key
	r.all = append(r.all, key)
	return key
}

// Lookup finds a registered descriptor.
func (r *Registry) Lookup(owner, name string) (Descriptor, bool) {
	d, ok := r.byKey[registryKey{owner: owner, name: name}]
	return d, ok
}

// Descriptors returns every descriptor in registration order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.all))
	copy(out, r.all)
	return out
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	return len(r.all)
}

func (r *Registry) check(op string, d Descriptor) *slot {
	if d == nil {
		errors.Panicf(op, "nil property descriptor")
	}
	s := d.slot()
	if s == nil {
		errors.Panicf(op, "unregistered property descriptor")
	}
	if s.registry != r {
		errors.Panicf(op, "property %s.%s is not registered in this registry", d.Owner(), d.Name())
	}
	return s
}

func describe(d Descriptor) string {
	return fmt.Sprintf("%s.%s", d.Owner(), d.Name())
}
