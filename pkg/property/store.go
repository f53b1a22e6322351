package property

import (
	"reflect"

	"github.com/omnigui/omnigui/pkg/errors"
	"github.com/omnigui/omnigui/pkg/stream"
)

type entry struct {
	value   any
	set     bool
	changed stream.Subject[any]
}

// Store holds property values for one instance.
type Store struct {
	registry *Registry
	entries  map[int]*entry
}

// NewStore creates an empty store bound to r.
func NewStore(r *Registry) *Store {
	if r == nil {
		errors.Panicf("property.NewStore", "nil registry")
	}
	return &Store{registry: r, entries: make(map[int]*entry)}
}

// Registry returns the registry the store is bound to.
func (s *Store) Registry() *Registry {
	return s.registry
}

func (s *Store) entry(op string, d Descriptor) (*slot, *entry) {
	sl := s.registry.check(op, d)
	e, ok := s.entries[sl.index]
	if !ok {
		e = &entry{}
		s.entries[sl.index] = e
	}
	return sl, e
}

// Get returns the value of key, or its default when never set.
func Get[T any](s *Store, key *Key[T]) T {
	v, _ := s.GetValue(key).(T)
	return v
}

// Set stores value and notifies every listener of key's change stream
// before returning. Every call notifies, even when the value is unchanged.
func Set[T any](s *Store, key *Key[T], value T) {
	s.setValue(s.registry.check("property.Set", key), value)
}

// Changed returns the change stream for key.
func Changed[T any](s *Store, key *Key[T]) stream.Stream[T] {
	return stream.Map(s.ChangedAny(key), func(v any) T {
		typed, _ := v.(T)
		return typed
	})
}

// GetValue is the untyped form of Get.
func (s *Store) GetValue(d Descriptor) any {
	sl := s.registry.check("property.GetValue", d)
	if e, ok := s.entries[sl.index]; ok && e.set {
		return e.value
	}
	return sl.def
}

// SetValue is the untyped form of Set. A value whose dynamic type is not
// assignable to the descriptor's value type panics. A nil value is allowed
// for interface, pointer, map and slice types.
func (s *Store) SetValue(d Descriptor, value any) {
	sl := s.registry.check("property.SetValue", d)
	if value == nil {
		if !nillable(sl.typ) {
			errors.Panicf("property.SetValue", "nil is not a valid %s for %s", sl.typ, describe(d))
		}
		value = reflect.Zero(sl.typ).Interface()
	} else if vt := reflect.TypeOf(value); !vt.AssignableTo(sl.typ) {
		errors.Panicf("property.SetValue", "value of type %s is not assignable to %s (%s)", vt, describe(d), sl.typ)
	}
	s.setValue(sl, value)
}

func (s *Store) setValue(sl *slot, value any) {
	e, ok := s.entries[sl.index]
	if !ok {
		e = &entry{}
		s.entries[sl.index] = e
	}
	e.value = value
	e.set = true
	e.changed.Emit(value)
}

// ChangedAny returns the untyped change stream for d.
func (s *Store) ChangedAny(d Descriptor) stream.Stream[any] {
	_, e := s.entry("property.ChangedAny", d)
	return &e.changed
}

// IsSet reports whether a local value has been stored for d.
func (s *Store) IsSet(d Descriptor) bool {
	sl := s.registry.check("property.IsSet", d)
	e, ok := s.entries[sl.index]
	return ok && e.set
}

// Clear removes the local value for d and notifies listeners with the
// default value.
func (s *Store) Clear(d Descriptor) {
	_, e := s.entry("property.Clear", d)
	e.value = nil
	e.set = false
	e.changed.Emit(d.DefaultValue())
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
