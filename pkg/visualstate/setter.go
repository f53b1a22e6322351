// Package visualstate applies named sets of property values to nodes.
//
// A Setter pairs a target with a value. A VisualState is a named list of
// setters, and a Group switches between states:
//
//	hover := visualstate.VisualState{Name: "hover", Setters: []visualstate.Setter{
//		{Target: visualstate.PropertyTarget(node.Properties(), props.Background), Value: red},
//	}}
//	g := visualstate.NewGroup(normal, hover)
//	err := g.GoTo("hover")
//
// Applying a setter is a plain assignment. There is no type validation
// beyond what the target enforces and no rollback when another state
// activates.
package visualstate

import "github.com/omnigui/omnigui/pkg/property"

// SetterTarget receives the value of a Setter.
type SetterTarget interface {
	Apply(value any)
}

// FuncTarget adapts a function to SetterTarget.
type FuncTarget func(value any)

// Apply implements SetterTarget.
func (f FuncTarget) Apply(value any) { f(value) }

// Setter binds a target to the value it receives when applied.
type Setter struct {
	Target SetterTarget
	Value  any
}

// Apply pushes Value onto Target. Applying the same setter twice leaves
// the target in the same state as applying it once.
func (s Setter) Apply() {
	s.Target.Apply(s.Value)
}

type propertyTarget struct {
	store *property.Store
	desc  property.Descriptor
}

func (t propertyTarget) Apply(value any) {
	t.store.SetValue(t.desc, value)
}

// PropertyTarget returns a target that stores values into desc on store.
// A value of the wrong type panics inside the store.
func PropertyTarget(store *property.Store, desc property.Descriptor) SetterTarget {
	return propertyTarget{store: store, desc: desc}
}

// Set is shorthand for a Setter targeting a typed property.
func Set[T any](store *property.Store, key *property.Key[T], value T) Setter {
	return Setter{Target: PropertyTarget(store, key), Value: value}
}
