package visualstate

import (
	"fmt"

	"github.com/omnigui/omnigui/pkg/stream"
)

// VisualState is a named list of setters applied together.
type VisualState struct {
	Name    string
	Setters []Setter
}

// Apply runs every setter in order.
func (s VisualState) Apply() {
	for _, setter := range s.Setters {
		setter.Apply()
	}
}

// Group holds mutually exclusive states. At most one is current.
type Group struct {
	states  []VisualState
	current string
	changed stream.Subject[string]
}

// NewGroup creates a group holding states. No state is current until GoTo.
func NewGroup(states ...VisualState) *Group {
	g := &Group{}
	for _, s := range states {
		g.Add(s)
	}
	return g
}

// Add appends a state, replacing any existing state with the same name.
func (g *Group) Add(s VisualState) {
	for i := range g.states {
		if g.states[i].Name == s.Name {
			g.states[i] = s
			return
		}
	}
	g.states = append(g.states, s)
}

// State returns the state with the given name.
func (g *Group) State(name string) (VisualState, bool) {
	for _, s := range g.states {
		if s.Name == name {
			return s, true
		}
	}
	return VisualState{}, false
}

// Names returns the state names in insertion order.
func (g *Group) Names() []string {
	names := make([]string, len(g.states))
	for i, s := range g.states {
		names[i] = s.Name
	}
	return names
}

// GoTo applies the named state's setters and makes it current. Going to
// the current state applies its setters again.
func (g *Group) GoTo(name string) error {
	s, ok := g.State(name)
	if !ok {
		return fmt.Errorf("visualstate: unknown state %q", name)
	}
	s.Apply()
	if g.current != name {
		g.current = name
		g.changed.Emit(name)
	}
	return nil
}

// Current returns the name of the current state, or "".
func (g *Group) Current() string { return g.current }

// Changed emits the new state name after each transition.
func (g *Group) Changed() stream.Stream[string] { return &g.changed }
