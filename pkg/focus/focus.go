// Package focus moves keyboard focus between the focusable nodes of a
// tree, in tree order or by screen direction.
package focus

import (
	"math"

	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/input"
	"github.com/omnigui/omnigui/pkg/layout"
)

// Focusable is implemented by nodes that take part in traversal.
type Focusable interface {
	layout.Node
	Focusable() bool
}

// Direction indicates the focus traversal direction.
type Direction int

const (
	// DirectionUp moves focus upward.
	DirectionUp Direction = iota

	// DirectionDown moves focus downward.
	DirectionDown

	// DirectionLeft moves focus leftward.
	DirectionLeft

	// DirectionRight moves focus rightward.
	DirectionRight
)

// Candidates returns the focusable nodes under root in tree order.
func Candidates(root layout.Node) []layout.Node {
	var nodes []layout.Node
	layout.Walk(root, func(n layout.Node) bool {
		if f, ok := n.(Focusable); ok && f.Focusable() {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

func focusRef(root layout.Node) *input.Focus {
	p := root.Base().Platform()
	if p == nil || p.Surface == nil {
		return nil
	}
	return p.Surface.FocusedElement()
}

func indexOf(nodes []layout.Node, target any) int {
	for i, n := range nodes {
		if target != nil && any(n) == target {
			return i
		}
	}
	return -1
}

// Move moves focus delta positions through Candidates(root), wrapping at
// either end. With nothing focused, Move(1) focuses the first candidate
// and Move(-1) the last. It reports whether focus moved.
func Move(root layout.Node, delta int) bool {
	ref := focusRef(root)
	nodes := Candidates(root)
	if ref == nil || len(nodes) == 0 || delta == 0 {
		return false
	}

	var next int
	switch current := indexOf(nodes, ref.Current()); {
	case current >= 0:
		next = wrapIndex(current+delta, len(nodes))
		if next == current {
			return false
		}
	case delta > 0:
		next = 0
	default:
		next = len(nodes) - 1
	}
	nodes[next].Base().RequestFocus()
	return true
}

// MoveInDirection focuses the candidate nearest to the focused node in
// direction, scoring by distance between VisualBounds centers with
// cross-axis distance weighted double. Without a focused node it focuses
// the first candidate; without a candidate in direction it falls back to
// Move.
func MoveInDirection(root layout.Node, direction Direction) bool {
	ref := focusRef(root)
	nodes := Candidates(root)
	if ref == nil || len(nodes) == 0 {
		return false
	}

	i := indexOf(nodes, ref.Current())
	if i < 0 {
		nodes[0].Base().RequestFocus()
		return true
	}
	source := nodes[i].Base().VisualBounds()
	if source.IsEmpty() {
		return Move(root, linearDelta(direction))
	}

	var best layout.Node
	bestScore := math.MaxFloat64
	for j, n := range nodes {
		if j == i {
			continue
		}
		target := n.Base().VisualBounds()
		if target.IsEmpty() || !isInDirection(source, target, direction) {
			continue
		}
		if score := directionalScore(source, target, direction); score < bestScore {
			bestScore = score
			best = n
		}
	}

	if best == nil {
		return Move(root, linearDelta(direction))
	}
	best.Base().RequestFocus()
	return true
}

// Attach binds Tab and Shift+Tab to Move, and Ctrl with an arrow key to
// MoveInDirection, on root's platform event source. The bindings end
// when cancel is called or root is closed.
func Attach(root layout.Node) (cancel func()) {
	src := root.Base().Platform().Events
	if src == nil {
		return func() {}
	}
	cancel = src.KeyInput().Listen(func(k input.KeyArgs) {
		switch k.Key {
		case input.KeyTab:
			if k.Modifiers&input.ModShift != 0 {
				Move(root, -1)
			} else {
				Move(root, 1)
			}
		case input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight:
			if k.Modifiers&input.ModCtrl != 0 {
				MoveInDirection(root, arrowDirection[k.Key])
			}
		}
	})
	root.Base().Track(cancel)
	return cancel
}

var arrowDirection = map[input.Key]Direction{
	input.KeyUp:    DirectionUp,
	input.KeyDown:  DirectionDown,
	input.KeyLeft:  DirectionLeft,
	input.KeyRight: DirectionRight,
}

func linearDelta(direction Direction) int {
	if direction == DirectionUp || direction == DirectionLeft {
		return -1
	}
	return 1
}

func isInDirection(source, target geometry.Rect, direction Direction) bool {
	s, t := source.Center(), target.Center()
	switch direction {
	case DirectionUp:
		return t.Y < s.Y
	case DirectionDown:
		return t.Y > s.Y
	case DirectionLeft:
		return t.X < s.X
	case DirectionRight:
		return t.X > s.X
	}
	return false
}

// directionalScore is lower for closer, better aligned targets.
func directionalScore(source, target geometry.Rect, direction Direction) float64 {
	s, t := source.Center(), target.Center()

	var primaryDist, crossDist float64
	switch direction {
	case DirectionUp, DirectionDown:
		primaryDist = math.Abs(t.Y - s.Y)
		crossDist = math.Abs(t.X - s.X)
	case DirectionLeft, DirectionRight:
		primaryDist = math.Abs(t.X - s.X)
		crossDist = math.Abs(t.Y - s.Y)
	}
	return primaryDist + crossDist*2
}

func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
