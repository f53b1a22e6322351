package layout

import (
	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/input"
	"github.com/omnigui/omnigui/pkg/stream"
)

// PointerEvents narrows the platform pointer and scroll streams to the
// inputs that land inside one node. Positions are translated to
// node-relative coordinates. Occlusion by siblings is not considered here.
type PointerEvents struct {
	node   *NodeBase
	input  stream.Subject[input.PointerInput]
	scroll stream.Subject[input.ScrollWheelArgs]
	subs   stream.Group
}

func newPointerEvents(n *NodeBase, src input.EventSource) *PointerEvents {
	pe := &PointerEvents{node: n}
	if src != nil {
		pe.subs.Add(src.Pointer().Listen(pe.handlePointer))
		pe.subs.Add(src.ScrollWheel().Listen(pe.handleScroll))
	}
	return pe
}

func (pe *PointerEvents) toLocal(p geometry.Point) (geometry.Point, bool) {
	if pe.node.IsDetached() {
		return geometry.Point{}, false
	}
	vb := pe.node.VisualBounds()
	if !vb.Contains(p) {
		return geometry.Point{}, false
	}
	d := p.Sub(vb.Point())
	return geometry.Pt(d.X, d.Y), true
}

func (pe *PointerEvents) handlePointer(p input.PointerInput) {
	local, ok := pe.toLocal(p.Point)
	if !ok {
		return
	}
	p.Point = local
	pe.input.Emit(p)
}

func (pe *PointerEvents) handleScroll(a input.ScrollWheelArgs) {
	local, ok := pe.toLocal(a.Point)
	if !ok {
		return
	}
	a.Point = local
	pe.scroll.Emit(a)
}

// Input emits every pointer input inside the node.
func (pe *PointerEvents) Input() stream.Stream[input.PointerInput] { return &pe.input }

// Down emits primary button presses inside the node.
func (pe *PointerEvents) Down() stream.Stream[input.PointerInput] {
	return pe.withStatus(input.PointerDown)
}

// Up emits primary button releases inside the node.
func (pe *PointerEvents) Up() stream.Stream[input.PointerInput] {
	return pe.withStatus(input.PointerUp)
}

// Move emits motion inside the node.
func (pe *PointerEvents) Move() stream.Stream[input.PointerInput] {
	return pe.withStatus(input.PointerMoved)
}

func (pe *PointerEvents) withStatus(status input.PointerStatus) stream.Stream[input.PointerInput] {
	return stream.Filter[input.PointerInput](&pe.input, func(p input.PointerInput) bool {
		return p.PrimaryButtonStatus == status
	})
}

// Scroll emits scroll deltas whose position is inside the node.
func (pe *PointerEvents) Scroll() stream.Stream[input.ScrollWheelArgs] { return &pe.scroll }

// Close releases the subscriptions on the platform source.
func (pe *PointerEvents) Close() { pe.subs.Cancel() }

// KeyboardEvents forwards key presses and composed text to one node while
// it holds focus.
type KeyboardEvents struct {
	node  *NodeBase
	focus *input.Focus
	keys  stream.Subject[input.KeyArgs]
	text  stream.Subject[input.TextInputArgs]
	subs  stream.Group
}

func newKeyboardEvents(n *NodeBase, src input.EventSource, focus *input.Focus) *KeyboardEvents {
	ke := &KeyboardEvents{node: n, focus: focus}
	if src != nil && focus != nil {
		ke.subs.Add(src.KeyInput().Listen(func(k input.KeyArgs) {
			if ke.focused() {
				ke.keys.Emit(k)
			}
		}))
		ke.subs.Add(src.TextInput().Listen(func(t input.TextInputArgs) {
			if ke.focused() {
				ke.text.Emit(t)
			}
		}))
	}
	return ke
}

func (ke *KeyboardEvents) focused() bool {
	return ke.focus.Has(ke.node.self) && !ke.node.IsDetached()
}

// KeyInput emits key presses while the node is focused.
func (ke *KeyboardEvents) KeyInput() stream.Stream[input.KeyArgs] { return &ke.keys }

// TextInput emits composed text while the node is focused.
func (ke *KeyboardEvents) TextInput() stream.Stream[input.TextInputArgs] { return &ke.text }

// Close releases the subscriptions on the platform source.
func (ke *KeyboardEvents) Close() { ke.subs.Cancel() }
