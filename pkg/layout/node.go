package layout

import (
	"reflect"

	"github.com/omnigui/omnigui/pkg/errors"
	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/property"
	"github.com/omnigui/omnigui/pkg/stream"
)

// Node is an element of the layout tree. Every implementation embeds
// NodeBase, which supplies all methods except the ones a kind overrides.
type Node interface {
	// Base returns the embedded NodeBase.
	Base() *NodeBase

	// Measure computes DesiredSize for the given available size.
	Measure(available geometry.Size) error
	// Arrange places the node inside finalRect and stores Bounds.
	Arrange(finalRect geometry.Rect) error
	// Render draws the node and its children.
	Render(dc graphics.DrawingContext)

	// MeasureOverride is the kind-specific sizing step. The available size
	// has already had margins and min/max constraints applied.
	MeasureOverride(available geometry.Size) (geometry.Size, error)
	// ArrangeOverride is the kind-specific placement step. It returns the
	// size actually used.
	ArrangeOverride(final geometry.Size) (geometry.Size, error)
}

// NodeBase provides base behavior for nodes.
type NodeBase struct {
	self     Node
	kind     string
	platform *Platform
	props    *Properties
	store    *property.Store

	parent   Node
	children *Children
	detached bool

	desired  geometry.Size
	bounds   geometry.Rect
	measured bool
	arranged bool

	pointer  *PointerEvents
	keyboard *KeyboardEvents
	subs     stream.Group
	closed   bool
}

// Init wires the base to its concrete node and platform. It must be
// called exactly once, before the node is used.
func (n *NodeBase) Init(p *Platform, self Node) {
	if n.platform != nil {
		errors.Panicf("layout.Init", "node %s initialized twice", n.kind)
	}
	if p == nil || self == nil || self.Base() != n {
		errors.Panicf("layout.Init", "Init requires a platform and the node embedding this base")
	}
	n.self = self
	n.kind = kindName(self)
	n.platform = p
	n.props = p.Props
	n.store = property.NewStore(p.Registry)
	n.children = newChildren(n)

	n.pointer = newPointerEvents(n, p.Events)
	n.keyboard = newKeyboardEvents(n, p.Events, p.focus())

	n.NotifyRenderAffectedBy(n.props.Background, n.props.Foreground)
	n.NotifyRenderAffectedBy(n.props.Layout()...)
}

func kindName(self Node) string {
	t := reflect.TypeOf(self)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func (n *NodeBase) mustInit(op string) {
	if n.platform == nil {
		errors.Panicf(op, "node used before Init")
	}
}

// Base implements Node.
func (n *NodeBase) Base() *NodeBase { return n }

// Self returns the concrete node embedding this base.
func (n *NodeBase) Self() Node { return n.self }

// Kind returns the concrete type name of the node.
func (n *NodeBase) Kind() string { return n.kind }

// Platform returns the platform the node was created with.
func (n *NodeBase) Platform() *Platform { return n.platform }

// Properties returns the node's property store.
func (n *NodeBase) Properties() *property.Store { return n.store }

// Parent returns the owning node, or nil for a root.
func (n *NodeBase) Parent() Node { return n.parent }

// Children returns the owned child list.
func (n *NodeBase) Children() *Children {
	n.mustInit("layout.Children")
	return n.children
}

// DesiredSize returns the result of the last successful Measure.
func (n *NodeBase) DesiredSize() geometry.Size { return n.desired }

// Bounds returns the parent-relative result of the last successful Arrange.
func (n *NodeBase) Bounds() geometry.Rect { return n.bounds }

// IsMeasured reports whether Measure has completed at least once.
func (n *NodeBase) IsMeasured() bool { return n.measured }

// IsArranged reports whether Arrange has completed at least once.
func (n *NodeBase) IsArranged() bool { return n.arranged }

// VisualBounds returns Bounds in root-relative coordinates, accumulated
// from every ancestor's Bounds on each call.
func (n *NodeBase) VisualBounds() geometry.Rect {
	if n.parent == nil {
		return n.bounds
	}
	origin := n.parent.Base().VisualBounds().Point().Offset(n.bounds.Point())
	return geometry.RectFromPointSize(origin, n.bounds.Size())
}

// IsDetached reports whether the node's subtree was removed from a parent
// and not added anywhere since. Detached subtrees receive no pointer or
// keyboard input.
func (n *NodeBase) IsDetached() bool {
	top := n
	for top.parent != nil {
		top = top.parent.Base()
	}
	return top.detached
}

// Pointer returns the node's hit-tested pointer streams.
func (n *NodeBase) Pointer() *PointerEvents { return n.pointer }

// Keyboard returns the node's focus-gated keyboard streams.
func (n *NodeBase) Keyboard() *KeyboardEvents { return n.keyboard }

// RequestFocus makes this node the focused element.
func (n *NodeBase) RequestFocus() {
	if f := n.platform.focus(); f != nil {
		f.Set(n.self)
	}
}

// IsFocused reports whether this node holds focus.
func (n *NodeBase) IsFocused() bool {
	f := n.platform.focus()
	return f != nil && f.Has(n.self)
}

// Close releases every subscription the node and its descendants hold on
// the platform event source and render surface, and gives up focus. A
// closed node no longer receives input.
func (n *NodeBase) Close() {
	if n.closed || n.platform == nil {
		return
	}
	n.closed = true
	for child := range n.children.All() {
		child.Base().Close()
	}
	n.pointer.Close()
	n.keyboard.Close()
	n.subs.Cancel()
	if f := n.platform.focus(); f != nil {
		f.Release(n.self)
	}
}

// NotifyRenderAffectedBy requests a render from the surface whenever any
// of the given properties changes. The returned function removes the
// subscriptions early; otherwise they live until Close.
func (n *NodeBase) NotifyRenderAffectedBy(descs ...property.Descriptor) (cancel func()) {
	var group stream.Group
	for _, d := range descs {
		group.Add(n.store.ChangedAny(d).Listen(func(any) { n.InvalidateRender() }))
	}
	n.subs.Add(group.Cancel)
	return group.Cancel
}

// Track ties cancel to the node's lifetime. It runs on Close.
func (n *NodeBase) Track(cancel func()) {
	n.subs.Add(cancel)
}

// InvalidateRender asks the render surface for a new frame.
func (n *NodeBase) InvalidateRender() {
	if n.platform != nil && n.platform.Surface != nil {
		n.platform.Surface.ForceRender()
	}
}

// Render draws each child in collection order. Kinds that paint their own
// content override Render and call NodeBase.Render for the children.
func (n *NodeBase) Render(dc graphics.DrawingContext) {
	for child := range n.children.All() {
		child.Render(dc)
	}
}
