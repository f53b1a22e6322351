package layout

import (
	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/property"
)

// DataContext returns the binding source inherited from the parent.
func (n *NodeBase) DataContext() any { return property.Get(n.store, n.props.DataContext) }

// SetDataContext sets the binding source. Children observe the change.
func (n *NodeBase) SetDataContext(v any) { property.Set(n.store, n.props.DataContext, v) }

// Style returns the style name. While the property is unset, including
// after Clear, it is the node kind.
func (n *NodeBase) Style() string {
	if !n.store.IsSet(n.props.Style) {
		return n.kind
	}
	return property.Get(n.store, n.props.Style)
}

// SetStyle sets the style name.
func (n *NodeBase) SetStyle(s string) { property.Set(n.store, n.props.Style, s) }

func (n *NodeBase) Background() graphics.Brush { return property.Get(n.store, n.props.Background) }

func (n *NodeBase) SetBackground(b graphics.Brush) { property.Set(n.store, n.props.Background, b) }

func (n *NodeBase) Foreground() graphics.Brush { return property.Get(n.store, n.props.Foreground) }

func (n *NodeBase) SetForeground(b graphics.Brush) { property.Set(n.store, n.props.Foreground, b) }

// RequestedSize returns the explicit size override. NaN axes are automatic.
func (n *NodeBase) RequestedSize() geometry.Size { return property.Get(n.store, n.props.RequestedSize) }

func (n *NodeBase) SetRequestedSize(s geometry.Size) {
	property.Set(n.store, n.props.RequestedSize, s)
}

// SetWidth overrides the requested width only.
func (n *NodeBase) SetWidth(w float64) { n.SetRequestedSize(n.RequestedSize().WithWidth(w)) }

// SetHeight overrides the requested height only.
func (n *NodeBase) SetHeight(h float64) { n.SetRequestedSize(n.RequestedSize().WithHeight(h)) }

func (n *NodeBase) MinSize() geometry.Size { return property.Get(n.store, n.props.MinSize) }

func (n *NodeBase) SetMinSize(s geometry.Size) { property.Set(n.store, n.props.MinSize, s) }

func (n *NodeBase) MaxSize() geometry.Size { return property.Get(n.store, n.props.MaxSize) }

func (n *NodeBase) SetMaxSize(s geometry.Size) { property.Set(n.store, n.props.MaxSize, s) }

func (n *NodeBase) Margin() geometry.Thickness { return property.Get(n.store, n.props.Margin) }

func (n *NodeBase) SetMargin(t geometry.Thickness) { property.Set(n.store, n.props.Margin, t) }

func (n *NodeBase) HorizontalAlignment() HorizontalAlignment {
	return property.Get(n.store, n.props.HorizontalAlignment)
}

func (n *NodeBase) SetHorizontalAlignment(a HorizontalAlignment) {
	property.Set(n.store, n.props.HorizontalAlignment, a)
}

func (n *NodeBase) VerticalAlignment() VerticalAlignment {
	return property.Get(n.store, n.props.VerticalAlignment)
}

func (n *NodeBase) SetVerticalAlignment(a VerticalAlignment) {
	property.Set(n.store, n.props.VerticalAlignment, a)
}
