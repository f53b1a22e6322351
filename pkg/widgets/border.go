package widgets

import (
	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/layout"
	"github.com/omnigui/omnigui/pkg/property"
)

// Border decorates a single child with a background, an edge of
// BorderThickness painted with BorderBrush, and inner Padding.
type Border struct {
	layout.NodeBase
	kit *Kit
}

// NewBorder creates a Border around child. child may be nil.
func NewBorder(k *Kit, child layout.Node) *Border {
	b := &Border{kit: k}
	b.Init(k.Platform, b)
	b.NotifyRenderAffectedBy(k.BorderBrush, k.BorderThickness, k.Padding)
	if child != nil {
		b.SetChild(child)
	}
	return b
}

// Child returns the decorated node, or nil.
func (b *Border) Child() layout.Node {
	if b.Children().Len() == 0 {
		return nil
	}
	return b.Children().At(0)
}

// SetChild replaces the decorated node. nil removes it.
func (b *Border) SetChild(child layout.Node) {
	b.Children().Clear()
	if child != nil {
		b.Children().Add(child)
	}
}

func (b *Border) BorderBrush() graphics.Brush {
	return property.Get(b.Properties(), b.kit.BorderBrush)
}

func (b *Border) SetBorderBrush(v graphics.Brush) {
	property.Set(b.Properties(), b.kit.BorderBrush, v)
}

func (b *Border) BorderThickness() geometry.Thickness {
	return property.Get(b.Properties(), b.kit.BorderThickness)
}

func (b *Border) SetBorderThickness(v geometry.Thickness) {
	property.Set(b.Properties(), b.kit.BorderThickness, v)
}

func (b *Border) Padding() geometry.Thickness {
	return property.Get(b.Properties(), b.kit.Padding)
}

func (b *Border) SetPadding(v geometry.Thickness) {
	property.Set(b.Properties(), b.kit.Padding, v)
}

// inset is the combined border and padding thickness.
func (b *Border) inset() geometry.Thickness {
	t, p := b.BorderThickness(), b.Padding()
	return geometry.Thickness{
		Left:   t.Left + p.Left,
		Top:    t.Top + p.Top,
		Right:  t.Right + p.Right,
		Bottom: t.Bottom + p.Bottom,
	}
}

// MeasureOverride implements layout.Node.
func (b *Border) MeasureOverride(available geometry.Size) (geometry.Size, error) {
	inset := b.inset()
	child := b.Child()
	if child == nil {
		return geometry.SizeZero.Inflate(inset), nil
	}
	if err := child.Measure(available.Deflate(inset)); err != nil {
		return geometry.Size{}, err
	}
	return child.Base().DesiredSize().Inflate(inset), nil
}

// ArrangeOverride implements layout.Node.
func (b *Border) ArrangeOverride(final geometry.Size) (geometry.Size, error) {
	if child := b.Child(); child != nil {
		inner := geometry.RectFromSize(final).Deflate(b.inset())
		if err := child.Arrange(inner); err != nil {
			return geometry.Size{}, err
		}
	}
	return final, nil
}

// Render implements layout.Node.
func (b *Border) Render(dc graphics.DrawingContext) {
	fillBackground(&b.NodeBase, dc)
	b.NodeBase.Render(dc)

	brush := b.BorderBrush()
	t := b.BorderThickness()
	if !brush.IsVisible() || t.IsZero() {
		return
	}
	r := b.VisualBounds()
	edges := []geometry.Rect{
		geometry.RectFromXYWH(r.X, r.Y, r.Width, t.Top),
		geometry.RectFromXYWH(r.X, r.Bottom()-t.Bottom, r.Width, t.Bottom),
		geometry.RectFromXYWH(r.X, r.Y+t.Top, t.Left, r.Height-t.Top-t.Bottom),
		geometry.RectFromXYWH(r.Right()-t.Right, r.Y+t.Top, t.Right, r.Height-t.Top-t.Bottom),
	}
	for _, e := range edges {
		if !e.IsEmpty() {
			dc.DrawRectangle(e, brush, graphics.Pen{})
		}
	}
}
