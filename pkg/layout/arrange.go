package layout

import (
	"math"

	"github.com/omnigui/omnigui/pkg/errors"
	"github.com/omnigui/omnigui/pkg/geometry"
)

// Arrange places the node inside finalRect, given in parent-relative
// coordinates, and stores the result as Bounds. A rectangle with negative,
// infinite or NaN components fails with an invalid-argument error and
// leaves Bounds unchanged.
func (n *NodeBase) Arrange(finalRect geometry.Rect) error {
	n.mustInit("layout.Arrange")
	if !finalRect.IsValid() {
		return n.layoutError("Arrange", errors.KindInvalidArgument, finalRect, "rectangle is negative, infinite or NaN")
	}

	margin := n.Margin()
	originX := finalRect.X + margin.Left
	originY := finalRect.Y + margin.Top
	available := finalRect.Size().Deflate(margin)

	halign := n.HorizontalAlignment()
	valign := n.VerticalAlignment()
	size := available

	if halign != HorizontalStretch {
		size.Width = math.Min(size.Width, n.desired.Width-margin.Horizontal())
	}
	if valign != VerticalStretch {
		size.Height = math.Min(size.Height, n.desired.Height-margin.Vertical())
	}

	size = n.applyConstraints(size)

	arranged, err := n.self.ArrangeOverride(size)
	if err != nil {
		return err
	}
	size = arranged.Constrain(size)

	switch halign {
	case HorizontalCenter, HorizontalStretch:
		originX += (available.Width - size.Width) / 2
	case HorizontalRight:
		originX += available.Width - size.Width
	}

	switch valign {
	case VerticalCenter, VerticalStretch:
		originY += (available.Height - size.Height) / 2
	case VerticalBottom:
		originY += available.Height - size.Height
	}

	bounds := geometry.RectFromXYWH(originX, originY, size.Width, size.Height)
	if !bounds.IsValid() {
		return n.layoutError("Arrange", errors.KindInvariant, bounds, "arranged bounds are negative, infinite or NaN")
	}

	n.bounds = bounds
	n.arranged = true
	return nil
}

// ArrangeOverride arranges every child into the full final size, anchored
// at this node's origin.
func (n *NodeBase) ArrangeOverride(final geometry.Size) (geometry.Size, error) {
	for child := range n.children.All() {
		if err := child.Arrange(geometry.RectFromSize(final)); err != nil {
			return geometry.Size{}, err
		}
	}
	return final, nil
}
