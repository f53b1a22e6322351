package layout

import (
	"math"

	"github.com/omnigui/omnigui/pkg/errors"
	"github.com/omnigui/omnigui/pkg/geometry"
)

// Measure computes DesiredSize for the available size. A NaN or negative
// available component fails with an invalid-argument error; a result that
// is negative, infinite or NaN after all clamping fails with an invariant
// error. On failure DesiredSize keeps its previous value.
func (n *NodeBase) Measure(available geometry.Size) error {
	n.mustInit("layout.Measure")
	if available.HasNaN() {
		return n.layoutError("Measure", errors.KindInvalidArgument, available, "available size has a NaN component")
	}
	if available.Width < 0 || available.Height < 0 {
		return n.layoutError("Measure", errors.KindInvalidArgument, available, "available size is negative")
	}

	margin := n.Margin()
	constrained := n.applyConstraints(available.Deflate(margin))

	measured, err := n.self.MeasureOverride(constrained)
	if err != nil {
		return err
	}

	requested := n.RequestedSize()
	minSize, maxSize := n.MinSize(), n.MaxSize()

	width := measured.Width
	if !math.IsNaN(requested.Width) {
		width = requested.Width
	}
	width = math.Max(math.Min(width, maxSize.Width), minSize.Width)

	height := measured.Height
	if !math.IsNaN(requested.Height) {
		height = requested.Height
	}
	height = math.Max(math.Min(height, maxSize.Height), minSize.Height)

	desired := geometry.Sz(width, height).
		Inflate(margin).
		NonNegative().
		Constrain(available)

	if !desired.IsFinite() {
		return n.layoutError("Measure", errors.KindInvariant, desired, "measured size is negative, infinite or NaN")
	}

	n.desired = desired
	n.measured = true
	return nil
}

// MeasureOverride measures every child with the same available size and
// returns the largest desired width and height among them.
func (n *NodeBase) MeasureOverride(available geometry.Size) (geometry.Size, error) {
	var width, height float64
	for child := range n.children.All() {
		if err := child.Measure(available); err != nil {
			return geometry.Size{}, err
		}
		desired := child.Base().DesiredSize()
		width = math.Max(width, desired.Width)
		height = math.Max(height, desired.Height)
	}
	return geometry.Sz(width, height), nil
}

// minMax folds RequestedSize into the min/max limits: an explicit size,
// clamped into [Min, Max], becomes both bounds on its axis.
func (n *NodeBase) minMax() (minSize, maxSize geometry.Size) {
	requested := n.RequestedSize()
	lo, hi := n.MinSize(), n.MaxSize()
	minSize.Width, maxSize.Width = axisMinMax(requested.Width, lo.Width, hi.Width)
	minSize.Height, maxSize.Height = axisMinMax(requested.Height, lo.Height, hi.Height)
	return minSize, maxSize
}

func axisMinMax(requested, lo, hi float64) (float64, float64) {
	limit := requested
	if math.IsNaN(limit) {
		limit = math.Inf(1)
	}
	hi = math.Max(math.Min(limit, hi), lo)

	floor := requested
	if math.IsNaN(floor) {
		floor = 0
	}
	lo = math.Max(math.Min(hi, floor), lo)
	return lo, hi
}

// applyConstraints clamps size into the node's min/max limits.
func (n *NodeBase) applyConstraints(size geometry.Size) geometry.Size {
	lo, hi := n.minMax()
	return geometry.Size{
		Width:  clamp(size.Width, lo.Width, hi.Width),
		Height: clamp(size.Height, lo.Height, hi.Height),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (n *NodeBase) layoutError(op string, kind errors.ErrorKind, value any, reason string) error {
	return &errors.LayoutError{Op: op, Kind: kind, Node: n.kind, Value: value, Reason: reason}
}
