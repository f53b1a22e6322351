package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/layout"
	"github.com/omnigui/omnigui/pkg/property"
)

// Orientation is the stacking axis of a StackPanel.
type Orientation int

const (
	// Vertical stacks children top to bottom.
	Vertical Orientation = iota
	// Horizontal stacks children left to right.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// ParseOrientation parses "Vertical" or "Horizontal" case-insensitively.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("widgets: unknown orientation %q", s)
}

// StackPanel places children one after another along Orientation,
// separated by Spacing. Each child gets its desired extent on the main
// axis and the panel's full extent on the cross axis.
type StackPanel struct {
	layout.NodeBase
	kit *Kit
}

// NewStackPanel creates a vertical StackPanel holding children.
func NewStackPanel(k *Kit, children ...layout.Node) *StackPanel {
	s := &StackPanel{kit: k}
	s.Init(k.Platform, s)
	s.NotifyRenderAffectedBy(k.Orientation, k.Spacing)
	for _, c := range children {
		s.Children().Add(c)
	}
	return s
}

func (s *StackPanel) Orientation() Orientation {
	return property.Get(s.Properties(), s.kit.Orientation)
}

func (s *StackPanel) SetOrientation(o Orientation) {
	property.Set(s.Properties(), s.kit.Orientation, o)
}

func (s *StackPanel) Spacing() float64 {
	return property.Get(s.Properties(), s.kit.Spacing)
}

func (s *StackPanel) SetSpacing(v float64) {
	property.Set(s.Properties(), s.kit.Spacing, v)
}

func (s *StackPanel) mainAxis(size geometry.Size) float64 {
	if s.Orientation() == Horizontal {
		return size.Width
	}
	return size.Height
}

func (s *StackPanel) crossAxis(size geometry.Size) float64 {
	if s.Orientation() == Horizontal {
		return size.Height
	}
	return size.Width
}

func (s *StackPanel) makeSize(main, cross float64) geometry.Size {
	if s.Orientation() == Horizontal {
		return geometry.Sz(main, cross)
	}
	return geometry.Sz(cross, main)
}

// MeasureOverride implements layout.Node. Children are measured with an
// unbounded main axis.
func (s *StackPanel) MeasureOverride(available geometry.Size) (geometry.Size, error) {
	childAvailable := s.makeSize(math.Inf(1), s.crossAxis(available))
	spacing := s.Spacing()

	var main, cross float64
	n := 0
	for child := range s.Children().All() {
		if err := child.Measure(childAvailable); err != nil {
			return geometry.Size{}, err
		}
		desired := child.Base().DesiredSize()
		if n > 0 {
			main += spacing
		}
		main += s.mainAxis(desired)
		cross = math.Max(cross, s.crossAxis(desired))
		n++
	}
	return s.makeSize(main, cross), nil
}

// ArrangeOverride implements layout.Node.
func (s *StackPanel) ArrangeOverride(final geometry.Size) (geometry.Size, error) {
	spacing := s.Spacing()
	cross := s.crossAxis(final)
	cursor := 0.0
	for child := range s.Children().All() {
		extent := s.mainAxis(child.Base().DesiredSize())
		var slot geometry.Rect
		if s.Orientation() == Horizontal {
			slot = geometry.RectFromXYWH(cursor, 0, extent, cross)
		} else {
			slot = geometry.RectFromXYWH(0, cursor, cross, extent)
		}
		if err := child.Arrange(slot); err != nil {
			return geometry.Size{}, err
		}
		cursor += extent + spacing
	}
	return final, nil
}

// Render implements layout.Node.
func (s *StackPanel) Render(dc graphics.DrawingContext) {
	fillBackground(&s.NodeBase, dc)
	s.NodeBase.Render(dc)
}
