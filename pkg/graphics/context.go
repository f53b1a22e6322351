// Package graphics defines paint values and the drawing surface that node
// trees render onto.
package graphics

import (
	"image"

	"github.com/omnigui/omnigui/pkg/geometry"
)

// DrawingContext is the drawing surface supplied by a platform. All
// coordinates are absolute, derived from node VisualBounds.
type DrawingContext interface {
	// DrawRectangle fills rect with brush and then strokes it with pen.
	// Either may be invisible.
	DrawRectangle(rect geometry.Rect, brush Brush, pen Pen)
	// DrawText draws run with its top-left corner at position.
	DrawText(position geometry.Point, run TextRun, brush Brush)
	// DrawImage draws img scaled into rect.
	DrawImage(rect geometry.Rect, img image.Image)
}

// TextMeasurer reports the extent of a text run. Text shaping is a
// platform concern; nodes only consume the measured size.
type TextMeasurer interface {
	MeasureText(run TextRun) geometry.Size
}

// FixedMeasurer measures text as a monospace grid: each rune occupies
// Advance pixels horizontally and each line LineHeight pixels.
type FixedMeasurer struct {
	Advance    float64
	LineHeight float64
}

// MeasureText implements TextMeasurer.
func (m FixedMeasurer) MeasureText(run TextRun) geometry.Size {
	lines, widest, current := 1, 0, 0
	for _, r := range run.Text {
		if r == '\n' {
			lines++
			current = 0
			continue
		}
		current++
		widest = max(widest, current)
	}
	if run.Text == "" {
		lines = 0
	}
	return geometry.Size{
		Width:  float64(widest) * m.Advance,
		Height: float64(lines) * m.LineHeight,
	}
}
