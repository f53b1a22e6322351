package layouttest

import (
	"image"

	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
)

// DisplayOp is one recorded drawing call.
type DisplayOp struct {
	Op    string          `json:"op"`
	Rect  *geometry.Rect  `json:"rect,omitempty"`
	Point *geometry.Point `json:"point,omitempty"`
	Text  string          `json:"text,omitempty"`
	Color string          `json:"color,omitempty"`
	Pen   string          `json:"pen,omitempty"`
}

// Recorder is a DrawingContext that records every call.
type Recorder struct {
	Ops []DisplayOp
}

// DrawRectangle implements graphics.DrawingContext.
func (r *Recorder) DrawRectangle(rect geometry.Rect, brush graphics.Brush, pen graphics.Pen) {
	op := DisplayOp{Op: "rect", Rect: &rect, Color: brush.Color.String()}
	if pen.IsVisible() {
		op.Pen = pen.Brush.Color.String()
	}
	r.Ops = append(r.Ops, op)
}

// DrawText implements graphics.DrawingContext.
func (r *Recorder) DrawText(position geometry.Point, run graphics.TextRun, brush graphics.Brush) {
	r.Ops = append(r.Ops, DisplayOp{Op: "text", Point: &position, Text: run.Text, Color: brush.Color.String()})
}

// DrawImage implements graphics.DrawingContext.
func (r *Recorder) DrawImage(rect geometry.Rect, _ image.Image) {
	r.Ops = append(r.Ops, DisplayOp{Op: "image", Rect: &rect})
}

// Reset drops recorded ops.
func (r *Recorder) Reset() { r.Ops = nil }

// Filter returns the ops with the given name.
func (r *Recorder) Filter(op string) []DisplayOp {
	var out []DisplayOp
	for _, o := range r.Ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}
