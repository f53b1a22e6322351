// Package raster renders node trees into RGBA images with gg.
package raster

import (
	"image"
	"io"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
)

// Canvas is a graphics.DrawingContext backed by a gg context. Layout
// units are multiplied by the canvas scale.
type Canvas struct {
	context *gg.Context
	face    font.Face
	scale   float64
}

// NewCanvas allocates a width x height pixel canvas. A scale of zero or
// less is treated as 1.
func NewCanvas(width, height int, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	c := &Canvas{
		context: gg.NewContext(width, height),
		face:    basicfont.Face7x13,
		scale:   scale,
	}
	c.context.Scale(scale, scale)
	c.context.SetFontFace(c.face)
	return c
}

// Viewport returns the canvas size in layout units.
func (c *Canvas) Viewport() geometry.Size {
	return geometry.Sz(float64(c.context.Width())/c.scale, float64(c.context.Height())/c.scale)
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col graphics.Color) {
	c.context.SetColor(col.NRGBA())
	c.context.Clear()
}

// DrawRectangle implements graphics.DrawingContext.
func (c *Canvas) DrawRectangle(rect geometry.Rect, brush graphics.Brush, pen graphics.Pen) {
	if rect.IsEmpty() {
		return
	}
	if brush.IsVisible() {
		c.context.SetColor(brush.Color.NRGBA())
		c.context.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
		c.context.Fill()
	}
	if pen.Brush.IsVisible() && pen.Thickness > 0 {
		// Stroke inside the rectangle so adjacent nodes do not overlap.
		half := pen.Thickness / 2
		c.context.SetColor(pen.Brush.Color.NRGBA())
		c.context.SetLineWidth(pen.Thickness)
		c.context.DrawRectangle(rect.X+half, rect.Y+half, rect.Width-pen.Thickness, rect.Height-pen.Thickness)
		c.context.Stroke()
	}
}

// DrawText implements graphics.DrawingContext. Text always uses the
// canvas face; FontSize and FontFamily are ignored.
func (c *Canvas) DrawText(position geometry.Point, run graphics.TextRun, brush graphics.Brush) {
	if !brush.IsVisible() || run.Text == "" {
		return
	}
	metrics := c.face.Metrics()
	ascent := float64(metrics.Ascent) / 64
	lineHeight := float64(metrics.Height) / 64

	c.context.SetColor(brush.Color.NRGBA())
	for i, line := range strings.Split(run.Text, "\n") {
		c.context.DrawString(line, position.X, position.Y+ascent+float64(i)*lineHeight)
	}
}

// DrawImage implements graphics.DrawingContext.
func (c *Canvas) DrawImage(rect geometry.Rect, img image.Image) {
	bounds := img.Bounds()
	if rect.IsEmpty() || bounds.Empty() {
		return
	}
	c.context.Push()
	defer c.context.Pop()
	c.context.Translate(rect.X, rect.Y)
	c.context.Scale(rect.Width/float64(bounds.Dx()), rect.Height/float64(bounds.Dy()))
	c.context.DrawImage(img, 0, 0)
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image { return c.context.Image() }

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error { return c.context.SavePNG(path) }

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.context.EncodePNG(w) }
