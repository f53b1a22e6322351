// Package terminal hosts node trees in a character-cell terminal through
// tcell. One layout unit is one cell.
package terminal

import (
	"image"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
)

// Box drawing runes used for pens.
const (
	runeHorizontal  = '─'
	runeVertical    = '│'
	runeTopLeft     = '┌'
	runeTopRight    = '┐'
	runeBottomLeft  = '└'
	runeBottomRight = '┘'
)

// Canvas is a graphics.DrawingContext that writes screen cells.
type Canvas struct {
	screen tcell.Screen
}

// NewCanvas draws onto screen. The caller owns Show.
func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{screen: screen}
}

func toTcell(c graphics.Color) tcell.Color {
	r, g, b, _ := c.Components()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// cells converts a layout rectangle to a half-open cell range clipped to
// the screen.
func (c *Canvas) cells(rect geometry.Rect) (x0, y0, x1, y1 int) {
	w, h := c.screen.Size()
	x0 = max(0, int(math.Round(rect.X)))
	y0 = max(0, int(math.Round(rect.Y)))
	x1 = min(w, int(math.Round(rect.Right())))
	y1 = min(h, int(math.Round(rect.Bottom())))
	return x0, y0, x1, y1
}

func (c *Canvas) style(x, y int) tcell.Style {
	_, _, style, _ := c.screen.GetContent(x, y)
	return style
}

// DrawRectangle implements graphics.DrawingContext. The brush sets cell
// backgrounds; a visible pen outlines the rectangle with box runes.
func (c *Canvas) DrawRectangle(rect geometry.Rect, brush graphics.Brush, pen graphics.Pen) {
	x0, y0, x1, y1 := c.cells(rect)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	if brush.IsVisible() {
		bg := toTcell(brush.Color)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				c.screen.SetContent(x, y, ' ', nil, c.style(x, y).Background(bg))
			}
		}
	}
	if !pen.Brush.IsVisible() || pen.Thickness <= 0 || x1-x0 < 2 || y1-y0 < 2 {
		return
	}
	fg := toTcell(pen.Brush.Color)
	put := func(x, y int, r rune) {
		c.screen.SetContent(x, y, r, nil, c.style(x, y).Foreground(fg))
	}
	for x := x0 + 1; x < x1-1; x++ {
		put(x, y0, runeHorizontal)
		put(x, y1-1, runeHorizontal)
	}
	for y := y0 + 1; y < y1-1; y++ {
		put(x0, y, runeVertical)
		put(x1-1, y, runeVertical)
	}
	put(x0, y0, runeTopLeft)
	put(x1-1, y0, runeTopRight)
	put(x0, y1-1, runeBottomLeft)
	put(x1-1, y1-1, runeBottomRight)
}

// DrawText implements graphics.DrawingContext. Wide runes advance two
// cells; zero-width runes are dropped.
func (c *Canvas) DrawText(position geometry.Point, run graphics.TextRun, brush graphics.Brush) {
	if !brush.IsVisible() {
		return
	}
	w, h := c.screen.Size()
	fg := toTcell(brush.Color)
	top := int(math.Round(position.Y))
	for i, line := range strings.Split(run.Text, "\n") {
		y := top + i
		if y < 0 || y >= h {
			continue
		}
		x := int(math.Round(position.X))
		for _, r := range line {
			width := runewidth.RuneWidth(r)
			if width == 0 {
				continue
			}
			if x >= 0 && x+width <= w {
				c.screen.SetContent(x, y, r, nil, c.style(x, y).Foreground(fg))
			}
			x += width
		}
	}
}

// DrawImage implements graphics.DrawingContext by sampling one pixel per
// cell into the cell background.
func (c *Canvas) DrawImage(rect geometry.Rect, img image.Image) {
	bounds := img.Bounds()
	x0, y0, x1, y1 := c.cells(rect)
	if bounds.Empty() || x0 >= x1 || y0 >= y1 {
		return
	}
	for y := y0; y < y1; y++ {
		v := (float64(y) + 0.5 - rect.Y) / rect.Height
		sy := bounds.Min.Y + min(bounds.Dy()-1, int(v*float64(bounds.Dy())))
		for x := x0; x < x1; x++ {
			u := (float64(x) + 0.5 - rect.X) / rect.Width
			sx := bounds.Min.X + min(bounds.Dx()-1, int(u*float64(bounds.Dx())))
			col := graphics.FromColor(img.At(sx, sy))
			if col.IsTransparent() {
				continue
			}
			c.screen.SetContent(x, y, ' ', nil, c.style(x, y).Background(toTcell(col)))
		}
	}
}

// CellMeasurer measures text in terminal cells using East Asian width
// rules.
type CellMeasurer struct{}

// MeasureText implements graphics.TextMeasurer.
func (CellMeasurer) MeasureText(run graphics.TextRun) geometry.Size {
	if run.Text == "" {
		return geometry.SizeZero
	}
	lines := strings.Split(run.Text, "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, runewidth.StringWidth(line))
	}
	return geometry.Sz(float64(widest), float64(len(lines)))
}
