package raster

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
)

// FaceMeasurer measures text with a font face. The zero value uses
// basicfont.Face7x13, the face Canvas draws with.
type FaceMeasurer struct {
	Face font.Face
}

// MeasureText implements graphics.TextMeasurer.
func (m FaceMeasurer) MeasureText(run graphics.TextRun) geometry.Size {
	if run.Text == "" {
		return geometry.SizeZero
	}
	face := m.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	lines := strings.Split(run.Text, "\n")
	widest := 0.0
	for _, line := range lines {
		widest = max(widest, float64(font.MeasureString(face, line))/64)
	}
	lineHeight := float64(face.Metrics().Height) / 64
	return geometry.Sz(widest, float64(len(lines))*lineHeight)
}
