package graphics

// Brush is a paint value used to fill shapes and text.
type Brush struct {
	Color Color
}

// SolidBrush returns a brush painting a single color.
func SolidBrush(c Color) Brush {
	return Brush{Color: c}
}

// IsVisible reports whether painting with the brush has any effect.
func (b Brush) IsVisible() bool {
	return !b.Color.IsTransparent()
}

// Pen describes a stroke. The zero Pen draws nothing.
type Pen struct {
	Brush     Brush
	Thickness float64
}

// IsVisible reports whether the pen strokes anything.
func (p Pen) IsVisible() bool {
	return p.Thickness > 0 && p.Brush.IsVisible()
}

// TextRun is a single-style run of text handed to the drawing context.
type TextRun struct {
	Text       string
	FontSize   float64
	FontFamily string
}
