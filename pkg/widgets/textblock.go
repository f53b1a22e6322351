package widgets

import (
	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/layout"
	"github.com/omnigui/omnigui/pkg/property"
)

// TextBlock displays a single run of text in Foreground. Its content size
// comes from the kit's TextMeasurer; text is not wrapped.
type TextBlock struct {
	layout.NodeBase
	kit *Kit
}

// NewTextBlock creates a TextBlock showing text.
func NewTextBlock(k *Kit, text string) *TextBlock {
	t := &TextBlock{}
	t.init(k, t)
	t.SetText(text)
	return t
}

func (t *TextBlock) init(k *Kit, self layout.Node) {
	t.kit = k
	t.Init(k.Platform, self)
	t.NotifyRenderAffectedBy(k.Text, k.FontSize, k.FontFamily)
}

func (t *TextBlock) Text() string { return property.Get(t.Properties(), t.kit.Text) }

func (t *TextBlock) SetText(s string) { property.Set(t.Properties(), t.kit.Text, s) }

func (t *TextBlock) FontSize() float64 { return property.Get(t.Properties(), t.kit.FontSize) }

func (t *TextBlock) SetFontSize(v float64) { property.Set(t.Properties(), t.kit.FontSize, v) }

func (t *TextBlock) FontFamily() string { return property.Get(t.Properties(), t.kit.FontFamily) }

func (t *TextBlock) SetFontFamily(s string) { property.Set(t.Properties(), t.kit.FontFamily, s) }

// Run returns the text run drawn by this block.
func (t *TextBlock) Run() graphics.TextRun {
	return graphics.TextRun{Text: t.Text(), FontSize: t.FontSize(), FontFamily: t.FontFamily()}
}

// MeasureOverride implements layout.Node.
func (t *TextBlock) MeasureOverride(geometry.Size) (geometry.Size, error) {
	return t.kit.Measurer.MeasureText(t.Run()), nil
}

// ArrangeOverride implements layout.Node.
func (t *TextBlock) ArrangeOverride(final geometry.Size) (geometry.Size, error) {
	return final, nil
}

// Render implements layout.Node.
func (t *TextBlock) Render(dc graphics.DrawingContext) {
	fillBackground(&t.NodeBase, dc)
	if run := t.Run(); run.Text != "" {
		dc.DrawText(t.VisualBounds().Point(), run, t.Foreground())
	}
}
