package widgets

import (
	"unicode/utf8"

	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/input"
	"github.com/omnigui/omnigui/pkg/stream"
)

// CaretWidth is the width of the insertion caret drawn while focused.
const CaretWidth = 1

// TextBox is an editable TextBlock. A primary press inside it takes
// focus; while focused, composed text is appended, Backspace deletes the
// last rune and Enter emits Submitted.
type TextBox struct {
	TextBlock
	submitted stream.Subject[string]
}

// NewTextBox creates an empty TextBox.
func NewTextBox(k *Kit) *TextBox {
	b := &TextBox{}
	b.init(k, b)

	b.Track(b.Pointer().Down().Listen(func(input.PointerInput) { b.RequestFocus() }))
	b.Track(b.Keyboard().TextInput().Listen(func(a input.TextInputArgs) { b.SetText(b.Text() + a.Text) }))
	b.Track(b.Keyboard().KeyInput().Listen(b.handleKey))
	if s := k.Platform.Surface; s != nil && s.FocusedElement() != nil {
		b.Track(s.FocusedElement().Changed().Listen(func(any) { b.InvalidateRender() }))
	}
	return b
}

// Submitted emits the text when Enter is pressed.
func (b *TextBox) Submitted() stream.Stream[string] { return &b.submitted }

func (b *TextBox) handleKey(k input.KeyArgs) {
	switch k.Key {
	case input.KeyBackspace:
		text := b.Text()
		if text == "" {
			return
		}
		_, size := utf8.DecodeLastRuneInString(text)
		b.SetText(text[:len(text)-size])
	case input.KeyEnter:
		b.submitted.Emit(b.Text())
	}
}

// MeasureOverride implements layout.Node. The caret is included so the
// box does not resize when it gains focus.
func (b *TextBox) MeasureOverride(available geometry.Size) (geometry.Size, error) {
	size, err := b.TextBlock.MeasureOverride(available)
	if err != nil {
		return size, err
	}
	height := size.Height
	if height == 0 {
		height = b.kit.Measurer.MeasureText(graphics.TextRun{Text: " ", FontSize: b.FontSize()}).Height
	}
	return geometry.Sz(size.Width+CaretWidth, height), nil
}

// Render implements layout.Node.
func (b *TextBox) Render(dc graphics.DrawingContext) {
	b.TextBlock.Render(dc)
	if !b.IsFocused() {
		return
	}
	vb := b.VisualBounds()
	textWidth := b.kit.Measurer.MeasureText(b.Run()).Width
	caret := geometry.RectFromXYWH(vb.X+textWidth, vb.Y, CaretWidth, vb.Height).Intersect(vb)
	if !caret.IsEmpty() {
		dc.DrawRectangle(caret, b.Foreground(), graphics.Pen{})
	}
}

// Focusable reports that text boxes take part in keyboard traversal.
func (b *TextBox) Focusable() bool { return true }
