// Package desktop hosts node trees in a fyne window. The tree is
// rasterized through the raster package and fyne input is forwarded into
// an input.Source.
package desktop

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	fynedesktop "fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/omnigui/omnigui/pkg/engine"
	"github.com/omnigui/omnigui/pkg/errors"
	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/input"
	"github.com/omnigui/omnigui/pkg/platform/raster"
)

var keyMap = map[fyne.KeyName]input.Key{
	fyne.KeyReturn:    input.KeyEnter,
	fyne.KeyEnter:     input.KeyEnter,
	fyne.KeyTab:       input.KeyTab,
	fyne.KeyBackspace: input.KeyBackspace,
	fyne.KeyDelete:    input.KeyDelete,
	fyne.KeyEscape:    input.KeyEscape,
	fyne.KeyLeft:      input.KeyLeft,
	fyne.KeyRight:     input.KeyRight,
	fyne.KeyUp:        input.KeyUp,
	fyne.KeyDown:      input.KeyDown,
	fyne.KeyHome:      input.KeyHome,
	fyne.KeyEnd:       input.KeyEnd,
	fyne.KeyPageUp:    input.KeyPageUp,
	fyne.KeyPageDown:  input.KeyPageDown,
}

// View is a fyne widget that renders a host's tree and feeds it input.
type View struct {
	widget.BaseWidget

	host   *engine.Host
	events *input.Source
	raster *canvas.Raster

	// Background clears each frame before the tree renders.
	Background graphics.Color
}

var (
	_ fyne.Widget           = (*View)(nil)
	_ fyne.Focusable        = (*View)(nil)
	_ fyne.Scrollable       = (*View)(nil)
	_ fynedesktop.Mouseable = (*View)(nil)
	_ fynedesktop.Hoverable = (*View)(nil)
)

// NewView creates a view over host. Input is emitted on events, which
// should be the event source of the tree's platform.
func NewView(host *engine.Host, events *input.Source) *View {
	v := &View{host: host, events: events, Background: graphics.ColorWhite}
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget.
func (v *View) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// draw renders a frame at the raster's pixel size. Layout runs in fyne
// units, so the canvas is scaled by pixels per unit.
func (v *View) draw(w, h int) image.Image {
	scale := 1.0
	if size := v.Size(); size.Width > 0 {
		scale = float64(w) / float64(size.Width)
	}
	c := raster.NewCanvas(w, h, scale)
	c.Clear(v.Background)
	if _, err := v.host.StepFrame(c, c.Viewport()); err != nil {
		errors.Logger().Debug("desktop frame skipped", "err", err)
	}
	return c.Image()
}

func (v *View) viewport() geometry.Size {
	size := v.Size()
	return geometry.Sz(float64(size.Width), float64(size.Height))
}

// dispatch delivers fn through the host and schedules a redraw when the
// tree asked for one.
func (v *View) dispatch(phase string, fn func()) {
	_ = v.host.Dispatch(phase, fn)
	if v.host.NeedsFrame(v.viewport()) {
		v.raster.Refresh()
	}
}

func (v *View) pointer(pos fyne.Position, status input.PointerStatus) {
	v.dispatch("pointer", func() {
		v.events.EmitPointer(input.PointerInput{
			Point:               geometry.Pt(float64(pos.X), float64(pos.Y)),
			PrimaryButtonStatus: status,
		})
	})
}

// MouseDown implements desktop.Mouseable. A primary press also takes
// keyboard focus for the view.
func (v *View) MouseDown(ev *fynedesktop.MouseEvent) {
	if ev.Button != fynedesktop.MouseButtonPrimary {
		return
	}
	if a := fyne.CurrentApp(); a != nil {
		if c := a.Driver().CanvasForObject(v); c != nil {
			c.Focus(v)
		}
	}
	v.pointer(ev.Position, input.PointerDown)
}

// MouseUp implements desktop.Mouseable.
func (v *View) MouseUp(ev *fynedesktop.MouseEvent) {
	if ev.Button != fynedesktop.MouseButtonPrimary {
		return
	}
	v.pointer(ev.Position, input.PointerUp)
}

// MouseIn implements desktop.Hoverable.
func (v *View) MouseIn(ev *fynedesktop.MouseEvent) { v.pointer(ev.Position, input.PointerMoved) }

// MouseMoved implements desktop.Hoverable.
func (v *View) MouseMoved(ev *fynedesktop.MouseEvent) { v.pointer(ev.Position, input.PointerMoved) }

// MouseOut implements desktop.Hoverable.
func (v *View) MouseOut() {}

// Scrolled implements fyne.Scrollable.
func (v *View) Scrolled(ev *fyne.ScrollEvent) {
	v.dispatch("scroll", func() {
		v.events.EmitScroll(input.ScrollWheelArgs{
			Point: geometry.Pt(float64(ev.Position.X), float64(ev.Position.Y)),
			Delta: geometry.Vector{X: float64(ev.Scrolled.DX), Y: float64(ev.Scrolled.DY)},
		})
	})
}

// FocusGained implements fyne.Focusable.
func (v *View) FocusGained() {}

// FocusLost implements fyne.Focusable.
func (v *View) FocusLost() {}

// TypedRune implements fyne.Focusable.
func (v *View) TypedRune(r rune) {
	key := input.KeyRune
	if r == ' ' {
		key = input.KeySpace
	}
	v.dispatch("key", func() {
		v.events.EmitKey(input.KeyArgs{Key: key, Rune: r})
		v.events.EmitText(input.TextInputArgs{Text: string(r)})
	})
}

// TypedKey implements fyne.Focusable. Space arrives through TypedRune.
func (v *View) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeySpace {
		return
	}
	key, ok := keyMap[ev.Name]
	if !ok {
		key = input.KeyUnknown
	}
	v.dispatch("key", func() {
		v.events.EmitKey(input.KeyArgs{Key: key})
	})
}

// Run opens a width x height window titled title showing host's tree and
// blocks until the window closes.
func Run(title string, width, height float32, host *engine.Host, events *input.Source) error {
	if host.Root() == nil {
		return errors.New("desktop: host has no root")
	}
	a := app.New()
	w := a.NewWindow(title)
	w.Resize(fyne.NewSize(width, height))

	view := NewView(host, events)
	w.SetContent(view)
	w.Canvas().Focus(view)

	w.ShowAndRun()
	return nil
}
