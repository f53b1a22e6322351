package desktop

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	fynedesktop "fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnigui/omnigui/pkg/engine"
	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/input"
	"github.com/omnigui/omnigui/pkg/layout"
	"github.com/omnigui/omnigui/pkg/platform/raster"
	"github.com/omnigui/omnigui/pkg/widgets"
)

type fixture struct {
	view   *View
	host   *engine.Host
	events *input.Source
	panel  *widgets.Panel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	test.NewTempApp(t)

	events := input.NewSource()
	host := engine.New()
	p := layout.NewPlatform(events, host)
	panel := widgets.NewPanel(widgets.NewKit(p, raster.FaceMeasurer{}))
	panel.SetBackground(graphics.SolidBrush(graphics.ColorRed))
	host.SetRoot(panel)

	view := NewView(host, events)
	view.Resize(fyne.NewSize(10, 5))
	return &fixture{view: view, host: host, events: events, panel: panel}
}

func TestViewDraw(t *testing.T) {
	f := newFixture(t)

	img := f.view.draw(20, 10)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, graphics.ColorRed.NRGBA(), color.NRGBAModel.Convert(img.At(15, 8)))

	// Layout runs in widget units, not pixels.
	assert.Equal(t, geometry.RectFromXYWH(0, 0, 10, 5), f.panel.Bounds())
	assert.Equal(t, uint64(1), f.host.Stats().Frames)
}

func TestViewPointer(t *testing.T) {
	f := newFixture(t)
	f.view.draw(10, 5)

	var got []input.PointerInput
	f.panel.Pointer().Input().Listen(func(p input.PointerInput) { got = append(got, p) })

	at := fyne.PointEvent{Position: fyne.NewPos(3, 4)}
	f.view.MouseMoved(&fynedesktop.MouseEvent{PointEvent: at})
	f.view.MouseDown(&fynedesktop.MouseEvent{PointEvent: at, Button: fynedesktop.MouseButtonPrimary})
	f.view.MouseDown(&fynedesktop.MouseEvent{PointEvent: at, Button: fynedesktop.MouseButtonSecondary})
	f.view.MouseUp(&fynedesktop.MouseEvent{PointEvent: at, Button: fynedesktop.MouseButtonPrimary})

	require.Len(t, got, 3)
	assert.Equal(t, input.PointerInput{Point: geometry.Pt(3, 4), PrimaryButtonStatus: input.PointerMoved}, got[0])
	assert.Equal(t, input.PointerDown, got[1].PrimaryButtonStatus)
	assert.Equal(t, input.PointerUp, got[2].PrimaryButtonStatus)
}

func TestViewScroll(t *testing.T) {
	f := newFixture(t)
	f.view.draw(10, 5)

	var got []input.ScrollWheelArgs
	f.panel.Pointer().Scroll().Listen(func(a input.ScrollWheelArgs) { got = append(got, a) })
	f.view.Scrolled(&fyne.ScrollEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(1, 1)},
		Scrolled:   fyne.Delta{DY: 2},
	})

	require.Len(t, got, 1)
	assert.Equal(t, geometry.Vector{Y: 2}, got[0].Delta)
}

func TestViewKeys(t *testing.T) {
	f := newFixture(t)
	f.view.draw(10, 5)
	f.panel.RequestFocus()

	var keys []input.KeyArgs
	var text []string
	f.panel.Keyboard().KeyInput().Listen(func(k input.KeyArgs) { keys = append(keys, k) })
	f.panel.Keyboard().TextInput().Listen(func(a input.TextInputArgs) { text = append(text, a.Text) })

	f.view.TypedRune('a')
	f.view.TypedRune(' ')
	f.view.TypedKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	f.view.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	f.view.TypedKey(&fyne.KeyEvent{Name: fyne.KeyF1})

	require.Len(t, keys, 4)
	assert.Equal(t, input.KeyArgs{Key: input.KeyRune, Rune: 'a'}, keys[0])
	assert.Equal(t, input.KeySpace, keys[1].Key)
	assert.Equal(t, input.KeyEnter, keys[2].Key)
	assert.Equal(t, input.KeyUnknown, keys[3].Key)
	assert.Equal(t, []string{"a", " "}, text)
}

func TestViewRendererWrapsRaster(t *testing.T) {
	f := newFixture(t)
	r := f.view.CreateRenderer()
	require.Len(t, r.Objects(), 1)
	assert.Same(t, f.view.raster, r.Objects()[0])
}

func TestRunWithoutRoot(t *testing.T) {
	assert.Error(t, Run("x", 10, 10, engine.New(), input.NewSource()))
}
