package layout_test

import (
	"testing"

	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/layout"
	"github.com/omnigui/omnigui/pkg/layouttest"
	"github.com/omnigui/omnigui/pkg/property"
)

func TestNode_Defaults(t *testing.T) {
	env := layouttest.NewEnv()
	leaf := layouttest.NewFixed(env.Platform, 1, 1)

	if got := leaf.Kind(); got != "Fixed" {
		t.Errorf("Kind = %q, want Fixed", got)
	}
	if got := leaf.Style(); got != "Fixed" {
		t.Errorf("Style = %q, want the kind name", got)
	}
	if leaf.Properties().IsSet(env.Platform.Props.Style) {
		t.Error("Style is explicitly set on a fresh node")
	}
	if leaf.Self() != leaf {
		t.Error("Self does not return the embedding node")
	}
	if got := leaf.RequestedSize(); !got.Equal(geometry.SizeUnspecified) {
		t.Errorf("RequestedSize = %v, want unspecified", got)
	}
	if got := leaf.MaxSize(); got != geometry.SizeInfinite {
		t.Errorf("MaxSize = %v, want infinite", got)
	}
	if got := leaf.Background(); got.IsVisible() {
		t.Errorf("Background = %v, want transparent", got)
	}
	if got := leaf.HorizontalAlignment(); got != layout.HorizontalLeft {
		t.Errorf("HorizontalAlignment = %v, want Left", got)
	}
	if leaf.IsMeasured() || leaf.IsArranged() {
		t.Error("fresh node reports layout done")
	}
}

func TestNode_DoubleInitPanics(t *testing.T) {
	env := layouttest.NewEnv()
	leaf := layouttest.NewFixed(env.Platform, 1, 1)
	expectProgrammingPanic(t, func() { leaf.Init(env.Platform, leaf) })
}

func TestNode_MeasureBeforeInitPanics(t *testing.T) {
	expectProgrammingPanic(t, func() { _ = (&layouttest.Fixed{}).Measure(geometry.Sz(1, 1)) })
}

func TestNode_PropertyChangeNotifies(t *testing.T) {
	env := layouttest.NewEnv()
	leaf := layouttest.NewFixed(env.Platform, 1, 1)
	props := env.Platform.Props

	var margins []geometry.Thickness
	cancel := property.Changed(leaf.Properties(), props.Margin).Listen(func(m geometry.Thickness) {
		margins = append(margins, m)
	})
	leaf.SetMargin(geometry.Uniform(2))
	leaf.SetMargin(geometry.Uniform(3))
	cancel()
	leaf.SetMargin(geometry.Uniform(4))

	if len(margins) != 2 || margins[1] != geometry.Uniform(3) {
		t.Errorf("margins = %v, want [2 3]", margins)
	}
}

func TestNode_RenderAffectingProperties(t *testing.T) {
	env := layouttest.NewEnv()
	leaf := layouttest.NewFixed(env.Platform, 1, 1)
	if env.Surface.Requests != 0 {
		t.Fatalf("construction requested %d renders, want 0", env.Surface.Requests)
	}

	leaf.SetBackground(graphics.SolidBrush(graphics.ColorRed))
	leaf.SetForeground(graphics.SolidBrush(graphics.ColorBlue))
	leaf.SetMinSize(geometry.Sz(1, 1))
	leaf.SetVerticalAlignment(layout.VerticalCenter)
	if got := env.Surface.Requests; got != 4 {
		t.Errorf("Requests = %d, want 4", got)
	}

	env.Surface.Reset()
	leaf.SetDataContext(42)
	if got := env.Surface.Requests; got != 0 {
		t.Errorf("DataContext change requested %d renders, want 0", got)
	}
}

func TestNode_StyleClearRevertsToKind(t *testing.T) {
	env := layouttest.NewEnv()
	leaf := layouttest.NewFixed(env.Platform, 1, 1)

	leaf.SetStyle("accent")
	if got := leaf.Style(); got != "accent" {
		t.Fatalf("Style = %q, want accent", got)
	}
	leaf.Properties().Clear(env.Platform.Props.Style)
	if got := leaf.Style(); got != "Fixed" {
		t.Errorf("Style after Clear = %q, want Fixed", got)
	}
}

func TestNode_NotifyRenderAffectedByCancel(t *testing.T) {
	env := layouttest.NewEnv()
	leaf := layouttest.NewFixed(env.Platform, 1, 1)
	cancel := leaf.NotifyRenderAffectedBy(env.Platform.Props.Style)

	leaf.SetStyle("accent")
	if env.Surface.Requests != 1 {
		t.Fatalf("Requests = %d, want 1", env.Surface.Requests)
	}
	cancel()
	leaf.SetStyle("plain")
	if env.Surface.Requests != 1 {
		t.Errorf("Requests after cancel = %d, want 1", env.Surface.Requests)
	}
}

func TestNode_CloseReleasesSubscriptions(t *testing.T) {
	env := layouttest.NewEnv()
	before := env.Source.Listeners()
	root := layout.NewContainer(env.Platform,
		layouttest.NewFixed(env.Platform, 1, 1),
		layouttest.NewFixed(env.Platform, 1, 1),
	)
	if env.Source.Listeners() == before {
		t.Fatal("nodes did not subscribe to the event source")
	}

	root.Children().At(1).Base().RequestFocus()
	root.Close()
	root.Close()

	if got := env.Source.Listeners(); got != before {
		t.Errorf("Listeners after Close = %d, want %d", got, before)
	}
	if env.Surface.Focus.Current() != nil {
		t.Error("Close kept focus on a closed node")
	}

	env.Surface.Reset()
	root.SetBackground(graphics.SolidBrush(graphics.ColorRed))
	if env.Surface.Requests != 0 {
		t.Error("closed node still requests renders")
	}
}

func TestNode_HeadlessPlatform(t *testing.T) {
	p := layout.NewPlatform(nil, nil)
	c := layout.NewContainer(p)
	c.RequestFocus()
	c.SetBackground(graphics.SolidBrush(graphics.ColorRed))
	if c.IsFocused() {
		t.Error("node without surface reports focus")
	}
}

func TestPlatform_RegistersLayoutProperties(t *testing.T) {
	p := layout.NewPlatform(nil, nil)
	for _, name := range []string{"DataContext", "Style", "Background", "Foreground",
		"RequestedSize", "MinSize", "MaxSize", "Margin", "HorizontalAlignment", "VerticalAlignment"} {
		if _, ok := p.Registry.Lookup(layout.OwnerName, name); !ok {
			t.Errorf("property %s not registered", name)
		}
	}
	if got := len(p.Props.Layout()); got != 6 {
		t.Errorf("Layout descriptors = %d, want 6", got)
	}
}

func TestAlignment_Parse(t *testing.T) {
	h, err := layout.ParseHorizontalAlignment("right")
	if err != nil || h != layout.HorizontalRight {
		t.Errorf("ParseHorizontalAlignment(right) = %v, %v", h, err)
	}
	v, err := layout.ParseVerticalAlignment("Stretch")
	if err != nil || v != layout.VerticalStretch {
		t.Errorf("ParseVerticalAlignment(Stretch) = %v, %v", v, err)
	}
	if _, err := layout.ParseHorizontalAlignment("diagonal"); err == nil {
		t.Error("expected error for unknown alignment")
	}
}
