package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/input"
	"github.com/omnigui/omnigui/pkg/layouttest"
)

var grid = graphics.FixedMeasurer{Advance: 1, LineHeight: 1}

func mustColor(t *testing.T, s string) graphics.Color {
	t.Helper()
	c, err := graphics.ParseColor(s)
	require.NoError(t, err)
	return c
}

func build(t *testing.T, states map[string]map[string]string) (*layouttest.Tester, *Demo) {
	t.Helper()
	env := layouttest.NewEnv()
	d, err := Build(env.Platform, grid, DefaultModel("OmniGUI"), states)
	require.NoError(t, err)
	tester := layouttest.NewTester(env, d.Root)
	require.NoError(t, tester.Pump(geometry.Sz(60, 20)))
	return tester, d
}

func TestBuildBindsDataContext(t *testing.T) {
	_, d := build(t, nil)

	assert.Equal(t, "OmniGUI", d.Title.Text())
	assert.Same(t, d.Root.DataContext(), d.Status.DataContext())
	assert.Equal(t, StateNormal, d.States.Current())
	assert.Equal(t, mustColor(t, "#fff5f5f5"), d.Root.Background().Color)
	assert.Equal(t, graphics.ColorGray, d.Root.BorderBrush().Color)
}

func TestFocusSwitchesState(t *testing.T) {
	tester, d := build(t, nil)

	tester.Tap(d.Input.VisualBounds().Center())
	require.True(t, d.Input.IsFocused())
	assert.Equal(t, StateFocused, d.States.Current())
	assert.Equal(t, mustColor(t, "#ffe0f0ff"), d.Root.Background().Color)
	assert.Equal(t, graphics.ColorBlue, d.Root.BorderBrush().Color)

	tester.Env.Surface.Focus.Release(d.Input)
	assert.Equal(t, StateNormal, d.States.Current())
}

func TestTabFocusesInput(t *testing.T) {
	tester, d := build(t, nil)

	tester.Env.Source.EmitKey(input.KeyArgs{Key: input.KeyTab})
	assert.True(t, d.Input.IsFocused())
	assert.Equal(t, StateFocused, d.States.Current())

	tester.Env.Source.EmitKey(input.KeyArgs{Key: input.KeyTab})
	assert.True(t, d.Input.IsFocused(), "the only focusable widget keeps focus")
}

func TestSubmitGreets(t *testing.T) {
	tester, d := build(t, nil)
	tester.Tap(d.Input.VisualBounds().Center())

	tester.Env.Source.EmitText(input.TextInputArgs{Text: "Ada"})
	assert.Equal(t, "Ada", d.Input.Text())
	tester.Env.Source.EmitKey(input.KeyArgs{Key: input.KeyEnter})

	assert.Equal(t, "Hello, Ada!", d.Status.Text())
	assert.Empty(t, d.Input.Text())
}

func TestStatesOverrideDefaults(t *testing.T) {
	tester, d := build(t, map[string]map[string]string{
		StateFocused: {"Background": "red"},
	})

	tester.Tap(d.Input.VisualBounds().Center())
	assert.Equal(t, graphics.ColorRed, d.Root.Background().Color)
	assert.ElementsMatch(t, []string{StateFocused, StateNormal}, d.States.Names())
}

func TestBuildRejectsBadStates(t *testing.T) {
	env := layouttest.NewEnv()
	_, err := Build(env.Platform, grid, DefaultModel("x"), map[string]map[string]string{
		"broken": {"Layout.NoSuchProperty": "1"},
	})
	assert.Error(t, err)
}
