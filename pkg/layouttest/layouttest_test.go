package layouttest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/input"
	"github.com/omnigui/omnigui/pkg/layout"
)

func twoLeaves(env *Env) (*layout.Container, *Fixed, *Fixed) {
	a := NewFixed(env.Platform, 10, 20)
	b := NewFixed(env.Platform, 30, 5)
	return layout.NewContainer(env.Platform, a, b), a, b
}

func TestTesterPump(t *testing.T) {
	env := NewEnv()
	root, a, b := twoLeaves(env)
	tester := NewTester(env, root)

	require.NoError(t, tester.Pump(geometry.Sz(100, 100)))
	assert.Equal(t, geometry.Sz(30, 20), root.DesiredSize())
	assert.Equal(t, 1, a.MeasureCalls)
	assert.Equal(t, 1, b.ArrangeCalls)
	// Top alignment keeps b at its desired height inside the 30x20 slot.
	assert.Equal(t, geometry.Sz(30, 5), b.LastFinal)
	assert.Empty(t, tester.Recorder.Ops)
}

func TestTesterPumpReportsLayoutError(t *testing.T) {
	env := NewEnv()
	root, _, _ := twoLeaves(env)
	tester := NewTester(env, root)

	assert.Error(t, tester.Pump(geometry.SizeUnspecified))
	assert.False(t, root.IsArranged())
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.DrawRectangle(geometry.RectFromXYWH(1, 2, 3, 4), graphics.SolidBrush(graphics.ColorRed),
		graphics.Pen{Brush: graphics.SolidBrush(graphics.ColorBlue), Thickness: 1})
	r.DrawText(geometry.Pt(5, 6), graphics.TextRun{Text: "hi"}, graphics.SolidBrush(graphics.ColorBlack))
	r.DrawImage(geometry.RectFromXYWH(0, 0, 1, 1), nil)

	require.Len(t, r.Ops, 3)
	assert.Equal(t, "#ffff0000", r.Ops[0].Color)
	assert.Equal(t, "#ff0000ff", r.Ops[0].Pen)
	assert.Equal(t, "hi", r.Filter("text")[0].Text)
	assert.Len(t, r.Filter("image"), 1)

	r.Reset()
	assert.Empty(t, r.Ops)
}

func TestSurfaceCountsRequests(t *testing.T) {
	env := NewEnv()
	leaf := NewFixed(env.Platform, 1, 1)
	assert.Zero(t, env.Surface.Requests)

	leaf.SetBackground(graphics.SolidBrush(graphics.ColorRed))
	assert.Equal(t, 1, env.Surface.Requests)

	env.Surface.Reset()
	assert.Zero(t, env.Surface.Requests)
}

func TestTapDeliversDownAndUp(t *testing.T) {
	env := NewEnv()
	leaf := NewFixed(env.Platform, 10, 10)
	tester := NewTester(env, leaf)
	require.NoError(t, tester.Pump(geometry.Sz(50, 50)))

	var got []string
	leaf.Pointer().Input().Listen(func(p input.PointerInput) { got = append(got, p.PrimaryButtonStatus.String()) })
	tester.Tap(geometry.Pt(5, 5))
	tester.Tap(geometry.Pt(40, 40))

	assert.Equal(t, []string{"down", "up"}, got)
}

func TestSnapshotCapture(t *testing.T) {
	env := NewEnv()
	root, a, _ := twoLeaves(env)
	a.SetStyle("accent")
	tester := NewTester(env, root)
	require.NoError(t, tester.Pump(geometry.Sz(100, 100)))

	snap := tester.Snapshot()
	require.NotNil(t, snap.Tree)
	assert.Equal(t, "Container#0", snap.Tree.ID)
	assert.Empty(t, snap.Tree.Style)
	require.Len(t, snap.Tree.Children, 2)
	assert.Equal(t, "Fixed#0", snap.Tree.Children[0].ID)
	assert.Equal(t, "accent", snap.Tree.Children[0].Style)
	assert.Equal(t, "Fixed#1", snap.Tree.Children[1].ID)
	assert.Equal(t, [4]float64{0, 0, 30, 5}, snap.Tree.Children[1].Bounds)
}

func TestSnapshotMatchesGolden(t *testing.T) {
	env := NewEnv()
	root, _, _ := twoLeaves(env)
	tester := NewTester(env, root)
	require.NoError(t, tester.Pump(geometry.Sz(100, 100)))

	tester.Snapshot().MatchesFile(t, filepath.Join("testdata", "two_leaves.json"))
}

func TestSnapshotUpdateAndDiff(t *testing.T) {
	env := NewEnv()
	root, a, _ := twoLeaves(env)
	tester := NewTester(env, root)
	require.NoError(t, tester.Pump(geometry.Sz(100, 100)))
	before := tester.Snapshot()

	path := filepath.Join(t.TempDir(), "nested", "snap.json")
	require.NoError(t, before.UpdateFile(path))
	loaded, err := loadSnapshot(path)
	require.NoError(t, err)
	assert.Empty(t, before.Diff(loaded))

	a.Content = geometry.Sz(50, 20)
	require.NoError(t, tester.Pump(geometry.Sz(100, 100)))
	diff := tester.Snapshot().Diff(before)
	assert.Contains(t, diff, "--- expected")
	assert.Contains(t, diff, "+")
}

type fakeT struct {
	name   string
	fatals []string
	errs   []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return f.name }
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errs = append(f.errs, fmt.Sprintf(format, args...))
}

func TestMatchesFileMissing(t *testing.T) {
	env := NewEnv()
	tester := NewTester(env, NewFixed(env.Platform, 1, 1))
	ft := &fakeT{name: "TestMissing"}

	tester.Snapshot().MatchesFile(ft, filepath.Join(t.TempDir(), "absent.json"))
	require.Len(t, ft.fatals, 1)
	assert.Contains(t, ft.fatals[0], UpdateEnv+"=1")
}

func TestMatchesFileUpdates(t *testing.T) {
	t.Setenv(UpdateEnv, "1")
	env := NewEnv()
	tester := NewTester(env, NewFixed(env.Platform, 1, 1))
	path := filepath.Join(t.TempDir(), "fresh.json")

	tester.Snapshot().MatchesFile(&fakeT{name: "TestFresh"}, path)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestClock(t *testing.T) {
	clk := NewClock()
	start := clk.Now()
	clk.Advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, clk.Now().Sub(start))
}
