package focus

import (
	"testing"

	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/input"
	"github.com/omnigui/omnigui/pkg/layout"
	"github.com/omnigui/omnigui/pkg/layouttest"
)

type box struct {
	layout.NodeBase
	name      string
	focusable bool
}

func newBox(p *layout.Platform, name string, x, y float64, focusable bool) *box {
	b := &box{name: name, focusable: focusable}
	b.Init(p, b)
	b.SetRequestedSize(geometry.Sz(10, 10))
	b.SetMargin(geometry.Thickness{Left: x, Top: y})
	b.SetHorizontalAlignment(layout.HorizontalLeft)
	b.SetVerticalAlignment(layout.VerticalTop)
	return b
}

func (b *box) Focusable() bool { return b.focusable }

type grid struct {
	env        *layouttest.Env
	root       *layout.Container
	a, b, c, d *box
}

// newGrid lays out a b on the top row and c d below; d is not focusable.
func newGrid(t *testing.T) *grid {
	t.Helper()
	env := layouttest.NewEnv()
	p := env.Platform
	g := &grid{
		env: env,
		a:   newBox(p, "a", 0, 0, true),
		b:   newBox(p, "b", 20, 0, true),
		c:   newBox(p, "c", 0, 20, true),
		d:   newBox(p, "d", 20, 20, false),
	}
	g.root = layout.NewContainer(p, g.a, g.b, g.c, g.d)
	if err := layouttest.NewTester(env, g.root).Pump(geometry.Sz(100, 100)); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	return g
}

func (g *grid) focused() string {
	if b, ok := g.env.Surface.Focus.Current().(*box); ok {
		return b.name
	}
	return ""
}

func TestCandidates(t *testing.T) {
	g := newGrid(t)
	got := Candidates(g.root)
	if len(got) != 3 || got[0] != layout.Node(g.a) || got[2] != layout.Node(g.c) {
		t.Errorf("Candidates = %v, want a b c", got)
	}
}

func TestMove(t *testing.T) {
	g := newGrid(t)

	steps := []struct {
		delta int
		want  string
	}{
		{1, "a"},
		{1, "b"},
		{1, "c"},
		{1, "a"},
		{-1, "c"},
		{-2, "a"},
	}
	for i, s := range steps {
		if !Move(g.root, s.delta) {
			t.Fatalf("step %d: Move(%d) reported no move", i, s.delta)
		}
		if got := g.focused(); got != s.want {
			t.Errorf("step %d: focused = %q, want %q", i, got, s.want)
		}
	}
}

func TestMoveBackwardFromNothing(t *testing.T) {
	g := newGrid(t)
	Move(g.root, -1)
	if got := g.focused(); got != "c" {
		t.Errorf("focused = %q, want c", got)
	}
}

func TestMoveSingleCandidate(t *testing.T) {
	env := layouttest.NewEnv()
	only := newBox(env.Platform, "only", 0, 0, true)
	root := layout.NewContainer(env.Platform, only)

	if !Move(root, 1) {
		t.Fatal("first Move should focus the only candidate")
	}
	if Move(root, 1) {
		t.Error("Move should report false when focus cannot change")
	}
}

func TestMoveWithoutSurface(t *testing.T) {
	p := layout.NewPlatform(nil, nil)
	root := layout.NewContainer(p, newBox(p, "a", 0, 0, true))
	if Move(root, 1) || MoveInDirection(root, DirectionDown) {
		t.Error("headless platform has no focus to move")
	}
}

func TestMoveInDirection(t *testing.T) {
	tests := []struct {
		from      string
		direction Direction
		want      string
	}{
		{"a", DirectionRight, "b"},
		{"a", DirectionDown, "c"},
		{"b", DirectionDown, "c"},
		{"c", DirectionUp, "a"},
		{"b", DirectionLeft, "a"},
		// Nothing above a, so linear traversal backwards wraps to c.
		{"a", DirectionUp, "c"},
	}
	for _, tt := range tests {
		g := newGrid(t)
		boxes := map[string]*box{"a": g.a, "b": g.b, "c": g.c}
		boxes[tt.from].RequestFocus()

		MoveInDirection(g.root, tt.direction)
		if got := g.focused(); got != tt.want {
			t.Errorf("from %s direction %d: focused = %q, want %q", tt.from, tt.direction, got, tt.want)
		}
	}
}

func TestMoveInDirectionFromNothing(t *testing.T) {
	g := newGrid(t)
	MoveInDirection(g.root, DirectionLeft)
	if got := g.focused(); got != "a" {
		t.Errorf("focused = %q, want a", got)
	}
}

func TestAttach(t *testing.T) {
	g := newGrid(t)
	cancel := Attach(g.root)
	src := g.env.Source

	src.EmitKey(input.KeyArgs{Key: input.KeyTab})
	if got := g.focused(); got != "a" {
		t.Fatalf("after Tab focused = %q, want a", got)
	}
	src.EmitKey(input.KeyArgs{Key: input.KeyTab, Modifiers: input.ModShift})
	if got := g.focused(); got != "c" {
		t.Errorf("after Shift+Tab focused = %q, want c", got)
	}
	src.EmitKey(input.KeyArgs{Key: input.KeyUp})
	if got := g.focused(); got != "c" {
		t.Errorf("plain Up moved focus to %q", got)
	}
	src.EmitKey(input.KeyArgs{Key: input.KeyUp, Modifiers: input.ModCtrl})
	if got := g.focused(); got != "a" {
		t.Errorf("after Ctrl+Up focused = %q, want a", got)
	}

	cancel()
	src.EmitKey(input.KeyArgs{Key: input.KeyTab})
	if got := g.focused(); got != "a" {
		t.Errorf("Tab after cancel moved focus to %q", got)
	}
}

func TestAttachEndsOnClose(t *testing.T) {
	g := newGrid(t)
	Attach(g.root)
	g.root.Close()

	g.env.Source.EmitKey(input.KeyArgs{Key: input.KeyTab})
	if got := g.focused(); got != "" {
		t.Errorf("closed tree still traverses, focused = %q", got)
	}
}
