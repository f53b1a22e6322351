package layouttest

import (
	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/layout"
)

// Tester drives Measure, Arrange and Render on a root node the way a host
// frame does, rendering into a Recorder.
type Tester struct {
	Env      *Env
	Root     layout.Node
	Recorder *Recorder
}

// NewTester creates a tester for root.
func NewTester(env *Env, root layout.Node) *Tester {
	return &Tester{Env: env, Root: root, Recorder: &Recorder{}}
}

// Pump runs one frame at the given viewport size. The recorder is cleared
// first. The first layout error aborts the frame.
func (t *Tester) Pump(viewport geometry.Size) error {
	t.Recorder.Reset()
	if err := t.Root.Measure(viewport); err != nil {
		return err
	}
	if err := t.Root.Arrange(geometry.RectFromSize(viewport)); err != nil {
		return err
	}
	t.Root.Render(t.Recorder)
	return nil
}

// Tap emits a pointer down then up at the absolute point.
func (t *Tester) Tap(p geometry.Point) {
	t.Env.Source.EmitPointer(pointerAt(p, true))
	t.Env.Source.EmitPointer(pointerAt(p, false))
}

// Snapshot captures the current tree and recorded ops.
func (t *Tester) Snapshot() *Snapshot {
	snap := Capture(t.Root)
	snap.DisplayOps = append([]DisplayOp(nil), t.Recorder.Ops...)
	return snap
}
