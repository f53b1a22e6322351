// Package engine drives frames for a node tree. A Host is the render
// surface the tree's platform points at: it tracks render requests and
// focus, runs Measure, Arrange and Render in StepFrame, and serializes
// event delivery with frame work.
package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/omnigui/omnigui/pkg/errors"
	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/input"
	"github.com/omnigui/omnigui/pkg/layout"
)

// Option configures a Host.
type Option func(*Host)

// WithClock replaces time.Now for frame timing.
func WithClock(now func() time.Time) Option {
	return func(h *Host) { h.now = now }
}

// WithScheduleFrame registers a callback invoked whenever a render is
// requested. It may run while the host lock is held and must not block
// or call back into the host.
func WithScheduleFrame(fn func()) Option {
	return func(h *Host) { h.onRequest = fn }
}

// WithFrameTrace keeps the last limit frame samples for /frames.
func WithFrameTrace(limit int, budget time.Duration) Option {
	return func(h *Host) { h.trace = NewFrameTrace(limit, budget) }
}

// WithBackground clears the viewport with c before each frame.
func WithBackground(c graphics.Color) Option {
	return func(h *Host) { h.background = c }
}

// Stats summarizes the frames a host has run.
type Stats struct {
	Frames       uint64        `json:"frames"`
	Failures     uint64        `json:"failures"`
	LastDuration time.Duration `json:"lastDuration"`
	LastError    string        `json:"lastError,omitempty"`
}

// Host implements layout.RenderSurface.
type Host struct {
	// mu serializes frames and event delivery.
	mu sync.Mutex

	focus      input.Focus
	pending    atomic.Bool
	onRequest  func()
	now        func() time.Time
	background graphics.Color
	trace      *FrameTrace

	root         layout.Node
	frameID      atomic.Uint64
	stats        Stats
	lastViewport geometry.Size
}

// New creates a host. The first frame is always needed.
func New(opts ...Option) *Host {
	h := &Host{now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	h.pending.Store(true)
	return h
}

// ForceRender implements layout.RenderSurface.
func (h *Host) ForceRender() {
	h.pending.Store(true)
	if h.onRequest != nil {
		h.onRequest()
	}
}

// FocusedElement implements layout.RenderSurface.
func (h *Host) FocusedElement() *input.Focus {
	return &h.focus
}

// SetRoot installs the tree rendered by StepFrame.
func (h *Host) SetRoot(root layout.Node) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.root = root
	h.ForceRender()
}

// Root returns the installed tree.
func (h *Host) Root() layout.Node {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.root
}

// NeedsFrame reports whether a render was requested since the last frame
// or the viewport changed.
func (h *Host) NeedsFrame(viewport geometry.Size) bool {
	if h.pending.Load() {
		return true
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return viewport != h.lastViewport
}

// Stats returns a copy of the frame counters.
func (h *Host) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}

// Trace returns the frame trace, or nil when tracing is off.
func (h *Host) Trace() *FrameTrace { return h.trace }

// StepFrame measures the root with the viewport size, arranges it into
// the viewport rectangle and renders it onto dc. A layout error aborts
// the frame before rendering. A panic in any pass is recovered, reported
// and returned as a *errors.BoundaryError.
func (h *Host) StepFrame(dc graphics.DrawingContext, viewport geometry.Size) (snap *FrameSnapshot, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	start := h.now()
	h.pending.Store(false)
	defer func() {
		if r := recover(); r != nil {
			berr := &errors.BoundaryError{
				Phase:      "frame",
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  start,
			}
			errors.ReportBoundaryError(berr)
			h.fail(berr)
			snap, err = nil, berr
		}
	}()

	if h.root == nil {
		return nil, errors.New("engine: StepFrame called without a root")
	}

	var sample FrameSample
	sample.At = start.UnixMilli()

	if err := h.root.Measure(viewport); err != nil {
		return nil, h.layoutFailed("engine.Measure", err)
	}
	measured := h.now()
	sample.Phases.Measure = millis(measured.Sub(start))

	if err := h.root.Arrange(geometry.RectFromSize(viewport)); err != nil {
		return nil, h.layoutFailed("engine.Arrange", err)
	}
	arranged := h.now()
	sample.Phases.Arrange = millis(arranged.Sub(measured))

	if h.background.Alpha() > 0 {
		dc.DrawRectangle(geometry.RectFromSize(viewport), graphics.SolidBrush(h.background), graphics.Pen{})
	}
	h.root.Render(dc)
	end := h.now()
	sample.Phases.Render = millis(end.Sub(arranged))

	nodes := 0
	layout.Walk(h.root, func(layout.Node) bool {
		nodes++
		return true
	})

	duration := end.Sub(start)
	h.stats.Frames++
	h.stats.LastDuration = duration
	h.lastViewport = viewport

	sample.TotalMs = millis(duration)
	sample.Nodes = nodes
	if h.trace != nil {
		h.trace.Record(sample, duration)
	}

	return &FrameSnapshot{
		FrameID:     h.frameID.Add(1),
		Duration:    duration,
		Viewport:    viewport,
		DesiredSize: h.root.Base().DesiredSize(),
		Nodes:       nodes,
	}, nil
}

func (h *Host) layoutFailed(op string, err error) error {
	kind := errors.KindUnknown
	var le *errors.LayoutError
	if errors.As(err, &le) {
		kind = le.Kind
	}
	errors.Report(&errors.OmniError{Op: op, Kind: kind, Err: err, Timestamp: h.now()})
	h.fail(err)
	return err
}

func (h *Host) fail(err error) {
	h.stats.Failures++
	h.stats.LastError = err.Error()
}

// Dispatch runs fn under the host lock so input handlers never overlap a
// frame. A panic in fn is recovered, reported and returned as a
// *errors.BoundaryError tagged with phase.
func (h *Host) Dispatch(phase string, fn func()) (err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			berr := &errors.BoundaryError{
				Phase:      phase,
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  h.now(),
			}
			errors.ReportBoundaryError(berr)
			err = berr
		}
	}()
	fn()
	return nil
}
