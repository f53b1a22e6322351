package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/omnigui/omnigui/pkg/engine"
	"github.com/omnigui/omnigui/pkg/errors"
	"github.com/omnigui/omnigui/pkg/geometry"
)

// FrameInterval is how often Run checks whether the host needs a frame.
var FrameInterval = 16 * time.Millisecond

// Run initializes screen and drives host until ctx is done or the user
// presses Ctrl+C. Screen events are polled on their own goroutine and
// delivered through host.Dispatch; frames are rendered on the loop
// goroutine only when the host needs one. The screen is finalized before
// Run returns.
func Run(ctx context.Context, screen tcell.Screen, host *engine.Host, events *EventSource) error {
	if host.Root() == nil {
		return errors.New("terminal: host has no root")
	}
	if err := screen.Init(); err != nil {
		return &errors.OmniError{Op: "terminal.Init", Kind: errors.KindPlatform, Err: err}
	}
	screen.EnableMouse()

	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	evCh := make(chan tcell.Event, 100)

	g.Go(func() error {
		for {
			// PollEvent returns nil once the screen is finalized.
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case evCh <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer screen.Fini()
		defer cancel()
		return loop(ctx, screen, host, events, evCh)
	})

	return g.Wait()
}

func isQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	return ok && key.Key() == tcell.KeyCtrlC
}

func loop(ctx context.Context, screen tcell.Screen, host *engine.Host, events *EventSource, evCh <-chan tcell.Event) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	canvas := NewCanvas(screen)
	log := errors.Logger()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-evCh:
			if isQuit(ev) {
				return nil
			}
			var resized bool
			// Panics are reported by Dispatch; the loop keeps running.
			_ = host.Dispatch("input", func() { resized = events.Translate(ev) })
			if resized {
				screen.Sync()
				host.ForceRender()
			}

		case <-ticker.C:
			w, h := screen.Size()
			viewport := geometry.Sz(float64(w), float64(h))
			if !host.NeedsFrame(viewport) {
				continue
			}
			screen.Clear()
			if _, err := host.StepFrame(canvas, viewport); err != nil {
				log.Debug("terminal frame skipped", "err", err)
			}
			screen.Show()
		}
	}
}
