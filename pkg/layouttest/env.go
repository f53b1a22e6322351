package layouttest

import (
	"github.com/omnigui/omnigui/pkg/input"
	"github.com/omnigui/omnigui/pkg/layout"
)

// Surface is a RenderSurface that counts render requests.
type Surface struct {
	Focus    input.Focus
	Requests int
}

// ForceRender implements layout.RenderSurface.
func (s *Surface) ForceRender() { s.Requests++ }

// FocusedElement implements layout.RenderSurface.
func (s *Surface) FocusedElement() *input.Focus { return &s.Focus }

// Reset zeroes the request counter.
func (s *Surface) Reset() { s.Requests = 0 }

// Env is a headless platform: a programmable event source and a counting
// surface.
type Env struct {
	Platform *layout.Platform
	Source   *input.Source
	Surface  *Surface
}

// NewEnv returns a fresh environment with its own property registry.
func NewEnv() *Env {
	src := input.NewSource()
	surface := &Surface{}
	return &Env{
		Platform: layout.NewPlatform(src, surface),
		Source:   src,
		Surface:  surface,
	}
}
