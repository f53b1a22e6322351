package layouttest

import (
	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/layout"
)

// Fixed is a leaf node whose MeasureOverride reports a settable size. It
// counts how often each pass reaches it.
type Fixed struct {
	layout.NodeBase

	// Content is returned by MeasureOverride.
	Content geometry.Size

	MeasureCalls  int
	ArrangeCalls  int
	LastAvailable geometry.Size
	LastFinal     geometry.Size
}

// NewFixed creates a leaf with the given content size.
func NewFixed(p *layout.Platform, width, height float64) *Fixed {
	f := &Fixed{Content: geometry.Sz(width, height)}
	f.Init(p, f)
	return f
}

// MeasureOverride implements layout.Node.
func (f *Fixed) MeasureOverride(available geometry.Size) (geometry.Size, error) {
	f.MeasureCalls++
	f.LastAvailable = available
	return f.Content, nil
}

// ArrangeOverride implements layout.Node.
func (f *Fixed) ArrangeOverride(final geometry.Size) (geometry.Size, error) {
	f.ArrangeCalls++
	f.LastFinal = final
	return final, nil
}
