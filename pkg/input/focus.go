package input

import "github.com/omnigui/omnigui/pkg/stream"

// Focus is the single focused-element reference held by a render surface.
// Whoever sets it most recently wins.
type Focus struct {
	current any
	changed stream.Subject[any]
}

// Current returns the focused element, or nil.
func (f *Focus) Current() any {
	return f.current
}

// Has reports whether el currently holds focus.
func (f *Focus) Has(el any) bool {
	return el != nil && f.current == el
}

// Set moves focus to el. Pass nil to clear focus. Listeners are notified
// only when the focused element actually changes.
func (f *Focus) Set(el any) {
	if f.current == el {
		return
	}
	f.current = el
	f.changed.Emit(el)
}

// Release clears focus if el holds it.
func (f *Focus) Release(el any) {
	if f.Has(el) {
		f.Set(nil)
	}
}

// Changed emits the newly focused element after each change.
func (f *Focus) Changed() stream.Stream[any] {
	return &f.changed
}
