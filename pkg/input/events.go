// Package input defines the raw input payloads a platform produces and the
// EventSource contract that layout nodes consume.
package input

import (
	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/stream"
)

// PointerStatus describes the primary button state carried by a pointer
// input.
type PointerStatus int

const (
	// PointerMoved reports motion without a button transition.
	PointerMoved PointerStatus = iota
	// PointerDown reports that the primary button was pressed.
	PointerDown
	// PointerUp reports that the primary button was released.
	PointerUp
)

func (s PointerStatus) String() string {
	switch s {
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	default:
		return "moved"
	}
}

// PointerInput is a pointer position plus primary button status. Platform
// sources emit absolute coordinates; node streams emit node-relative ones.
type PointerInput struct {
	Point               geometry.Point
	PrimaryButtonStatus PointerStatus
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// KeyArgs reports a key press. Releases are filtered out by the platform.
type KeyArgs struct {
	Key       Key
	Modifiers Modifiers
	// Rune is the character for KeyRune presses.
	Rune rune
}

// TextInputArgs carries a composed text fragment.
type TextInputArgs struct {
	Text string
}

// ScrollWheelArgs reports a scroll delta at a pointer position.
type ScrollWheelArgs struct {
	Point geometry.Point
	Delta geometry.Vector
}

// EventSource is the platform-specific producer of raw input streams.
// Streams emit at platform-driven rates; there is no backpressure.
type EventSource interface {
	Pointer() stream.Stream[PointerInput]
	KeyInput() stream.Stream[KeyArgs]
	TextInput() stream.Stream[TextInputArgs]
	ScrollWheel() stream.Stream[ScrollWheelArgs]
}

// Source is a programmable EventSource. Platform adapters translate their
// native events into Emit calls; tests drive it directly.
type Source struct {
	pointer stream.Subject[PointerInput]
	keys    stream.Subject[KeyArgs]
	text    stream.Subject[TextInputArgs]
	scroll  stream.Subject[ScrollWheelArgs]
}

// NewSource returns an idle source.
func NewSource() *Source {
	return &Source{}
}

// Pointer implements EventSource.
func (s *Source) Pointer() stream.Stream[PointerInput] { return &s.pointer }

// KeyInput implements EventSource.
func (s *Source) KeyInput() stream.Stream[KeyArgs] { return &s.keys }

// TextInput implements EventSource.
func (s *Source) TextInput() stream.Stream[TextInputArgs] { return &s.text }

// ScrollWheel implements EventSource.
func (s *Source) ScrollWheel() stream.Stream[ScrollWheelArgs] { return &s.scroll }

// EmitPointer pushes a pointer input to every listener.
func (s *Source) EmitPointer(p PointerInput) { s.pointer.Emit(p) }

// EmitKey pushes a key press.
func (s *Source) EmitKey(k KeyArgs) { s.keys.Emit(k) }

// EmitText pushes a text fragment.
func (s *Source) EmitText(t TextInputArgs) { s.text.Emit(t) }

// EmitScroll pushes a scroll delta.
func (s *Source) EmitScroll(a ScrollWheelArgs) { s.scroll.Emit(a) }

// Listeners returns the total number of active listeners across all
// streams. Platforms use it to detect leaked node subscriptions.
func (s *Source) Listeners() int {
	return s.pointer.Len() + s.keys.Len() + s.text.Len() + s.scroll.Len()
}
