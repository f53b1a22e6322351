package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/omnigui/omnigui/pkg/geometry"
	"github.com/omnigui/omnigui/pkg/input"
)

var keyMap = map[tcell.Key]input.Key{
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
}

func modifiers(m tcell.ModMask) input.Modifiers {
	var out input.Modifiers
	if m&tcell.ModShift != 0 {
		out |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= input.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= input.ModMeta
	}
	return out
}

// EventSource translates tcell events into input streams.
type EventSource struct {
	*input.Source
	buttons tcell.ButtonMask
}

// NewEventSource returns a source with no buttons held.
func NewEventSource() *EventSource {
	return &EventSource{Source: input.NewSource()}
}

// Translate emits ev on the matching stream. It reports whether ev was a
// resize, which callers answer with a full redraw.
func (s *EventSource) Translate(ev tcell.Event) (resized bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.translateKey(ev)
	case *tcell.EventMouse:
		s.translateMouse(ev)
	case *tcell.EventResize:
		return true
	}
	return false
}

func (s *EventSource) translateKey(ev *tcell.EventKey) {
	mods := modifiers(ev.Modifiers())
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		key := input.KeyRune
		if r == ' ' {
			key = input.KeySpace
		}
		s.EmitKey(input.KeyArgs{Key: key, Modifiers: mods, Rune: r})
		s.EmitText(input.TextInputArgs{Text: string(r)})
		return
	}
	key, ok := keyMap[ev.Key()]
	if !ok {
		key = input.KeyUnknown
	}
	s.EmitKey(input.KeyArgs{Key: key, Modifiers: mods})
}

func (s *EventSource) translateMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	point := geometry.Pt(float64(x), float64(y))
	buttons := ev.Buttons()

	if wheel := buttons & (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight); wheel != 0 {
		var delta geometry.Vector
		switch {
		case wheel&tcell.WheelUp != 0:
			delta.Y = 1
		case wheel&tcell.WheelDown != 0:
			delta.Y = -1
		case wheel&tcell.WheelLeft != 0:
			delta.X = 1
		case wheel&tcell.WheelRight != 0:
			delta.X = -1
		}
		s.EmitScroll(input.ScrollWheelArgs{Point: point, Delta: delta})
		return
	}

	was := s.buttons&tcell.Button1 != 0
	now := buttons&tcell.Button1 != 0
	s.buttons = buttons

	status := input.PointerMoved
	switch {
	case now && !was:
		status = input.PointerDown
	case was && !now:
		status = input.PointerUp
	}
	s.EmitPointer(input.PointerInput{Point: point, PrimaryButtonStatus: status})
}
