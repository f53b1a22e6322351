// Package stream provides synchronous push streams.
//
// A Stream delivers values to listeners on the caller's goroutine, in
// listener registration order, before the emitting call returns. Streams
// never complete on their own; a listener stops receiving values when the
// cancel function returned by Listen is called.
package stream

// Stream is a push source of values.
type Stream[T any] interface {
	// Listen subscribes handler and returns a function that removes it.
	// Calling the returned function more than once is a no-op.
	Listen(handler func(T)) (cancel func())
}

// Func adapts a listen function to the Stream interface.
type Func[T any] func(handler func(T)) (cancel func())

// Listen implements Stream.
func (f Func[T]) Listen(handler func(T)) (cancel func()) {
	return f(handler)
}

type listener[T any] struct {
	id      uint64
	handler func(T)
}

// Subject is a multi-subscriber broadcast stream. Emit delivers to every
// listener registered at the time of the call. The zero value is ready to
// use. Subject is not safe for concurrent use; it belongs to the UI thread.
type Subject[T any] struct {
	listeners []listener[T]
	nextID    uint64
}

// Listen subscribes handler.
func (s *Subject[T]) Listen(handler func(T)) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener[T]{id: id, handler: handler})
	return func() { s.remove(id) }
}

// Emit delivers value to all current listeners in subscription order.
// Listeners added during delivery receive only later values; listeners
// removed during delivery are skipped if not yet reached.
func (s *Subject[T]) Emit(value T) {
	snapshot := s.listeners
	for _, l := range snapshot {
		if !s.has(l.id) {
			continue
		}
		l.handler(value)
	}
}

// Len returns the number of active listeners.
func (s *Subject[T]) Len() int {
	return len(s.listeners)
}

func (s *Subject[T]) has(id uint64) bool {
	for _, l := range s.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}

func (s *Subject[T]) remove(id uint64) {
	for i, l := range s.listeners {
		if l.id == id {
			// Copy so an in-flight Emit snapshot is not disturbed.
			next := make([]listener[T], 0, len(s.listeners)-1)
			next = append(next, s.listeners[:i]...)
			next = append(next, s.listeners[i+1:]...)
			s.listeners = next
			return
		}
	}
}
