package stream

// Filter returns a stream that forwards only values for which keep
// returns true. The source is subscribed once per Listen call.
func Filter[T any](src Stream[T], keep func(T) bool) Stream[T] {
	return Func[T](func(handler func(T)) func() {
		return src.Listen(func(v T) {
			if keep(v) {
				handler(v)
			}
		})
	})
}

// Map returns a stream that forwards fn(v) for every source value.
func Map[T, U any](src Stream[T], fn func(T) U) Stream[U] {
	return Func[U](func(handler func(U)) func() {
		return src.Listen(func(v T) {
			handler(fn(v))
		})
	})
}

// FilterMap combines Filter and Map: values for which fn reports false are
// dropped.
func FilterMap[T, U any](src Stream[T], fn func(T) (U, bool)) Stream[U] {
	return Func[U](func(handler func(U)) func() {
		return src.Listen(func(v T) {
			if out, ok := fn(v); ok {
				handler(out)
			}
		})
	})
}

// Merge returns a stream that forwards values from every source.
func Merge[T any](sources ...Stream[T]) Stream[T] {
	return Func[T](func(handler func(T)) func() {
		var group Group
		for _, src := range sources {
			group.Add(src.Listen(handler))
		}
		return group.Cancel
	})
}

// Never returns a stream that never emits.
func Never[T any]() Stream[T] {
	return Func[T](func(func(T)) func() {
		return func() {}
	})
}

// Group collects cancel functions so a set of subscriptions can be
// released together. The zero value is ready to use.
type Group struct {
	cancels []func()
}

// Add records cancel. Nil functions are ignored.
func (g *Group) Add(cancel func()) {
	if cancel != nil {
		g.cancels = append(g.cancels, cancel)
	}
}

// Cancel runs every recorded cancel function in reverse order and empties
// the group.
func (g *Group) Cancel() {
	cancels := g.cancels
	g.cancels = nil
	for i := len(cancels) - 1; i >= 0; i-- {
		cancels[i]()
	}
}

// Len returns the number of recorded subscriptions.
func (g *Group) Len() int {
	return len(g.cancels)
}
