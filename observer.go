package rebind

// Observer is the sink side of a binding: anything that can accept a
// stream of values, one at a time.
type Observer[T any] interface {
	OnNext(value T)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc[T any] func(T)

// OnNext calls f(value).
func (f ObserverFunc[T]) OnNext(value T) { f(value) }
