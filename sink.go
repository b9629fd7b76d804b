package gostreams

// A Sink consumes the values, error, and completion of a stream.
// All handlers are optional; a nil handler drops the notification.
type Sink[T any] struct {
	// OnValue is called for each element forwarded to the sink, in order.
	OnValue func(elem T)

	// OnError is called at most once, with the cause that canceled the stream.
	OnError func(err error)

	// OnComplete is called each time a subscribed producer finishes its
	// sequence naturally.
	OnComplete func()
}

// SinkFunc returns a Sink that consumes values with fn, dropping errors
// and completions.
func SinkFunc[T any](fn func(elem T)) Sink[T] {
	return Sink[T]{OnValue: fn}
}

func (s Sink[T]) value(elem T) {
	if s.OnValue != nil {
		s.OnValue(elem)
	}
}

func (s Sink[T]) fail(err error) {
	if s.OnError != nil {
		s.OnError(err)
	}
}

func (s Sink[T]) complete() {
	if s.OnComplete != nil {
		s.OnComplete()
	}
}
