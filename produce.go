package gostreams

import (
	"context"
	"time"
)

// ProducerFunc returns a channel of elements for a stream.
//
// Calling the producer subscribes to it; canceling the passed context
// unsubscribes. The producer signals completion by closing the returned
// channel while the context is still live, and signals an error by calling
// cancel with a non-nil cause.
type ProducerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T

// Produce returns a cold producer that produces the elements of the given
// slices, in order. Every subscription produces the full sequence anew.
func Produce[T any](slices ...[]T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, slice := range slices {
				for _, elem := range slice {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}

// ProduceChannel returns a hot producer that produces the elements received
// through the given channels, in order.
//
// The producer may be subscribed to multiple times, sequentially: each
// subscription resumes draining the channels where the previous one stopped.
// It must not have more than one live subscription at a time.
func ProduceChannel[T any](channels ...<-chan T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, ch := range channels {
			drain:
				for {
					select {
					case elem, ok := <-ch:
						if !ok {
							break drain
						}

						select {
						case outCh <- elem:

						case <-ctx.Done():
							return
						}

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}

// Tick returns a cold producer that produces 0, 1, 2, ... with the given
// interval between elements. It never completes; it produces until
// unsubscribed.
func Tick(interval time.Duration) ProducerFunc[uint64] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan uint64 {
		outCh := make(chan uint64)

		go func() {
			defer close(outCh)

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			elem := uint64(0)

			for {
				select {
				case <-ticker.C:
					select {
					case outCh <- elem:
						elem++

					case <-ctx.Done():
						return
					}

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// Never returns a producer that produces no elements, never errors, and
// never completes. It is the silence source a Pausable switches to while
// paused or stopped.
func Never[T any]() ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			<-ctx.Done()
		}()

		return outCh
	}
}

// Fail returns a producer that cancels the stream's context with err upon
// subscription, producing no elements.
func Fail[T any](err error) ProducerFunc[T] {
	return func(_ context.Context, cancel context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)
		close(outCh)

		cancel(err)

		return outCh
	}
}
