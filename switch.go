package gostreams

import "context"

// SwitchMap returns a producer that calls mapp for each element produced by prod,
// mapping it to an inner producer that produces elements of type U.
// The new producer produces the elements of the most recently mapped inner
// producer only: whenever prod produces a new element, the subscription to the
// previous inner producer is canceled before the next inner producer is
// subscribed. At most one inner subscription is live at any time.
//
// Completion of an inner producer does not complete the new producer; the new
// producer completes once prod and the latest inner producer have both
// completed.
func SwitchMap[T any, U any](prod ProducerFunc[T], mapp MapperFunc[T, ProducerFunc[U]]) ProducerFunc[U] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan U {
		ch := prod(ctx, cancel)

		outCh := make(chan U)

		go func() {
			defer close(outCh)

			var innerCh <-chan U

			var cancelInner context.CancelCauseFunc

			defer func() {
				if cancelInner != nil {
					cancelInner(nil)
				}
			}()

			index := uint64(0)

			for ch != nil || innerCh != nil {
				select {
				case elem, ok := <-ch:
					if !ok {
						ch = nil
						continue
					}

					inner := mapp(ctx, cancel, elem, index)

					if contextDone(ctx) {
						return
					}

					index++

					if cancelInner != nil {
						cancelInner(nil)
					}

					innerCtx, cancelNext := context.WithCancelCause(ctx)
					cancelInner = cancelNext

					innerCh = inner(innerCtx, cancel)

				case elem, ok := <-innerCh:
					if !ok {
						innerCh = nil
						continue
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
		}()

		return outCh
	}
}
