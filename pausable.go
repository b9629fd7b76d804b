package gostreams

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// commandBuffer is the capacity of the control channel. Commands are
// processed strictly in order; the buffer only decouples command methods
// from the state pipeline so that a sink callback may itself issue commands
// without cycling into the stage currently delivering to it.
const commandBuffer = 16

// errUnsubscribed is the cancelation cause used by Close.
// It is a clean teardown, never surfaced to the sink.
var errUnsubscribed = errors.New("unsubscribed")

// A PausableOption configures a Pausable.
type PausableOption func(opts *pausableOptions)

type pausableOptions struct {
	logger zerolog.Logger
}

// WithLogger sets the logger used to log lifecycle transitions.
// The default logger discards everything.
func WithLogger(logger zerolog.Logger) PausableOption {
	return func(opts *pausableOptions) {
		opts.logger = logger
	}
}

// Pausable is a start/stop/pause/resume controller over a wrapped producer.
//
// Commands issued through the handle fold into a lifecycle state, and the
// state gates the wrapped producer: entering Running subscribes it, leaving
// Running cancels the subscription. While Running, exactly one subscription
// to the wrapped producer is live, and its elements are forwarded unchanged
// to the sink; otherwise none are, and nothing is forwarded.
//
// Each Pausable owns its state and its subscription. Wrapping the same
// producer in two controllers yields two independently switched
// subscriptions.
type Pausable[T any] struct {
	commands chan Command
	cancel   context.CancelCauseFunc
	done     chan struct{}
	state    atomic.Int32
	logger   zerolog.Logger
}

// event carries either one element of the wrapped producer or its natural
// completion, in emission order, so that a completion can never overtake the
// elements before it.
type event[T any] struct {
	elem     T
	complete bool
}

// NewPausable returns a controller over prod, forwarding to sink.
//
// The controller starts out Stopped: prod is not subscribed until the first
// Start. The state pipeline itself is subscribed exactly once, here, and
// lives until ctx is canceled, Close is called, or prod cancels the stream
// with an error.
func NewPausable[T any](ctx context.Context, prod ProducerFunc[T], sink Sink[T], options ...PausableOption) *Pausable[T] {
	opts := pausableOptions{
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(&opts)
	}

	ctx, cancel := context.WithCancelCause(ctx)

	pausable := &Pausable[T]{
		commands: make(chan Command, commandBuffer),
		cancel:   cancel,
		done:     make(chan struct{}),
		logger:   opts.logger,
	}

	silence := Never[event[T]]()

	gate := SwitchMap(pausable.lifecycle(), func(_ context.Context, _ context.CancelCauseFunc, state State, _ uint64) ProducerFunc[event[T]] {
		if state == Running {
			return materialize(prod)
		}

		return silence
	})

	go pausable.run(ctx, gate, sink)

	return pausable
}

// Start subscribes the wrapped producer. Issued while already running, it
// tears down the current subscription and establishes a fresh one, which
// restarts a cold producer from the beginning of its sequence.
func (p *Pausable[T]) Start() {
	p.send(Start)
}

// Stop unsubscribes the wrapped producer. Unlike Close, Stop is reversible:
// a later Start subscribes again.
func (p *Pausable[T]) Stop() {
	p.send(Stop)
}

// Pause unsubscribes the wrapped producer. Ignored unless running.
func (p *Pausable[T]) Pause() {
	p.send(Pause)
}

// Resume resubscribes the wrapped producer. Ignored unless paused.
func (p *Pausable[T]) Resume() {
	p.send(Resume)
}

// Command dispatches cmd, behaving identically to the matching named method.
// It returns an error wrapping ErrInvalidCommand if cmd is not one of the
// four recognized commands.
func (p *Pausable[T]) Command(cmd Command) error {
	if !cmd.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidCommand, cmd)
	}

	p.send(cmd)

	return nil
}

// State returns the current lifecycle state.
func (p *Pausable[T]) State() State {
	return State(p.state.Load())
}

// Close unsubscribes the controller entirely: the control channel, the state
// pipeline, and any live subscription to the wrapped producer are torn down.
// It returns once no further sink callbacks can fire. Commands issued after
// Close are dropped.
//
// Close must not be called from within a sink callback.
func (p *Pausable[T]) Close() {
	p.cancel(errUnsubscribed)
	<-p.done
}

// send delivers cmd to the control channel, dropping it if the controller
// has been torn down. Command methods never fail and never block on a dead
// controller.
func (p *Pausable[T]) send(cmd Command) {
	select {
	case p.commands <- cmd:

	case <-p.done:
	}
}

// lifecycle returns the producer of lifecycle states: it consumes commands
// in arrival order, folds them through State.next, and produces a state
// whenever it changed, or whenever the command was Start (so that a repeated
// Start re-triggers the gate). Commands that change nothing are collapsed.
func (p *Pausable[T]) lifecycle() ProducerFunc[State] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan State {
		outCh := make(chan State)

		go func() {
			defer close(outCh)

			state := Stopped

			for {
				select {
				case cmd := <-p.commands:
					next := state.next(cmd)

					if next == state && cmd != Start {
						continue
					}

					p.logger.Debug().
						Stringer("command", cmd).
						Stringer("from", state).
						Stringer("to", next).
						Msg("lifecycle transition")

					state = next
					p.state.Store(int32(next))

					select {
					case outCh <- next:

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

// run is the single subscription binding the gated pipeline to the sink.
func (p *Pausable[T]) run(ctx context.Context, gate ProducerFunc[event[T]], sink Sink[T]) {
	defer close(p.done)
	defer p.state.Store(int32(Stopped))

	ch := gate(ctx, p.cancel)

	for ev := range ch {
		if ev.complete {
			sink.complete()
		} else {
			sink.value(ev.elem)
		}

		if contextDone(ctx) {
			break
		}
	}

	err := context.Cause(ctx)
	if err == nil || errors.Is(err, errUnsubscribed) || errors.Is(err, context.Canceled) {
		return
	}

	sink.fail(err)
}

// materialize turns prod's elements and its natural completion into a single
// ordered stream of events. A canceled subscription produces no completion
// event.
func materialize[T any](prod ProducerFunc[T]) ProducerFunc[event[T]] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan event[T] {
		ch := prod(ctx, cancel)

		outCh := make(chan event[T])

		go func() {
			defer close(outCh)

			for elem := range ch {
				select {
				case outCh <- event[T]{elem: elem}:

				case <-ctx.Done():
					return
				}
			}

			if contextDone(ctx) {
				return
			}

			select {
			case outCh <- event[T]{complete: true}:

			case <-ctx.Done():
			}
		}()

		return outCh
	}
}
