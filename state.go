package gostreams

import "fmt"

// State is the lifecycle state of a Pausable.
// The zero value is Stopped, which is also the initial state of every
// controller before it has processed any command.
type State uint8

const (
	// Stopped means the wrapped producer is not subscribed.
	Stopped State = iota

	// Running means exactly one subscription to the wrapped producer is live.
	Running

	// Paused means the wrapped producer is not subscribed, but was running
	// before and can be resubscribed by Resume.
	Paused
)

// next returns the state reached from s by processing cmd.
// It is pure and total: invalid transitions return s unchanged.
//
//	         start    stop     pause    resume
//	stopped  running  stopped  stopped  stopped
//	running  running  stopped  paused   running
//	paused   running  stopped  paused   running
func (s State) next(cmd Command) State {
	switch cmd {
	case Start:
		return Running

	case Stop:
		return Stopped

	case Pause:
		if s == Running {
			return Paused
		}
		return s

	case Resume:
		if s == Paused {
			return Running
		}
		return s
	}

	return s
}

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}
