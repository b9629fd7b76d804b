package gostreams

import (
	"errors"
	"fmt"
)

// Command instructs a Pausable to transition its lifecycle state.
type Command uint8

const (
	// Start subscribes the wrapped producer. Issued while already running,
	// it tears down the current subscription and establishes a fresh one.
	Start Command = iota

	// Stop unsubscribes the wrapped producer from any state.
	Stop

	// Pause unsubscribes the wrapped producer. Only effective while running.
	Pause

	// Resume resubscribes the wrapped producer. Only effective while paused.
	Resume

	numCommands
)

// ErrInvalidCommand is returned for a command outside the four recognized ones.
var ErrInvalidCommand = errors.New("invalid command")

// ParseCommand returns the Command named by name.
// It returns an error wrapping ErrInvalidCommand if name is not one of
// "start", "stop", "pause", or "resume".
func ParseCommand(name string) (Command, error) {
	switch name {
	case "start":
		return Start, nil
	case "stop":
		return Stop, nil
	case "pause":
		return Pause, nil
	case "resume":
		return Resume, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidCommand, name)
}

// valid returns true if cmd is one of the four recognized commands.
func (cmd Command) valid() bool {
	return cmd < numCommands
}

// String implements fmt.Stringer.
func (cmd Command) String() string {
	switch cmd {
	case Start:
		return "start"
	case Stop:
		return "stop"
	case Pause:
		return "pause"
	case Resume:
		return "resume"
	default:
		return fmt.Sprintf("command(%d)", uint8(cmd))
	}
}
