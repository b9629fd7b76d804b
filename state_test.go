package gostreams

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

func TestStateTransitions(t *testing.T) {
	is := is.New(t)

	transitions := map[State]map[Command]State{
		Stopped: {Start: Running, Stop: Stopped, Pause: Stopped, Resume: Stopped},
		Running: {Start: Running, Stop: Stopped, Pause: Paused, Resume: Running},
		Paused:  {Start: Running, Stop: Stopped, Pause: Paused, Resume: Running},
	}

	for state, commands := range transitions {
		for cmd, want := range commands {
			is.Equal(state.next(cmd), want)
		}
	}
}

func TestStateFold(t *testing.T) {
	is := is.New(t)

	tests := []struct {
		commands []Command
		want     State
	}{
		{[]Command{}, Stopped},
		{[]Command{Pause}, Stopped},
		{[]Command{Resume}, Stopped},
		{[]Command{Pause, Resume, Pause}, Stopped},
		{[]Command{Start}, Running},
		{[]Command{Start, Start}, Running},
		{[]Command{Start, Pause}, Paused},
		{[]Command{Start, Pause, Pause}, Paused},
		{[]Command{Start, Pause, Resume}, Running},
		{[]Command{Start, Resume}, Running},
		{[]Command{Start, Resume, Resume}, Running},
		{[]Command{Start, Pause, Stop}, Stopped},
		{[]Command{Start, Stop, Resume}, Stopped},
		{[]Command{Start, Stop, Pause}, Stopped},
		{[]Command{Start, Stop, Start}, Running},
		{[]Command{Stop, Stop, Stop}, Stopped},
	}

	for _, test := range tests {
		state := Stopped
		for _, cmd := range test.commands {
			state = state.next(cmd)
		}

		is.Equal(state, test.want)
	}
}

func TestStateFoldStream(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	commands := Produce([]Command{Start, Pause, Resume, Stop})

	states, err := ReduceSlice(ctx, Scan(commands, Stopped,
		func(_ context.Context, _ context.CancelCauseFunc, cmd Command, _ uint64, acc State) State {
			return acc.next(cmd)
		}))

	is.NoErr(err)
	is.Equal(states, []State{Running, Paused, Running, Stopped})
}

func TestStateString(t *testing.T) {
	is := is.New(t)

	is.Equal(Stopped.String(), "stopped")
	is.Equal(Running.String(), "running")
	is.Equal(Paused.String(), "paused")
}
