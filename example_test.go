package gostreams

import (
	"context"
	"fmt"
	"strconv"
)

func Example() {
	// construct a producer from a slice
	ints := Produce([]int{1, 2, 3, 4, 5})

	// keep the odd elements
	ints = Filter(ints, FuncPredicate(func(elem int) bool {
		return elem%2 == 1
	}))

	// map elements by converting them to strings
	strs, _ := ReduceSlice(context.Background(), Map(ints, FuncMapper(strconv.Itoa)))

	fmt.Printf("%+v\n", strs)
	// Output: [1 3 5]
}

func ExamplePausable() {
	completed := make(chan struct{})

	values := []int{}

	// wrap a cold producer in a controller; nothing is produced yet
	pausable := NewPausable(context.Background(), Produce([]int{1, 2, 3}), Sink[int]{
		OnValue: func(elem int) {
			values = append(values, elem)
		},
		OnComplete: func() {
			close(completed)
		},
	})

	// subscribe the wrapped producer and wait for its sequence to finish
	pausable.Start()
	<-completed

	pausable.Close()

	fmt.Printf("%+v\n", values)
	// Output: [1 2 3]
}
