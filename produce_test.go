package gostreams

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestProduce(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ints := []int{}
	for i := range Produce([]int{1, 2}, []int{3, 4, 5})(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2, 3, 4, 5})
}

func TestProduceCold(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	prod := Produce([]int{1, 2, 3})

	first, err := ReduceSlice(ctx, prod)
	is.NoErr(err)

	second, err := ReduceSlice(ctx, prod)
	is.NoErr(err)

	is.Equal(first, second)
}

func TestProduceChannel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	intsCh1 := Produce([]int{1, 2})(ctx, cancel)
	intsCh2 := Produce([]int{3, 4, 5})(ctx, cancel)

	ints := []int{}
	for i := range ProduceChannel(intsCh1, intsCh2)(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2, 3, 4, 5})
}

func TestProduceChannelHot(t *testing.T) {
	is := is.New(t)

	src := make(chan int, 8)

	var srcCh <-chan int = src

	prod := ProduceChannel(srcCh)

	ctx1, cancel1 := context.WithCancelCause(context.Background())

	src <- 1
	src <- 2

	ch1 := prod(ctx1, cancel1)
	is.Equal(<-ch1, 1)
	is.Equal(<-ch1, 2)

	cancel1(nil)

	// let the first subscription unwind before feeding more elements
	time.Sleep(10 * time.Millisecond)

	src <- 3
	close(src)

	ctx2, cancel2 := context.WithCancelCause(context.Background())
	defer cancel2(nil)

	ints := []int{}
	for i := range prod(ctx2, cancel2) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{3})
}

func TestTick(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints, err := ReduceSlice(ctx, Limit(Tick(10*time.Millisecond), 3))
	is.NoErr(err)
	is.Equal(ints, []uint64{0, 1, 2})
}

func TestNever(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())

	ch := Never[int]()(ctx, cancel)

	select {
	case <-ch:
		is.Fail() // produced an element or completed

	case <-time.After(50 * time.Millisecond):
	}

	cancel(nil)

	_, ok := <-ch
	is.True(!ok)
}

func TestFail(t *testing.T) {
	is := is.New(t)

	errProducer := errors.New("producer failed")

	ctx, cancel := context.WithCancelCause(context.Background())

	ch := Fail[int](errProducer)(ctx, cancel)

	_, ok := <-ch
	is.True(!ok)
	is.Equal(context.Cause(ctx), errProducer)
}
