// Package gostreams provides pausable, switchable streams of elements.
//
// Streams are represented as ProducerFuncs, which produce elements from
// slices, channels, timers, or any arbitrary push-based source. Subscribing
// to a producer means calling it with a cancelable context; unsubscribing
// means canceling that context. A producer signals completion by closing its
// output channel, and signals an error by canceling the stream's context
// with a cause.
//
// Intermediate operations such as mapping, filtering, peeking, and folding
// transform one producer into another. SwitchMap composes producers
// exclusively: each element of an outer stream selects a new inner producer,
// and the previous inner subscription is torn down before the next one is
// established.
//
// The centerpiece is Pausable, a start/stop/pause/resume controller for a
// wrapped producer. Commands fold into a lifecycle state, and the state
// gates the wrapped producer through SwitchMap: while running, exactly one
// subscription to the wrapped producer is live; while paused or stopped,
// none are. Pausing is therefore unsubscription, not value-dropping: timers,
// sockets, and polling inside the wrapped producer stop while paused.
//
// Finally, elements are consumed by Sinks or by terminal operations such as
// Each and ReduceSlice.
package gostreams
