// Package solo contains single-value, synchronous primitives that operate
// on rop.Result[T, E]. These functions form the building blocks for
// error-aware pipelines without channels or goroutines.
//
// Highlights:
// - Map/MapErr: transform the success value or the error payload
// - AndThen: move from Result[In, E] to Result[Out, E], short-circuiting on failure
// - OrElse: recover from a failure, optionally re-typing the error channel
// - Tap/TapErr: side-effect helpers that leave the result untouched
// - Filter: demote a success that fails a predicate
// - Pipe/Pipe2/Pipe3: run a fixed pipeline of steps, stopping at the first failure
//
// Failed and empty inputs pass through every function unchanged apart from
// re-typing, so steps behind a failure never run.
package solo
