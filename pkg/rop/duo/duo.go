package duo

import (
	"github.com/ib-77/rop4/pkg/rop"
)

// Pair carries the two success values produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs two successes. On failure the first operand wins: a is
// inspected before b, a fixed contract callers may rely on. An empty
// operand makes the whole result empty unless the other already failed.
func Zip[A, B, E any](a rop.Result[A, E], b rop.Result[B, E]) rop.Result[Pair[A, B], E] {
	if !a.IsOk() {
		return rop.ErrFrom[Pair[A, B]](a)
	}
	if !b.IsOk() {
		return rop.ErrFrom[Pair[A, B]](b)
	}
	return rop.Ok[Pair[A, B], E](Pair[A, B]{First: a.Value(), Second: b.Value()})
}

// ZipWith combines two successes through merge, with Zip's priority rules.
func ZipWith[A, B, Out, E any](a rop.Result[A, E], b rop.Result[B, E], merge func(A, B) Out) rop.Result[Out, E] {
	if !a.IsOk() {
		return rop.ErrFrom[Out](a)
	}
	if !b.IsOk() {
		return rop.ErrFrom[Out](b)
	}
	return rop.Ok[Out, E](merge(a.Value(), b.Value()))
}

// Apply runs a wrapped function over a wrapped argument. The function
// operand is inspected before the argument when either side failed.
func Apply[A, Out, E any](fn rop.Result[func(A) Out, E], a rop.Result[A, E]) rop.Result[Out, E] {
	if !fn.IsOk() {
		return rop.ErrFrom[Out](fn)
	}
	if !a.IsOk() {
		return rop.ErrFrom[Out](a)
	}
	return rop.Ok[Out, E](fn.Value()(a.Value()))
}

// Or keeps the first success of the two, then the first failure. Two empty
// operands stay empty.
func Or[T, E any](a, b rop.Result[T, E]) rop.Result[T, E] {
	if a.IsOk() {
		return a
	}
	if b.IsOk() {
		return b
	}
	if a.IsErr() {
		return a
	}
	return b
}

// And demands both operands succeed and keeps the second success. Failures
// win with first-operand priority; an empty operand wins over a success.
func And[T, E any](a, b rop.Result[T, E]) rop.Result[T, E] {
	if a.IsErr() {
		return a
	}
	if b.IsErr() {
		return b
	}
	if a.IsEmpty() {
		return a
	}
	return b
}
