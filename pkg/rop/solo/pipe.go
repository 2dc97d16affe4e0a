package solo

import (
	"github.com/ib-77/rop4/pkg/rop"
)

// Pipe feeds input through steps left to right, stopping at the first step
// whose outcome is not Ok. Steps after the stopping point are never
// invoked.
func Pipe[T, E any](input rop.Result[T, E], steps ...func(T) rop.Result[T, E]) rop.Result[T, E] {
	current := input
	for _, step := range steps {
		if !current.IsOk() {
			return current
		}
		current = step(current.Value())
	}
	return current
}

// Pipe2 composes two type-changing steps with the same short-circuiting as
// Pipe. Type-changing steps cannot share a variadic signature, so the
// fixed-arity forms cover the common pipeline lengths.
func Pipe2[In, Mid, Out, E any](input rop.Result[In, E],
	first func(In) rop.Result[Mid, E],
	second func(Mid) rop.Result[Out, E]) rop.Result[Out, E] {
	return AndThen(AndThen(input, first), second)
}

// Pipe3 composes three type-changing steps.
func Pipe3[In, Mid1, Mid2, Out, E any](input rop.Result[In, E],
	first func(In) rop.Result[Mid1, E],
	second func(Mid1) rop.Result[Mid2, E],
	third func(Mid2) rop.Result[Out, E]) rop.Result[Out, E] {
	return AndThen(Pipe2(input, first, second), third)
}
