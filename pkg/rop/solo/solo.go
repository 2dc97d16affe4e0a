package solo

import (
	"github.com/ib-77/rop4/pkg/rop"
)

func Map[In, Out, E any](input rop.Result[In, E], onSuccess func(In) Out) rop.Result[Out, E] {
	if input.IsOk() {
		return rop.Ok[Out, E](onSuccess(input.Value()))
	}
	return rop.ErrFrom[Out](input)
}

func MapErr[T, E, F any](input rop.Result[T, E], onError func(E) F) rop.Result[T, F] {
	if input.IsErr() {
		return rop.Err[T](onError(input.Err()))
	}
	if input.IsOk() {
		return rop.Ok[T, F](input.Value())
	}
	var empty rop.Result[T, F]
	return empty
}

func AndThen[In, Out, E any](input rop.Result[In, E], onSuccess func(In) rop.Result[Out, E]) rop.Result[Out, E] {
	if input.IsOk() {
		return onSuccess(input.Value())
	}
	return rop.ErrFrom[Out](input)
}

func OrElse[T, E, F any](input rop.Result[T, E], onError func(E) rop.Result[T, F]) rop.Result[T, F] {
	if input.IsErr() {
		return onError(input.Err())
	}
	if input.IsOk() {
		return rop.Ok[T, F](input.Value())
	}
	var empty rop.Result[T, F]
	return empty
}

func Tap[T, E any](input rop.Result[T, E], onSuccess func(T)) rop.Result[T, E] {
	if input.IsOk() {
		onSuccess(input.Value())
	}
	return input
}

func TapErr[T, E any](input rop.Result[T, E], onError func(E)) rop.Result[T, E] {
	if input.IsErr() {
		onError(input.Err())
	}
	return input
}

func Filter[T, E any](input rop.Result[T, E], valid func(T) bool, invalid E) rop.Result[T, E] {
	if input.IsOk() && !valid(input.Value()) {
		return rop.Err[T](invalid)
	}
	return input
}
