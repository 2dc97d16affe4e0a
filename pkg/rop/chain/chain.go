package chain

import (
	"github.com/ib-77/rop4/pkg/rop"
	"github.com/ib-77/rop4/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent composition. Chains are plain
// values; every step returns a new one.
type Chain[T, E any] struct {
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result.
func Start[T, E any](result rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{result: result}
}

// FromValue creates a new chain from a success value.
func FromValue[T, E any](value T) Chain[T, E] {
	return Chain[T, E]{result: rop.Ok[T, E](value)}
}

// Result returns the underlying rop.Result.
func (c Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

// Then chains a function that returns a rop.Result. Free function rather
// than a method: Go methods cannot introduce the new value type.
func Then[T, U, E any](c Chain[T, E], onSuccess func(T) rop.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{result: solo.AndThen(c.result, onSuccess)}
}

// ThenTry chains a function that returns (U, error), for chains on the
// plain error channel.
func ThenTry[T, U any](c Chain[T, error], try func(T) (U, error)) Chain[U, error] {
	return Chain[U, error]{result: solo.AndThen(c.result, func(v T) rop.Result[U, error] {
		return rop.FromTuple(try(v))
	})}
}

// Map chains a pure transformation of the success value.
func Map[T, U, E any](c Chain[T, E], onSuccess func(T) U) Chain[U, E] {
	return Chain[U, E]{result: solo.Map(c.result, onSuccess)}
}

// MapErr chains a transformation of the error payload.
func MapErr[T, E, F any](c Chain[T, E], onError func(E) F) Chain[T, F] {
	return Chain[T, F]{result: solo.MapErr(c.result, onError)}
}

// Tap performs a side effect on success without changing the chain.
func (c Chain[T, E]) Tap(onSuccess func(T)) Chain[T, E] {
	return Chain[T, E]{result: solo.Tap(c.result, onSuccess)}
}

// TapErr performs a side effect on failure without changing the chain.
func (c Chain[T, E]) TapErr(onError func(E)) Chain[T, E] {
	return Chain[T, E]{result: solo.TapErr(c.result, onError)}
}

// Fold collapses the chain into a final value via rop.Match.
func Fold[T, E, Out any](c Chain[T, E], onSuccess func(T) Out, onError func(E) Out) Out {
	return rop.Match(c.result, rop.Cases[T, E, Out]{Ok: onSuccess, Err: onError})
}
