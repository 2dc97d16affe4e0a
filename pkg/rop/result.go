// Package rop implements Result[T, E], a two-variant value for
// railway-oriented pipelines: a computation either carries a success value
// forward or carries an error payload, never both.
package rop

// Variant tags. The zero tag marks an empty Result so that the zero value
// of the type belongs to neither variant.
const (
	tagEmpty uint8 = iota
	tagOk
	tagErr
)

// Result holds either a success value of type T or an error payload of
// type E, never both. Results are plain values: two Results built from
// equal payloads compare equal with ==, and the zero value is empty.
type Result[T, E any] struct {
	value T
	err   E
	tag   uint8
}

// Ok wraps a value as a success.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
		tag:   tagOk,
	}
}

// Err wraps an error payload as a failure.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
		tag: tagErr,
	}
}

// ErrFrom re-types a non-Ok Result, carrying its error payload (or its
// emptiness) into a Result with a different value type. Calling it on an
// Ok Result is a programmer error.
func ErrFrom[Out, In, E any](from Result[In, E]) Result[Out, E] {
	if from.tag == tagOk {
		panic("rop: ErrFrom on Ok Result")
	}
	return Result[Out, E]{
		err: from.err,
		tag: from.tag,
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.tag == tagOk
}

func (r Result[T, E]) IsErr() bool {
	return r.tag == tagErr
}

// IsEmpty reports whether r is the zero Result, holding neither variant.
// Batch operations skip empty entries; Unwrap and Match treat them as
// contract violations.
func (r Result[T, E]) IsEmpty() bool {
	return r.tag == tagEmpty
}

// Value returns the success value, or the zero value of T when r is not Ok.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the error payload, or the zero value of E when r is not Err.
func (r Result[T, E]) Err() E {
	return r.err
}

// Unwrap returns the success value or panics. When the error payload is
// itself an error it becomes the panic value unchanged; a string payload
// panics as an UnwrapError whose message is the string verbatim; any other
// payload panics as an UnwrapError embedding it.
func (r Result[T, E]) Unwrap() T {
	switch r.tag {
	case tagOk:
		return r.value
	case tagErr:
		if err, ok := any(r.err).(error); ok && err != nil {
			panic(err)
		}
		panic(&UnwrapError{Payload: r.err})
	}
	panic("rop: Unwrap on empty Result")
}

// UnwrapOr returns the success value, or fallback when r is not Ok.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.tag == tagOk {
		return r.value
	}
	return fallback
}

// UnwrapOrElse returns the success value, or derives one from the error
// payload. Empty Results hand fn the zero value of E.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.tag == tagOk {
		return r.value
	}
	return fn(r.err)
}

// UnwrapErr returns the error payload or panics when r is not Err.
func (r Result[T, E]) UnwrapErr() E {
	if r.tag != tagErr {
		panic("rop: UnwrapErr on non-Err Result")
	}
	return r.err
}

// ToPtr returns a pointer to a copy of the success value, or nil when r is
// not Ok.
func (r Result[T, E]) ToPtr() *T {
	if r.tag != tagOk {
		return nil
	}
	v := r.value
	return &v
}
