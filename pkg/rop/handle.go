package rop

import (
	"context"
	"errors"
)

// Handle invokes fn and adapts whatever happens: a normal return becomes
// Ok, a returned error or a panic becomes Err carrying the failure's
// message. Failures with no text map to "Unknown error".
func Handle[T any](fn func() (T, error)) Result[T, string] {
	return HandleWith(fn, errText)
}

// HandleWith is Handle with a caller-supplied error channel: the raw
// failure is normalized to an error without losing the original value and
// handed to mapErr.
func HandleWith[T, E any](fn func() (T, error), mapErr func(error) E) (res Result[T, E]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Err[T](mapErr(normalizePanic(rec)))
		}
	}()
	value, err := fn()
	if err != nil {
		return Err[T](mapErr(err))
	}
	return Ok[T, E](value)
}

// HandleCtx is Handle for context-aware computations.
func HandleCtx[T any](ctx context.Context, fn func(context.Context) (T, error)) Result[T, string] {
	return HandleWith(func() (T, error) { return fn(ctx) }, errText)
}

// HandleWithCtx is HandleWith for context-aware computations.
func HandleWithCtx[T, E any](ctx context.Context, fn func(context.Context) (T, error), mapErr func(error) E) Result[T, E] {
	return HandleWith(func() (T, error) { return fn(ctx) }, mapErr)
}

// normalizePanic converts a recovered panic value into an error. Errors
// pass through untouched, strings become the error message, anything else
// is wrapped in a PanicError.
func normalizePanic(rec any) error {
	switch v := rec.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	default:
		return &PanicError{Value: v}
	}
}

func errText(err error) string {
	if err == nil {
		return "Unknown error"
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Unknown error"
}
