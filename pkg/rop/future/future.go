package future

import (
	"context"

	"github.com/ib-77/rop4/pkg/rop"
	"github.com/ib-77/rop4/pkg/rop/safe"
	"github.com/ib-77/rop4/pkg/rop/solo"
)

// Future is a lazy, context-aware computation resolving to a rop.Result.
// Building one runs nothing; awaiting means calling it. The library spawns
// goroutines only inside the joins (Join, All, AllN, AllSettled, ToChan).
type Future[T, E any] func(ctx context.Context) rop.Result[T, E]

// Pure lifts a value into an always-Ok future.
func Pure[T, E any](value T) Future[T, E] {
	return func(context.Context) rop.Result[T, E] {
		return rop.Ok[T, E](value)
	}
}

// Reject lifts an error payload into an always-Err future.
func Reject[T, E any](err E) Future[T, E] {
	return func(context.Context) rop.Result[T, E] {
		return rop.Err[T](err)
	}
}

// Of lifts an already-materialized result.
func Of[T, E any](result rop.Result[T, E]) Future[T, E] {
	return func(context.Context) rop.Result[T, E] {
		return result
	}
}

// Map transforms the eventual success value.
func Map[In, Out, E any](f Future[In, E], onSuccess func(In) Out) Future[Out, E] {
	return func(ctx context.Context) rop.Result[Out, E] {
		return solo.Map(f(ctx), onSuccess)
	}
}

// MapErr transforms the eventual error payload.
func MapErr[T, E, F any](f Future[T, E], onError func(E) F) Future[T, F] {
	return func(ctx context.Context) rop.Result[T, F] {
		return solo.MapErr(f(ctx), onError)
	}
}

// AndThen sequences two futures: the second is built from the first's
// success value and awaited under the same context. A failed first future
// short-circuits.
func AndThen[In, Out, E any](f Future[In, E], onSuccess func(In) Future[Out, E]) Future[Out, E] {
	return func(ctx context.Context) rop.Result[Out, E] {
		input := f(ctx)
		if !input.IsOk() {
			return rop.ErrFrom[Out](input)
		}
		return onSuccess(input.Value())(ctx)
	}
}

// Then sequences a future with a synchronous Result-returning step.
func Then[In, Out, E any](f Future[In, E], onSuccess func(In) rop.Result[Out, E]) Future[Out, E] {
	return func(ctx context.Context) rop.Result[Out, E] {
		return solo.AndThen(f(ctx), onSuccess)
	}
}

// Tap runs a side effect on the eventual success value.
func Tap[T, E any](f Future[T, E], onSuccess func(T)) Future[T, E] {
	return func(ctx context.Context) rop.Result[T, E] {
		return solo.Tap(f(ctx), onSuccess)
	}
}

// Handle defers a fallible context-aware call: on await, a returned error
// or a panic becomes Err carrying the failure's message, like rop.Handle.
func Handle[T any](fn func(context.Context) (T, error)) Future[T, string] {
	return func(ctx context.Context) rop.Result[T, string] {
		return rop.HandleCtx(ctx, fn)
	}
}

// HandleWith is Handle with a typed error channel built by mapErr.
func HandleWith[T, E any](fn func(context.Context) (T, error), mapErr func(error) E) Future[T, E] {
	return func(ctx context.Context) rop.Result[T, E] {
		return rop.HandleWithCtx(ctx, fn, mapErr)
	}
}

// Safe defers a safe.RunCtx step sequence, so early-exit pipelines can be
// awaited like any other future.
func Safe[T, E any](fn func(ctx context.Context, s *safe.Scope[E]) T) Future[T, E] {
	return func(ctx context.Context) rop.Result[T, E] {
		return safe.RunCtx(ctx, fn)
	}
}
