package safe

import (
	"context"

	"github.com/ib-77/rop4/pkg/rop"
)

// Scope owns the early-exit channel of one Run invocation. It must stay
// inside the closure it was handed to: keeping it past Run's return or
// passing it to another goroutine breaks the abort plumbing.
type Scope[E any] struct {
	err E
}

// abortSignal is the panic payload Try uses to unwind to the owning Run.
// It carries the scope so nested runs can tell their own aborts from those
// of an enclosing scope.
type abortSignal struct {
	scope any
}

// fail aborts the surrounding Run with err. Deferred functions between the
// abort site and Run still execute during unwinding.
func (s *Scope[E]) fail(err E) {
	s.err = err
	panic(abortSignal{scope: s})
}

// Run executes fn with a fresh scope. A normal return becomes Ok; an abort
// raised through Try (or TryTuple) becomes Err carrying the failing
// payload. Panics that are not this scope's abort propagate unchanged.
func Run[T, E any](fn func(*Scope[E]) T) (out rop.Result[T, E]) {
	scope := &Scope[E]{}
	defer recoverAbort(scope, &out)
	return rop.Ok[T, E](fn(scope))
}

// RunCtx is Run for context-aware sequences: fn receives ctx alongside the
// scope so individual steps can honor deadlines.
func RunCtx[T, E any](ctx context.Context, fn func(context.Context, *Scope[E]) T) (out rop.Result[T, E]) {
	scope := &Scope[E]{}
	defer recoverAbort(scope, &out)
	return rop.Ok[T, E](fn(ctx, scope))
}

func recoverAbort[T, E any](scope *Scope[E], out *rop.Result[T, E]) {
	rec := recover()
	if rec == nil {
		return
	}
	if sig, ok := rec.(abortSignal); ok && sig.scope == scope {
		*out = rop.Err[T](scope.err)
		return
	}
	panic(rec)
}

// Try unwraps r inside a Run closure: Ok yields the plain value, Err
// aborts the whole closure with that payload. An empty Result is a
// programmer error and panics.
func Try[V, E any](s *Scope[E], r rop.Result[V, E]) V {
	if r.IsOk() {
		return r.Value()
	}
	if r.IsEmpty() {
		panic("safe: Try on empty Result")
	}
	s.fail(r.Err())
	return r.Value() // unreachable, fail panics
}

// TryTuple adapts a (value, error) call for scopes on the error channel: a
// non-nil error aborts the closure.
func TryTuple[V any](s *Scope[error], value V, err error) V {
	if err != nil {
		s.fail(err)
	}
	return value
}
