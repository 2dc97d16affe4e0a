package schema

import (
	"context"

	"github.com/ib-77/rop4/pkg/rop"
)

// Validate runs v over already-decoded data. Findings are flattened into
// the string error channel behind a fixed "Validation failed: " prefix.
func Validate[T any](ctx context.Context, data any, v Validator[T]) rop.Result[T, string] {
	value, iss := v.SafeParse(ctx, data)
	if len(iss) > 0 {
		return rop.Err[T]("Validation failed: " + iss.Error())
	}
	return rop.Ok[T, string](value)
}

// ValidateWith is Validate with a typed error channel: the raw Issues are
// handed to mapIssues instead of being flattened to text.
func ValidateWith[T, E any](ctx context.Context, data any, v Validator[T], mapIssues func(Issues) E) rop.Result[T, E] {
	value, iss := v.SafeParse(ctx, data)
	if len(iss) > 0 {
		return rop.Err[T](mapIssues(iss))
	}
	return rop.Ok[T, E](value)
}
