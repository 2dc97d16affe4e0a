package schema

import (
	"context"
	"fmt"

	j "github.com/goccy/go-json"

	"github.com/ib-77/rop4/pkg/rop"
)

// ParseJSON decodes raw JSON and validates the decoded value. Malformed
// JSON fails with an "Invalid JSON: " message before the validator runs.
func ParseJSON[T any](ctx context.Context, data []byte, v Validator[T]) rop.Result[T, string] {
	var decoded any
	if err := j.Unmarshal(data, &decoded); err != nil {
		return rop.Err[T]("Invalid JSON: " + err.Error())
	}
	return Validate(ctx, decoded, v)
}

// ParseJSONWith is ParseJSON with a typed error channel. Decode failures
// and validation findings both reach mapErr as errors; AsIssues recovers
// the structured findings from the latter.
func ParseJSONWith[T, E any](ctx context.Context, data []byte, v Validator[T], mapErr func(error) E) rop.Result[T, E] {
	var decoded any
	if err := j.Unmarshal(data, &decoded); err != nil {
		return rop.Err[T](mapErr(fmt.Errorf("invalid JSON: %w", err)))
	}
	value, iss := v.SafeParse(ctx, decoded)
	if len(iss) > 0 {
		return rop.Err[T](mapErr(iss))
	}
	return rop.Ok[T, E](value)
}
