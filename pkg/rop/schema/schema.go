package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Issue codes produced by common validators. Exported as consts for IDE
// completion; validators are free to define their own.
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeInvalidFormat = "invalid_format"
	CodeParseError    = "parse_error"
)

// Issue represents a single validation finding.
type Issue struct {
	Path    string // JSON-Pointer-style location, for example /items/2/price.
	Code    string
	Message string
}

// Issues is a collection of validation findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		text := it.Message
		if text == "" {
			text = it.Code
		}
		if it.Path == "" {
			b.WriteString(text)
			continue
		}
		fmt.Fprintf(b, "%s at %s", text, it.Path)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Validator is the collaborator contract: turn raw decoded input into a T
// or report the findings. A nil or empty Issues slice means success.
// Implementations must report malformed input through Issues rather than
// panicking. Value-only validators may ignore the context; validators that
// perform I/O should honor it.
type Validator[T any] interface {
	SafeParse(ctx context.Context, input any) (T, Issues)
}

// Func adapts a plain function to the Validator interface.
type Func[T any] func(ctx context.Context, input any) (T, Issues)

func (f Func[T]) SafeParse(ctx context.Context, input any) (T, Issues) {
	return f(ctx, input)
}
