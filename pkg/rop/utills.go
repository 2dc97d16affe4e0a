package rop

import (
	"context"
	"errors"
)

// IsCancellation reports whether err stems from context cancellation or an
// expired deadline, directly or through wrapping.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
