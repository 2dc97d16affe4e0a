package rop

import "fmt"

// UnwrapError is the panic payload produced by Unwrap on an Err Result
// whose error payload does not satisfy error. A string payload becomes the
// message verbatim; any other payload is embedded structurally.
type UnwrapError struct {
	Payload any
}

func (e *UnwrapError) Error() string {
	if s, ok := e.Payload.(string); ok {
		return s
	}
	return fmt.Sprintf("rop: unwrap failed: %+v", e.Payload)
}

// PanicError wraps a recovered panic value that is neither an error nor a
// string, keeping the original value inspectable by callers of Handle.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %+v", e.Value)
}
