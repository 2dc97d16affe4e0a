package rop

// FromTuple adapts Go's (value, error) return convention: a non-nil error
// becomes Err, otherwise the value becomes Ok.
func FromTuple[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// FromPtr converts a possibly-nil pointer: nil maps to Err carrying
// missing, anything else to Ok of the pointed-to value.
func FromPtr[T, E any](p *T, missing E) Result[T, E] {
	if p == nil {
		return Err[T](missing)
	}
	return Ok[T, E](*p)
}
