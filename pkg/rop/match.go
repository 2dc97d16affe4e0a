package rop

// Cases bundles the two variant handlers consumed by Match.
type Cases[T, E, Out any] struct {
	Ok  func(T) Out
	Err func(E) Out
}

// Match dispatches r to exactly one handler and returns what it produces.
// The handler for the hit variant must be non-nil, and r must not be
// empty; both are programmer errors and panic.
func Match[T, E, Out any](r Result[T, E], cases Cases[T, E, Out]) Out {
	switch r.tag {
	case tagOk:
		if cases.Ok == nil {
			panic("rop: Match with nil Ok handler")
		}
		return cases.Ok(r.value)
	case tagErr:
		if cases.Err == nil {
			panic("rop: Match with nil Err handler")
		}
		return cases.Err(r.err)
	}
	panic("rop: Match on empty Result")
}
