// Package chain provides a fluent wrapper around rop.Result[T, E]
// for building synchronous railway-oriented chains from solo primitives.
//
// It composes functions like AndThen, Map, Tap and Match behind a
// convenient Chain[T, E] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new value type via a Result-returning function
// - ThenTry: call a function (U, error) and absorb the error channel
// - Map/MapErr: transform the success value or the error payload
// - Tap/TapErr: run side effects without changing the chain
// - Fold: collapse the chain into a final value via handlers
//
// Then, ThenTry, Map, MapErr and Fold are free functions because Go
// methods cannot introduce new type parameters.
package chain
