// Package safe runs a sequence of fallible steps as straight-line code.
// Inside a Run closure, Try unwraps each intermediate Result; the first
// failure aborts the remaining steps and Run returns that failure as Err.
//
//	out := safe.Run(func(s *safe.Scope[string]) string {
//		user := safe.Try(s, findUser(id))
//		addr := safe.Try(s, findAddress(user))
//		return addr.City
//	})
//
// The abort travels as a panic owned by the scope, so deferred cleanup
// between the failing step and Run still executes, and unrelated panics
// propagate unchanged. Use RunCtx when steps need a context.
package safe
