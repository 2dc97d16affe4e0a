// Package duo combines two independent rop.Result values that were
// produced without knowledge of each other.
//
// Highlights:
// - Zip/ZipWith: merge two successes into a Pair or a derived value
// - Apply: run a Result-wrapped function over a Result-wrapped argument
// - Or/And: pick between two alternatives or demand both
//
// Unlike solo.AndThen chains, both operands here already exist when the
// combinator runs; nothing is short-circuited, only selected. When both
// operands failed, the first operand's error is the one reported.
package duo
