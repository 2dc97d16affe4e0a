// Package future provides lazy, context-aware computations that resolve to
// rop.Result values, plus the joins that await whole groups of them.
//
// Highlights:
// - Pure/Reject/Of: lift values, errors or results into futures
// - Map/MapErr/AndThen/Then/Tap: compose work before anything runs
// - Handle/HandleWith: defer fallible (value, error) calls, recovering panics
// - Safe: defer an early-exit step sequence (see package safe)
// - Join/All/AllSettled: fan out, await everything, return in input order
// - JoinN/AllN: the same with a fixed number of lines in flight
// - ToChan/Feed/Collect/Drain: bridge futures and channels
//
// A Future runs synchronously in the caller's goroutine when awaited
// directly; only the joins and ToChan spawn goroutines. All never abandons
// in-flight futures: it awaits the whole group, then reports the first
// failure by input position.
package future
