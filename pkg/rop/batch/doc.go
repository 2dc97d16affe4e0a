// Package batch processes slices of rop.Result values: collecting,
// splitting, counting, searching and folding whole batches in single
// passes.
//
// Highlights:
// - All/Traverse: collect every success, failing fast on the first error
// - Oks/Errs/Partition: extract one or both channels, preserving order
// - PartitionWith/Analyze: split or count a batch in one pass
// - FindFirst/First: locate the earliest success or failure
// - Reduce: fold both channels into one accumulator
//
// Empty Results (the zero value) mark absent entries. Every function in
// this package skips them, so a sparse batch behaves like a dense batch of
// its non-empty entries.
package batch
