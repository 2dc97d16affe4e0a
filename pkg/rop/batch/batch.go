package batch

import (
	"github.com/ib-77/rop4/pkg/rop"
)

// All collects every success value in input order. The first Err wins and
// is returned with the value channel re-typed; entries after it are not
// inspected. Empty entries are skipped. No entries at all yields Ok of an
// empty slice.
func All[T, E any](inputs []rop.Result[T, E]) rop.Result[[]T, E] {
	values := make([]T, 0, len(inputs))
	for _, r := range inputs {
		if r.IsEmpty() {
			continue
		}
		if r.IsErr() {
			return rop.ErrFrom[[]T](r)
		}
		values = append(values, r.Value())
	}
	return rop.Ok[[]T, E](values)
}

// Oks extracts the success values, keeping input order.
func Oks[T, E any](inputs []rop.Result[T, E]) []T {
	values := make([]T, 0, len(inputs))
	for _, r := range inputs {
		if r.IsOk() {
			values = append(values, r.Value())
		}
	}
	return values
}

// Errs extracts the error payloads, keeping input order.
func Errs[T, E any](inputs []rop.Result[T, E]) []E {
	errs := make([]E, 0, len(inputs))
	for _, r := range inputs {
		if r.IsErr() {
			errs = append(errs, r.Err())
		}
	}
	return errs
}

// Partition splits inputs into success values and error payloads in one
// pass. Every non-empty entry lands in exactly one of the two slices.
func Partition[T, E any](inputs []rop.Result[T, E]) ([]T, []E) {
	values := make([]T, 0, len(inputs))
	errs := make([]E, 0, len(inputs))
	for _, r := range inputs {
		switch {
		case r.IsOk():
			values = append(values, r.Value())
		case r.IsErr():
			errs = append(errs, r.Err())
		}
	}
	return values, errs
}

// Split is the outcome of PartitionWith: both channels plus the counts
// gathered during the same pass.
type Split[T, E any] struct {
	Oks      []T
	Errs     []E
	OkCount  int
	ErrCount int
	Total    int
}

// PartitionWith partitions inputs and counts both channels in a single
// pass. Total counts non-empty entries only.
func PartitionWith[T, E any](inputs []rop.Result[T, E]) Split[T, E] {
	split := Split[T, E]{
		Oks:  make([]T, 0, len(inputs)),
		Errs: make([]E, 0, len(inputs)),
	}
	for _, r := range inputs {
		switch {
		case r.IsOk():
			split.Oks = append(split.Oks, r.Value())
			split.OkCount++
		case r.IsErr():
			split.Errs = append(split.Errs, r.Err())
			split.ErrCount++
		default:
			continue
		}
		split.Total++
	}
	return split
}

// Stats summarizes a batch without extracting any payloads.
type Stats struct {
	OkCount   int
	ErrCount  int
	Total     int
	HasErrors bool
	IsEmpty   bool
}

// Analyze counts both channels in one pass. Empty entries count toward
// neither channel nor the total.
func Analyze[T, E any](inputs []rop.Result[T, E]) Stats {
	var stats Stats
	for _, r := range inputs {
		switch {
		case r.IsOk():
			stats.OkCount++
		case r.IsErr():
			stats.ErrCount++
		}
	}
	stats.Total = stats.OkCount + stats.ErrCount
	stats.HasErrors = stats.ErrCount > 0
	stats.IsEmpty = stats.Total == 0
	return stats
}

// FirstHits reports the earliest success and the earliest failure of a
// batch. An index of -1 marks a channel that never appeared; indexes refer
// to positions in the original input.
type FirstHits[T, E any] struct {
	Ok       T
	Err      E
	OkIndex  int
	ErrIndex int
}

// FindFirst scans for the first success and first failure, stopping as
// soon as both are found.
func FindFirst[T, E any](inputs []rop.Result[T, E]) FirstHits[T, E] {
	hits := FirstHits[T, E]{OkIndex: -1, ErrIndex: -1}
	for i, r := range inputs {
		switch {
		case r.IsOk() && hits.OkIndex == -1:
			hits.Ok = r.Value()
			hits.OkIndex = i
		case r.IsErr() && hits.ErrIndex == -1:
			hits.Err = r.Err()
			hits.ErrIndex = i
		}
		if hits.OkIndex != -1 && hits.ErrIndex != -1 {
			break
		}
	}
	return hits
}

// Folder carries the per-channel accumulator callbacks for Reduce. A nil
// callback leaves the accumulator untouched for entries of that channel.
type Folder[T, E, Acc any] struct {
	OnOk  func(acc Acc, value T, index int) Acc
	OnErr func(acc Acc, err E, index int) Acc
}

// Reduce folds a batch into a single accumulator, visiting every non-empty
// entry in input order.
func Reduce[T, E, Acc any](inputs []rop.Result[T, E], fold Folder[T, E, Acc], initial Acc) Acc {
	acc := initial
	for i, r := range inputs {
		switch {
		case r.IsOk():
			if fold.OnOk != nil {
				acc = fold.OnOk(acc, r.Value(), i)
			}
		case r.IsErr():
			if fold.OnErr != nil {
				acc = fold.OnErr(acc, r.Err(), i)
			}
		}
	}
	return acc
}

// First returns the earliest success, not inspecting anything after it.
// When no success exists the Err carries every error payload met along the
// way, in input order.
func First[T, E any](inputs []rop.Result[T, E]) rop.Result[T, []E] {
	errs := make([]E, 0, len(inputs))
	for _, r := range inputs {
		if r.IsOk() {
			return rop.Ok[T, []E](r.Value())
		}
		if r.IsErr() {
			errs = append(errs, r.Err())
		}
	}
	return rop.Err[T](errs)
}

// Traverse maps items through step, failing fast: the first Err is
// returned as-is and later items are never handed to step.
func Traverse[In, Out, E any](items []In, step func(In) rop.Result[Out, E]) rop.Result[[]Out, E] {
	values := make([]Out, 0, len(items))
	for _, item := range items {
		r := step(item)
		if r.IsEmpty() {
			continue
		}
		if r.IsErr() {
			return rop.ErrFrom[[]Out](r)
		}
		values = append(values, r.Value())
	}
	return rop.Ok[[]Out, E](values)
}
