package future

import (
	"context"
	"sync"

	"github.com/ib-77/rop4/pkg/rop"
	"github.com/ib-77/rop4/pkg/rop/batch"
)

// Join awaits every future concurrently and returns the results in input
// order, regardless of completion order.
func Join[T, E any](ctx context.Context, futures []Future[T, E]) []rop.Result[T, E] {
	results := make([]rop.Result[T, E], len(futures))
	wg := &sync.WaitGroup{}

	for i, f := range futures {
		wg.Add(1)
		go func(i int, f Future[T, E]) {
			defer wg.Done()
			results[i] = f(ctx)
		}(i, f)
	}

	wg.Wait()
	return results
}

// JoinN is Join with at most lines futures in flight. A lines value of
// zero or less, or one beyond the input size, means full fan-out.
func JoinN[T, E any](ctx context.Context, lines int, futures []Future[T, E]) []rop.Result[T, E] {
	if lines <= 0 || lines > len(futures) {
		lines = len(futures)
	}
	results := make([]rop.Result[T, E], len(futures))
	if lines == 0 {
		return results
	}

	jobs := make(chan int, len(futures))
	for i := range futures {
		jobs <- i
	}
	close(jobs)

	wg := &sync.WaitGroup{}
	for range lines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = futures[i](ctx)
			}
		}()
	}

	wg.Wait()
	return results
}

// All awaits every future and reduces the input-ordered outcomes with
// fail-fast collection: the first Err by input position wins, even when it
// resolved last. All futures are awaited either way; none are abandoned
// mid-flight.
func All[T, E any](ctx context.Context, futures []Future[T, E]) rop.Result[[]T, E] {
	return batch.All(Join(ctx, futures))
}

// AllN is All with at most lines futures in flight.
func AllN[T, E any](ctx context.Context, lines int, futures []Future[T, E]) rop.Result[[]T, E] {
	return batch.All(JoinN(ctx, lines, futures))
}

// AllSettled awaits every future and splits the outcomes into both
// channels, never failing itself. Relative order inside each slice follows
// input order.
func AllSettled[T, E any](ctx context.Context, futures []Future[T, E]) ([]T, []E) {
	return batch.Partition(Join(ctx, futures))
}
