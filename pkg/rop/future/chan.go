package future

import (
	"context"

	"github.com/ib-77/rop4/pkg/rop"
)

// ToChan awaits f in the background and delivers the result on the
// returned channel, which is closed after the single send.
func ToChan[T, E any](ctx context.Context, f Future[T, E]) <-chan rop.Result[T, E] {
	out := make(chan rop.Result[T, E], 1)

	go func() {
		defer close(out)
		out <- f(ctx)
	}()

	return out
}

// Feed turns already-materialized results into a channel, stopping early
// when ctx ends.
func Feed[T, E any](ctx context.Context, results ...rop.Result[T, E]) <-chan rop.Result[T, E] {
	out := make(chan rop.Result[T, E])

	go func() {
		defer close(out)

		for _, r := range results {
			select {
			case out <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect gathers results until the channel closes or ctx ends. On
// cancellation the rest of the channel is drained in the background so
// abandoned producers can finish.
func Collect[T, E any](ctx context.Context, in <-chan rop.Result[T, E]) []rop.Result[T, E] {
	results := make([]rop.Result[T, E], 0)

	for {
		select {
		case r, ok := <-in:
			if !ok {
				return results
			}
			results = append(results, r)
		case <-ctx.Done():
			go Drain(in)
			return results
		}
	}
}

// Drain consumes and discards the remainder of a result channel, releasing
// producers that are still sending.
func Drain[T, E any](in <-chan rop.Result[T, E]) {
	for range in {
	}
}
