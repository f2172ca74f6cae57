package batch

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// DefaultConcurrency bounds fan-out when no positive limit is given.
const DefaultConcurrency = 4

// fanOut calls fn for every index in [0, n) with at most limit calls in
// flight and returns the results in index order. Once ctx is done no new
// calls start; indices that never ran get the context error from skipped.
func fanOut[T any](ctx context.Context, limit, n int, fn func(ctx context.Context, i int) T, skipped func(i int, err error) T) []T {
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	out := make([]T, n)
	sem := semaphore.NewWeighted(int64(limit))
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		err := ctx.Err()
		if err == nil {
			err = sem.Acquire(ctx, 1)
		}
		if err != nil {
			for j := i; j < n; j++ {
				out[j] = skipped(j, err)
			}
			break
		}
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			defer sem.Release(1)
			out[index] = fn(ctx, index)
		}(i)
	}

	wg.Wait()
	return out
}
