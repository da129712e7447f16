package minio

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Prefetch warms the cache for the given paths using a bounded worker pool.
//
// Paths that are already resident or too large to retain are skipped; there
// is nothing to warm for a file that can only pass through. In-flight bytes
// are bounded by the worker count times the usable limit. The first
// filesystem error cancels the remaining fetches and is returned.
func (c *Cache) Prefetch(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	workers := c.prefetchWorkers
	switch {
	case workers < 0:
		workers = 1
	case workers == 0:
		workers = min(runtime.GOMAXPROCS(0), len(paths))
	}

	inflight := int64(math.MaxInt64)
	if c.maxUsable <= math.MaxInt64/int64(workers) {
		inflight = int64(workers) * c.maxUsable
	}
	sem := semaphore.NewWeighted(inflight)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, path := range paths {
		g.Go(func() error {
			if c.Contains(path) {
				return nil
			}
			size, err := c.fsys.Stat(path)
			if err != nil {
				return err
			}
			if size > c.maxCacheable {
				return nil
			}
			if err := sem.Acquire(gctx, size); err != nil {
				return err
			}
			defer sem.Release(size)
			_, err = c.Read(path)
			return err
		})
	}
	return g.Wait()
}
