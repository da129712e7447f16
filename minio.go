package minio

import (
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"

	"github.com/meigma/minio/internal/recency"
	"github.com/meigma/minio/internal/store"
)

// Cache is a size-bounded, in-memory cache of file contents keyed by path.
//
// The byte budget, usable limit, and cacheable limit are fixed at
// construction. At every observable point the total size of live entries is
// at most the budget, and no single entry exceeds the cacheable limit.
type Cache struct {
	capacity     int64
	maxUsable    int64
	maxCacheable int64

	mu      sync.Mutex
	used    int64
	store   *store.Store
	recency *recency.Index
	counts  counters

	fsys            FS
	fetchGroup      singleflight.Group
	logger          *slog.Logger
	meter           metric.Meter
	metrics         *cacheMetrics
	digests         bool
	prefetchWorkers int
}

// New constructs a cache with the given byte budget and per-file usable
// limit. Files larger than maxUsable bytes are never buffered for caching;
// see [WithMaxCacheableSize] for the separate retention threshold, which
// defaults to maxUsable.
func New(capacity, maxUsable int64, opts ...Option) (*Cache, error) {
	c := &Cache{
		capacity:  capacity,
		maxUsable: maxUsable,
		store:     store.New(),
		recency:   recency.New(),
		fsys:      osFS{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.maxCacheable == 0 {
		c.maxCacheable = c.maxUsable
	}

	if c.capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, c.capacity)
	}
	if c.maxUsable <= 0 {
		return nil, fmt.Errorf("%w: max usable size %d", ErrInvalidLimit, c.maxUsable)
	}
	if c.maxCacheable <= 0 {
		return nil, fmt.Errorf("%w: max cacheable size %d", ErrInvalidLimit, c.maxCacheable)
	}
	if c.maxCacheable > c.maxUsable {
		return nil, fmt.Errorf("%w: max cacheable size %d exceeds max usable size %d",
			ErrInvalidLimit, c.maxCacheable, c.maxUsable)
	}

	if c.meter != nil {
		metrics, err := newCacheMetrics(c.meter)
		if err != nil {
			return nil, err
		}
		c.metrics = metrics
	}
	return c, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (c *Cache) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// Capacity returns the fixed byte budget.
func (c *Cache) Capacity() int64 {
	return c.capacity
}

// MaxUsableSize returns the upper bound on file sizes the read-through path
// will buffer for caching.
func (c *Cache) MaxUsableSize() int64 {
	return c.maxUsable
}

// MaxCacheableSize returns the upper bound on file sizes that may be
// retained.
func (c *Cache) MaxCacheableSize() int64 {
	return c.maxCacheable
}

// Used returns the total size in bytes of live entries.
func (c *Cache) Used() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.used
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Len()
}

// Flush removes all entries and resets the used byte count to zero.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	freed := c.used
	c.store.Clear()
	c.recency.Clear()
	c.used = 0
	c.metrics.addResident(-freed)
	c.log().Debug("cache flushed", "freed", freed)
}

// Prune evicts least-recently-used entries until the used byte count is at
// or below targetBytes. It returns the number of bytes freed.
func (c *Cache) Prune(targetBytes int64) int64 {
	if targetBytes < 0 {
		targetBytes = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var freed int64
	for c.used > targetBytes {
		key, ok := c.recency.Victim()
		if !ok {
			break
		}
		freed += c.evict(key)
	}
	return freed
}
