package minio

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
)

// Option configures a Cache.
type Option func(*Cache)

// WithMaxCacheableSize sets the upper bound on file sizes that may be
// retained in the cache. Files between this limit and the usable limit are
// still served by Read but pass through without being stored. Defaults to
// the usable limit; values above it are rejected by New.
func WithMaxCacheableSize(limit int64) Option {
	return func(c *Cache) {
		c.maxCacheable = limit
	}
}

// WithFS sets the filesystem adapter used to stat and fetch files on cache
// misses. Defaults to the operating system's filesystem.
func WithFS(fsys FS) Option {
	return func(c *Cache) {
		if fsys != nil {
			c.fsys = fsys
		}
	}
}

// WithLogger sets the logger for cache events (evictions, admission rejects,
// flushes). If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// WithMeter enables OpenTelemetry metrics for resolves, evictions, and
// resident bytes using the given meter.
func WithMeter(meter metric.Meter) Option {
	return func(c *Cache) {
		c.meter = meter
	}
}

// WithDigests records a canonical digest for every entry at insertion and
// verifies it on each hit. A mismatch surfaces as ErrCorruptEntry and the
// entry is dropped.
func WithDigests() Option {
	return func(c *Cache) {
		c.digests = true
	}
}

// WithPrefetchConcurrency sets the number of workers used by Prefetch.
// Values < 0 force serial execution. Zero uses a GOMAXPROCS-based default.
func WithPrefetchConcurrency(workers int) Option {
	return func(c *Cache) {
		c.prefetchWorkers = workers
	}
}
