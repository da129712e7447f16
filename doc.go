// Package minio provides an in-process, size-bounded cache of raw file
// contents keyed by filesystem path.
//
// The cache sits between a caller and the filesystem and serves repeated
// reads of the same file from memory. It holds at most a fixed byte budget
// of file contents, evicts least-recently-used entries to make room for new
// ones, and refuses to retain files above a configurable size threshold.
// Every returned buffer is byte-identical to a direct read of the file.
//
// # Quick Start
//
// Construct a cache with a byte budget and a per-file limit, then read
// through it:
//
//	c, err := minio.New(256<<20, 8<<20)
//	if err != nil {
//	    return err
//	}
//	content, err := c.Read("/data/shard-0001.bin")
//
// A Read resolves in one of three ways: a hit (bytes served from memory), a
// cold miss (bytes fetched from the filesystem and retained), or a capacity
// miss (bytes fetched and returned but not retained because the file is too
// large to cache). Stats reports counters for all three.
//
// # Limits
//
// Two thresholds bound memory use. Files larger than the usable limit are
// never buffered for caching at all; files between the cacheable limit and
// the usable limit pass through on every Read without entering the cache.
// The cacheable limit defaults to the usable limit and can be lowered with
// [WithMaxCacheableSize].
//
// # Concurrency
//
// All methods are safe for concurrent use. Filesystem I/O happens outside
// the engine lock, and concurrent Reads of the same absent path share a
// single fetch. Buffers returned to callers are snapshots: they remain valid
// and unchanged even if the underlying entry is later evicted.
package minio
