package minio

import (
	"bytes"
	"fmt"

	"github.com/opencontainers/go-digest"

	"github.com/meigma/minio/internal/store"
)

// Contains reports whether key is currently cached. It is a pure membership
// test: it never consults the filesystem and does not update recency, so a
// Contains check followed by an eviction scan observes unchanged ordering.
func (c *Cache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.store.Lookup(key)
	return ok
}

// Load returns a copy of the stored buffer for key. It fails with
// ErrNotFound if key is not cached; callers are expected to have checked
// Contains or just performed a successful Store. A successful Load counts as
// an access and refreshes the entry's recency.
func (c *Cache) Load(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.store.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("load %q: %w", key, ErrNotFound)
	}
	return c.hit(entry)
}

// hit serves a resident entry: verify, touch recency, count, and return a
// snapshot. The caller holds c.mu.
func (c *Cache) hit(entry *store.Entry) ([]byte, error) {
	if c.digests && entry.Digest != "" && digest.FromBytes(entry.Data) != entry.Digest {
		c.remove(entry.Key)
		return nil, fmt.Errorf("hit %q: %w", entry.Key, ErrCorruptEntry)
	}
	c.recency.Touch(entry.Key)
	c.counts.hits++
	c.metrics.recordResolve(outcomeHit)
	return bytes.Clone(entry.Data), nil
}

// Store attempts to admit and retain externally supplied bytes under key.
// It returns true when the entry was registered, running eviction first if
// needed, and false without mutating any state when admission rejects the
// buffer. An existing entry under key is replaced, not duplicated.
//
// The declared size must match the buffer's length; a mismatch is caller
// misuse and returns ErrSizeMismatch. The buffer is copied in, so the caller
// keeps ownership of data.
func (c *Cache) Store(key string, size int64, data []byte) (bool, error) {
	if size != int64(len(data)) {
		return false, fmt.Errorf("store %q: declared %d bytes, buffer has %d: %w",
			key, size, len(data), ErrSizeMismatch)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.storeLocked(key, data)
}

// storeLocked runs admission, replacement, eviction, and insertion. The
// caller holds c.mu.
func (c *Cache) storeLocked(key string, data []byte) (bool, error) {
	size := int64(len(data))
	switch c.admit(size) {
	case rejectUncacheable:
		c.log().Debug("admission rejected", "key", key, "size", size,
			"max_cacheable", c.maxCacheable)
		return false, nil
	case rejectNeverFits:
		c.log().Debug("admission rejected", "key", key, "size", size,
			"capacity", c.capacity)
		return false, nil
	}

	// Replacement is remove-then-insert so the old entry's bytes are
	// released before eviction decides how much room is still missing.
	if _, ok := c.store.Lookup(key); ok {
		c.remove(key)
	}

	if err := c.makeRoom(size); err != nil {
		return false, err
	}

	buf := bytes.Clone(data)
	entry, err := c.store.Insert(key, buf)
	if err != nil {
		// Unreachable: any stale entry was removed above.
		return false, fmt.Errorf("store %q: %w", key, err)
	}
	if c.digests {
		entry.Digest = digest.FromBytes(buf)
	}
	c.recency.Register(key)
	c.used += size
	c.metrics.addResident(size)
	return true, nil
}

// Read resolves path through the cache.
//
// A resident path is served from memory and refreshes recency. Otherwise the
// filesystem adapter supplies the bytes: files small enough to retain are
// stored (cold miss), files above the cacheable or usable limit are returned
// without being retained (capacity miss). Filesystem errors are propagated
// verbatim.
//
// Concurrent Reads of the same absent path share a single adapter fetch.
func (c *Cache) Read(path string) ([]byte, error) {
	c.mu.Lock()
	if entry, ok := c.store.Lookup(path); ok {
		data, err := c.hit(entry)
		c.mu.Unlock()
		return data, err
	}
	c.mu.Unlock()

	v, err, _ := c.fetchGroup.Do(path, func() (any, error) {
		return c.fetch(path)
	})
	if err != nil {
		return nil, err
	}
	// The fetch result may be shared with other singleflight callers; each
	// caller gets its own snapshot.
	data, _ := v.([]byte)
	return bytes.Clone(data), nil
}

// fetch performs the miss path: classify by size, read from the adapter, and
// attempt admission when the file is small enough to retain. It runs outside
// the engine lock so adapter I/O never blocks other operations.
func (c *Cache) fetch(path string) ([]byte, error) {
	// Double-check residency: another caller may have stored the path
	// between the hit check and acquiring the singleflight lock.
	c.mu.Lock()
	if entry, ok := c.store.Lookup(path); ok {
		data, err := c.hit(entry)
		c.mu.Unlock()
		return data, err
	}
	c.mu.Unlock()

	size, err := c.fsys.Stat(path)
	if err != nil {
		return nil, err
	}

	data, err := c.fsys.ReadAll(path)
	if err != nil {
		return nil, err
	}

	// Classify with the stat size for the usable bound and the actual length
	// for retention, then hand the buffer to Store, which copies it in. The
	// fetched slice itself goes back to the caller un-aliased.
	if size > c.maxUsable || int64(len(data)) > c.maxCacheable {
		c.recordMiss(outcomeCapacityMiss)
		return data, nil
	}

	stored, err := c.Store(path, int64(len(data)), data)
	if err != nil {
		// Defensive: admission passed but insertion failed. Serve the bytes
		// anyway; the error indicates a bookkeeping bug worth surfacing.
		c.log().Error("insertion failed after fetch", "key", path, "error", err)
		c.recordMiss(outcomeCapacityMiss)
		return data, nil
	}
	if !stored {
		c.recordMiss(outcomeCapacityMiss)
		return data, nil
	}
	c.recordMiss(outcomeColdMiss)
	return data, nil
}

func (c *Cache) recordMiss(o outcome) {
	c.mu.Lock()
	switch o {
	case outcomeColdMiss:
		c.counts.coldMisses++
	case outcomeCapacityMiss:
		c.counts.capacityMisses++
	}
	c.mu.Unlock()
	c.metrics.recordResolve(o)
}
