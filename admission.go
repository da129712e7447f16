package minio

import "fmt"

// admitDecision classifies whether supplied bytes may be retained.
type admitDecision int

const (
	admitOK admitDecision = iota

	// rejectUncacheable: the buffer exceeds the cacheable limit.
	rejectUncacheable

	// rejectNeverFits: the buffer exceeds the whole budget, so eviction can
	// never free enough room. Reported distinctly so the engine does not
	// loop evicting forever.
	rejectNeverFits
)

// admit decides whether size bytes may enter the cache at all. It does not
// consider current occupancy; makeRoom handles that.
func (c *Cache) admit(size int64) admitDecision {
	if size > c.maxCacheable {
		return rejectUncacheable
	}
	if size > c.capacity {
		return rejectNeverFits
	}
	return admitOK
}

// makeRoom evicts least-recently-used entries until needed bytes fit within
// the budget. The caller holds c.mu and must have passed admit, so running
// out of victims means the byte accounting is broken.
func (c *Cache) makeRoom(needed int64) error {
	for c.used+needed > c.capacity {
		key, ok := c.recency.Victim()
		if !ok {
			return fmt.Errorf("%w: need %d bytes with %d used of %d",
				ErrInsufficientCapacity, needed, c.used, c.capacity)
		}
		c.evict(key)
	}
	return nil
}

// remove drops key from the store and recency index and settles the byte
// accounting. It returns the bytes freed. The caller holds c.mu.
func (c *Cache) remove(key string) int64 {
	size, err := c.store.Remove(key)
	if err != nil {
		// The store and recency index disagree about key. Drop whatever half
		// of the entry exists and surface the inconsistency.
		c.recency.Forget(key)
		c.log().Error("store and recency index out of sync", "key", key, "error", err)
		return 0
	}
	c.recency.Forget(key)
	c.used -= size
	c.metrics.addResident(-size)
	return size
}

// evict removes the given key to free budget. The caller holds c.mu.
func (c *Cache) evict(key string) int64 {
	size := c.remove(key)
	c.counts.evictions++
	c.metrics.recordEviction()
	c.log().Debug("evicted entry", "key", key, "size", size, "used", c.used)
	return size
}
