package minio

// outcome classifies how a resolve attempt was served.
type outcome int

const (
	// outcomeHit: bytes were already resident.
	outcomeHit outcome = iota

	// outcomeColdMiss: bytes were fetched from the filesystem and retained.
	outcomeColdMiss

	// outcomeCapacityMiss: bytes were fetched but not retained because they
	// exceed an admission threshold.
	outcomeCapacityMiss
)

func (o outcome) String() string {
	switch o {
	case outcomeHit:
		return "hit"
	case outcomeColdMiss:
		return "cold_miss"
	case outcomeCapacityMiss:
		return "capacity_miss"
	default:
		return "unknown"
	}
}

// counters accumulate under the engine lock.
type counters struct {
	hits           uint64
	coldMisses     uint64
	capacityMisses uint64
	evictions      uint64
}

// Stats is a point-in-time snapshot of cache activity and occupancy.
type Stats struct {
	// Hits counts resolves served from memory.
	Hits uint64

	// ColdMisses counts resolves that fetched bytes and retained them.
	ColdMisses uint64

	// CapacityMisses counts resolves that fetched bytes but did not retain
	// them because they exceed an admission threshold.
	CapacityMisses uint64

	// Evictions counts entries removed to free budget for new insertions.
	Evictions uint64

	// Used is the current total size of live entries in bytes.
	Used int64

	// Len is the current number of live entries.
	Len int
}

// Stats returns a snapshot of cache activity since construction.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:           c.counts.hits,
		ColdMisses:     c.counts.coldMisses,
		CapacityMisses: c.counts.capacityMisses,
		Evictions:      c.counts.evictions,
		Used:           c.used,
		Len:            c.store.Len(),
	}
}
