package tiercache

// Entry is a key/value pair in a level snapshot.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// LevelSnapshot is a read-only view of one level's contents.
type LevelSnapshot[K comparable, V any] struct {
	Index    int
	Capacity int
	Policy   Policy
	// Entries lists the level's contents: most recently touched first
	// for LRU levels, insertion order for LFU levels.
	Entries []Entry[K, V]
}

// LevelStats holds counters for one level.
type LevelStats struct {
	Capacity int
	Size     int
	Policy   Policy
	Hits     int64
	Misses   int64
}

// ChainStats holds counters for the whole chain.
type ChainStats struct {
	Levels []LevelStats
	// Loads counts backing-store loads.
	Loads int64
	// Drops counts entries discarded off the bottom of the chain.
	Drops int64
}

// Snapshot returns every level's current contents in top-to-bottom order.
// It does not touch recency or frequency state, so inspecting the chain
// never perturbs eviction behavior.
func (c *Chain[K, V]) Snapshot() []LevelSnapshot[K, V] {
	levels := c.snapshotLevels()

	out := make([]LevelSnapshot[K, V], len(levels))
	for i, lvl := range levels {
		out[i] = LevelSnapshot[K, V]{
			Index:    i,
			Capacity: lvl.capacity,
			Policy:   lvl.policy,
			Entries:  lvl.snapshot(),
		}
	}
	return out
}

// Stats returns per-level and chain-wide counters.
func (c *Chain[K, V]) Stats() ChainStats {
	levels := c.snapshotLevels()

	stats := ChainStats{
		Levels: make([]LevelStats, len(levels)),
		Loads:  c.loads.Load(),
		Drops:  c.drops.Load(),
	}
	for i, lvl := range levels {
		stats.Levels[i] = lvl.stats()
	}
	return stats
}
