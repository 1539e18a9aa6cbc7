package tiercache

import (
	"sync"
	"sync/atomic"
)

// entry is a single cached key/value pair, as handed from one level to the
// next during demotion.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// store is the policy-specific bookkeeping behind a level. Implementations
// are not safe for concurrent use; every call happens under the owning
// level's lock.
type store[K comparable, V any] interface {
	// get returns the value and updates recency/frequency state.
	get(key K) (V, bool)
	// update overwrites an existing key, reporting whether it was present.
	update(key K, value V) bool
	// insert adds a key known to be absent.
	insert(key K, value V)
	// evict removes and returns the policy's victim.
	evict() (entry[K, V], bool)
	// len returns the number of resident entries.
	len() int
	// entries returns the current contents without touching any state.
	entries() []Entry[K, V]
	// clear discards all entries.
	clear()
}

// level is one tier of the chain. It owns its store and the lock guarding
// it, and knows only the next (slower) level. It never calls into lower
// itself; all cross-level orchestration lives in Chain, so a level's lock
// is never held while another level's lock is taken.
type level[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	policy   Policy
	store    store[K, V]

	// lower points at the next level in the chain, nil at the bottom.
	// It is re-linked by Chain under the structural lock and read by
	// in-flight demotions, hence the atomic.
	lower atomic.Pointer[level[K, V]]

	hits   atomic.Int64
	misses atomic.Int64
}

func newLevel[K comparable, V any](capacity int, policy Policy) *level[K, V] {
	l := &level[K, V]{
		capacity: capacity,
		policy:   policy,
	}
	switch policy {
	case PolicyLFU:
		l.store = newLFUStore[K, V]()
	default:
		l.store = newLRUStore[K, V]()
	}
	return l
}

// get returns the value for key if resident, updating this level's
// recency/frequency bookkeeping only. Promotion is the caller's job.
func (l *level[K, V]) get(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.store.get(key)
	if ok {
		l.hits.Add(1)
	} else {
		l.misses.Add(1)
	}
	return v, ok
}

// put inserts or overwrites the entry. If the key is new and the level is
// at capacity, exactly one entry is evicted per policy before the insert
// and returned to the caller, who decides whether to demote or discard it.
func (l *level[K, V]) put(key K, value V) (evicted entry[K, V], ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store.update(key, value) {
		return evicted, false
	}
	if l.store.len() >= l.capacity {
		evicted, ok = l.store.evict()
	}
	l.store.insert(key, value)
	return evicted, ok
}

func (l *level[K, V]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.len()
}

// snapshot returns the level's contents without mutating recency or
// frequency state.
func (l *level[K, V]) snapshot() []Entry[K, V] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.entries()
}

func (l *level[K, V]) clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.store.clear()
}

func (l *level[K, V]) stats() LevelStats {
	l.mu.Lock()
	size := l.store.len()
	l.mu.Unlock()

	return LevelStats{
		Capacity: l.capacity,
		Size:     size,
		Policy:   l.policy,
		Hits:     l.hits.Load(),
		Misses:   l.misses.Load(),
	}
}
