// Package tiercache provides a multi-tier lookaside cache for Go.
//
// A Chain is an ordered sequence of cache levels, fastest and smallest at
// the top, each with its own capacity and eviction policy (LRU or LFU).
// Reads walk the chain top-down; a hit at a lower level is promoted into
// every level above it, and a miss at every level falls through to a
// backing-store Loader whose result is cached at the top. Writes always
// target the top level; an entry evicted by a full level is demoted into
// the next level down, cascading until a level absorbs it or it falls off
// the bottom.
//
//   - Pluggable eviction per level: LRU and LFU
//   - Cross-level promotion on hit, demotion on eviction
//   - Dynamic topology: levels can be added and removed at runtime
//   - Per-level locking: no global lock on the data path
//   - Backing-store loaders and decorators (Redis, Memcache, rate
//     limiting, load deduplication) in the loaders subpackage
//
// # Quick Start
//
//	ctx := context.Background()
//	chain, err := tiercache.New[string, string](
//	    tiercache.LoaderFunc[string, string](func(ctx context.Context, key string) (string, error) {
//	        return fetchFromDB(ctx, key)
//	    }),
//	    tiercache.WithLevels(
//	        tiercache.LevelConfig{Capacity: 64, Policy: tiercache.PolicyLRU},
//	        tiercache.LevelConfig{Capacity: 1024, Policy: tiercache.PolicyLFU},
//	    ),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer chain.Close()
//
//	v, err := chain.Get(ctx, "user:42")
//
// # Concurrency
//
// Each level owns an independent mutex; chain operations acquire level
// locks strictly one at a time and never nested, so operations on
// disjoint levels proceed in parallel and no lock ordering between levels
// exists to invert. Promotion is not atomic across the chain: two
// concurrent Gets for the same cold key may both load and both promote
// the same value, which is a benign idempotent overwrite. Wrap the loader
// with loaders.Dedupe to collapse such duplicate loads.
package tiercache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// warmConcurrency bounds parallel backing-store loads during Warm.
const warmConcurrency = 16

// Chain is an ordered sequence of cache levels backed by a Loader.
// All methods are safe for concurrent use.
type Chain[K comparable, V any] struct {
	// mu guards the levels slice and lower-pointer re-linking only.
	// It is never held across a per-level data operation.
	mu     sync.RWMutex
	levels []*level[K, V]

	loader  Loader[K, V]
	logger  *Logger
	metrics MetricsCollector

	loads atomic.Int64
	drops atomic.Int64
}

// New creates a Chain backed by the given loader. The chain starts empty
// unless WithLevels is given; levels can be added and removed at any time.
func New[K comparable, V any](loader Loader[K, V], opts ...Option) (*Chain[K, V], error) {
	if loader == nil {
		return nil, ErrNilLoader
	}

	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Chain[K, V]{
		loader:  loader,
		logger:  o.logger,
		metrics: o.metrics,
	}

	for _, lc := range o.levels {
		if err := c.AddLevel(lc.Capacity, lc.Policy); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Get returns the value for key. Levels are scanned top-down; on a hit the
// value is promoted into every level above the hit. If every level misses,
// the backing store is consulted and its value cached at the top level.
// The only error source is the backing store (or context cancellation
// surfaced through it).
func (c *Chain[K, V]) Get(ctx context.Context, key K) (V, error) {
	start := time.Now()
	levels := c.snapshotLevels()

	for i, lvl := range levels {
		if v, ok := lvl.get(key); ok {
			c.promote(levels[:i], key, v)
			c.metrics.RecordGet(time.Since(start), i, nil)
			c.logger.LogGet(ctx, i, time.Since(start), nil)
			return v, nil
		}
	}

	v, err := c.load(ctx, key)
	if err != nil {
		c.metrics.RecordGet(time.Since(start), -1, err)
		c.logger.LogGet(ctx, -1, time.Since(start), err)
		var zero V
		return zero, err
	}

	if len(levels) > 0 {
		c.cascade(levels[0], key, v)
	}

	c.metrics.RecordGet(time.Since(start), -1, nil)
	c.logger.LogGet(ctx, -1, time.Since(start), nil)
	return v, nil
}

// Put inserts or overwrites the entry at the top level. An eviction there
// demotes into the next level down, cascading until some level absorbs the
// displaced entry or it falls off the bottom and is discarded. A chain
// with no levels drops the write, and the drop is counted like any other.
func (c *Chain[K, V]) Put(ctx context.Context, key K, value V) {
	start := time.Now()

	var top *level[K, V]
	c.mu.RLock()
	if len(c.levels) > 0 {
		top = c.levels[0]
	}
	c.mu.RUnlock()

	var dropped bool
	if top != nil {
		dropped = c.cascade(top, key, value)
	} else {
		c.drops.Add(1)
		c.metrics.RecordDrop()
		dropped = true
	}

	c.metrics.RecordPut(time.Since(start))
	c.logger.LogPut(ctx, dropped, time.Since(start))
}

// AddLevel appends a level at the bottom of the chain and links the
// previous bottom level to it. The policy must be PolicyLRU or PolicyLFU
// and the capacity positive; validation happens before any mutation.
func (c *Chain[K, V]) AddLevel(capacity int, policy Policy) error {
	if !policy.valid() {
		return &ErrInvalidPolicy{Name: policy.String()}
	}
	if capacity <= 0 {
		return &ErrInvalidCapacity{Capacity: capacity}
	}

	lvl := newLevel[K, V](capacity, policy)

	c.mu.Lock()
	if n := len(c.levels); n > 0 {
		c.levels[n-1].lower.Store(lvl)
	}
	c.levels = append(c.levels, lvl)
	index := len(c.levels) - 1
	c.mu.Unlock()

	c.logger.LogAddLevel(index, capacity, policy)
	return nil
}

// RemoveLevel removes the level at index, discards its contents and links
// its predecessor to its successor. Entries are not redistributed.
func (c *Chain[K, V]) RemoveLevel(index int) error {
	c.mu.Lock()
	if index < 0 || index >= len(c.levels) {
		n := len(c.levels)
		c.mu.Unlock()
		return &ErrIndexOutOfRange{Index: index, Levels: n}
	}

	removed := c.levels[index]

	var successor *level[K, V]
	if index+1 < len(c.levels) {
		successor = c.levels[index+1]
	}
	if index > 0 {
		c.levels[index-1].lower.Store(successor)
	}
	c.levels = append(c.levels[:index], c.levels[index+1:]...)
	c.mu.Unlock()

	// Detach so in-flight demotions through the removed level stop there
	// instead of re-entering the chain.
	removed.lower.Store(nil)
	discarded := removed.len()
	removed.clear()

	c.logger.LogRemoveLevel(index, discarded)
	return nil
}

// Warm prefetches keys through the chain, loading misses from the backing
// store with bounded concurrency. It returns the first load error, if any.
func (c *Chain[K, V]) Warm(ctx context.Context, keys []K) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(warmConcurrency)

	for _, key := range keys {
		key := key
		g.Go(func() error {
			_, err := c.Get(ctx, key)
			return err
		})
	}

	return g.Wait()
}

// Flush discards the contents of every level. The topology is preserved.
func (c *Chain[K, V]) Flush() {
	for _, lvl := range c.snapshotLevels() {
		lvl.clear()
	}
}

// NumLevels returns the current number of levels.
func (c *Chain[K, V]) NumLevels() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.levels)
}

// Len returns the total number of entries across all levels.
func (c *Chain[K, V]) Len() int {
	var total int
	for _, lvl := range c.snapshotLevels() {
		total += lvl.len()
	}
	return total
}

// promote writes a value served by a lower level into every level above
// it, nearest level first. Each write uses the normal demotion cascade, so
// entries displaced by the promotion sink instead of vanishing.
func (c *Chain[K, V]) promote(above []*level[K, V], key K, value V) {
	for i := len(above) - 1; i >= 0; i-- {
		c.cascade(above[i], key, value)
	}
}

// cascade inserts at lvl and forwards any evicted entry down the lower
// chain until a level absorbs it or the chain ends. Exactly one level lock
// is held at a time. Reports whether an entry fell off the bottom.
func (c *Chain[K, V]) cascade(lvl *level[K, V], key K, value V) bool {
	for lvl != nil {
		evicted, ok := lvl.put(key, value)
		if !ok {
			return false
		}
		next := lvl.lower.Load()
		if next == nil {
			c.drops.Add(1)
			c.metrics.RecordDrop()
			return true
		}
		key, value = evicted.key, evicted.value
		lvl = next
	}
	return false
}

func (c *Chain[K, V]) load(ctx context.Context, key K) (V, error) {
	start := time.Now()
	v, err := c.loader.Load(ctx, key)
	c.loads.Add(1)
	c.metrics.RecordLoad(time.Since(start), err)
	c.logger.LogLoad(ctx, time.Since(start), err)
	return v, err
}

// snapshotLevels captures the current topology under the structural lock.
// Data operations then run against the copy so the structural lock is
// never held across a level lock.
func (c *Chain[K, V]) snapshotLevels() []*level[K, V] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	levels := make([]*level[K, V], len(c.levels))
	copy(levels, c.levels)
	return levels
}
