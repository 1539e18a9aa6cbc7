package loaders

import (
	"context"
	"sync"

	"github.com/hupe1980/tiercache"
)

// Dedupe wraps a loader so concurrent loads of the same key share one
// backing-store round trip. Promotion after a miss is idempotent either
// way; deduplication only spares the backing store the duplicate work.
//
// In-flight loads are keyed by the key value itself, so distinct keys
// never share a flight. The shared load is detached from the initiating
// caller's cancellation: one caller giving up does not fail every caller
// waiting on the same flight. A waiting caller whose own context is
// canceled stops waiting and gets its context error.
func Dedupe[K comparable, V any](inner tiercache.Loader[K, V]) tiercache.Loader[K, V] {
	return &deduped[K, V]{
		inner:   inner,
		flights: make(map[K]*flight[V]),
	}
}

// flight is one in-progress load. value and err are written once, before
// done is closed, and read only after.
type flight[V any] struct {
	done  chan struct{}
	value V
	err   error
}

type deduped[K comparable, V any] struct {
	inner tiercache.Loader[K, V]

	mu      sync.Mutex
	flights map[K]*flight[V]
}

func (d *deduped[K, V]) Load(ctx context.Context, key K) (V, error) {
	d.mu.Lock()
	if f, ok := d.flights[key]; ok {
		d.mu.Unlock()
		select {
		case <-f.done:
			return f.value, f.err
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
	}
	f := &flight[V]{done: make(chan struct{})}
	d.flights[key] = f
	d.mu.Unlock()

	f.value, f.err = d.inner.Load(context.WithoutCancel(ctx), key)

	d.mu.Lock()
	delete(d.flights, key)
	d.mu.Unlock()
	close(f.done)

	return f.value, f.err
}
