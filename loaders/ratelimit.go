package loaders

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/hupe1980/tiercache"
)

// RateLimited wraps a loader so backing-store loads wait on the given
// limiter. Use this to keep a thundering herd of cold reads from
// overwhelming the store behind the chain.
func RateLimited[K comparable, V any](inner tiercache.Loader[K, V], limiter *rate.Limiter) tiercache.Loader[K, V] {
	return &rateLimited[K, V]{inner: inner, limiter: limiter}
}

type rateLimited[K comparable, V any] struct {
	inner   tiercache.Loader[K, V]
	limiter *rate.Limiter
}

func (l *rateLimited[K, V]) Load(ctx context.Context, key K) (V, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		var zero V
		return zero, err
	}
	return l.inner.Load(ctx, key)
}
