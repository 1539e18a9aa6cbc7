package tiercache

import "context"

// Loader is the backing store consulted when every cache level misses.
// Implementations synthesize or fetch a value for any key; an error means
// the backing store itself failed, and is reported to the Get caller
// unchanged. The chain never produces domain errors of its own on the
// read path.
//
// Ready-made implementations and decorators live in the loaders
// subpackage.
type Loader[K comparable, V any] interface {
	Load(ctx context.Context, key K) (V, error)
}

// LoaderFunc adapts a plain function to a Loader.
type LoaderFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Load implements Loader.
func (f LoaderFunc[K, V]) Load(ctx context.Context, key K) (V, error) {
	return f(ctx, key)
}
