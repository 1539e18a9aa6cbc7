package tiercache

import "io"

// Close releases resources held by this Chain.
//
// This is primarily useful when the loader holds a client connection
// (e.g. loaders.Redis or loaders.Memcache); if the loader implements
// io.Closer it is closed.
func (c *Chain[K, V]) Close() error {
	if c == nil {
		return nil
	}
	if closer, ok := c.loader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
