package loaders

import (
	"context"
	"fmt"

	"github.com/bradfitz/gomemcache/memcache"
)

// Memcache loads string values from a memcached instance. A missing key
// is reported as an error wrapping memcache.ErrCacheMiss.
type Memcache struct {
	client *memcache.Client
}

// NewMemcache creates a Memcache loader for the given server addresses.
func NewMemcache(servers ...string) *Memcache {
	return &Memcache{client: memcache.New(servers...)}
}

// Load implements tiercache.Loader. The memcache client has no context
// support; cancellation is checked before the round trip.
func (m *Memcache) Load(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	item, err := m.client.Get(key)
	if err != nil {
		return "", fmt.Errorf("memcache load %q: %w", key, err)
	}
	return string(item.Value), nil
}

// Close releases the client's idle connections.
func (m *Memcache) Close() error {
	return m.client.Close()
}
