package loaders

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis loads string values from a Redis instance. A missing key is a
// backing-store fault from the chain's point of view and is reported as
// an error wrapping redis.Nil.
type Redis struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis loader over an existing client. The loader
// takes ownership: closing it closes the client.
func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

// Load implements tiercache.Loader.
func (r *Redis) Load(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("redis load %q: %w", key, err)
	}
	return v, nil
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
