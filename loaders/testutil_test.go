package loaders

import (
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

// Integration tests run only against real servers, selected via env vars.

func redisAddr(t *testing.T) string {
	t.Helper()
	addr := os.Getenv("TIERCACHE_REDIS_ADDR")
	if addr == "" {
		t.Skip("TIERCACHE_REDIS_ADDR not set")
	}
	return addr
}

func memcacheAddr(t *testing.T) string {
	t.Helper()
	addr := os.Getenv("TIERCACHE_MEMCACHED_ADDR")
	if addr == "" {
		t.Skip("TIERCACHE_MEMCACHED_ADDR not set")
	}
	return addr
}

func newRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}
