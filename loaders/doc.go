// Package loaders provides ready-made backing-store loaders and loader
// decorators for tiercache.
//
// Backends:
//   - Redis: loads values from a Redis instance via go-redis
//   - Memcache: loads values from a memcached instance
//   - Static: in-memory map, useful for tests and demos
//
// Decorators compose over any tiercache.Loader:
//   - RateLimited: throttles backing-store loads with a rate.Limiter
//   - Dedupe: collapses concurrent loads of the same key into one flight
package loaders
