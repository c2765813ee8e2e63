// Package cache provides pluggable storage for rendered chart artifacts.
//
// The preview server renders charts on demand; rendering the timeline or
// shelling out to rsvg-convert is slow enough to be worth caching. Keys
// are derived from the chart name, render options, and a hash of the
// dataset, so edits to the dataset invalidate stale artifacts naturally.
//
// Three backends are provided:
//   - FileCache: entries on disk under a cache directory (default)
//   - RedisCache: entries in a Redis instance (shared between hosts)
//   - NullCache: no-op, for tests and --no-cache runs
package cache

import (
	"context"
	"errors"
	"time"
)

// Cache stores rendered artifacts keyed by string.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL (zero means no expiration).
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// ErrCacheMiss is returned by helpers that treat a miss as an error.
var ErrCacheMiss = errors.New("cache miss")
