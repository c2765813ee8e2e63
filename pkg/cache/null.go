package cache

import (
	"context"
	"time"
)

// NullCache discards every write and misses every read. It backs
// --no-cache runs and keeps handler code free of nil checks.
type NullCache struct{}

var _ Cache = (*NullCache)(nil)

// NewNullCache creates a no-op cache.
func NewNullCache() Cache { return &NullCache{} }

func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

func (c *NullCache) Delete(ctx context.Context, key string) error { return nil }

func (c *NullCache) Close() error { return nil }
