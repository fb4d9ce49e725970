package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const DefaultCleanupInterval = 30 * time.Minute

// MemoryCache is the in-process fallback used when Redis is not configured.
// Values are kept JSON-encoded so callers get copies, never shared pointers.
type MemoryCache struct {
	cache *gocache.Cache
}

func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{cache: gocache.New(defaultTTL, cleanupInterval)}
}

func (m *MemoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	value, found := m.cache.Get(key)
	if !found {
		return false, nil
	}
	data, ok := value.([]byte)
	if !ok {
		return false, fmt.Errorf("cached %s has unexpected type %T", key, value)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.cache.Set(key, data, ttl)
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		m.cache.Delete(key)
	}
	return nil
}

// DeletePattern matches keys with path.Match, which accepts the same globs Redis does for "*" and "?".
func (m *MemoryCache) DeletePattern(_ context.Context, pattern string) error {
	for key := range m.cache.Items() {
		matched, err := path.Match(pattern, key)
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if matched {
			m.cache.Delete(key)
		}
	}
	return nil
}

func (m *MemoryCache) Ping(context.Context) error { return nil }
