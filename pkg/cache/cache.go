package cache

import (
	"context"
	"time"
)

// Cache định nghĩa contract cho cache layer.
// Values are stored JSON-encoded so Redis and in-memory backends are interchangeable.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found = false means a miss and dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value for ttl. ttl <= 0 uses the backend default.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob such as "label:*".
	DeletePattern(ctx context.Context, pattern string) error

	Ping(ctx context.Context) error
}
