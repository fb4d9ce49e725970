package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recordlabel-backend/pkg/cache"
)

var (
	_ cache.Cache = (*MemoryCache)(nil)
	_ cache.Cache = (*RedisClient)(nil)
)

type cachedLabel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute, time.Minute)

	var got cachedLabel
	found, err := c.Get(ctx, "label:first", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "label:first", cachedLabel{ID: 1, Name: "Label"}, 0))

	found, err = c.Get(ctx, "label:first", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cachedLabel{ID: 1, Name: "Label"}, got)
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute, time.Minute)

	original := &cachedLabel{ID: 1, Name: "Label"}
	require.NoError(t, c.Set(ctx, "label:1", original, 0))
	original.Name = "changed"

	var got cachedLabel
	_, err := c.Get(ctx, "label:1", &got)
	require.NoError(t, err)
	assert.Equal(t, "Label", got.Name)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute, time.Minute)

	require.NoError(t, c.Set(ctx, "short", cachedLabel{ID: 1}, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	found, err := c.Get(ctx, "short", &cachedLabel{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute, time.Minute)

	for _, key := range []string{"label:1", "label:slug:main", "artist:1"} {
		require.NoError(t, c.Set(ctx, key, cachedLabel{}, 0))
	}

	require.NoError(t, c.DeletePattern(ctx, "label:*"))

	for key, want := range map[string]bool{"label:1": false, "label:slug:main": false, "artist:1": true} {
		found, err := c.Get(ctx, key, &cachedLabel{})
		require.NoError(t, err)
		assert.Equal(t, want, found, key)
	}

	require.NoError(t, c.Delete(ctx, "artist:1"))
	found, _ := c.Get(ctx, "artist:1", &cachedLabel{})
	assert.False(t, found)
}
