package placecache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := Open(filepath.Join(t.TempDir(), "places.db"))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	require.NoError(t, cache.Migrate(context.Background()))
	return cache
}

func TestCacheRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	key := Key("competitors", "Chicago, IL", "restaurant", 1000)
	records := []map[string]any{{"name": "Bean There", "rating": 4.4}}

	require.NoError(t, cache.Put(ctx, key, records, time.Hour))

	var got []map[string]any
	hit, err := cache.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	require.Len(t, got, 1)
	assert.Equal(t, "Bean There", got[0]["name"])
}

func TestCacheMiss(t *testing.T) {
	cache := newTestCache(t)

	var got []map[string]any
	hit, err := cache.Get(context.Background(), Key("competitors", "Nowhere", "retail", 500), &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheExpiry(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	key := Key("overview", "Chicago, IL", "", 1000)
	require.NoError(t, cache.Put(ctx, key, map[string]any{"total": 12}, -time.Minute))

	var got map[string]any
	hit, err := cache.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	deleted, err := cache.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestKeyNormalizesLocation(t *testing.T) {
	assert.Equal(t,
		Key("competitors", "Chicago, IL", "retail", 1000),
		Key("competitors", "  chicago, il ", "retail", 1000),
	)
	assert.NotEqual(t,
		Key("competitors", "Chicago, IL", "retail", 1000),
		Key("overview", "Chicago, IL", "retail", 1000),
	)
}
