package cache

import (
	"context"
	"testing"
	"time"

	"travel_deal_sniper/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	err := cache.Set(ctx, "test-key", "test-value", 1*time.Hour)
	require.NoError(t, err)

	value, err := cache.Get(ctx, "test-key")
	require.NoError(t, err)
	assert.Equal(t, "test-value", value)
}

func TestMemoryCache_Get_NotFound(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	value, err := cache.Get(ctx, "non-existent")
	assert.Nil(t, value)
	assert.ErrorIs(t, err, models.ErrCacheMiss)
}

func TestMemoryCache_Get_Expired(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	err := cache.Set(ctx, "expiring-key", "expiring-value", 50*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	value, err := cache.Get(ctx, "expiring-key")
	assert.Nil(t, value)
	assert.ErrorIs(t, err, models.ErrCacheMiss)
}

func TestMemoryCache_Get_ExpiredEntryNotRemovedByGet(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	err := cache.Set(ctx, "stale-key", "stale-value", 50*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	// The miss does not evict: the stale value stays in place until the
	// cleanup routine or a Set replaces it wholesale.
	_, err = cache.Get(ctx, "stale-key")
	assert.ErrorIs(t, err, models.ErrCacheMiss)
	assert.Equal(t, 1, cache.Size())
}

func TestMemoryCache_Set_InvalidTTL(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	err := cache.Set(ctx, "key", "value", 0)
	assert.Error(t, err)

	err = cache.Set(ctx, "key", "value", -1*time.Second)
	assert.Error(t, err)
}

func TestMemoryCache_Set_ReplacesWholesale(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	deals := []models.TravelDeal{{Title: "A to B $100", Link: "https://example.com/a"}}
	require.NoError(t, cache.Set(ctx, "feed:secret_flying", deals, time.Hour))

	replacement := []models.TravelDeal{
		{Title: "C to D $200", Link: "https://example.com/c"},
		{Title: "E to F $300", Link: "https://example.com/e"},
	}
	require.NoError(t, cache.Set(ctx, "feed:secret_flying", replacement, time.Hour))

	value, err := cache.Get(ctx, "feed:secret_flying")
	require.NoError(t, err)
	assert.Equal(t, replacement, value)
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", "value", time.Hour))
	require.NoError(t, cache.Delete(ctx, "key"))

	_, err := cache.Get(ctx, "key")
	assert.ErrorIs(t, err, models.ErrCacheMiss)
}
