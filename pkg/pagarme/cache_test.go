package pagarme_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := pagarme.NewMemoryCache(10, time.Minute)
	ctx := context.Background()

	entry := &pagarme.CacheEntry{
		StatusCode: 200,
		Body:       []byte(`{"id":"plan_1"}`),
		StoredAt:   time.Now(),
	}

	require.NoError(t, cache.Set(ctx, "plans.plan_1", entry))

	got, err := cache.Get(ctx, "plans.plan_1")
	require.NoError(t, err)
	assert.Equal(t, 200, got.StatusCode)
	assert.Equal(t, `{"id":"plan_1"}`, string(got.Body))
}

func TestMemoryCache_MissAndExpiry(t *testing.T) {
	cache := pagarme.NewMemoryCache(10, 50*time.Millisecond)
	ctx := context.Background()

	_, err := cache.Get(ctx, "absent")
	require.ErrorIs(t, err, pagarme.ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "key", &pagarme.CacheEntry{
		StatusCode: 200,
		StoredAt:   time.Now().Add(-time.Second),
	}))

	_, err = cache.Get(ctx, "key")
	assert.ErrorIs(t, err, pagarme.ErrCacheMiss, "a stale entry reads as a miss")
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	cache := pagarme.NewMemoryCache(10, time.Minute)
	ctx := context.Background()

	entry := &pagarme.CacheEntry{StatusCode: 200, StoredAt: time.Now()}
	require.NoError(t, cache.Set(ctx, "a", entry))
	require.NoError(t, cache.Set(ctx, "b", entry))

	require.NoError(t, cache.Delete(ctx, "a"))

	_, err := cache.Get(ctx, "a")
	assert.ErrorIs(t, err, pagarme.ErrCacheMiss)

	_, err = cache.Get(ctx, "b")
	require.NoError(t, err)

	require.NoError(t, cache.Clear(ctx))

	_, err = cache.Get(ctx, "b")
	assert.ErrorIs(t, err, pagarme.ErrCacheMiss)
}

func TestMemoryCache_EvictsAtCapacity(t *testing.T) {
	cache := pagarme.NewMemoryCache(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, cache.Set(ctx, fmt.Sprintf("key-%d", i), &pagarme.CacheEntry{
			StatusCode: 200,
			StoredAt:   time.Now(),
		}))
	}

	require.NoError(t, cache.Set(ctx, "key-3", &pagarme.CacheEntry{
		StatusCode: 200,
		StoredAt:   time.Now(),
	}))

	hits := 0

	for i := 0; i < 4; i++ {
		if _, err := cache.Get(ctx, fmt.Sprintf("key-%d", i)); err == nil {
			hits++
		}
	}

	assert.Equal(t, 3, hits, "inserting over capacity must evict exactly one entry")
}

func TestNoOpCache(t *testing.T) {
	cache := pagarme.NewNoOpCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", &pagarme.CacheEntry{StatusCode: 200}))

	_, err := cache.Get(ctx, "key")
	assert.ErrorIs(t, err, pagarme.ErrCacheDisabled)

	assert.NoError(t, cache.Delete(ctx, "key"))
	assert.NoError(t, cache.Clear(ctx))
}

func TestNewCacheFromConfig(t *testing.T) {
	cache, err := pagarme.NewCacheFromConfig(nil)
	require.NoError(t, err)
	assert.IsType(t, &pagarme.MemoryCache{}, cache)

	cache, err = pagarme.NewCacheFromConfig(&pagarme.CacheConfig{Type: pagarme.CacheTypeNone})
	require.NoError(t, err)
	assert.IsType(t, &pagarme.NoOpCache{}, cache)

	_, err = pagarme.NewCacheFromConfig(&pagarme.CacheConfig{Type: pagarme.CacheTypeNATS})
	require.ErrorIs(t, err, pagarme.ErrNATSConfigRequired)

	_, err = pagarme.NewCacheFromConfig(&pagarme.CacheConfig{Type: "redis"})
	require.ErrorIs(t, err, pagarme.ErrUnsupportedCacheType)
}
