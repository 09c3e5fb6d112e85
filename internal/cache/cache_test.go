package cache_test

import (
	"testing"

	"github.com/cricsim/auction-tui/internal/cache"
	"github.com/stretchr/testify/require"
)

func TestFilesystemCache(t *testing.T) {
	t.Setenv("CACHE_DIR", t.TempDir())

	fsCache, errCache := cache.New()
	require.NoError(t, errCache)

	_, errMiss := fsCache.Get(2025, cache.CachePriceTable)
	require.ErrorIs(t, errMiss, cache.ErrCacheMiss)

	payload := []byte(`{"year": 2025, "players": []}`)
	require.NoError(t, fsCache.Set(2025, cache.CachePriceTable, payload))

	body, errGet := fsCache.Get(2025, cache.CachePriceTable)
	require.NoError(t, errGet)
	require.Equal(t, payload, body)

	// Variants are keyed independently.
	_, errVariant := fsCache.Get(2025, cache.CacheAnalytics)
	require.ErrorIs(t, errVariant, cache.ErrCacheMiss)

	// Years are keyed independently.
	_, errYear := fsCache.Get(2024, cache.CachePriceTable)
	require.ErrorIs(t, errYear, cache.ErrCacheMiss)
}
