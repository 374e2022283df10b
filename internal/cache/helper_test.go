package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orgRecord struct {
	Name  string `json:"name"`
	Lives int    `json:"lives"`
}

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAsideFetchesOnMissAndServesFromCache(t *testing.T) {
	withMiniredis(t)

	fetches := 0
	fetch := func(dest *orgRecord) func() error {
		return func() error {
			fetches++
			*dest = orgRecord{Name: "BEULYNK", Lives: 5000}
			return nil
		}
	}

	var first orgRecord
	require.NoError(t, Aside(t.Context(), "org", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "BEULYNK", first.Name)

	// Second read is served from Redis without touching fetch.
	var second orgRecord
	require.NoError(t, Aside(t.Context(), "org", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, 5000, second.Lives)
}

func TestAsidePropagatesFetchError(t *testing.T) {
	withMiniredis(t)

	wantErr := errors.New("db down")
	var dest orgRecord
	err := Aside(t.Context(), "org", &dest, time.Minute, func() error {
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	// Nothing cached on failure.
	found, gerr := GetJSON(t.Context(), "org", &dest)
	require.NoError(t, gerr)
	assert.False(t, found)
}

func TestAsideWithoutClientFallsThrough(t *testing.T) {
	SetClient(nil)

	fetches := 0
	var dest orgRecord
	for range 2 {
		require.NoError(t, Aside(t.Context(), "org", &dest, time.Minute, func() error {
			fetches++
			dest = orgRecord{Name: "uncached"}
			return nil
		}))
	}
	assert.Equal(t, 2, fetches)
}

func TestInvalidateRemovesKey(t *testing.T) {
	mr := withMiniredis(t)

	require.NoError(t, SetJSON(t.Context(), NGOInfoKey, orgRecord{Name: "old"}, NGOInfoTTL))
	require.True(t, mr.Exists(NGOInfoKey))

	InvalidateNGOInfo(t.Context())
	assert.False(t, mr.Exists(NGOInfoKey))
}
