package bgg

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryCache(t *testing.T, ttl time.Duration) *BadgerCache {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	cache := NewBadgerCache(db, ttl)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestBadgerCache_Miss(t *testing.T) {
	cache := newMemoryCache(t, time.Hour)

	body, ok, err := cache.Get("42")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, body)
}

func TestBadgerCache_SetGet(t *testing.T) {
	cache := newMemoryCache(t, 0)

	require.NoError(t, cache.Set("42", []byte(sampleThing)))

	body, ok, err := cache.Get("42")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sampleThing, string(body))

	_, ok, err = cache.Get("43")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBadgerCache_Overwrite(t *testing.T) {
	cache := newMemoryCache(t, time.Hour)

	require.NoError(t, cache.Set("1", []byte("old")))
	require.NoError(t, cache.Set("1", []byte("new")))

	body, ok, err := cache.Get("1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", string(body))
}
