package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khussac/proconnect-api/internal/config"
	"github.com/khussac/proconnect-api/internal/models"
)

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache
}

func TestSetAndGet(t *testing.T) {
	cache := setupTestCache(t)

	expected := models.SessionUser{ID: 1, Name: "María González", Email: "maria@email.com"}
	err := cache.Set("session:jti-1", expected, time.Minute)
	require.NoError(t, err)

	var actual models.SessionUser
	found, err := cache.Get("session:jti-1", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	cache := setupTestCache(t)

	var out models.SessionUser
	found, err := cache.Get("no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache := setupTestCache(t)

	require.NoError(t, cache.Set("draft:1", models.DescriptionDraft{Description: "x"}, time.Minute))
	require.NoError(t, cache.Invalidate("draft:1"))

	var out models.DescriptionDraft
	found, err := cache.Get("draft:1", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate_MissingKeyIsNoError(t *testing.T) {
	cache := setupTestCache(t)
	assert.NoError(t, cache.Invalidate("absent"))
}
