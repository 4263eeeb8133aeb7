package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalCacheSetGet(t *testing.T) {
	c := NewLocalCache(LocalConfig{})
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	v, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), v)

	_, ok = c.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestLocalCacheDelete(t *testing.T) {
	c := NewLocalCache(LocalConfig{})
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestLocalCacheExpiration(t *testing.T) {
	c := NewLocalCache(LocalConfig{})
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestLocalCacheClear(t *testing.T) {
	c := NewLocalCache(LocalConfig{})
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "b", 2, time.Minute))
	require.NoError(t, c.Clear(ctx))

	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "b")
	assert.False(t, ok)
}

func TestNewCacheFactory(t *testing.T) {
	c, err := NewCache(Config{Type: "local"})
	require.NoError(t, err)
	assert.NotNil(t, c)

	c, err = NewCache(Config{}) // 默认本地
	require.NoError(t, err)
	assert.NotNil(t, c)

	_, err = NewCache(Config{Type: "memcached"})
	assert.Error(t, err)
}
