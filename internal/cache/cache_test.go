package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zhmc-toolkit/zhmc/internal/cache"
)

func TestCacheSetGet(t *testing.T) {
	t.Parallel()

	c := cache.New(time.Minute)

	assert.True(t, c.IsEnabled())

	c.Set(cache.MakeCPCKey("CPC1"), "value", 0)

	v, ok := c.Get(cache.MakeCPCKey("CPC1"))
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	_, ok = c.Get(cache.MakeCPCKey("CPC2"))
	assert.False(t, ok)
}

func TestCacheDisabled(t *testing.T) {
	t.Parallel()

	c := cache.New(0)

	assert.False(t, c.IsEnabled())

	c.Set("key", "value", 0)

	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestCacheDeleteAndClear(t *testing.T) {
	t.Parallel()

	c := cache.New(time.Minute)

	c.Set("a", 1, 0)
	c.Set("b", 2, 0)

	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Clear()

	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestKeyHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cpc:CPC1", cache.MakeCPCKey("CPC1"))
	assert.Equal(t, "partition:CPC1/P1", cache.MakePartitionKey("CPC1", "P1"))
}
