package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache_GetSet(t *testing.T) {
	c, err := NewLRUCache[[]string](2, time.Minute)
	require.NoError(t, err)

	c.Set("a", []string{"1"})
	c.Set("b", []string{"2"})
	c.Set("c", []string{"3"})

	_, ok := c.Get("a")
	assert.False(t, ok, "evicted")

	v, ok := c.Get("c")
	require.True(t, ok)
	assert.Equal(t, []string{"3"}, v)
	assert.Equal(t, 2, c.Len())

	c.Purge()
	assert.Zero(t, c.Len())
}

func TestLRUCache_Expiry(t *testing.T) {
	c, err := NewLRUCache[int](10, time.Minute)
	require.NoError(t, err)

	now := time.Now()
	c.now = func() time.Time { return now }
	c.Set("k", 1)

	c.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestNewLRUCache_InvalidSize(t *testing.T) {
	_, err := NewLRUCache[int](0, time.Minute)
	assert.Error(t, err)
}
