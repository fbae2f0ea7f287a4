package styling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResultCacheDefaults(t *testing.T) {
	c := NewResultCache(0, 0)
	assert.Equal(t, 30*time.Second, c.ttl)
	assert.Equal(t, 128, c.maxSize)
}

func TestResultCacheSetGet(t *testing.T) {
	c := NewResultCache(time.Minute, 8)
	outfits := []Outfit{{Title: "Classic Casual Look", Score: 0.9}}

	_, ok := c.Get("k1")
	assert.False(t, ok)

	c.Set("k1", outfits, GenerationParams{UserID: "u1"})
	got, ok := c.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, outfits, got)
}

func TestResultCacheTTLExpiry(t *testing.T) {
	c := NewResultCache(10*time.Millisecond, 8)
	c.Set("k1", []Outfit{{Title: "x"}}, GenerationParams{})

	_, ok := c.Get("k1")
	assert.True(t, ok)

	time.Sleep(25 * time.Millisecond)
	_, ok = c.Get("k1")
	assert.False(t, ok)
}

func TestResultCacheLRUEviction(t *testing.T) {
	c := NewResultCache(time.Minute, 2)

	c.Set("a", []Outfit{{Title: "a"}}, GenerationParams{})
	time.Sleep(2 * time.Millisecond)
	c.Set("b", []Outfit{{Title: "b"}}, GenerationParams{})
	time.Sleep(2 * time.Millisecond)

	// touching "a" makes "b" the eviction candidate
	_, ok := c.Get("a")
	assert.True(t, ok)
	time.Sleep(2 * time.Millisecond)

	c.Set("c", []Outfit{{Title: "c"}}, GenerationParams{})

	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestResultCacheClear(t *testing.T) {
	c := NewResultCache(time.Minute, 8)
	c.Set("k1", []Outfit{{Title: "x"}}, GenerationParams{})
	c.Clear()
	_, ok := c.Get("k1")
	assert.False(t, ok)
}
