package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseCache_RoundTrip(t *testing.T) {
	t.Parallel()

	c := New()
	c.Put("hello", " Hi there!")

	got, ok := c.Get("hello")
	assert.True(t, ok)
	assert.Equal(t, " Hi there!", got)

	c.Put("hello", " replaced")
	got, _ = c.Get("hello")
	assert.Equal(t, " replaced", got)
}

func TestResponseCache_KeysAreExact(t *testing.T) {
	t.Parallel()

	c := New()
	c.Put("Hello", " a")

	_, ok := c.Get("hello")
	assert.False(t, ok, "keys are case-sensitive")
	_, ok = c.Get("Hello ")
	assert.False(t, ok, "keys are whitespace-sensitive")
	_, ok = c.Get("Hello")
	assert.True(t, ok)
}

func TestResponseCache_Clear(t *testing.T) {
	t.Parallel()

	c := New()
	prompts := []string{"a", "b", "c"}
	for _, p := range prompts {
		c.Put(p, " "+p)
	}

	assert.Equal(t, 3, c.Clear())
	assert.Equal(t, 0, c.Len())
	for _, p := range prompts {
		_, ok := c.Get(p)
		assert.False(t, ok, "%q should be gone after Clear", p)
	}
	assert.Equal(t, 0, c.Clear())
}

func TestResponseCache_Stats(t *testing.T) {
	t.Parallel()

	c := New()
	c.Put("a", " a")
	c.Get("a")
	c.Get("a")
	c.Get("missing")
	c.Clear()

	assert.Equal(t, Stats{Entries: 0, Hits: 2, Misses: 1, Clears: 1}, c.Stats())
}

func TestResponseCache_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("w%d-%d", worker, j)
				c.Put(key, " v")
				c.Get(key)
				if j%50 == 0 {
					c.Clear()
				}
			}
		}(i)
	}
	wg.Wait()

	s := c.Stats()
	assert.Equal(t, int64(8*200), s.Hits+s.Misses)
}
