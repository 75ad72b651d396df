package cache

import (
	"sync"
	"sync/atomic"
)

// Stats is a point-in-time view of cache usage.
type Stats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Clears  int64 `json:"clears"`
}

// ResponseCache maps a prompt to the reply produced for it. It is safe for
// concurrent use. The zero value is not usable; call New.
type ResponseCache struct {
	mu      sync.RWMutex
	entries map[string]string

	hits   atomic.Int64
	misses atomic.Int64
	clears atomic.Int64
}

// New creates an empty ResponseCache.
func New() *ResponseCache {
	return &ResponseCache{entries: make(map[string]string)}
}

// Get returns the reply stored for prompt.
func (c *ResponseCache) Get(prompt string) (string, bool) {
	c.mu.RLock()
	resp, ok := c.entries[prompt]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return resp, ok
}

// Put stores resp under prompt, replacing any previous reply.
func (c *ResponseCache) Put(prompt, resp string) {
	c.mu.Lock()
	c.entries[prompt] = resp
	c.mu.Unlock()
}

// Clear drops every entry and returns how many were removed.
func (c *ResponseCache) Clear() int {
	c.mu.Lock()
	n := len(c.entries)
	c.entries = make(map[string]string)
	c.mu.Unlock()

	c.clears.Add(1)
	return n
}

// Len returns the number of cached prompts.
func (c *ResponseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns cache performance counters.
func (c *ResponseCache) Stats() Stats {
	return Stats{
		Entries: c.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Clears:  c.clears.Load(),
	}
}
