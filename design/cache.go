package design

import (
	"sync"

	"github.com/katalvlaran/sigdiff/matrix"
)

// Cache memoizes Build per n. It is safe for concurrent use.
//
// The matrices it returns are shared between callers and MUST be treated as
// read-only; every consumer in this module only reads them. Use Clone on the
// result if you need a private copy.
type Cache struct {
	mu      sync.RWMutex
	entries map[int]*matrix.Dense
	builds  int
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[int]*matrix.Dense)}
}

// Get returns the design matrix for n, building it on first use.
// Complexity: O(1) on a hit, Build(n) on a miss.
func (c *Cache) Get(n int) *matrix.Dense {
	if n < 0 {
		n = 0
	}

	c.mu.RLock()
	a, ok := c.entries[n]
	c.mu.RUnlock()
	if ok {
		return a
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have filled the slot between the two locks.
	if a, ok = c.entries[n]; ok {
		return a
	}
	if c.entries == nil {
		c.entries = make(map[int]*matrix.Dense)
	}
	a = Build(n)
	c.entries[n] = a
	c.builds++

	return a
}

// Len returns the number of cached sizes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Builds returns how many times Build ran on a cache miss.
func (c *Cache) Builds() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.builds
}

// Reset drops every cached matrix.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[int]*matrix.Dense)
	c.mu.Unlock()
}
