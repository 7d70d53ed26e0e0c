package wavefront

import (
	"path/filepath"
	"sync"
)

// LibraryCache stores parsed material libraries keyed by absolute path.
// It is safe for concurrent use, so one cache can serve parsers running in
// separate goroutines.
type LibraryCache struct {
	data map[string]MaterialMap
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewLibraryCache creates an empty cache.
func NewLibraryCache() *LibraryCache {
	return &LibraryCache{
		data: make(map[string]MaterialMap),
	}
}

// Get retrieves a library from the cache.
func (c *LibraryCache) Get(path string) (MaterialMap, bool) {
	key := cacheKey(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	materials, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return materials, ok
}

// Set stores a parsed library.
func (c *LibraryCache) Set(path string, materials MaterialMap) {
	key := cacheKey(path)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = materials
}

// Len returns the number of cached libraries.
func (c *LibraryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Clear empties the cache and resets its statistics.
func (c *LibraryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]MaterialMap)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *LibraryCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func cacheKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
