package texture

import (
	"image"

	"github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"
)

// Resolver resolves a texture name to a decoded NRGBA image.
type Resolver interface {
	Resolve(texName string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache.
type Cache struct {
	mu    deadlock.RWMutex
	items map[string]*image.NRGBA // nil value: load attempted and failed
	index *Index
}

// NewCache creates a new texture cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*image.NRGBA),
		index: index,
	}
}

// Resolve loads and caches a texture by name. Returns nil if not found or
// undecodable; failures are cached too.
func (c *Cache) Resolve(texName string) *image.NRGBA {
	if texName == "" {
		return nil
	}
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	img, exists := c.items[path]
	c.mu.RUnlock()
	if exists {
		return img
	}

	// Slow path: load from disk
	img, err := LoadTexture(path)
	if err != nil {
		log.Warn().Err(err).Str("texture", texName).Msg("texture unavailable")
	}

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, exists := c.items[path]; exists {
		return cached
	}
	c.items[path] = img
	return img
}

// Len returns the number of cached paths, including failed loads.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
