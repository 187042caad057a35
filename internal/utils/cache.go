package utils

import (
	"os"
	"sync"
	"time"
)

// CacheItem represents a cached item with metadata for invalidation
type CacheItem[T any] struct {
	Value   T
	ModTime time.Time
	Size    int64
}

// Cache provides a generic caching utility with file-based invalidation
type Cache[K comparable, V any] struct {
	items map[K]*CacheItem[V]
	mutex sync.RWMutex
}

// NewCache creates a new generic cache
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		items: make(map[K]*CacheItem[V]),
	}
}

// Get retrieves an item from the cache
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if item, exists := c.items[key]; exists {
		return item.Value, true
	}

	var zero V
	return zero, false
}

// GetWithFileValidation retrieves an item from the cache, dropping it when
// the backing file changed since it was stored.
func (c *Cache[K, V]) GetWithFileValidation(key K, filePath string) (V, bool) {
	c.mutex.RLock()
	item, exists := c.items[key]
	c.mutex.RUnlock()

	if !exists {
		var zero V
		return zero, false
	}

	if stat, err := os.Stat(filePath); err == nil {
		if stat.ModTime().Equal(item.ModTime) && stat.Size() == item.Size {
			return item.Value, true
		}
	}

	c.mutex.Lock()
	delete(c.items, key)
	c.mutex.Unlock()

	var zero V
	return zero, false
}

// Set stores an item in the cache
func (c *Cache[K, V]) Set(key K, value V) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[key] = &CacheItem[V]{
		Value: value,
	}
}

// SetWithFileInfo stores an item with the backing file's metadata so later
// reads can validate freshness.
func (c *Cache[K, V]) SetWithFileInfo(key K, value V, filePath string) {
	item := &CacheItem[V]{Value: value}
	if stat, err := os.Stat(filePath); err == nil {
		item.ModTime = stat.ModTime()
		item.Size = stat.Size()
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items[key] = item
}

// Delete removes an item from the cache
func (c *Cache[K, V]) Delete(key K) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.items, key)
}

// Clear removes all items from the cache
func (c *Cache[K, V]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items = make(map[K]*CacheItem[V])
}

// Size returns the number of cached items
func (c *Cache[K, V]) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.items)
}
