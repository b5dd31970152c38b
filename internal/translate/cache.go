package translate

import (
	"container/list"
	"sync"
)

// DefaultCacheSize is the default bound on cached translations.
const DefaultCacheSize = 4096

// cacheKey identifies one translation result.
type cacheKey struct {
	text       string
	sourceLang string
	targetLang string
}

type cacheEntry struct {
	key   cacheKey
	value string
}

// Cache is a bounded LRU cache for translation results.
// A maxSize of zero or less means unbounded.
type Cache struct {
	mu      sync.Mutex
	maxSize int
	entries map[cacheKey]*list.Element
	order   *list.List // front = most recently used
}

// NewCache creates a cache bounded to maxSize entries.
func NewCache(maxSize int) *Cache {
	return &Cache{
		maxSize: maxSize,
		entries: make(map[cacheKey]*list.Element),
		order:   list.New(),
	}
}

// Get returns the cached translation for the key, marking it recently used.
func (c *Cache) Get(text, sourceLang, targetLang string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[cacheKey{text, sourceLang, targetLang}]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).value, true
}

// Set stores a translation, evicting the least recently used entry when full.
func (c *Cache) Set(text, sourceLang, targetLang, translated string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{text, sourceLang, targetLang}
	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).value = translated
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&cacheEntry{key: key, value: translated})
	c.entries[key] = el

	if c.maxSize > 0 && c.order.Len() > c.maxSize {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
