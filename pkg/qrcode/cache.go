package qrcode

import "github.com/dmitrymomot/phonecheck/pkg/cache"

type imageKey struct {
	e164 string
	size int
}

// Cache remembers TelImage results by number and size.
type Cache struct {
	images *cache.LRU[imageKey, string]
}

// NewCache keeps up to capacity images. It panics when capacity is not
// positive.
func NewCache(capacity int) *Cache {
	return &Cache{images: cache.NewLRU[imageKey, string](capacity)}
}

// TelImage returns the cached image for e164, rendering it on a miss.
// Errors are not cached.
func (c *Cache) TelImage(e164 string, size int) (string, error) {
	key := imageKey{e164: e164, size: size}
	if img, ok := c.images.Get(key); ok {
		return img, nil
	}
	img, err := TelImage(e164, size)
	if err != nil {
		return "", err
	}
	c.images.Put(key, img)
	return img, nil
}

// Stats reports cache hits and misses.
func (c *Cache) Stats() cache.Stats {
	return c.images.Stats()
}
