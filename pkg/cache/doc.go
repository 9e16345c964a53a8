// Package cache provides a bounded, concurrency-safe LRU map.
//
// The phone checker uses it to keep rendered QR images, which are costly to
// encode and are requested again every time the same number is checked.
//
//	c := cache.NewLRU[string, []byte](512)
//	c.Put("+447400123456", png)
//	if v, ok := c.Get("+447400123456"); ok {
//		// ...
//	}
//
// Stats reports hits and misses since creation.
package cache
