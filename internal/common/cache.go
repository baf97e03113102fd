package common

import (
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"
)

type Cache struct {
	*cache.Cache
}

func NewCache(expirationTime, cleanupTime time.Duration) *Cache {
	return &Cache{cache.New(expirationTime, cleanupTime)}
}

func (c *Cache) Set(key string, value interface{}, expiration ...time.Duration) {
	if len(expiration) > 0 {
		c.Cache.Set(key, value, expiration[0])
		return
	}
	c.Cache.Set(key, value, cache.DefaultExpiration)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.Cache.Get(key)
}

// GetWithExpiration returns the item together with its absolute expiry. A zero
// time means the item never expires.
func (c *Cache) GetWithExpiration(key string) (interface{}, time.Time, bool) {
	return c.Cache.GetWithExpiration(key)
}

func (c *Cache) Flush() {
	c.Cache.Flush()
}

func CacheKeySession(tokenHash []byte) string {
	return "session:" + hex.EncodeToString(tokenHash)
}
