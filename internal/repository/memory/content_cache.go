package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache keys for the hot public read paths.
const (
	PublishedFeaturesKey = "features:published"
	SectionSettingsKey   = "features:section-settings"
)

// ContentCache is an in-process read cache for published content. Writers
// invalidate synchronously, so in-process reads never see stale data after a
// mutation.
type ContentCache struct {
	cache *cache.Cache
}

func NewContentCache() *ContentCache {
	// Default expiration 5 minutes, purge sweep every 10 minutes.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &ContentCache{
		cache: c,
	}
}

func (c *ContentCache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *ContentCache) Set(key string, value interface{}) {
	c.cache.Set(key, value, cache.DefaultExpiration)
}

func (c *ContentCache) Invalidate(keys ...string) {
	for _, key := range keys {
		c.cache.Delete(key)
	}
}
