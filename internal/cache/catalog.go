package cache

import (
	"encoding/json"
	"errors"

	"github.com/alcyxob/fitness-ai/internal/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// CatalogCache is an in-process cache for the read-only reference catalogs.
type CatalogCache struct {
	cache          *freecache.Cache
	ttlSeconds     int
	metricsManager *metrics.Manager
}

// NewCatalogCache allocates sizeBytes of cache memory (freecache enforces a 512KB minimum).
func NewCatalogCache(sizeBytes int, ttlSeconds int, metricsManager *metrics.Manager) *CatalogCache {
	return &CatalogCache{
		cache:          freecache.NewCache(sizeBytes),
		ttlSeconds:     ttlSeconds,
		metricsManager: metricsManager,
	}
}

// Get decodes the cached value for key into dst.
func (c *CatalogCache) Get(key string, dst any) bool {
	data, err := c.cache.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("catalog cache get %s: %s", key, err)
		}
		c.observe("miss")
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Errorf("catalog cache decode %s: %s", key, err)
		c.observe("miss")
		return false
	}
	c.observe("hit")
	return true
}

func (c *CatalogCache) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Errorf("catalog cache encode %s: %s", key, err)
		return
	}
	if err := c.cache.Set([]byte(key), data, c.ttlSeconds); err != nil {
		log.Errorf("catalog cache set %s: %s", key, err)
	}
}

func (c *CatalogCache) observe(result string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterCache.WithLabelValues("catalog", result).Inc()
	}
}
