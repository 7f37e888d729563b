package ranking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/2beens/gymtracker/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	prRankingKey           = "ranking::prs"
	progressionRankingKey  = "ranking::progression"
	exerciseProgressPrefix = "progress::"
)

// Cache keeps the aggregation results for a short time. Any change to workout data
// drops all of it, the lists are always refetched whole.
type Cache struct {
	cache          *freecache.Cache
	ttlSeconds     int
	metricsManager *metrics.Manager
}

func NewCache(sizeBytes int, ttl time.Duration, metricsManager *metrics.Manager) *Cache {
	ttlSeconds := int(ttl.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}
	return &Cache{
		cache:          freecache.NewCache(sizeBytes),
		ttlSeconds:     ttlSeconds,
		metricsManager: metricsManager,
	}
}

// get unmarshals the cached value into v and reports whether it was found.
func (c *Cache) get(key string, v any) bool {
	cached, err := c.cache.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("ranking cache get %s: %s", key, err)
		}
		c.count("miss")
		return false
	}

	if err := json.Unmarshal(cached, v); err != nil {
		log.Errorf("ranking cache unmarshal %s: %s", key, err)
		c.count("miss")
		return false
	}

	c.count("hit")
	return true
}

func (c *Cache) set(key string, v any) {
	value, err := json.Marshal(v)
	if err != nil {
		log.Errorf("ranking cache marshal %s: %s", key, err)
		return
	}
	if err := c.cache.Set([]byte(key), value, c.ttlSeconds); err != nil {
		log.Errorf("ranking cache set %s: %s", key, err)
	}
}

// Invalidate drops every cached aggregation.
func (c *Cache) Invalidate(_ context.Context) {
	c.cache.Clear()
	log.Trace("ranking cache cleared")
}

func (c *Cache) count(outcome string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterRankingCache.WithLabelValues(outcome).Inc()
	}
}
