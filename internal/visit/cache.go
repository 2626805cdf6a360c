package visit

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
)

// featuredCacheSize bounds the number of distinct limits cached
const featuredCacheSize = 16

// featuredCache holds ranked featured lists keyed by limit
// with time-based expiration.
type featuredCache struct {
	lru *expirable.LRU[int, []domain.GardenView]
}

func newFeaturedCache(ttl time.Duration) *featuredCache {
	return &featuredCache{
		lru: expirable.NewLRU[int, []domain.GardenView](featuredCacheSize, nil, ttl),
	}
}

// Get returns a copy of the cached list for limit
func (c *featuredCache) Get(limit int) ([]domain.GardenView, bool) {
	views, ok := c.lru.Get(limit)
	if !ok {
		return nil, false
	}
	return append([]domain.GardenView(nil), views...), true
}

func (c *featuredCache) Set(limit int, views []domain.GardenView) {
	c.lru.Add(limit, append([]domain.GardenView(nil), views...))
}

// Clear drops every cached ranking
func (c *featuredCache) Clear() {
	c.lru.Purge()
}
