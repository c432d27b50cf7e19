package repository

import (
	"context"
	"errors"
	"time"

	"surfplan-api/core/cache"
	"surfplan-api/core/constants"
	"surfplan-api/modules/forecast/entity"

	"github.com/google/uuid"
	"github.com/maypok86/otter/v2"
)

// CachedSeries is the stored forecast payload for one spot.
type CachedSeries struct {
	FetchedAt time.Time             `json:"fetched_at"`
	Hours     []entity.ForecastHour `json:"hours"`
}

// ForecastCache is a two-level cache: Redis shared across instances, with a
// short-lived otter front cache to keep repeat planner calls off the network.
type ForecastCache struct {
	redis *cache.Cache
	local *otter.Cache[string, CachedSeries]
	ttl   time.Duration
}

const localTTL = 5 * time.Minute

func NewForecastCache(redis *cache.Cache, ttl time.Duration) *ForecastCache {
	local := otter.Must(&otter.Options[string, CachedSeries]{
		MaximumSize:      512,
		ExpiryCalculator: otter.ExpiryWriting[string, CachedSeries](localTTL),
	})
	return &ForecastCache{
		redis: redis,
		local: local,
		ttl:   ttl,
	}
}

// Get returns the cached series for a spot, or cache.ErrCacheMiss.
func (c *ForecastCache) Get(ctx context.Context, spotID uuid.UUID) (*CachedSeries, error) {
	key := constants.RedisKeyForecast + spotID.String()

	if series, ok := c.local.GetIfPresent(key); ok {
		return &series, nil
	}

	var series CachedSeries
	if err := c.redis.GetJSON(ctx, key, &series); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, cache.ErrCacheMiss
		}
		return nil, err
	}

	c.local.Set(key, series)
	return &series, nil
}

func (c *ForecastCache) Set(ctx context.Context, spotID uuid.UUID, hours []entity.ForecastHour) error {
	key := constants.RedisKeyForecast + spotID.String()
	series := CachedSeries{
		FetchedAt: time.Now().UTC(),
		Hours:     hours,
	}
	if err := c.redis.SetJSON(ctx, key, series, c.ttl); err != nil {
		return err
	}
	c.local.Set(key, series)
	return nil
}
