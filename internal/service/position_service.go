package service

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/redis"
)

const (
	positionKeyPrefix = "position:"
	positionTTL       = time.Hour
	vesselGeoKey      = "vessels_geo"
)

// PositionSourceLive marks positions served from the cache, PositionSourceStored
// marks positions read from the database, and PositionSourceUnknown is used
// when neither holds a position.
const (
	PositionSourceLive    = "live"
	PositionSourceStored  = "stored"
	PositionSourceUnknown = "unknown"
)

// PositionCache caches live vessel positions in Redis. All reads degrade
// gracefully when the cache is unavailable.
type PositionCache interface {
	// Set stores a vessel position with a one hour TTL and updates the geo index
	Set(ctx context.Context, vesselID string, pos *domain.Position) error
	// Get retrieves a cached vessel position, nil when absent or cache down
	Get(ctx context.Context, vesselID string) (*domain.Position, error)
	// Nearby finds vessel IDs within radiusKm of a point
	Nearby(ctx context.Context, lat, lon, radiusKm float64) ([]string, error)
	// Remove drops a vessel from the cache and geo index
	Remove(ctx context.Context, vesselID string) error
	// Available reports whether the cache can serve reads
	Available() bool
}

// positionCache implements PositionCache over a shared Redis client
type positionCache struct {
	client *redis.Client
}

// NewPositionCache creates a new PositionCache
func NewPositionCache(client *redis.Client) PositionCache {
	return &positionCache{client: client}
}

// Available reports whether the cache can serve reads
func (c *positionCache) Available() bool {
	return c.client != nil && c.client.Available()
}

// Set stores a vessel position with a one hour TTL and updates the geo index
func (c *positionCache) Set(ctx context.Context, vesselID string, pos *domain.Position) error {
	if !c.Available() {
		return nil
	}

	data, err := json.Marshal(pos)
	if err != nil {
		return err
	}

	pipe := c.client.Raw().Pipeline()
	pipe.Set(ctx, positionKeyPrefix+vesselID, data, positionTTL)
	pipe.GeoAdd(ctx, vesselGeoKey, &goredis.GeoLocation{
		Name:      vesselID,
		Longitude: pos.Lon,
		Latitude:  pos.Lat,
	})
	_, err = pipe.Exec(ctx)
	return c.client.Observe(err)
}

// Get retrieves a cached vessel position, nil when absent or cache down
func (c *positionCache) Get(ctx context.Context, vesselID string) (*domain.Position, error) {
	if !c.Available() {
		return nil, nil
	}

	data, err := c.client.Raw().Get(ctx, positionKeyPrefix+vesselID).Bytes()
	if err != nil {
		if err == redis.ErrNil {
			return nil, nil
		}
		return nil, c.client.Observe(err)
	}

	pos := &domain.Position{}
	if err := json.Unmarshal(data, pos); err != nil {
		return nil, err
	}
	return pos, nil
}

// Nearby finds vessel IDs within radiusKm of a point
func (c *positionCache) Nearby(ctx context.Context, lat, lon, radiusKm float64) ([]string, error) {
	if !c.Available() {
		return nil, nil
	}

	locs, err := c.client.Raw().GeoSearchLocation(ctx, vesselGeoKey, &goredis.GeoSearchLocationQuery{
		GeoSearchQuery: goredis.GeoSearchQuery{
			Longitude:  lon,
			Latitude:   lat,
			Radius:     radiusKm,
			RadiusUnit: "km",
		},
	}).Result()
	if err != nil {
		return nil, c.client.Observe(err)
	}

	ids := make([]string, 0, len(locs))
	for _, loc := range locs {
		ids = append(ids, loc.Name)
	}
	return ids, nil
}

// Remove drops a vessel from the cache and geo index
func (c *positionCache) Remove(ctx context.Context, vesselID string) error {
	if !c.Available() {
		return nil
	}

	pipe := c.client.Raw().Pipeline()
	pipe.Del(ctx, positionKeyPrefix+vesselID)
	pipe.ZRem(ctx, vesselGeoKey, vesselID)
	_, err := pipe.Exec(ctx)
	return c.client.Observe(err)
}
