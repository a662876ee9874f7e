package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mifrandir/fluctour/internal/db"
	"github.com/mifrandir/fluctour/internal/geo"
)

// API is the collaborator surface the planner consumes. *Client and
// *CachedClient both satisfy it.
type API interface {
	Geocode(ctx context.Context, location string) (Place, error)
	NearbySearch(ctx context.Context, center geo.Point, radiusM int) ([]Place, error)
	Directions(ctx context.Context, origin, dest geo.Point) (Leg, error)
}

// CachedClient wraps an API with two optional caches: geocode results go
// to a Postgres geocode_cache table (address text primary key, place
// jsonb, expires_at timestamptz), nearby-search and directions responses
// go to redis with a TTL. Either cache may be nil. Cache failures are
// logged and treated as misses; lookups never fail a request.
type CachedClient struct {
	inner      API
	db         db.Querier
	redis      *redis.Client
	geocodeTTL time.Duration
	searchTTL  time.Duration
}

func NewCachedClient(inner API, querier db.Querier, redisClient *redis.Client, geocodeTTL, searchTTL time.Duration) *CachedClient {
	return &CachedClient{
		inner:      inner,
		db:         querier,
		redis:      redisClient,
		geocodeTTL: geocodeTTL,
		searchTTL:  searchTTL,
	}
}

func (c *CachedClient) Geocode(ctx context.Context, location string) (Place, error) {
	if c.db != nil {
		var raw []byte
		err := c.db.QueryRow(ctx, `
			SELECT place FROM geocode_cache WHERE address=$1 AND expires_at > $2
		`, location, time.Now()).Scan(&raw)
		if err == nil {
			var place Place
			if err := json.Unmarshal(raw, &place); err == nil {
				return place, nil
			}
			log.Printf("corrupt geocode cache entry for %q, refetching", location)
		}
	}

	place, err := c.inner.Geocode(ctx, location)
	if err != nil {
		return Place{}, err
	}

	if c.db != nil {
		raw, _ := json.Marshal(place)
		_, err := c.db.Exec(ctx, `
			INSERT INTO geocode_cache (address, place, expires_at)
			VALUES ($1,$2,$3)
			ON CONFLICT (address) DO UPDATE
			SET place=EXCLUDED.place, expires_at=EXCLUDED.expires_at
		`, location, raw, time.Now().Add(c.geocodeTTL))
		if err != nil {
			log.Printf("store geocode cache entry for %q: %v", location, err)
		}
	}
	return place, nil
}

func (c *CachedClient) NearbySearch(ctx context.Context, center geo.Point, radiusM int) ([]Place, error) {
	key := fmt.Sprintf("maps:nearby:%.6f,%.6f:%d", center.Lat, center.Lng, radiusM)

	if c.redis != nil {
		raw, err := c.redis.Get(ctx, key).Bytes()
		if err == nil {
			var places []Place
			if err := json.Unmarshal(raw, &places); err == nil {
				return places, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("redis get %s: %v", key, err)
		}
	}

	places, err := c.inner.NearbySearch(ctx, center, radiusM)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, places)
	return places, nil
}

func (c *CachedClient) Directions(ctx context.Context, origin, dest geo.Point) (Leg, error) {
	key := fmt.Sprintf("maps:directions:%.6f,%.6f:%.6f,%.6f", origin.Lat, origin.Lng, dest.Lat, dest.Lng)

	if c.redis != nil {
		raw, err := c.redis.Get(ctx, key).Bytes()
		if err == nil {
			var leg Leg
			if err := json.Unmarshal(raw, &leg); err == nil {
				return leg, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("redis get %s: %v", key, err)
		}
	}

	leg, err := c.inner.Directions(ctx, origin, dest)
	if err != nil {
		return Leg{}, err
	}

	c.store(ctx, key, leg)
	return leg, nil
}

func (c *CachedClient) store(ctx context.Context, key string, value any) {
	if c.redis == nil {
		return
	}
	raw, _ := json.Marshal(value)
	if err := c.redis.Set(ctx, key, raw, c.searchTTL).Err(); err != nil {
		log.Printf("redis set %s: %v", key, err)
	}
}
