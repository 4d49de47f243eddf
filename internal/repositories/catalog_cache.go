package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tripbooking/internal/domain/models"
	"tripbooking/internal/utils"

	"go.uber.org/zap"
)

const catalogKeyPrefix = "tripbooking:catalog:"

// CachedCatalog is a read-through cache in front of another catalog. Cache failures
// never fail the read; the source is consulted instead.
type CachedCatalog struct {
	Source Catalog
	Cache  Cache
	TTL    time.Duration
}

func (c CachedCatalog) GetTrip(ctx context.Context, id int64) (models.Trip, error) {
	var trip models.Trip
	err := c.readThrough(ctx, fmt.Sprintf("%strip:%d", catalogKeyPrefix, id), &trip, func() (any, error) {
		return c.Source.GetTrip(ctx, id)
	})
	return trip, err
}

func (c CachedCatalog) ListBoats(ctx context.Context) ([]models.Boat, error) {
	var boats []models.Boat
	err := c.readThrough(ctx, catalogKeyPrefix+"boats", &boats, func() (any, error) {
		return c.Source.ListBoats(ctx)
	})
	return boats, err
}

func (c CachedCatalog) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := c.readThrough(ctx, catalogKeyPrefix+"hotels", &hotels, func() (any, error) {
		return c.Source.ListHotels(ctx)
	})
	return hotels, err
}

// Invalidate drops the cached trip plus the shared boat and hotel lists.
func (c CachedCatalog) Invalidate(ctx context.Context, tripIDs ...int64) error {
	keys := []string{catalogKeyPrefix + "boats", catalogKeyPrefix + "hotels"}
	for _, id := range tripIDs {
		keys = append(keys, fmt.Sprintf("%strip:%d", catalogKeyPrefix, id))
	}
	return c.Cache.Del(ctx, keys...)
}

func (c CachedCatalog) readThrough(ctx context.Context, key string, dst any, load func() (any, error)) error {
	if c.Cache != nil {
		raw, ok, err := c.Cache.Get(ctx, key)
		if err != nil {
			utils.Logger().Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		if ok {
			if err := json.Unmarshal(raw, dst); err == nil {
				return nil
			}
		}
	}

	val, err := load()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	if c.Cache != nil {
		if err := c.Cache.Set(ctx, key, raw, c.TTL); err != nil {
			utils.Logger().Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return json.Unmarshal(raw, dst)
}
