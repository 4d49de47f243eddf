package repositories

import (
	"context"

	"tripbooking/internal/domain/models"
	"tripbooking/internal/landingapi"
)

// HTTPCatalog reads the catalog from the landing-page API and normalizes it.
type HTTPCatalog struct {
	Client     *landingapi.Client
	Normalizer landingapi.Normalizer
}

func (c HTTPCatalog) GetTrip(ctx context.Context, id int64) (models.Trip, error) {
	raw, err := c.Client.GetTrip(ctx, id)
	if err != nil {
		return models.Trip{}, err
	}
	return c.Normalizer.NormalizeTrip(raw), nil
}

func (c HTTPCatalog) ListBoats(ctx context.Context) ([]models.Boat, error) {
	raw, err := c.Client.ListBoats(ctx)
	if err != nil {
		return nil, err
	}
	return c.Normalizer.NormalizeBoats(raw), nil
}

func (c HTTPCatalog) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	raw, err := c.Client.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	return c.Normalizer.NormalizeHotels(raw), nil
}
