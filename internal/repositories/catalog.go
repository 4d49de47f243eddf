package repositories

import (
	"context"

	"tripbooking/internal/domain/models"
)

type TripRepository interface {
	GetTrip(ctx context.Context, id int64) (models.Trip, error)
}

type BoatRepository interface {
	ListBoats(ctx context.Context) ([]models.Boat, error)
}

type HotelRepository interface {
	ListHotels(ctx context.Context) ([]models.Hotel, error)
}

// Catalog is the read side the booking calculator prices against.
type Catalog interface {
	TripRepository
	BoatRepository
	HotelRepository
}
