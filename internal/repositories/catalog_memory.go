package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"tripbooking/internal/domain"
	"tripbooking/internal/domain/models"
	"tripbooking/internal/landingapi"
)

// MemoryCatalog keeps trips, boats and hotels in memory (fixtures, tests, offline demo).
type MemoryCatalog struct {
	mu     sync.RWMutex
	trips  map[int64]models.Trip
	boats  []models.Boat
	hotels []models.Hotel
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{trips: make(map[int64]models.Trip)}
}

// LoadTrips replaces the stored trips.
func (c *MemoryCatalog) LoadTrips(trips []models.Trip) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.trips = make(map[int64]models.Trip, len(trips))
	for _, t := range trips {
		c.trips[t.ID] = t
	}
}

func (c *MemoryCatalog) LoadBoats(boats []models.Boat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.boats = append([]models.Boat(nil), boats...)
}

func (c *MemoryCatalog) LoadHotels(hotels []models.Hotel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hotels = append([]models.Hotel(nil), hotels...)
}

func (c *MemoryCatalog) GetTrip(_ context.Context, id int64) (models.Trip, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.trips[id]
	if !ok {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	return t, nil
}

// ListBoats returns active boats only, like the landing API.
func (c *MemoryCatalog) ListBoats(_ context.Context) ([]models.Boat, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Boat, 0, len(c.boats))
	for _, b := range c.boats {
		if b.Status.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (c *MemoryCatalog) ListHotels(_ context.Context) ([]models.Hotel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Hotel, 0, len(c.hotels))
	for _, h := range c.hotels {
		if h.Status.IsActive() {
			out = append(out, h)
		}
	}
	return out, nil
}

// CatalogFixture is a catalog snapshot in the landing API's raw shape.
type CatalogFixture struct {
	Trips  []landingapi.RawTrip  `json:"trips"`
	Boats  []landingapi.RawBoat  `json:"boats"`
	Hotels []landingapi.RawHotel `json:"hotels"`
}

// LoadCatalogFixture reads a CatalogFixture JSON file and normalizes it into a MemoryCatalog.
func LoadCatalogFixture(path string, n landingapi.Normalizer) (*MemoryCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("baca fixture katalog: %w", err)
	}
	var fx CatalogFixture
	if err := json.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("fixture katalog tidak valid: %w", err)
	}

	cat := NewMemoryCatalog()
	trips := make([]models.Trip, 0, len(fx.Trips))
	for _, t := range fx.Trips {
		trips = append(trips, n.NormalizeTrip(t))
	}
	cat.LoadTrips(trips)
	cat.LoadBoats(n.NormalizeBoats(fx.Boats))
	cat.LoadHotels(n.NormalizeHotels(fx.Hotels))
	return cat, nil
}
