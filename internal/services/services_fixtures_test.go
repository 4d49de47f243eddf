package services

import (
	"context"
	"sync"
	"time"

	"tripbooking/internal/domain"
	"tripbooking/internal/domain/models"
	"tripbooking/internal/landingapi"
	"tripbooking/internal/repositories"
)

type fakeCreator struct {
	mu       sync.Mutex
	id       int64
	err      error
	calls    int
	payloads []landingapi.BookingPayload
}

func (f *fakeCreator) CreateBooking(_ context.Context, p landingapi.BookingPayload) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.payloads = append(f.payloads, p)
	if f.err != nil {
		return 0, f.err
	}
	return f.id, nil
}

type fakeLedger struct {
	enabled bool
	records []models.Submission
}

func (f *fakeLedger) Enabled() bool { return f.enabled }

func (f *fakeLedger) Record(_ context.Context, s models.Submission) (int64, error) {
	f.records = append(f.records, s)
	return int64(len(f.records)), nil
}

func fixtureCatalog() *repositories.MemoryCatalog {
	cat := repositories.NewMemoryCatalog()
	cat.LoadTrips([]models.Trip{
		{
			ID:       7,
			Name:     "Komodo Sailing",
			Type:     models.TripTypeOpen,
			HasBoat:  true,
			HasHotel: true,
			Durations: []models.TripDuration{{
				ID:    100,
				Label: "3D2N",
				Days:  3,
				Prices: []models.TripPrice{
					{ID: 1, PaxMin: 1, PaxMax: 4, PricePerPax: 1_000_000, Region: models.RegionDomestic},
					{ID: 2, PaxMin: 5, PaxMax: 10, PricePerPax: 900_000, Region: models.RegionDomestic},
				},
			}},
			AdditionalFees: []models.AdditionalFee{
				{ID: 21, Category: "Guide Fee 1", Price: 500_000, Region: models.RegionDomesticOverseas, Unit: models.FeeUnitPerDay, PaxMin: 1, PaxMax: 5, IsRequired: true},
				{ID: 22, Category: "Guide Fee 2", Price: 700_000, Region: models.RegionDomesticOverseas, Unit: models.FeeUnitPerDay, PaxMin: 6, PaxMax: 10, IsRequired: true},
				{ID: 23, Category: "Snorkel Gear", Price: 50_000, Region: models.RegionDomesticOverseas, Unit: models.FeeUnitPerPax, PaxMin: 1, PaxMax: 10},
			},
		},
		{ID: 8, Name: "City Walk", Type: models.TripTypePrivate, Durations: []models.TripDuration{{ID: 200, Label: "1D", Days: 1}}},
	})
	cat.LoadBoats([]models.Boat{{
		ID:     1,
		Name:   "KLM Pinisi",
		Status: domain.StatusActive,
		Cabins: []models.Cabin{
			{ID: 11, Name: "Master", MinPax: 2, MaxPax: 4, BasePrice: 5_000_000, AdditionalPrice: 1_000_000, Status: domain.StatusActive},
			{ID: 12, Name: "Deck", MinPax: 2, MaxPax: 6, BasePrice: 6_000_000, AdditionalPrice: 500_000, Status: domain.StatusActive},
		},
	}})
	cat.LoadHotels([]models.Hotel{
		{ID: 41, Name: "Labuan Inn", Occupancy: models.OccupancyDouble, PricePerNight: 1_000_000, Status: domain.StatusActive},
		{ID: 42, Name: "Solo Stay", Occupancy: models.OccupancySingle, PricePerNight: 600_000, Status: domain.StatusActive},
	})
	return cat
}

type serviceFixture struct {
	svc     BookingService
	drafts  *repositories.MemoryDraftStore
	creator *fakeCreator
	ledger  *fakeLedger
}

func newServiceFixture() serviceFixture {
	drafts := repositories.NewMemoryDraftStore()
	creator := &fakeCreator{id: 901}
	ledger := &fakeLedger{enabled: true}
	now := time.Date(2026, 1, 20, 8, 0, 0, 0, time.UTC)
	return serviceFixture{
		svc: BookingService{
			Catalog:  fixtureCatalog(),
			Drafts:   drafts,
			Bookings: creator,
			Ledger:   ledger,
			Payments: PaymentTokens{Secret: []byte("test"), TTL: time.Hour, BaseURL: "https://trip.test/payment", Now: func() time.Time { return now }},
			Now:      func() time.Time { return now },
			NewID:    func() string { return "draft-1" },
		},
		drafts:  drafts,
		creator: creator,
		ledger:  ledger,
	}
}

func baseDraftInput() DraftInput {
	return DraftInput{
		TripID:     7,
		DurationID: 100,
		StartDate:  "2026-02-02",
		Pax:        2,
		Region:     "Domestic",
		Customer:   models.Customer{Name: "  Budi   Santoso ", Email: "budi@example.com", Country: "Indonesia", Phone: "0812"},
	}
}

// flakyCatalog fails the boat/hotel lists on demand and records cache invalidations.
type flakyCatalog struct {
	repositories.Catalog
	boatsErr    error
	hotelsErr   error
	invalidated []int64
}

func (c *flakyCatalog) ListBoats(ctx context.Context) ([]models.Boat, error) {
	if c.boatsErr != nil {
		return nil, c.boatsErr
	}
	return c.Catalog.ListBoats(ctx)
}

func (c *flakyCatalog) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	if c.hotelsErr != nil {
		return nil, c.hotelsErr
	}
	return c.Catalog.ListHotels(ctx)
}

func (c *flakyCatalog) Invalidate(_ context.Context, tripIDs ...int64) error {
	c.invalidated = append(c.invalidated, tripIDs...)
	return nil
}
