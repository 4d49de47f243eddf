package calculator

import (
	"time"

	"tripbooking/internal/domain"
	"tripbooking/internal/domain/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func activeCabin(id int64, minPax, maxPax int, base, extra int64) models.Cabin {
	return models.Cabin{
		ID:              id,
		Name:            "Cabin",
		MinPax:          minPax,
		MaxPax:          maxPax,
		BasePrice:       base,
		AdditionalPrice: extra,
		Status:          domain.StatusActive,
	}
}

func sampleBoat() models.Boat {
	return models.Boat{
		ID:     1,
		Name:   "KLM Pinisi",
		Status: domain.StatusActive,
		Cabins: []models.Cabin{
			activeCabin(11, 2, 4, 5_000_000, 1_000_000),
			activeCabin(12, 2, 6, 6_000_000, 500_000),
		},
	}
}

func sampleTrip() models.Trip {
	return models.Trip{
		ID:       7,
		Name:     "Komodo Sailing",
		Type:     models.TripTypeOpen,
		HasBoat:  true,
		HasHotel: true,
		Durations: []models.TripDuration{
			{
				ID:    100,
				Label: "3D2N",
				Days:  3,
				Prices: []models.TripPrice{
					{ID: 1, PaxMin: 1, PaxMax: 4, PricePerPax: 1_000_000, Region: models.RegionDomestic},
					{ID: 2, PaxMin: 5, PaxMax: 10, PricePerPax: 900_000, Region: models.RegionDomestic},
					{ID: 3, PaxMin: 1, PaxMax: 10, PricePerPax: 1_500_000, Region: models.RegionOverseas},
				},
			},
			{ID: 101, Label: "4D3N", Days: 4},
		},
		AdditionalFees: []models.AdditionalFee{
			{ID: 21, Category: "Guide Fee 1", Price: 500_000, Region: models.RegionDomesticOverseas, Unit: models.FeeUnitPerDay, PaxMin: 1, PaxMax: 5, IsRequired: true},
			{ID: 22, Category: "Guide Fee 2", Price: 700_000, Region: models.RegionDomesticOverseas, Unit: models.FeeUnitPerDay, PaxMin: 6, PaxMax: 10, IsRequired: true},
			{ID: 23, Category: "Snorkel Gear", Price: 50_000, Region: models.RegionDomesticOverseas, Unit: models.FeeUnitPerPax, PaxMin: 1, PaxMax: 10},
			{ID: 24, Category: "Ranger Weekend", Price: 100_000, Region: models.RegionDomestic, Unit: models.FeeUnitPer5Pax, PaxMin: 1, PaxMax: 10, DayType: models.DayTypeWeekend},
		},
		Surcharges: []models.Surcharge{
			{ID: 31, Season: "Lebaran", StartDate: day(2026, 1, 1), EndDate: day(2026, 1, 10), Price: 100},
			{ID: 32, Season: "Liburan", StartDate: day(2026, 1, 5), EndDate: day(2026, 1, 15), Price: 200},
		},
	}
}

func sampleHotels() []models.Hotel {
	return []models.Hotel{
		{ID: 41, Name: "Labuan Inn", Occupancy: models.OccupancyDouble, PricePerNight: 1_000_000, Status: domain.StatusActive},
		{ID: 42, Name: "Solo Stay", Occupancy: models.OccupancySingle, PricePerNight: 600_000, Status: domain.StatusActive},
		{ID: 43, Name: "Closed", Occupancy: models.OccupancyDouble, PricePerNight: 1, Status: "Nonaktif"},
	}
}
