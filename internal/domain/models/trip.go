package models

import (
	"strings"
	"time"
)

// Trip is a sellable itinerary, immutable for the lifetime of a booking session.
type Trip struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Type           TripType        `json:"type"`
	HasBoat        bool            `json:"has_boat"`
	HasHotel       bool            `json:"has_hotel"`
	CoverImage     string          `json:"cover_image"`
	Assets         []string        `json:"assets"`
	Durations      []TripDuration  `json:"durations"`
	AdditionalFees []AdditionalFee `json:"additional_fees"`
	Surcharges     []Surcharge     `json:"surcharges"`
}

// Duration returns the duration with the given id.
func (t Trip) Duration(id int64) (TripDuration, bool) {
	for _, d := range t.Durations {
		if d.ID == id {
			return d, true
		}
	}
	return TripDuration{}, false
}

// TripDuration is one selectable length-of-stay option.
type TripDuration struct {
	ID          int64       `json:"id"`
	Label       string      `json:"label"`
	Days        int         `json:"days"`
	Itineraries []Itinerary `json:"itineraries"`
	Prices      []TripPrice `json:"prices"`
}

// Nights is the number of hotel nights for the duration.
func (d TripDuration) Nights() int {
	if d.Days <= 1 {
		return 0
	}
	return d.Days - 1
}

type Itinerary struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TripPrice is a per-pax price tier for a pax range and region.
type TripPrice struct {
	ID          int64  `json:"id"`
	PaxMin      int    `json:"pax_min"`
	PaxMax      int    `json:"pax_max"`
	PricePerPax int64  `json:"price_per_pax"`
	Region      Region `json:"region"`
}

// InRange reports whether pax falls inside [PaxMin, PaxMax].
func (p TripPrice) InRange(pax int) bool {
	return p.PaxMin <= pax && pax <= p.PaxMax
}

// AdditionalFee is one pax-range tier of a fee category.
type AdditionalFee struct {
	ID         int64   `json:"id"`
	Category   string  `json:"category"`
	Price      int64   `json:"price"`
	Region     Region  `json:"region"`
	Unit       FeeUnit `json:"unit"`
	PaxMin     int     `json:"pax_min"`
	PaxMax     int     `json:"pax_max"`
	DayType    DayType `json:"day_type"`
	IsRequired bool    `json:"is_required"`
}

func (f AdditionalFee) InRange(pax int) bool {
	return f.PaxMin <= pax && pax <= f.PaxMax
}

// Surcharge is a flat per-pax season surcharge over [StartDate, EndDate].
type Surcharge struct {
	ID        int64     `json:"id"`
	Season    string    `json:"season"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Price     int64     `json:"price"`
}

// NormalizeFeeCategory strips trailing tier digits so "Guide Fee 2" groups with "Guide Fee 1".
func NormalizeFeeCategory(category string) string {
	return strings.TrimSpace(strings.TrimRightFunc(strings.TrimSpace(category), func(r rune) bool {
		return r >= '0' && r <= '9'
	}))
}
