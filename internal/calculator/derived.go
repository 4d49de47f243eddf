package calculator

import (
	"time"

	"tripbooking/internal/domain/models"
	"tripbooking/internal/utils"
)

// Input is a committed draft snapshot plus the catalog it refers to.
type Input struct {
	Trip   models.Trip
	Boats  []models.Boat
	Hotels []models.Hotel
	Draft  models.BookingDraft
}

// DerivedView is everything the booking page shows for a draft.
type DerivedView struct {
	Draft          models.BookingDraft    `json:"draft"`
	Duration       *models.TripDuration   `json:"duration"`
	StartDate      string                 `json:"start_date,omitempty"`
	EndDate        string                 `json:"end_date,omitempty"`
	BasePrice      *models.TripPrice      `json:"base_price"`
	AvailableBoats []models.Boat          `json:"available_boats"`
	SelectedBoat   *models.Boat           `json:"selected_boat"`
	Requirements   *BoatRequirements      `json:"requirements"`
	Cabins         []CabinLine            `json:"cabins"`
	Hotels         []HotelLine            `json:"hotels"`
	ApplicableFees []models.AdditionalFee `json:"applicable_fees"`
	SelectedFees   []FeeLine              `json:"selected_fees"`
	Surcharge      *models.Surcharge      `json:"surcharge"`
	Breakdown      Breakdown              `json:"breakdown"`
	Total          int64                  `json:"total"`
}

// SelectedDuration resolves the draft's duration, defaulting to the trip's first one.
func SelectedDuration(trip models.Trip, durationID int64) (models.TripDuration, bool) {
	if durationID == 0 {
		if len(trip.Durations) == 0 {
			return models.TripDuration{}, false
		}
		return trip.Durations[0], true
	}
	return trip.Duration(durationID)
}

// StartOf parses the draft start date; an empty or malformed date is the zero time.
func StartOf(d models.BookingDraft) time.Time {
	if d.StartDate == "" {
		return time.Time{}
	}
	t, err := utils.ParseDate(d.StartDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// NormalizeDraft applies the selection integrity rules to d: a boat that no longer holds
// the party is unselected, allocations are replayed against the capacity rules and chosen
// optional fees that became inapplicable are dropped.
func NormalizeDraft(in Input) models.BookingDraft {
	d := in.Draft
	if d.Pax < 0 {
		d.Pax = 0
	}

	// An unknown id stays as is so the draft keeps reporting no duration.
	duration, hasDuration := SelectedDuration(in.Trip, d.DurationID)
	if hasDuration {
		d.DurationID = duration.ID
	}

	if !in.Trip.HasBoat || (d.BoatID != 0 && !BoatQualifies(in.Boats, d.BoatID, d.Pax)) {
		d.BoatID = 0
	}
	if boat, ok := findBoat(in.Boats, d.BoatID); ok {
		d.Cabins = NewCabinAllocator(boat, d.Pax, d.Cabins).Allocations()
	} else {
		d.Cabins = nil
	}

	if in.Trip.HasHotel {
		d.Hotels = NewHotelAllocator(in.Hotels, d.Pax, d.Hotels).Allocations()
	} else {
		d.Hotels = nil
	}

	applicable := ResolveFees(in.Trip.AdditionalFees, StartOf(d), duration.Days, d.Pax, d.Region)
	d.ChosenFeeIDs = ReconcileChosenFees(applicable, d.ChosenFeeIDs)
	return d
}

// ComputeDerivedState recomputes the whole booking view from the latest draft snapshot.
func ComputeDerivedState(in Input) DerivedView {
	d := NormalizeDraft(in)
	view := DerivedView{Draft: d}

	duration, hasDuration := SelectedDuration(in.Trip, d.DurationID)
	if hasDuration {
		view.Duration = &duration
	}
	start := StartOf(d)
	if !start.IsZero() {
		view.StartDate = utils.FormatDate(start)
		if hasDuration {
			view.EndDate = utils.FormatDate(EndDate(start, duration.Days))
		}
	}

	var basePerPax int64
	if hasDuration {
		if tier, ok := BasePriceTier(duration, d.Pax, d.Region); ok {
			view.BasePrice = &tier
			basePerPax = tier.PricePerPax
		}
	}

	if in.Trip.HasBoat {
		view.AvailableBoats = FilterBoatsByCapacity(in.Boats, d.Pax)
	}
	var cabinsTotal int64
	if boat, ok := findBoat(in.Boats, d.BoatID); ok {
		view.SelectedBoat = &boat
		req := EstimateBoatRequirements(boat, d.Pax)
		view.Requirements = &req
		alloc := NewCabinAllocator(boat, d.Pax, d.Cabins)
		view.Cabins = alloc.Lines()
		cabinsTotal = alloc.Price()
	}

	var hotelsTotal int64
	if in.Trip.HasHotel {
		alloc := NewHotelAllocator(in.Hotels, d.Pax, d.Hotels)
		view.Hotels = alloc.Lines(duration.Nights())
		hotelsTotal = alloc.Price(duration.Nights())
	}

	view.ApplicableFees = ResolveFees(in.Trip.AdditionalFees, start, duration.Days, d.Pax, d.Region)
	view.SelectedFees = FeeLines(SelectFees(view.ApplicableFees, d.ChosenFeeIDs), d.Pax, duration.Days)

	view.Surcharge = ResolveSurcharge(in.Trip.Surcharges, start, duration.Days)

	view.Breakdown = Aggregate(PriceInputs{
		PartyPax:        d.Pax,
		BasePricePerPax: basePerPax,
		Fees:            view.SelectedFees,
		SurchargePerPax: SurchargePerPax(view.Surcharge),
		CabinsTotal:     cabinsTotal,
		HotelsTotal:     hotelsTotal,
	})
	view.Total = view.Breakdown.Total
	return view
}

func findBoat(boats []models.Boat, id int64) (models.Boat, bool) {
	if id == 0 {
		return models.Boat{}, false
	}
	for _, b := range boats {
		if b.ID == id {
			return b, true
		}
	}
	return models.Boat{}, false
}
