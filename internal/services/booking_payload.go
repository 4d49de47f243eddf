package services

import (
	"tripbooking/internal/calculator"
	"tripbooking/internal/landingapi"
)

// BuildBookingPayload turns a computed view into the landing API booking body. Lists are
// always non-nil so they encode as [] rather than null.
func BuildBookingPayload(view calculator.DerivedView) landingapi.BookingPayload {
	d := view.Draft
	p := landingapi.BookingPayload{
		TripID:           d.TripID,
		TripDurationID:   d.DurationID,
		CustomerName:     d.Customer.Name,
		CustomerEmail:    d.Customer.Email,
		CustomerAddress:  d.Customer.Address,
		CustomerCountry:  d.Customer.Country,
		CustomerPhone:    d.Customer.Phone,
		TotalPax:         d.Pax,
		Status:           landingapi.BookingStatusPending,
		StartDate:        view.StartDate,
		EndDate:          view.EndDate,
		TotalPrice:       view.Total,
		Cabins:           make([]landingapi.CabinPayload, 0, len(view.Cabins)),
		BoatIDs:          []int64{},
		AdditionalFeeIDs: make([]landingapi.AdditionalFeePayload, 0, len(view.SelectedFees)),
	}
	if view.Duration != nil {
		p.TripDurationID = view.Duration.ID
	}

	for _, line := range view.Cabins {
		p.Cabins = append(p.Cabins, landingapi.CabinPayload{
			CabinID:    line.Cabin.ID,
			TotalPax:   line.Pax,
			TotalPrice: line.Price,
		})
	}
	if view.SelectedBoat != nil {
		p.BoatIDs = append(p.BoatIDs, view.SelectedBoat.ID)
	}
	for _, line := range view.SelectedFees {
		p.AdditionalFeeIDs = append(p.AdditionalFeeIDs, landingapi.AdditionalFeePayload{
			AdditionalFeeID: line.Fee.ID,
			TotalPrice:      line.Amount,
		})
	}

	// the booking API takes a single hotel offer; the first allocated one is sent
	if len(view.Hotels) > 0 {
		id := view.Hotels[0].Hotel.ID
		p.HotelOccupancyID = &id
		p.IsHotelRequested = true
	}
	return p
}
