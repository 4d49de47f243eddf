package calculator

import "tripbooking/internal/domain/models"

// BasePriceTier finds the price tier of duration for partyPax and the traveler region.
// No match is a valid no-quote state.
func BasePriceTier(duration models.TripDuration, partyPax int, region models.Region) (models.TripPrice, bool) {
	for _, p := range duration.Prices {
		if p.InRange(partyPax) && p.Region.Covers(region) {
			return p, true
		}
	}
	return models.TripPrice{}, false
}

// Breakdown itemizes a quote. Total is the sum of the *Total fields.
type Breakdown struct {
	BasePricePerPax int64 `json:"base_price_per_pax"`
	BaseTotal       int64 `json:"base_total"`
	FeesTotal       int64 `json:"fees_total"`
	SurchargePerPax int64 `json:"surcharge_per_pax"`
	SurchargeTotal  int64 `json:"surcharge_total"`
	CabinsTotal     int64 `json:"cabins_total"`
	HotelsTotal     int64 `json:"hotels_total"`
	Total           int64 `json:"total"`
}

// PriceInputs are the already-resolved selections a total is built from.
type PriceInputs struct {
	PartyPax        int
	BasePricePerPax int64
	Fees            []FeeLine
	SurchargePerPax int64
	CabinsTotal     int64
	HotelsTotal     int64
}

// Aggregate computes
// base*pax + sum(fees) + surcharge*pax + cabins + hotels.
func Aggregate(in PriceInputs) Breakdown {
	pax := int64(in.PartyPax)
	b := Breakdown{
		BasePricePerPax: in.BasePricePerPax,
		BaseTotal:       in.BasePricePerPax * pax,
		SurchargePerPax: in.SurchargePerPax,
		SurchargeTotal:  in.SurchargePerPax * pax,
		CabinsTotal:     in.CabinsTotal,
		HotelsTotal:     in.HotelsTotal,
	}
	for _, f := range in.Fees {
		b.FeesTotal += f.Amount
	}
	b.Total = b.BaseTotal + b.FeesTotal + b.SurchargeTotal + b.CabinsTotal + b.HotelsTotal
	return b
}
