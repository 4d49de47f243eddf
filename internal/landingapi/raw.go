package landingapi

import "encoding/json"

// envelope is the {"data": ...} wrapper every landing-page endpoint replies with.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type RawAsset struct {
	URL      Stringish `json:"url"`
	FileURL  Stringish `json:"file_url"`
	FilePath Stringish `json:"file_path"`
}

type RawItinerary struct {
	DayNumber  Stringish `json:"day_number"`
	Title      Stringish `json:"title"`
	Activities Stringish `json:"activities"`
}

type RawTripPrice struct {
	ID          Stringish `json:"id"`
	PaxMin      Stringish `json:"pax_min"`
	PaxMax      Stringish `json:"pax_max"`
	PricePerPax Stringish `json:"price_per_pax"`
	Region      Stringish `json:"region"`
}

type RawTripDuration struct {
	ID            Stringish      `json:"id"`
	DurationLabel Stringish      `json:"duration_label"`
	DurationValue Stringish      `json:"duration_value"`
	Itineraries   []RawItinerary `json:"itineraries"`
	Prices        []RawTripPrice `json:"trip_prices"`
}

type RawAdditionalFee struct {
	ID          Stringish `json:"id"`
	FeeCategory Stringish `json:"fee_category"`
	Price       Stringish `json:"price"`
	Region      Stringish `json:"region"`
	Unit        Stringish `json:"unit"`
	PaxMin      Stringish `json:"pax_min"`
	PaxMax      Stringish `json:"pax_max"`
	DayType     Stringish `json:"day_type"`
	IsRequired  Stringish `json:"is_required"`
}

type RawSurcharge struct {
	ID             Stringish `json:"id"`
	Season         Stringish `json:"season"`
	StartDate      Stringish `json:"start_date"`
	EndDate        Stringish `json:"end_date"`
	SurchargePrice Stringish `json:"surcharge_price"`
}

// RawTrip is GET /api/landing-page/trips/{id}.data before normalization.
type RawTrip struct {
	ID             Stringish          `json:"id"`
	Name           Stringish          `json:"name"`
	Type           Stringish          `json:"type"`
	HasBoat        Stringish          `json:"has_boat"`
	HasHotel       Stringish          `json:"has_hotel"`
	Assets         []RawAsset         `json:"assets"`
	Durations      []RawTripDuration  `json:"trip_durations"`
	AdditionalFees []RawAdditionalFee `json:"additional_fees"`
	Surcharges     []RawSurcharge     `json:"surcharges"`
}

type RawCabin struct {
	ID              Stringish `json:"id"`
	CabinName       Stringish `json:"cabin_name"`
	BedType         Stringish `json:"bed_type"`
	MinPax          Stringish `json:"min_pax"`
	MaxPax          Stringish `json:"max_pax"`
	BasePrice       Stringish `json:"base_price"`
	AdditionalPrice Stringish `json:"additional_price"`
	Status          Stringish `json:"status"`
}

type RawBoat struct {
	ID       Stringish  `json:"id"`
	BoatName Stringish  `json:"boat_name"`
	Status   Stringish  `json:"status"`
	Cabins   []RawCabin `json:"cabin"`
}

type RawHotel struct {
	ID        Stringish `json:"id"`
	HotelName Stringish `json:"hotel_name"`
	HotelType Stringish `json:"hotel_type"`
	Occupancy Stringish `json:"occupancy"`
	Price     Stringish `json:"price"`
	Status    Stringish `json:"status"`
}
