package models

import "strings"

// TripType is the sale mode of a trip.
type TripType string

const (
	TripTypeOpen    TripType = "OpenTrip"
	TripTypePrivate TripType = "PrivateTrip"
)

// ParseTripType accepts "Open Trip", "open_trip", "OpenTrip" and the private equivalents.
func ParseTripType(s string) (TripType, bool) {
	switch compactLabel(s) {
	case "opentrip":
		return TripTypeOpen, true
	case "privatetrip":
		return TripTypePrivate, true
	default:
		return "", false
	}
}

// Label returns the display label used by the landing page.
func (t TripType) Label() string {
	switch t {
	case TripTypeOpen:
		return "Open Trip"
	case TripTypePrivate:
		return "Private Trip"
	default:
		return ""
	}
}

// Region is the traveler origin a price or fee applies to.
type Region string

const (
	RegionUnknown          Region = ""
	RegionDomestic         Region = "Domestic"
	RegionOverseas         Region = "Overseas"
	RegionDomesticOverseas Region = "Domestic & Overseas"
)

// ParseRegion maps upstream labels to a Region. Unrecognized labels yield RegionUnknown.
func ParseRegion(s string) Region {
	switch compactLabel(s) {
	case "domestic", "domestik":
		return RegionDomestic
	case "overseas", "mancanegara":
		return RegionOverseas
	case "domestic&overseas", "domesticoverseas", "domesticandoverseas", "all":
		return RegionDomesticOverseas
	default:
		return RegionUnknown
	}
}

// IsTravelerRegion reports whether r can describe a traveler (only Domestic or Overseas).
func (r Region) IsTravelerRegion() bool {
	switch r {
	case RegionDomestic, RegionOverseas:
		return true
	case RegionDomesticOverseas, RegionUnknown:
		return false
	default:
		return false
	}
}

// Covers reports whether a price/fee tagged with r applies to a traveler from traveler.
func (r Region) Covers(traveler Region) bool {
	switch r {
	case RegionDomesticOverseas:
		return traveler.IsTravelerRegion()
	case RegionDomestic, RegionOverseas:
		return r == traveler
	case RegionUnknown:
		return false
	default:
		return false
	}
}

// FeeUnit controls how an additional fee scales with pax and duration.
type FeeUnit string

const (
	FeeUnitFlat        FeeUnit = "flat"
	FeeUnitPerPax      FeeUnit = "per_pax"
	FeeUnitPer5Pax     FeeUnit = "per_5pax"
	FeeUnitPerDay      FeeUnit = "per_day"
	FeeUnitPerDayGuide FeeUnit = "per_day_guide"
)

// ParseFeeUnit maps upstream unit codes; anything unrecognized is a flat fee.
func ParseFeeUnit(s string) FeeUnit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "per_pax":
		return FeeUnitPerPax
	case "per_5pax":
		return FeeUnitPer5Pax
	case "per_day":
		return FeeUnitPerDay
	case "per_day_guide":
		return FeeUnitPerDayGuide
	default:
		return FeeUnitFlat
	}
}

// DayType restricts a fee to weekdays or weekends. DayTypeAny has no restriction.
type DayType string

const (
	DayTypeAny     DayType = ""
	DayTypeWeekday DayType = "Weekday"
	DayTypeWeekend DayType = "Weekend"
)

func ParseDayType(s string) DayType {
	switch compactLabel(s) {
	case "weekday":
		return DayTypeWeekday
	case "weekend":
		return DayTypeWeekend
	default:
		return DayTypeAny
	}
}

// Occupancy is the room type of a hotel offer.
type Occupancy string

const (
	OccupancySingle Occupancy = "SingleOccupancy"
	OccupancyDouble Occupancy = "DoubleOccupancy"
)

func ParseOccupancy(s string) (Occupancy, bool) {
	switch compactLabel(s) {
	case "singleoccupancy", "single":
		return OccupancySingle, true
	case "doubleoccupancy", "double":
		return OccupancyDouble, true
	default:
		return "", false
	}
}

// Capacity is the number of pax one room holds.
func (o Occupancy) Capacity() int {
	switch o {
	case OccupancySingle:
		return 1
	case OccupancyDouble:
		return 2
	default:
		return 0
	}
}

func compactLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}
