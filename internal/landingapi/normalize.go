package landingapi

import (
	"net/url"
	"strings"

	"tripbooking/internal/domain"
	"tripbooking/internal/domain/models"
	"tripbooking/internal/utils"
)

// AssetResolver turns stored asset paths into absolute URLs.
type AssetResolver struct {
	BaseURL     string
	Placeholder string
}

// Resolve returns the placeholder for blank or unparsable paths and leaves absolute URLs as is.
func (r AssetResolver) Resolve(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return r.Placeholder
	}
	ref, err := url.Parse(path)
	if err != nil {
		return r.Placeholder
	}
	if ref.IsAbs() {
		return ref.String()
	}
	base, err := url.Parse(strings.TrimSpace(r.BaseURL))
	if err != nil || !base.IsAbs() {
		return r.Placeholder
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(&url.URL{Path: strings.TrimPrefix(ref.Path, "/"), RawQuery: ref.RawQuery}).String()
}

// Normalizer converts raw landing-page payloads into pricing-ready models.
type Normalizer struct {
	Assets AssetResolver
}

func (n Normalizer) NormalizeTrip(raw RawTrip) models.Trip {
	// unknown types stay empty rather than borrowing another variant
	tripType, _ := models.ParseTripType(raw.Type.String())
	trip := models.Trip{
		ID:       raw.ID.ID(),
		Name:     utils.NormalizeSpace(raw.Name.String()),
		Type:     tripType,
		HasBoat:  raw.HasBoat.Bool(),
		HasHotel: raw.HasHotel.Bool(),
	}

	for _, a := range raw.Assets {
		trip.Assets = append(trip.Assets, n.Assets.Resolve(utils.FirstNonEmpty(a.URL.String(), a.FileURL.String(), a.FilePath.String())))
	}
	if len(trip.Assets) > 0 {
		trip.CoverImage = trip.Assets[0]
	} else {
		trip.CoverImage = n.Assets.Resolve("")
	}

	for _, d := range raw.Durations {
		trip.Durations = append(trip.Durations, normalizeDuration(d))
	}
	for _, f := range raw.AdditionalFees {
		trip.AdditionalFees = append(trip.AdditionalFees, models.AdditionalFee{
			ID:         f.ID.ID(),
			Category:   models.NormalizeFeeCategory(f.FeeCategory.String()),
			Price:      f.Price.Amount(),
			Region:     models.ParseRegion(f.Region.String()),
			Unit:       models.ParseFeeUnit(f.Unit.String()),
			PaxMin:     f.PaxMin.Int(),
			PaxMax:     f.PaxMax.Int(),
			DayType:    models.ParseDayType(f.DayType.String()),
			IsRequired: f.IsRequired.Bool(),
		})
	}
	for _, s := range raw.Surcharges {
		start, errStart := utils.ParseDate(s.StartDate.String())
		end, errEnd := utils.ParseDate(s.EndDate.String())
		if errStart != nil || errEnd != nil {
			// a period without valid bounds can never overlap
			continue
		}
		trip.Surcharges = append(trip.Surcharges, models.Surcharge{
			ID:        s.ID.ID(),
			Season:    s.Season.String(),
			StartDate: start,
			EndDate:   end,
			Price:     s.SurchargePrice.Amount(),
		})
	}
	return trip
}

func normalizeDuration(d RawTripDuration) models.TripDuration {
	out := models.TripDuration{
		ID:    d.ID.ID(),
		Label: d.DurationLabel.String(),
		Days:  d.DurationValue.Int(),
	}
	for i, it := range d.Itineraries {
		dayNumber := it.DayNumber.Int()
		if dayNumber == 0 {
			dayNumber = i + 1
		}
		out.Itineraries = append(out.Itineraries, models.Itinerary{
			Day:         dayNumber,
			Title:       it.Title.String(),
			Description: it.Activities.String(),
		})
	}
	for _, p := range d.Prices {
		out.Prices = append(out.Prices, models.TripPrice{
			ID:          p.ID.ID(),
			PaxMin:      p.PaxMin.Int(),
			PaxMax:      p.PaxMax.Int(),
			PricePerPax: p.PricePerPax.Amount(),
			Region:      models.ParseRegion(p.Region.String()),
		})
	}
	return out
}

func (n Normalizer) NormalizeBoats(raw []RawBoat) []models.Boat {
	out := make([]models.Boat, 0, len(raw))
	for _, b := range raw {
		boat := models.Boat{
			ID:     b.ID.ID(),
			Name:   utils.NormalizeSpace(b.BoatName.String()),
			Status: domain.Status(b.Status.String()),
		}
		for _, c := range b.Cabins {
			boat.Cabins = append(boat.Cabins, models.Cabin{
				ID:              c.ID.ID(),
				Name:            c.CabinName.String(),
				BedType:         c.BedType.String(),
				MinPax:          c.MinPax.Int(),
				MaxPax:          c.MaxPax.Int(),
				BasePrice:       c.BasePrice.Amount(),
				AdditionalPrice: c.AdditionalPrice.Amount(),
				Status:          domain.Status(c.Status.String()),
			})
		}
		out = append(out, boat)
	}
	return out
}

// NormalizeHotels drops offers whose occupancy is not a known room type.
func (n Normalizer) NormalizeHotels(raw []RawHotel) []models.Hotel {
	out := make([]models.Hotel, 0, len(raw))
	for _, h := range raw {
		occ, ok := models.ParseOccupancy(h.Occupancy.String())
		if !ok {
			continue
		}
		out = append(out, models.Hotel{
			ID:            h.ID.ID(),
			Name:          utils.NormalizeSpace(h.HotelName.String()),
			Type:          h.HotelType.String(),
			Occupancy:     occ,
			PricePerNight: h.Price.Amount(),
			Status:        domain.Status(h.Status.String()),
		})
	}
	return out
}
