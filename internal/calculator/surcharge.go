package calculator

import (
	"time"

	"tripbooking/internal/domain/models"
)

// ResolveSurcharge returns the season surcharge overlapping any trip day. When several
// periods overlap, the last one in slice order is applied; amounts never stack.
func ResolveSurcharge(surcharges []models.Surcharge, start time.Time, days int) *models.Surcharge {
	dates := TripDates(start, days)
	var match *models.Surcharge
	for i := range surcharges {
		s := surcharges[i]
		from, to := dayKey(s.StartDate), dayKey(s.EndDate)
		for _, d := range dates {
			if k := dayKey(d); from <= k && k <= to {
				match = &surcharges[i]
				break
			}
		}
	}
	return match
}

// SurchargePerPax is the matched surcharge price, or 0.
func SurchargePerPax(s *models.Surcharge) int64 {
	if s == nil {
		return 0
	}
	return s.Price
}
