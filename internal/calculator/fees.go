package calculator

import (
	"time"

	"tripbooking/internal/domain/models"
)

// dayTypeSatisfied reports whether at least one trip date matches the fee's day restriction.
func dayTypeSatisfied(dt models.DayType, dates []time.Time) bool {
	switch dt {
	case models.DayTypeAny:
		return true
	case models.DayTypeWeekend:
		for _, d := range dates {
			if isWeekend(d) {
				return true
			}
		}
		return false
	case models.DayTypeWeekday:
		for _, d := range dates {
			if !isWeekend(d) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ResolveFees returns the applicable tier of every fee category for the trip dates, party
// size and traveler region. Categories keep the order of their first tier in fees.
//
// With a party of zero the first eligible tier of each category is returned so the fee list
// can be displayed before pax are chosen.
func ResolveFees(fees []models.AdditionalFee, start time.Time, days, partyPax int, region models.Region) []models.AdditionalFee {
	dates := TripDates(start, days)

	var order []string
	groups := map[string][]models.AdditionalFee{}
	for _, f := range fees {
		if !f.Region.Covers(region) || !dayTypeSatisfied(f.DayType, dates) {
			continue
		}
		key := models.NormalizeFeeCategory(f.Category)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], f)
	}

	out := make([]models.AdditionalFee, 0, len(order))
	for _, key := range order {
		tiers := groups[key]
		if partyPax == 0 {
			out = append(out, tiers[0])
			continue
		}
		for _, f := range tiers {
			if f.InRange(partyPax) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// SelectFees returns the applicable fees that are charged: every required fee plus the
// optional fees in chosen.
func SelectFees(applicable []models.AdditionalFee, chosen []int64) []models.AdditionalFee {
	want := idSet(chosen)
	out := make([]models.AdditionalFee, 0, len(applicable))
	for _, f := range applicable {
		if f.IsRequired || want[f.ID] {
			out = append(out, f)
		}
	}
	return out
}

// ReconcileChosenFees drops chosen optional fees that are no longer applicable. Required
// fees are implied and never kept in the chosen list.
func ReconcileChosenFees(applicable []models.AdditionalFee, chosen []int64) []int64 {
	optional := map[int64]bool{}
	for _, f := range applicable {
		if !f.IsRequired {
			optional[f.ID] = true
		}
	}
	out := make([]int64, 0, len(chosen))
	seen := map[int64]bool{}
	for _, id := range chosen {
		if optional[id] && !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	return out
}

// ToggleFee flips an optional applicable fee in chosen. Required or inapplicable fees are
// left alone and reported with ok=false.
func ToggleFee(applicable []models.AdditionalFee, chosen []int64, feeID int64) (next []int64, ok bool) {
	for _, f := range applicable {
		if f.ID != feeID {
			continue
		}
		if f.IsRequired {
			return chosen, false
		}
		out := make([]int64, 0, len(chosen)+1)
		removed := false
		for _, id := range chosen {
			if id == feeID {
				removed = true
				continue
			}
			out = append(out, id)
		}
		if !removed {
			out = append(out, feeID)
		}
		return out, true
	}
	return chosen, false
}

// FeeAmount scales a fee by its unit.
func FeeAmount(fee models.AdditionalFee, partyPax, days int) int64 {
	switch fee.Unit {
	case models.FeeUnitPerPax:
		return fee.Price * int64(partyPax)
	case models.FeeUnitPer5Pax:
		return fee.Price * int64(ceilDiv(partyPax, 5))
	case models.FeeUnitPerDay, models.FeeUnitPerDayGuide:
		return fee.Price * int64(days)
	case models.FeeUnitFlat:
		return fee.Price
	default:
		return fee.Price
	}
}

// FeeLine is a charged fee with its computed amount.
type FeeLine struct {
	Fee    models.AdditionalFee `json:"fee"`
	Amount int64                `json:"amount"`
}

// FeeLines computes the amount of each selected fee.
func FeeLines(selected []models.AdditionalFee, partyPax, days int) []FeeLine {
	out := make([]FeeLine, 0, len(selected))
	for _, f := range selected {
		out = append(out, FeeLine{Fee: f, Amount: FeeAmount(f, partyPax, days)})
	}
	return out
}

func idSet(ids []int64) map[int64]bool {
	m := make(map[int64]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}
