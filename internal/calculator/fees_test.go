package calculator

import (
	"testing"

	"tripbooking/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feeIDs(fees []models.AdditionalFee) []int64 {
	out := make([]int64, 0, len(fees))
	for _, f := range fees {
		out = append(out, f.ID)
	}
	return out
}

func TestTripDates(t *testing.T) {
	dates := TripDates(day(2026, 1, 30), 3)
	require.Len(t, dates, 3)
	assert.Equal(t, day(2026, 2, 1), dates[2])
	assert.Nil(t, TripDates(day(2026, 1, 30), 0))
	assert.Equal(t, day(2026, 2, 1), EndDate(day(2026, 1, 30), 3))
}

func TestResolveFees_TierPerCategory(t *testing.T) {
	fees := sampleTrip().AdditionalFees

	cases := []struct {
		name   string
		pax    int
		region models.Region
		start  int
		days   int
		want   []int64
	}{
		{name: "weekday small party", pax: 2, region: models.RegionDomestic, start: 5, days: 3, want: []int64{21, 23}},
		{name: "weekend adds ranger", pax: 2, region: models.RegionDomestic, start: 8, days: 3, want: []int64{21, 23, 24}},
		{name: "large party picks second guide tier", pax: 7, region: models.RegionDomestic, start: 5, days: 3, want: []int64{22, 23}},
		{name: "overseas skips domestic-only fee", pax: 2, region: models.RegionOverseas, start: 8, days: 3, want: []int64{21, 23}},
		{name: "zero pax shows first tier", pax: 0, region: models.RegionDomestic, start: 5, days: 3, want: []int64{21, 23}},
		{name: "no tier for party size", pax: 11, region: models.RegionDomestic, start: 5, days: 3, want: []int64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveFees(fees, day(2026, 1, tc.start), tc.days, tc.pax, tc.region)
			assert.Equal(t, tc.want, feeIDs(got))
		})
	}
}

func TestResolveFees_DayTypeNeedsMatchingDate(t *testing.T) {
	fees := []models.AdditionalFee{
		{ID: 1, Category: "Weekday Pass", Region: models.RegionDomesticOverseas, PaxMin: 1, PaxMax: 9, DayType: models.DayTypeWeekday},
		{ID: 2, Category: "Weekend Pass", Region: models.RegionDomesticOverseas, PaxMin: 1, PaxMax: 9, DayType: models.DayTypeWeekend},
	}

	assert.Equal(t, []int64{2}, feeIDs(ResolveFees(fees, day(2026, 1, 10), 2, 1, models.RegionDomestic)))
	assert.Equal(t, []int64{1}, feeIDs(ResolveFees(fees, day(2026, 1, 5), 3, 1, models.RegionDomestic)))
	assert.Equal(t, []int64{1, 2}, feeIDs(ResolveFees(fees, day(2026, 1, 9), 2, 1, models.RegionDomestic)))
	assert.Empty(t, ResolveFees(fees, day(2026, 1, 9), 0, 1, models.RegionDomestic), "no dates, no day-typed fees")
}

func TestResolveFees_AtMostOneTierPerCategory(t *testing.T) {
	fees := sampleTrip().AdditionalFees
	for pax := 0; pax <= 12; pax++ {
		for _, region := range []models.Region{models.RegionDomestic, models.RegionOverseas} {
			seen := map[string]bool{}
			for _, f := range ResolveFees(fees, day(2026, 1, 8), 3, pax, region) {
				cat := models.NormalizeFeeCategory(f.Category)
				require.False(t, seen[cat], "category %q returned twice for pax=%d", cat, pax)
				seen[cat] = true
			}
		}
	}
}

func TestSelectFees_RequiredAlwaysSelected(t *testing.T) {
	applicable := ResolveFees(sampleTrip().AdditionalFees, day(2026, 1, 8), 3, 2, models.RegionDomestic)

	assert.Equal(t, []int64{21}, feeIDs(SelectFees(applicable, nil)))
	assert.Equal(t, []int64{21, 23}, feeIDs(SelectFees(applicable, []int64{23})))

	chosen, ok := ToggleFee(applicable, []int64{23}, 21)
	assert.False(t, ok, "required fee cannot be toggled off")
	assert.Contains(t, feeIDs(SelectFees(applicable, chosen)), int64(21))

	chosen, ok = ToggleFee(applicable, []int64{23}, 23)
	assert.True(t, ok)
	assert.Empty(t, chosen)

	chosen, ok = ToggleFee(applicable, nil, 24)
	assert.True(t, ok)
	assert.Equal(t, []int64{24}, chosen)

	_, ok = ToggleFee(applicable, nil, 999)
	assert.False(t, ok)
}

func TestReconcileChosenFees(t *testing.T) {
	weekend := ResolveFees(sampleTrip().AdditionalFees, day(2026, 1, 8), 3, 2, models.RegionDomestic)
	weekday := ResolveFees(sampleTrip().AdditionalFees, day(2026, 1, 5), 3, 2, models.RegionDomestic)

	chosen := []int64{23, 24, 21, 23}
	assert.Equal(t, []int64{23, 24}, ReconcileChosenFees(weekend, chosen))
	assert.Equal(t, []int64{23}, ReconcileChosenFees(weekday, chosen), "weekend fee dropped after date change")
}

func TestFeeAmount(t *testing.T) {
	cases := []struct {
		unit models.FeeUnit
		pax  int
		want int64
	}{
		{models.FeeUnitPerPax, 3, 1_500_000},
		{models.FeeUnitPer5Pax, 6, 1_000_000},
		{models.FeeUnitPer5Pax, 5, 500_000},
		{models.FeeUnitPerDay, 2, 1_500_000},
		{models.FeeUnitPerDayGuide, 9, 1_500_000},
		{models.FeeUnitFlat, 9, 500_000},
	}
	for _, tc := range cases {
		fee := models.AdditionalFee{Category: "Guide Fee", Unit: tc.unit, Price: 500_000}
		assert.Equal(t, tc.want, FeeAmount(fee, tc.pax, 3), string(tc.unit))
	}
}
