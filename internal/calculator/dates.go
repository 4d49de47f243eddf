// Package calculator holds the booking price and allocation rules. Everything here is a pure
// function of its inputs so the derived booking view can be recomputed on every change.
package calculator

import "time"

// TripDates returns the calendar dates start .. start+days-1. A zero start or non-positive
// days yields no dates.
func TripDates(start time.Time, days int) []time.Time {
	if start.IsZero() || days <= 0 {
		return nil
	}
	out := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}

// EndDate is the last day of a trip starting at start.
func EndDate(start time.Time, days int) time.Time {
	if days <= 1 {
		return start
	}
	return start.AddDate(0, 0, days-1)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// dayKey compares calendar days without time-of-day or zone effects.
func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
