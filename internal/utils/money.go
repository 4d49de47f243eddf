package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatRupiah renders integer amount with thousand separators.
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sRp%s", sign, formatThousand(amount))
}

// ParseAmount coerces an upstream numeric string ("1500000", "1500000.00", "") into whole
// Rupiah. Anything that is not a plain number becomes 0.
func ParseAmount(s string) int64 {
	f := ParseNumber(s)
	return int64(math.Round(f))
}

// ParseNumber is a lenient float parse: blank, malformed, NaN or infinite input yields 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
