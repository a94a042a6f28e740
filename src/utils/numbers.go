package utils

import (
	"math"
	"strconv"
	"strings"
)

// RoundFloat rounds to 2 decimal places.
func RoundFloat(value float64) float64 {
	return math.Round(value*100) / 100
}

// Percent returns part/total*100 rounded to 2 decimals, or 0 when total is 0.
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return RoundFloat(part / total * 100)
}

// ParseNumber parses a numeric cell. Blank, non-numeric, NaN and infinite
// values report ok=false.
func ParseNumber(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FormatNumber renders a float the way CSV cells store it.
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
