package utils

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	ShortDashDateLayout,
	ShortSlashDateLayout,
	"02-01-2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate accepts the date formats found in hand-edited holdings files.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// Midnight drops the clock part of t, keeping its calendar date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthsBetween counts calendar months from from to to, ignoring days.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// DaysBetween counts whole days between the calendar dates of from and to.
func DaysBetween(from, to time.Time) int {
	return int(Midnight(to).Sub(Midnight(from)).Hours() / 24)
}
