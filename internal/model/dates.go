package model

import (
	"fmt"
	"strings"
	"time"
)

var monthYearLayouts = []string{
	"January 2006",
	"Jan 2006",
	"2006-01",
	"01/2006",
	"2006",
}

// ParseMonthYear parses CV dates such as "January 2020" into the first day of
// that month (UTC).
func ParseMonthYear(s string) (time.Time, error) {
	v := strings.Join(strings.Fields(s), " ")
	for _, layout := range monthYearLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised month/year date %q", s)
}

// MonthsBetween counts whole calendar months from start to end, ignoring the
// day of month.
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}
