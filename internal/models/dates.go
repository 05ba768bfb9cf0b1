package models

import (
	"strings"
	"time"
)

// TravelDateLayout is the wire format for travel dates (ISO date, no time).
const TravelDateLayout = "2006-01-02"

// travelDateLayouts are the accepted input shapes, tried in order. Clients
// send either a bare date or a full timestamp; the time component is always
// discarded.
var travelDateLayouts = []string{
	TravelDateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// NormalizeDate truncates t to its day boundary in UTC so that two values
// denoting the same calendar day always compare equal, regardless of the
// time component or zone they arrived with.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseTravelDate parses a raw date string into a canonical day-truncated
// value. Unparseable input yields an invalid_date rejection.
func ParseTravelDate(raw string) (time.Time, *ValidationRejection) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, RejectDate("travel date is required")
	}
	for _, layout := range travelDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NormalizeDate(t), nil
		}
	}
	return time.Time{}, RejectDate("travel date is not a valid date: " + s)
}

// IsFutureDate reports whether date is today or later, compared at day
// granularity. Same-day travel is allowed (boundary inclusive).
func IsFutureDate(date, now time.Time) bool {
	return !NormalizeDate(date).Before(NormalizeDate(now))
}

// ValidateTravelDate checks a canonical date against "now" and, when the
// package fixes its departures, against the offered set. Packages without
// an available-dates list accept any future date (free-form entry).
func ValidateTravelDate(date, now time.Time, availableDates []time.Time) *ValidationRejection {
	if !IsFutureDate(date, now) {
		return RejectDate("travel date must be today or later")
	}
	if len(availableDates) == 0 {
		return nil
	}
	day := NormalizeDate(date)
	for _, offered := range availableDates {
		if NormalizeDate(offered).Equal(day) {
			return nil
		}
	}
	return RejectDateOffered("this package does not depart on " + day.Format(TravelDateLayout))
}
