package models

import (
	"testing"
	"time"
)

func TestNormalizeDateTruncatesToDay(t *testing.T) {
	morning := time.Date(2026, 9, 12, 8, 15, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 12, 23, 59, 59, 0, time.UTC)

	if !NormalizeDate(morning).Equal(NormalizeDate(evening)) {
		t.Error("two times on the same calendar day should normalize identically")
	}

	normalized := NormalizeDate(morning)
	if normalized.Hour() != 0 || normalized.Minute() != 0 || normalized.Second() != 0 {
		t.Errorf("expected zeroed time-of-day, got %v", normalized)
	}
}

func TestNormalizeDateIdempotent(t *testing.T) {
	input := time.Date(2026, 3, 1, 17, 30, 0, 0, time.FixedZone("JST", 9*3600))
	once := NormalizeDate(input)
	twice := NormalizeDate(once)

	if !once.Equal(twice) {
		t.Errorf("normalize should be idempotent: %v != %v", once, twice)
	}
}

func TestParseTravelDateFormats(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2026-09-12", "2026-09-12"},
		{"2026-09-12T14:00:00Z", "2026-09-12"},
		{"2026-09-12T14:00:00", "2026-09-12"},
		{"  2026-09-12  ", "2026-09-12"},
	}

	for _, tc := range cases {
		got, rej := ParseTravelDate(tc.input)
		if rej != nil {
			t.Errorf("ParseTravelDate(%q) rejected: %v", tc.input, rej)
			continue
		}
		if got.Format(TravelDateLayout) != tc.want {
			t.Errorf("ParseTravelDate(%q) = %v, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParseTravelDateRejects(t *testing.T) {
	for _, input := range []string{"", "   ", "not-a-date", "2026-13-45"} {
		_, rej := ParseTravelDate(input)
		if rej == nil {
			t.Errorf("ParseTravelDate(%q) should be rejected", input)
			continue
		}
		if rej.Code != RejectInvalidDate {
			t.Errorf("ParseTravelDate(%q) code = %s, want %s", input, rej.Code, RejectInvalidDate)
		}
	}
}

func TestValidateTravelDateBoundary(t *testing.T) {
	now := time.Date(2026, 9, 12, 15, 30, 0, 0, time.UTC)

	yesterday := now.AddDate(0, 0, -1)
	if rej := ValidateTravelDate(yesterday, now, nil); rej == nil {
		t.Error("yesterday should be rejected")
	} else if rej.Code != RejectInvalidDate {
		t.Errorf("yesterday code = %s, want %s", rej.Code, RejectInvalidDate)
	}

	// Same-day travel is allowed even when "now" is late in the day.
	today := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	if rej := ValidateTravelDate(today, now, nil); rej != nil {
		t.Errorf("today should be accepted, got %v", rej)
	}

	tomorrow := now.AddDate(0, 0, 1)
	if rej := ValidateTravelDate(tomorrow, now, nil); rej != nil {
		t.Errorf("tomorrow should be accepted, got %v", rej)
	}
}

func TestValidateTravelDateOfferedSet(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	offered := []time.Time{
		time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC), // time component ignored
		time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
	}

	match := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	if rej := ValidateTravelDate(match, now, offered); rej != nil {
		t.Errorf("offered date should be accepted, got %v", rej)
	}

	offDay := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)
	rej := ValidateTravelDate(offDay, now, offered)
	if rej == nil {
		t.Fatal("a future date outside the offered set should be rejected")
	}
	if rej.Code != RejectDateNotOffered {
		t.Errorf("code = %s, want %s", rej.Code, RejectDateNotOffered)
	}

	// Past dates fail the future check before membership is considered.
	pastOffered := []time.Time{now.AddDate(0, 0, -5)}
	if rej := ValidateTravelDate(now.AddDate(0, 0, -5), now, pastOffered); rej == nil || rej.Code != RejectInvalidDate {
		t.Errorf("past offered date should fail as invalid_date, got %v", rej)
	}
}
