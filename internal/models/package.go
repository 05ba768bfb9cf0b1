package models

import (
	"strconv"
	"strings"
	"time"
)

// TourPackage is the canonical package shape after boundary normalization.
// The backend owns the data; heterogeneous field naming (group_size vs
// max_participants, name vs title) is resolved in the adapter, never here.
type TourPackage struct {
	ID                  string      `json:"id"`
	CompanyID           string      `json:"company_id,omitempty"`
	Name                string      `json:"name"`
	Description         string      `json:"description,omitempty"`
	Category            string      `json:"category,omitempty"`
	Location            string      `json:"location,omitempty"`
	Images              []string    `json:"images,omitempty"`
	Price               float64     `json:"price"`
	GroupSize           int         `json:"group_size"`
	CurrentParticipants int         `json:"current_participants"`
	AvailableDates      []time.Time `json:"available_dates,omitempty"`
	IsActive            bool        `json:"is_active"`
	Rating              float64     `json:"rating"`
	TotalRatings        int         `json:"total_ratings"`
	CreatedAt           time.Time   `json:"created_at,omitempty"`
	UpdatedAt           time.Time   `json:"updated_at,omitempty"`
}

// Remaining returns the open capacity for the package. Upstream data can be
// momentarily inconsistent (currentParticipants > groupSize); the result is
// clamped so it never goes negative.
func (p *TourPackage) Remaining() int {
	remaining := p.GroupSize - p.CurrentParticipants
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsBookable reports whether the package accepts new reservations at all.
func (p *TourPackage) IsBookable() bool {
	return p.IsActive && p.Remaining() > 0
}

// ParsePartySize converts raw form input into a participant count.
// Non-numeric or non-positive input is rejected before any capacity check.
func ParsePartySize(raw string) (int, *ValidationRejection) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, RejectPartySize("number of participants is required")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, RejectPartySize("number of participants must be a whole number")
	}
	if n <= 0 {
		return 0, RejectPartySize("number of participants must be at least 1")
	}
	return n, nil
}

// ValidatePartySize checks a requested party size against the remaining
// capacity. The rejection carries the true remaining count.
func ValidatePartySize(remaining, requested int) *ValidationRejection {
	if requested <= 0 {
		return RejectPartySize("number of participants must be at least 1")
	}
	if requested > remaining {
		return RejectCapacity(remaining)
	}
	return nil
}
