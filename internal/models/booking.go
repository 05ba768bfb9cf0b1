package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// AllBookingStatuses lists every status the lifecycle knows about. Analytics
// breakdowns are seeded from this list so absent statuses still show a zero.
var AllBookingStatuses = []BookingStatus{
	BookingPending,
	BookingConfirmed,
	BookingCancelled,
	BookingCompleted,
}

// Booking is the canonical reservation record. TotalAmount is computed by
// the backend at creation time and never recomputed, so historical pricing
// survives later package price changes.
type Booking struct {
	ID                string        `json:"id"`
	PackageID         string        `json:"package_id"`
	PackageName       string        `json:"package_name,omitempty"`
	TouristID         string        `json:"tourist_id,omitempty"`
	TravelDate        time.Time     `json:"travel_date"`
	ParticipantsCount int           `json:"participants_count"`
	TotalAmount       float64       `json:"total_amount"`
	ContactPhone      string        `json:"contact_phone,omitempty"`
	Status            BookingStatus `json:"status"`
	HasRated          bool          `json:"has_rated"`
	BookingReference  string        `json:"booking_reference,omitempty"`
	CreatedAt         time.Time     `json:"created_at,omitempty"`
}

// CanRate gates post-trip rating: the trip must have completed and the
// booking must not carry a rating yet. One rating per booking.
func (b *Booking) CanRate() bool {
	return b.Status == BookingCompleted && !b.HasRated
}

// CanCancel reports whether the booking is still cancellable.
func (b *Booking) CanCancel() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// IsTerminal reports whether the status admits no further transitions.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

// ValidTransition encodes the lifecycle the client tracks:
// pending -> confirmed | cancelled, confirmed -> completed | cancelled.
// Transitions are driven by the company/admin or by time passage on the
// backend; the client only reflects them.
func ValidTransition(from, to BookingStatus) bool {
	switch from {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCompleted || to == BookingCancelled
	default:
		return false
	}
}

// BookingForm is raw form state as collected by a UI screen. Numeric and
// date fields arrive as strings and are parsed at the validation boundary;
// nothing downstream ever sees an unparsed value.
type BookingForm struct {
	TravelDate             string `json:"travel_date"`
	Participants           string `json:"participants"`
	ContactPhone           string `json:"contact_phone"`
	EmergencyContactName   string `json:"emergency_contact_name,omitempty"`
	EmergencyContactNumber string `json:"emergency_contact_number,omitempty"`
	SpecialRequests        string `json:"special_requests,omitempty"`
}

// BookingRequest is a fully validated reservation request, ready to submit.
// Optional fields are nil rather than empty so the wire payload matches
// what the backend expects.
type BookingRequest struct {
	PackageID              string  `json:"package_id" validate:"required"`
	TravelDate             string  `json:"travel_date" validate:"required"`
	ParticipantsCount      int     `json:"participants_count" validate:"required,min=1"`
	ContactPhone           string  `json:"contact_phone" validate:"required"`
	EmergencyContactName   *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactNumber *string `json:"emergency_contact_number,omitempty"`
	SpecialRequests        *string `json:"special_requests,omitempty"`
}
