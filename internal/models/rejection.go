package models

import "fmt"

// RejectionCode identifies a locally detected validation failure.
type RejectionCode string

const (
	RejectInvalidPartySize RejectionCode = "invalid_party_size"
	RejectCapacityExceeded RejectionCode = "capacity_exceeded"
	RejectInvalidDate      RejectionCode = "invalid_date"
	RejectDateNotOffered   RejectionCode = "date_not_offered"
	RejectMissingContact   RejectionCode = "missing_contact"
	RejectPackageInactive  RejectionCode = "package_inactive"
)

// ValidationRejection is raised before any network I/O happens. Handlers
// surface it synchronously as a 4xx; it must never be sent to the backend.
type ValidationRejection struct {
	Code    RejectionCode `json:"code"`
	Message string        `json:"message"`
	// Remaining carries the actual remaining capacity so the caller can
	// present it. Only set for capacity_exceeded.
	Remaining int `json:"remaining,omitempty"`
}

func (r *ValidationRejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Code, r.Message)
}

func RejectPartySize(message string) *ValidationRejection {
	return &ValidationRejection{Code: RejectInvalidPartySize, Message: message}
}

func RejectCapacity(remaining int) *ValidationRejection {
	return &ValidationRejection{
		Code:      RejectCapacityExceeded,
		Message:   fmt.Sprintf("only %d spot(s) remaining for this package", remaining),
		Remaining: remaining,
	}
}

func RejectDate(message string) *ValidationRejection {
	return &ValidationRejection{Code: RejectInvalidDate, Message: message}
}

func RejectDateOffered(message string) *ValidationRejection {
	return &ValidationRejection{Code: RejectDateNotOffered, Message: message}
}

func RejectContact(message string) *ValidationRejection {
	return &ValidationRejection{Code: RejectMissingContact, Message: message}
}

func RejectInactive(message string) *ValidationRejection {
	return &ValidationRejection{Code: RejectPackageInactive, Message: message}
}
