package models

import (
	"fmt"
	"time"
)

// Rating is a post-trip review tied to exactly one booking.
type Rating struct {
	ID            string    `json:"id"`
	TourPackageID string    `json:"tour_package_id"`
	BookingID     string    `json:"booking_id"`
	TouristID     string    `json:"tourist_id"`
	Value         int       `json:"rating" validate:"required,min=1,max=5"`
	Review        string    `json:"review,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// RatingRequest is the submission payload for the backend.
type RatingRequest struct {
	TourPackageID string  `json:"tour_package_id" validate:"required"`
	TouristID     string  `json:"tourist_id" validate:"required"`
	Rating        int     `json:"rating" validate:"required,min=1,max=5"`
	Review        *string `json:"review,omitempty"`
	BookingID     string  `json:"booking_id" validate:"required"`
}

func (r *RatingRequest) Validate() error {
	if err := Validate.Struct(r); err != nil {
		return fmt.Errorf("invalid rating data: %v", err)
	}
	return nil
}
