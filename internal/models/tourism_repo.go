package models

import "context"

// TourismRepo is the remote tourism backend the gateway fronts. It owns the
// catalog, bookings and ratings; every mutation here is authoritative
// server-side and the gateway's own checks are early rejection only.
type TourismRepo interface {
	// Catalog
	GetPackage(ctx context.Context, id string) (*TourPackage, error)
	ListPackages(ctx context.Context, limit int) ([]*TourPackage, error)
	GetSpot(ctx context.Context, id string) (*TouristSpot, error)
	ListSpots(ctx context.Context, category string, limit int) ([]*TouristSpot, error)

	// Bookings and ratings
	CreateBooking(ctx context.Context, token string, req *BookingRequest) (*Booking, error)
	ListUserBookings(ctx context.Context, token string) ([]*Booking, error)
	CancelBooking(ctx context.Context, token, bookingID string) error
	SubmitRating(ctx context.Context, token string, req *RatingRequest) (*Rating, error)

	// Recommendation sources
	PersonalizedSpots(ctx context.Context, token string, limit int) ([]*TouristSpot, error)
	PersonalizedPackages(ctx context.Context, token string, limit int) ([]*TourPackage, error)
	TrendingSpots(ctx context.Context, limit int) ([]*TouristSpot, error)
	SimilarSpots(ctx context.Context, spotID string, limit int) ([]*TouristSpot, error)

	// Company dashboards
	CompanyAnalytics(ctx context.Context, token string, days int) (*CompanyAnalytics, error)
	ListCompanyBookings(ctx context.Context, token string) ([]*Booking, error)
}
