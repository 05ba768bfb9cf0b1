package services

import (
	"context"
	"fmt"

	"github.com/joshua-takyi/tourbay/internal/models"
)

// stubRepo fakes the tourism backend. Unset hooks fail loudly so a test
// only exercises the calls it expects.
type stubRepo struct {
	getPackage           func(ctx context.Context, id string) (*models.TourPackage, error)
	listPackages         func(ctx context.Context, limit int) ([]*models.TourPackage, error)
	getSpot              func(ctx context.Context, id string) (*models.TouristSpot, error)
	listSpots            func(ctx context.Context, category string, limit int) ([]*models.TouristSpot, error)
	createBooking        func(ctx context.Context, token string, req *models.BookingRequest) (*models.Booking, error)
	listUserBookings     func(ctx context.Context, token string) ([]*models.Booking, error)
	cancelBooking        func(ctx context.Context, token, bookingID string) error
	submitRating         func(ctx context.Context, token string, req *models.RatingRequest) (*models.Rating, error)
	personalizedSpots    func(ctx context.Context, token string, limit int) ([]*models.TouristSpot, error)
	personalizedPackages func(ctx context.Context, token string, limit int) ([]*models.TourPackage, error)
	trendingSpots        func(ctx context.Context, limit int) ([]*models.TouristSpot, error)
	similarSpots         func(ctx context.Context, spotID string, limit int) ([]*models.TouristSpot, error)
	companyAnalytics     func(ctx context.Context, token string, days int) (*models.CompanyAnalytics, error)
	listCompanyBookings  func(ctx context.Context, token string) ([]*models.Booking, error)
}

var errStubUnset = fmt.Errorf("stub method not configured")

func (s *stubRepo) GetPackage(ctx context.Context, id string) (*models.TourPackage, error) {
	if s.getPackage == nil {
		return nil, errStubUnset
	}
	return s.getPackage(ctx, id)
}

func (s *stubRepo) ListPackages(ctx context.Context, limit int) ([]*models.TourPackage, error) {
	if s.listPackages == nil {
		return nil, errStubUnset
	}
	return s.listPackages(ctx, limit)
}

func (s *stubRepo) GetSpot(ctx context.Context, id string) (*models.TouristSpot, error) {
	if s.getSpot == nil {
		return nil, errStubUnset
	}
	return s.getSpot(ctx, id)
}

func (s *stubRepo) ListSpots(ctx context.Context, category string, limit int) ([]*models.TouristSpot, error) {
	if s.listSpots == nil {
		return nil, errStubUnset
	}
	return s.listSpots(ctx, category, limit)
}

func (s *stubRepo) CreateBooking(ctx context.Context, token string, req *models.BookingRequest) (*models.Booking, error) {
	if s.createBooking == nil {
		return nil, errStubUnset
	}
	return s.createBooking(ctx, token, req)
}

func (s *stubRepo) ListUserBookings(ctx context.Context, token string) ([]*models.Booking, error) {
	if s.listUserBookings == nil {
		return nil, errStubUnset
	}
	return s.listUserBookings(ctx, token)
}

func (s *stubRepo) CancelBooking(ctx context.Context, token, bookingID string) error {
	if s.cancelBooking == nil {
		return errStubUnset
	}
	return s.cancelBooking(ctx, token, bookingID)
}

func (s *stubRepo) SubmitRating(ctx context.Context, token string, req *models.RatingRequest) (*models.Rating, error) {
	if s.submitRating == nil {
		return nil, errStubUnset
	}
	return s.submitRating(ctx, token, req)
}

func (s *stubRepo) PersonalizedSpots(ctx context.Context, token string, limit int) ([]*models.TouristSpot, error) {
	if s.personalizedSpots == nil {
		return nil, errStubUnset
	}
	return s.personalizedSpots(ctx, token, limit)
}

func (s *stubRepo) PersonalizedPackages(ctx context.Context, token string, limit int) ([]*models.TourPackage, error) {
	if s.personalizedPackages == nil {
		return nil, errStubUnset
	}
	return s.personalizedPackages(ctx, token, limit)
}

func (s *stubRepo) TrendingSpots(ctx context.Context, limit int) ([]*models.TouristSpot, error) {
	if s.trendingSpots == nil {
		return nil, errStubUnset
	}
	return s.trendingSpots(ctx, limit)
}

func (s *stubRepo) SimilarSpots(ctx context.Context, spotID string, limit int) ([]*models.TouristSpot, error) {
	if s.similarSpots == nil {
		return nil, errStubUnset
	}
	return s.similarSpots(ctx, spotID, limit)
}

func (s *stubRepo) CompanyAnalytics(ctx context.Context, token string, days int) (*models.CompanyAnalytics, error) {
	if s.companyAnalytics == nil {
		return nil, errStubUnset
	}
	return s.companyAnalytics(ctx, token, days)
}

func (s *stubRepo) ListCompanyBookings(ctx context.Context, token string) ([]*models.Booking, error) {
	if s.listCompanyBookings == nil {
		return nil, errStubUnset
	}
	return s.listCompanyBookings(ctx, token)
}

// stubViews fakes the local view store.
type stubViews struct {
	counts   map[string]int64
	countErr error
	tracked  []*models.SpotView
	stats    *models.CompanyViewStats
}

func (s *stubViews) TrackSpotView(ctx context.Context, view *models.SpotView) error {
	s.tracked = append(s.tracked, view)
	return nil
}

func (s *stubViews) RecentViewCounts(ctx context.Context, spotIDs []string, days int) (map[string]int64, error) {
	if s.countErr != nil {
		return nil, s.countErr
	}
	return s.counts, nil
}

func (s *stubViews) CompanyViewStats(ctx context.Context, companyID string, days int) (*models.CompanyViewStats, error) {
	if s.stats == nil {
		return nil, fmt.Errorf("no stats configured")
	}
	return s.stats, nil
}

func (s *stubViews) EnsureViewIndexes(ctx context.Context) error { return nil }
