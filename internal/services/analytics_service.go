package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joshua-takyi/tourbay/internal/helpers"
	"github.com/joshua-takyi/tourbay/internal/models"
)

type AnalyticsService struct {
	repo   models.TourismRepo
	views  models.SpotViewsRepo
	logger *slog.Logger
}

func NewAnalyticsService(repo models.TourismRepo, views models.SpotViewsRepo, logger *slog.Logger) *AnalyticsService {
	return &AnalyticsService{
		repo:   repo,
		views:  views,
		logger: logger,
	}
}

// CompanyAnalytics fetches the authoritative aggregate metrics. If that
// endpoint fails, the dashboard is kept populated by reconstructing an
// approximation from the raw booking list. The reconstruction lacks the
// server's date-range precision and is marked as such; it is never
// preferred over a working endpoint.
func (as *AnalyticsService) CompanyAnalytics(ctx context.Context, session *helpers.Session, days int) (*models.CompanyAnalytics, error) {
	if session == nil || session.Token == "" {
		return nil, fmt.Errorf("an authenticated session is required")
	}
	if days <= 0 {
		days = 30
	}

	analytics, err := as.repo.CompanyAnalytics(ctx, session.Token, days)
	if err == nil {
		return analytics, nil
	}
	as.logger.Warn("analytics endpoint failed, reconstructing from bookings", "error", err)

	bookings, listErr := as.repo.ListCompanyBookings(ctx, session.Token)
	if listErr != nil {
		// Both sources down; surface the original failure.
		return nil, err
	}

	reconstructed := models.ReconcileAnalytics(bookings)
	reconstructed.PeriodDays = days
	return reconstructed, nil
}

// TrackSpotView records a browsing session's view of a spot. Failures are
// non-fatal to the caller's flow; the handler logs and returns success so a
// metrics hiccup never breaks browsing.
func (as *AnalyticsService) TrackSpotView(ctx context.Context, view *models.SpotView) error {
	if as.views == nil {
		return fmt.Errorf("view tracking is not available")
	}
	if err := models.Validate.Struct(view); err != nil {
		return fmt.Errorf("invalid view data: %v", err)
	}
	return as.views.TrackSpotView(ctx, view)
}

// CompanyViewStats exposes the locally tracked spot view aggregates.
func (as *AnalyticsService) CompanyViewStats(ctx context.Context, companyID string, days int) (*models.CompanyViewStats, error) {
	if companyID == "" {
		return nil, fmt.Errorf("company ID is required")
	}
	if as.views == nil {
		return nil, fmt.Errorf("view tracking is not available")
	}
	return as.views.CompanyViewStats(ctx, companyID, days)
}
