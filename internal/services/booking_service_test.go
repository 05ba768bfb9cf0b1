package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joshua-takyi/tourbay/internal/helpers"
	"github.com/joshua-takyi/tourbay/internal/models"
)

func testPackage() *models.TourPackage {
	return &models.TourPackage{
		ID:                  "pkg-1",
		Name:                "Mole Safari Weekend",
		Price:               100,
		GroupSize:           10,
		CurrentParticipants: 8,
		IsActive:            true,
	}
}

func testSession() *helpers.Session {
	return &helpers.Session{
		UserID: "user-1",
		Role:   "tourist",
		Token:  "token-abc",
	}
}

func TestBuildHappyPath(t *testing.T) {
	bs := NewBookingService(&stubRepo{})
	now := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)
	pkg := testPackage()

	form := &models.BookingForm{
		TravelDate:   "2026-09-13", // tomorrow
		Participants: "2",
		ContactPhone: "+233201234567",
	}

	req, rej := bs.Build(form, pkg, now)
	if rej != nil {
		t.Fatalf("expected success, got rejection %v", rej)
	}
	if req.PackageID != "pkg-1" {
		t.Errorf("PackageID = %s", req.PackageID)
	}
	if req.ParticipantsCount != 2 {
		t.Errorf("ParticipantsCount = %d, want 2", req.ParticipantsCount)
	}
	if req.TravelDate != "2026-09-13" {
		t.Errorf("TravelDate = %s, want 2026-09-13", req.TravelDate)
	}
	if req.EmergencyContactName != nil || req.SpecialRequests != nil {
		t.Error("empty optional fields should stay nil")
	}
	if total := DisplayTotal(pkg, req.ParticipantsCount); total != 200 {
		t.Errorf("DisplayTotal = %v, want 200", total)
	}
}

func TestBuildOverbooking(t *testing.T) {
	bs := NewBookingService(&stubRepo{})
	now := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)

	form := &models.BookingForm{
		TravelDate:   "2026-09-13",
		Participants: "3", // only 2 remaining
		ContactPhone: "+233201234567",
	}

	_, rej := bs.Build(form, testPackage(), now)
	if rej == nil {
		t.Fatal("expected capacity rejection")
	}
	if rej.Code != models.RejectCapacityExceeded {
		t.Errorf("code = %s, want %s", rej.Code, models.RejectCapacityExceeded)
	}
	if rej.Remaining != 2 {
		t.Errorf("rejection remaining = %d, want 2", rej.Remaining)
	}
}

func TestBuildStaleDate(t *testing.T) {
	bs := NewBookingService(&stubRepo{})
	now := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)

	form := &models.BookingForm{
		TravelDate:   "2026-09-11", // yesterday
		Participants: "2",          // capacity is fine
		ContactPhone: "+233201234567",
	}

	_, rej := bs.Build(form, testPackage(), now)
	if rej == nil {
		t.Fatal("expected date rejection")
	}
	if rej.Code != models.RejectInvalidDate {
		t.Errorf("code = %s, want %s", rej.Code, models.RejectInvalidDate)
	}
}

func TestBuildMissingContact(t *testing.T) {
	bs := NewBookingService(&stubRepo{})
	now := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)

	form := &models.BookingForm{
		TravelDate:   "2026-09-13",
		Participants: "2",
		ContactPhone: "   ",
	}

	_, rej := bs.Build(form, testPackage(), now)
	if rej == nil || rej.Code != models.RejectMissingContact {
		t.Errorf("expected missing_contact, got %v", rej)
	}
}

func TestBuildDateNotOffered(t *testing.T) {
	bs := NewBookingService(&stubRepo{})
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	pkg := testPackage()
	pkg.AvailableDates = []time.Time{
		time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	}

	form := &models.BookingForm{
		TravelDate:   "2026-09-13",
		Participants: "2",
		ContactPhone: "+233201234567",
	}

	_, rej := bs.Build(form, pkg, now)
	if rej == nil || rej.Code != models.RejectDateNotOffered {
		t.Errorf("expected date_not_offered, got %v", rej)
	}
}

func TestBuildChecksPartySizeFirst(t *testing.T) {
	// Both the party size and the date are bad; the party size rejection
	// wins because checks short-circuit in order.
	bs := NewBookingService(&stubRepo{})
	now := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	form := &models.BookingForm{
		TravelDate:   "not-a-date",
		Participants: "zero",
		ContactPhone: "",
	}

	_, rej := bs.Build(form, testPackage(), now)
	if rej == nil || rej.Code != models.RejectInvalidPartySize {
		t.Errorf("expected invalid_party_size first, got %v", rej)
	}
}

func TestCreateBookingRejectsBeforeNetwork(t *testing.T) {
	submitted := false
	repo := &stubRepo{
		getPackage: func(ctx context.Context, id string) (*models.TourPackage, error) {
			return testPackage(), nil
		},
		createBooking: func(ctx context.Context, token string, req *models.BookingRequest) (*models.Booking, error) {
			submitted = true
			return &models.Booking{ID: "bk-1", Status: models.BookingPending}, nil
		},
	}
	bs := NewBookingService(repo)

	form := &models.BookingForm{
		TravelDate:   "2020-01-01", // long past
		Participants: "2",
		ContactPhone: "+233201234567",
	}

	_, err := bs.CreateBooking(context.Background(), testSession(), "pkg-1", form)
	var rej *models.ValidationRejection
	if !errors.As(err, &rej) {
		t.Fatalf("expected a validation rejection, got %v", err)
	}
	if submitted {
		t.Error("a rejected booking must never reach the backend")
	}
}

func TestCreateBookingInactivePackage(t *testing.T) {
	repo := &stubRepo{
		getPackage: func(ctx context.Context, id string) (*models.TourPackage, error) {
			pkg := testPackage()
			pkg.IsActive = false
			return pkg, nil
		},
	}
	bs := NewBookingService(repo)

	form := &models.BookingForm{
		TravelDate:   "2199-01-01",
		Participants: "1",
		ContactPhone: "+233201234567",
	}

	_, err := bs.CreateBooking(context.Background(), testSession(), "pkg-1", form)
	var rej *models.ValidationRejection
	if !errors.As(err, &rej) || rej.Code != models.RejectPackageInactive {
		t.Errorf("expected package_inactive rejection, got %v", err)
	}
}

func TestCancelBookingEligibility(t *testing.T) {
	cancelled := ""
	repo := &stubRepo{
		listUserBookings: func(ctx context.Context, token string) ([]*models.Booking, error) {
			return []*models.Booking{
				{ID: "bk-pending", Status: models.BookingPending},
				{ID: "bk-done", Status: models.BookingCompleted},
			}, nil
		},
		cancelBooking: func(ctx context.Context, token, bookingID string) error {
			cancelled = bookingID
			return nil
		},
	}
	bs := NewBookingService(repo)
	session := testSession()

	if err := bs.CancelBooking(context.Background(), session, "bk-pending"); err != nil {
		t.Fatalf("pending booking should cancel: %v", err)
	}
	if cancelled != "bk-pending" {
		t.Errorf("cancel forwarded for %q", cancelled)
	}

	if err := bs.CancelBooking(context.Background(), session, "bk-done"); err == nil {
		t.Error("completed booking must not be cancellable")
	}
}

func TestSubmitRatingGating(t *testing.T) {
	var submitted *models.RatingRequest
	repo := &stubRepo{
		listUserBookings: func(ctx context.Context, token string) ([]*models.Booking, error) {
			return []*models.Booking{
				{ID: "bk-1", PackageID: "pkg-1", Status: models.BookingCompleted, HasRated: false},
				{ID: "bk-2", PackageID: "pkg-1", Status: models.BookingCompleted, HasRated: true},
				{ID: "bk-3", PackageID: "pkg-1", Status: models.BookingConfirmed, HasRated: false},
			}, nil
		},
		submitRating: func(ctx context.Context, token string, req *models.RatingRequest) (*models.Rating, error) {
			submitted = req
			return &models.Rating{ID: "rt-1", Value: req.Rating}, nil
		},
	}
	bs := NewBookingService(repo)
	session := testSession()

	if _, err := bs.SubmitRating(context.Background(), session, "bk-1", 5, "great trip"); err != nil {
		t.Fatalf("eligible booking should rate: %v", err)
	}
	if submitted == nil || submitted.BookingID != "bk-1" || submitted.TouristID != "user-1" {
		t.Errorf("unexpected rating request: %+v", submitted)
	}

	if _, err := bs.SubmitRating(context.Background(), session, "bk-2", 4, ""); err == nil {
		t.Error("already-rated booking must be rejected")
	}
	if _, err := bs.SubmitRating(context.Background(), session, "bk-3", 4, ""); err == nil {
		t.Error("uncompleted booking must be rejected")
	}
	if _, err := bs.SubmitRating(context.Background(), session, "bk-1", 9, ""); err == nil {
		t.Error("out-of-range rating value must be rejected")
	}
}

func TestQuote(t *testing.T) {
	repo := &stubRepo{
		getPackage: func(ctx context.Context, id string) (*models.TourPackage, error) {
			return testPackage(), nil
		},
	}
	bs := NewBookingService(repo)

	quote, err := bs.Quote(context.Background(), "pkg-1", "2")
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if quote.Remaining != 2 || quote.DisplayTotal != 200 {
		t.Errorf("quote = %+v", quote)
	}

	if _, err := bs.Quote(context.Background(), "pkg-1", "5"); err == nil {
		t.Error("quote above remaining capacity should be rejected")
	}
}
