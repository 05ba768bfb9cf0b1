package services

import (
	"context"
	"fmt"
	"time"

	"github.com/joshua-takyi/tourbay/internal/helpers"
	"github.com/joshua-takyi/tourbay/internal/models"
)

type BookingService struct {
	repo models.TourismRepo
}

func NewBookingService(repo models.TourismRepo) *BookingService {
	return &BookingService{
		repo: repo,
	}
}

// Build assembles a validated reservation request from raw form state. It
// is pure: no I/O, no clock reads (now is injected). Checks run in order
// and short-circuit on the first failure — party size, travel date, then
// contact phone. The rejection never reaches the network.
func (bs *BookingService) Build(form *models.BookingForm, pkg *models.TourPackage, now time.Time) (*models.BookingRequest, *models.ValidationRejection) {
	participants, rej := models.ParsePartySize(form.Participants)
	if rej != nil {
		return nil, rej
	}
	if rej := models.ValidatePartySize(pkg.Remaining(), participants); rej != nil {
		return nil, rej
	}

	travelDate, rej := models.ParseTravelDate(form.TravelDate)
	if rej != nil {
		return nil, rej
	}
	if rej := models.ValidateTravelDate(travelDate, now, pkg.AvailableDates); rej != nil {
		return nil, rej
	}

	phone := helpers.StringTrim(form.ContactPhone)
	if phone == "" {
		return nil, models.RejectContact("contact phone is required")
	}

	return &models.BookingRequest{
		PackageID:              pkg.ID,
		TravelDate:             travelDate.Format(models.TravelDateLayout),
		ParticipantsCount:      participants,
		ContactPhone:           phone,
		EmergencyContactName:   helpers.OptionalString(form.EmergencyContactName),
		EmergencyContactNumber: helpers.OptionalString(form.EmergencyContactNumber),
		SpecialRequests:        helpers.OptionalString(form.SpecialRequests),
	}, nil
}

// DisplayTotal is the presentation echo of the booking price. The backend
// computes the authoritative totalAmount on creation; this value is only
// shown to the user before submission.
func DisplayTotal(pkg *models.TourPackage, participants int) float64 {
	return float64(participants) * pkg.Price
}

// BookingQuote is the pre-submission price echo shown on the booking
// screen. DisplayTotal is not what gets persisted; the backend computes the
// authoritative amount when the booking is created.
type BookingQuote struct {
	PackageID         string  `json:"package_id"`
	Remaining         int     `json:"remaining"`
	ParticipantsCount int     `json:"participants_count"`
	DisplayTotal      float64 `json:"display_total"`
}

// Quote validates a requested party size against live capacity and returns
// the display total, without creating anything.
func (bs *BookingService) Quote(ctx context.Context, packageID, participantsRaw string) (*BookingQuote, error) {
	pkg, err := bs.repo.GetPackage(ctx, packageID)
	if err != nil {
		return nil, err
	}

	participants, rej := models.ParsePartySize(participantsRaw)
	if rej != nil {
		return nil, rej
	}
	if rej := models.ValidatePartySize(pkg.Remaining(), participants); rej != nil {
		return nil, rej
	}

	return &BookingQuote{
		PackageID:         pkg.ID,
		Remaining:         pkg.Remaining(),
		ParticipantsCount: participants,
		DisplayTotal:      DisplayTotal(pkg, participants),
	}, nil
}

// CreateBooking validates the form against the package and, only if every
// local check passes, submits the reservation. The backend re-validates
// capacity atomically: two tourists can both pass the local check against
// the same last slot, and the server decides the race.
func (bs *BookingService) CreateBooking(ctx context.Context, session *helpers.Session, packageID string, form *models.BookingForm) (*models.Booking, error) {
	if session == nil || session.Token == "" {
		return nil, fmt.Errorf("an authenticated session is required to book")
	}

	pkg, err := bs.repo.GetPackage(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if !pkg.IsActive {
		return nil, models.RejectInactive("this package is no longer accepting bookings")
	}

	req, rej := bs.Build(form, pkg, time.Now())
	if rej != nil {
		return nil, rej
	}

	return bs.repo.CreateBooking(ctx, session.Token, req)
}

// ListUserBookings fetches the tourist's bookings. Records without an id
// were already dropped at the boundary; nothing here can drive an action
// on a record it cannot reference.
func (bs *BookingService) ListUserBookings(ctx context.Context, session *helpers.Session) ([]*models.Booking, error) {
	if session == nil || session.Token == "" {
		return nil, fmt.Errorf("an authenticated session is required")
	}
	return bs.repo.ListUserBookings(ctx, session.Token)
}

// CancelBooking checks cancel eligibility locally before forwarding.
func (bs *BookingService) CancelBooking(ctx context.Context, session *helpers.Session, bookingID string) error {
	if session == nil || session.Token == "" {
		return fmt.Errorf("an authenticated session is required")
	}
	if bookingID == "" {
		return fmt.Errorf("booking ID is required")
	}

	booking, err := bs.findBooking(ctx, session, bookingID)
	if err != nil {
		return err
	}
	if !booking.CanCancel() {
		return fmt.Errorf("a %s booking cannot be cancelled", booking.Status)
	}

	return bs.repo.CancelBooking(ctx, session.Token, bookingID)
}

// SubmitRating gates the rating on the booking lifecycle: completed and not
// yet rated. The backend enforces the same rule authoritatively.
func (bs *BookingService) SubmitRating(ctx context.Context, session *helpers.Session, bookingID string, value int, review string) (*models.Rating, error) {
	if session == nil || session.Token == "" {
		return nil, fmt.Errorf("an authenticated session is required")
	}

	booking, err := bs.findBooking(ctx, session, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.CanRate() {
		if booking.HasRated {
			return nil, fmt.Errorf("this booking has already been rated")
		}
		return nil, fmt.Errorf("only completed trips can be rated")
	}

	req := &models.RatingRequest{
		TourPackageID: booking.PackageID,
		TouristID:     session.UserID,
		Rating:        value,
		Review:        helpers.OptionalString(review),
		BookingID:     booking.ID,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return bs.repo.SubmitRating(ctx, session.Token, req)
}

func (bs *BookingService) findBooking(ctx context.Context, session *helpers.Session, bookingID string) (*models.Booking, error) {
	bookings, err := bs.repo.ListUserBookings(ctx, session.Token)
	if err != nil {
		return nil, err
	}
	for _, booking := range bookings {
		if booking.ID == bookingID {
			return booking, nil
		}
	}
	return nil, fmt.Errorf("booking %s not found", bookingID)
}
