package backend

import (
	"testing"

	"github.com/joshua-takyi/tourbay/internal/models"
)

func TestNormalizeBookingAliases(t *testing.T) {
	// The same booking record as two different endpoints serialize it.
	variantA := map[string]interface{}{
		"id":                 "bk-1",
		"package_id":         "pkg-1",
		"participants_count": float64(2),
		"total_amount":       float64(200),
		"status":             "Confirmed",
		"has_rated":          false,
	}
	variantB := map[string]interface{}{
		"_id":              "bk-1",
		"tour_package_id":  "pkg-1",
		"number_of_people": "2",
		"total_price":      "200",
		"status":           "confirmed",
		"rated":            false,
	}

	a, okA := NormalizeBooking(variantA)
	b, okB := NormalizeBooking(variantB)
	if !okA || !okB {
		t.Fatal("both variants carry an id and should normalize")
	}

	if a.ID != b.ID || a.PackageID != b.PackageID {
		t.Errorf("identity fields diverged: %+v vs %+v", a, b)
	}
	if a.ParticipantsCount != 2 || b.ParticipantsCount != 2 {
		t.Errorf("participants = %d / %d, want 2", a.ParticipantsCount, b.ParticipantsCount)
	}
	if a.TotalAmount != 200 || b.TotalAmount != 200 {
		t.Errorf("total = %v / %v, want 200", a.TotalAmount, b.TotalAmount)
	}
	if a.Status != models.BookingConfirmed || b.Status != models.BookingConfirmed {
		t.Errorf("status = %s / %s, want confirmed", a.Status, b.Status)
	}
}

func TestNormalizeBookingsDropsIdless(t *testing.T) {
	items := []map[string]interface{}{
		{"id": "bk-1", "status": "pending"},
		{"status": "pending"}, // no identity, not actionable
		{"_id": "bk-2", "status": "completed"},
	}

	bookings := NormalizeBookings(items)
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings after filtering, got %d", len(bookings))
	}
	if bookings[0].ID != "bk-1" || bookings[1].ID != "bk-2" {
		t.Errorf("unexpected ids: %s, %s", bookings[0].ID, bookings[1].ID)
	}
}

func TestNormalizePackageAliases(t *testing.T) {
	raw := map[string]interface{}{
		"_id":                  "pkg-9",
		"title":                "Cape Coast Heritage Tour",
		"price":                "450.50",
		"max_participants":     float64(12),
		"current_participants": float64(7),
		"average_rating":       4.5,
		"ratings_count":        float64(31),
		"available_dates":      []interface{}{"2026-10-01", "2026-10-15", "garbage"},
	}

	pkg, ok := NormalizePackage(raw)
	if !ok {
		t.Fatal("package with _id should normalize")
	}
	if pkg.ID != "pkg-9" || pkg.Name != "Cape Coast Heritage Tour" {
		t.Errorf("identity fields wrong: %+v", pkg)
	}
	if pkg.Price != 450.50 {
		t.Errorf("string price not parsed: %v", pkg.Price)
	}
	if pkg.GroupSize != 12 || pkg.CurrentParticipants != 7 {
		t.Errorf("capacity fields wrong: %d/%d", pkg.GroupSize, pkg.CurrentParticipants)
	}
	if pkg.Remaining() != 5 {
		t.Errorf("Remaining() = %d, want 5", pkg.Remaining())
	}
	if len(pkg.AvailableDates) != 2 {
		t.Errorf("expected 2 parseable dates, got %d", len(pkg.AvailableDates))
	}
	// No is_active flag sent: catalog items default to active.
	if !pkg.IsActive {
		t.Error("package without an active flag should default to active")
	}
}

func TestNormalizeSpotCoordinates(t *testing.T) {
	with := map[string]interface{}{
		"id":   "sp-1",
		"name": "Kakum Canopy Walk",
		"lat":  5.3511,
		"lng":  -1.3834,
	}
	spot, ok := NormalizeSpot(with)
	if !ok || !spot.HasCoordinates() {
		t.Fatalf("spot with lat/lng aliases should have coordinates: %+v", spot)
	}

	without := map[string]interface{}{
		"_id":   "sp-2",
		"title": "Unknown Spot",
	}
	spot2, ok := NormalizeSpot(without)
	if !ok {
		t.Fatal("spot with _id should normalize")
	}
	if spot2.HasCoordinates() {
		t.Error("missing coordinates must stay nil, not default to (0,0)")
	}
	if spot2.Name != "Unknown Spot" {
		t.Errorf("title alias not mapped: %q", spot2.Name)
	}
}

func TestNormalizeAnalyticsSeedsStatuses(t *testing.T) {
	raw := map[string]interface{}{
		"total_revenue":  float64(1200),
		"total_bookings": float64(8),
		"status_breakdown": map[string]interface{}{
			"confirmed": float64(5),
			"pending":   float64(3),
		},
	}

	analytics := NormalizeAnalytics(raw)
	if analytics.TotalRevenue != 1200 || analytics.TotalBookings != 8 {
		t.Errorf("totals wrong: %+v", analytics)
	}
	if analytics.StatusBreakdown[models.BookingConfirmed] != 5 {
		t.Errorf("confirmed = %d", analytics.StatusBreakdown[models.BookingConfirmed])
	}
	if count, ok := analytics.StatusBreakdown[models.BookingCancelled]; !ok || count != 0 {
		t.Error("cancelled should be seeded to 0")
	}
}
