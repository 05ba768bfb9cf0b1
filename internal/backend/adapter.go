package backend

import (
	"strconv"
	"strings"
	"time"

	"github.com/joshua-takyi/tourbay/internal/models"
)

// The backend's field naming is not uniform across endpoints: the same
// booking arrives as {id, participants_count, total_amount} from one route
// and {_id, number_of_people, total_price} from another, and numbers are
// sometimes encoded as strings. Everything is normalized here, before any
// core logic sees it; business code never branches on alias names.
//
// Default policy for absent fields: numerics default to 0, booleans to
// false, with one exception — a catalog item with no is_active/active flag
// is treated as active, because the backend only sends the flag once
// moderation has touched the record.

func rawString(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			switch s := v.(type) {
			case string:
				return strings.TrimSpace(s)
			case float64:
				return strconv.FormatFloat(s, 'f', -1, 64)
			}
		}
	}
	return ""
}

func rawFloat(raw map[string]interface{}, keys ...string) float64 {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			switch n := v.(type) {
			case float64:
				return n
			case string:
				if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
					return f
				}
			}
		}
	}
	return 0
}

func rawInt(raw map[string]interface{}, keys ...string) int {
	return int(rawFloat(raw, keys...))
}

func rawBool(raw map[string]interface{}, defaultValue bool, keys ...string) bool {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			switch b := v.(type) {
			case bool:
				return b
			case string:
				if parsed, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
					return parsed
				}
			case float64:
				return b != 0
			}
		}
	}
	return defaultValue
}

var rawTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	models.TravelDateLayout,
}

func rawTime(raw map[string]interface{}, keys ...string) time.Time {
	for _, key := range keys {
		s, ok := raw[key].(string)
		if !ok {
			continue
		}
		for _, layout := range rawTimeLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

func rawStringSlice(raw map[string]interface{}, keys ...string) []string {
	for _, key := range keys {
		items, ok := raw[key].([]interface{})
		if !ok {
			continue
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func rawFloatPtr(raw map[string]interface{}, keys ...string) *float64 {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			switch n := v.(type) {
			case float64:
				f := n
				return &f
			case string:
				if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
					return &f
				}
			}
		}
	}
	return nil
}

// NormalizeBooking maps one raw booking record into the canonical model.
// Records without any identity are non-actionable: they cannot drive a
// cancel or rating action, so ok is false and the caller drops them.
func NormalizeBooking(raw map[string]interface{}) (*models.Booking, bool) {
	id := rawString(raw, "id", "_id")
	if id == "" {
		return nil, false
	}

	return &models.Booking{
		ID:                id,
		PackageID:         rawString(raw, "package_id", "tour_package_id", "tour_package"),
		PackageName:       rawString(raw, "package_name", "package_title"),
		TouristID:         rawString(raw, "tourist_id", "user_id"),
		TravelDate:        rawTime(raw, "travel_date", "date"),
		ParticipantsCount: rawInt(raw, "participants_count", "number_of_people"),
		TotalAmount:       rawFloat(raw, "total_amount", "total_price"),
		ContactPhone:      rawString(raw, "contact_phone", "phone"),
		Status:            models.BookingStatus(strings.ToLower(rawString(raw, "status"))),
		HasRated:          rawBool(raw, false, "has_rated", "rated"),
		BookingReference:  rawString(raw, "booking_reference", "reference"),
		CreatedAt:         rawTime(raw, "created_at"),
	}, true
}

// NormalizeBookings converts a raw list, silently dropping id-less records.
func NormalizeBookings(items []map[string]interface{}) []*models.Booking {
	bookings := make([]*models.Booking, 0, len(items))
	for _, item := range items {
		if booking, ok := NormalizeBooking(item); ok {
			bookings = append(bookings, booking)
		}
	}
	return bookings
}

// NormalizePackage maps a raw tour package into the canonical model.
func NormalizePackage(raw map[string]interface{}) (*models.TourPackage, bool) {
	id := rawString(raw, "id", "_id")
	if id == "" {
		return nil, false
	}

	pkg := &models.TourPackage{
		ID:                  id,
		CompanyID:           rawString(raw, "company_id", "travel_company_id"),
		Name:                rawString(raw, "name", "title"),
		Description:         rawString(raw, "description"),
		Category:            rawString(raw, "category"),
		Location:            rawString(raw, "location", "destination"),
		Images:              rawStringSlice(raw, "images", "image_urls"),
		Price:               rawFloat(raw, "price"),
		GroupSize:           rawInt(raw, "group_size", "max_participants"),
		CurrentParticipants: rawInt(raw, "current_participants"),
		IsActive:            rawBool(raw, true, "is_active", "active"),
		Rating:              rawFloat(raw, "rating", "average_rating"),
		TotalRatings:        rawInt(raw, "total_ratings", "ratings_count"),
		CreatedAt:           rawTime(raw, "created_at"),
		UpdatedAt:           rawTime(raw, "updated_at"),
	}

	if dates, ok := raw["available_dates"].([]interface{}); ok {
		for _, d := range dates {
			s, ok := d.(string)
			if !ok {
				continue
			}
			if t, rej := models.ParseTravelDate(s); rej == nil {
				pkg.AvailableDates = append(pkg.AvailableDates, t)
			}
		}
	}

	return pkg, true
}

func NormalizePackages(items []map[string]interface{}) []*models.TourPackage {
	packages := make([]*models.TourPackage, 0, len(items))
	for _, item := range items {
		if pkg, ok := NormalizePackage(item); ok {
			packages = append(packages, pkg)
		}
	}
	return packages
}

// NormalizeSpot maps a raw tourist spot into the canonical model.
func NormalizeSpot(raw map[string]interface{}) (*models.TouristSpot, bool) {
	id := rawString(raw, "id", "_id")
	if id == "" {
		return nil, false
	}

	return &models.TouristSpot{
		ID:           id,
		Name:         rawString(raw, "name", "title"),
		Description:  rawString(raw, "description"),
		Category:     rawString(raw, "category"),
		Location:     rawString(raw, "location", "address"),
		Latitude:     rawFloatPtr(raw, "latitude", "lat"),
		Longitude:    rawFloatPtr(raw, "longitude", "lng", "long"),
		Images:       rawStringSlice(raw, "images", "image_urls"),
		Rating:       rawFloat(raw, "rating", "average_rating"),
		TotalRatings: rawInt(raw, "total_ratings", "ratings_count"),
		CreatedAt:    rawTime(raw, "created_at"),
	}, true
}

func NormalizeSpots(items []map[string]interface{}) []*models.TouristSpot {
	spots := make([]*models.TouristSpot, 0, len(items))
	for _, item := range items {
		if spot, ok := NormalizeSpot(item); ok {
			spots = append(spots, spot)
		}
	}
	return spots
}

// NormalizeAnalytics maps an aggregate metrics object into the canonical
// model. The breakdown is seeded with every known status first.
func NormalizeAnalytics(raw map[string]interface{}) *models.CompanyAnalytics {
	analytics := &models.CompanyAnalytics{
		TotalRevenue:    rawFloat(raw, "total_revenue", "revenue"),
		TotalBookings:   rawInt(raw, "total_bookings", "bookings_count"),
		PeriodDays:      rawInt(raw, "period_days", "days"),
		StatusBreakdown: make(map[models.BookingStatus]int, len(models.AllBookingStatuses)),
	}
	for _, status := range models.AllBookingStatuses {
		analytics.StatusBreakdown[status] = 0
	}
	if breakdown, ok := raw["status_breakdown"].(map[string]interface{}); ok {
		for key := range breakdown {
			analytics.StatusBreakdown[models.BookingStatus(strings.ToLower(key))] = rawInt(breakdown, key)
		}
	}
	return analytics
}
