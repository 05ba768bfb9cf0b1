package models

// CompanyAnalytics aggregates booking performance for a travel company
// dashboard. When the authoritative endpoint is down the gateway
// reconstructs an approximation from the raw booking list; Reconstructed
// marks that degraded origin so the UI can caveat the numbers.
type CompanyAnalytics struct {
	TotalRevenue    float64               `json:"total_revenue"`
	TotalBookings   int                   `json:"total_bookings"`
	StatusBreakdown map[BookingStatus]int `json:"status_breakdown"`
	PeriodDays      int                   `json:"period_days,omitempty"`
	Reconstructed   bool                  `json:"reconstructed"`
}

// ReconcileAnalytics rebuilds approximate metrics from raw bookings. It is a
// degraded-mode substitute only: it lacks the server's date-range precision
// and currency handling. Every known status is seeded to zero so dashboards
// never render a missing key.
func ReconcileAnalytics(bookings []*Booking) *CompanyAnalytics {
	breakdown := make(map[BookingStatus]int, len(AllBookingStatuses))
	for _, status := range AllBookingStatuses {
		breakdown[status] = 0
	}

	var revenue float64
	for _, b := range bookings {
		revenue += b.TotalAmount
		breakdown[b.Status]++
	}

	return &CompanyAnalytics{
		TotalRevenue:    revenue,
		TotalBookings:   len(bookings),
		StatusBreakdown: breakdown,
		Reconstructed:   true,
	}
}
