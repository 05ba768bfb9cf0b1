package models

import "time"

// TouristSpot is the canonical spot shape after boundary normalization.
// Latitude/Longitude stay as pointers: the backend sometimes omits
// coordinates and spots without them are excluded from map-driven
// recommendations rather than defaulted to (0,0).
type TouristSpot struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category,omitempty"`
	Location     string    `json:"location,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	Images       []string  `json:"images,omitempty"`
	Rating       float64   `json:"rating"`
	TotalRatings int       `json:"total_ratings"`
	RecentViews  int64     `json:"recent_views,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

func (s *TouristSpot) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// Popularity score weights, each signal capped before weighting so a single
// runaway value (a spot with 40k views, say) cannot dominate the ranking.
const (
	ratingWeight       = 0.4
	ratingVolumeWeight = 0.3
	recentViewsWeight  = 0.3

	ratingVolumeScale = 10.0
	recentViewsScale  = 100.0
	signalCap         = 5.0
)

// PopularityScore ranks a candidate from its average rating, rating volume
// and recent view count. Each term is scaled and capped at 5 before
// weighting, so the result is always within [0, 5] for non-negative input.
func PopularityScore(rating float64, totalRatings, recentViews int64) float64 {
	volume := float64(totalRatings) / ratingVolumeScale
	if volume > signalCap {
		volume = signalCap
	}
	views := float64(recentViews) / recentViewsScale
	if views > signalCap {
		views = signalCap
	}
	if rating < 0 {
		rating = 0
	}
	if rating > signalCap {
		rating = signalCap
	}
	return ratingWeight*rating + ratingVolumeWeight*volume + recentViewsWeight*views
}

// Score is PopularityScore over the spot's own signals.
func (s *TouristSpot) Score() float64 {
	return PopularityScore(s.Rating, int64(s.TotalRatings), s.RecentViews)
}
