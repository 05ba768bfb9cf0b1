package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/joshua-takyi/tourbay/internal/models"
	gocache "github.com/patrickmn/go-cache"
)

// RecommendationTier names which data source produced a result set.
type RecommendationTier string

const (
	TierPersonalized RecommendationTier = "personalized"
	TierPopular      RecommendationTier = "popular"
	TierFeatured     RecommendationTier = "featured"
	TierTrending     RecommendationTier = "trending"
	TierSimilar      RecommendationTier = "similar"
	TierCategory     RecommendationTier = "category"
)

const (
	// Tiers overfetch 2x before local filtering (inactive packages, spots
	// without coordinates) so the post-filter list can still fill limit.
	overfetchFactor = 2

	defaultLimit = 10
	maxLimit     = 50

	recentViewsWindowDays = 30

	catalogCacheTTL = 5 * time.Minute
)

// SpotRecommendations is a tiered result. Degraded means a fallback tier
// produced it after the primary source failed or came back empty — still a
// success, never surfaced as an error.
type SpotRecommendations struct {
	Spots    []*models.TouristSpot `json:"spots"`
	Tier     RecommendationTier    `json:"tier"`
	Degraded bool                  `json:"degraded"`
}

type PackageRecommendations struct {
	Packages []*models.TourPackage `json:"packages"`
	Tier     RecommendationTier    `json:"tier"`
	Degraded bool                  `json:"degraded"`
}

// RecommendationService degrades through tiers: personalized, then a
// locally scored popular/featured ranking over the catalog, then (for
// similar-spot requests) a category query. It never propagates a raw
// network error for a degradable request; the worst case is an empty list.
type RecommendationService struct {
	repo   models.TourismRepo
	views  models.SpotViewsRepo
	cache  *gocache.Cache
	logger *slog.Logger
}

func NewRecommendationService(repo models.TourismRepo, views models.SpotViewsRepo, logger *slog.Logger) *RecommendationService {
	return &RecommendationService{
		repo:   repo,
		views:  views,
		cache:  gocache.New(catalogCacheTTL, 10*time.Minute),
		logger: logger,
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// RecommendSpots returns spot recommendations for the home screen.
// Tier 1 is the backend's personalization source; any failure or empty
// result degrades to the locally scored popular ranking.
func (rs *RecommendationService) RecommendSpots(ctx context.Context, token string, personalized bool, limit int) *SpotRecommendations {
	limit = clampLimit(limit)

	if personalized {
		spots, err := rs.repo.PersonalizedSpots(ctx, token, limit)
		if err == nil && len(spots) > 0 {
			return &SpotRecommendations{Spots: spots, Tier: TierPersonalized}
		}
		if err != nil {
			rs.logger.Info("personalized spots unavailable, degrading to popular", "error", err)
		}
	}

	return &SpotRecommendations{
		Spots:    rs.popularSpots(ctx, limit),
		Tier:     TierPopular,
		Degraded: personalized,
	}
}

// RecommendPackages mirrors RecommendSpots for tour packages; the fallback
// is the featured ranking (rating first, demand as tie-break).
func (rs *RecommendationService) RecommendPackages(ctx context.Context, token string, personalized bool, limit int) *PackageRecommendations {
	limit = clampLimit(limit)

	if personalized {
		packages, err := rs.repo.PersonalizedPackages(ctx, token, limit)
		if err == nil && len(packages) > 0 {
			return &PackageRecommendations{Packages: packages, Tier: TierPersonalized}
		}
		if err != nil {
			rs.logger.Info("personalized packages unavailable, degrading to featured", "error", err)
		}
	}

	return &PackageRecommendations{
		Packages: rs.featuredPackages(ctx, limit),
		Tier:     TierFeatured,
		Degraded: personalized,
	}
}

// TrendingSpots serves the explore screen. The backend's trending endpoint
// is authoritative; on failure the local popular ranking stands in.
func (rs *RecommendationService) TrendingSpots(ctx context.Context, limit int) *SpotRecommendations {
	limit = clampLimit(limit)

	cacheKey := fmt.Sprintf("trending_spots_%d", limit)
	if cached, found := rs.cache.Get(cacheKey); found {
		return &SpotRecommendations{Spots: cached.([]*models.TouristSpot), Tier: TierTrending}
	}

	spots, err := rs.repo.TrendingSpots(ctx, limit)
	if err == nil && len(spots) > 0 {
		rs.cache.Set(cacheKey, spots, gocache.DefaultExpiration)
		return &SpotRecommendations{Spots: spots, Tier: TierTrending}
	}
	if err != nil {
		rs.logger.Info("trending spots unavailable, degrading to popular", "error", err)
	}

	return &SpotRecommendations{
		Spots:    rs.popularSpots(ctx, limit),
		Tier:     TierPopular,
		Degraded: true,
	}
}

// SimilarSpots finds spots like the given one. If the backend's similarity
// endpoint fails, the fallback queries the catalog by the source spot's
// category, excluding the source itself.
func (rs *RecommendationService) SimilarSpots(ctx context.Context, spotID string, limit int) *SpotRecommendations {
	limit = clampLimit(limit)

	spots, err := rs.repo.SimilarSpots(ctx, spotID, limit)
	if err == nil && len(spots) > 0 {
		return &SpotRecommendations{Spots: spots, Tier: TierSimilar}
	}
	if err != nil {
		rs.logger.Info("similar spots unavailable, degrading to category query", "spot_id", spotID, "error", err)
	}

	source, err := rs.repo.GetSpot(ctx, spotID)
	if err != nil || source.Category == "" {
		return &SpotRecommendations{Spots: []*models.TouristSpot{}, Tier: TierCategory, Degraded: true}
	}

	candidates, err := rs.repo.ListSpots(ctx, source.Category, overfetchFactor*limit)
	if err != nil {
		rs.logger.Warn("category fallback failed", "category", source.Category, "error", err)
		return &SpotRecommendations{Spots: []*models.TouristSpot{}, Tier: TierCategory, Degraded: true}
	}

	similar := make([]*models.TouristSpot, 0, limit)
	for _, spot := range candidates {
		if spot.ID == spotID {
			continue
		}
		similar = append(similar, spot)
		if len(similar) == limit {
			break
		}
	}

	return &SpotRecommendations{Spots: similar, Tier: TierCategory, Degraded: true}
}

// popularSpots ranks the catalog by popularity score. Spots without
// coordinates cannot be shown on the map surfaces that consume this list,
// so they are filtered before ranking. Cached catalog entries are shared
// across concurrent requests and must stay immutable: each candidate is
// copied before its RecentViews count is attached.
func (rs *RecommendationService) popularSpots(ctx context.Context, limit int) []*models.TouristSpot {
	catalog := rs.spotCatalog(ctx, overfetchFactor*limit)
	if len(catalog) == 0 {
		return []*models.TouristSpot{}
	}

	candidates := make([]*models.TouristSpot, 0, len(catalog))
	ids := make([]string, 0, len(catalog))
	for _, spot := range catalog {
		if !spot.HasCoordinates() {
			continue
		}
		clone := *spot
		candidates = append(candidates, &clone)
		ids = append(ids, spot.ID)
	}

	rs.attachRecentViews(ctx, candidates, ids)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score() > candidates[j].Score()
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// featuredPackages ranks active packages by average rating, breaking ties
// by totalRatings + currentParticipants as a proxy for demand.
func (rs *RecommendationService) featuredPackages(ctx context.Context, limit int) []*models.TourPackage {
	catalog := rs.packageCatalog(ctx, overfetchFactor*limit)
	if len(catalog) == 0 {
		return []*models.TourPackage{}
	}

	candidates := make([]*models.TourPackage, 0, len(catalog))
	for _, pkg := range catalog {
		if !pkg.IsActive {
			continue
		}
		candidates = append(candidates, pkg)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Rating != candidates[j].Rating {
			return candidates[i].Rating > candidates[j].Rating
		}
		demandI := candidates[i].TotalRatings + candidates[i].CurrentParticipants
		demandJ := candidates[j].TotalRatings + candidates[j].CurrentParticipants
		return demandI > demandJ
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

func (rs *RecommendationService) spotCatalog(ctx context.Context, limit int) []*models.TouristSpot {
	cacheKey := fmt.Sprintf("spot_catalog_%d", limit)
	if cached, found := rs.cache.Get(cacheKey); found {
		return cached.([]*models.TouristSpot)
	}

	spots, err := rs.repo.ListSpots(ctx, "", limit)
	if err != nil {
		rs.logger.Warn("spot catalog fetch failed", "error", err)
		return nil
	}
	rs.cache.Set(cacheKey, spots, gocache.DefaultExpiration)
	return spots
}

func (rs *RecommendationService) packageCatalog(ctx context.Context, limit int) []*models.TourPackage {
	cacheKey := fmt.Sprintf("package_catalog_%d", limit)
	if cached, found := rs.cache.Get(cacheKey); found {
		return cached.([]*models.TourPackage)
	}

	packages, err := rs.repo.ListPackages(ctx, limit)
	if err != nil {
		rs.logger.Warn("package catalog fetch failed", "error", err)
		return nil
	}
	rs.cache.Set(cacheKey, packages, gocache.DefaultExpiration)
	return packages
}

// attachRecentViews fills each candidate's RecentViews from the local view
// store. A missing or failing store just leaves the counts at zero; the
// other two scoring signals still apply.
func (rs *RecommendationService) attachRecentViews(ctx context.Context, spots []*models.TouristSpot, ids []string) {
	if rs.views == nil || len(ids) == 0 {
		return
	}
	counts, err := rs.views.RecentViewCounts(ctx, ids, recentViewsWindowDays)
	if err != nil {
		rs.logger.Warn("recent view counts unavailable", "error", err)
		return
	}
	for _, spot := range spots {
		spot.RecentViews = counts[spot.ID]
	}
}
