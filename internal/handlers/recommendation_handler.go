package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tourbay/internal/models"
	"github.com/joshua-takyi/tourbay/internal/services"
)

func parseLimit(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
		return 0, false
	}
	return limit, true
}

// sessionToken returns the bearer token when a session exists. The
// recommendation routes work unauthenticated; personalization just needs a
// token to ask the backend with.
func sessionToken(c *gin.Context) string {
	if session, ok := sessionFromContext(c); ok {
		return session.Token
	}
	return ""
}

func respondTieredSpots(c *gin.Context, result *services.SpotRecommendations) {
	if result.Degraded {
		c.JSON(http.StatusOK, models.DegradedResponse(result.Spots, string(result.Tier), ""))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(result.Spots, ""))
}

func RecommendSpots(rs *services.RecommendationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := parseLimit(c)
		if !ok {
			return
		}
		useAI := c.DefaultQuery("use_ai", "true") == "true"

		result := rs.RecommendSpots(c.Request.Context(), sessionToken(c), useAI, limit)
		respondTieredSpots(c, result)
	}
}

func RecommendPackages(rs *services.RecommendationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := parseLimit(c)
		if !ok {
			return
		}
		useAI := c.DefaultQuery("use_ai", "true") == "true"

		result := rs.RecommendPackages(c.Request.Context(), sessionToken(c), useAI, limit)
		if result.Degraded {
			c.JSON(http.StatusOK, models.DegradedResponse(result.Packages, string(result.Tier), ""))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(result.Packages, ""))
	}
}

func TrendingSpots(rs *services.RecommendationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := parseLimit(c)
		if !ok {
			return
		}

		result := rs.TrendingSpots(c.Request.Context(), limit)
		respondTieredSpots(c, result)
	}
}

func SimilarSpots(rs *services.RecommendationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		spotID := strings.TrimSpace(c.Param("id"))
		if spotID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("spot ID is required"))
			return
		}
		limit, ok := parseLimit(c)
		if !ok {
			return
		}

		result := rs.SimilarSpots(c.Request.Context(), spotID, limit)
		respondTieredSpots(c, result)
	}
}
