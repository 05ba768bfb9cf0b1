package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshua-takyi/tourbay/internal/models"
	"github.com/joshua-takyi/tourbay/internal/services"
)

func parseDays(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("days", "30")
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid days parameter"))
		return 0, false
	}
	return days, true
}

func CompanyAnalytics(as *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		if !session.IsCompany() && !session.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("only travel companies can view analytics"))
			return
		}

		days, ok := parseDays(c)
		if !ok {
			return
		}

		analytics, err := as.CompanyAnalytics(c.Request.Context(), session, days)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		if analytics.Reconstructed {
			c.JSON(http.StatusOK, models.DegradedResponse(analytics, "reconstructed", "analytics approximated from bookings"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(analytics, ""))
	}
}

func CompanyViewStats(as *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		companyID := strings.TrimSpace(c.Param("id"))
		if companyID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("company ID is required"))
			return
		}
		if !session.IsOwner(companyID) && !session.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("you can only view your own stats"))
			return
		}

		days, ok := parseDays(c)
		if !ok {
			return
		}

		stats, err := as.CompanyViewStats(c.Request.Context(), companyID, days)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(stats, ""))
	}
}

type trackViewPayload struct {
	CompanyID string `json:"company_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// TrackSpotView records a view event. Anonymous browsing is fine: when the
// client sends no session id one is minted per request, which undercounts
// uniques but never blocks the browse flow.
func TrackSpotView(as *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		spotID := strings.TrimSpace(c.Param("id"))
		if spotID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("spot ID is required"))
			return
		}

		var payload trackViewPayload
		_ = c.ShouldBindJSON(&payload)

		sessionID := payload.SessionID
		if sessionID == "" {
			sessionID = c.GetHeader("X-Session-ID")
		}
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		view := &models.SpotView{
			SpotID:    spotID,
			CompanyID: payload.CompanyID,
			SessionID: sessionID,
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		if session, ok := sessionFromContext(c); ok {
			userID := session.UserID
			view.UserID = &userID
		}

		if err := as.TrackSpotView(c.Request.Context(), view); err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusAccepted, models.SuccessResponse(nil, "View recorded"))
	}
}
