package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tourbay/internal/models"
	"github.com/joshua-takyi/tourbay/internal/services"
)

type createBookingPayload struct {
	PackageID string `json:"package_id"`
	models.BookingForm
}

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		if !session.IsTourist() && !session.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("only tourists can book packages"))
			return
		}

		var payload createBookingPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		if strings.TrimSpace(payload.PackageID) == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("package ID is required"))
			return
		}

		booking, err := bs.CreateBooking(c.Request.Context(), session, payload.PackageID, &payload.BookingForm)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "Booking created successfully"))
	}
}

func ListUserBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		bookings, err := bs.ListUserBookings(c.Request.Context(), session)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

func CancelBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		bookingID := strings.TrimSpace(c.Param("id"))
		if bookingID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("booking ID is required"))
			return
		}

		if err := bs.CancelBooking(c.Request.Context(), session, bookingID); err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Booking cancelled"))
	}
}

// BookingQuote previews capacity and the display total for a party size
// before anything is submitted.
func BookingQuote(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		packageID := strings.TrimSpace(c.Param("id"))
		if packageID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("package ID is required"))
			return
		}
		participants := c.DefaultQuery("participants", "1")

		quote, err := bs.Quote(c.Request.Context(), packageID, participants)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(quote, ""))
	}
}

type submitRatingPayload struct {
	BookingID string `json:"booking_id"`
	Rating    int    `json:"rating"`
	Review    string `json:"review,omitempty"`
}

func SubmitRating(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		var payload submitRatingPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		if strings.TrimSpace(payload.BookingID) == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("booking ID is required"))
			return
		}

		rating, err := bs.SubmitRating(c.Request.Context(), session, payload.BookingID, payload.Rating, payload.Review)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(rating, "Rating submitted"))
	}
}
