package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tourbay/internal/backend"
	"github.com/joshua-takyi/tourbay/internal/helpers"
	"github.com/joshua-takyi/tourbay/internal/models"
)

// sessionFromContext pulls the Session the auth middleware stored.
func sessionFromContext(c *gin.Context) (*helpers.Session, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	session, ok := value.(*helpers.Session)
	return session, ok
}

// respondServiceError converts a service error into the uniform
// {success:false, ...} envelope. Validation rejections were caught before
// any I/O and come back as 422 with their code and remaining count; backend
// rejections pass the server's message through; transport failures get a
// retryable 503. UI layers never need to handle exceptions.
func respondServiceError(c *gin.Context, err error) {
	var rejection *models.ValidationRejection
	if errors.As(err, &rejection) {
		c.JSON(http.StatusUnprocessableEntity, models.RejectionResponse(rejection))
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = "the request was rejected, please try again"
		}
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		c.JSON(status, models.ErrorResponse(message))
		return
	}

	if backend.IsNetworkError(err) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse("could not reach the booking service, please retry"))
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
}
