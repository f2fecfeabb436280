package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrAlreadyBooked), errors.Is(err, domain.ErrNoBookedRegistration):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPastSession), errors.Is(err, domain.ErrSessionStarted):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
