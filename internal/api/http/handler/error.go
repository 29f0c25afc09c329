package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/clubfeed-server/internal/model"
)

// handleError maps service errors to HTTP status codes. Unauthenticated and
// forbidden outcomes never reach here; the middleware gates report those.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, model.ErrInvalidTarget):
		c.JSON(http.StatusBadRequest, gin.H{"error": "target role mismatch"})
	case errors.Is(err, model.ErrProtectedRoot):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot demote root super_vip"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
