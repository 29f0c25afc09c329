package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/clubfeed-server/internal/api/http/middleware"
)

// Identity handles the current-identity endpoint.
type Identity struct{}

// NewIdentity creates a new Identity handler.
func NewIdentity() *Identity {
	return &Identity{}
}

// Me returns the resolved acting user, or null when none resolved.
func (h *Identity) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, user)
}
