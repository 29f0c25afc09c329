package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/clubfeed-server/internal/api/http/middleware"
	"github.com/dtroode/clubfeed-server/internal/model"
)

func TestIdentityHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(func(c *gin.Context) {
		middleware.SetCurrentUser(c, model.User{Email: "root@clubfeed.local", Role: model.RoleSuperVIP})
	})
	e.GET("/api/me", NewIdentity().Me)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/me", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"root@clubfeed.local"`)
	assert.Contains(t, w.Body.String(), `"role":"super_vip"`)
}

func TestIdentityHandler_Me_NoIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.GET("/api/me", NewIdentity().Me)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/me", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}
