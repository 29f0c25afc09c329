package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/clubfeed-server/internal/model"
	"github.com/dtroode/clubfeed-server/internal/testutil"
)

// MockRoleService mocks the RoleService interface
type MockRoleService struct {
	mock.Mock
}

func (m *MockRoleService) PromoteToAdmin(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockRoleService) DemoteAdmin(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockRoleService) PromoteToVIP(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockRoleService) DemoteVIP(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockRoleService) PromoteToSuperVIP(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockRoleService) DemoteSuperVIP(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockRoleService) Timeout(ctx context.Context, email string, minutes int) (time.Time, error) {
	args := m.Called(ctx, email, minutes)
	return args.Get(0).(time.Time), args.Error(1)
}

func newRoleEngine(svc RoleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRole(svc, testutil.MakeNoopLogger())

	e := gin.New()
	e.POST("/api/admin/promote", h.PromoteToAdmin)
	e.POST("/api/admin/demote", h.DemoteAdmin)
	e.POST("/api/vip/promote", h.PromoteToVIP)
	e.POST("/api/vip/demote", h.DemoteVIP)
	e.POST("/api/supervip/promote", h.PromoteToSuperVIP)
	e.POST("/api/supervip/demote", h.DemoteSuperVIP)
	e.POST("/api/chat/timeout", h.Timeout)
	return e
}

func postJSON(e *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestRoleHandler_Promote(t *testing.T) {
	tests := []struct {
		path   string
		method string
	}{
		{path: "/api/admin/promote", method: "PromoteToAdmin"},
		{path: "/api/vip/promote", method: "PromoteToVIP"},
		{path: "/api/supervip/promote", method: "PromoteToSuperVIP"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			svc := &MockRoleService{}
			svc.On(tt.method, mock.Anything, "target@example.com").Return(nil)

			w := postJSON(newRoleEngine(svc), tt.path, `{"email":"target@example.com"}`)

			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"success":true}`, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestRoleHandler_MissingEmail(t *testing.T) {
	svc := &MockRoleService{}

	w := postJSON(newRoleEngine(svc), "/api/admin/promote", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "PromoteToAdmin", mock.Anything, mock.Anything)
}

func TestRoleHandler_Demote_InvalidTarget(t *testing.T) {
	svc := &MockRoleService{}
	svc.On("DemoteAdmin", mock.Anything, "user@example.com").Return(model.ErrInvalidTarget)

	w := postJSON(newRoleEngine(svc), "/api/admin/demote", `{"email":"user@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"target role mismatch"}`, w.Body.String())
}

func TestRoleHandler_DemoteSuperVIP_ProtectedRoot(t *testing.T) {
	svc := &MockRoleService{}
	svc.On("DemoteSuperVIP", mock.Anything, "root@clubfeed.local").Return(model.ErrProtectedRoot)

	w := postJSON(newRoleEngine(svc), "/api/supervip/demote", `{"email":"root@clubfeed.local"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"cannot demote root super_vip"}`, w.Body.String())
}

func TestRoleHandler_Timeout(t *testing.T) {
	until := time.Now().Add(10 * time.Minute).Truncate(time.Second)
	svc := &MockRoleService{}
	svc.On("Timeout", mock.Anything, "loud@example.com", 10).Return(until, nil)

	w := postJSON(newRoleEngine(svc), "/api/chat/timeout", `{"email":"loud@example.com","minutes":10}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"timeout_until"`)
	svc.AssertExpectations(t)
}

func TestRoleHandler_Timeout_TargetMissing(t *testing.T) {
	svc := &MockRoleService{}
	svc.On("Timeout", mock.Anything, "ghost@example.com", 10).Return(time.Time{}, model.ErrNotFound)

	w := postJSON(newRoleEngine(svc), "/api/chat/timeout", `{"email":"ghost@example.com","minutes":10}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoleHandler_Timeout_SuperVIPTarget(t *testing.T) {
	svc := &MockRoleService{}
	svc.On("Timeout", mock.Anything, "boss@example.com", 10).Return(time.Time{}, model.ErrInvalidTarget)

	w := postJSON(newRoleEngine(svc), "/api/chat/timeout", `{"email":"boss@example.com","minutes":10}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
