package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/clubfeed-server/internal/logger"
)

// RoleService defines role-change and moderation operations.
type RoleService interface {
	PromoteToAdmin(ctx context.Context, email string) error
	DemoteAdmin(ctx context.Context, email string) error
	PromoteToVIP(ctx context.Context, email string) error
	DemoteVIP(ctx context.Context, email string) error
	PromoteToSuperVIP(ctx context.Context, email string) error
	DemoteSuperVIP(ctx context.Context, email string) error
	Timeout(ctx context.Context, email string, minutes int) (time.Time, error)
}

// Role handles HTTP endpoints for role changes and chat timeouts.
type Role struct {
	roleService RoleService
	logger      *logger.Logger
}

// NewRole creates a new Role handler.
func NewRole(roleService RoleService, logger *logger.Logger) *Role {
	return &Role{
		roleService: roleService,
		logger:      logger,
	}
}

type roleTargetRequest struct {
	Email string `json:"email" binding:"required"`
}

type timeoutRequest struct {
	Email   string `json:"email" binding:"required"`
	Minutes int    `json:"minutes"`
}

func (h *Role) PromoteToAdmin(c *gin.Context) {
	h.applyRoleChange(c, h.roleService.PromoteToAdmin)
}

func (h *Role) DemoteAdmin(c *gin.Context) {
	h.applyRoleChange(c, h.roleService.DemoteAdmin)
}

func (h *Role) PromoteToVIP(c *gin.Context) {
	h.applyRoleChange(c, h.roleService.PromoteToVIP)
}

func (h *Role) DemoteVIP(c *gin.Context) {
	h.applyRoleChange(c, h.roleService.DemoteVIP)
}

func (h *Role) PromoteToSuperVIP(c *gin.Context) {
	h.applyRoleChange(c, h.roleService.PromoteToSuperVIP)
}

func (h *Role) DemoteSuperVIP(c *gin.Context) {
	h.applyRoleChange(c, h.roleService.DemoteSuperVIP)
}

// Timeout sets the target's chat timeout and returns the expiry.
func (h *Role) Timeout(c *gin.Context) {
	var req timeoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	until, err := h.roleService.Timeout(c.Request.Context(), req.Email, req.Minutes)
	if err != nil {
		h.logger.Error("Role handler: timeout failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "timeout_until": until})
}

func (h *Role) applyRoleChange(c *gin.Context, op func(ctx context.Context, email string) error) {
	var req roleTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := op(c.Request.Context(), req.Email); err != nil {
		h.logger.Error("Role handler: role change failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
