package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/clubfeed-server/internal/logger"
	"github.com/dtroode/clubfeed-server/internal/model"
)

// Role applies role changes and chat timeouts. Which caller roles may invoke
// each operation is decided at the transport layer; this service only
// validates the target.
type Role struct {
	userStore model.UserStore
	rootEmail string
	logger    *logger.Logger
}

func NewRole(userStore model.UserStore, rootEmail string, logger *logger.Logger) *Role {
	return &Role{
		userStore: userStore,
		rootEmail: rootEmail,
		logger:    logger,
	}
}

// PromoteToAdmin grants the admin role, creating the user if absent.
func (s *Role) PromoteToAdmin(ctx context.Context, email string) error {
	return s.setRole(ctx, email, model.RoleAdmin)
}

// DemoteAdmin resets an admin back to user. The target must currently be an
// admin.
func (s *Role) DemoteAdmin(ctx context.Context, email string) error {
	return s.demote(ctx, email, model.RoleAdmin)
}

// PromoteToVIP grants the vip role, creating the user if absent.
func (s *Role) PromoteToVIP(ctx context.Context, email string) error {
	return s.setRole(ctx, email, model.RoleVIP)
}

// DemoteVIP resets a vip back to user. The target must currently be a vip.
func (s *Role) DemoteVIP(ctx context.Context, email string) error {
	return s.demote(ctx, email, model.RoleVIP)
}

// PromoteToSuperVIP grants the super_vip role, creating the user if absent.
func (s *Role) PromoteToSuperVIP(ctx context.Context, email string) error {
	return s.setRole(ctx, email, model.RoleSuperVIP)
}

// DemoteSuperVIP resets a super_vip back to user. The root identity can never
// be demoted.
func (s *Role) DemoteSuperVIP(ctx context.Context, email string) error {
	if email == s.rootEmail {
		return model.ErrProtectedRoot
	}
	return s.demote(ctx, email, model.RoleSuperVIP)
}

// Timeout sets the target's advisory chat timeout to now plus minutes. The
// minute count is taken verbatim, zero and negative values included. A
// super_vip can never be timed out.
func (s *Role) Timeout(ctx context.Context, email string, minutes int) (time.Time, error) {
	target, err := s.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return time.Time{}, model.ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get timeout target: %w", err)
	}

	if target.Role == model.RoleSuperVIP {
		return time.Time{}, model.ErrInvalidTarget
	}

	until := time.Now().Add(time.Duration(minutes) * time.Minute)
	if err := s.userStore.SetTimeout(ctx, email, until); err != nil {
		return time.Time{}, fmt.Errorf("failed to set timeout: %w", err)
	}

	s.logger.Info("Role service: chat timeout set",
		"email", email,
		"until", until)

	return until, nil
}

// setRole overwrites the target's role, creating the user record on the fly
// when the target has never been seen before (create-on-promote).
func (s *Role) setRole(ctx context.Context, email string, role model.Role) error {
	_, err := s.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		_, err := s.userStore.Create(ctx, model.User{
			Email:       email,
			DisplayName: email,
			Role:        role,
		})
		if err != nil {
			return fmt.Errorf("failed to create user on promote: %w", err)
		}

		s.logger.Info("Role service: user created on promote",
			"email", email,
			"role", role)

		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := s.userStore.UpdateRole(ctx, email, role); err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	s.logger.Info("Role service: role changed",
		"email", email,
		"role", role)

	return nil
}

// demote validates that the target currently holds exactly the expected role
// before resetting it to user. Unlike promotion there is no upsert path.
func (s *Role) demote(ctx context.Context, email string, expected model.Role) error {
	target, err := s.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrInvalidTarget
	}
	if err != nil {
		return fmt.Errorf("failed to get demotion target: %w", err)
	}

	if target.Role != expected {
		return model.ErrInvalidTarget
	}

	if err := s.userStore.UpdateRole(ctx, email, model.RoleUser); err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	s.logger.Info("Role service: user demoted",
		"email", email,
		"from", expected)

	return nil
}
