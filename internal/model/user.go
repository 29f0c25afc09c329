package model

import (
	"context"
	"time"
)

// Role is the sole authorization attribute of a user.
type Role string

const (
	// RoleUser is the default role with read and comment/like access.
	RoleUser Role = "user"
	// RoleAdmin can create, edit and delete posts.
	RoleAdmin Role = "admin"
	// RoleVIP can additionally manage admins and issue chat timeouts.
	RoleVIP Role = "vip"
	// RoleSuperVIP can manage every role below it.
	RoleSuperVIP Role = "super_vip"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateRole(ctx context.Context, email string, role Role) error
	SetTimeout(ctx context.Context, email string, until time.Time) error
	EnsureRoot(ctx context.Context, email, displayName string) error
}

// User represents a stored user. TimeoutUntil is advisory state for chat
// moderation; nothing in this server enforces it.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	DisplayName  string     `json:"display_name"`
	AvatarURL    string     `json:"avatar_url"`
	Role         Role       `json:"role"`
	TimeoutUntil *time.Time `json:"timeout_until"`
}
