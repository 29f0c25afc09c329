package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/clubfeed-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	query := `SELECT id, email, display_name, avatar_url, role, timeout_until
			  FROM users WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.DisplayName, &user.AvatarURL, &user.Role, &user.TimeoutUntil,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (email, display_name, avatar_url, role)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, email, display_name, avatar_url, role, timeout_until`

	var savedUser model.User
	err := r.db.QueryRow(ctx, query,
		user.Email, user.DisplayName, user.AvatarURL, string(user.Role),
	).Scan(
		&savedUser.ID, &savedUser.Email, &savedUser.DisplayName, &savedUser.AvatarURL,
		&savedUser.Role, &savedUser.TimeoutUntil,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, email string, role model.Role) error {
	const query = `UPDATE users SET role = $2 WHERE email = $1`
	cmd, err := r.db.Exec(ctx, query, email, string(role))
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetTimeout(ctx context.Context, email string, until time.Time) error {
	const query = `UPDATE users SET timeout_until = $2 WHERE email = $1`
	cmd, err := r.db.Exec(ctx, query, email, until)
	if err != nil {
		return fmt.Errorf("failed to set timeout: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// EnsureRoot provisions the root identity and forces it back to super_vip,
// so the root invariant survives restarts even if the row was tampered with.
func (r *UserRepository) EnsureRoot(ctx context.Context, email, displayName string) error {
	query := `INSERT INTO users (email, display_name, avatar_url, role)
			  VALUES ($1, $2, '', $3)
			  ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role`

	if _, err := r.db.Exec(ctx, query, email, displayName, string(model.RoleSuperVIP)); err != nil {
		return fmt.Errorf("failed to ensure root user: %w", err)
	}
	return nil
}
