// Package identity provides IdentityResolver implementations. The resolver
// is the swap point for real authentication: the permission checks in the
// transport layer only see the resolved user.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dtroode/clubfeed-server/internal/model"
)

var _ model.IdentityResolver = (*Static)(nil)

// Static resolves every request to the configured root identity, ignoring
// the request entirely. It stands in for a real session mechanism.
type Static struct {
	userStore model.UserStore
	rootEmail string
}

// NewStatic creates a resolver fixed to the root identity.
func NewStatic(userStore model.UserStore, rootEmail string) *Static {
	return &Static{
		userStore: userStore,
		rootEmail: rootEmail,
	}
}

// Resolve returns the root user regardless of the request.
func (s *Static) Resolve(ctx context.Context, _ *http.Request) (model.User, error) {
	user, err := s.userStore.GetByEmail(ctx, s.rootEmail)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrNoIdentity
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get root user: %w", err)
	}

	return user, nil
}
