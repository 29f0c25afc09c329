package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dtroode/clubfeed-server/internal/model"
)

var _ model.IdentityResolver = (*Bearer)(nil)

// Bearer resolves identity from an Authorization bearer token whose claims
// carry the user email.
type Bearer struct {
	tokenManager model.TokenManager
	userStore    model.UserStore
}

// NewBearer creates a token-based resolver.
func NewBearer(tokenManager model.TokenManager, userStore model.UserStore) *Bearer {
	return &Bearer{
		tokenManager: tokenManager,
		userStore:    userStore,
	}
}

// Resolve parses the Authorization header and loads the token's user. A
// missing header, an invalid token and an unknown user all resolve to no
// identity rather than an error.
func (b *Bearer) Resolve(ctx context.Context, r *http.Request) (model.User, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return model.User{}, model.ErrNoIdentity
	}

	email, err := b.tokenManager.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return model.User{}, model.ErrNoIdentity
	}

	user, err := b.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrNoIdentity
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}
