package model

import (
	"context"
	"net/http"
)

// IdentityResolver resolves the acting user for an inbound request. It
// returns ErrNoIdentity when the request carries no usable identity; any
// other error is a store failure.
type IdentityResolver interface {
	Resolve(ctx context.Context, r *http.Request) (User, error)
}

// TokenManager issues and validates bearer tokens carrying a user email.
type TokenManager interface {
	GenerateToken(email string) (string, error)
	ParseToken(tokenString string) (string, error)
}
