package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/clubfeed-server/internal/logger"
	"github.com/dtroode/clubfeed-server/internal/model"
)

const userContextKey = "clubfeed_user"

// Authenticate resolves the acting identity and injects it into the gin
// context. Requests without an identity pass through; the per-route gates
// below decide whether that matters.
type Authenticate struct {
	resolver model.IdentityResolver
	logger   *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver model.IdentityResolver, logger *logger.Logger) *Authenticate {
	return &Authenticate{resolver: resolver, logger: logger}
}

// Handle resolves the identity for every request.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.resolver.Resolve(c.Request.Context(), c.Request)
		if err != nil {
			if !errors.Is(err, model.ErrNoIdentity) {
				m.logger.Error("Authenticate middleware: identity resolution failed",
					"path", c.Request.URL.Path,
					"error", err.Error())
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			c.Next()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the resolved identity stored by Authenticate.
func CurrentUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

// SetCurrentUser injects an identity directly, bypassing resolution. Used in
// handler tests.
func SetCurrentUser(c *gin.Context, user model.User) {
	c.Set(userContextKey, user)
}

// RequireIdentity rejects requests for which no identity resolved.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.Next()
	}
}

// RequireRole rejects requests whose identity is missing (401) or whose role
// is not in the allowed set (403). The allowed sets are declared per route;
// they are data, not a rank comparison.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
