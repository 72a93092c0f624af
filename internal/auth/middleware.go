package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrAdminRequired   = errors.New("admin access required")
)

const userKey = "auth.user"

// Identity resolves the Bearer token and loads the caller onto the context.
// Requests without a valid token are rejected with 401.
func Identity(tokens *Tokens, repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(h, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthenticated.Error()})
			return
		}
		uid, err := tokens.Parse(strings.TrimPrefix(h, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthenticated.Error()})
			return
		}
		u, err := repo.GetByID(c.Request.Context(), uid)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthenticated.Error()})
			return
		}
		c.Set(userKey, u)
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers. Must run after Identity.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok || !u.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": ErrAdminRequired.Error()})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the caller Identity stored on the context.
func CurrentUser(c *gin.Context) (*User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*User)
	return u, ok
}

// SetCurrentUser injects a caller directly; handler tests use it in place
// of the full token round-trip.
func SetCurrentUser(c *gin.Context, u *User) {
	c.Set(userKey, u)
}
