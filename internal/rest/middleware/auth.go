package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/conduit-labs/conduit/internal/auth"
)

const (
	// CtxUserIDKey is where the authenticated user id lives on the gin context.
	CtxUserIDKey = "user_id"
	// CtxUsernameKey is where the authenticated username lives on the gin context.
	CtxUsernameKey = "username"
)

// AuthRequired rejects requests without a valid session token.
func AuthRequired(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims, err := tokens.Validate(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)
		c.Next()
	}
}

// AuthOptional lets anonymous requests through, but a token that is
// present and invalid is still rejected.
func AuthOptional(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}
		claims, err := tokens.Validate(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)
		c.Next()
	}
}

// ViewerID resolves the caller's id, 0 when anonymous.
func ViewerID(c *gin.Context) int64 {
	if v, ok := c.Get(CtxUserIDKey); ok {
		return v.(int64)
	}
	return 0
}

// extractToken reads the Authorization header. Exactly two scheme
// prefixes are recognized; anything else counts as "no token".
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if parts[0] != "Token" && parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
