package middleware

import (
	"strings"

	"daily-diet/internal/logging"
	"daily-diet/internal/session"
	"daily-diet/internal/util"

	"github.com/gin-gonic/gin"
)

const claimsKey = "currentClaims"

// TokenVerifier is the part of session.Codec the guard needs.
type TokenVerifier interface {
	Verify(token string) (*session.Claims, error)
	Decode(token string) (*session.Claims, error)
}

// AuthMiddleware verifies the session token and stores the verified claims
// in the context. Handlers read them with CurrentClaims and never parse the
// token themselves.
func AuthMiddleware(verifier TokenVerifier, cookieName string, log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFromRequest(c, cookieName)
		if tokenStr == "" {
			util.AbortUnauthorized(c)
			return
		}

		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			args := []any{"path", c.Request.URL.Path, "error", err}
			// unverified, for the log line only
			if claimed, derr := verifier.Decode(tokenStr); derr == nil {
				args = append(args, "claimed_user_id", claimed.UserID)
			}
			log.Warn(c.Request.Context(), "rejected session token", args...)
			util.AbortUnauthorized(c)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// tokenFromRequest reads the session cookie, falling back to a Bearer header.
func tokenFromRequest(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}

// CurrentClaims returns the claims stored by AuthMiddleware.
func CurrentClaims(c *gin.Context) (*session.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*session.Claims)
	if !ok || claims == nil || claims.UserID == "" {
		return nil, false
	}
	return claims, true
}

// SetClaims stores claims the way AuthMiddleware does. Used by tests that
// mount handlers without the guard.
func SetClaims(c *gin.Context, claims *session.Claims) {
	c.Set(claimsKey, claims)
}
