package middleware

import (
	"context"
	"net/http"
	"strings"

	"sigmagram/internal/domain"
	"sigmagram/internal/modules/auth"
	"sigmagram/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type tokenVerifier interface {
	VerifyAccess(token string) (*jwt.Claims, error)
}

type userLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth authenticates the request from the access_token cookie (with an
// Authorization: Bearer fallback), verifies the claims and loads the user
// row, so downstream handlers see a live account, not just a signed claim.
func Auth(tokens tokenVerifier, users userLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			abortUnauthorized(c, "Missing access token")
			return
		}

		claims, err := tokens.VerifyAccess(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.Subject)
		if err != nil {
			abortUnauthorized(c, "Unknown user")
			return
		}

		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Set("user", user)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.AccessCookieName); err == nil && cookie != "" {
		return cookie
	}

	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
