package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/response"
	"github.com/studytrack/studytrack-backend/internal/service"
)

const (
	// ContextKeyClaims is the Gin context key for verified token claims.
	ContextKeyClaims = "claims"
)

// RequireAuth validates the session token and stores its claims in the
// context. The token is read from the HTTP-only cookie first, then from the
// Authorization bearer header; when both are present the cookie wins. Every
// verification failure maps to a single 401, never a retry hint.
func RequireAuth(authService *service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c, cookieName)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		claims, err := authService.Verify(tokenStr)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireRoles permits the request only when the verified identity's role
// is one of the allowed roles. A valid token with the wrong role gets 403,
// distinct from the 401 of a missing or invalid token.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
	}
}

// GetClaims retrieves the verified token claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}

// extractToken pulls the session token from the request. Cookie takes
// precedence over the Authorization header as a fixed tie-break.
func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	return ""
}
