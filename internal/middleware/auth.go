package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/auth"
	"cms_backend/internal/logger"
)

// SessionCookie is the name of the login session cookie.
const SessionCookie = "session"

const claimsKey = "sessionClaims"

// AuthRequired validates the session (cookie or bearer header) and stores the
// claims in the gin context. Unauthenticated requests are redirected to the
// login page.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := sessionToken(c)
		if tokenStr == "" {
			redirectToLogin(c)
			return
		}

		claims, err := auth.ParseSessionToken(tokenStr, secret)
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set(claimsKey, claims)
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

// GetClaims extracts the session claims stored by AuthRequired.
func GetClaims(c *gin.Context) *auth.SessionClaims {
	val, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := val.(*auth.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}
