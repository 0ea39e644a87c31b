package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devconnector/devconnector/pkg/helpers"
	"github.com/devconnector/devconnector/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth verifies the bearer credential and injects the caller's user id into
// the Gin context. The token travels in the x-auth-token header; a standard
// Authorization bearer header is accepted as well. A missing credential and
// an invalid one are reported distinctly.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing auth token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid auth token", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if t := strings.TrimSpace(c.GetHeader("x-auth-token")); t != "" {
		return t
	}
	ah := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(ah), "bearer ") {
		return strings.TrimSpace(ah[len("bearer "):])
	}
	return ""
}
