package middleware

import (
	"net/http"
	"strings"

	"voyago/utils"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// JWTAuthMiddleware validates the bearer token issued by the external
// identity provider and places the caller's session on the context.
// There is no token refresh here; a bad token is a generic 401.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "insufficient authorization",
			})
			return
		}

		session, err := utils.ExtractSessionFromToken(tokenString)
		if err != nil || session.UserID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "insufficient authorization",
			})
			return
		}

		c.Set(sessionContextKey, session)
		c.Set("userID", session.UserID)
		c.Next()
	}
}
