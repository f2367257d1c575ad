package middleware

import (
	"voyago/models"

	"github.com/gin-gonic/gin"
)

// SessionFromContext returns the authenticated caller's session placed
// by JWTAuthMiddleware.
func SessionFromContext(c *gin.Context) (models.Session, bool) {
	val, exists := c.Get(sessionContextKey)
	if !exists {
		return models.Session{}, false
	}
	session, ok := val.(models.Session)
	return session, ok
}
