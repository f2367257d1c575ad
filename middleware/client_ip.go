package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientAddr resolves the caller's IP for per-IP rate limiting. Proxy
// headers take precedence over the socket address: X-Forwarded-For's
// first entry is the originating client.
func clientAddr(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
		if first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		return xri
	}

	// RemoteAddr is usually "ip:port".
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
