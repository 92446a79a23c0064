package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIP resolves the caller's address for rate limiting. The API sits
// behind the clinic's reverse proxy in production, so forwarding headers win
// over the socket address.
func clientIP(c *gin.Context) string {
	// X-Forwarded-For may carry a proxy chain; the first entry is the client.
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0]); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		return xri
	}

	// Direct connection: strip the port from "ip:port" if present.
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
