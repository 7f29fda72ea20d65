package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP prefers the forwarded header so deployments behind a proxy
// still rate-limit per real client.
func getClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.ClientIP()
}
