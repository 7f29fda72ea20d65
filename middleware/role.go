package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates an endpoint on the role claim carried in the token. The
// role is an informational tag set at registration; this is a convenience
// filter, not a hardened authorization boundary.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := c.GetString("role")
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient role",
			})
			return
		}
		c.Next()
	}
}
