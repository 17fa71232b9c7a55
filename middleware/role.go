// middleware/role.go
package middleware

import (
	"net/http"

	"myadvisor/models"

	"github.com/gin-gonic/gin"
)

// RequireRole restricts a route to users holding the given role. It must run
// after JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("user")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		usr, ok := value.(models.User)
		if !ok || usr.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// AdminAuthMiddleware restricts a route to admin accounts.
func AdminAuthMiddleware() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}
