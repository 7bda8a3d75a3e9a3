package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
)

// RequireAdmin aborts with 403 unless the decoded identity carries the admin
// role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("Role")
		if !exists || role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "admin permission required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
