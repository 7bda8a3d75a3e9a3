package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireLogin aborts with 401 when no credential was supplied and 403 when
// one was supplied but failed verification.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("UserID"); exists {
			c.Next()
			return
		}

		if _, invalid := c.Get("TokenInvalid"); invalid {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "invalid token",
			})
			c.Abort()
			return
		}

		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "not logged in",
		})
		c.Abort()
	}
}
