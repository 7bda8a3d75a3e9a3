package middleware

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/jwt"
)

// Auth decodes the bearer token when one is present and exposes the identity
// to downstream handlers. It never aborts: public routes keep working without
// a credential, and RequireLogin decides what a missing or bad token means.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if token == "" || token == authHeader {
			c.Next()
			return
		}

		userID, role, err := jwt.VerifyToken(secret, token)
		if err != nil {
			log.Printf("token rejected: %v", err)
			c.Set("TokenInvalid", true)
			c.Next()
			return
		}

		c.Set("UserID", userID)
		c.Set("Role", role)
		c.Next()
	}
}
