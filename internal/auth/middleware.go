package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// validates bearer tokens and adds the subject email to context
func (t *TokenIssuer) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		email, err := t.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_email", email)

		c.Next()
	}
}

// extracts the authenticated email from context after Middleware
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("user_email")

	if !exists {
		return "", false
	}

	return email.(string), true
}
