package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// APIKey guards mutating routes with a shared key. When API_KEY is unset the
// middleware is a no-op so local development stays friction free.
func APIKey() gin.HandlerFunc {
	expected := os.Getenv("API_KEY")

	return func(c *gin.Context) {
		if expected == "" {
			c.Next()
			return
		}

		key := c.GetHeader("X-API-Key")
		if key != expected {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "invalid API key",
			})
			return
		}

		c.Next()
	}
}
