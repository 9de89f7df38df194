package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "smartval/internal/errors"
)

// APIKeyAuth creates a Gin middleware that validates the X-API-Key header
// against apiKey. An empty apiKey leaves the route open.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(apperrors.ErrUnauthorized.StatusCode, errorBody(apperrors.ErrUnauthorized))
			return
		}
		c.Next()
	}
}
