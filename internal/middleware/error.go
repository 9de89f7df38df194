package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "smartval/internal/errors"
	"smartval/internal/logger"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into consistent JSON error responses. AppErrors are returned with
// their code and message; unexpected errors are logged and return a generic
// internal error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				logger.Get().Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
					"request_id", c.GetString(requestIDKey),
				)
			}
			c.JSON(appErr.StatusCode, errorBody(appErr))
			return
		}

		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", c.GetString(requestIDKey),
		)
		c.JSON(apperrors.ErrInternalServer.StatusCode, errorBody(apperrors.ErrInternalServer))
	}
}

func errorBody(e *apperrors.AppError) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    e.Code,
			"message": e.Message,
		},
	}
}
