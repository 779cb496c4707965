package middleware

import (
	"github.com/gin-gonic/gin"
	apperrors "github.com/postboard/postboard-backend/errors"
	"github.com/postboard/postboard-backend/logger"
)

// ErrorHandler renders the last error pushed with c.Error as the JSON error envelope.
// Handlers must not write a response after reporting an error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperrors.StatusFor(err)

		msg := "Unexpected server error"
		if appErr, ok := apperrors.As(err); ok {
			msg = string(appErr.Type) + " error"
		}
		logger.LogHTTPError(c, err, status, msg)

		status, body := apperrors.ToHTTPResponse(err, status)
		c.AbortWithStatusJSON(status, body)
	}
}
