package middleware

import (
	"errors"
	"net/http"

	"github.com/studevo/Studevo/internal/delivery/http/response"
	"github.com/studevo/Studevo/internal/domain"
	"github.com/studevo/Studevo/pkg/apperror"
	"github.com/studevo/Studevo/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Kind == apperror.KindInternal {
				logError(c, appErr)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// Never expose internal error details to clients.
		logError(c, err)
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
}

func logError(c *gin.Context, err error) {
	cause := err
	if inner := errors.Unwrap(err); inner != nil {
		cause = inner
	}
	logger.Log.Errorw("request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"request_id", c.GetString(string(domain.KeyRequestID)),
		"error", cause,
	)
}
