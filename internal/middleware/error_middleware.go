package middleware

import (
	"errors"
	"net/http"

	"nanumi/internal/transport/httpdto"
	"nanumi/pkg/apperrors"
	"nanumi/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns business errors attached by handlers into HTTP
// responses. Expected outcomes (not found, duplicate) get their own
// statuses; everything else is a 500.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, code := statusFor(err)
		if l != nil && status >= http.StatusInternalServerError {
			l.Errorf("request error: %s", err.Error())
		}
		c.JSON(status, httpdto.NewErrorResponse(err.Error(), code))
	}
}

func statusFor(err error) (int, string) {
	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, apperrors.ErrDuplicateChatRoom),
		errors.Is(err, apperrors.ErrDuplicateMatch):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_REQUEST"
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "STORE_UNAVAILABLE"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
