package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side and send the fixed generic message.
				slog.Error("unexpected handler error",
					"error", err,
					"request_id", RequestIDFromContext(c),
					"path", c.Request.URL.Path)
				response.Error(c, http.StatusInternalServerError, usecase.MsgUnexpected)
			}
		}
	}
}
