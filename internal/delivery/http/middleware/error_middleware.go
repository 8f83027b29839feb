package middleware

import (
	"errors"
	"net/http"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors appended to the context onto the response
// envelope. Internal errors carry their diagnostic detail only outside
// production; in production the client gets the mapped message alone.
func ErrorHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			var detail interface{}
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"message", appErr.Message,
					"error", appErr.Err,
					"path", c.Request.URL.Path,
				)
				if !cfg.IsProduction() {
					detail = appErr.Err.Error()
				}
			}
			response.Error(c, appErr.Code, appErr.Message, detail)
			return
		}

		logger.Log.Error("unhandled error", "error", err, "path", c.Request.URL.Path)
		var detail interface{}
		if !cfg.IsProduction() {
			detail = err.Error()
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error", detail)
	}
}
