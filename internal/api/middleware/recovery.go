package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"soccer_team/internal/domain"
	"soccer_team/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery отлавливает паники, логирует стек и отвечает INTERNAL_ERROR с request_id
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			requestID := c.GetString(string(logger.RequestIDKey))
			if requestID == "" {
				requestID = "unknown"
			}

			log.Error("panic recovered",
				slog.Any("error", rec),
				slog.String("request_id", requestID),
				slog.String("path", c.Request.URL.Path),
				slog.String("method", c.Request.Method),
				slog.String("stack", string(debug.Stack())),
			)

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":      domain.NewAPIError(domain.CodeInternalError, domain.ErrInternalError.Error()),
				"request_id": requestID,
			})
		}()

		c.Next()
	}
}
