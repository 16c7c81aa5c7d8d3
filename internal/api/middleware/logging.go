package middleware

import (
	"log/slog"
	"time"

	"soccer_team/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Создает middleware для структурированного логирования с помощью slog
func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// Создаем логгер с контекстом запроса (request_id кладет middleware.RequestID)
		reqLogger := logger.WithRequestID(c.Request.Context(), log).With(
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("ip", c.ClientIP()),
		)

		// Добавляем логгер в контекст запроса, сервисы достают его через logger.FromContext
		c.Request = c.Request.WithContext(logger.ToContext(c.Request.Context(), reqLogger))

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		// Создаем поля для логирования
		logFields := []any{
			slog.Int("status", statusCode),
			slog.Duration("latency", latency),
			slog.Int("body_size", c.Writer.Size()),
		}

		if raw != "" {
			logFields = append(logFields, slog.String("query", raw))
		}

		if len(c.Errors) > 0 {
			logFields = append(logFields, slog.String("error", c.Errors.String()))
		}

		// Логируем в зависимости от статуса ответа
		switch {
		case statusCode >= 500:
			reqLogger.Error("server error", logFields...)
		case statusCode >= 400:
			reqLogger.Warn("client error", logFields...)
		default:
			reqLogger.Info("request completed", logFields...)
		}
	}
}
