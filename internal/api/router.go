package api

import (
	"log/slog"

	"soccer_team/internal/api/handlers"
	"soccer_team/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterOption func(r *gin.Engine)

// WithMetrics exposes the gatherer in Prometheus text format at path
func WithMetrics(path string, gatherer prometheus.Gatherer) RouterOption {
	return func(r *gin.Engine) {
		r.GET(path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}

func NewRouter(handler *handlers.Handler, logger *slog.Logger, opts ...RouterOption) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))

	handler.RegisterRoutes(r)

	for _, opt := range opts {
		opt(r)
	}

	return r
}
