package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "liberty_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// AuthFailures counts rejected requests on protected routes by reason group.
	AuthFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "liberty_auth_failures_total",
		Help: "Total number of requests rejected by the auth middleware",
	})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-level Prometheus middleware handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
