package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grove_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// FeedPageFetches counts feed page requests by outcome.
	FeedPageFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grove_feed_page_fetches_total",
		Help: "Total number of feed page fetches by outcome",
	}, []string{"outcome"})

	// PostCountRecomputes counts denormalized post-counter recomputations.
	PostCountRecomputes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "grove_post_count_recomputes_total",
		Help: "Total number of post counter recomputations",
	})
)

// InitMetrics creates the fiberprometheus middleware for HTTP-level metrics.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus handler as a Fiber middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
