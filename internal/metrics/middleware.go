package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const slowRequestThreshold = time.Second

// unobservedPaths are served without being counted, so scrapes and probes
// do not dominate the request series.
var unobservedPaths = map[string]bool{
	"/metrics": true,
	"/health":  true,
	"/ping":    true,
}

// HTTPMetricsMiddleware records count, latency and size per route template. Handler
// errors are rendered here through the app ErrorHandler so the recorded status is the
// one the client receives.
func HTTPMetricsMiddleware(m *Metrics, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if unobservedPaths[c.Path()] {
			return c.Next()
		}

		start := time.Now()
		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		if err := c.Next(); err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		elapsed := time.Since(start)
		route := c.Route().Path
		if route == "" {
			route = c.Path()
		}
		status := strconv.Itoa(c.Response().StatusCode())

		m.RecordHTTPRequest(c.Method(), route, status, elapsed, len(c.Response().Body()))

		if elapsed > slowRequestThreshold {
			logger.Warn("Slow proxy request",
				zap.String("method", c.Method()),
				zap.String("route", route),
				zap.String("status_code", status),
				zap.Duration("duration", elapsed),
			)
		}

		return nil
	}
}

// HealthCheckMiddleware answers /health before routing.
func HealthCheckMiddleware(serviceName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() != "/health" {
			return c.Next()
		}
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   serviceName,
		})
	}
}
