package metrics_test

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Behyna/sms-services/smsactivate/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.NewMetrics(prometheus.NewRegistry())
		metrics.NewMetrics(prometheus.NewRegistry())
	})
}

func TestMetrics_RecordProviderCall(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())

	m.RecordProviderCall("getBalance", "success", 10*time.Millisecond)
	m.RecordProviderCall("getBalance", "success", 20*time.Millisecond)
	m.RecordProviderCall("getBalance", "transport", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ProviderRequestsTotal.WithLabelValues("getBalance", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProviderRequestsTotal.WithLabelValues("getBalance", "transport")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ProviderRequestDuration))
}

func TestSystemCollector_Collect(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	collector := metrics.NewSystemCollector(m, zap.NewNop())

	collector.Collect()

	assert.Greater(t, testutil.ToFloat64(m.Goroutines), 0.0)
	assert.Greater(t, testutil.ToFloat64(m.MemoryUsageBytes.WithLabelValues("sys")), 0.0)
}

func TestSystemCollector_StartStop(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	collector := metrics.NewSystemCollector(m, zap.NewNop())

	collector.Start(time.Hour, "test")
	collector.Stop()
	collector.Stop()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ServiceVersion.WithLabelValues("test", "unknown", time.Now().Format("2006-01-02"))))
}

func TestSystemCollector_NonPositiveInterval(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	collector := metrics.NewSystemCollector(m, zap.NewNop())

	assert.NotPanics(t, func() {
		collector.Start(0, "test")
	})
	collector.Stop()
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusTeapot).SendString(err.Error())
		},
	})
	app.Use(metrics.HTTPMetricsMiddleware(m, zap.NewNop()))
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/items/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/items/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/fail", "418")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.HTTPRequestsInFlight))
}

func TestHTTPMetricsMiddleware_SkipsScrapeAndProbePaths(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	app := fiber.New()
	app.Use(metrics.HTTPMetricsMiddleware(m, zap.NewNop()))
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendString("# metrics")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, 0, testutil.CollectAndCount(m.HTTPRequestsTotal))
}

func TestHealthCheckMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(metrics.HealthCheckMiddleware("smsactivate"))
	app.Get("/other", func(c *fiber.Ctx) error {
		return c.SendString("other")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/other", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
