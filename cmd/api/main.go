package main

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/smsactivate/internal/api"
	v1 "github.com/Behyna/sms-services/smsactivate/internal/api/v1"
	"github.com/Behyna/sms-services/smsactivate/internal/api/validator"
	"github.com/Behyna/sms-services/smsactivate/internal/config"
	middleware "github.com/Behyna/sms-services/smsactivate/internal/error"
	"github.com/Behyna/sms-services/smsactivate/internal/metrics"
	"github.com/Behyna/sms-services/smsactivate/internal/service"
	"github.com/Behyna/sms-services/smsactivate/pkg/httpclient"
	"github.com/Behyna/sms-services/smsactivate/pkg/smsactivate"
	playground "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	serviceName = "smsactivate"
	version     = "1.0.0"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			NewLogger,
			NewRegistry,
			NewMetrics,
			NewActivationClient,
			NewValidate,
			validator.NewXValidator,
			service.NewActivationService,
			v1.NewHandler,
			NewFiberApp,
		),
		fx.Invoke(startMetricsCollector, startServer),
	).Run()
}

func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	return cfg.Log.Build()
}

func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func NewMetrics(registry *prometheus.Registry) *metrics.Metrics {
	return metrics.NewMetrics(registry)
}

func NewValidate() *playground.Validate {
	return playground.New()
}

func NewActivationClient(cfg *config.Config) smsactivate.Client {
	return smsactivate.NewClient(cfg.Provider, httpclient.NewHTTPClient(cfg.Provider.Timeout))
}

func NewFiberApp(logger *zap.Logger, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      serviceName,
		ErrorHandler: middleware.ErrorHandler(logger),
		ReadTimeout:  10 * time.Second,
	})
	app.Use(metrics.HealthCheckMiddleware(serviceName))
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	return app
}

func startMetricsCollector(cfg *config.Config, m *metrics.Metrics, logger *zap.Logger, lc fx.Lifecycle) {
	if !cfg.Metrics.Enable {
		return
	}

	collector := metrics.NewSystemCollector(m, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			collector.Start(cfg.Metrics.CollectInterval, version)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			collector.Stop()
			return nil
		},
	})
}

func startServer(app *fiber.App, handler *v1.Handler, registry *prometheus.Registry, cfg *config.Config,
	logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, registry)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			logger.Info("HTTP server started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return app.ShutdownWithContext(ctx)
		},
	})
}
