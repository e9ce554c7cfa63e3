package api

import (
	v1 "github.com/Behyna/sms-services/smsactivate/internal/api/v1"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const prefixV1 = "/v1/"

func SetupRoutes(app *fiber.App, handler *v1.Handler, gatherer prometheus.Gatherer) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	app.Get(prefixV1+"balance", handler.GetBalance)
	app.Post(prefixV1+"numbers", handler.CreateNumber)
	app.Get(prefixV1+"activations", handler.GetActiveActivations)
	app.Get(prefixV1+"activations/:id/status", handler.GetStatus)
	app.Post(prefixV1+"activations/:id/status", handler.SetStatus)
	app.Get(prefixV1+"countries", handler.GetCountries)
	app.Get(prefixV1+"prices", handler.GetPrices)
}
