package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vfg2006/banarsibot-api/internal/api/handler/router"
	"github.com/vfg2006/banarsibot-api/internal/usecases/forecasting"
	"github.com/vfg2006/banarsibot-api/internal/usecases/inbound"
	"github.com/vfg2006/banarsibot-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

// Webhook registers the Twilio callback. webhookMiddlewares, such as the
// signature check, run before the handler.
func Webhook(messageHandler inbound.MessageHandler, webhookMiddlewares ...func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:        "/whatsapp",
			Method:      http.MethodPost,
			Handler:     WhatsAppWebhook(messageHandler),
			Middlewares: webhookMiddlewares,
		},
	}
}

func Forecasts(reader forecasting.ForecastReader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/forecast",
			Method:      http.MethodGet,
			Handler:     GetForecast(reader),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
