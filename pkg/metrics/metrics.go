package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InboundMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "banarsibot_inbound_messages_total",
			Help: "Inbound WhatsApp messages by route",
		},
		[]string{"route"},
	)

	SalesLogged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "banarsibot_sales_logged_total",
			Help: "Sale commands by outcome (logged, invalid_format, failed)",
		},
		[]string{"outcome"},
	)

	ExternalCallFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "banarsibot_external_call_failures_total",
			Help: "Failed calls to external services",
		},
		[]string{"service"},
	)

	ExternalCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "banarsibot_external_call_duration_seconds",
			Help:    "Duration of calls to external services",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "banarsibot_http_requests_total",
			Help: "HTTP requests by method and status code",
		},
		[]string{"method", "status_code"},
	)

	ForecastRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "banarsibot_forecast_runs_total",
			Help: "Forecast computations by outcome",
		},
		[]string{"outcome"},
	)
)

const (
	ServiceTwilio = "twilio"
	ServiceSheets = "sheets"
	ServiceGroq   = "groq"
	ServiceRedis  = "redis"
)
