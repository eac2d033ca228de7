package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/vfg2006/banarsibot-api/infrastructure/integrator/twilio/twilioclient"
	"github.com/vfg2006/banarsibot-api/internal/api/handler"
	"github.com/vfg2006/banarsibot-api/internal/api/handler/router"
	"github.com/vfg2006/banarsibot-api/internal/config"
	"github.com/vfg2006/banarsibot-api/internal/usecases/authenticating"
	"github.com/vfg2006/banarsibot-api/internal/usecases/forecasting"
	"github.com/vfg2006/banarsibot-api/internal/usecases/inbound"
	"github.com/vfg2006/banarsibot-api/pkg/log"
	"github.com/vfg2006/banarsibot-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

type Dependencies struct {
	MessageHandler     inbound.MessageHandler
	ForecastReader     forecasting.ForecastReader
	Authenticator      authenticating.Authenticator
	SignatureValidator twilioclient.SignatureValidator
	ForecastSync       handler.SyncJob
}

func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	var webhookMiddlewares []func(http.Handler) http.Handler
	if cfg.Twilio.ValidateSignature {
		if deps.SignatureValidator == nil {
			return nil, fmt.Errorf("twilio signature validation enabled without a validator")
		}
		webhookMiddlewares = append(webhookMiddlewares, middleware.TwilioSignature(deps.SignatureValidator, cfg.Twilio.WebhookURL))
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Webhook(deps.MessageHandler, webhookMiddlewares...)...),
		router.WithRoutes(handler.Forecasts(deps.ForecastReader)...),
		router.WithRoutes(handler.CronJobs(handler.CronJobServices{ForecastSyncService: deps.ForecastSync})...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.AuthMiddleware(deps.Authenticator),
	}

	log.L.WithField("routes", rt.Routes()).Debug("routes registered")

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// Handler exposes the full middleware chain, mainly for tests.
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("interrupt signal received")
	case <-ctx.Done():
		log.L.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("shutting down server")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("error during server shutdown")
		return err
	}

	log.L.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
