package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/banarsibot-api/infrastructure/cache/redis"
	"github.com/vfg2006/banarsibot-api/infrastructure/database/gsheets"
	"github.com/vfg2006/banarsibot-api/infrastructure/integrator/groq"
	"github.com/vfg2006/banarsibot-api/infrastructure/integrator/groq/groqclient"
	"github.com/vfg2006/banarsibot-api/infrastructure/integrator/twilio"
	"github.com/vfg2006/banarsibot-api/infrastructure/integrator/twilio/twilioclient"
	"github.com/vfg2006/banarsibot-api/infrastructure/repository"
	"github.com/vfg2006/banarsibot-api/internal/api"
	"github.com/vfg2006/banarsibot-api/internal/config"
	"github.com/vfg2006/banarsibot-api/internal/scheduler"
	"github.com/vfg2006/banarsibot-api/internal/usecases/answering"
	"github.com/vfg2006/banarsibot-api/internal/usecases/authenticating"
	"github.com/vfg2006/banarsibot-api/internal/usecases/forecasting"
	"github.com/vfg2006/banarsibot-api/internal/usecases/inbound"
	"github.com/vfg2006/banarsibot-api/internal/usecases/selling"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sheetConn := sheetsConn(ctx, cfg)
	salesRepo := repository.NewSalesRepository(sheetConn)

	gateway := twilio.New(cfg, twilioclient.NewClient(cfg))

	chatModel := groq.New(cfg, groqclient.NewClient(cfg))

	router := inbound.NewRouter(
		selling.NewService(salesRepo, cfg),
		answering.NewService(chatModel),
		gateway,
	)

	redisClient := redis.NewClient(cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Warn("redis unreachable, forecasts will be recomputed until it recovers")
		}
	}
	forecastCache := redis.NewForecastCache(redisClient, cfg.ForecastSync.CacheTTL)

	forecasts := forecasting.NewCachedService(forecasting.NewService(salesRepo, cfg), forecastCache)

	forecastSync := scheduler.NewForecastSyncService(forecasts, gateway, cfg)
	if err := forecastSync.Start(ctx); err != nil {
		logrus.WithError(err).Error("could not start forecast scheduler")
	}

	server, err := api.New(cfg, api.Dependencies{
		MessageHandler:     router,
		ForecastReader:     forecasts,
		Authenticator:      authenticating.NewService(cfg),
		SignatureValidator: twilioclient.NewSignatureValidator(cfg),
		ForecastSync:       forecastSync,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func sheetsConn(ctx context.Context, cfg *config.Config) *gsheets.Connection {
	conn, err := gsheets.NewConnection(ctx, cfg.Spreadsheet)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to Google Sheets")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("could not open sales spreadsheet")
	}

	logrus.Info("sales spreadsheet opened")
	return conn
}
