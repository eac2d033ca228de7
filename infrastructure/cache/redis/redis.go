package redis

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"

	"github.com/vfg2006/banarsibot-api/internal/config"
	"github.com/vfg2006/banarsibot-api/internal/domain"
	"github.com/vfg2006/banarsibot-api/pkg/log"
	"github.com/vfg2006/banarsibot-api/pkg/metrics"
)

const ForecastKey = "banarsibot:forecast:latest"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ForecastCache keeps the most recent forecast. A miss is (nil, nil).
type ForecastCache interface {
	GetForecast(ctx context.Context) (*domain.Forecast, error)
	SetForecast(ctx context.Context, forecast *domain.Forecast) error
}

// NewClient returns nil when no address is configured.
func NewClient(cfg config.Redis) *goredis.Client {
	if cfg.Addr == "" {
		return nil
	}

	return goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

type forecastCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewForecastCache falls back to a cache that stores nothing when client is nil.
func NewForecastCache(client *goredis.Client, ttl time.Duration) ForecastCache {
	if client == nil {
		return noopCache{}
	}
	return &forecastCache{client: client, ttl: ttl}
}

func (c *forecastCache) GetForecast(ctx context.Context) (*domain.Forecast, error) {
	started := time.Now()
	data, err := c.client.Get(ctx, ForecastKey).Bytes()
	metrics.ExternalCallDuration.WithLabelValues(metrics.ServiceRedis).Observe(time.Since(started).Seconds())
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		metrics.ExternalCallFailures.WithLabelValues(metrics.ServiceRedis).Inc()
		return nil, errors.Wrap(err, "redis: get forecast")
	}

	var forecast domain.Forecast
	if err := json.Unmarshal(data, &forecast); err != nil {
		log.ForContext(ctx).WithError(err).Warn("redis: discarding undecodable cached forecast")
		return nil, nil
	}

	return &forecast, nil
}

func (c *forecastCache) SetForecast(ctx context.Context, forecast *domain.Forecast) error {
	data, err := json.Marshal(forecast)
	if err != nil {
		return errors.Wrap(err, "redis: encode forecast")
	}

	started := time.Now()
	err = c.client.Set(ctx, ForecastKey, data, c.ttl).Err()
	metrics.ExternalCallDuration.WithLabelValues(metrics.ServiceRedis).Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.ExternalCallFailures.WithLabelValues(metrics.ServiceRedis).Inc()
		return errors.Wrap(err, "redis: set forecast")
	}

	return nil
}

type noopCache struct{}

func (noopCache) GetForecast(context.Context) (*domain.Forecast, error) { return nil, nil }

func (noopCache) SetForecast(context.Context, *domain.Forecast) error { return nil }
