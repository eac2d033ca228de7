package forecasting

import (
	"context"

	"github.com/vfg2006/banarsibot-api/infrastructure/cache/redis"
	"github.com/vfg2006/banarsibot-api/internal/domain"
	"github.com/vfg2006/banarsibot-api/pkg/log"
)

// ForecastReader serves the latest forecast, computing it when the cache
// has none or when refresh is set.
type ForecastReader interface {
	Latest(ctx context.Context, refresh bool) (*domain.Forecast, error)
}

type CachedService struct {
	forecaster Forecaster
	cache      redis.ForecastCache
}

func NewCachedService(forecaster Forecaster, cache redis.ForecastCache) *CachedService {
	return &CachedService{forecaster: forecaster, cache: cache}
}

// Cache failures degrade to recomputation; they never fail the read.
func (s *CachedService) Latest(ctx context.Context, refresh bool) (*domain.Forecast, error) {
	logger := log.ForContext(ctx)

	if !refresh {
		cached, err := s.cache.GetForecast(ctx)
		if err != nil {
			logger.WithError(err).Warn("forecasting: cache read failed, recomputing")
		}
		if cached != nil {
			logger.Debug("forecasting: served from cache")
			return cached, nil
		}
	}

	forecast, err := s.forecaster.Forecast(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetForecast(ctx, forecast); err != nil {
		logger.WithError(err).Warn("forecasting: cache write failed")
	}

	return forecast, nil
}
