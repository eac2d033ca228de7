package forecasting

import (
	"context"
	"time"

	"github.com/vfg2006/banarsibot-api/infrastructure/repository"
	"github.com/vfg2006/banarsibot-api/internal/config"
	"github.com/vfg2006/banarsibot-api/internal/domain"
	"github.com/vfg2006/banarsibot-api/pkg/log"
	"github.com/vfg2006/banarsibot-api/pkg/metrics"
)

type Forecaster interface {
	Forecast(ctx context.Context) (*domain.Forecast, error)
}

type Service struct {
	salesRepository repository.SalesRepository
	location        *time.Location
	now             func() time.Time
}

func NewService(salesRepository repository.SalesRepository, cfg *config.Config) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		salesRepository: salesRepository,
		location:        loc,
		now:             time.Now,
	}
}

// Forecast predicts the daily number of sales for the next
// domain.ForecastHorizonDays days from the full sales history.
func (s *Service) Forecast(ctx context.Context) (*domain.Forecast, error) {
	logger := log.ForContext(ctx)

	sales, err := s.salesRepository.ListSales(ctx)
	if err != nil {
		metrics.ForecastRuns.WithLabelValues("failed").Inc()
		return nil, err
	}

	times := make([]time.Time, 0, len(sales))
	skipped := 0
	for _, sale := range sales {
		soldAt, err := sale.SoldAt(s.location)
		if err != nil {
			skipped++
			logger.WithError(err).WithField("sale_timestamp", sale.Timestamp).Warn("forecasting: skipping row with unparsable timestamp")
			continue
		}
		times = append(times, soldAt)
	}

	if len(times) == 0 {
		metrics.ForecastRuns.WithLabelValues("no_history").Inc()
		return nil, ErrNoHistory
	}

	counts := DailyCounts(times, s.location)
	forecast := &domain.Forecast{
		GeneratedAt: s.now().In(s.location),
		HistoryDays: len(counts),
		TotalSales:  len(times),
		Points:      fit(counts, domain.ForecastHorizonDays),
	}

	metrics.ForecastRuns.WithLabelValues("computed").Inc()
	logger.WithFields(log.Fields{
		"forecast_history_days": forecast.HistoryDays,
		"forecast_total_sales":  forecast.TotalSales,
		"forecast_skipped_rows": skipped,
	}).Info("forecasting: forecast computed")

	return forecast, nil
}
