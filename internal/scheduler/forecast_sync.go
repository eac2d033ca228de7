package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"

	"github.com/vfg2006/banarsibot-api/infrastructure/integrator/twilio"
	"github.com/vfg2006/banarsibot-api/internal/config"
	"github.com/vfg2006/banarsibot-api/internal/domain"
	"github.com/vfg2006/banarsibot-api/internal/usecases/forecasting"
	"github.com/vfg2006/banarsibot-api/pkg/log"
	"github.com/vfg2006/banarsibot-api/pkg/utils"
)

const (
	runIDLength = 10
	summaryDays = 7
	runTimeout  = 5 * time.Minute
)

type ForecastSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	NotifyTo     string
}

// ForecastSyncService recomputes the sales forecast on a cron schedule, keeps
// it in the cache and optionally sends the owner a WhatsApp summary.
type ForecastSyncService struct {
	scheduler *gocron.Scheduler
	config    ForecastSyncConfig
	forecasts forecasting.ForecastReader
	gateway   twilio.Gateway
	baseCtx   context.Context

	syncMutex           sync.Mutex
	syncRunning         bool
	lastRunID           string
	lastError           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewForecastSyncService(forecasts forecasting.ForecastReader, gateway twilio.Gateway, appConfig *config.Config) *ForecastSyncService {
	syncConfig := ForecastSyncConfig{
		CronSchedule: appConfig.ForecastSync.CronSchedule,
		SyncEnabled:  appConfig.ForecastSync.Enabled,
		NotifyTo:     appConfig.ForecastSync.NotifyTo,
	}

	loc := appConfig.Location
	if loc == nil {
		loc = time.Local
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"notify":        syncConfig.NotifyTo != "",
	}).Info("scheduler: forecast sync configured")

	return &ForecastSyncService{
		scheduler: gocron.NewScheduler(loc),
		config:    syncConfig,
		forecasts: forecasts,
		gateway:   gateway,
		baseCtx:   context.Background(),
	}
}

func (s *ForecastSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		log.L.Info("scheduler: forecast sync disabled")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.syncForecast)
	if err != nil {
		return errors.Wrapf(err, "scheduler: invalid forecast cron %q", s.config.CronSchedule)
	}

	s.scheduler.StartAsync()
	log.L.WithField("cron", s.config.CronSchedule).Info("scheduler: forecast sync started")

	go func() {
		<-ctx.Done()
		log.L.Info("scheduler: stopping forecast sync")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync starts a run in the background. It reports false when a
// run is already in progress.
func (s *ForecastSyncService) TriggerManualSync() bool {
	runID, ok := s.beginRun()
	if !ok {
		log.L.WithField("run_id", runID).Info("scheduler: forecast sync already running, ignoring manual trigger")
		return false
	}

	go s.execute(runID)
	return true
}

func (s *ForecastSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_run_id":            s.lastRunID,
		"last_error":             s.lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

func (s *ForecastSyncService) syncForecast() {
	runID, ok := s.beginRun()
	if !ok {
		log.L.WithField("run_id", runID).Info("scheduler: forecast sync already running, skipping")
		return
	}

	s.execute(runID)
}

// beginRun claims the running flag. Whoever gets ok must call execute.
func (s *ForecastSyncService) beginRun() (string, bool) {
	runID, err := utils.GenerateID(runIDLength)
	if err != nil {
		runID = fmt.Sprintf("%d", time.Now().UnixNano())
	}

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return runID, false
	}
	s.syncRunning = true
	s.lastRunID = runID
	s.lastSyncStartedAt = time.Now()

	return runID, true
}

func (s *ForecastSyncService) execute(runID string) {
	ctx, correlationID := log.WithCorrelationID(s.baseCtx)
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	logger := log.ForContext(ctx).WithField("run_id", runID)
	logger.WithField("correlation_id", correlationID).Info("scheduler: forecast sync started")

	runErr := s.run(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastError = ""
	if runErr != nil {
		s.lastError = runErr.Error()
	} else {
		s.lastSyncCompletedAt = time.Now()
	}
	s.syncMutex.Unlock()

	if runErr != nil {
		logger.WithError(runErr).Error("scheduler: forecast sync failed")
		return
	}
	logger.Info("scheduler: forecast sync completed")
}

func (s *ForecastSyncService) run(ctx context.Context) error {
	forecast, err := s.forecasts.Latest(ctx, true)
	if err != nil {
		return err
	}

	if s.config.NotifyTo == "" {
		return nil
	}

	if err := s.gateway.SendText(ctx, s.config.NotifyTo, Summary(forecast)); err != nil {
		return errors.Wrap(err, "send forecast summary")
	}

	return nil
}

// Summary renders the next-week outlook of a forecast as one chat message.
func Summary(forecast *domain.Forecast) string {
	points := forecast.Points
	if len(points) > summaryDays {
		points = points[:summaryDays]
	}
	if len(points) == 0 {
		return "Sales forecast: not enough data yet."
	}

	var total float64
	peak := points[0]
	for _, p := range points {
		total += p.Predicted
		if p.Predicted > peak.Predicted {
			peak = p
		}
	}

	return fmt.Sprintf("Sales forecast for the next %d days: about %.0f saris. Busiest day: %s (about %.1f).",
		len(points), total, peak.Date.Format("Mon 02 Jan"), peak.Predicted)
}
