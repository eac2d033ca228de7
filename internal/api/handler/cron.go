package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/banarsibot-api/pkg/apiErrors"
	"github.com/vfg2006/banarsibot-api/pkg/log"
)

const (
	CronJobTypeForecast = "forecast"
	CronJobTypeAll      = "all"
)

// SyncJob is a scheduled job that can also be started by hand.
type SyncJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

type CronJobServices struct {
	ForecastSyncService SyncJob
}

func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type is required", nil)
			return
		}

		switch cronType {
		case CronJobTypeForecast, CronJobTypeAll:
			if services.ForecastSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "Forecast sync is not available", nil)
				return
			}

			started := services.ForecastSyncService.TriggerManualSync()
			log.ForContext(r.Context()).WithFields(log.Fields{
				"cron_type": cronType,
				"started":   started,
			}).Info("cron: manual run requested")

			message := "Cron job started"
			if !started {
				message = "Cron job already running"
			}

			writeJSON(w, r, http.StatusAccepted, map[string]any{
				"message": message,
				"type":    cronType,
				"started": started,
			})
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: forecast, all", map[string]string{"type": cronType})
		}
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ForecastSyncService != nil {
			status[CronJobTypeForecast] = services.ForecastSyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
