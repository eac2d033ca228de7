package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/banarsibot-api/internal/usecases/forecasting"
	"github.com/vfg2006/banarsibot-api/pkg/apiErrors"
	"github.com/vfg2006/banarsibot-api/pkg/log"
)

// GetForecast serves the latest sales forecast; ?refresh=true recomputes it.
func GetForecast(reader forecasting.ForecastReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refresh := false
		if raw := r.URL.Query().Get("refresh"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "refresh must be a boolean", map[string]string{"refresh": raw})
				return
			}
			refresh = parsed
		}

		forecast, err := reader.Latest(r.Context(), refresh)
		if errors.Is(err, forecasting.ErrNoHistory) {
			apiErrors.WriteError(w, apiErrors.ErrNoSalesHistory, "No sales recorded yet", nil)
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("forecast: computation failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Could not compute forecast", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, forecast)
	}
}
