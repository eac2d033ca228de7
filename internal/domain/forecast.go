package domain

import "time"

// ForecastHorizonDays is the number of future days every forecast covers.
const ForecastHorizonDays = 30

type ForecastPoint struct {
	Date       time.Time `json:"date"`
	Predicted  float64   `json:"predicted"`
	LowerBound float64   `json:"lower_bound"`
	UpperBound float64   `json:"upper_bound"`
}

type Forecast struct {
	GeneratedAt time.Time       `json:"generated_at"`
	HistoryDays int             `json:"history_days"`
	TotalSales  int             `json:"total_sales"`
	Points      []ForecastPoint `json:"points"`
}

// DailyCount is the number of sales logged on one calendar day.
type DailyCount struct {
	Date  time.Time
	Count int
}
