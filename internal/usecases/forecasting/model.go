package forecasting

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/vfg2006/banarsibot-api/internal/domain"
	"github.com/vfg2006/banarsibot-api/pkg/utils"
)

const (
	// weekly seasonality is only fitted once two full weeks are observed
	minSeasonalDays = 14
	intervalWidth   = 0.8
)

// DailyCounts buckets sale times per calendar day in loc and fills the gaps
// between the first and last day with zero counts. times need not be sorted.
// Each returned Date is the calendar day at midnight UTC, so DST transitions
// in loc cannot shift or merge days.
func DailyCounts(times []time.Time, loc *time.Location) []domain.DailyCount {
	if len(times) == 0 {
		return nil
	}

	perDay := make(map[time.Time]int, len(times))
	first, last := calendarDay(times[0], loc), calendarDay(times[0], loc)
	for _, t := range times {
		day := calendarDay(t, loc)
		perDay[day]++
		if day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}
	}

	counts := make([]domain.DailyCount, 0)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		counts = append(counts, domain.DailyCount{Date: day, Count: perDay[day]})
	}

	return counts
}

// fit projects horizon days past the last count using a least-squares trend
// plus additive weekday effects.
func fit(counts []domain.DailyCount, horizon int) []domain.ForecastPoint {
	n := len(counts)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, c := range counts {
		xs[i] = float64(i)
		ys[i] = float64(c.Count)
	}

	var alpha, beta float64
	if n < 2 {
		alpha = stat.Mean(ys, nil)
	} else {
		alpha, beta = stat.LinearRegression(xs, ys, nil, false)
	}

	residuals := make([]float64, n)
	for i := range ys {
		residuals[i] = ys[i] - (alpha + beta*xs[i])
	}

	var weekly [7]float64
	if n >= minSeasonalDays {
		var sums [7]float64
		var hits [7]int
		for i, c := range counts {
			wd := c.Date.Weekday()
			sums[wd] += residuals[i]
			hits[wd]++
		}
		for wd := range weekly {
			if hits[wd] > 0 {
				weekly[wd] = sums[wd] / float64(hits[wd])
			}
		}
		for i, c := range counts {
			residuals[i] -= weekly[c.Date.Weekday()]
		}
	}

	halfWidth := distuv.UnitNormal.Quantile(0.5+intervalWidth/2) * residualStdDev(residuals)

	last := counts[n-1].Date
	points := make([]domain.ForecastPoint, 0, horizon)
	for h := 1; h <= horizon; h++ {
		day := last.AddDate(0, 0, h)
		yhat := alpha + beta*float64(n-1+h) + weekly[day.Weekday()]

		points = append(points, domain.ForecastPoint{
			Date:       day,
			Predicted:  utils.RoundWithTwoDecimalPlace(math.Max(0, yhat)),
			LowerBound: utils.RoundWithTwoDecimalPlace(math.Max(0, yhat-halfWidth)),
			UpperBound: utils.RoundWithTwoDecimalPlace(math.Max(0, yhat+halfWidth)),
		})
	}

	return points
}

func residualStdDev(residuals []float64) float64 {
	dof := len(residuals) - 2
	if dof < 1 {
		dof = 1
	}

	var ss float64
	for _, r := range residuals {
		ss += r * r
	}

	return math.Sqrt(ss / float64(dof))
}

func calendarDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
