package calculator

import (
	"errors"
	"math"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/model"
)

// CalculateReturnPct computes the percentage return from the earliest close to
// the latest close. When the provider returned less than the requested window,
// the earliest available close serves as the year-ago anchor; the window is
// never extrapolated.
func CalculateReturnPct(bars []model.OHLCV) (float64, error) {
	if len(bars) < 2 {
		return 0, errors.New("not enough data for return calculation")
	}
	anchor := bars[0].Close
	if anchor == 0 {
		return 0, errors.New("anchor close is zero")
	}
	latest := bars[len(bars)-1].Close
	return (latest - anchor) / anchor * 100, nil
}

// DailyChanges returns the day-over-day percentage change series, in percent.
// Bars following a zero close are skipped.
func DailyChanges(bars []model.OHLCV) []float64 {
	closes := extractCloses(bars)
	if len(closes) < 2 {
		return nil
	}
	changes := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		changes = append(changes, (closes[i]-closes[i-1])/closes[i-1]*100)
	}
	return changes
}

// CalculateVolatility computes the sample standard deviation of the daily
// percentage changes, in percent. Requires at least two changes.
func CalculateVolatility(bars []model.OHLCV) (float64, error) {
	changes := DailyChanges(bars)
	if len(changes) < 2 {
		return 0, errors.New("not enough data for volatility calculation")
	}
	mean := 0.0
	for _, c := range changes {
		mean += c
	}
	mean /= float64(len(changes))

	sum := 0.0
	for _, c := range changes {
		d := c - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(changes)-1)), nil
}
