package calculator

import (
	"errors"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/model"
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// MA50 returns the trailing 50-day simple moving average, or an undefined
// indicator when the series is too short.
func MA50(bars []model.OHLCV) model.Indicator {
	return smaIndicator(bars, 50)
}

// MA200 returns the trailing 200-day simple moving average, or an undefined
// indicator when the series is too short.
func MA200(bars []model.OHLCV) model.Indicator {
	return smaIndicator(bars, 200)
}

func smaIndicator(bars []model.OHLCV, period int) model.Indicator {
	ma, err := CalculateSMA(extractCloses(bars), period)
	if err != nil {
		return model.Indicator{}
	}
	return model.Indicator{Value: ma, Valid: true}
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
