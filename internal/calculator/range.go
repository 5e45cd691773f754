package calculator

import (
	"errors"
	"math"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/model"
)

// CalculatePriceRange scans all closes of the series and returns the low and
// high bounds.
func CalculatePriceRange(bars []model.OHLCV) (low, high float64, err error) {
	if len(bars) == 0 {
		return 0, 0, errors.New("no bars provided")
	}
	low = math.Inf(1)
	high = math.Inf(-1)
	for _, b := range bars {
		if b.Close < low {
			low = b.Close
		}
		if b.Close > high {
			high = b.Close
		}
	}
	return low, high, nil
}
