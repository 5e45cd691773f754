package strategy

import "github.com/maheswardileep829-blip/stock-analyzer/internal/model"

// Classify maps the latest price and its moving averages to a trend signal.
// Rules are evaluated top to bottom, first match wins:
//
//	latest > MA50 and MA50 > MA200 -> BULLISH
//	latest > MA50                  -> NEUTRAL
//	otherwise                      -> BEARISH
//
// Pure function: no history dependence, identical inputs always yield the
// same signal.
func Classify(latest, ma50, ma200 float64) model.Trend {
	switch {
	case latest > ma50 && ma50 > ma200:
		return model.TrendBullish
	case latest > ma50:
		return model.TrendNeutral
	default:
		return model.TrendBearish
	}
}
