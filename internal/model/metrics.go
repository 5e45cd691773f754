package model

import "time"

// Indicator is a statistic that may be undefined when the series is too short.
type Indicator struct {
	Value float64
	Valid bool
}

// Trend classifies the latest price against its moving averages.
type Trend string

const (
	TrendBullish Trend = "BULLISH"
	TrendNeutral Trend = "NEUTRAL"
	TrendBearish Trend = "BEARISH"
	TrendNA      Trend = "N/A"
)

// Description returns the short label used in per-ticker reports.
func (t Trend) Description() string {
	switch t {
	case TrendBullish:
		return "Strong uptrend"
	case TrendNeutral:
		return "Mixed signals"
	case TrendBearish:
		return "Downtrend"
	default:
		return "Insufficient data"
	}
}

// TickerMetrics holds all statistics computed for one ticker.
type TickerMetrics struct {
	Symbol       string
	LatestPrice  float64
	YearAgoPrice float64
	PriceMin     float64
	PriceMax     float64
	ReturnPct    Indicator
	Volatility   Indicator
	MA50         Indicator
	MA200        Indicator
	Trend        Trend
	Bars         int
}

// Failure records a ticker whose retrieval failed.
type Failure struct {
	Symbol string
	Err    error
}

// ResultSet collects one run's metrics and failures in input order.
// Best and Worst index into Metrics; both are -1 when no ticker has a
// defined return.
type ResultSet struct {
	Metrics     []TickerMetrics
	Failures    []Failure
	Best        int
	Worst       int
	GeneratedAt time.Time
}
