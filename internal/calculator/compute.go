package calculator

import (
	"errors"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/model"
)

// Compute derives all per-ticker statistics from a price series. Statistics
// the series is too short for come back as undefined indicators, never as
// errors. Deterministic: identical input yields an identical record.
func Compute(series *model.PriceSeries) (*model.TickerMetrics, error) {
	bars := series.Bars
	if len(bars) == 0 {
		return nil, errors.New("empty price series")
	}

	m := &model.TickerMetrics{
		Symbol:       series.Symbol,
		LatestPrice:  bars[len(bars)-1].Close,
		YearAgoPrice: bars[0].Close,
		Bars:         len(bars),
		Trend:        model.TrendNA,
	}

	low, high, err := CalculatePriceRange(bars)
	if err != nil {
		return nil, err
	}
	m.PriceMin = low
	m.PriceMax = high

	if r, err := CalculateReturnPct(bars); err == nil {
		m.ReturnPct = model.Indicator{Value: r, Valid: true}
	}
	if v, err := CalculateVolatility(bars); err == nil {
		m.Volatility = model.Indicator{Value: v, Valid: true}
	}
	m.MA50 = MA50(bars)
	m.MA200 = MA200(bars)

	return m, nil
}
