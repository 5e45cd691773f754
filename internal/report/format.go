package report

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/model"
)

// The table and the CSV export share these helpers so displayed and exported
// values never diverge.

// FormatPrice renders prices and price-scale values with two decimals.
func FormatPrice(v float64) string { return fmt.Sprintf("%.2f", v) }

// FormatIndicator renders a price-scale indicator, or N/A when undefined.
func FormatIndicator(ind model.Indicator) string {
	if !ind.Valid {
		return "N/A"
	}
	return FormatPrice(ind.Value)
}

// FormatReturn renders the percentage return with two decimals, or N/A.
func FormatReturn(ind model.Indicator) string {
	if !ind.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", ind.Value)
}

// FormatVolatility renders volatility with four decimals, or N/A.
func FormatVolatility(ind model.Indicator) string {
	if !ind.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", ind.Value)
}

var (
	bullish = color.New(color.FgGreen)
	neutral = color.New(color.FgYellow)
	bearish = color.New(color.FgRed)
)

// trendCell colors the trend label for the console; the underlying string is
// identical to the CSV value.
func trendCell(t model.Trend) string {
	switch t {
	case model.TrendBullish:
		return bullish.Sprint(string(t))
	case model.TrendNeutral:
		return neutral.Sprint(string(t))
	case model.TrendBearish:
		return bearish.Sprint(string(t))
	default:
		return string(t)
	}
}
