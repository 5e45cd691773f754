package report

import (
	"fmt"
	"strings"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/model"
)

const divider = "============================================================"

// Banner renders a titled banner block.
func Banner(title string) string {
	return divider + "\n" + title + "\n" + divider
}

// Render builds the full console report: one section per analyzed ticker, the
// comparison table, the best/worst summary, and the skipped-ticker list.
func Render(rs *model.ResultSet) string {
	var b strings.Builder

	for i := range rs.Metrics {
		writeTickerSection(&b, &rs.Metrics[i])
	}

	b.WriteString("\n" + Banner("COMPARISON TABLE") + "\n")
	b.WriteString(fmt.Sprintf("%-8s %10s %10s %12s %10s %10s %10s %10s  %s\n",
		"Ticker", "Latest", "Return %", "Volatility %", "Min", "Max", "MA50", "MA200", "Trend"))
	for i := range rs.Metrics {
		m := &rs.Metrics[i]
		b.WriteString(fmt.Sprintf("%-8s %10s %10s %12s %10s %10s %10s %10s  %s\n",
			m.Symbol,
			FormatPrice(m.LatestPrice),
			FormatReturn(m.ReturnPct),
			FormatVolatility(m.Volatility),
			FormatPrice(m.PriceMin),
			FormatPrice(m.PriceMax),
			FormatIndicator(m.MA50),
			FormatIndicator(m.MA200),
			trendCell(m.Trend)))
	}

	if rs.Best >= 0 && rs.Worst >= 0 {
		best := rs.Metrics[rs.Best]
		worst := rs.Metrics[rs.Worst]
		b.WriteString("\n" + divider + "\n")
		b.WriteString(fmt.Sprintf("🏆 BEST PERFORMER: %s (%+.2f%%)\n", best.Symbol, best.ReturnPct.Value))
		b.WriteString(fmt.Sprintf("📉 WORST PERFORMER: %s (%+.2f%%)\n", worst.Symbol, worst.ReturnPct.Value))
		b.WriteString(divider + "\n")
	}

	if len(rs.Failures) > 0 {
		b.WriteString("\n" + Banner("TICKERS SKIPPED") + "\n")
		for _, f := range rs.Failures {
			b.WriteString(fmt.Sprintf("- %s: %v\n", f.Symbol, f.Err))
		}
	}

	return b.String()
}

func writeTickerSection(b *strings.Builder, m *model.TickerMetrics) {
	b.WriteString("\n" + Banner("ANALYZING: "+m.Symbol) + "\n")
	b.WriteString(fmt.Sprintf("Highest price: $%s\n", FormatPrice(m.PriceMax)))
	b.WriteString(fmt.Sprintf("Lowest price:  $%s\n", FormatPrice(m.PriceMin)))
	b.WriteString(fmt.Sprintf("Start price:   $%s\n", FormatPrice(m.YearAgoPrice)))
	b.WriteString(fmt.Sprintf("Latest price:  $%s\n", FormatPrice(m.LatestPrice)))
	if m.ReturnPct.Valid {
		b.WriteString(fmt.Sprintf("1Y Return:     %+.2f%%\n", m.ReturnPct.Value))
	} else {
		b.WriteString("1Y Return:     N/A\n")
	}
	if m.Volatility.Valid {
		b.WriteString(fmt.Sprintf("Volatility:    %.4f%%\n", m.Volatility.Value))
	} else {
		b.WriteString("Volatility:    N/A\n")
	}
	if m.MA50.Valid {
		b.WriteString(fmt.Sprintf("50-Day MA:     $%s\n", FormatPrice(m.MA50.Value)))
	}
	if m.MA200.Valid {
		b.WriteString(fmt.Sprintf("200-Day MA:    $%s\n", FormatPrice(m.MA200.Value)))
	}
	b.WriteString(fmt.Sprintf("Trend:         %s (%s)\n", trendCell(m.Trend), m.Trend.Description()))
}
