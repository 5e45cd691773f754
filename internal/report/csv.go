package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/model"
)

// csvHeader is the fixed column order of the export file.
var csvHeader = []string{"symbol", "return_pct", "volatility", "price_min", "price_max", "ma50", "ma200", "trend"}

// CSVRow renders one metrics record with the same formatting the console
// table uses.
func CSVRow(m *model.TickerMetrics) []string {
	return []string{
		m.Symbol,
		FormatReturn(m.ReturnPct),
		FormatVolatility(m.Volatility),
		FormatPrice(m.PriceMin),
		FormatPrice(m.PriceMax),
		FormatIndicator(m.MA50),
		FormatIndicator(m.MA200),
		string(m.Trend),
	}
}

// WriteCSV writes a header row plus one row per analyzed ticker, overwriting
// any previous file at path.
func WriteCSV(path string, rs *model.ResultSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range rs.Metrics {
		if err := w.Write(CSVRow(&rs.Metrics[i])); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
