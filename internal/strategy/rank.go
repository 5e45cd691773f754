package strategy

import "github.com/maheswardileep829-blip/stock-analyzer/internal/model"

// Rank returns the indices of the best and worst performer by return over the
// given metrics. Only tickers with a defined return participate; ties keep
// the first occurrence in input order. Returns (-1, -1) when no ticker has a
// defined return. Best and worst may be the same index when exactly one
// ticker qualifies.
func Rank(metrics []model.TickerMetrics) (best, worst int) {
	best, worst = -1, -1
	for i := range metrics {
		r := metrics[i].ReturnPct
		if !r.Valid {
			continue
		}
		if best == -1 || r.Value > metrics[best].ReturnPct.Value {
			best = i
		}
		if worst == -1 || r.Value < metrics[worst].ReturnPct.Value {
			worst = i
		}
	}
	return best, worst
}
