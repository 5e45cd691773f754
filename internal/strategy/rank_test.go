package strategy

import (
	"testing"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/model"
)

func withReturn(symbol string, pct float64) model.TickerMetrics {
	return model.TickerMetrics{
		Symbol:    symbol,
		ReturnPct: model.Indicator{Value: pct, Valid: true},
	}
}

func TestRank_BestAndWorst(t *testing.T) {
	metrics := []model.TickerMetrics{
		withReturn("AAA", 12.5),
		withReturn("BBB", -3.2),
		withReturn("CCC", 40.1),
	}
	best, worst := Rank(metrics)
	if best != 2 || worst != 1 {
		t.Errorf("expected (2, 1), got (%d, %d)", best, worst)
	}
}

func TestRank_TiesKeepFirstOccurrence(t *testing.T) {
	metrics := []model.TickerMetrics{
		withReturn("AAA", 10),
		withReturn("BBB", 10),
		withReturn("CCC", 10),
	}
	best, worst := Rank(metrics)
	if best != 0 || worst != 0 {
		t.Errorf("ties should keep the first occurrence, got (%d, %d)", best, worst)
	}
}

func TestRank_SkipsUndefinedReturns(t *testing.T) {
	metrics := []model.TickerMetrics{
		{Symbol: "NODATA"},
		withReturn("BBB", -5),
		withReturn("CCC", 7),
	}
	best, worst := Rank(metrics)
	if best != 2 || worst != 1 {
		t.Errorf("expected (2, 1), got (%d, %d)", best, worst)
	}
}

func TestRank_NoDefinedReturns(t *testing.T) {
	metrics := []model.TickerMetrics{{Symbol: "A"}, {Symbol: "B"}}
	best, worst := Rank(metrics)
	if best != -1 || worst != -1 {
		t.Errorf("expected (-1, -1), got (%d, %d)", best, worst)
	}

	best, worst = Rank(nil)
	if best != -1 || worst != -1 {
		t.Errorf("empty input: expected (-1, -1), got (%d, %d)", best, worst)
	}
}

func TestRank_SingleTicker(t *testing.T) {
	best, worst := Rank([]model.TickerMetrics{withReturn("ONLY", 2.5)})
	if best != 0 || worst != 0 {
		t.Errorf("single ticker is both best and worst, got (%d, %d)", best, worst)
	}
}
