package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/model"
)

func TestAnalyzeAll_PartialFailure(t *testing.T) {
	fetcher := &MockFetcher{
		BasePrice: 100,
		Errs:      map[string]error{"BAD": errors.New("unknown symbol")},
	}
	col := NewCollector(fetcher, 365, 1)

	rs, err := col.AnalyzeAll(context.Background(), []string{"AAA", "BAD", "CCC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs.Metrics) != 2 {
		t.Fatalf("expected 2 metrics, got %d", len(rs.Metrics))
	}
	if rs.Metrics[0].Symbol != "AAA" || rs.Metrics[1].Symbol != "CCC" {
		t.Errorf("metrics out of order: %s, %s", rs.Metrics[0].Symbol, rs.Metrics[1].Symbol)
	}
	if len(rs.Failures) != 1 || rs.Failures[0].Symbol != "BAD" {
		t.Fatalf("expected one failure for BAD, got %+v", rs.Failures)
	}
	var fe *FetchError
	if !errors.As(rs.Failures[0].Err, &fe) {
		t.Errorf("failure should carry a FetchError, got %T", rs.Failures[0].Err)
	}
	if rs.Best < 0 || rs.Worst < 0 {
		t.Errorf("best/worst should be computed over the successes, got (%d, %d)", rs.Best, rs.Worst)
	}
}

func TestAnalyzeAll_OrderPreservedWhenParallel(t *testing.T) {
	fetcher := &MockFetcher{BasePrice: 100}
	col := NewCollector(fetcher, 365, 5)

	symbols := []string{"AAA", "BBB", "CCC", "DDD", "EEE"}
	rs, err := col.AnalyzeAll(context.Background(), symbols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs.Metrics) != len(symbols) {
		t.Fatalf("expected %d metrics, got %d", len(symbols), len(rs.Metrics))
	}
	for i, sym := range symbols {
		if rs.Metrics[i].Symbol != sym {
			t.Errorf("slot %d: expected %s, got %s", i, sym, rs.Metrics[i].Symbol)
		}
	}
}

func TestAnalyzeAll_ShortSeries(t *testing.T) {
	fetcher := &MockFetcher{
		Data: map[string][]model.OHLCV{"SHORT": GenerateBars(50, 10)},
	}
	col := NewCollector(fetcher, 365, 1)

	rs, err := col.AnalyzeAll(context.Background(), []string{"SHORT"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs.Metrics) != 1 {
		t.Fatalf("short series should still produce a row, got %d metrics", len(rs.Metrics))
	}
	m := rs.Metrics[0]
	if m.MA50.Valid || m.MA200.Valid {
		t.Errorf("MAs should be undefined for 10 bars: %+v", m)
	}
	if m.Trend != model.TrendNA {
		t.Errorf("trend should be N/A without both MAs, got %s", m.Trend)
	}
	if !m.ReturnPct.Valid || !m.Volatility.Valid {
		t.Errorf("return and volatility should be populated: %+v", m)
	}
}

func TestAnalyzeAll_TrendClassified(t *testing.T) {
	// 365 generated bars rise linearly, so latest > MA50 > MA200.
	fetcher := &MockFetcher{BasePrice: 100}
	col := NewCollector(fetcher, 365, 1)

	rs, err := col.AnalyzeAll(context.Background(), []string{"UP"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rs.Metrics[0].Trend != model.TrendBullish {
		t.Errorf("expected BULLISH for rising series, got %s", rs.Metrics[0].Trend)
	}
}

func TestAnalyzeAll_EmptySeries(t *testing.T) {
	fetcher := &MockFetcher{
		Data: map[string][]model.OHLCV{"EMPTY": {}},
	}
	col := NewCollector(fetcher, 365, 1)

	rs, err := col.AnalyzeAll(context.Background(), []string{"EMPTY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs.Metrics) != 0 || len(rs.Failures) != 1 {
		t.Fatalf("expected one failure, got %d metrics / %d failures", len(rs.Metrics), len(rs.Failures))
	}
	if !errors.Is(rs.Failures[0].Err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", rs.Failures[0].Err)
	}
	if rs.Best != -1 || rs.Worst != -1 {
		t.Errorf("expected no best/worst, got (%d, %d)", rs.Best, rs.Worst)
	}
}

// blockingFetcher waits for cancellation and returns the context error.
type blockingFetcher struct{}

func (blockingFetcher) Name() string { return "blocking" }

func (blockingFetcher) FetchDailyHistory(ctx context.Context, _ string, _ int) ([]model.OHLCV, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestAnalyzeAll_Cancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	col := NewCollector(blockingFetcher{}, 365, 2)
	_, err := col.AnalyzeAll(ctx, []string{"AAA", "BBB"})
	if err == nil {
		t.Fatal("expected cancellation to abort the batch")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline error, got %v", err)
	}
}

func TestNewCollector_ClampsParallelism(t *testing.T) {
	if c := NewCollector(&MockFetcher{}, 365, 0); c.MaxParallel != 1 {
		t.Errorf("expected clamp to 1, got %d", c.MaxParallel)
	}
	if c := NewCollector(&MockFetcher{}, 365, 50); c.MaxParallel != 10 {
		t.Errorf("expected clamp to 10, got %d", c.MaxParallel)
	}
}
