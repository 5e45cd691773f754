package collector

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/calculator"
	"github.com/maheswardileep829-blip/stock-analyzer/internal/logger"
	"github.com/maheswardileep829-blip/stock-analyzer/internal/model"
	"github.com/maheswardileep829-blip/stock-analyzer/internal/strategy"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	BasePrice float64
	Data      map[string][]model.OHLCV
	Errs      map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyHistory(_ context.Context, symbol string, days int) ([]model.OHLCV, error) {
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	if bars, ok := m.Data[symbol]; ok {
		return bars, nil
	}
	return GenerateBars(m.BasePrice, days), nil
}

// GenerateBars builds a deterministic gently rising series around basePrice.
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector runs the analysis batch: fetch, compute, classify, rank.
type Collector struct {
	Fetcher      Fetcher
	LookbackDays int
	MaxParallel  int
}

// NewCollector creates a new Collector. MaxParallel is clamped to 1..10.
func NewCollector(fetcher Fetcher, lookbackDays, maxParallel int) *Collector {
	if maxParallel < 1 {
		maxParallel = 1
	}
	if maxParallel > 10 {
		maxParallel = 10
	}
	return &Collector{Fetcher: fetcher, LookbackDays: lookbackDays, MaxParallel: maxParallel}
}

// AnalyzeAll fetches and analyzes every symbol. Results keep input order
// regardless of completion order. A per-ticker failure is recorded in the
// result set and never aborts the batch; only context cancellation does.
func (c *Collector) AnalyzeAll(ctx context.Context, symbols []string) (*model.ResultSet, error) {
	type slot struct {
		metrics *model.TickerMetrics
		err     error
	}
	slots := make([]slot, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, c.MaxParallel)

	for i, symbol := range symbols {
		idx := i
		sym := symbol
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			m, err := c.analyzeOne(gctx, sym)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				logger.L().Warn().Str("symbol", sym).Err(err).Msg("ticker skipped")
				slots[idx].err = err
				return nil
			}
			logger.L().Info().
				Str("symbol", sym).
				Int("bars", m.Bars).
				Str("trend", string(m.Trend)).
				Dur("elapsed", time.Since(start)).
				Msg("ticker analyzed")
			slots[idx].metrics = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rs := &model.ResultSet{GeneratedAt: time.Now(), Best: -1, Worst: -1}
	for i, s := range slots {
		switch {
		case s.metrics != nil:
			rs.Metrics = append(rs.Metrics, *s.metrics)
		case s.err != nil:
			rs.Failures = append(rs.Failures, model.Failure{Symbol: symbols[i], Err: s.err})
		}
	}
	rs.Best, rs.Worst = strategy.Rank(rs.Metrics)
	return rs, nil
}

func (c *Collector) analyzeOne(ctx context.Context, symbol string) (*model.TickerMetrics, error) {
	bars, err := c.Fetcher.FetchDailyHistory(ctx, symbol, c.LookbackDays)
	if err != nil {
		return nil, &FetchError{Symbol: symbol, Err: err}
	}
	if len(bars) == 0 {
		return nil, &FetchError{Symbol: symbol, Err: ErrNoData}
	}

	series := &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}
	if len(bars) < 200 {
		logger.L().Debug().
			Str("symbol", symbol).
			Int("bars", len(bars)).
			Msg("short history window, earliest close anchors the return")
	}

	m, err := calculator.Compute(series)
	if err != nil {
		return nil, &FetchError{Symbol: symbol, Err: err}
	}

	// Classification needs both moving averages.
	if m.MA50.Valid && m.MA200.Valid {
		m.Trend = strategy.Classify(m.LatestPrice, m.MA50.Value, m.MA200.Value)
	}
	return m, nil
}
