package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/model"
)

// QuoteAPIFetcher implements Fetcher against a generic quote-history REST
// service, for deployments with an internal market data source.
type QuoteAPIFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewQuoteAPIFetcher creates a new fetcher with optional proxy support.
func NewQuoteAPIFetcher(baseURL, apiKey, proxyURL string) *QuoteAPIFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &QuoteAPIFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *QuoteAPIFetcher) Name() string { return "quoteapi" }

// quoteBar is the expected JSON shape from the history endpoint.
type quoteBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// FetchDailyHistory returns up to `days` daily bars, ascending by date.
func (f *QuoteAPIFetcher) FetchDailyHistory(ctx context.Context, symbol string, days int) ([]model.OHLCV, error) {
	endpoint := fmt.Sprintf("%s/api/v1/history?symbol=%s&days=%d",
		f.BaseURL, url.QueryEscape(symbol), days)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch history: status %d, body: %s", resp.StatusCode, string(body))
	}

	var raw []quoteBar
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}

	bars := make([]model.OHLCV, 0, len(raw))
	for _, qb := range raw {
		if qb.Close == 0 {
			continue
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(qb.Timestamp, 0),
			Open:   qb.Open,
			High:   qb.High,
			Low:    qb.Low,
			Close:  qb.Close,
			Volume: qb.Volume,
		})
	}

	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}
