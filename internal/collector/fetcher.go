package collector

import (
	"context"
	"errors"
	"fmt"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/model"
)

// ErrNoData indicates the provider returned an empty series for a symbol.
var ErrNoData = errors.New("no price data returned")

// FetchError records a per-ticker retrieval failure. The batch carries on;
// the wrapped reason surfaces in the skipped-ticker list.
type FetchError struct {
	Symbol string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Symbol, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchDailyHistory(ctx context.Context, symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
