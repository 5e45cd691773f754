package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQuoteAPIFetcher_FetchDailyHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token123" {
			t.Errorf("expected bearer token, got %q", got)
		}
		if got := r.URL.Query().Get("symbol"); got != "AAPL" {
			t.Errorf("expected symbol=AAPL, got %s", got)
		}
		// Out of order on purpose: the fetcher must sort ascending.
		fmt.Fprint(w, `[
			{"timestamp":1700086400,"open":101,"high":102,"low":100,"close":101.5,"volume":500},
			{"timestamp":1700000000,"open":100,"high":101,"low":99,"close":100.5,"volume":400},
			{"timestamp":1700172800,"open":102,"high":103,"low":101,"close":0,"volume":300}
		]`)
	}))
	defer srv.Close()

	f := NewQuoteAPIFetcher(srv.URL, "token123", "")
	bars, err := f.FetchDailyHistory(context.Background(), "AAPL", 365)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("zero-close bar should be dropped, got %d bars", len(bars))
	}
	if !bars[0].Time.Before(bars[1].Time) {
		t.Error("bars should be sorted ascending by time")
	}
	if bars[0].Close != 100.5 {
		t.Errorf("expected earliest close 100.5, got %.2f", bars[0].Close)
	}
}

func TestQuoteAPIFetcher_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "symbol not found", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewQuoteAPIFetcher(srv.URL, "", "")
	if _, err := f.FetchDailyHistory(context.Background(), "BOGUS", 365); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
