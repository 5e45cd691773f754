package strategy

import (
	"testing"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/model"
)

func TestClassify_AllBranches(t *testing.T) {
	tests := []struct {
		name   string
		latest float64
		ma50   float64
		ma200  float64
		want   model.Trend
	}{
		{"full alignment", 150, 120, 100, model.TrendBullish},
		{"above ma50 only", 150, 120, 130, model.TrendNeutral},
		{"ma50 equals ma200", 150, 120, 120, model.TrendNeutral},
		{"below ma50", 100, 120, 110, model.TrendBearish},
		{"price equals ma50", 120, 120, 100, model.TrendBearish},
		{"all equal", 100, 100, 100, model.TrendBearish},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.latest, tt.ma50, tt.ma200); got != tt.want {
				t.Errorf("Classify(%.0f, %.0f, %.0f) = %s, want %s",
					tt.latest, tt.ma50, tt.ma200, got, tt.want)
			}
		})
	}
}

func TestClassify_Total(t *testing.T) {
	// Every input triple must land in exactly one of the three signals.
	values := []float64{-1, 0, 1, 100, 100.0000001}
	for _, latest := range values {
		for _, ma50 := range values {
			for _, ma200 := range values {
				got := Classify(latest, ma50, ma200)
				switch got {
				case model.TrendBullish, model.TrendNeutral, model.TrendBearish:
				default:
					t.Fatalf("Classify(%v, %v, %v) returned %q", latest, ma50, ma200, got)
				}
			}
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		if got := Classify(150, 120, 100); got != model.TrendBullish {
			t.Fatalf("run %d: got %s", i, got)
		}
	}
}
