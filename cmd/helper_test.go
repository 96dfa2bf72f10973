package cmd

import (
	"testing"

	"github.com/etnz/tracker"
)

// newTestPortfolio returns an empty portfolio priced with AAPL 180 and TSLA 250 USD.
func newTestPortfolio(t *testing.T) *tracker.Portfolio {
	t.Helper()
	prices, err := tracker.NewPriceTable("USD", map[string]float64{"AAPL": 180, "TSLA": 250})
	if err != nil {
		t.Fatalf("NewPriceTable() error = %v", err)
	}
	return tracker.NewPortfolio(prices)
}
