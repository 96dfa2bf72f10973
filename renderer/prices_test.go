package renderer

import (
	"testing"

	"github.com/etnz/tracker"
)

func TestPricesMarkdown(t *testing.T) {
	prices, err := tracker.NewPriceTable("USD", map[string]float64{"TSLA": 250, "AAPL": 180})
	if err != nil {
		t.Fatalf("NewPriceTable() error = %v", err)
	}

	want := "# Prices\n\n" +
		"| Symbol | Price |\n" +
		"|:---|---:|\n" +
		"| AAPL | $180.00 |\n" +
		"| TSLA | $250.00 |\n"
	if got := PricesMarkdown(prices); got != want {
		t.Errorf("PricesMarkdown() =\n%s\nwant\n%s", got, want)
	}
}
