package tracker

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// examplePortfolio returns AAPL 10 + TSLA 2 + AAPL 5.
func examplePortfolio(t *testing.T) *Portfolio {
	t.Helper()
	p := NewPortfolio(testPrices())
	for _, add := range []struct {
		symbol string
		q      int
	}{{"AAPL", 10}, {"TSLA", 2}, {"AAPL", 5}} {
		if err := p.AddStock(add.symbol, Q(add.q)); err != nil {
			t.Fatalf("AddStock(%q, %d) error = %v", add.symbol, add.q, err)
		}
	}
	return p
}

func TestEncodeCSV(t *testing.T) {
	var b strings.Builder
	if err := EncodeCSV(&b, examplePortfolio(t)); err != nil {
		t.Fatalf("EncodeCSV() error = %v", err)
	}

	want := "Symbol,Quantity,Price,Value\n" +
		"AAPL,15,180,2700\n" +
		"TSLA,2,250,500\n" +
		",,,\n" +
		"Total Investment,,,3200\n"
	if got := b.String(); got != want {
		t.Errorf("EncodeCSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeCSV_Empty(t *testing.T) {
	var b strings.Builder
	if err := EncodeCSV(&b, NewPortfolio(testPrices())); err != nil {
		t.Fatalf("EncodeCSV() error = %v", err)
	}
	want := "Symbol,Quantity,Price,Value\n,,,\nTotal Investment,,,0\n"
	if got := b.String(); got != want {
		t.Errorf("EncodeCSV() =\n%s\nwant\n%s", got, want)
	}
}

// TestImportExportCSV checks that exported rows are read back identically.
func TestImportExportCSV(t *testing.T) {
	p := examplePortfolio(t)
	if err := p.AddStock("TSLA", Q(3)); err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer
	if err := EncodeCSV(&b, p); err != nil {
		t.Fatalf("EncodeCSV() error = %v", err)
	}
	rows, total, err := DecodeCSV(&b, p.Currency())
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}

	if diff := cmp.Diff(p.SummaryRows(), rows); diff != "" {
		t.Errorf("export/import sequence is not stable (-want +got):\n%s", diff)
	}
	if !total.Equal(p.TotalValue()) {
		t.Errorf("total = %v, want %v", total, p.TotalValue())
	}
}

func TestDecodeCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "bad header", in: "Ticker,Quantity,Price,Value\n,,,\nTotal Investment,,,0\n"},
		{name: "missing total", in: "Symbol,Quantity,Price,Value\nAAPL,1,180,180\n"},
		{name: "bad quantity", in: "Symbol,Quantity,Price,Value\nAAPL,one,180,180\n,,,\nTotal Investment,,,180\n"},
		{name: "bad price", in: "Symbol,Quantity,Price,Value\nAAPL,1,$180,180\n,,,\nTotal Investment,,,180\n"},
		{name: "bad total", in: "Symbol,Quantity,Price,Value\n,,,\nTotal Investment,,,lots\n"},
		{name: "row after total", in: "Symbol,Quantity,Price,Value\n,,,\nTotal Investment,,,0\nAAPL,1,180,180\n"},
		{name: "two totals", in: "Symbol,Quantity,Price,Value\nAAPL,1,180,180\n,,,\nTotal Investment,,,180\nTotal Investment,,,360\n"},
		{name: "wrong field count", in: "Symbol,Quantity,Price,Value\nAAPL,1,180\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := DecodeCSV(strings.NewReader(tt.in), "USD"); err == nil {
				t.Errorf("DecodeCSV(%q) succeeded, want an error", tt.in)
			}
		})
	}
}

func TestImportPriceTable(t *testing.T) {
	doc := `{"source": "saved quotes", "quotes": {"aapl": 180, "TSLA": 250.5}}`

	prices, err := ImportPriceTable(strings.NewReader(doc), "$.quotes", "USD")
	if err != nil {
		t.Fatalf("ImportPriceTable() error = %v", err)
	}
	if prices.Len() != 2 {
		t.Errorf("Len() = %d, want 2", prices.Len())
	}
	if got, _ := prices.Price("TSLA"); !got.Equal(USD(250.5)) {
		t.Errorf("Price(TSLA) = %v, want %v", got, USD(250.5))
	}
	if got, _ := prices.Price("AAPL"); !got.Equal(USD(180)) {
		t.Errorf("Price(AAPL) = %v, want %v", got, USD(180))
	}
}

func TestImportPriceTable_Errors(t *testing.T) {
	tests := []struct {
		name, doc, path string
	}{
		{name: "not json", doc: `AAPL=180`, path: ""},
		{name: "not an object", doc: `{"quotes": [180, 250]}`, path: "$.quotes"},
		{name: "not a number", doc: `{"AAPL": "180"}`, path: ""},
		{name: "missing path", doc: `{"AAPL": 180}`, path: "$.quotes"},
		{name: "negative price", doc: `{"AAPL": -180}`, path: "$"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ImportPriceTable(strings.NewReader(tt.doc), tt.path, "USD"); err == nil {
				t.Errorf("ImportPriceTable(%q, %q) succeeded, want an error", tt.doc, tt.path)
			}
		})
	}
}
