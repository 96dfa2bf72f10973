package tracker

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// PriceTable is the fixed list of symbols that can be held, with their unit price.
//
// A PriceTable is immutable once created; all its prices share the same currency.
type PriceTable struct {
	currency string
	symbols  []Symbol // sorted
	prices   map[Symbol]Money
}

// NewPriceTable creates a price table in 'currency' from a symbol to price map.
//
// Symbols are normalized like user input. Duplicate symbols after
// normalization, empty tables, infinite or NaN prices and non positive prices
// are rejected.
func NewPriceTable(currency string, prices map[string]float64) (*PriceTable, error) {
	if currency == "" {
		return nil, fmt.Errorf("price table currency is required")
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("price table is empty")
	}
	t := &PriceTable{
		currency: currency,
		prices:   make(map[Symbol]Money, len(prices)),
	}
	// iterate in a stable order so that errors are deterministic.
	for _, raw := range slices.Sorted(maps.Keys(prices)) {
		s, err := ParseSymbol(raw)
		if err != nil {
			return nil, err
		}
		if _, exists := t.prices[s]; exists {
			return nil, fmt.Errorf("duplicate stock symbol %q in price table", s)
		}
		v := prices[raw]
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, fmt.Errorf("price of %q must be a finite number, got %v", s, v)
		}
		price := M(v, currency)
		if !price.IsPositive() {
			return nil, fmt.Errorf("price of %q must be positive, got %v", s, v)
		}
		t.prices[s] = price
		t.symbols = append(t.symbols, s)
	}
	slices.Sort(t.symbols)
	return t, nil
}

// DefaultPriceTable returns the built-in table of predefined prices, in USD.
func DefaultPriceTable() *PriceTable {
	t, err := NewPriceTable("USD", DefaultPrices())
	if err != nil {
		panic(err) // constant input
	}
	return t
}

// DefaultPrices returns the predefined prices, in USD.
func DefaultPrices() map[string]float64 {
	return map[string]float64{
		"AAPL":  180,
		"TSLA":  250,
		"GOOGL": 2750,
		"AMZN":  3200,
		"MSFT":  310,
	}
}

// Price returns the unit price of symbol 's'.
func (t *PriceTable) Price(s Symbol) (Money, bool) {
	p, ok := t.prices[s]
	return p, ok
}

// Symbols returns the known symbols in alphabetical order.
func (t *PriceTable) Symbols() []Symbol { return slices.Clone(t.symbols) }

func (t *PriceTable) Len() int         { return len(t.symbols) }
func (t *PriceTable) Currency() string { return t.currency }
