package tracker

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// testPrices is the price table of the examples: AAPL and TSLA only.
func testPrices() *PriceTable {
	t, err := NewPriceTable("USD", map[string]float64{"AAPL": 180, "TSLA": 250})
	if err != nil {
		panic(err)
	}
	return t
}

// must panics if err is not nil
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
