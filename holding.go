package tracker

// Holding is the accumulated position on one symbol.
type Holding struct {
	Symbol   Symbol   `json:"symbol"`
	Quantity Quantity `json:"quantity"`
	Price    Money    `json:"price"` // unit price at the time of the first addition
	Value    Money    `json:"value"` // Quantity × Price
}

// Equal reports whether h and g hold the same symbol, quantity, price and value.
func (h Holding) Equal(g Holding) bool {
	return h.Symbol == g.Symbol &&
		h.Quantity.Equal(g.Quantity) &&
		h.Price.Equal(g.Price) &&
		h.Value.Equal(g.Value)
}
