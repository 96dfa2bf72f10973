package tracker

import "strings"

// Portfolio aggregates the stocks added by the user.
//
// Holdings are kept in the order symbols were first added. The total value is
// maintained on each addition and always equals the sum of holding values.
type Portfolio struct {
	prices   *PriceTable
	holdings []Holding
	index    map[Symbol]int // position in holdings
	total    Money
}

// NewPortfolio returns an empty portfolio valued with 'prices'.
func NewPortfolio(prices *PriceTable) *Portfolio {
	return &Portfolio{
		prices: prices,
		index:  make(map[Symbol]int),
		total:  M(0, prices.Currency()),
	}
}

// AddStock adds 'quantity' shares of 'symbol' to the portfolio.
//
// The symbol is case insensitive. It returns an *InvalidQuantityError if
// quantity is not positive, then an *UnknownSymbolError if the symbol is not in
// the price table. The portfolio is left unchanged when an error is returned.
func (p *Portfolio) AddStock(symbol string, quantity Quantity) error {
	if !quantity.IsPositive() {
		return &InvalidQuantityError{Quantity: quantity}
	}
	s, err := ParseSymbol(symbol)
	if err != nil {
		return &UnknownSymbolError{Symbol: Symbol(strings.ToUpper(strings.TrimSpace(symbol)))}
	}
	price, ok := p.prices.Price(s)
	if !ok {
		return &UnknownSymbolError{Symbol: s}
	}

	value := price.Mul(quantity)
	if i, exists := p.index[s]; exists {
		h := &p.holdings[i]
		h.Quantity = h.Quantity.Add(quantity)
		h.Value = h.Value.Add(value)
	} else {
		p.index[s] = len(p.holdings)
		p.holdings = append(p.holdings, Holding{
			Symbol:   s,
			Quantity: quantity,
			Price:    price,
			Value:    value,
		})
	}
	p.total = p.total.Add(value)
	return nil
}

// SummaryRows returns one row per holding, in insertion order.
//
// The total is not part of the rows, see [Portfolio.TotalValue]. The returned
// slice is a copy and can be modified freely.
func (p *Portfolio) SummaryRows() []Holding {
	rows := make([]Holding, len(p.holdings))
	copy(rows, p.holdings)
	return rows
}

// TotalValue returns the sum of all holdings value.
func (p *Portfolio) TotalValue() Money { return p.total }

// Holding returns the current holding on symbol 's'.
func (p *Portfolio) Holding(s Symbol) (Holding, bool) {
	i, ok := p.index[s]
	if !ok {
		return Holding{}, false
	}
	return p.holdings[i], true
}

func (p *Portfolio) Len() int            { return len(p.holdings) }
func (p *Portfolio) IsEmpty() bool       { return len(p.holdings) == 0 }
func (p *Portfolio) Currency() string    { return p.prices.Currency() }
func (p *Portfolio) Prices() *PriceTable { return p.prices }
