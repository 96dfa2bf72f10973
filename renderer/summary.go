package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tracker"
)

// Summary is the data rendered by every summary view.
// Numbers are handled using the exact decimal types (Money, Quantity)
// so that they already carry their string representation.
type Summary struct {
	// Title of the document or image.
	Title string `json:"title"`
	// Currency of all the amounts.
	Currency string `json:"currency"`
	// Rows holds one holding per symbol, in insertion order.
	Rows []tracker.Holding `json:"rows"`
	// Total is the total value of the portfolio.
	Total tracker.Money `json:"total"`
}

// DefaultTitle is the title used by NewSummary.
const DefaultTitle = "Stock Portfolio Summary"

// NewSummary creates a Summary of the portfolio's current holdings.
func NewSummary(p *tracker.Portfolio) *Summary {
	return &Summary{
		Title:    DefaultTitle,
		Currency: p.Currency(),
		Rows:     p.SummaryRows(),
		Total:    p.TotalValue(),
	}
}

// Len returns the number of holdings.
func (s *Summary) Len() int { return len(s.Rows) }

const textRule = "----------------------------------------"

// SummaryText renders the summary as a fixed width table for the console.
func SummaryText(s *Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n📊 Portfolio Summary:\n\n")
	fmt.Fprintf(&b, "%-8s%-10s%-12s%-12s\n", "Symbol", "Quantity", "Price", "Value")
	fmt.Fprintln(&b, textRule)
	for _, h := range s.Rows {
		fmt.Fprintf(&b, "%-8s%-10s%-12s%-12s\n", h.Symbol, h.Quantity, h.Price, h.Value)
	}
	fmt.Fprintln(&b, textRule)
	fmt.Fprintf(&b, "%-28s %s\n", "Total Investment Value:", s.Total)
	return b.String()
}

// cells returns the table content of the summary: a header, one line per
// holding and the TOTAL line.
func (s *Summary) cells() [][]string {
	cells := [][]string{{"Symbol", "Quantity", "Price", "Value"}}
	for _, h := range s.Rows {
		cells = append(cells, []string{h.Symbol.String(), h.Quantity.String(), h.Price.String(), h.Value.String()})
	}
	return append(cells, []string{"TOTAL", "", "", s.Total.String()})
}
