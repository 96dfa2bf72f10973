package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tracker"
)

// PricesMarkdown renders the table of known symbols and their unit price.
func PricesMarkdown(t *tracker.PriceTable) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Prices\n\n")
	fmt.Fprintln(&b, "| Symbol | Price |")
	fmt.Fprintln(&b, "|:---|---:|")

	for _, s := range t.Symbols() {
		price, _ := t.Price(s)
		fmt.Fprintf(&b, "| %s | %s |\n", s, price)
	}
	return b.String()
}
