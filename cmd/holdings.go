package cmd

import (
	"fmt"
	"strings"

	"github.com/etnz/tracker"
)

// addHoldingArgs adds stocks given on the command line as <symbol>=<quantity>
// to the portfolio. It stops at the first invalid argument.
func addHoldingArgs(p *tracker.Portfolio, args []string) error {
	for _, arg := range args {
		symbol, qty, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("invalid holding %q, want <symbol>=<quantity>", arg)
		}
		q, err := tracker.ParseQuantity(qty)
		if err != nil {
			return fmt.Errorf("invalid holding %q: %w", arg, err)
		}
		if err := p.AddStock(symbol, q); err != nil {
			return fmt.Errorf("invalid holding %q: %w", arg, err)
		}
		logger.Debug().Str("symbol", symbol).Stringer("quantity", q).Msg("stock added")
	}
	return nil
}
