package tracker

import (
	"fmt"
	"strings"
	"unicode"
)

// Symbol is a stock ticker, always upper case.
type Symbol string

// ParseSymbol normalizes a user provided ticker: surrounding spaces are
// removed and letters are upper-cased.
//
// It does not check that the symbol is known, see [PriceTable.Price].
func ParseSymbol(s string) (Symbol, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("empty stock symbol")
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return "", fmt.Errorf("invalid stock symbol %q", s)
		}
	}
	return Symbol(s), nil
}

func (s Symbol) String() string { return string(s) }
