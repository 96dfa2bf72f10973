package tracker

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSymbol matches any *UnknownSymbolError with errors.Is.
	ErrUnknownSymbol = errors.New("unknown stock symbol")
	// ErrInvalidQuantity matches any *InvalidQuantityError with errors.Is.
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// UnknownSymbolError is returned when a symbol is not in the price table.
type UnknownSymbolError struct {
	Symbol Symbol
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("stock symbol '%s' not found", e.Symbol)
}

func (e *UnknownSymbolError) Is(target error) bool { return target == ErrUnknownSymbol }

// InvalidQuantityError is returned when a quantity is zero or negative.
type InvalidQuantityError struct {
	Quantity Quantity
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be positive, got %s", e.Quantity)
}

func (e *InvalidQuantityError) Is(target error) bool { return target == ErrInvalidQuantity }
