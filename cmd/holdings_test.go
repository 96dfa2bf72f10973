package cmd

import (
	"errors"
	"testing"

	"github.com/etnz/tracker"
)

func TestAddHoldingArgs(t *testing.T) {
	p := newTestPortfolio(t)
	if err := addHoldingArgs(p, []string{"AAPL=10", "tsla=2", " aapl =5"}); err != nil {
		t.Fatalf("addHoldingArgs() error = %v", err)
	}
	if got, want := p.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if got, want := p.TotalValue(), tracker.M(3200, "USD"); !got.Equal(want) {
		t.Errorf("TotalValue() = %v, want %v", got, want)
	}
}

func TestAddHoldingArgs_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		target error // nil when the error is a syntax error
	}{
		{name: "missing separator", args: []string{"AAPL10"}},
		{name: "not a number", args: []string{"AAPL=ten"}},
		{name: "fraction", args: []string{"AAPL=1.5"}},
		{name: "unknown symbol", args: []string{"XYZ=10"}, target: tracker.ErrUnknownSymbol},
		{name: "zero", args: []string{"AAPL=0"}, target: tracker.ErrInvalidQuantity},
		{name: "negative", args: []string{"TSLA=-3"}, target: tracker.ErrInvalidQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPortfolio(t)
			err := addHoldingArgs(p, tt.args)
			if err == nil {
				t.Fatalf("addHoldingArgs(%q) expected an error", tt.args)
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("addHoldingArgs(%q) error = %v, want %v", tt.args, err, tt.target)
			}
			if !p.IsEmpty() {
				t.Errorf("addHoldingArgs(%q) modified the portfolio", tt.args)
			}
		})
	}
}

func TestAddHoldingArgs_StopsAtFirstError(t *testing.T) {
	p := newTestPortfolio(t)
	if err := addHoldingArgs(p, []string{"AAPL=10", "XYZ=1", "TSLA=2"}); err == nil {
		t.Fatal("addHoldingArgs() expected an error")
	}
	if _, ok := p.Holding("TSLA"); ok {
		t.Error("addHoldingArgs() went on after the first invalid argument")
	}
	if _, ok := p.Holding("AAPL"); !ok {
		t.Error("addHoldingArgs() lost the arguments before the invalid one")
	}
}
