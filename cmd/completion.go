package cmd

import (
	"github.com/etnz/tracker"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of pst.
//
// Symbols are completed from the built-in price table, the configuration is
// not loaded while completing.
func Completion() *complete.Command {
	var holdings predict.Set
	for _, s := range tracker.DefaultPriceTable().Symbols() {
		holdings = append(holdings, s.String()+"=")
	}
	formats := predict.Set{"png", "svg"}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":      predict.Files("*"),
			"log-level":   predict.Set{"debug", "info", "warn", "error", "disabled"},
			"prices-file": predict.Files("*.json"),
			"prices-path": predict.Something,
		},
		Sub: map[string]*complete.Command{
			"track": {
				Flags: map[string]complete.Predictor{
					"o":        predict.Dirs("*"),
					"image":    formats,
					"markdown": predict.Nothing,
				},
			},
			"summary": {
				Flags: map[string]complete.Predictor{
					"format": predict.Set{"text", "markdown", "html"},
				},
				Args: holdings,
			},
			"export": {
				Flags: map[string]complete.Predictor{
					"o":     predict.Dirs("*"),
					"image": formats,
					"chart": predict.Nothing,
				},
				Args: holdings,
			},
			"prices":   {},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
