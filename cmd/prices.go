package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
)

// pricesCmd holds the flags for the 'prices' subcommand.
type pricesCmd struct{}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "list the symbols that can be tracked and their price" }
func (*pricesCmd) Usage() string {
	return `pst prices

  Displays the price table: the built-in one, or the one from the
  configuration file or -prices-file.
`
}

func (*pricesCmd) SetFlags(_ *flag.FlagSet) {}

func (*pricesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, p, err := NewPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PricesMarkdown(p.Prices()))
	return subcommands.ExitSuccess
}
