package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	format string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a portfolio summary without prompting" }
func (*summaryCmd) Usage() string {
	return `pst summary [-format text|markdown|html] <symbol>=<quantity>...

  Builds a portfolio from the arguments and displays its summary: one line
  per symbol with quantity, unit price and value, and the total value.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "markdown", "Output format: text, markdown or html")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, p, err := NewPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := addHoldingArgs(p, f.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	summary := renderer.NewSummary(p)
	switch c.format {
	case "text":
		fmt.Print(renderer.SummaryText(summary))
	case "markdown":
		printMarkdown(renderer.SummaryMarkdown(summary))
	case "html":
		if err := renderer.SummaryHTML(os.Stdout, summary); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering summary: %v\n", err)
			return subcommands.ExitFailure
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want text, markdown or html\n", c.format)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
