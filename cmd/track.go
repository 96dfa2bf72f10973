package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/tracker/renderer"
	"github.com/etnz/tracker/session"
	"github.com/google/subcommands"
)

// trackCmd holds the flags for the 'track' subcommand.
type trackCmd struct {
	outputDir string
	image     string
	markdown  bool
}

func (*trackCmd) Name() string     { return "track" }
func (*trackCmd) Synopsis() string { return "interactively record stocks and summarize the portfolio" }
func (*trackCmd) Usage() string {
	return `pst track [-o <dir>] [-image png|svg] [-markdown]

  Asks for stock symbols and quantities until you type 'done', then displays
  the portfolio summary. It then offers to view the summary as an image, and
  to save it as a CSV file and an image in the export directory
  (your Desktop unless configured otherwise).
`
}

func (c *trackCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "", "Directory for the saved files. Defaults to the configured export directory.")
	f.StringVar(&c.image, "image", "", "Image format (png, svg). Defaults to the configured image format.")
	f.BoolVar(&c.markdown, "markdown", false, "Display the summary as formatted markdown instead of plain text")
}

func (c *trackCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, p, err := NewPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.image == "" {
		c.image = cfg.ImageFormat
	}
	format, err := renderer.ParseFormat(c.image)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s := session.New(os.Stdout, os.Stdin, p, logger)
	if err := s.Collect(ctx); err != nil {
		return readFailure(err)
	}

	if p.IsEmpty() {
		fmt.Println("📭 No stocks added. Exiting.")
		return subcommands.ExitSuccess
	}

	summary := renderer.NewSummary(p)
	if c.markdown {
		printMarkdown(renderer.SummaryMarkdown(summary))
	} else {
		fmt.Print(renderer.SummaryText(summary))
	}

	view, err := s.Confirm(ctx, "\n📷 Would you like to view the portfolio image on screen?")
	if err != nil {
		return readFailure(err)
	}
	if view {
		if err := viewTableImage(summary, format); err != nil {
			// not fatal: the summary can still be saved.
			fmt.Fprintf(os.Stderr, "Error displaying image: %v\n", err)
		}
	}

	dir := c.outputDir
	if dir == "" {
		if dir, err = cfg.ResolveExportDir(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	save, err := s.Confirm(ctx, fmt.Sprintf("\n💾 Would you like to save the summary to %s as CSV and image?", dir))
	if err != nil {
		return readFailure(err)
	}
	if save {
		files, err := writeExports(dir, time.Now(), p, format, false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving summary: %v\n", err)
			return subcommands.ExitFailure
		}
		printExportFiles(files)
	}

	fmt.Println("\n✅ Program finished. Thank you for using the tracker!")
	return subcommands.ExitSuccess
}

// readFailure reports an input error. An interruption is not reported as an error.
func readFailure(err error) subcommands.ExitStatus {
	if errors.Is(err, context.Canceled) {
		fmt.Println("\n🛑 Interrupted.")
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
	return subcommands.ExitFailure
}
