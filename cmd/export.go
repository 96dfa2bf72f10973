package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
)

// exportTimestamp is the layout of the timestamp in exported file names.
const exportTimestamp = "2006-01-02_15-04-05"

// ExportFiles are the paths of the files written by an export.
type ExportFiles struct {
	CSV   string
	Image string
	Chart string // empty unless the allocation chart is requested
}

// ExportPaths returns the timestamped paths of the exported files in 'dir'.
func ExportPaths(dir string, now time.Time, format renderer.Format, chart bool) ExportFiles {
	ts := now.Format(exportTimestamp)
	files := ExportFiles{
		CSV:   filepath.Join(dir, "portfolio_summary_"+ts+".csv"),
		Image: filepath.Join(dir, "portfolio_summary_"+ts+format.Ext()),
	}
	if chart {
		files.Chart = filepath.Join(dir, "portfolio_allocation_"+ts+format.Ext())
	}
	return files
}

// writeExports writes the CSV summary, the table image and optionally the
// allocation chart in 'dir', creating it if needed.
func writeExports(dir string, now time.Time, p *tracker.Portfolio, format renderer.Format, chart bool) (ExportFiles, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ExportFiles{}, fmt.Errorf("cannot create export directory: %w", err)
	}
	files := ExportPaths(dir, now, format, chart)
	summary := renderer.NewSummary(p)

	if err := writeFile(files.CSV, func(w io.Writer) error { return tracker.EncodeCSV(w, p) }); err != nil {
		return ExportFiles{}, err
	}
	if err := writeFile(files.Image, func(w io.Writer) error { return renderer.TableImage(w, summary, format) }); err != nil {
		return ExportFiles{}, err
	}
	if chart {
		if err := writeFile(files.Chart, func(w io.Writer) error { return renderer.AllocationChart(w, summary, format) }); err != nil {
			return ExportFiles{}, err
		}
	}
	logger.Info().Str("dir", dir).Int("holdings", p.Len()).Msg("summary exported")
	return files, nil
}

// writeFile creates 'name' and fills it with 'encode'.
func writeFile(name string, encode func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", name, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %q: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", name, err)
	}
	logger.Debug().Str("file", name).Msg("file written")
	return nil
}

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	outputDir string
	image     string
	chart     bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "save a portfolio summary as CSV and image" }
func (*exportCmd) Usage() string {
	return `pst export [-o <dir>] [-image png|svg] [-chart] <symbol>=<quantity>...

  Builds a portfolio from the arguments and saves its summary, without
  prompting, as a CSV file and a table image named
  portfolio_summary_<timestamp>.csv and .png (or .svg).

Usage Examples:
# Writes into ./reports
$ pst export -o reports AAPL=10 TSLA=2

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "", "Directory for the exported files. Defaults to the configured export directory.")
	f.StringVar(&c.image, "image", "", "Image format (png, svg). Defaults to the configured image format.")
	f.BoolVar(&c.chart, "chart", false, "Also save a pie chart of the allocation")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, p, err := NewPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := addHoldingArgs(p, f.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if p.IsEmpty() {
		fmt.Fprintf(os.Stderr, "Error: no holdings given, nothing to export\n")
		return subcommands.ExitUsageError
	}

	if c.image == "" {
		c.image = cfg.ImageFormat
	}
	format, err := renderer.ParseFormat(c.image)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	dir := c.outputDir
	if dir == "" {
		if dir, err = cfg.ResolveExportDir(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	files, err := writeExports(dir, time.Now(), p, format, c.chart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting summary: %v\n", err)
		return subcommands.ExitFailure
	}
	printExportFiles(files)
	return subcommands.ExitSuccess
}

func printExportFiles(files ExportFiles) {
	fmt.Printf("📂 CSV saved to: %s\n", files.CSV)
	fmt.Printf("🖼️ Image saved to: %s\n", files.Image)
	if files.Chart != "" {
		fmt.Printf("🥧 Chart saved to: %s\n", files.Chart)
	}
}
