// Package cmd implements the CLI application to track a stock portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tracker"
	"github.com/etnz/tracker/config"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&trackCmd{}, "portfolio")
	c.Register(&summaryCmd{}, "portfolio")
	c.Register(&exportCmd{}, "portfolio")

	c.Register(&pricesCmd{}, "prices")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (.yaml, .yml or .toml). Built-in prices when empty.")
var logLevel = flag.String("log-level", "", "Diagnostics level on stderr (debug, info, warn, error, disabled). Overrides the configuration.")
var pricesFile = flag.String("prices-file", "", "JSON document to read the price table from. Overrides the configuration.")
var pricesPath = flag.String("prices-path", "", "JSONPath of the prices object in the -prices-file document.")

// logger writes diagnostics to stderr, it is configured by loadConfig.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel).With().Timestamp().Logger()

// loadConfig loads the app configuration, applies the global flags and configures the logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *pricesFile != "" {
		cfg.PricesFile = *pricesFile
	}
	if *pricesPath != "" {
		cfg.PricesPath = *pricesPath
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger = logger.Level(level)
	logger.Debug().Str("config", *configFile).Str("currency", cfg.Currency).Msg("configuration loaded")
	return cfg, nil
}

// NewPortfolio loads the configuration and returns an empty portfolio using its price table.
func NewPortfolio() (*config.Config, *tracker.Portfolio, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	prices, err := cfg.PriceTable()
	if err != nil {
		return nil, nil, err
	}
	logger.Debug().Int("symbols", prices.Len()).Str("currency", prices.Currency()).Msg("price table ready")
	return cfg, tracker.NewPortfolio(prices), nil
}

// printMarkdown prints markdown formatted for the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	logger.Warn().Err(err).Msg("cannot format markdown, printing it raw")
	fmt.Print(md)
}
