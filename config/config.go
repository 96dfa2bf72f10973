// Package config loads the pst configuration: the price table and the export
// preferences.
//
// A configuration file is optional. Its format is chosen from its extension:
// YAML (.yaml, .yml) or TOML (.toml). Missing values take their default,
// environment variables PST_* override the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/etnz/tracker"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the configuration.
const (
	EnvCurrency    = "PST_CURRENCY"
	EnvExportDir   = "PST_EXPORT_DIR"
	EnvImageFormat = "PST_IMAGE_FORMAT"
	EnvLogLevel    = "PST_LOG_LEVEL"
)

// Config holds all the configuration of pst.
type Config struct {
	// Currency of every price in the table.
	Currency string `yaml:"currency" toml:"currency" default:"USD" validate:"required,len=3,uppercase"`
	// Prices is the fixed table of unit prices, by symbol.
	Prices map[string]float64 `yaml:"prices" toml:"prices" default:"{\"AAPL\":180,\"TSLA\":250,\"GOOGL\":2750,\"AMZN\":3200,\"MSFT\":310}" validate:"required,min=1,dive,keys,required,endkeys,finite,gt=0"`
	// PricesFile is an optional JSON document to read the prices from, instead of Prices.
	PricesFile string `yaml:"prices_file" toml:"prices_file"`
	// PricesPath is the JSONPath selecting the prices object in PricesFile.
	PricesPath string `yaml:"prices_path" toml:"prices_path" default:"$"`
	// ExportDir is where summaries are saved. Defaults to the user's Desktop.
	ExportDir string `yaml:"export_dir" toml:"export_dir"`
	// ImageFormat of the exported table image.
	ImageFormat string `yaml:"image_format" toml:"image_format" default:"png" validate:"oneof=png svg"`
	// Log configures diagnostics, written to stderr.
	Log LogConfig `yaml:"log" toml:"log"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `yaml:"level" toml:"level" default:"warn" validate:"oneof=debug info warn error disabled"`
}

var validate = newValidator()

// newValidator returns a validator that also knows the "finite" tag: a float
// that is neither infinite nor NaN. YAML .inf and TOML inf decode as floats.
func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.Float32 && f.Kind() != reflect.Float64 {
			return false
		}
		return !math.IsInf(f.Float(), 0) && !math.IsNaN(f.Float())
	})
	if err != nil {
		panic(err) // constant tag
	}
	return v
}

// Default returns the configuration used when there is no file: the built-in
// prices and the environment overrides.
func Default() *Config {
	c, err := Load("")
	if err != nil {
		panic(err) // defaults are valid
	}
	return c
}

// Load reads the configuration file at 'path', applies defaults and
// environment overrides, and validates the result.
//
// An empty path loads the default configuration.
func Load(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := unmarshal(path, b, &c); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("set config defaults: %w", err)
	}
	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

func unmarshal(path string, b []byte, c *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		return dec.Decode(c)
	default:
		return fmt.Errorf("unsupported config format %q, want .yaml, .yml or .toml", ext)
	}
}

// applyEnv overrides the configuration with PST_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvCurrency); v != "" {
		c.Currency = strings.ToUpper(v)
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		c.ExportDir = v
	}
	if v := os.Getenv(EnvImageFormat); v != "" {
		c.ImageFormat = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// ResolveExportDir returns the export directory, defaulting to ~/Desktop.
func (c *Config) ResolveExportDir() (string, error) {
	if c.ExportDir != "" {
		return c.ExportDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate the Desktop: %w", err)
	}
	return filepath.Join(home, "Desktop"), nil
}

// PriceTable builds the price table: read from PricesFile when set, or from Prices.
func (c *Config) PriceTable() (*tracker.PriceTable, error) {
	if c.PricesFile == "" {
		return tracker.NewPriceTable(c.Currency, c.Prices)
	}
	f, err := os.Open(c.PricesFile)
	if err != nil {
		return nil, fmt.Errorf("open prices file: %w", err)
	}
	defer f.Close()
	t, err := tracker.ImportPriceTable(f, c.PricesPath, c.Currency)
	if err != nil {
		return nil, fmt.Errorf("import prices from %q: %w", c.PricesFile, err)
	}
	return t, nil
}
