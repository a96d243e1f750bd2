// Package config loads dashboard settings.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional YAML file, AIRFIN_* environment variables (a .env file in the
// working directory is loaded first), and command-line flags applied by
// the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/andareed/airline-dash/dataset"
	"github.com/andareed/airline-dash/export"
	"github.com/andareed/airline-dash/reconcile"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "AIRFIN_"

// Config is the raw, string-typed configuration. Call Validate before
// Selection.
type Config struct {
	// DefaultTab is the tab shown at startup.
	// Default: overview
	DefaultTab string `yaml:"default_tab"`

	// YearRange is the initial year filter: all, historical or projected.
	// Default: all
	YearRange string `yaml:"year_range"`

	// Airlines is the initial airline selection by name or slug. An empty
	// list selects every airline.
	Airlines []string `yaml:"airlines"`

	// RevenueChart is line or bar.
	// Default: line
	RevenueChart string `yaml:"revenue_chart"`

	// ExportDir is where interactive exports are written.
	// Default: current directory
	ExportDir string `yaml:"export_dir"`

	// ExportFormat is json, yaml or xlsx.
	// Default: json
	ExportFormat string `yaml:"export_format"`

	NoColor bool `yaml:"no_color"`

	problems []string
}

func Default() *Config {
	return &Config{
		DefaultTab:   "overview",
		YearRange:    "all",
		RevenueChart: "line",
		ExportDir:    ".",
		ExportFormat: "json",
	}
}

// Load builds a Config from defaults, the YAML file at path (if any) and
// the environment. A missing .env file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv(os.LookupEnv)
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	str("DEFAULT_TAB", &c.DefaultTab)
	str("YEAR_RANGE", &c.YearRange)
	str("REVENUE_CHART", &c.RevenueChart)
	str("EXPORT_DIR", &c.ExportDir)
	str("EXPORT_FORMAT", &c.ExportFormat)

	if v, ok := lookup(envPrefix + "AIRLINES"); ok && v != "" {
		c.Airlines = SplitList(v)
	}
	if v, ok := lookup(envPrefix + "NO_COLOR"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.problems = append(c.problems, fmt.Sprintf("invalid %sNO_COLOR '%s': must be a boolean", envPrefix, v))
		} else {
			c.NoColor = b
		}
	}
}

// SplitList splits a comma-separated flag or variable value.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	errs := append([]string(nil), c.problems...)

	if _, err := reconcile.ParseTab(c.DefaultTab); err != nil {
		errs = append(errs, fmt.Sprintf("invalid default_tab: %v", err))
	}
	if _, err := reconcile.ParseYearRange(c.YearRange); err != nil {
		errs = append(errs, fmt.Sprintf("invalid year_range: %v", err))
	}
	if _, err := reconcile.ParseChartType(c.RevenueChart); err != nil {
		errs = append(errs, fmt.Sprintf("invalid revenue_chart: %v", err))
	}
	if _, err := export.ParseFormat(c.ExportFormat); err != nil {
		errs = append(errs, fmt.Sprintf("invalid export_format: %v", err))
	}
	for _, name := range c.Airlines {
		if _, ok := dataset.Lookup(name); !ok {
			errs = append(errs, fmt.Sprintf("unknown airline '%s'", name))
		}
	}
	if c.ExportDir != "" {
		if st, err := os.Stat(c.ExportDir); err != nil {
			errs = append(errs, fmt.Sprintf("export_dir '%s': %v", c.ExportDir, err))
		} else if !st.IsDir() {
			errs = append(errs, fmt.Sprintf("export_dir '%s' is not a directory", c.ExportDir))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Selection turns a validated Config into the dashboard's starting
// selection. Invalid values fall back to the defaults.
func (c *Config) Selection(ds *dataset.Dataset) reconcile.Selection {
	sel := reconcile.DefaultSelection(ds)
	if t, err := reconcile.ParseTab(c.DefaultTab); err == nil {
		sel.Tab = t
	}
	if r, err := reconcile.ParseYearRange(c.YearRange); err == nil {
		sel.Range = r
	}
	if ct, err := reconcile.ParseChartType(c.RevenueChart); err == nil {
		sel.RevenueChart = ct
	}
	if len(c.Airlines) > 0 {
		sel.Airlines = dataset.ParseAirlines(c.Airlines)
	}
	return sel
}

func (c *Config) Format() export.Format {
	f, _ := export.ParseFormat(c.ExportFormat)
	return f
}
