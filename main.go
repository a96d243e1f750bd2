package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/andareed/airline-dash/config"
	"github.com/andareed/airline-dash/dataset"
	"github.com/andareed/airline-dash/export"
	"github.com/andareed/airline-dash/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	flag "github.com/spf13/pflag"
)

type options struct {
	configPath string
	logFile    string
	tab        string
	yearRange  string
	airlines   string
	exportPath string
	noColor    bool
	version    bool
}

var errUsage = errors.New("usage")

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fs := flag.NewFlagSet("airline-dash", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.StringVar(&opts.logFile, "debug", "", "Write debug logs to file")
	fs.StringVar(&opts.tab, "tab", "", "start on tab: overview, revenue, profit, projections, insights")
	fs.StringVar(&opts.yearRange, "range", "", "year range: all, historical, projected")
	fs.StringVar(&opts.airlines, "airlines", "", "comma-separated airlines to show (names or slugs)")
	fs.StringVar(&opts.exportPath, "export", "", "write an export to this path and exit (.json, .yaml or .xlsx)")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable colour output")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, nil, errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return nil, nil, errUsage
	}
	return opts, fs, nil
}

// loadConfig layers command-line flags over the config file and
// environment.
func loadConfig(opts *options, fs *flag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if fs.Changed("tab") {
		cfg.DefaultTab = opts.tab
	}
	if fs.Changed("range") {
		cfg.YearRange = opts.yearRange
	}
	if fs.Changed("airlines") {
		cfg.Airlines = config.SplitList(opts.airlines)
	}
	if fs.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	// --- EARLY EXIT ---
	if opts.version {
		fmt.Fprintln(stdout, "Version:", Version)
		return nil
	}

	cleanup, err := logging.SetupLogging(opts.logFile)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer cleanup()

	cfg, err := loadConfig(opts, fs)
	if err != nil {
		return err
	}
	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	ds := dataset.Default()
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	sel := cfg.Selection(ds)
	logging.Infof("airline-dash %s: started tab=%s range=%s airlines=%v", Version, sel.Tab, sel.Range, dataset.Names(sel.Airlines))

	if opts.exportPath != "" {
		p := export.NewPayload(ds, sel, time.Now())
		f, err := export.WriteFile(opts.exportPath, p, ds, cfg.Format())
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Exported %s (%s)\n", opts.exportPath, f)
		return nil
	}

	m := newModel(ds, sel)
	m.exportDir = cfg.ExportDir
	m.exportFormat = cfg.Format()

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("tea program: %v", err)
		return err
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			log.SetFlags(0)
			log.SetOutput(os.Stderr)
			log.Printf("airline-dash: %v", err)
		}
		os.Exit(1)
	}
}
