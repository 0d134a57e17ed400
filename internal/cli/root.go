// SPDX-License-Identifier: MIT

// Package cli implements the lvtopo command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/internal/config"
	"github.com/katalvlaran/lvtopo/internal/metrics"
	"github.com/katalvlaran/lvtopo/topoerr"
)

// Version is stamped at build time.
var Version = "0.1.0-dev"

// ErrUsage indicates missing or conflicting command inputs.
var ErrUsage = topoerr.New(topoerr.ErrInvalidArgument, "lvtopo: bad usage")

// app is the state shared by one command invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	metrics    bool
	metricsFmt string
	dump       bool

	cfg   config.Config
	log   *slog.Logger
	rec   *metrics.Recorder
	runID string
}

// NewRootCmd returns the lvtopo root command with every subcommand.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvtopo",
		Short: "Filtered simplicial complexes from point clouds and graphs",
		Long: `lvtopo builds Alpha and Witness filtrations, reduces flag complexes
by strong collapse and simplifies complexes by edge contraction.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text, json")
	pf.BoolVar(&a.metrics, "metrics", false, "print a metrics summary after the run")
	pf.StringVar(&a.metricsFmt, "metrics-format", "summary", "metrics format: summary, text")
	pf.BoolVar(&a.dump, "dump", false, "print every simplex in filtration order")

	root.AddCommand(
		newVersionCmd(),
		a.newAlphaCmd(),
		a.newWitnessCmd(),
		a.newCollapseCmd(),
		a.newSimplifyCmd(),
	)

	return root
}

// setup loads the configuration, applies global flag overrides and builds
// the logger and recorder.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("metrics") {
		cfg.Metrics = a.metrics
	}
	if flags.Changed("metrics-format") {
		cfg.MetricsFormat = a.metricsFmt
	}
	if flags.Changed("dump") {
		cfg.Dump = a.dump
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.runID = uuid.NewString()
	a.log = newLogger(cmd.ErrOrStderr(), cfg.Log).With("run_id", a.runID, "command", cmd.Name())
	a.rec = metrics.New()
	a.log.Debug("configuration loaded", "config", a.configPath)

	return nil
}

// finish prints the metrics when enabled, in the configured format.
func (a *app) finish(w io.Writer) error {
	if !a.cfg.Metrics {
		return nil
	}
	if a.cfg.MetricsFormat == "text" {
		return a.rec.WriteText(w)
	}
	fmt.Fprintln(w, "# metrics")

	return a.rec.WriteSummary(w)
}

func newLogger(w io.Writer, c config.LogConfig) *slog.Logger {
	var level slog.Level
	_ = level.UnmarshalText([]byte(c.Level))
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvtopo version %s\n", Version)
		},
	}
}
