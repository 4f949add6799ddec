package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"adaptive-life/internal/board"
	"adaptive-life/internal/engine"
	"adaptive-life/internal/loader"
	"adaptive-life/internal/logging"
)

// options holds the flags shared by the simulation commands.
type options struct {
	logLevel string
	jsonLogs bool

	configPath string
	pattern    string
	cols       int
	rows       int
	backend    string
	random     float64
	seed       int64
	iterations int
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "lifectl",
		Short:        "Headless runner for the adaptive Game of Life engine",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "emit logs as JSON lines")

	root.AddCommand(newRunCmd(opts), newCompareCmd(opts), newParseCmd(opts))
	return root
}

func bindSimFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML engine configuration file")
	f.StringVar(&opts.pattern, "pattern", "", "RLE pattern file to seed the board")
	f.IntVar(&opts.cols, "cols", 0, "board columns (0 keeps the configured value, unbounded by default)")
	f.IntVar(&opts.rows, "rows", 0, "board rows (0 keeps the configured value, unbounded by default)")
	f.StringVar(&opts.backend, "backend", "", "initial storage backend (hashed or dense)")
	f.Float64Var(&opts.random, "random", 0, "random fill probability; requires a bounded board")
	f.Int64Var(&opts.seed, "seed", 0, "random seed (0 keeps the configured seed)")
	f.IntVarP(&opts.iterations, "iterations", "n", 1000, "generations to compute")
}

func (o *options) logger(cmd *cobra.Command) (*slog.Logger, error) {
	l, err := logging.New(logging.Config{Level: o.logLevel, JSON: o.jsonLogs, Output: cmd.ErrOrStderr()})
	if err != nil {
		return nil, err
	}
	return l.With("run_id", uuid.NewString()), nil
}

func (o *options) engineConfig() (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if o.configPath != "" {
		loaded, err := engine.LoadConfig(o.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if o.cols > 0 {
		cfg.Cols = o.cols
	}
	if o.rows > 0 {
		cfg.Rows = o.rows
	}
	if o.backend != "" {
		cfg.Backend = o.backend
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if o.random > 0 && (cfg.Cols == 0 || cfg.Rows == 0) {
		return cfg, fmt.Errorf("--random needs a bounded board, got cols=%d rows=%d", cfg.Cols, cfg.Rows)
	}
	return cfg, nil
}

// seedEngine applies the pattern or the random fill to e.
func (o *options) seedEngine(e *engine.Engine) error {
	coords, err := o.patternCells()
	if err != nil {
		return err
	}
	if o.random > 0 {
		e.Randomize(o.random)
	}
	e.Seed(coords)
	return nil
}

func (o *options) patternCells() ([]board.Coord, error) {
	if o.pattern == "" {
		return nil, nil
	}
	p, err := loader.ParseFile(o.pattern)
	if err != nil {
		return nil, err
	}
	return p.Centered(), nil
}
