package app

import (
	"flag"

	"adaptive-life/internal/board"
	"adaptive-life/internal/core"
	"adaptive-life/internal/engine"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Pattern    string
	EngineFile string
	Cols       int
	Rows       int
	ViewW      int
	ViewH      int
	Scale      int
	TPS        int
	Rate       int
	Random     float64
	Seed       int64
	Backend    string
	LogLevel   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		ViewW:    200,
		ViewH:    150,
		Scale:    4,
		TPS:      60,
		Rate:     30,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "RLE pattern file to seed the board")
	fs.StringVar(&c.EngineFile, "config", c.EngineFile, "YAML engine configuration file")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns (0 = unbounded)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows (0 = unbounded)")
	fs.IntVar(&c.ViewW, "view-w", c.ViewW, "visible columns on an unbounded board")
	fs.IntVar(&c.ViewH, "view-h", c.ViewH, "visible rows on an unbounded board")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.Float64Var(&c.Random, "random", c.Random, "random fill probability for bounded boards")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill (0 keeps the configured seed)")
	fs.StringVar(&c.Backend, "backend", c.Backend, "initial storage backend, hashed or dense (empty keeps the configured one)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
}

// EngineConfig resolves the engine configuration: the YAML file when given,
// otherwise defaults, with explicit flags applied on top.
func (c *Config) EngineConfig() (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if c.EngineFile != "" {
		loaded, err := engine.LoadConfig(c.EngineFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if c.Cols > 0 {
		cfg.Cols = c.Cols
	}
	if c.Rows > 0 {
		cfg.Rows = c.Rows
	}
	if c.Backend != "" {
		cfg.Backend = c.Backend
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	return cfg, cfg.Validate()
}

// ViewSize returns the visible grid: the whole torus for bounded boards,
// the configured window otherwise.
func ViewSize(b *board.Board, cfg *Config) core.Size {
	s := core.Size{W: cfg.ViewW, H: cfg.ViewH}
	if cols, ok := b.Cols(); ok {
		s.W = cols
	}
	if rows, ok := b.Rows(); ok {
		s.H = rows
	}
	return s
}
