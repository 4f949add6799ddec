package engine

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"adaptive-life/internal/board"
)

const (
	// DefaultDensityThreshold is the live/scanned ratio at which dense storage
	// becomes the cheaper representation.
	DefaultDensityThreshold = 0.03
	// DefaultSwitchInertia is the minimum number of iterations between two
	// backend switches.
	DefaultSwitchInertia = 128
	// DefaultCleanupInterval is how often, in iterations, a dense board is
	// rebuilt to drop long-dead slots.
	DefaultCleanupInterval = 1000
)

// Config controls board extents and the storage switching heuristic.
type Config struct {
	// Cols and Rows bound the board; zero leaves an axis unbounded.
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`

	Seed int64 `yaml:"seed"`

	// Backend is the storage the engine starts with.
	Backend string `yaml:"backend"`
	// Adaptive enables density-driven backend switching and compaction.
	Adaptive bool `yaml:"adaptive"`

	DensityThreshold float64 `yaml:"density_threshold"`
	SwitchInertia    int     `yaml:"switch_inertia"`
	CleanupInterval  int     `yaml:"cleanup_interval"`
}

// DefaultConfig returns an unbounded, adaptive, hashed-first configuration.
func DefaultConfig() Config {
	return Config{
		Seed:             42,
		Backend:          board.KindHashed.String(),
		Adaptive:         true,
		DensityThreshold: DefaultDensityThreshold,
		SwitchInertia:    DefaultSwitchInertia,
		CleanupInterval:  DefaultCleanupInterval,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["backend"]; ok {
		if k, err := board.ParseKind(v); err == nil {
			c.Backend = k.String()
		}
	}
	if v, ok := cfg["adaptive"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Adaptive = parsed
		}
	}
	if v, ok := cfg["density_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.DensityThreshold = parsed
		}
	}
	if v, ok := cfg["switch_inertia"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SwitchInertia = parsed
		}
	}
	if v, ok := cfg["cleanup_interval"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.CleanupInterval = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Cols < 0 || c.Rows < 0 {
		return errors.New("cols and rows must not be negative")
	}
	if _, err := board.ParseKind(c.Backend); err != nil {
		return err
	}
	if c.DensityThreshold <= 0 {
		return fmt.Errorf("density_threshold must be positive, got %v", c.DensityThreshold)
	}
	if c.SwitchInertia < 0 {
		return fmt.Errorf("switch_inertia must not be negative, got %d", c.SwitchInertia)
	}
	if c.CleanupInterval < 0 {
		return fmt.Errorf("cleanup_interval must not be negative, got %d", c.CleanupInterval)
	}
	return nil
}

func (c Config) kind() board.Kind {
	k, err := board.ParseKind(c.Backend)
	if err != nil {
		return board.KindHashed
	}
	return k
}
