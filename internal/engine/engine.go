// Package engine advances a Life board one generation at a time and picks
// the cheaper storage backend for the current pattern density.
package engine

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"adaptive-life/internal/board"
	"adaptive-life/internal/logging"
	"adaptive-life/pkg/core"
)

var tracer trace.Tracer = otel.Tracer("adaptive-life/internal/engine")

// Engine owns the current board and the switching state. It is not safe for
// concurrent use.
type Engine struct {
	cfg   Config
	board *board.Board
	kind  board.Kind

	iteration     uint64
	lastBatchTime time.Duration
	sinceSwitch   int
	density       float64

	rng    *core.RNG
	logger *slog.Logger
}

// Option customises an Engine at construction.
type Option func(*Engine)

// WithLogger routes switch and compaction events to l.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRNG replaces the random source used by CreateRandom.
func WithRNG(r *core.RNG) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// New returns an engine with an empty board. Invalid fields of cfg fall back
// to their defaults. Callers should start from DefaultConfig: the zero Config
// has Adaptive unset, so the engine never switches backends or compacts.
func New(cfg Config, opts ...Option) *Engine {
	def := DefaultConfig()
	if cfg.Cols < 0 {
		cfg.Cols = 0
	}
	if cfg.Rows < 0 {
		cfg.Rows = 0
	}
	if cfg.DensityThreshold <= 0 {
		cfg.DensityThreshold = def.DensityThreshold
	}
	if cfg.SwitchInertia < 0 {
		cfg.SwitchInertia = def.SwitchInertia
	}
	if cfg.CleanupInterval < 0 {
		cfg.CleanupInterval = def.CleanupInterval
	}
	e := &Engine{
		cfg:    cfg,
		kind:   cfg.kind(),
		rng:    core.NewRNG(cfg.Seed),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.board = board.New(e.kind, cfg.Cols, cfg.Rows)
	return e
}

// Seed brings the given coordinates to life on the current board.
func (e *Engine) Seed(coords []board.Coord) { e.board.Seed(coords) }

// Board returns the current board. It stays unchanged until the next call
// that replaces it.
func (e *Engine) Board() *board.Board { return e.board }

// SetBoard installs b as the current board and adopts its backend and
// extents.
func (e *Engine) SetBoard(b *board.Board) {
	e.board = b
	e.kind = b.Kind()
	e.cfg.Cols, _ = b.Cols()
	e.cfg.Rows, _ = b.Rows()
}

// Iteration returns the number of generations computed since the last reset.
func (e *Engine) Iteration() uint64 { return e.iteration }

// LastBatchTime returns the wall-clock duration of the last Iterations call.
func (e *Engine) LastBatchTime() time.Duration { return e.lastBatchTime }

// Kind returns the active storage backend.
func (e *Engine) Kind() board.Kind { return e.kind }

// Density returns the density computed by the most recent step.
func (e *Engine) Density() float64 { return e.density }

// Config returns the effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// Reset discards the board and restarts the iteration count. The extents and
// the active backend are kept.
func (e *Engine) Reset() {
	e.board = board.New(e.kind, e.cfg.Cols, e.cfg.Rows)
	e.iteration = 0
	e.lastBatchTime = 0
	e.density = 0
}

// CreateRandom returns a new board of the same shape where every position is
// alive with probability p. Unbounded boards come back empty.
func (e *Engine) CreateRandom(p float64) *board.Board {
	b := board.New(e.kind, e.cfg.Cols, e.cfg.Rows)
	if !b.Finite() {
		return b
	}
	colLo, colHi := board.Bounds(e.cfg.Cols)
	rowLo, rowHi := board.Bounds(e.cfg.Rows)
	for row := rowLo; row < rowHi; row++ {
		for col := colLo; col < colHi; col++ {
			if e.rng.Chance(p) {
				b.BornAt(col, row)
			}
		}
	}
	return b
}

// Randomize replaces the board with CreateRandom(p).
func (e *Engine) Randomize(p float64) { e.SetBoard(e.CreateRandom(p)) }

type minMax struct {
	min, max int
}

// Step computes one generation.
func (e *Engine) Step() {
	start := time.Now()
	cur := e.board
	next := board.New(e.kind, e.cfg.Cols, e.cfg.Rows)

	checked := 0
	var rows map[int]minMax
	if e.kind == board.KindHashed {
		rows = make(map[int]minMax)
	}

	for d := range cur.All() {
		col, row := d.Coord.Col, d.Coord.Row
		if rows != nil {
			mm, ok := rows[row]
			switch {
			case !ok:
				rows[row] = minMax{min: col, max: col}
			case col < mm.min:
				mm.min = col
				rows[row] = mm
			case col > mm.max:
				mm.max = col
				rows[row] = mm
			}
		} else {
			checked++
		}

		n := cur.LiveNeighbors(col, row)
		if d.Alive {
			if n == 2 || n == 3 {
				next.BornAtGen(col, row, d.Gen+1)
			}
		} else if n == 3 {
			next.BornAt(col, row)
		}
	}

	e.board = next

	if rows != nil {
		for _, mm := range rows {
			checked += absInt(mm.max) + absInt(mm.min)
		}
	}
	e.density = 0
	if checked > 0 {
		e.density = float64(next.Population()) / float64(checked)
	}

	switched := false
	if e.cfg.Adaptive && e.sinceSwitch > e.cfg.SwitchInertia {
		switch {
		case e.kind == board.KindHashed && e.density >= e.cfg.DensityThreshold:
			e.switchBackend()
			switched = true
		case e.kind == board.KindDense && e.density < e.cfg.DensityThreshold:
			e.switchBackend()
			switched = true
		}
	}

	e.iteration++
	e.sinceSwitch++

	if !switched && e.cfg.Adaptive && e.kind == board.KindDense &&
		e.cfg.CleanupInterval > 0 && e.iteration%uint64(e.cfg.CleanupInterval) == 0 {
		e.Compact()
	}

	stepsTotal.Inc()
	stepDuration.Observe(time.Since(start).Seconds())
	populationGauge.Set(float64(e.board.Population()))
	densityGauge.Set(e.density)
	slotsGauge.Set(float64(e.board.Slots()))
}

// Iterations runs n steps and returns their total wall-clock time.
func (e *Engine) Iterations(ctx context.Context, n int) time.Duration {
	_, span := tracer.Start(ctx, "engine.Iterations")
	defer span.End()

	start := time.Now()
	for i := 0; i < n; i++ {
		before := e.kind
		e.Step()
		if e.kind != before {
			span.AddEvent("backend switch", trace.WithAttributes(
				attribute.String("to", e.kind.String()),
				attribute.Int64("iteration", int64(e.iteration)),
				attribute.Float64("density", e.density),
			))
		}
	}
	e.lastBatchTime = time.Since(start)

	span.SetAttributes(
		attribute.Int("iterations", n),
		attribute.Int("population", e.board.Population()),
		attribute.String("backend", e.kind.String()),
	)
	return e.lastBatchTime
}

// Switch moves the board to the other storage backend.
func (e *Engine) Switch() {
	e.switchBackend()
}

func (e *Engine) switchBackend() {
	from := e.kind
	e.kind = from.Other()
	e.board = e.board.Rebuild(e.kind)
	e.sinceSwitch = 0
	backendSwitchesTotal.WithLabelValues(e.kind.String()).Inc()
	e.logger.Debug("storage backend switched",
		"from", from.String(),
		"to", e.kind.String(),
		"density", e.density,
		"population", e.board.Population(),
		"iteration", e.iteration,
	)
}

// Compact rebuilds the board on a fresh backend of the same kind, dropping
// allocated dead slots.
func (e *Engine) Compact() {
	before := e.board.Slots()
	e.board = e.board.Rebuild(e.kind)
	compactionsTotal.Inc()
	e.logger.Debug("board compacted",
		"backend", e.kind.String(),
		"slots_before", before,
		"slots_after", e.board.Slots(),
		"iteration", e.iteration,
	)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
