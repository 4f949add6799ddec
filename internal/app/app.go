//go:build ebiten

package app

import (
	"context"
	"log/slog"

	"adaptive-life/internal/board"
	"adaptive-life/internal/core"
	"adaptive-life/internal/engine"
	"adaptive-life/internal/render"
	"adaptive-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth    = 220
	ageLevels   = 16
	maxPerFrame = 64
)

var helpLines = []string{
	"space  pause/run",
	"n      single step",
	"r      reset to seed",
	"g      random fill",
	"b      switch backend",
	"+/-    faster/slower",
	"arrows pan",
	"click  toggle cell",
	"q      quit",
}

// Game adapts the engine to the ebiten.Game interface.
type Game struct {
	eng     *engine.Engine
	seed    []board.Coord
	random  float64
	logger  *slog.Logger
	painter *render.GridPainter
	grid    *core.ByteGrid
	view    render.Viewport
	hud     *ui.HUD
	pacer   *core.Pacer

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for eng. seed is replayed on reset; random, when
// positive, fills bounded boards instead.
func New(eng *engine.Engine, seed []board.Coord, cfg *Config, logger *slog.Logger) *Game {
	size := ViewSize(eng.Board(), cfg)
	g := &Game{
		eng:     eng,
		seed:    seed,
		random:  cfg.Random,
		logger:  logger,
		painter: render.NewGridPainter(size.W, size.H, render.AgePalette(ageLevels)),
		grid:    core.NewByteGrid(size.W, size.H),
		view:    render.CenteredOn(board.Coord{}, size),
		hud:     ui.NewHUD(eng, hudWidth, helpLines),
		pacer:   core.NewPacer(cfg.Rate, maxPerFrame),
		scale:   max(cfg.Scale, 1),
	}
	g.Reset()
	return g
}

// Reset restores the initial board.
func (g *Game) Reset() {
	g.eng.Reset()
	if g.random > 0 && g.eng.Board().Finite() {
		g.eng.Randomize(g.random)
	} else {
		g.eng.Seed(g.seed)
	}
	g.tickOnce = false
	g.logger.Info("board reset", "population", g.eng.Board().Population(), "backend", g.eng.Kind().String())
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) && g.eng.Board().Finite() {
		p := g.random
		if p <= 0 {
			p = 0.3
		}
		g.eng.Randomize(p)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.eng.Switch()
		g.logger.Info("backend switched manually", "backend", g.eng.Kind().String())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.pacer.SetRate(min(g.pacer.Rate()*2, 3840))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.pacer.SetRate(max(g.pacer.Rate()/2, 1))
	}
	g.pan()
	g.toggleUnderCursor()

	steps := g.pacer.Steps()
	switch {
	case g.tickOnce:
		g.eng.Iterations(context.Background(), 1)
		g.tickOnce = false
	case !g.paused && steps > 0:
		g.eng.Iterations(context.Background(), steps)
	}
	g.hud.Update()
	return nil
}

func (g *Game) pan() {
	if g.eng.Board().Finite() {
		return
	}
	step := max(g.view.Size.W/20, 1)
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.view.Origin.Col -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.view.Origin.Col += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.view.Origin.Row -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.view.Origin.Row += step
	}
}

func (g *Game) toggleUnderCursor() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := mx/g.scale, my/g.scale
	if x < 0 || y < 0 || x >= g.view.Size.W || y >= g.view.Size.H {
		return
	}
	c := g.view.ToBoard(x, y)
	g.eng.Board().Toggle(c.Col, c.Row)
}

// Draw renders the current board and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	render.Rasterize(g.eng.Board(), g.view, g.grid, ageLevels)
	g.painter.Blit(screen, g.grid.Cells(), g.scale)
	g.hud.Draw(screen, g.view.Size.W*g.scale, g.view.Size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.Size.W*g.scale + g.hud.Width(), g.view.Size.H * g.scale
}
