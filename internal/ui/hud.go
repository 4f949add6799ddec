//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"adaptive-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const lineHeight = 16

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the engine state panel to the right of the board view.
type HUD struct {
	source     parameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	help       []string
}

// NewHUD constructs a HUD for the provided source and panel width.
func NewHUD(source parameterProvider, width int, help []string) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{source: source, width: width, help: help}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot.
func (h *HUD) Update() {
	if h == nil || h.source == nil {
		return
	}
	h.snapshot = h.source.Parameters()
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	ebitenutil.DebugPrintAt(h.panel, strings.Join(h.lines(), "\n"), 8, 8)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) lines() []string {
	var out []string
	for _, group := range h.snapshot.Groups {
		out = append(out, "["+group.Name+"]")
		for _, p := range group.Params {
			out = append(out, "  "+p.Label+": "+p.Value)
		}
		out = append(out, "")
	}
	return append(out, h.help...)
}
