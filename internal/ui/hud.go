//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"mad-ant/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 12
	headerBaseline = 14
	groupSpacing   = 22
	lineSpacing    = 16
	valueColumn    = 120
)

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor = color.RGBA{R: 150, G: 180, B: 220, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	title      string
	status     string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: fmt.Sprintf("%s state", sim.Name())}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot from the simulation. status is shown
// below the parameters (e.g. "paused").
func (h *HUD) Update(status string) {
	if h == nil {
		return
	}
	h.status = status
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the HUD panel anchored at offsetX, to the right of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawParameters()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawParameters() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	if len(h.snapshot.Groups) == 0 {
		text.Draw(h.panel, "No parameters", face, panelPadding, y+groupSpacing, dimColor)
		return
	}
	for _, group := range h.snapshot.Groups {
		y += groupSpacing
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		for _, param := range group.Params {
			y += lineSpacing
			text.Draw(h.panel, param.Label, face, panelPadding, y, labelColor)
			text.Draw(h.panel, param.Value, face, panelPadding+valueColumn, y, labelColor)
		}
	}
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, y+groupSpacing, dimColor)
	}
}
