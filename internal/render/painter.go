//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads cell snapshots into a single image and draws it scaled.
type GridPainter struct {
	frame *Frame
	img   *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{frame: NewFrame(w, h), img: ebiten.NewImage(w, h)}
}

// Blit draws cells with the ant marked at (antX, antY). Snapshots of the wrong size are
// skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, antX, antY int, on, off color.Color, scale int) {
	if !gp.frame.Fill(cells, on, off) {
		return
	}
	gp.frame.Mark(antX, antY, AntMarker)
	gp.img.WritePixels(gp.frame.Pix())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.frame.Size() }
