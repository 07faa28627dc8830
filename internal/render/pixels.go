// Package render converts binary cell buffers into RGBA pixels.
package render

import "image/color"

// Default colors for ant grids.
var (
	// CellOn is used for black (1) cells.
	CellOn color.Color = color.RGBA{R: 20, G: 20, B: 24, A: 255}
	// CellOff is used for white (0) cells.
	CellOff color.Color = color.RGBA{R: 236, G: 236, B: 228, A: 255}
	// AntMarker highlights the cell the ant stands on.
	AntMarker color.Color = color.RGBA{R: 220, G: 40, B: 40, A: 255}
)

// Frame is an RGBA pixel buffer with one pixel per cell.
type Frame struct {
	w, h int
	pix  []byte
}

// NewFrame allocates a frame for a grid of size w*h.
func NewFrame(w, h int) *Frame {
	return &Frame{w: w, h: h, pix: make([]byte, 4*w*h)}
}

// Size returns the dimensions of the frame.
func (f *Frame) Size() (int, int) { return f.w, f.h }

// Pix exposes the RGBA bytes, 4 per cell in row-major order.
func (f *Frame) Pix() []byte { return f.pix }

// Fill converts binary cell data (0/1) into pixels. Buffers of the wrong length are ignored
// and reported as false.
func (f *Frame) Fill(cells []uint8, on, off color.Color) bool {
	if len(cells) != f.w*f.h {
		return false
	}
	fillBinaryRGBA(f.pix, cells, on, off)
	return true
}

// Mark paints the single cell (x, y), if it is inside the frame.
func (f *Frame) Mark(x, y int, c color.Color) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	setRGBA(f.pix[4*(y*f.w+x):], c)
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPix, offPix := toBytes(on), toBytes(off)
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			copy(buf[base:base+4], onPix[:])
			continue
		}
		copy(buf[base:base+4], offPix[:])
	}
}

func setRGBA(dst []byte, c color.Color) {
	px := toBytes(c)
	copy(dst[:4], px[:])
}

func toBytes(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
