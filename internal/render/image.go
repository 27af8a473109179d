package render

import (
	"image"

	"github.com/agbru/rtcore/internal/color"
)

// Channels is the number of bytes per pixel.
const Channels = 3

// Image is a row-major RGB8 buffer.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage allocates a black image. Dimensions below one are raised to one.
func NewImage(width, height int) *Image {
	width, height = max(width, 1), max(height, 1)
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}
}

// Stride is the distance in bytes between two vertically adjacent pixels.
func (m *Image) Stride() int {
	return m.Width * Channels
}

// PixOffset returns the index of the first byte of pixel (x, y) in Pix.
func (m *Image) PixOffset(x, y int) int {
	return y*m.Stride() + x*Channels
}

// Row returns the bytes of row y.
func (m *Image) Row(y int) []uint8 {
	off := y * m.Stride()
	return m.Pix[off : off+m.Stride() : off+m.Stride()]
}

// RGBAt returns the pixel at (x, y).
func (m *Image) RGBAt(x, y int) color.RGB8 {
	i := m.PixOffset(x, y)
	return color.RGB8{m.Pix[i], m.Pix[i+1], m.Pix[i+2]}
}

// NRGBA converts the buffer to an opaque image.NRGBA for the standard
// encoders.
func (m *Image) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		src := m.Row(y)
		dst := out.Pix[y*out.Stride : y*out.Stride+m.Width*4]
		for x := 0; x < m.Width; x++ {
			dst[x*4+0] = src[x*Channels+0]
			dst[x*4+1] = src[x*Channels+1]
			dst[x*4+2] = src[x*Channels+2]
			dst[x*4+3] = 0xff
		}
	}
	return out
}
