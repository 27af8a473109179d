// Package color converts linear colors to 8-bit channels.
//
// A color is a vec.Vec3 read as linear RGB. Encoding clamps each channel to
// [0,1], optionally applies the inverse of a display gamma, and quantizes to a
// byte. Out-of-range input is saturated, never rejected.
package color

import (
	"fmt"
	"io"
	"math"

	"github.com/agbru/rtcore/internal/vec"
)

// Color is a linear RGB color.
type Color[T vec.Float] = vec.Vec3[T]

// RGB8 holds one quantized pixel in R, G, B order.
type RGB8 [3]uint8

// Linear is the gamma value that disables gamma correction.
const Linear = 1

// quantizeScale maps 1.0 to 255 despite rounding error near the top of the range.
const quantizeScale = 255.999

// NewColor creates a color from its linear channels.
func NewColor[T vec.Float](r, g, b T) Color[T] {
	return vec.New(r, g, b)
}

// Clamp01 saturates x to [0,1]. NaN maps to 0.
func Clamp01[T vec.Float](x T) T {
	if !(x >= 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// ToByte maps x to [0,255] as floor(255.999 * clamp01(x)).
func ToByte[T vec.Float](x T) uint8 {
	return uint8(quantizeScale * float64(Clamp01(x)))
}

// Encode quantizes c. A gamma of Linear skips the power curve; any other
// value raises each clamped channel to 1/gamma first.
func Encode[T vec.Float](c Color[T], gamma T) RGB8 {
	if gamma == Linear {
		return RGB8{ToByte(c.E[0]), ToByte(c.E[1]), ToByte(c.E[2])}
	}
	inv := 1 / gamma
	var out RGB8
	for i := range out {
		out[i] = ToByte(T(math.Pow(float64(Clamp01(c.E[i])), float64(inv))))
	}
	return out
}

// Put writes the encoded channels of c into dst[0:3]. dst must hold at least
// three bytes.
func Put[T vec.Float](dst []byte, c Color[T], gamma T) {
	px := Encode(c, gamma)
	_ = dst[2]
	dst[0], dst[1], dst[2] = px[0], px[1], px[2]
}

// WriteText writes the encoded channels of c as "r g b\n".
func WriteText[T vec.Float](w io.Writer, c Color[T], gamma T) error {
	_, err := io.WriteString(w, Encode(c, gamma).String()+"\n")
	return err
}

// String formats the channels as three space separated decimals.
func (p RGB8) String() string {
	return fmt.Sprintf("%d %d %d", p[0], p[1], p[2])
}

// WritePPMHeader writes the plain-text header of a width x height image with
// a maximum channel value of 255. WriteText lines form its body.
func WritePPMHeader(w io.Writer, width, height int) error {
	_, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", width, height)
	return err
}
