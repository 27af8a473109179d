package render

import (
	"github.com/agbru/rtcore/internal/color"
	"github.com/agbru/rtcore/internal/vec"
)

// Sampler returns the linear color of pixel (i, j), where i is the column
// and j the row counted from the top.
type Sampler[T vec.Float] func(i, j int) color.Color[T]

// Gradient returns the reference test pattern of a width x height image: red
// grows from left to right, green from top to bottom, blue stays at zero.
// A single column or row has its ramp pinned at zero.
func Gradient[T vec.Float](width, height int) Sampler[T] {
	sx, sy := rampScale[T](width), rampScale[T](height)
	return func(i, j int) color.Color[T] {
		return color.NewColor(T(i)*sx, T(j)*sy, 0)
	}
}

func rampScale[T vec.Float](n int) T {
	if n <= 1 {
		return 0
	}
	return 1 / T(n-1)
}
