package render

import (
	"github.com/agbru/rtcore/internal/color"
	"github.com/agbru/rtcore/internal/ray"
	"github.com/agbru/rtcore/internal/vec"
)

// Camera generates primary rays through a viewport two units high placed one
// unit in front of the origin, looking down -Z.
type Camera[T vec.Float] struct {
	origin          vec.Vec3[T]
	lowerLeftCorner vec.Vec3[T]
	horizontal      vec.Vec3[T]
	vertical        vec.Vec3[T]
}

// NewCamera creates a camera whose viewport matches the width/height ratio
// of the image.
func NewCamera[T vec.Float](width, height int) Camera[T] {
	aspectRatio := T(max(width, 1)) / T(max(height, 1))
	viewportHeight := T(2)
	viewportWidth := aspectRatio * viewportHeight
	focalLength := T(1)

	origin := vec.New[T](0, 0, 0)
	horizontal := vec.New(viewportWidth, 0, 0)
	vertical := vec.New(0, viewportHeight, 0)
	lowerLeftCorner := origin.Sub(horizontal.Scale(0.5)).
		Sub(vertical.Scale(0.5)).
		Sub(vec.New(0, 0, focalLength))

	return Camera[T]{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// Ray returns the ray through viewport coordinates (s, t), where (0, 0) is
// the lower left corner and (1, 1) the upper right one.
func (c Camera[T]) Ray(s, t T) ray.Ray[T] {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Scale(s)).
		Add(c.vertical.Scale(t)).
		Sub(c.origin)
	return ray.New(c.origin, direction)
}

// Sky colors of the background gradient.
var (
	skyBottom = [3]float64{1, 1, 1}
	skyTop    = [3]float64{0.5, 0.7, 1.0}
)

// Background blends white and light blue along the vertical component of the
// normalized ray direction.
func Background[T vec.Float](r ray.Ray[T]) color.Color[T] {
	unitDirection := vec.Unit(r.Direction())
	t := T(0.5) * (unitDirection.Y() + 1)

	bottom := color.NewColor(T(skyBottom[0]), T(skyBottom[1]), T(skyBottom[2]))
	top := color.NewColor(T(skyTop[0]), T(skyTop[1]), T(skyTop[2]))
	return bottom.Scale(1 - t).Add(top.Scale(t))
}

// Sky returns a sampler that casts one ray per pixel center and shades it
// with Background. Row 0 is the top of the image.
func Sky[T vec.Float](width, height int) Sampler[T] {
	cam := NewCamera[T](width, height)
	sx, sy := rampScale[T](width), rampScale[T](height)
	return func(i, j int) color.Color[T] {
		s := T(i) * sx
		t := T(height-1-j) * sy
		return Background(cam.Ray(s, t))
	}
}

// Scenes lists the samplers selectable by name.
var Scenes = []string{"gradient", "sky"}

// SceneSampler returns the sampler registered under name and whether it
// exists.
func SceneSampler[T vec.Float](name string, width, height int) (Sampler[T], bool) {
	switch name {
	case "gradient":
		return Gradient[T](width, height), true
	case "sky":
		return Sky[T](width, height), true
	}
	return nil, false
}
