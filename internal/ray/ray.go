// Package ray provides a half-line made of an origin point and a direction,
// parameterized by the same precision as the vectors it is built on.
package ray

import "github.com/agbru/rtcore/internal/vec"

// Ray represents a ray with an origin and direction.
type Ray[T vec.Float] struct {
	orig vec.Vec3[T]
	dir  vec.Vec3[T]
}

// New creates a new ray.
func New[T vec.Float](origin, direction vec.Vec3[T]) Ray[T] {
	return Ray[T]{orig: origin, dir: direction}
}

// Origin returns the point the ray starts from.
func (r Ray[T]) Origin() vec.Vec3[T] { return r.orig }

// Direction returns the ray direction. It is not required to be normalized.
func (r Ray[T]) Direction() vec.Vec3[T] { return r.dir }

// At returns the point at parameter t along the ray. Negative t is accepted
// and walks backwards from the origin.
func (r Ray[T]) At(t T) vec.Vec3[T] {
	return r.orig.Add(r.dir.Scale(t))
}

// ToDouble widens a ray of any precision to double precision.
func ToDouble[P vec.Double, Q vec.Float](r Ray[Q]) Ray[P] {
	return Ray[P]{orig: vec.ToDouble[P](r.orig), dir: vec.ToDouble[P](r.dir)}
}
