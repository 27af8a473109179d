package vec

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of precisions a vector can be instantiated with.
type Float interface {
	constraints.Float
}

// Single is the single precision subset of Float.
type Single interface {
	~float32
}

// Double is the double precision subset of Float.
type Double interface {
	~float64
}

// Vec3 is a 3D vector with components of precision T.
type Vec3[T Float] struct {
	E [3]T
}

// New creates a vector from its three components.
func New[T Float](e0, e1, e2 T) Vec3[T] {
	return Vec3[T]{E: [3]T{e0, e1, e2}}
}

// X returns the first component.
func (v Vec3[T]) X() T { return v.E[0] }

// Y returns the second component.
func (v Vec3[T]) Y() T { return v.E[1] }

// Z returns the third component.
func (v Vec3[T]) Z() T { return v.E[2] }

// At returns component i. i must be 0, 1 or 2.
func (v Vec3[T]) At(i int) T { return v.E[i] }

// Set assigns component i. i must be 0, 1 or 2.
func (v *Vec3[T]) Set(i int, t T) { v.E[i] = t }

// Neg returns the vector with every component negated.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{E: [3]T{-v.E[0], -v.E[1], -v.E[2]}}
}

// AddAssign adds w to v in place and returns v for chaining.
func (v *Vec3[T]) AddAssign(w Vec3[T]) *Vec3[T] {
	v.E[0] += w.E[0]
	v.E[1] += w.E[1]
	v.E[2] += w.E[2]
	return v
}

// MulAssign scales v by t in place and returns v for chaining.
func (v *Vec3[T]) MulAssign(t T) *Vec3[T] {
	v.E[0] *= t
	v.E[1] *= t
	v.E[2] *= t
	return v
}

// DivAssign divides v by t in place, as a multiplication by 1/t.
func (v *Vec3[T]) DivAssign(t T) *Vec3[T] {
	return v.MulAssign(1 / t)
}

// Add returns v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{E: [3]T{v.E[0] + w.E[0], v.E[1] + w.E[1], v.E[2] + w.E[2]}}
}

// Sub returns v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{E: [3]T{v.E[0] - w.E[0], v.E[1] - w.E[1], v.E[2] - w.E[2]}}
}

// Mul returns the component-wise product of v and w.
func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] {
	return Vec3[T]{E: [3]T{v.E[0] * w.E[0], v.E[1] * w.E[1], v.E[2] * w.E[2]}}
}

// Scale returns v scaled by t.
func (v Vec3[T]) Scale(t T) Vec3[T] {
	return Vec3[T]{E: [3]T{v.E[0] * t, v.E[1] * t, v.E[2] * t}}
}

// Div returns v with every component divided by t.
func (v Vec3[T]) Div(t T) Vec3[T] {
	return Vec3[T]{E: [3]T{v.E[0] / t, v.E[1] / t, v.E[2] / t}}
}

// Dot returns the dot product of v and w.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.E[0]*w.E[0] + v.E[1]*w.E[1] + v.E[2]*w.E[2]
}

// Cross returns the right-handed cross product v × w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{E: [3]T{
		v.E[1]*w.E[2] - v.E[2]*w.E[1],
		v.E[2]*w.E[0] - v.E[0]*w.E[2],
		v.E[0]*w.E[1] - v.E[1]*w.E[0],
	}}
}

// LengthSquared returns the squared Euclidean norm.
func (v Vec3[T]) LengthSquared() T {
	return v.E[0]*v.E[0] + v.E[1]*v.E[1] + v.E[2]*v.E[2]
}

// Length returns the Euclidean norm. The square root of a float32 taken in
// float64 and rounded back is the correctly rounded float32 root, so the
// result stays in the vector's own precision.
func (v Vec3[T]) Length() T {
	return T(math.Sqrt(float64(v.LengthSquared())))
}

// Unit returns v divided by its length. A zero vector yields NaN components.
func Unit[T Float](v Vec3[T]) Vec3[T] {
	return v.Div(v.Length())
}

// String formats the components separated by single spaces.
func (v Vec3[T]) String() string {
	return fmt.Sprintf("%v %v %v", v.E[0], v.E[1], v.E[2])
}
