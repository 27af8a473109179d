package vec

// Lossy marks a conversion the caller accepts may round components. It has no
// value beyond making narrowing visible at the call site:
//
//	v32 := vec.Narrow[float32](v64, vec.Lossy{})
type Lossy struct{}

// FromSingle converts a single precision vector to any precision. Every
// float32 is exactly representable in both float32 and float64, so this
// conversion never loses information.
func FromSingle[P Float, Q Single](v Vec3[Q]) Vec3[P] {
	return convert[P](v)
}

// ToDouble converts a vector of any precision to double precision without
// loss.
func ToDouble[P Double, Q Float](v Vec3[Q]) Vec3[P] {
	return convert[P](v)
}

// Float64 returns v widened to float64.
func (v Vec3[T]) Float64() Vec3[float64] {
	return convert[float64](v)
}

// Narrow converts v to precision P, rounding each component to the nearest
// representable value. Use it only where the precision loss is intended.
func Narrow[P Float, Q Float](v Vec3[Q], _ Lossy) Vec3[P] {
	return convert[P](v)
}

func convert[P Float, Q Float](v Vec3[Q]) Vec3[P] {
	return Vec3[P]{E: [3]P{P(v.E[0]), P(v.E[1]), P(v.E[2])}}
}
