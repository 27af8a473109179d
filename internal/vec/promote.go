package vec

// The functions in this file combine operands whose precisions may differ.
// Both operands are widened to float64 first, which is the common precision of
// any pair that contains a double, so neither side is ever truncated. The
// result is float64 even when both operands are float32; for two operands of
// the same precision use the methods, which keep it.

// Add returns a + b in double precision. Two float32 operands are widened
// too; a.Add(b) keeps float32.
func Add[P, Q Float](a Vec3[P], b Vec3[Q]) Vec3[float64] {
	return a.Float64().Add(b.Float64())
}

// Sub returns a - b in double precision, even for two float32 operands.
func Sub[P, Q Float](a Vec3[P], b Vec3[Q]) Vec3[float64] {
	return a.Float64().Sub(b.Float64())
}

// Mul returns the component-wise product of a and b in double precision, even
// for two float32 operands.
func Mul[P, Q Float](a Vec3[P], b Vec3[Q]) Vec3[float64] {
	return a.Float64().Mul(b.Float64())
}

// Scale returns v scaled by s in double precision, even when v and s are
// both float32.
func Scale[P, S Float](v Vec3[P], s S) Vec3[float64] {
	return v.Float64().Scale(float64(s))
}

// Div returns v divided by s in double precision, even when v and s are both
// float32.
func Div[P, S Float](v Vec3[P], s S) Vec3[float64] {
	return v.Float64().Div(float64(s))
}

// Dot returns the dot product of a and b as a float64, even for two float32
// operands.
func Dot[P, Q Float](a Vec3[P], b Vec3[Q]) float64 {
	return a.Float64().Dot(b.Float64())
}

// Cross returns the cross product a × b in double precision, even for two
// float32 operands.
func Cross[P, Q Float](a Vec3[P], b Vec3[Q]) Vec3[float64] {
	return a.Float64().Cross(b.Float64())
}
