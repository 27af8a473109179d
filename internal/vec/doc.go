// Package vec provides a generic three-component floating-point vector.
//
// A vector is parameterized by its precision (float32 or float64). Widening
// conversions go through FromSingle, ToDouble or Vec3.Float64 and can never
// lose information. Narrowing requires Narrow together with the Lossy marker,
// so every lossy call site is visible in the source.
//
// Methods on Vec3 combine operands of the same precision and keep it. The
// package-level Add, Sub, Mul, Scale, Div, Dot and Cross accept operands of
// any two precisions and compute in double, the wider of the two.
//
// Division by zero is not guarded anywhere: results follow IEEE 754 and yield
// infinities or NaN. Values are plain structs and safe to share between
// goroutines.
package vec
