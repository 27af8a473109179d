package vec

import (
	"math"
	"reflect"
	"testing"
)

const tolerance = 1e-9

func approxEqual(a, b Vec3[float64], eps float64) bool {
	return math.Abs(a.X()-b.X()) <= eps &&
		math.Abs(a.Y()-b.Y()) <= eps &&
		math.Abs(a.Z()-b.Z()) <= eps
}

func TestVec3_Accessors(t *testing.T) {
	v := New(1.5, -2.0, 3.25)
	if v.X() != 1.5 || v.Y() != -2.0 || v.Z() != 3.25 {
		t.Fatalf("unexpected components: %v", v)
	}
	for i, want := range []float64{1.5, -2.0, 3.25} {
		if got := v.At(i); got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}

	v.Set(1, 7)
	if v.Y() != 7 {
		t.Errorf("Set(1, 7) left Y() = %v", v.Y())
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := New(1.0, 2.0, 3.0)
	b := New(4.0, -5.0, 6.0)

	tests := []struct {
		name     string
		got      Vec3[float64]
		expected Vec3[float64]
	}{
		{"Neg", a.Neg(), New(-1.0, -2.0, -3.0)},
		{"Add", a.Add(b), New(5.0, -3.0, 9.0)},
		{"Sub", a.Sub(b), New(-3.0, 7.0, -3.0)},
		{"Mul", a.Mul(b), New(4.0, -10.0, 18.0)},
		{"Scale", a.Scale(2), New(2.0, 4.0, 6.0)},
		{"Div", b.Div(2), New(2.0, -2.5, 3.0)},
		{"Cross", a.Cross(b), New(27.0, 6.0, -13.0)},
		{"Cross of axes", New(1.0, 0, 0).Cross(New(0, 1.0, 0)), New(0, 0, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approxEqual(tt.got, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
}

func TestVec3_InPlaceChaining(t *testing.T) {
	v := New[float32](1, 2, 3)
	v.AddAssign(New[float32](1, 1, 1)).MulAssign(2).DivAssign(4)

	want := New[float32](1, 1.5, 2)
	if v != want {
		t.Errorf("chained in-place ops = %v, want %v", v, want)
	}
}

func TestVec3_DivAssignByZero(t *testing.T) {
	v := New(1.0, -1.0, 0)
	v.DivAssign(0)

	if !math.IsInf(v.X(), 1) || !math.IsInf(v.Y(), -1) || !math.IsNaN(v.Z()) {
		t.Errorf("expected +Inf, -Inf, NaN, got %v", v)
	}
}

func TestVec3_Length(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3[float64]
		want float64
	}{
		{"zero", New(0.0, 0, 0), 0},
		{"3-4-0", New(3.0, 4.0, 0), 5},
		{"unit axis", New(0, 0, -1.0), 1},
		{"2-3-6", New(2.0, 3.0, 6.0), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); got != tt.want {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3_LengthSinglePrecision(t *testing.T) {
	v := New[float32](1, 1, 1)
	got := v.Length()
	want := float32(math.Sqrt(3))
	if got != want {
		t.Errorf("float32 Length() = %v, want %v", got, want)
	}
	if reflect.TypeOf(got).Kind() != reflect.Float32 {
		t.Errorf("Length of a float32 vector should stay float32, got %T", got)
	}
}

func TestUnit(t *testing.T) {
	u := Unit(New(0, 3.0, 4.0))
	if !approxEqual(u, New(0, 0.6, 0.8), tolerance) {
		t.Errorf("Unit = %v", u)
	}

	z := Unit(New(0.0, 0, 0))
	if !math.IsNaN(z.X()) || !math.IsNaN(z.Y()) || !math.IsNaN(z.Z()) {
		t.Errorf("Unit of the zero vector should be NaN, got %v", z)
	}
}

func TestVec3_String(t *testing.T) {
	if got := New(1.0, 0.5, -2.0).String(); got != "1 0.5 -2" {
		t.Errorf("String() = %q", got)
	}
}
