package vec

import (
	"reflect"
	"testing"
)

func TestConversions(t *testing.T) {
	v32 := New[float32](0.1, -2.5, 3)

	wide := FromSingle[float64](v32)
	if wide.X() != float64(float32(0.1)) {
		t.Errorf("FromSingle changed the value: %v", wide.X())
	}

	same := FromSingle[float32](v32)
	if same != v32 {
		t.Errorf("FromSingle to float32 should be the identity, got %v", same)
	}

	d := ToDouble[float64](New(1.0, 2.0, 3.0))
	if d != New(1.0, 2.0, 3.0) {
		t.Errorf("ToDouble on a double should be the identity, got %v", d)
	}

	narrow := Narrow[float32](New(0.1, 2.5, 1.0), Lossy{})
	if narrow.X() != float32(0.1) {
		t.Errorf("Narrow rounded 0.1 to %v", narrow.X())
	}
	if narrow.Y() != 2.5 || narrow.Z() != 1 {
		t.Errorf("Narrow changed exactly representable values: %v", narrow)
	}
}

type meters float64

func TestConversions_NamedTypes(t *testing.T) {
	v := New[meters](1, 2, 3)
	f := v.Float64()
	if f != New(1.0, 2.0, 3.0) {
		t.Errorf("Float64() = %v", f)
	}

	back := ToDouble[meters](New[float32](1, 2, 3))
	if reflect.TypeOf(back.X()) != reflect.TypeOf(meters(0)) {
		t.Errorf("ToDouble should produce the requested named type, got %T", back.X())
	}
}

func TestPromotion_ResultPrecision(t *testing.T) {
	a := New[float32](1, 2, 3)
	b := New(0.5, 0.25, 0.125)

	var sum Vec3[float64] = Add(a, b)
	if reflect.TypeOf(sum.X()).Kind() != reflect.Float64 {
		t.Fatalf("float32 + float64 should be float64, got %T", sum.X())
	}
	if sum != New(1.5, 2.25, 3.125) {
		t.Errorf("Add = %v", sum)
	}

	tests := []struct {
		name     string
		got      Vec3[float64]
		expected Vec3[float64]
	}{
		{"Sub", Sub(a, b), New(0.5, 1.75, 2.875)},
		{"Sub reversed", Sub(b, a), New(-0.5, -1.75, -2.875)},
		{"Mul", Mul(a, b), New(0.5, 0.5, 0.375)},
		{"Scale", Scale(a, 0.5), New(0.5, 1.0, 1.5)},
		{"Div", Div(b, float32(0.5)), New(1.0, 0.5, 0.25)},
		{"Cross", Cross(a, b), a.Float64().Cross(b)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approxEqual(tt.got, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	var dot float64 = Dot(a, b)
	if dot != 1.375 {
		t.Errorf("Dot = %v, want 1.375", dot)
	}
}

func TestPromotion_NoTruncation(t *testing.T) {
	// 1 + 1e-12 is not representable in float32; a promoted add must keep it.
	a := New[float32](1, 1, 1)
	b := New(1e-12, 0, 0)

	got := Add(a, b)
	want := 1.0 + b.X()
	if got.X() == 1 || got.X() != want {
		t.Errorf("promoted Add lost precision: %v", got.X())
	}
}

func TestPromotion_SingleOperandsWiden(t *testing.T) {
	a := New[float32](0.1, 0.2, 0.3)
	b := New[float32](1, 2, 3)

	var sum Vec3[float64] = Add(a, b)
	if sum != a.Float64().Add(b.Float64()) {
		t.Errorf("Add of two float32 vectors should match the widened sum, got %v", sum)
	}
	if reflect.TypeOf(Dot(a, b)).Kind() != reflect.Float64 {
		t.Error("Dot of two float32 vectors should be float64")
	}
	if reflect.TypeOf(a.Add(b).X()).Kind() != reflect.Float32 {
		t.Error("the Add method should keep float32")
	}
}
