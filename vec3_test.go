package spatial

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func toR3(v Vector3) r3.Vector {
	return r3.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func TestVector3MatchesR3(t *testing.T) {
	near64 := func(got float32, want float64) bool {
		return math.Abs(float64(got)-want) <= 1e-4*math.Max(1, math.Abs(want))
	}
	nearVec := func(got Vector3, want r3.Vector) bool {
		return near64(got.X, want.X) && near64(got.Y, want.Y) && near64(got.Z, want.Z)
	}

	r := newRand()
	for range 100 {
		a, b := randVector(r, 10), randVector(r, 10)
		ra, rb := toR3(a), toR3(b)

		if got, want := a.Dot(b), ra.Dot(rb); !near64(got, want) {
			t.Errorf("%s · %s: got %g, want %g", a, b, got, want)
		}
		if got, want := a.Cross(b), ra.Cross(rb); !nearVec(got, want) {
			t.Errorf("%s × %s: got %s, want %v", a, b, got, want)
		}
		if got, want := a.Length(), ra.Norm(); !near64(got, want) {
			t.Errorf("|%s|: got %g, want %g", a, got, want)
		}
		if got, want := a.Distance(b), ra.Distance(rb); !near64(got, want) {
			t.Errorf("distance(%s, %s): got %g, want %g", a, b, got, want)
		}
		if got, want := a.Normalize(), ra.Normalize(); !nearVec(got, want) {
			t.Errorf("normalize %s: got %s, want %v", a, got, want)
		}
		if got, want := a.Add(b), ra.Add(rb); !nearVec(got, want) {
			t.Errorf("%s + %s: got %s, want %v", a, b, got, want)
		}
		if got, want := a.Sub(b), ra.Sub(rb); !nearVec(got, want) {
			t.Errorf("%s - %s: got %s, want %v", a, b, got, want)
		}
		if got, want := a.Mul(3), ra.Mul(3); !nearVec(got, want) {
			t.Errorf("%s * 3: got %s, want %v", a, got, want)
		}
	}
}

func TestVector3Basics(t *testing.T) {
	v := Vec3(1, 2, 3)
	x, y, z := v.Splat()
	diff(t, [3]float32{1, 2, 3}, [3]float32{x, y, z})

	diff(t, UnitZ, UnitX.Cross(UnitY))
	diff(t, Vec3(2, 4, 6), v.Lerp(Vec3(3, 6, 9), 0.5))
	diff(t, Vec3(0.5, 1, 1.5), v.Div(2))
	diff(t, Vec3(1, 4, 9), v.MulComponents(v))
	diff(t, Vec3(1, -2, 3), v.Min(Vec3(4, -2, 5)))
	diff(t, Vec3(4, 2, 5), v.Max(Vec3(4, -2, 5)))
	diff(t, float32(14), v.LengthSquared())
	diff(t, "⟨1, 2, 3⟩", v.String())

	if !(Vector3{}).Normalize().IsNaN() {
		t.Error("normalizing the zero vector should produce NaN")
	}
	if !Vec3(float32(math.Inf(1)), 0, 0).IsInf() {
		t.Error("expected infinite vector")
	}
}

func TestVector2Basics(t *testing.T) {
	v := Vec2(3, 4)
	if l := v.Length(); !within(l, 5, 1e-6) {
		t.Errorf("got length %g, want 5", l)
	}
	diff(t, float32(25), v.LengthSquared())
	diff(t, float32(0), v.Cross(v))
	diff(t, float32(1), Vec2(1, 0).Cross(Vec2(0, 1)))
	if n := v.Normalize(); !within(n.Length(), 1, 1e-6) {
		t.Errorf("got length %g", n.Length())
	}
	diff(t, Vec2(-3, -4), v.Negate())
	diff(t, Vec2(0, 0), v.Add(v.Negate()))
}
