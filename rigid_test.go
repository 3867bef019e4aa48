package spatial

import (
	"math"
	"testing"
)

func TestRigidBasic(t *testing.T) {
	const epsilon = 1e-5
	p := Vec3(3, 4, 5)

	assertNear(t, IdentityRigidTransform.TransformPoint(p), p, epsilon)
	assertNear(t, RigidTransformFromPosition(Vec3(1, 2, 3)).TransformPoint(p), Vec3(4, 6, 8), epsilon)
	assertNear(t, RigidTransformFromOrientation(QuaternionFromAxisAngle(UnitZ, math.Pi/2)).TransformPoint(p), Vec3(-4, 3, 5), epsilon)

	// Rotation happens before translation.
	rt := NewRigidTransform(Vec3(1, 0, 0), QuaternionFromAxisAngle(UnitY, math.Pi/2))
	assertNear(t, rt.TransformPoint(UnitZ), Vec3(2, 0, 0), epsilon)
	assertNear(t, rt.TransformDirection(UnitZ), UnitX, epsilon)
}

func TestRigidMul(t *testing.T) {
	const epsilon = 1e-5
	// Rotate 90° about Y, then move along X.
	a := RigidTransformFromOrientation(QuaternionFromAxisAngle(UnitY, math.Pi/2))
	b := RigidTransformFromPosition(Vec3(1, 0, 0))
	assertNear(t, a.Mul(b).TransformPoint(UnitZ), Vec3(2, 0, 0), epsilon)
	// The other order moves first and then rotates the result.
	assertNear(t, b.Mul(a).TransformPoint(UnitZ), Vec3(1, 0, -1), epsilon)

	r := newRand()
	for range 100 {
		a, b, c := randRigid(r), randRigid(r), randRigid(r)
		p := randVector(r, 10)
		assertNear(t, a.Mul(b).TransformPoint(p), b.TransformPoint(a.TransformPoint(p)), 1e-3)

		// Associativity, up to rounding.
		ab, bc := a.Mul(b), b.Mul(c)
		if !ab.Mul(c).ApproxEqual(a.Mul(bc), 1e-3) {
			t.Fatalf("(ab)c = %s, a(bc) = %s", ab.Mul(c), a.Mul(bc))
		}
	}
}

func TestRigidInvert(t *testing.T) {
	r := newRand()
	for range 100 {
		rt := randRigid(r)
		inv := rt.Invert()
		p := randVector(r, 10)

		assertNear(t, inv.TransformPoint(rt.TransformPoint(p)), p, 1e-4)
		assertNear(t, rt.TransformPoint(inv.TransformPoint(p)), p, 1e-4)
		assertNear(t, rt.TransformByInverse(p), inv.TransformPoint(p), 1e-4)

		id := rt.Mul(inv)
		assertNear(t, id.Position, Vector3{}, 1e-4)
		if !sameRotation(id.Orientation, IdentityQuaternion, 1e-5) {
			t.Fatalf("got orientation %s, want identity", id.Orientation)
		}
	}
}

func TestRigidMulInverse(t *testing.T) {
	r := newRand()
	for range 100 {
		a, b := randRigid(r), randRigid(r)
		got := a.MulInverse(b)
		want := a.Mul(b.Invert())
		if !got.ApproxEqual(want, 1e-4) {
			t.Fatalf("got %s, want %s", got, want)
		}
	}
}

func TestRigidMatrix(t *testing.T) {
	r := newRand()
	for range 100 {
		a, b := randRigid(r), randRigid(r)
		p := randVector(r, 10)
		assertNear(t, a.Matrix().TransformPoint(p), a.TransformPoint(p), 1e-4)
		// Matrix products compose in the same order.
		diff(t, a.Mul(b).Matrix(), a.Matrix().Mul(b.Matrix()), approxLoose)
	}
}

func TestRigidMulAffine(t *testing.T) {
	r := newRand()
	for range 100 {
		rt, aff := randRigid(r), randAffine(r)
		p := randVector(r, 10)
		assertNear(t, rt.MulAffine(aff).TransformPoint(p), aff.TransformPoint(rt.TransformPoint(p)), 1e-3)
	}
}

func TestRigidNormalize(t *testing.T) {
	rt := NewRigidTransform(Vec3(1, 2, 3), QuaternionFromAxisAngle(UnitX, 1).Scale(1.01))
	n := rt.Normalize()
	if !n.Orientation.IsNormalized(1e-6) {
		t.Errorf("orientation %s is not normalized", n.Orientation)
	}
	diff(t, rt.Position, n.Position)

	// Long chains drift and can be pulled back.
	r := newRand()
	acc := IdentityRigidTransform
	for range 1000 {
		acc = acc.Mul(randRigid(r))
	}
	if !acc.Normalize().Orientation.IsNormalized(1e-6) {
		t.Errorf("orientation %s is not normalized", acc.Normalize().Orientation)
	}
}

func TestRigidLerp(t *testing.T) {
	a := IdentityRigidTransform
	b := NewRigidTransform(Vec3(2, 0, 0), QuaternionFromAxisAngle(UnitZ, math.Pi/2))

	if got := a.Lerp(b, 0); !got.ApproxEqual(a, 1e-5) {
		t.Errorf("got %s, want %s", got, a)
	}
	if got := a.Lerp(b, 1); !got.ApproxEqual(b, 1e-5) {
		t.Errorf("got %s, want %s", got, b)
	}
	want := NewRigidTransform(Vec3(1, 0, 0), QuaternionFromAxisAngle(UnitZ, math.Pi/4))
	if got := a.Lerp(b, 0.5); !got.ApproxEqual(want, 1e-5) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestRigidDualQuaternion(t *testing.T) {
	r := newRand()
	for range 100 {
		rt := randRigid(r)
		d := rt.DualQuaternion()
		p := randVector(r, 10)
		assertNear(t, d.TransformPoint(p), rt.TransformPoint(p), 1e-4)
		if back := d.RigidTransform(); !back.ApproxEqual(rt, 1e-4) {
			t.Fatalf("got %s, want %s", back, rt)
		}
	}
}

func TestRigidTransformBoundingBox(t *testing.T) {
	const epsilon = 1e-5
	b := BoundingBox{Min: Vec3(0, 0, 0), Max: Vec3(2, 1, 1)}

	got := RigidTransformFromPosition(Vec3(1, 1, 1)).TransformBoundingBox(b)
	assertNear(t, got.Min, Vec3(1, 1, 1), epsilon)
	assertNear(t, got.Max, Vec3(3, 2, 2), epsilon)

	// A quarter turn about Z swaps the X and Y extents.
	got = RigidTransformFromOrientation(QuaternionFromAxisAngle(UnitZ, math.Pi/2)).TransformBoundingBox(b)
	assertNear(t, got.Min, Vec3(-1, 0, 0), epsilon)
	assertNear(t, got.Max, Vec3(0, 2, 1), epsilon)
}
