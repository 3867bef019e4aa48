package spatial

import (
	"math"
	"slices"
	"testing"
)

func TestTransformPoints(t *testing.T) {
	pts := []Vector3{UnitX, UnitY, UnitZ, Vec3(1, 2, 3)}
	r := newRand()
	ts := []Transformer{
		randRigid(r),
		randAffine(r),
		randRigid(r).DualQuaternion(),
		randAffine(r).Matrix(),
	}
	for _, tr := range ts {
		got := slices.Collect(TransformPoints(slices.Values(pts), tr))
		if len(got) != len(pts) {
			t.Fatalf("got %d points, want %d", len(got), len(pts))
		}
		for i, p := range pts {
			assertNear(t, got[i], tr.TransformPoint(p), 0)
		}
	}

	// The sequence stops when the consumer does.
	n := 0
	for range TransformPoints(slices.Values(pts), IdentityRigidTransform) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("got %d points, want 2", n)
	}
}

// Every representation of the same motion maps points identically.
func TestTransformRepresentationsAgree(t *testing.T) {
	r := newRand()
	for range 100 {
		rt := randRigid(r)
		reps := []Transformer{
			rt,
			rt.DualQuaternion(),
			rt.Matrix(),
			AffineTransformFromRigid(rt),
		}
		p := randVector(r, 10)
		want := rt.TransformPoint(p)
		for _, rep := range reps {
			assertNear(t, rep.TransformPoint(p), want, 1e-4)
		}
	}
}

// A joint hierarchy: each child is placed relative to its parent, so the
// world transform is the child's local transform followed by the parent's
// world transform.
func TestTransformHierarchy(t *testing.T) {
	const epsilon = 1e-5
	shoulder := NewRigidTransform(Vec3(0, 1, 0), IdentityQuaternion)
	elbow := NewRigidTransform(Vec3(1, 0, 0), QuaternionFromAxisAngle(UnitZ, math.Pi/2))
	hand := RigidTransformFromPosition(Vec3(1, 0, 0))

	world := hand.Mul(elbow).Mul(shoulder)
	assertNear(t, world.TransformPoint(Vector3{}), Vec3(1, 2, 0), epsilon)

	// The same chain as matrices and dual quaternions.
	m := hand.Matrix().Mul(elbow.Matrix()).Mul(shoulder.Matrix())
	assertNear(t, m.TransformPoint(Vector3{}), Vec3(1, 2, 0), epsilon)
	d := hand.DualQuaternion().Mul(elbow.DualQuaternion()).Mul(shoulder.DualQuaternion())
	assertNear(t, d.TransformPoint(Vector3{}), Vec3(1, 2, 0), epsilon)

	// Going back from world space to hand space.
	assertNear(t, world.TransformByInverse(Vec3(1, 2, 0)), Vector3{}, epsilon)
}
