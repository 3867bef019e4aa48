package spatial

import (
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/constraints"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares float32 fields with an absolute margin suited to a handful
// of chained single-precision operations on values of order 1–10.
var approx = cmpopts.EquateApprox(0, 1e-4)

// approxLoose is for products and inverses of random 4×4 matrices, which can
// be poorly conditioned.
var approxLoose = cmpopts.EquateApprox(0, 1e-3)

func assertNear(t *testing.T, p0 Vector3, p1 Vector3, epsilon float32) {
	t.Helper()
	if d := p1.Sub(p0).Length(); d > epsilon {
		t.Fatalf("got %s, expected %s (distance %g)", p0, p1, d)
	}
}

func within[T constraints.Float](a, b, epsilon T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= epsilon
}

// sameRotation reports whether q and o are equal up to sign, since q and -q
// encode the same rotation.
func sameRotation(q, o Quaternion, epsilon float32) bool {
	return q.ApproxEqual(o, epsilon) || q.ApproxEqual(o.Negate(), epsilon)
}

// The randomized tests are deterministic; every test gets its own source.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x5eed, 0xcafe))
}

func randFloat(r *rand.Rand, lo, hi float32) float32 {
	return lo + r.Float32()*(hi-lo)
}

func randVector(r *rand.Rand, extent float32) Vector3 {
	return Vec3(
		randFloat(r, -extent, extent),
		randFloat(r, -extent, extent),
		randFloat(r, -extent, extent),
	)
}

func randRotation(r *rand.Rand) Quaternion {
	for {
		q := Quat(
			randFloat(r, -1, 1),
			randFloat(r, -1, 1),
			randFloat(r, -1, 1),
			randFloat(r, -1, 1),
		)
		if q.Length() > 0.1 {
			return q.Normalize()
		}
	}
}

// randLinear returns a well-conditioned matrix that may scale, shear, and
// reflect.
func randLinear(r *rand.Rand) Matrix3f {
	for {
		var n [9]float32
		for i := range n {
			n[i] = randFloat(r, -2, 2)
		}
		m := NewMatrix3f(n)
		if math32.Abs(m.Determinant()) > 1 {
			return m
		}
	}
}

func randRigid(r *rand.Rand) RigidTransform {
	return NewRigidTransform(randVector(r, 10), randRotation(r))
}

func randAffine(r *rand.Rand) AffineTransform {
	return NewAffineTransform(randLinear(r), randVector(r, 10))
}
