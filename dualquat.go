package spatial

import "fmt"

// DualQuaternion encodes a rigid motion as Real + ε·Dual, a screw motion
// about and along an axis.
//
// Real is the unit rotation. For a motion that rotates by R and then
// translates by t, Dual is ½·t⊗R, where t is the pure quaternion of the
// translation and ⊗ is the Hamilton product.
//
// Blending dual quaternions, as in [DualQuaternion.Lerp] and [Blend], yields
// rigid motions without the volume loss that blending rotations and
// translations separately produces around joints.
type DualQuaternion struct {
	Real Quaternion
	Dual Quaternion
}

// IdentityDualQuaternion is the motion that leaves every point in place.
var IdentityDualQuaternion = DualQuaternion{Real: IdentityQuaternion}

// NewDualQuaternion returns the motion that rotates by rotation and then
// translates by translation. rotation must be a unit quaternion.
func NewDualQuaternion(rotation Quaternion, translation Vector3) DualQuaternion {
	return DualQuaternion{
		Real: rotation,
		Dual: Concatenate(rotation, QuaternionFromVector(translation)).Scale(0.5),
	}
}

// DualQuaternionFromRotation returns a pure rotation. Its dual part is zero.
func DualQuaternionFromRotation(rotation Quaternion) DualQuaternion {
	return DualQuaternion{Real: rotation}
}

// DualQuaternionFromTranslation returns a pure translation.
func DualQuaternionFromTranslation(translation Vector3) DualQuaternion {
	return DualQuaternion{
		Real: IdentityQuaternion,
		Dual: QuaternionFromVector(translation).Scale(0.5),
	}
}

func (d DualQuaternion) String() string {
	return fmt.Sprintf("%s + ε%s", d.Real, d.Dual)
}

// Rotation returns the rotation part of the motion.
func (d DualQuaternion) Rotation() Quaternion {
	return d.Real
}

// Translation returns the translation part of the motion, the vector part of
// 2·Dual⊗Real*.
func (d DualQuaternion) Translation() Vector3 {
	return d.Dual.Mul(d.Real.Conjugate()).Scale(2).Vector()
}

// TransformPoint rotates p and then translates it.
func (d DualQuaternion) TransformPoint(p Vector3) Vector3 {
	return d.Real.Rotate(p).Add(d.Translation())
}

// Mul returns the motion that applies d first and o second. It is not
// commutative.
func (d DualQuaternion) Mul(o DualQuaternion) DualQuaternion {
	return DualQuaternion{
		Real: Concatenate(d.Real, o.Real),
		Dual: Concatenate(d.Real, o.Dual).Add(Concatenate(d.Dual, o.Real)),
	}
}

// Conjugate conjugates both the real and the dual part.
func (d DualQuaternion) Conjugate() DualQuaternion {
	return DualQuaternion{
		Real: d.Real.Conjugate(),
		Dual: d.Dual.Conjugate(),
	}
}

func (d DualQuaternion) Add(o DualQuaternion) DualQuaternion {
	return DualQuaternion{
		Real: d.Real.Add(o.Real),
		Dual: d.Dual.Add(o.Dual),
	}
}

// Scale multiplies both parts by f.
func (d DualQuaternion) Scale(f float32) DualQuaternion {
	return DualQuaternion{
		Real: d.Real.Scale(f),
		Dual: d.Dual.Scale(f),
	}
}

// Dot returns the dot product of the real parts.
func (d DualQuaternion) Dot(o DualQuaternion) float32 {
	return d.Real.Dot(o.Real)
}

// Normalize returns the unit dual quaternion closest to d: the real part is
// scaled to unit length and the dual part is made orthogonal to it.
//
// Produces NaN values if the real part is zero.
func (d DualQuaternion) Normalize() DualQuaternion {
	inv := 1 / d.Real.Length()
	r := d.Real.Scale(inv)
	du := d.Dual.Scale(inv)
	return DualQuaternion{
		Real: r,
		Dual: du.Sub(r.Scale(r.Dot(du))),
	}
}

// Lerp blends d and o linearly along the shorter path and normalizes the
// result.
func (d DualQuaternion) Lerp(o DualQuaternion, t float32) DualQuaternion {
	if d.Dot(o) < 0 {
		o = o.Scale(-1)
	}
	return d.Scale(1 - t).Add(o.Scale(t)).Normalize()
}

// Blend computes the normalized weighted sum of dqs, flipping inputs onto the
// hemisphere of dqs[0] so that every input takes the shorter path. An empty
// input yields the identity.
//
// It returns ErrLengthMismatch if dqs and weights differ in length. Weights
// summing to zero produce NaN values.
func Blend(dqs []DualQuaternion, weights []float32) (DualQuaternion, error) {
	if len(dqs) != len(weights) {
		return DualQuaternion{}, fmt.Errorf("blend %d dual quaternions with %d weights: %w", len(dqs), len(weights), ErrLengthMismatch)
	}
	if len(dqs) == 0 {
		return IdentityDualQuaternion, nil
	}
	var sum DualQuaternion
	for i, dq := range dqs {
		w := weights[i]
		if dq.Dot(dqs[0]) < 0 {
			w = -w
		}
		sum = sum.Add(dq.Scale(w))
	}
	return sum.Normalize(), nil
}

// RigidTransform converts d back to rotation and translation.
func (d DualQuaternion) RigidTransform() RigidTransform {
	return RigidTransform{
		Position:    d.Translation(),
		Orientation: d.Real,
	}
}

// ApproxEqual reports whether both parts of d and o agree within epsilon,
// component-wise.
func (d DualQuaternion) ApproxEqual(o DualQuaternion, epsilon float32) bool {
	return d.Real.ApproxEqual(o.Real, epsilon) && d.Dual.ApproxEqual(o.Dual, epsilon)
}

func (d DualQuaternion) IsInf() bool {
	return d.Real.IsInf() || d.Dual.IsInf()
}

func (d DualQuaternion) IsNaN() bool {
	return d.Real.IsNaN() || d.Dual.IsNaN()
}
