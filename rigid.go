package spatial

import "fmt"

// RigidTransform is a rotation followed by a translation. It preserves
// distances and angles and never scales or shears.
//
// Orientation must be a unit quaternion. Long chains of [RigidTransform.Mul]
// accumulate rounding error; call [RigidTransform.Normalize] periodically to
// pull the orientation back to unit length.
type RigidTransform struct {
	Position    Vector3
	Orientation Quaternion
}

// IdentityRigidTransform is the transform that leaves every point in place.
var IdentityRigidTransform = RigidTransform{Orientation: IdentityQuaternion}

// NewRigidTransform returns the transform that rotates by orientation and then
// translates by position.
func NewRigidTransform(position Vector3, orientation Quaternion) RigidTransform {
	return RigidTransform{
		Position:    position,
		Orientation: orientation,
	}
}

// RigidTransformFromPosition returns a pure translation.
func RigidTransformFromPosition(position Vector3) RigidTransform {
	return RigidTransform{
		Position:    position,
		Orientation: IdentityQuaternion,
	}
}

// RigidTransformFromOrientation returns a pure rotation.
func RigidTransformFromOrientation(orientation Quaternion) RigidTransform {
	return RigidTransform{Orientation: orientation}
}

func (t RigidTransform) String() string {
	return fmt.Sprintf("{position: %s, orientation: %s}", t.Position, t.Orientation)
}

// TransformPoint rotates p by the orientation and then adds the position.
func (t RigidTransform) TransformPoint(p Vector3) Vector3 {
	return t.Orientation.Rotate(p).Add(t.Position)
}

// TransformDirection rotates v, ignoring the position.
func (t RigidTransform) TransformDirection(v Vector3) Vector3 {
	return t.Orientation.Rotate(v)
}

// TransformByInverse maps p through the inverse of t without computing the
// inverse transform. It agrees with t.Invert().TransformPoint(p).
func (t RigidTransform) TransformByInverse(p Vector3) Vector3 {
	return t.Orientation.Conjugate().Rotate(p.Sub(t.Position))
}

// Invert returns the inverse transform.
func (t RigidTransform) Invert() RigidTransform {
	o := t.Orientation.Conjugate()
	return RigidTransform{
		Position:    o.Rotate(t.Position).Negate(),
		Orientation: o,
	}
}

// Mul returns the transform that applies t first and o second, so that
// t.Mul(o).TransformPoint(p) == o.TransformPoint(t.TransformPoint(p)).
func (t RigidTransform) Mul(o RigidTransform) RigidTransform {
	return RigidTransform{
		Position:    o.Orientation.Rotate(t.Position).Add(o.Position),
		Orientation: Concatenate(t.Orientation, o.Orientation),
	}
}

// MulInverse is equivalent to t.Mul(o.Invert()) but does not compute the
// inverse of o separately.
func (t RigidTransform) MulInverse(o RigidTransform) RigidTransform {
	inv := o.Orientation.Conjugate()
	return RigidTransform{
		Position:    inv.Rotate(t.Position.Sub(o.Position)),
		Orientation: Concatenate(t.Orientation, inv),
	}
}

// MulAffine returns the transform that applies t first and o second. t is
// promoted to an [AffineTransform] by converting its orientation to a
// rotation matrix.
func (t RigidTransform) MulAffine(o AffineTransform) AffineTransform {
	return AffineTransformFromRigid(t).Mul(o)
}

// Normalize returns t with its orientation rescaled to unit length.
func (t RigidTransform) Normalize() RigidTransform {
	t.Orientation = t.Orientation.Normalize()
	return t
}

// Lerp interpolates between t and o, spherically for the orientation and
// linearly for the position.
//
// Blending chains of joints this way can visibly collapse volume around the
// joints; [DualQuaternion.Lerp] does not have that problem.
func (t RigidTransform) Lerp(o RigidTransform, f float32) RigidTransform {
	return RigidTransform{
		Position:    t.Position.Lerp(o.Position, f),
		Orientation: t.Orientation.Slerp(o.Orientation, f),
	}
}

// Matrix returns the homogeneous matrix of t. See [Matrix4f.Flatten] for the
// layout.
func (t RigidTransform) Matrix() Matrix4f {
	return Matrix4fAffine(t.Orientation.Matrix3f(), t.Position)
}

// DualQuaternion returns the dual quaternion encoding the same motion.
func (t RigidTransform) DualQuaternion() DualQuaternion {
	return NewDualQuaternion(t.Orientation, t.Position)
}

// TransformBoundingBox returns the bounding box of the transformed corners of
// b. The result is not tight unless t is axis-aligned.
func (t RigidTransform) TransformBoundingBox(b BoundingBox) BoundingBox {
	return transformBoundingBox(b, t)
}

// ApproxEqual reports whether positions and orientations of t and o agree
// within epsilon, component-wise.
func (t RigidTransform) ApproxEqual(o RigidTransform, epsilon float32) bool {
	return t.Position.ApproxEqual(o.Position, epsilon) &&
		t.Orientation.ApproxEqual(o.Orientation, epsilon)
}

func (t RigidTransform) IsInf() bool {
	return t.Position.IsInf() || t.Orientation.IsInf()
}

func (t RigidTransform) IsNaN() bool {
	return t.Position.IsNaN() || t.Orientation.IsNaN()
}
