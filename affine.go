package spatial

import "fmt"

// AffineTransform is a general linear map followed by a translation. The
// linear part may rotate, scale, shear, or reflect, and may be singular.
//
// Composition follows the same "first, then" order as [RigidTransform]:
// a.Mul(b) applies a first and b second, which is B∘A in function notation.
type AffineTransform struct {
	Translation     Vector3
	LinearTransform Matrix3f
}

// IdentityAffineTransform is the identity transform.
var IdentityAffineTransform = AffineTransform{LinearTransform: IdentityMatrix3f}

// NewAffineTransform returns the transform that applies linear and then
// translates by translation.
func NewAffineTransform(linear Matrix3f, translation Vector3) AffineTransform {
	return AffineTransform{
		Translation:     translation,
		LinearTransform: linear,
	}
}

// AffineTransformFromRigid promotes a rigid transform without loss, by
// converting its orientation to a rotation matrix.
func AffineTransformFromRigid(r RigidTransform) AffineTransform {
	return AffineTransform{
		Translation:     r.Position,
		LinearTransform: r.Orientation.Matrix3f(),
	}
}

// AffineTransformFromMatrix4f extracts the linear block and translation row of
// m. The fourth column, which only projective matrices use, is discarded.
func AffineTransformFromMatrix4f(m Matrix4f) AffineTransform {
	return AffineTransform{
		Translation:     m.Translation(),
		LinearTransform: m.Matrix3f(),
	}
}

// AffineTranslate creates an affine transform representing translation.
func AffineTranslate(v Vector3) AffineTransform {
	return AffineTransform{
		Translation:     v,
		LinearTransform: IdentityMatrix3f,
	}
}

// AffineScale creates an affine transform representing non-uniform scaling
// with the scale factors of each axis given by v.
func AffineScale(v Vector3) AffineTransform {
	return AffineTransform{LinearTransform: Matrix3fScale(v)}
}

// AffineRotate creates an affine transform representing the rotation q.
func AffineRotate(q Quaternion) AffineTransform {
	return AffineTransform{LinearTransform: q.Matrix3f()}
}

// AffineReflect creates an affine transform that represents reflection about
// the plane through point with the given normal.
func AffineReflect(point Vector3, normal Vector3) AffineTransform {
	// Move point to the origin, reflect about the plane through the origin,
	// and move back. The move back is folded into the translation directly.
	aff := AffineTransform{
		Translation:     point,
		LinearTransform: Matrix3fReflect(normal),
	}
	return aff.PreTranslate(point.Negate())
}

func (aff AffineTransform) String() string {
	return fmt.Sprintf("{linear: %s, translation: %s}", aff.LinearTransform, aff.Translation)
}

// TransformPoint applies the linear map to p and then adds the translation.
func (aff AffineTransform) TransformPoint(p Vector3) Vector3 {
	return aff.LinearTransform.Transform(p).Add(aff.Translation)
}

// TransformDirection applies only the linear map to v.
func (aff AffineTransform) TransformDirection(v Vector3) Vector3 {
	return aff.LinearTransform.Transform(v)
}

// TransformNormal transforms a surface normal n by the transpose of the
// inverse of the linear map, which keeps it perpendicular to transformed
// tangents under non-uniform scale and shear. The result is not normalized.
//
// Produces NaN values when the linear map is singular.
func (aff AffineTransform) TransformNormal(n Vector3) Vector3 {
	return aff.LinearTransform.Invert().TransformTranspose(n)
}

// TransformByInverse maps p through the inverse of aff. It agrees with
// aff.Invert().TransformPoint(p). To map a surface normal by the transpose of
// the inverse linear map, use [AffineTransform.TransformNormal] instead.
//
// Produces NaN values when the linear map is singular.
func (aff AffineTransform) TransformByInverse(p Vector3) Vector3 {
	return aff.LinearTransform.Invert().Transform(p.Sub(aff.Translation))
}

// Mul returns the transform that applies aff first and o second.
func (aff AffineTransform) Mul(o AffineTransform) AffineTransform {
	return AffineTransform{
		Translation:     o.LinearTransform.Transform(aff.Translation).Add(o.Translation),
		LinearTransform: aff.LinearTransform.Mul(o.LinearTransform),
	}
}

// MulRigid returns the transform that applies aff first and o second.
func (aff AffineTransform) MulRigid(o RigidTransform) AffineTransform {
	return aff.Mul(AffineTransformFromRigid(o))
}

// PreRotate creates a rotation by q followed by aff.
//
// Equivalent to "AffineRotate(q).Mul(aff)"
func (aff AffineTransform) PreRotate(q Quaternion) AffineTransform {
	return AffineRotate(q).Mul(aff)
}

// ThenRotate creates aff followed by a rotation by q.
//
// Equivalent to "aff.Mul(AffineRotate(q))"
func (aff AffineTransform) ThenRotate(q Quaternion) AffineTransform {
	return aff.Mul(AffineRotate(q))
}

// PreScale creates a scale by v followed by aff.
//
// Equivalent to "AffineScale(v).Mul(aff)"
func (aff AffineTransform) PreScale(v Vector3) AffineTransform {
	return AffineScale(v).Mul(aff)
}

// ThenScale creates aff followed by a scale by v.
//
// Equivalent to "aff.Mul(AffineScale(v))"
func (aff AffineTransform) ThenScale(v Vector3) AffineTransform {
	return aff.Mul(AffineScale(v))
}

// PreTranslate creates a translation by v followed by aff.
//
// Equivalent to "AffineTranslate(v).Mul(aff)"
func (aff AffineTransform) PreTranslate(v Vector3) AffineTransform {
	return AffineTranslate(v).Mul(aff)
}

// ThenTranslate creates aff followed by a translation by v.
//
// Equivalent to "aff.Mul(AffineTranslate(v))"
func (aff AffineTransform) ThenTranslate(v Vector3) AffineTransform {
	aff.Translation = aff.Translation.Add(v)
	return aff
}

// Determinant computes the determinant of the linear map.
func (aff AffineTransform) Determinant() float32 {
	return aff.LinearTransform.Determinant()
}

// IsInvertible reports whether the linear map is invertible.
func (aff AffineTransform) IsInvertible() bool {
	return aff.LinearTransform.IsInvertible()
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero. Callers that cannot
// guarantee an invertible linear map should check
// [AffineTransform.IsInvertible] or use [AffineTransform.TryInvert].
func (aff AffineTransform) Invert() AffineTransform {
	inv := aff.LinearTransform.Invert()
	return AffineTransform{
		Translation:     inv.Transform(aff.Translation).Negate(),
		LinearTransform: inv,
	}
}

// TryInvert is like Invert but returns ErrSingular when the linear map is not
// invertible.
func (aff AffineTransform) TryInvert() (AffineTransform, error) {
	if !aff.IsInvertible() {
		return AffineTransform{}, fmt.Errorf("invert affine transform: determinant %g: %w", aff.Determinant(), ErrSingular)
	}
	return aff.Invert(), nil
}

// WithTranslation replaces the translation portion of this affine
// transformation.
func (aff AffineTransform) WithTranslation(v Vector3) AffineTransform {
	aff.Translation = v
	return aff
}

// Matrix returns the homogeneous matrix of aff. See [Matrix4f.Flatten] for
// the layout.
func (aff AffineTransform) Matrix() Matrix4f {
	return Matrix4fAffine(aff.LinearTransform, aff.Translation)
}

// TransformBoundingBox computes the bounding box of a transformed box.
//
// Returns the minimal [BoundingBox] that encloses the given box after affine
// transformation. If the transform is axis-aligned, then this bounding box is
// "tight", in other words the returned box is the transformed box.
func (aff AffineTransform) TransformBoundingBox(b BoundingBox) BoundingBox {
	return transformBoundingBox(b, aff)
}

// ApproxEqual reports whether the linear maps and translations of aff and o
// agree within epsilon, element-wise.
func (aff AffineTransform) ApproxEqual(o AffineTransform, epsilon float32) bool {
	return aff.Translation.ApproxEqual(o.Translation, epsilon) &&
		aff.LinearTransform.ApproxEqual(o.LinearTransform, epsilon)
}

func (aff AffineTransform) IsInf() bool {
	return aff.Translation.IsInf() || aff.LinearTransform.IsInf()
}

func (aff AffineTransform) IsNaN() bool {
	return aff.Translation.IsNaN() || aff.LinearTransform.IsNaN()
}
