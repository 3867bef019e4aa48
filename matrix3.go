package spatial

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Matrix3f is a 3×3 matrix stored row-major; Mrc is the element in row r and
// column c.
//
// Vectors are rows, so a matrix maps v to v·M. As a consequence a.Mul(b) is
// the map that applies a first and b second, and the rows of a rotation matrix
// are the images of the basis vectors.
//
// Rotation matrices are orthonormal. The linear part of an [AffineTransform]
// may contain scale and shear and need not be invertible.
type Matrix3f struct {
	// Fields instead of an array, so that the compiler can keep elements in
	// registers.

	M11, M12, M13 float32
	M21, M22, M23 float32
	M31, M32, M33 float32
}

// IdentityMatrix3f is the identity matrix.
var IdentityMatrix3f = Matrix3f{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// NewMatrix3f creates a matrix from its elements in row-major order.
// Alternatively, you can initialize the fields of [Matrix3f] manually.
func NewMatrix3f(n [9]float32) Matrix3f {
	return Matrix3f{
		n[0], n[1], n[2],
		n[3], n[4], n[5],
		n[6], n[7], n[8],
	}
}

// Matrix3fFromSlice creates a matrix from the first nine elements of s, in
// row-major order. It returns ErrBadShape if s is shorter than that.
func Matrix3fFromSlice(s []float32) (Matrix3f, error) {
	if len(s) < 9 {
		return Matrix3f{}, fmt.Errorf("need 9 elements, got %d: %w", len(s), ErrBadShape)
	}
	return NewMatrix3f([9]float32(s[:9])), nil
}

// Matrix3fScale creates a matrix scaling each axis by the corresponding
// component of v.
func Matrix3fScale(v Vector3) Matrix3f {
	return Matrix3f{
		v.X, 0, 0,
		0, v.Y, 0,
		0, 0, v.Z,
	}
}

// Matrix3fRotation creates the rotation matrix of the unit quaternion q.
// It is the same as q.Matrix3f().
func Matrix3fRotation(q Quaternion) Matrix3f {
	return q.Matrix3f()
}

// Matrix3fAxisAngle creates a matrix rotating by angle radians about axis.
func Matrix3fAxisAngle(axis Vector3, angle float32) Matrix3f {
	return QuaternionFromAxisAngle(axis, angle).Matrix3f()
}

// Matrix3fCrossProduct creates the skew-symmetric matrix K for which
// K.Transform(u) == v.Cross(u).
func Matrix3fCrossProduct(v Vector3) Matrix3f {
	return Matrix3f{
		0, v.Z, -v.Y,
		-v.Z, 0, v.X,
		v.Y, -v.X, 0,
	}
}

// Matrix3fReflect creates the Householder reflection about the plane through
// the origin with the given normal. The normal is normalized first.
func Matrix3fReflect(normal Vector3) Matrix3f {
	n := normal.Normalize()
	xy := -2 * n.X * n.Y
	xz := -2 * n.X * n.Z
	yz := -2 * n.Y * n.Z
	return Matrix3f{
		1 - 2*n.X*n.X, xy, xz,
		xy, 1 - 2*n.Y*n.Y, yz,
		xz, yz, 1 - 2*n.Z*n.Z,
	}
}

// Matrix3fTranslation2D creates a homogeneous 2D matrix translating by v.
// Under the row-vector convention the translation lives in the third row,
// which is the last column of the equivalent column-vector matrix.
func Matrix3fTranslation2D(v Vector2) Matrix3f {
	return Matrix3f{
		1, 0, 0,
		0, 1, 0,
		v.X, v.Y, 1,
	}
}

// Matrix3fRotation2D creates a homogeneous 2D matrix rotating by th radians.
// A positive angle rotates the positive x axis into the positive y axis.
func Matrix3fRotation2D(th float32) Matrix3f {
	sin, cos := math32.Sin(th), math32.Cos(th)
	return Matrix3f{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
	}
}

// Matrix3fScale2D creates a homogeneous 2D matrix scaling by x and y.
func Matrix3fScale2D(x, y float32) Matrix3f {
	return Matrix3f{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	}
}

// Coefficients returns the elements of the matrix in row-major order.
func (m Matrix3f) Coefficients() [9]float32 {
	return [9]float32{
		m.M11, m.M12, m.M13,
		m.M21, m.M22, m.M23,
		m.M31, m.M32, m.M33,
	}
}

// At returns the element in row r and column c, both zero-based. It returns
// ErrOutOfRange for indices outside [0, 3).
func (m Matrix3f) At(r, c int) (float32, error) {
	if r < 0 || r > 2 || c < 0 || c > 2 {
		return 0, fmt.Errorf("Matrix3f.At(%d, %d): %w", r, c, ErrOutOfRange)
	}
	return m.Coefficients()[r*3+c], nil
}

// Row returns row r, zero-based.
func (m Matrix3f) Row(r int) (Vector3, error) {
	switch r {
	case 0:
		return Vector3{m.M11, m.M12, m.M13}, nil
	case 1:
		return Vector3{m.M21, m.M22, m.M23}, nil
	case 2:
		return Vector3{m.M31, m.M32, m.M33}, nil
	default:
		return Vector3{}, fmt.Errorf("Matrix3f.Row(%d): %w", r, ErrOutOfRange)
	}
}

// Col returns column c, zero-based.
func (m Matrix3f) Col(c int) (Vector3, error) {
	switch c {
	case 0:
		return Vector3{m.M11, m.M21, m.M31}, nil
	case 1:
		return Vector3{m.M12, m.M22, m.M32}, nil
	case 2:
		return Vector3{m.M13, m.M23, m.M33}, nil
	default:
		return Vector3{}, fmt.Errorf("Matrix3f.Col(%d): %w", c, ErrOutOfRange)
	}
}

func (m Matrix3f) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]",
		m.M11, m.M12, m.M13,
		m.M21, m.M22, m.M23,
		m.M31, m.M32, m.M33)
}

func (m Matrix3f) Add(o Matrix3f) Matrix3f {
	return Matrix3f{
		m.M11 + o.M11, m.M12 + o.M12, m.M13 + o.M13,
		m.M21 + o.M21, m.M22 + o.M22, m.M23 + o.M23,
		m.M31 + o.M31, m.M32 + o.M32, m.M33 + o.M33,
	}
}

func (m Matrix3f) Sub(o Matrix3f) Matrix3f {
	return Matrix3f{
		m.M11 - o.M11, m.M12 - o.M12, m.M13 - o.M13,
		m.M21 - o.M21, m.M22 - o.M22, m.M23 - o.M23,
		m.M31 - o.M31, m.M32 - o.M32, m.M33 - o.M33,
	}
}

// Scale multiplies every element by f.
func (m Matrix3f) Scale(f float32) Matrix3f {
	return Matrix3f{
		m.M11 * f, m.M12 * f, m.M13 * f,
		m.M21 * f, m.M22 * f, m.M23 * f,
		m.M31 * f, m.M32 * f, m.M33 * f,
	}
}

func (m Matrix3f) Negate() Matrix3f {
	return m.Scale(-1)
}

// Mul returns the matrix product m·o, the map that applies m first and o
// second.
func (m Matrix3f) Mul(o Matrix3f) Matrix3f {
	return Matrix3f{
		M11: m.M11*o.M11 + m.M12*o.M21 + m.M13*o.M31,
		M12: m.M11*o.M12 + m.M12*o.M22 + m.M13*o.M32,
		M13: m.M11*o.M13 + m.M12*o.M23 + m.M13*o.M33,

		M21: m.M21*o.M11 + m.M22*o.M21 + m.M23*o.M31,
		M22: m.M21*o.M12 + m.M22*o.M22 + m.M23*o.M32,
		M23: m.M21*o.M13 + m.M22*o.M23 + m.M23*o.M33,

		M31: m.M31*o.M11 + m.M32*o.M21 + m.M33*o.M31,
		M32: m.M31*o.M12 + m.M32*o.M22 + m.M33*o.M32,
		M33: m.M31*o.M13 + m.M32*o.M23 + m.M33*o.M33,
	}
}

// Transform returns v·m.
func (m Matrix3f) Transform(v Vector3) Vector3 {
	return Vector3{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33,
	}
}

// TransformTranspose returns v·mᵀ without computing the transpose.
func (m Matrix3f) TransformTranspose(v Vector3) Vector3 {
	return Vector3{
		X: v.X*m.M11 + v.Y*m.M12 + v.Z*m.M13,
		Y: v.X*m.M21 + v.Y*m.M22 + v.Z*m.M23,
		Z: v.X*m.M31 + v.Y*m.M32 + v.Z*m.M33,
	}
}

// TransformPoint2D maps the 2D point p, treated as the homogeneous row
// (p.X, p.Y, 1), through m. The third column of m is ignored.
func (m Matrix3f) TransformPoint2D(p Vector2) Vector2 {
	return Vector2{
		X: p.X*m.M11 + p.Y*m.M21 + m.M31,
		Y: p.X*m.M12 + p.Y*m.M22 + m.M32,
	}
}

// Transpose swaps rows and columns. For orthonormal matrices the transpose is
// the inverse; for general linear maps it is not.
func (m Matrix3f) Transpose() Matrix3f {
	return Matrix3f{
		m.M11, m.M21, m.M31,
		m.M12, m.M22, m.M32,
		m.M13, m.M23, m.M33,
	}
}

// Determinant computes the determinant by cofactor expansion along the first
// row.
func (m Matrix3f) Determinant() float32 {
	return m.M11*(m.M22*m.M33-m.M23*m.M32) -
		m.M12*(m.M21*m.M33-m.M23*m.M31) +
		m.M13*(m.M21*m.M32-m.M22*m.M31)
}

// IsInvertible reports whether the magnitude of the determinant is at least
// [Epsilon].
func (m Matrix3f) IsInvertible() bool {
	return math32.Abs(m.Determinant()) >= Epsilon
}

// Invert computes the inverse as the adjugate divided by the determinant.
//
// Produces NaN or infinite values when the matrix is singular. Check
// [Matrix3f.IsInvertible] first or use [Matrix3f.TryInvert].
func (m Matrix3f) Invert() Matrix3f {
	invDet := 1 / m.Determinant()
	return Matrix3f{
		M11: (m.M22*m.M33 - m.M23*m.M32) * invDet,
		M12: (m.M13*m.M32 - m.M12*m.M33) * invDet,
		M13: (m.M12*m.M23 - m.M13*m.M22) * invDet,

		M21: (m.M23*m.M31 - m.M21*m.M33) * invDet,
		M22: (m.M11*m.M33 - m.M13*m.M31) * invDet,
		M23: (m.M13*m.M21 - m.M11*m.M23) * invDet,

		M31: (m.M21*m.M32 - m.M22*m.M31) * invDet,
		M32: (m.M12*m.M31 - m.M11*m.M32) * invDet,
		M33: (m.M11*m.M22 - m.M12*m.M21) * invDet,
	}
}

// TryInvert is like Invert but returns ErrSingular instead of NaN values when
// the matrix is not invertible.
func (m Matrix3f) TryInvert() (Matrix3f, error) {
	if !m.IsInvertible() {
		return Matrix3f{}, fmt.Errorf("determinant %g: %w", m.Determinant(), ErrSingular)
	}
	return m.Invert(), nil
}

// IsOrthonormal reports whether m·mᵀ is the identity within epsilon and the
// determinant is +1 within epsilon, that is, whether m is a rotation.
func (m Matrix3f) IsOrthonormal(epsilon float32) bool {
	return m.Mul(m.Transpose()).ApproxEqual(IdentityMatrix3f, epsilon) &&
		near(m.Determinant(), 1, epsilon)
}

// Matrix4f embeds m as the upper-left block of a homogeneous matrix with no
// translation.
func (m Matrix3f) Matrix4f() Matrix4f {
	return Matrix4fAffine(m, Vector3{})
}

// ApproxEqual reports whether all elements of m and o differ by at most
// epsilon.
func (m Matrix3f) ApproxEqual(o Matrix3f, epsilon float32) bool {
	a, b := m.Coefficients(), o.Coefficients()
	for i := range a {
		if !near(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

func (m Matrix3f) IsInf() bool {
	c := m.Coefficients()
	return isInf(c[:]...)
}

func (m Matrix3f) IsNaN() bool {
	c := m.Coefficients()
	return isNaN(c[:]...)
}
