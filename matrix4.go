package spatial

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Matrix4f is a 4×4 homogeneous matrix stored row-major, using the same
// row-vector convention as [Matrix3f]. The upper-left 3×3 block is the linear
// map and M41, M42, M43 hold the translation.
//
// Matrix4f is the flattened form handed to renderers; see [Matrix4f.Flatten]
// for the memory layout.
type Matrix4f struct {
	M11, M12, M13, M14 float32
	M21, M22, M23, M24 float32
	M31, M32, M33, M34 float32
	M41, M42, M43, M44 float32
}

// IdentityMatrix4f is the identity matrix.
var IdentityMatrix4f = Matrix4f{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// NewMatrix4f creates a matrix from its elements in row-major order.
func NewMatrix4f(n [16]float32) Matrix4f {
	return Matrix4f{
		n[0], n[1], n[2], n[3],
		n[4], n[5], n[6], n[7],
		n[8], n[9], n[10], n[11],
		n[12], n[13], n[14], n[15],
	}
}

// Matrix4fFromSlice creates a matrix from the first sixteen elements of s, in
// row-major order. It returns ErrBadShape if s is shorter than that.
func Matrix4fFromSlice(s []float32) (Matrix4f, error) {
	if len(s) < 16 {
		return Matrix4f{}, fmt.Errorf("need 16 elements, got %d: %w", len(s), ErrBadShape)
	}
	return NewMatrix4f([16]float32(s[:16])), nil
}

// Matrix4fAffine creates the homogeneous matrix that applies linear and then
// translates by translation.
func Matrix4fAffine(linear Matrix3f, translation Vector3) Matrix4f {
	return Matrix4f{
		linear.M11, linear.M12, linear.M13, 0,
		linear.M21, linear.M22, linear.M23, 0,
		linear.M31, linear.M32, linear.M33, 0,
		translation.X, translation.Y, translation.Z, 1,
	}
}

// Matrix4fTranslation creates a matrix translating by v.
func Matrix4fTranslation(v Vector3) Matrix4f {
	return Matrix4fAffine(IdentityMatrix3f, v)
}

// Matrix4fScale creates a matrix scaling each axis by the corresponding
// component of v.
func Matrix4fScale(v Vector3) Matrix4f {
	return Matrix4fAffine(Matrix3fScale(v), Vector3{})
}

// Matrix4fRotation creates the rotation matrix of the unit quaternion q.
func Matrix4fRotation(q Quaternion) Matrix4f {
	return Matrix4fAffine(q.Matrix3f(), Vector3{})
}

// Flatten returns the sixteen elements in row-major order.
//
// Because vectors are rows, this is the same sequence of values a
// column-major, column-vector API such as OpenGL or Vulkan expects for the
// same transform. The translation is at indices 12, 13, and 14.
func (m Matrix4f) Flatten() [16]float32 {
	return [16]float32{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

// At returns the element in row r and column c, both zero-based. It returns
// ErrOutOfRange for indices outside [0, 4).
func (m Matrix4f) At(r, c int) (float32, error) {
	if r < 0 || r > 3 || c < 0 || c > 3 {
		return 0, fmt.Errorf("Matrix4f.At(%d, %d): %w", r, c, ErrOutOfRange)
	}
	return m.Flatten()[r*4+c], nil
}

func (m Matrix4f) String() string {
	return fmt.Sprintf("[%g %g %g %g; %g %g %g %g; %g %g %g %g; %g %g %g %g]",
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44)
}

// Matrix3f returns the upper-left 3×3 block.
func (m Matrix4f) Matrix3f() Matrix3f {
	return Matrix3f{
		m.M11, m.M12, m.M13,
		m.M21, m.M22, m.M23,
		m.M31, m.M32, m.M33,
	}
}

// Translation returns the translation row.
func (m Matrix4f) Translation() Vector3 {
	return Vector3{m.M41, m.M42, m.M43}
}

// Mul returns the matrix product m·o, the map that applies m first and o
// second.
func (m Matrix4f) Mul(o Matrix4f) Matrix4f {
	return Matrix4f{
		M11: m.M11*o.M11 + m.M12*o.M21 + m.M13*o.M31 + m.M14*o.M41,
		M12: m.M11*o.M12 + m.M12*o.M22 + m.M13*o.M32 + m.M14*o.M42,
		M13: m.M11*o.M13 + m.M12*o.M23 + m.M13*o.M33 + m.M14*o.M43,
		M14: m.M11*o.M14 + m.M12*o.M24 + m.M13*o.M34 + m.M14*o.M44,

		M21: m.M21*o.M11 + m.M22*o.M21 + m.M23*o.M31 + m.M24*o.M41,
		M22: m.M21*o.M12 + m.M22*o.M22 + m.M23*o.M32 + m.M24*o.M42,
		M23: m.M21*o.M13 + m.M22*o.M23 + m.M23*o.M33 + m.M24*o.M43,
		M24: m.M21*o.M14 + m.M22*o.M24 + m.M23*o.M34 + m.M24*o.M44,

		M31: m.M31*o.M11 + m.M32*o.M21 + m.M33*o.M31 + m.M34*o.M41,
		M32: m.M31*o.M12 + m.M32*o.M22 + m.M33*o.M32 + m.M34*o.M42,
		M33: m.M31*o.M13 + m.M32*o.M23 + m.M33*o.M33 + m.M34*o.M43,
		M34: m.M31*o.M14 + m.M32*o.M24 + m.M33*o.M34 + m.M34*o.M44,

		M41: m.M41*o.M11 + m.M42*o.M21 + m.M43*o.M31 + m.M44*o.M41,
		M42: m.M41*o.M12 + m.M42*o.M22 + m.M43*o.M32 + m.M44*o.M42,
		M43: m.M41*o.M13 + m.M42*o.M23 + m.M43*o.M33 + m.M44*o.M43,
		M44: m.M41*o.M14 + m.M42*o.M24 + m.M43*o.M34 + m.M44*o.M44,
	}
}

// TransformPoint maps the point p, as the homogeneous row (p, 1). The fourth
// column is ignored, so this is only meaningful for affine matrices.
func (m Matrix4f) TransformPoint(p Vector3) Vector3 {
	return Vector3{
		X: p.X*m.M11 + p.Y*m.M21 + p.Z*m.M31 + m.M41,
		Y: p.X*m.M12 + p.Y*m.M22 + p.Z*m.M32 + m.M42,
		Z: p.X*m.M13 + p.Y*m.M23 + p.Z*m.M33 + m.M43,
	}
}

// TransformDirection maps the direction v, as the homogeneous row (v, 0),
// ignoring the translation.
func (m Matrix4f) TransformDirection(v Vector3) Vector3 {
	return Vector3{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33,
	}
}

func (m Matrix4f) Transpose() Matrix4f {
	return Matrix4f{
		m.M11, m.M21, m.M31, m.M41,
		m.M12, m.M22, m.M32, m.M42,
		m.M13, m.M23, m.M33, m.M43,
		m.M14, m.M24, m.M34, m.M44,
	}
}

// minors returns the six 2×2 determinants of the upper two rows (s) and of
// the lower two rows (c) that the Laplace expansion of the determinant and
// the adjugate are built from.
func (m Matrix4f) minors() (s, c [6]float32) {
	s[0] = m.M11*m.M22 - m.M21*m.M12
	s[1] = m.M11*m.M23 - m.M21*m.M13
	s[2] = m.M11*m.M24 - m.M21*m.M14
	s[3] = m.M12*m.M23 - m.M22*m.M13
	s[4] = m.M12*m.M24 - m.M22*m.M14
	s[5] = m.M13*m.M24 - m.M23*m.M14

	c[5] = m.M33*m.M44 - m.M43*m.M34
	c[4] = m.M32*m.M44 - m.M42*m.M34
	c[3] = m.M32*m.M43 - m.M42*m.M33
	c[2] = m.M31*m.M44 - m.M41*m.M34
	c[1] = m.M31*m.M43 - m.M41*m.M33
	c[0] = m.M31*m.M42 - m.M41*m.M32
	return s, c
}

func determinant4(s, c [6]float32) float32 {
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Determinant computes the determinant.
func (m Matrix4f) Determinant() float32 {
	return determinant4(m.minors())
}

// IsInvertible reports whether the magnitude of the determinant is at least
// [Epsilon].
func (m Matrix4f) IsInvertible() bool {
	return math32.Abs(m.Determinant()) >= Epsilon
}

// Invert computes the inverse as the adjugate divided by the determinant.
//
// Produces NaN or infinite values when the matrix is singular.
func (m Matrix4f) Invert() Matrix4f {
	s, c := m.minors()
	invDet := 1 / determinant4(s, c)
	return Matrix4f{
		M11: (m.M22*c[5] - m.M23*c[4] + m.M24*c[3]) * invDet,
		M12: (-m.M12*c[5] + m.M13*c[4] - m.M14*c[3]) * invDet,
		M13: (m.M42*s[5] - m.M43*s[4] + m.M44*s[3]) * invDet,
		M14: (-m.M32*s[5] + m.M33*s[4] - m.M34*s[3]) * invDet,

		M21: (-m.M21*c[5] + m.M23*c[2] - m.M24*c[1]) * invDet,
		M22: (m.M11*c[5] - m.M13*c[2] + m.M14*c[1]) * invDet,
		M23: (-m.M41*s[5] + m.M43*s[2] - m.M44*s[1]) * invDet,
		M24: (m.M31*s[5] - m.M33*s[2] + m.M34*s[1]) * invDet,

		M31: (m.M21*c[4] - m.M22*c[2] + m.M24*c[0]) * invDet,
		M32: (-m.M11*c[4] + m.M12*c[2] - m.M14*c[0]) * invDet,
		M33: (m.M41*s[4] - m.M42*s[2] + m.M44*s[0]) * invDet,
		M34: (-m.M31*s[4] + m.M32*s[2] - m.M34*s[0]) * invDet,

		M41: (-m.M21*c[3] + m.M22*c[1] - m.M23*c[0]) * invDet,
		M42: (m.M11*c[3] - m.M12*c[1] + m.M13*c[0]) * invDet,
		M43: (-m.M41*s[3] + m.M42*s[1] - m.M43*s[0]) * invDet,
		M44: (m.M31*s[3] - m.M32*s[1] + m.M33*s[0]) * invDet,
	}
}

// TryInvert is like Invert but returns ErrSingular instead of NaN values when
// the matrix is not invertible.
func (m Matrix4f) TryInvert() (Matrix4f, error) {
	if !m.IsInvertible() {
		return Matrix4f{}, fmt.Errorf("determinant %g: %w", m.Determinant(), ErrSingular)
	}
	return m.Invert(), nil
}

// ApproxEqual reports whether all elements of m and o differ by at most
// epsilon.
func (m Matrix4f) ApproxEqual(o Matrix4f, epsilon float32) bool {
	a, b := m.Flatten(), o.Flatten()
	for i := range a {
		if !near(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

func (m Matrix4f) IsInf() bool {
	f := m.Flatten()
	return isInf(f[:]...)
}

func (m Matrix4f) IsNaN() bool {
	f := m.Flatten()
	return isNaN(f[:]...)
}
