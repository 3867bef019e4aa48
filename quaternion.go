package spatial

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Quaternion is a quaternion x·i + y·j + z·k + w. W is the scalar part.
//
// Quaternions that represent rotations must have unit length. Non-unit
// quaternions are valid intermediate values, for example as the dual part of
// a [DualQuaternion].
type Quaternion struct {
	X, Y, Z, W float32
}

// IdentityQuaternion is the rotation by zero radians.
var IdentityQuaternion = Quaternion{0, 0, 0, 1}

// Quat returns the quaternion x·i + y·j + z·k + w.
func Quat(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// QuaternionFromVector returns the pure quaternion (v.X, v.Y, v.Z, 0).
func QuaternionFromVector(v Vector3) Quaternion {
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z}
}

// QuaternionFromAxisAngle returns the rotation of angle radians about axis.
// The axis is normalized first and must not be the zero vector.
func QuaternionFromAxisAngle(axis Vector3, angle float32) Quaternion {
	axis = axis.Normalize()
	half := angle * 0.5
	s := math32.Sin(half)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math32.Cos(half),
	}
}

// QuaternionFromYawPitchRoll returns the rotation that first rolls about the
// z axis, then pitches about the x axis, then yaws about the y axis.
func QuaternionFromYawPitchRoll(yaw, pitch, roll float32) Quaternion {
	sy, cy := math32.Sin(yaw*0.5), math32.Cos(yaw*0.5)
	sp, cp := math32.Sin(pitch*0.5), math32.Cos(pitch*0.5)
	sr, cr := math32.Sin(roll*0.5), math32.Cos(roll*0.5)
	return Quaternion{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// QuaternionBetween returns the shortest rotation that takes the unit vector
// from onto the unit vector to. For antiparallel vectors the rotation is by π
// about an arbitrary axis perpendicular to from.
func QuaternionBetween(from, to Vector3) Quaternion {
	d := from.Dot(to)
	if d < -1+1e-6 {
		axis := UnitX.Cross(from)
		if axis.LengthSquared() < 1e-6 {
			axis = UnitY.Cross(from)
		}
		axis = axis.Normalize()
		return Quaternion{X: axis.X, Y: axis.Y, Z: axis.Z, W: 0}
	}
	c := from.Cross(to)
	return Quaternion{X: c.X, Y: c.Y, Z: c.Z, W: 1 + d}.Normalize()
}

// QuaternionFromMatrix3f returns the rotation represented by the orthonormal
// matrix m. The result is unspecified if m is not a rotation.
func QuaternionFromMatrix3f(m Matrix3f) Quaternion {
	// Shepperd's method, picking the largest of w, x, y, z to divide by.
	trace := m.M11 + m.M22 + m.M33
	switch {
	case trace > 0:
		s := math32.Sqrt(trace+1) * 2
		return Quaternion{
			X: (m.M23 - m.M32) / s,
			Y: (m.M31 - m.M13) / s,
			Z: (m.M12 - m.M21) / s,
			W: 0.25 * s,
		}
	case m.M11 > m.M22 && m.M11 > m.M33:
		s := math32.Sqrt(1+m.M11-m.M22-m.M33) * 2
		return Quaternion{
			X: 0.25 * s,
			Y: (m.M21 + m.M12) / s,
			Z: (m.M31 + m.M13) / s,
			W: (m.M23 - m.M32) / s,
		}
	case m.M22 > m.M33:
		s := math32.Sqrt(1+m.M22-m.M11-m.M33) * 2
		return Quaternion{
			X: (m.M12 + m.M21) / s,
			Y: 0.25 * s,
			Z: (m.M32 + m.M23) / s,
			W: (m.M31 - m.M13) / s,
		}
	default:
		s := math32.Sqrt(1+m.M33-m.M11-m.M22) * 2
		return Quaternion{
			X: (m.M31 + m.M13) / s,
			Y: (m.M32 + m.M23) / s,
			Z: 0.25 * s,
			W: (m.M12 - m.M21) / s,
		}
	}
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// Vector returns the vector part of q.
func (q Quaternion) Vector() Vector3 {
	return Vector3{X: q.X, Y: q.Y, Z: q.Z}
}

// Mul returns the Hamilton product q⊗o. It is not commutative. Rotating a
// vector by q⊗o rotates it by o first and by q second; use [Concatenate] for
// the "first, then" order used by the transform types.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Concatenate returns the rotation that applies a first and b second. It is
// equal to b.Mul(a).
func Concatenate(a, b Quaternion) Quaternion {
	return b.Mul(a)
}

func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W}
}

func (q Quaternion) Sub(o Quaternion) Quaternion {
	return Quaternion{q.X - o.X, q.Y - o.Y, q.Z - o.Z, q.W - o.W}
}

// Scale multiplies every component of q by f.
func (q Quaternion) Scale(f float32) Quaternion {
	return Quaternion{q.X * f, q.Y * f, q.Z * f, q.W * f}
}

// Negate returns -q. It represents the same rotation as q.
func (q Quaternion) Negate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, -q.W}
}

// Dot returns the four-dimensional dot product of q and o.
func (q Quaternion) Dot(o Quaternion) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Length returns the norm of q.
func (q Quaternion) Length() float32 {
	return math32.Sqrt(q.LengthSquared())
}

// LengthSquared returns the squared norm of q.
func (q Quaternion) LengthSquared() float32 {
	return q.Dot(q)
}

// IsNormalized reports whether q has unit length within epsilon.
func (q Quaternion) IsNormalized(epsilon float32) bool {
	return near(q.LengthSquared(), 1, epsilon)
}

// Normalize scales q to unit length. The zero quaternion produces NaN values.
func (q Quaternion) Normalize() Quaternion {
	return q.Scale(1 / q.Length())
}

// Conjugate negates the vector part of q. For unit quaternions this is the
// inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Invert returns the multiplicative inverse of q, its conjugate divided by its
// squared norm.
//
// Produces NaN or infinite values for the zero quaternion.
func (q Quaternion) Invert() Quaternion {
	return q.Conjugate().Scale(1 / q.LengthSquared())
}

// Rotate rotates v by the unit quaternion q, computing q⊗v⊗q*.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	// v + 2w(u × v) + 2u × (u × v), with u the vector part of q.
	u := q.Vector()
	t := u.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(u.Cross(t))
}

// AxisAngle returns the axis and angle, in [0, π], of the rotation q. If the
// angle is zero the axis is [UnitY].
func (q Quaternion) AxisAngle() (axis Vector3, angle float32) {
	if q.W < 0 {
		q = q.Negate()
	}
	w := clamp(q.W, -1, 1)
	s := math32.Sqrt(1 - w*w)
	if s < 1e-6 {
		return UnitY, 0
	}
	return q.Vector().Div(s), 2 * math32.Acos(w)
}

// Angle returns the rotation angle of q in [0, π].
func (q Quaternion) Angle() float32 {
	_, angle := q.AxisAngle()
	return angle
}

// Nlerp linearly interpolates between q and o along the shorter arc and
// normalizes the result.
func (q Quaternion) Nlerp(o Quaternion, t float32) Quaternion {
	if q.Dot(o) < 0 {
		o = o.Negate()
	}
	return q.Add(o.Sub(q).Scale(t)).Normalize()
}

// Slerp spherically interpolates between the unit quaternions q and o along
// the shorter arc.
func (q Quaternion) Slerp(o Quaternion, t float32) Quaternion {
	d := q.Dot(o)
	if d < 0 {
		o = o.Negate()
		d = -d
	}
	if d > 0.9995 {
		// Nearly parallel; sin(θ) would vanish.
		return q.Add(o.Sub(q).Scale(t)).Normalize()
	}
	theta := math32.Acos(d)
	sinTheta := math32.Sin(theta)
	s0 := math32.Sin((1-t)*theta) / sinTheta
	s1 := math32.Sin(t*theta) / sinTheta
	return q.Scale(s0).Add(o.Scale(s1))
}

// Matrix3f returns the rotation matrix of the unit quaternion q. The result is
// orthonormal with determinant +1.
func (q Quaternion) Matrix3f() Matrix3f {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z
	return Matrix3f{
		M11: 1 - 2*(yy+zz), M12: 2 * (xy + wz), M13: 2 * (xz - wy),
		M21: 2 * (xy - wz), M22: 1 - 2*(xx+zz), M23: 2 * (yz + wx),
		M31: 2 * (xz + wy), M32: 2 * (yz - wx), M33: 1 - 2*(xx+yy),
	}
}

// ApproxEqual reports whether all components of q and o differ by at most
// epsilon. It does not treat q and -q as equal.
func (q Quaternion) ApproxEqual(o Quaternion, epsilon float32) bool {
	return near(q.X, o.X, epsilon) &&
		near(q.Y, o.Y, epsilon) &&
		near(q.Z, o.Z, epsilon) &&
		near(q.W, o.W, epsilon)
}

func (q Quaternion) IsInf() bool {
	return isInf(q.X, q.Y, q.Z, q.W)
}

func (q Quaternion) IsNaN() bool {
	return isNaN(q.X, q.Y, q.Z, q.W)
}
