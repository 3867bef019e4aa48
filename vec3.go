package spatial

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector3 is a 3D vector or point.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

var (
	UnitX = Vector3{1, 0, 0}
	UnitY = Vector3{0, 1, 0}
	UnitZ = Vector3{0, 0, 1}
)

// Vec3 returns the vector ⟨x, y, z⟩.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{
		X: x,
		Y: y,
		Z: z,
	}
}

// Splat returns the vector's x, y, and z coordinates.
func (v Vector3) Splat() (float32, float32, float32) {
	return v.X, v.Y, v.Z
}

func (v Vector3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the magnitude of the vector.
func (v Vector3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vector3.Length].
func (v Vector3) LengthSquared() float32 {
	return v.Dot(v)
}

// Distance returns the euclidean distance between two points.
func (v Vector3) Distance(o Vector3) float32 {
	return v.Sub(o).Length()
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vector3) Normalize() Vector3 {
	return v.Mul(1.0 / v.Length())
}

// Lerp linearly interpolates between two vectors.
func (v Vector3) Lerp(o Vector3, t float32) Vector3 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Add adds two vectors and returns the resulting vector.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vector3) Mul(f float32) Vector3 {
	return Vector3{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

func (v Vector3) Div(f float32) Vector3 {
	return Vector3{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

// MulComponents multiplies v and o component-wise.
func (v Vector3) MulComponents(o Vector3) Vector3 {
	return Vector3{
		X: v.X * o.X,
		Y: v.Y * o.Y,
		Z: v.Z * o.Z,
	}
}

// Min returns the component-wise minimum of v and o.
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{
		X: min(v.X, o.X),
		Y: min(v.Y, o.Y),
		Z: min(v.Z, o.Z),
	}
}

// Max returns the component-wise maximum of v and o.
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{
		X: max(v.X, o.X),
		Y: max(v.Y, o.Y),
		Z: max(v.Z, o.Z),
	}
}

// Negate returns a new vector with the signs of all components flipped.
func (v Vector3) Negate() Vector3 {
	return Vector3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// ApproxEqual reports whether every component of v is within epsilon of the
// corresponding component of o.
func (v Vector3) ApproxEqual(o Vector3, epsilon float32) bool {
	return near(v.X, o.X, epsilon) &&
		near(v.Y, o.Y, epsilon) &&
		near(v.Z, o.Z, epsilon)
}

// IsInf reports whether at least one component is infinite.
func (v Vector3) IsInf() bool {
	return isInf(v.X, v.Y, v.Z)
}

// IsNaN reports whether at least one component is NaN.
func (v Vector3) IsNaN() bool {
	return isNaN(v.X, v.Y, v.Z)
}
