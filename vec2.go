package spatial

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector2 is a 2D vector. It only exists to feed the 2D path of [Matrix3f];
// see [Matrix3fTranslation2D].
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns the vector ⟨x, y⟩.
func Vec2(x, y float32) Vector2 {
	return Vector2{
		X: x,
		Y: y,
	}
}

func (v Vector2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product of v and o.
func (v Vector2) Cross(o Vector2) float32 {
	return v.X*o.Y - v.Y*o.X
}

// Length returns the magnitude of the vector.
func (v Vector2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// LengthSquared returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vector2.Length].
func (v Vector2) LengthSquared() float32 {
	return v.Dot(v)
}

// Normalize returns a vector of magnitude 1.0 with the same angle as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vector2) Normalize() Vector2 {
	return v.Mul(1.0 / v.Length())
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vector2) IsInf() bool {
	return isInf(v.X, v.Y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vector2) IsNaN() bool {
	return isNaN(v.X, v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vector2) Mul(f float32) Vector2 {
	return Vector2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vector2) Negate() Vector2 {
	return Vector2{
		X: -v.X,
		Y: -v.Y,
	}
}
