package spatial

import "fmt"

// BoundingBox is an axis-aligned box spanning Min to Max.
//
// Most methods assume Min ≤ Max component-wise; use [BoundingBox.Abs] or
// [NewBoundingBoxFromPoints] to establish that.
type BoundingBox struct {
	Min, Max Vector3
}

// NewBoundingBoxFromPoints returns a box with the extents of p0 and p1,
// ensuring that Min ≤ Max.
func NewBoundingBoxFromPoints(p0, p1 Vector3) BoundingBox {
	return BoundingBox{p0, p1}.Abs()
}

// Abs returns a new box with the same extents as b, but ensuring that the
// size is non-negative in every dimension.
func (b BoundingBox) Abs() BoundingBox {
	return BoundingBox{
		Min: b.Min.Min(b.Max),
		Max: b.Min.Max(b.Max),
	}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[%s, %s]", b.Min, b.Max)
}

// Size returns Max − Min. It may be negative.
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

func (b BoundingBox) Center() Vector3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b BoundingBox) Volume() float32 {
	s := b.Size()
	return s.X * s.Y * s.Z
}

// Contains reports whether p lies in the half-open box [Min, Max).
func (b BoundingBox) Contains(p Vector3) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y &&
		p.Z >= b.Min.Z && p.Z < b.Max.Z
}

// Union returns the smallest box enclosing b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		Min: b.Min.Min(o.Min),
		Max: b.Max.Max(o.Max),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the boundary of zero-volume boxes. Thus, a succession
// of UnionPoint operations on a series of points yields their enclosing box.
func (b BoundingBox) UnionPoint(p Vector3) BoundingBox {
	return BoundingBox{
		Min: b.Min.Min(p),
		Max: b.Max.Max(p),
	}
}

// Intersect returns the intersection of two boxes.
//
// The result has zero volume if the boxes do not overlap. It always has
// non-negative size.
func (b BoundingBox) Intersect(o BoundingBox) BoundingBox {
	lo := b.Min.Max(o.Min)
	hi := b.Max.Min(o.Max)
	return BoundingBox{
		Min: lo,
		Max: lo.Max(hi),
	}
}

// Inflate expands the box by v in both directions along each axis.
func (b BoundingBox) Inflate(v Vector3) BoundingBox {
	return BoundingBox{
		Min: b.Min.Sub(v),
		Max: b.Max.Add(v),
	}
}

func (b BoundingBox) Translate(v Vector3) BoundingBox {
	return BoundingBox{
		Min: b.Min.Add(v),
		Max: b.Max.Add(v),
	}
}

// Corners returns the eight corners of the box.
func (b BoundingBox) Corners() [8]Vector3 {
	lo, hi := b.Min, b.Max
	return [8]Vector3{
		{lo.X, lo.Y, lo.Z},
		{hi.X, lo.Y, lo.Z},
		{lo.X, hi.Y, lo.Z},
		{hi.X, hi.Y, lo.Z},
		{lo.X, lo.Y, hi.Z},
		{hi.X, lo.Y, hi.Z},
		{lo.X, hi.Y, hi.Z},
		{hi.X, hi.Y, hi.Z},
	}
}

func (b BoundingBox) IsInf() bool {
	return b.Min.IsInf() || b.Max.IsInf()
}

func (b BoundingBox) IsNaN() bool {
	return b.Min.IsNaN() || b.Max.IsNaN()
}
