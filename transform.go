package spatial

import "iter"

// Transformer is implemented by every type that can map points:
// [RigidTransform], [AffineTransform], [DualQuaternion], and [Matrix4f].
type Transformer interface {
	TransformPoint(p Vector3) Vector3
}

var (
	_ Transformer = RigidTransform{}
	_ Transformer = AffineTransform{}
	_ Transformer = DualQuaternion{}
	_ Transformer = Matrix4f{}
)

// TransformPoints lazily maps every point of seq through t.
func TransformPoints(seq iter.Seq[Vector3], t Transformer) iter.Seq[Vector3] {
	return func(yield func(Vector3) bool) {
		for p := range seq {
			if !yield(t.TransformPoint(p)) {
				break
			}
		}
	}
}

func transformBoundingBox(b BoundingBox, t Transformer) BoundingBox {
	corners := b.Corners()
	p := t.TransformPoint(corners[0])
	out := BoundingBox{Min: p, Max: p}
	for _, c := range corners[1:] {
		out = out.UnionPoint(t.TransformPoint(c))
	}
	return out
}
