// Package spatial provides the transform algebra used to place and move
// objects in a 3D scene: quaternions, 3×3 and 4×4 matrices, rigid transforms,
// affine transforms, and dual quaternions. All values are single precision.
//
// # Values
//
// Every type is a small value type. Operations never modify their receiver;
// they return new values. Nothing holds a reference to another value's
// storage, so independent copies can be used from multiple goroutines without
// synchronization, and none of the arithmetic allocates.
//
// The identity values [IdentityQuaternion], [IdentityMatrix3f],
// [IdentityMatrix4f], [IdentityRigidTransform], [IdentityAffineTransform] and
// [IdentityDualQuaternion] are package-level variables that are never
// modified.
//
// # Composition order
//
// All transform types agree on one convention: a.Mul(b) is the transform
// that applies a first and b second. That is,
//
//	a.Mul(b).TransformPoint(p) == b.TransformPoint(a.TransformPoint(p))
//
// for [RigidTransform], [AffineTransform], [DualQuaternion], [Matrix3f] and
// [Matrix4f]. Getting this order wrong doesn't crash; it silently misplaces
// everything downstream, which is why it is tested for every type.
//
// [Quaternion.Mul] is the exception, because it is the Hamilton product:
// rotating by q.Mul(o) rotates by o first. [Concatenate] provides the "first,
// then" order and is what the transform types use internally.
//
// # Matrix layout
//
// Vectors are rows and are multiplied on the left: a matrix maps v to v·M.
// Matrices are stored row-major in fields M11 through M44. The translation of
// a [Matrix4f] lives in M41, M42 and M43.
//
// [Matrix4f.Flatten] returns the elements row-major. Since the row-vector
// matrix is the transpose of the column-vector matrix, this is exactly the
// column-major layout that OpenGL and Vulkan expect, and can be uploaded as is.
//
// # Singular matrices
//
// Invert on [Matrix3f], [Matrix4f] and [AffineTransform] never fails: for a
// singular matrix it divides by a (near) zero determinant and produces NaN or
// infinite values, which then spread through everything computed from them.
// This is the fast path. Callers that cannot guarantee invertibility should
// check IsInvertible, which compares the determinant against [Epsilon], or
// call TryInvert, which returns [ErrSingular]. All types have IsNaN and IsInf
// methods for catching propagation early.
//
// # Dual quaternions
//
// A [DualQuaternion] encodes the same rigid motion as a [RigidTransform].
// Its advantage is interpolation: blending dual quaternions produces rigid
// motions without the volume loss that blending rotations and translations
// separately causes around joints in skinned meshes.
package spatial
