package spatial

import "errors"

// Arithmetic never fails in this package. These errors are returned only by
// the constructors, indexers, and fallible variants that validate their
// input. Match them with errors.Is.
var (
	// ErrBadShape is returned when a value is constructed from a slice with
	// too few elements.
	ErrBadShape = errors.New("spatial: invalid shape")

	// ErrOutOfRange is returned by row and column indexers.
	ErrOutOfRange = errors.New("spatial: index out of range")

	// ErrSingular is returned by TryInvert when the determinant is smaller in
	// magnitude than Epsilon.
	ErrSingular = errors.New("spatial: singular matrix")

	// ErrLengthMismatch is returned when parallel slices differ in length.
	ErrLengthMismatch = errors.New("spatial: length mismatch")
)
