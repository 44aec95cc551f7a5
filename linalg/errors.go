package linalg

import "errors"

var (
	// ErrDimensionMismatch reports two operands whose dimensions do not agree.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNotSquare reports a matrix operation that requires a square matrix.
	ErrNotSquare = errors.New("linalg: matrix is not square")

	// ErrNotPowerOf2 reports a dimension that is not an exact power of the
	// local dimension, so no whole number of subsystems fits it.
	ErrNotPowerOf2 = errors.New("linalg: dimension is not a power of the local dimension")

	// ErrNotHermitian reports an eigendecomposition request on a non-Hermitian matrix.
	ErrNotHermitian = errors.New("linalg: matrix is not hermitian")

	// ErrBadTarget reports an embedding target outside the layout.
	ErrBadTarget = errors.New("linalg: target index outside layout")
)
