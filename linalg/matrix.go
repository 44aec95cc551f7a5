package linalg

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Matrix is a dense complex matrix stored row-major.
type Matrix [][]complex128

// NewMatrix returns a zero matrix with the given shape.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]complex128, cols)
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := range m {
		m[i][i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns (0 for an empty matrix).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// IsSquare reports whether m is square.
func (m Matrix) IsSquare() bool { return m.Rows() == m.Cols() }

// Clone returns an independent copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i := range m {
		out[i] = make([]complex128, len(m[i]))
		copy(out[i], m[i])
	}
	return out
}

// Add returns m + o.
func (m Matrix) Add(o Matrix) (Matrix, error) {
	if m.Rows() != o.Rows() || m.Cols() != o.Cols() {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, m.Rows(), m.Cols(), o.Rows(), o.Cols())
	}
	out := NewMatrix(m.Rows(), m.Cols())
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] + o[i][j]
		}
	}
	return out, nil
}

// Sub returns m - o.
func (m Matrix) Sub(o Matrix) (Matrix, error) {
	if m.Rows() != o.Rows() || m.Cols() != o.Cols() {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, m.Rows(), m.Cols(), o.Rows(), o.Cols())
	}
	out := NewMatrix(m.Rows(), m.Cols())
	for i := range m {
		for j := range m[i] {
			out[i][j] = m[i][j] - o[i][j]
		}
	}
	return out, nil
}

// Scale returns c·m.
func (m Matrix) Scale(c complex128) Matrix {
	out := NewMatrix(m.Rows(), m.Cols())
	for i := range m {
		for j := range m[i] {
			out[i][j] = c * m[i][j]
		}
	}
	return out
}

// Mul returns the matrix product m·o.
func (m Matrix) Mul(o Matrix) (Matrix, error) {
	if m.Cols() != o.Rows() {
		return nil, fmt.Errorf("%w: %dx%d times %dx%d", ErrDimensionMismatch, m.Rows(), m.Cols(), o.Rows(), o.Cols())
	}
	out := NewMatrix(m.Rows(), o.Cols())
	for i := range m {
		for k, a := range m[i] {
			if a == 0 {
				continue
			}
			row := o[k]
			for j := range row {
				out[i][j] += a * row[j]
			}
		}
	}
	return out, nil
}

// Apply returns the matrix-vector product m·v.
func (m Matrix) Apply(v Vector) (Vector, error) {
	if m.Cols() != len(v) {
		return nil, fmt.Errorf("%w: %dx%d times %d", ErrDimensionMismatch, m.Rows(), m.Cols(), len(v))
	}
	out := make(Vector, m.Rows())
	for i := range m {
		var sum complex128
		for j, a := range m[i] {
			sum += a * v[j]
		}
		out[i] = sum
	}
	return out, nil
}

// Adjoint returns the conjugate transpose of m.
func (m Matrix) Adjoint() Matrix {
	out := NewMatrix(m.Cols(), m.Rows())
	for i := range m {
		for j := range m[i] {
			out[j][i] = cmplx.Conj(m[i][j])
		}
	}
	return out
}

// Trace returns the sum of diagonal elements. The matrix must be square.
func (m Matrix) Trace() (complex128, error) {
	if !m.IsSquare() {
		return 0, fmt.Errorf("%w: %dx%d", ErrNotSquare, m.Rows(), m.Cols())
	}
	var sum complex128
	for i := range m {
		sum += m[i][i]
	}
	return sum, nil
}

// Kron returns the Kronecker product m ⊗ o.
func (m Matrix) Kron(o Matrix) Matrix {
	out := NewMatrix(m.Rows()*o.Rows(), m.Cols()*o.Cols())
	for i := range m {
		for j := range m[i] {
			a := m[i][j]
			if a == 0 {
				continue
			}
			for k := range o {
				for l := range o[k] {
					out[i*o.Rows()+k][j*o.Cols()+l] = a * o[k][l]
				}
			}
		}
	}
	return out
}

// IsHermitian reports whether m equals its own adjoint within Tol.
// The matrix must be square.
func (m Matrix) IsHermitian() (bool, error) {
	if !m.IsSquare() {
		return false, fmt.Errorf("%w: %dx%d", ErrNotSquare, m.Rows(), m.Cols())
	}
	for i := range m {
		for j := i; j < len(m); j++ {
			if cmplx.Abs(m[i][j]-cmplx.Conj(m[j][i])) > Tol {
				return false, nil
			}
		}
	}
	return true, nil
}

// IsUnitary reports whether m·m† equals the identity within Tol.
// The matrix must be square.
func (m Matrix) IsUnitary() (bool, error) {
	if !m.IsSquare() {
		return false, fmt.Errorf("%w: %dx%d", ErrNotSquare, m.Rows(), m.Cols())
	}
	prod, err := m.Mul(m.Adjoint())
	if err != nil {
		return false, err
	}
	return prod.ApproxEqual(Identity(m.Rows())), nil
}

// NumQubits derives the qubit count from the dimension. The matrix must
// be square with a power-of-2 dimension.
func (m Matrix) NumQubits() (int, error) {
	return m.NumBodies(2)
}

// NumBodies derives the subsystem count for the given local dimension.
// The matrix must be square and its dimension an exact power of localDim.
func (m Matrix) NumBodies(localDim int) (int, error) {
	if !m.IsSquare() {
		return 0, fmt.Errorf("%w: %dx%d", ErrNotSquare, m.Rows(), m.Cols())
	}
	return intLog(m.Rows(), localDim)
}

// ApproxEqual reports whether m and o agree element-wise within Tol.
func (m Matrix) ApproxEqual(o Matrix) bool {
	return m.ApproxEqualTol(o, Tol)
}

// ApproxEqualTol reports whether m and o agree element-wise within tol.
func (m Matrix) ApproxEqualTol(o Matrix, tol float64) bool {
	if m.Rows() != o.Rows() || m.Cols() != o.Cols() {
		return false
	}
	for i := range m {
		for j := range m[i] {
			if cmplx.Abs(m[i][j]-o[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// maxColSum returns the 1-norm of m (maximum absolute column sum).
func (m Matrix) maxColSum() float64 {
	sums := make([]float64, m.Cols())
	for i := range m {
		for j := range m[i] {
			sums[j] += cmplx.Abs(m[i][j])
		}
	}
	var best float64
	for _, s := range sums {
		if s > best {
			best = s
		}
	}
	return best
}

// Exp returns the matrix exponential e^m via scaling and squaring with
// a Taylor series. The matrix must be square.
func (m Matrix) Exp() (Matrix, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, m.Rows(), m.Cols())
	}
	n := m.Rows()

	// Scale down until the norm is comfortably below 1.
	squarings := 0
	if norm := m.maxColSum(); norm > 0.5 {
		squarings = int(math.Ceil(math.Log2(norm / 0.5)))
	}
	scaled := m.Scale(complex(1/math.Pow(2, float64(squarings)), 0))

	// Taylor series sum_k scaled^k / k!.
	sum := Identity(n)
	term := Identity(n)
	for k := 1; k <= 32; k++ {
		next, err := term.Mul(scaled)
		if err != nil {
			return nil, err
		}
		term = next.Scale(complex(1/float64(k), 0))
		sum, err = sum.Add(term)
		if err != nil {
			return nil, err
		}
		if term.maxColSum() < 1e-16 {
			break
		}
	}

	// Undo the scaling by repeated squaring.
	for range squarings {
		sq, err := sum.Mul(sum)
		if err != nil {
			return nil, err
		}
		sum = sq
	}
	return sum, nil
}
