// Package linalg provides the complex linear algebra underneath the
// simulator: state vectors, their duals, and operator matrices.
//
// Nothing in this package normalizes state vectors on its own; callers
// keep unit norm themselves.
package linalg

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Tol is the default absolute tolerance for approximate comparisons.
const Tol = 1e-6

// Vector is a column vector of complex amplitudes indexed 0..dim-1.
type Vector []complex128

// Dual is the conjugate-transpose (row) view of a state vector.
// It is only producible from a Vector via Dual.
type Dual []complex128

// NewVector returns a zero vector of the given dimension.
func NewVector(dim int) Vector {
	return make(Vector, dim)
}

// Basis returns the computational basis vector |index⟩ of the given dimension.
func Basis(dim, index int) Vector {
	v := make(Vector, dim)
	v[index] = 1
	return v
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	w := make(Vector, len(v))
	copy(w, v)
	return w
}

// Add returns v + w.
func (v Vector) Add(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v), len(w))
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}
	return out, nil
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v), len(w))
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}
	return out, nil
}

// Scale returns c·v.
func (v Vector) Scale(c complex128) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = c * v[i]
	}
	return out
}

// Dual returns the conjugate-transpose of v.
func (v Vector) Dual() Dual {
	d := make(Dual, len(v))
	for i := range v {
		d[i] = cmplx.Conj(v[i])
	}
	return d
}

// Adjoint returns the dual back as a column vector, conjugating again.
func (d Dual) Adjoint() Vector {
	v := make(Vector, len(d))
	for i := range d {
		v[i] = cmplx.Conj(d[i])
	}
	return v
}

// Inner computes the inner product ⟨d|v⟩.
func (d Dual) Inner(v Vector) (complex128, error) {
	if len(d) != len(v) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(d), len(v))
	}
	var sum complex128
	for i := range d {
		sum += d[i] * v[i]
	}
	return sum, nil
}

// Outer computes the outer product |v⟩⟨d|, an operator matrix.
func (v Vector) Outer(d Dual) Matrix {
	m := NewMatrix(len(v), len(d))
	for i := range v {
		for j := range d {
			m[i][j] = v[i] * d[j]
		}
	}
	return m
}

// Norm returns the Euclidean norm of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, a := range v {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(sum)
}

// NumQubits derives the qubit count from the dimension, which must be
// an exact power of 2.
func (v Vector) NumQubits() (int, error) {
	return intLog(len(v), 2)
}

// ApproxEqual reports whether v and w agree element-wise within Tol.
func (v Vector) ApproxEqual(w Vector) bool {
	return v.ApproxEqualTol(w, Tol)
}

// ApproxEqualTol reports whether v and w agree element-wise within tol.
func (v Vector) ApproxEqualTol(w Vector, tol float64) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if cmplx.Abs(v[i]-w[i]) > tol {
			return false
		}
	}
	return true
}

// Kron returns the Kronecker product v ⊗ w of two independent subsystems.
func (v Vector) Kron(w Vector) Vector {
	out := make(Vector, len(v)*len(w))
	for i := range v {
		for j := range w {
			out[i*len(w)+j] = v[i] * w[j]
		}
	}
	return out
}

// intLog returns log_base(n) when it is an exact non-negative integer.
func intLog(n, base int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: dimension %d", ErrNotPowerOf2, n)
	}
	k := 0
	for m := n; m > 1; m /= base {
		if m%base != 0 {
			return 0, fmt.Errorf("%w: dimension %d, local dimension %d", ErrNotPowerOf2, n, base)
		}
		k++
	}
	return k, nil
}
