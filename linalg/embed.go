package linalg

import "fmt"

// Layout describes the tensor-factor structure of a multi-body space as
// the ordered list of per-subsystem local dimensions. The first entry is
// the most significant factor.
type Layout []int

// Qubits returns the layout of n two-level subsystems.
func Qubits(n int) Layout {
	l := make(Layout, n)
	for i := range l {
		l[i] = 2
	}
	return l
}

// Dim returns the dimension of the full tensor-product space.
func (l Layout) Dim() int {
	d := 1
	for _, k := range l {
		d *= k
	}
	return d
}

// Embed lifts a local operator acting on subsystem target (1-based) to
// the full space by Kronecker-multiplying identities of the surrounding
// subsystems around it.
//
// This is the O(4^n) reference construction. The simulation engine never
// uses it; it exists for small systems and for validating the
// bit-indexed path against first principles.
func Embed(local Matrix, target int, layout Layout) (Matrix, error) {
	if target < 1 || target > len(layout) {
		return nil, fmt.Errorf("%w: target %d, %d bodies", ErrBadTarget, target, len(layout))
	}
	if !local.IsSquare() {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, local.Rows(), local.Cols())
	}
	if local.Rows() != layout[target-1] {
		return nil, fmt.Errorf("%w: operator dim %d, local dim %d", ErrDimensionMismatch, local.Rows(), layout[target-1])
	}

	full := Matrix{{1}}
	for i, d := range layout {
		if i == target-1 {
			full = full.Kron(local)
		} else {
			full = full.Kron(Identity(d))
		}
	}
	return full, nil
}
