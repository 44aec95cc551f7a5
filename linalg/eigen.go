package linalg

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
)

// Eigen computes the eigendecomposition of a Hermitian matrix using the
// complex Jacobi rotation method. It returns the (real) eigenvalues in
// ascending order and the matrix whose columns are the matching
// eigenvectors. Non-Hermitian input is a structural error.
func (m Matrix) Eigen() ([]float64, Matrix, error) {
	herm, err := m.IsHermitian()
	if err != nil {
		return nil, nil, err
	}
	if !herm {
		return nil, nil, fmt.Errorf("%w: %dx%d", ErrNotHermitian, m.Rows(), m.Cols())
	}

	n := m.Rows()
	a := m.Clone()
	vecs := Identity(n)

	const maxSweeps = 64
	for sweep := 0; sweep < maxSweeps; sweep++ {
		off := offDiagNorm(a)
		if off < 1e-14 {
			break
		}
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				rotate(a, vecs, p, q)
			}
		}
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = real(a[i][i])
	}

	// Sort ascending, permuting the eigenvector columns alongside.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return values[order[i]] < values[order[j]] })

	sortedVals := make([]float64, n)
	sortedVecs := NewMatrix(n, n)
	for newCol, oldCol := range order {
		sortedVals[newCol] = values[oldCol]
		for row := 0; row < n; row++ {
			sortedVecs[row][newCol] = vecs[row][oldCol]
		}
	}
	return sortedVals, sortedVecs, nil
}

// offDiagNorm returns the Frobenius norm of the strictly off-diagonal part.
func offDiagNorm(a Matrix) float64 {
	var sum float64
	for i := range a {
		for j := range a[i] {
			if i != j {
				r := cmplx.Abs(a[i][j])
				sum += r * r
			}
		}
	}
	return math.Sqrt(sum)
}

// rotate zeroes a[p][q] (and a[q][p]) with a complex Jacobi rotation,
// updating both the working matrix and the accumulated eigenvectors.
//
// The pivot a[p][q] = r·e^{iφ} is first made real by a phase rotation,
// then a classical 2×2 Jacobi rotation removes it. The combined unitary
// touches only rows/columns p and q.
func rotate(a, vecs Matrix, p, q int) {
	r := cmplx.Abs(a[p][q])
	if r < 1e-15 {
		return
	}
	phi := cmplx.Phase(a[p][q])

	// Stable Jacobi angle for the de-phased real subproblem.
	tau := (real(a[q][q]) - real(a[p][p])) / (2 * r)
	var t float64
	if tau >= 0 {
		t = 1 / (tau + math.Sqrt(1+tau*tau))
	} else {
		t = -1 / (-tau + math.Sqrt(1+tau*tau))
	}
	c := 1 / math.Sqrt(1+t*t)
	s := t * c

	// U = diag(e^{iφ/2}, e^{-iφ/2}) · [[c, s], [-s, c]] on the (p,q) plane.
	ePlus := cmplx.Exp(complex(0, phi/2))
	eMinus := cmplx.Exp(complex(0, -phi/2))
	upp := complex(c, 0) * ePlus
	upq := complex(s, 0) * ePlus
	uqp := complex(-s, 0) * eMinus
	uqq := complex(c, 0) * eMinus

	n := len(a)

	// Column update: A ← A·U.
	for k := 0; k < n; k++ {
		akp, akq := a[k][p], a[k][q]
		a[k][p] = akp*upp + akq*uqp
		a[k][q] = akp*upq + akq*uqq
	}
	// Row update: A ← U†·A.
	for k := 0; k < n; k++ {
		apk, aqk := a[p][k], a[q][k]
		a[p][k] = cmplx.Conj(upp)*apk + cmplx.Conj(uqp)*aqk
		a[q][k] = cmplx.Conj(upq)*apk + cmplx.Conj(uqq)*aqk
	}
	// Accumulate eigenvectors: V ← V·U.
	for k := 0; k < n; k++ {
		vkp, vkq := vecs[k][p], vecs[k][q]
		vecs[k][p] = vkp*upp + vkq*uqp
		vecs[k][q] = vkp*upq + vkq*uqq
	}
}
