package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var invSqrt2 = complex(1/math.Sqrt2, 0)

func TestVectorArithmetic(t *testing.T) {
	v := Vector{1, 2i}
	w := Vector{3, -1}

	sum, err := v.Add(w)
	require.NoError(t, err)
	assert.Equal(t, Vector{4, -1 + 2i}, sum)

	diff, err := v.Sub(w)
	require.NoError(t, err)
	assert.Equal(t, Vector{-2, 1 + 2i}, diff)

	assert.Equal(t, Vector{2i, -4}, v.Scale(2i))

	_, err = v.Add(Vector{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestDualInnerOuter(t *testing.T) {
	v := Vector{invSqrt2, invSqrt2 * 1i}

	d := v.Dual()
	assert.Equal(t, Dual{invSqrt2, -invSqrt2 * 1i}, d)

	// ⟨v|v⟩ = 1 for a unit vector.
	ip, err := d.Inner(v)
	require.NoError(t, err)
	assert.InDelta(t, 1, real(ip), Tol)
	assert.InDelta(t, 0, imag(ip), Tol)

	// |0⟩⟨1| has a single nonzero entry.
	outer := Basis(2, 0).Outer(Basis(2, 1).Dual())
	assert.True(t, outer.ApproxEqual(Matrix{{0, 1}, {0, 0}}))

	// Double adjoint is the identity.
	assert.Equal(t, v, d.Adjoint())
}

func TestNumQubits(t *testing.T) {
	tests := []struct {
		dim     int
		want    int
		wantErr bool
	}{
		{1, 0, false},
		{2, 1, false},
		{8, 3, false},
		{1024, 10, false},
		{3, 0, true},
		{6, 0, true},
		{0, 0, true},
	}
	for _, tt := range tests {
		got, err := NewVector(tt.dim).NumQubits()
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrNotPowerOf2, "dim %d", tt.dim)
			continue
		}
		require.NoError(t, err, "dim %d", tt.dim)
		assert.Equal(t, tt.want, got, "dim %d", tt.dim)
	}
}

func TestNumBodies(t *testing.T) {
	n, err := Identity(27).NumBodies(3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = Identity(12).NumBodies(3)
	assert.ErrorIs(t, err, ErrNotPowerOf2)

	_, err = NewMatrix(2, 3).NumQubits()
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestMatrixMulTrace(t *testing.T) {
	x := Matrix{{0, 1}, {1, 0}}
	z := Matrix{{1, 0}, {0, -1}}

	// XZ = -iY
	xz, err := x.Mul(z)
	require.NoError(t, err)
	assert.True(t, xz.ApproxEqual(Matrix{{0, -1}, {1, 0}}))

	tr, err := xz.Trace()
	require.NoError(t, err)
	assert.Equal(t, complex128(0), tr)

	_, err = NewMatrix(2, 3).Trace()
	assert.ErrorIs(t, err, ErrNotSquare)

	_, err = x.Mul(NewMatrix(3, 3))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestAdjointHermitianUnitary(t *testing.T) {
	y := Matrix{{0, -1i}, {1i, 0}}
	assert.True(t, y.Adjoint().ApproxEqual(y))

	herm, err := y.IsHermitian()
	require.NoError(t, err)
	assert.True(t, herm)

	unit, err := y.IsUnitary()
	require.NoError(t, err)
	assert.True(t, unit)

	skew := Matrix{{0, 1}, {-1, 0}}
	herm, err = skew.IsHermitian()
	require.NoError(t, err)
	assert.False(t, herm)
}

func TestKron(t *testing.T) {
	x := Matrix{{0, 1}, {1, 0}}
	i2 := Identity(2)

	// X ⊗ I acting on |00⟩ flips the first (most significant) qubit.
	full := x.Kron(i2)
	out, err := full.Apply(Basis(4, 0))
	require.NoError(t, err)
	assert.True(t, out.ApproxEqual(Basis(4, 2)))

	// Vector Kronecker product: |1⟩ ⊗ |0⟩ = |10⟩.
	assert.True(t, Basis(2, 1).Kron(Basis(2, 0)).ApproxEqual(Basis(4, 2)))
}

func TestExp(t *testing.T) {
	// exp(iθX) = cos(θ)I + i·sin(θ)X
	theta := 0.7
	x := Matrix{{0, 1}, {1, 0}}
	got, err := x.Scale(complex(0, theta)).Exp()
	require.NoError(t, err)

	c := complex(math.Cos(theta), 0)
	s := complex(0, math.Sin(theta))
	want := Matrix{{c, s}, {s, c}}
	assert.True(t, got.ApproxEqual(want))

	// exp(0) = I
	zero := NewMatrix(3, 3)
	got, err = zero.Exp()
	require.NoError(t, err)
	assert.True(t, got.ApproxEqual(Identity(3)))

	_, err = NewMatrix(2, 3).Exp()
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestEigenPauli(t *testing.T) {
	for name, m := range map[string]Matrix{
		"X": {{0, 1}, {1, 0}},
		"Y": {{0, -1i}, {1i, 0}},
		"Z": {{1, 0}, {0, -1}},
	} {
		vals, vecs, err := m.Eigen()
		require.NoError(t, err, name)
		assert.InDelta(t, -1, vals[0], Tol, name)
		assert.InDelta(t, 1, vals[1], Tol, name)

		// Each column satisfies M·v = λ·v.
		for col := range vals {
			v := Vector{vecs[0][col], vecs[1][col]}
			mv, err := m.Apply(v)
			require.NoError(t, err)
			assert.True(t, mv.ApproxEqual(v.Scale(complex(vals[col], 0))), "%s column %d", name, col)
		}
	}
}

func TestEigenLarger(t *testing.T) {
	// Hermitian 3x3 with complex off-diagonals.
	m := Matrix{
		{2, 1i, 0},
		{-1i, 3, 1},
		{0, 1, 1},
	}
	vals, vecs, err := m.Eigen()
	require.NoError(t, err)

	// Eigenvalue sum equals the trace.
	tr, err := m.Trace()
	require.NoError(t, err)
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	assert.InDelta(t, real(tr), sum, Tol)

	for col := range vals {
		v := Vector{vecs[0][col], vecs[1][col], vecs[2][col]}
		mv, err := m.Apply(v)
		require.NoError(t, err)
		assert.True(t, mv.ApproxEqual(v.Scale(complex(vals[col], 0))), "column %d", col)
	}
}

func TestEigenRejectsNonHermitian(t *testing.T) {
	_, _, err := Matrix{{0, 1}, {0, 0}}.Eigen()
	assert.ErrorIs(t, err, ErrNotHermitian)

	_, _, err = NewMatrix(2, 3).Eigen()
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestEmbed(t *testing.T) {
	x := Matrix{{0, 1}, {1, 0}}

	// X on body 1 of 2 qubits: X ⊗ I.
	full, err := Embed(x, 1, Qubits(2))
	require.NoError(t, err)
	assert.True(t, full.ApproxEqual(x.Kron(Identity(2))))

	// X on body 2 of 2 qubits: I ⊗ X.
	full, err = Embed(x, 2, Qubits(2))
	require.NoError(t, err)
	assert.True(t, full.ApproxEqual(Identity(2).Kron(x)))

	// Mixed local dimensions.
	layout := Layout{2, 3, 2}
	assert.Equal(t, 12, layout.Dim())
	full, err = Embed(x, 3, layout)
	require.NoError(t, err)
	assert.Equal(t, 12, full.Rows())

	_, err = Embed(x, 0, Qubits(2))
	assert.ErrorIs(t, err, ErrBadTarget)
	_, err = Embed(x, 3, Qubits(2))
	assert.ErrorIs(t, err, ErrBadTarget)
	_, err = Embed(x, 2, layout)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestApproxEqualTolerance(t *testing.T) {
	v := Vector{1, 0}
	w := Vector{complex(1+5e-7, 0), complex(0, -5e-7)}
	assert.True(t, v.ApproxEqual(w))
	assert.False(t, v.ApproxEqualTol(w, 1e-9))
	assert.False(t, v.ApproxEqual(Vector{1, 0, 0}))
}

func TestNorm(t *testing.T) {
	v := Vector{complex(3, 0), complex(0, 4)}
	assert.InDelta(t, 5, v.Norm(), 1e-12)
	assert.InDelta(t, 1, Vector{invSqrt2, invSqrt2 * 1i}.Norm(), 1e-12)
}
