package gate

import (
	"fmt"
	"slices"

	"qvecsim/linalg"
)

func errArity(g Gate, got int) error {
	return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, g.Symbol(), len(g.targets), got)
}

func single(kind Kind, label string, target int, params ...float64) Gate {
	return Gate{kind: kind, targets: []int{target}, params: params, labels: []string{label}}
}

// X returns a Pauli-X (NOT) gate on the given qubit.
func X(target int) Gate { return single(KindX, "X", target) }

// Y returns a Pauli-Y gate on the given qubit.
func Y(target int) Gate { return single(KindY, "Y", target) }

// Z returns a Pauli-Z gate on the given qubit.
func Z(target int) Gate { return single(KindZ, "Z", target) }

// H returns a Hadamard gate on the given qubit.
func H(target int) Gate { return single(KindH, "H", target) }

// S returns the phase gate diag(1, i) on the given qubit.
func S(target int) Gate { return single(KindS, "S", target) }

// SDg returns the adjoint of the phase gate.
func SDg(target int) Gate { return single(KindSDg, "S†", target) }

// T returns the π/8 gate diag(1, e^{iπ/4}) on the given qubit.
func T(target int) Gate { return single(KindT, "T", target) }

// TDg returns the adjoint of the π/8 gate.
func TDg(target int) Gate { return single(KindTDg, "T†", target) }

// RX returns a rotation of theta radians about the X axis.
func RX(theta float64, target int) Gate { return single(KindRX, "RX", target, theta) }

// RY returns a rotation of theta radians about the Y axis.
func RY(theta float64, target int) Gate { return single(KindRY, "RY", target, theta) }

// RZ returns a rotation of theta radians about the Z axis.
func RZ(theta float64, target int) Gate { return single(KindRZ, "RZ", target, theta) }

// R returns a rotation of theta radians about the axis at angle phi in
// the XY plane.
func R(theta, phi float64, target int) Gate { return single(KindR, "R", target, theta, phi) }

// P returns a phase shift diag(1, e^{iλ}) on the given qubit.
func P(lambda float64, target int) Gate { return single(KindP, "P", target, lambda) }

// U returns the three-parameter universal single-qubit gate U(θ, φ, λ).
func U(theta, phi, lambda float64, target int) Gate {
	return single(KindU, "U", target, theta, phi, lambda)
}

// CX returns a controlled-X with the given control and target qubits.
func CX(control, target int) Gate {
	return Gate{kind: KindCX, targets: []int{control, target}, labels: []string{"●", "⊕"}}
}

// CZ returns a controlled-Z on the given pair of qubits.
func CZ(control, target int) Gate {
	return Gate{kind: KindCZ, targets: []int{control, target}, labels: []string{"●", "●"}}
}

// CCX returns a Toffoli gate with two controls and one target.
func CCX(control1, control2, target int) Gate {
	return Gate{kind: KindCCX, targets: []int{control1, control2, target}, labels: []string{"●", "●", "⊕"}}
}

// ISwap returns the iswap gate on the given pair of qubits.
func ISwap(a, b int) Gate {
	return Gate{kind: KindISwap, targets: []int{a, b}, labels: []string{"iSW", "iSW"}}
}

// ISwapDg returns the adjoint of the iswap gate.
func ISwapDg(a, b int) Gate {
	return Gate{kind: KindISwapDg, targets: []int{a, b}, labels: []string{"iS†", "iS†"}}
}

// NewCustom builds a gate from a caller-supplied unitary and an explicit
// inverse policy. The matrix dimension must be 2^len(targets). A gate
// with InverseHermitian must actually be Hermitian; with
// InverseUnsupported, Inverse is an error.
func NewCustom(symbol string, m linalg.Matrix, policy InversePolicy, targets ...int) (Gate, error) {
	if len(targets) == 0 {
		return Gate{}, fmt.Errorf("%w: %s has no targets", ErrBadCustom, symbol)
	}
	n, err := m.NumQubits()
	if err != nil {
		return Gate{}, fmt.Errorf("%w: %s: %v", ErrBadCustom, symbol, err)
	}
	if n != len(targets) {
		return Gate{}, fmt.Errorf("%w: %s is %d-qubit but has %d targets", ErrBadCustom, symbol, n, len(targets))
	}
	if policy == InverseHermitian {
		herm, err := m.IsHermitian()
		if err != nil {
			return Gate{}, fmt.Errorf("%w: %s: %v", ErrBadCustom, symbol, err)
		}
		if !herm {
			return Gate{}, fmt.Errorf("%w: %s declared hermitian but is not", ErrBadCustom, symbol)
		}
	}
	labels := make([]string, len(targets))
	for i := range labels {
		labels[i] = symbol
	}
	return Gate{
		kind:      KindCustom,
		targets:   slices.Clone(targets),
		labels:    labels,
		symbol:    symbol,
		matrix:    m.Clone(),
		invPolicy: policy,
	}, nil
}

// NewCustomWithInverse builds a custom gate carrying its own closed-form
// inverse matrix.
func NewCustomWithInverse(symbol string, m, inv linalg.Matrix, targets ...int) (Gate, error) {
	g, err := NewCustom(symbol, m, InverseExplicit, targets...)
	if err != nil {
		return Gate{}, err
	}
	if inv.Rows() != m.Rows() || inv.Cols() != m.Cols() {
		return Gate{}, fmt.Errorf("%w: %s inverse shape %dx%d", ErrBadCustom, symbol, inv.Rows(), inv.Cols())
	}
	g.inverse = inv.Clone()
	return g, nil
}
