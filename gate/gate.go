// Package gate defines the closed family of quantum gates the simulator
// understands, together with their operator matrices and closed-form
// inverses.
package gate

import (
	"errors"
	"math"
	"slices"

	"qvecsim/linalg"
)

// Kind tags a gate family. The set is closed; every Kind has a
// closed-form operator and inversion rule, with KindCustom as the one
// escape hatch for caller-supplied unitaries.
type Kind string

const (
	KindX       Kind = "x"
	KindY       Kind = "y"
	KindZ       Kind = "z"
	KindH       Kind = "h"
	KindS       Kind = "s"
	KindSDg     Kind = "sdg"
	KindT       Kind = "t"
	KindTDg     Kind = "tdg"
	KindRX      Kind = "rx"
	KindRY      Kind = "ry"
	KindRZ      Kind = "rz"
	KindR       Kind = "r"
	KindP       Kind = "p"
	KindU       Kind = "u"
	KindCX      Kind = "cx"
	KindCZ      Kind = "cz"
	KindCCX     Kind = "ccx"
	KindISwap   Kind = "iswap"
	KindISwapDg Kind = "iswapdg"
	KindCustom  Kind = "custom"
)

// InversePolicy declares how a custom gate inverts.
type InversePolicy int

const (
	// InverseUnsupported makes Inverse a structural error.
	InverseUnsupported InversePolicy = iota
	// InverseHermitian declares the matrix Hermitian, hence self-inverse.
	InverseHermitian
	// InverseExplicit means the custom gate carries its own inverse matrix.
	InverseExplicit
)

var (
	// ErrNoInverse reports a gate whose inverse is not derivable within
	// the closed representation.
	ErrNoInverse = errors.New("gate: no derivable inverse")

	// ErrBadCustom reports an invalid custom gate construction.
	ErrBadCustom = errors.New("gate: invalid custom gate")

	// ErrArity reports a target tuple whose length does not match the
	// gate family's fixed arity.
	ErrArity = errors.New("gate: wrong number of targets")
)

// Gate is an immutable gate instance: a family tag, an ordered tuple of
// 1-based target qubits, real parameters in radians, and one display
// label per target. Target indices are validated against a circuit only
// when the gate is appended, not here.
type Gate struct {
	kind    Kind
	targets []int
	params  []float64
	labels  []string

	// Custom gates only.
	symbol    string
	matrix    linalg.Matrix
	inverse   linalg.Matrix
	invPolicy InversePolicy
}

// Kind returns the family tag.
func (g Gate) Kind() Kind { return g.kind }

// Symbol returns the instruction symbol: the family tag for closed
// kinds, the caller-supplied symbol for custom gates.
func (g Gate) Symbol() string {
	if g.kind == KindCustom {
		return g.symbol
	}
	return string(g.kind)
}

// Targets returns a copy of the ordered 1-based target tuple. The first
// target is the most significant bit of the gate's local basis.
func (g Gate) Targets() []int { return slices.Clone(g.targets) }

// Arity returns the number of qubits the gate acts on.
func (g Gate) Arity() int { return len(g.targets) }

// Params returns a copy of the gate's real parameters.
func (g Gate) Params() []float64 { return slices.Clone(g.params) }

// Labels returns one display label per target, in target order.
func (g Gate) Labels() []string { return slices.Clone(g.labels) }

// Equal reports structural equality: same family tag, same ordered
// targets, and parameters equal within the default tolerance.
func (g Gate) Equal(o Gate) bool {
	if g.kind != o.kind || g.symbol != o.symbol {
		return false
	}
	if !slices.Equal(g.targets, o.targets) {
		return false
	}
	if len(g.params) != len(o.params) {
		return false
	}
	for i := range g.params {
		if math.Abs(g.params[i]-o.params[i]) > linalg.Tol {
			return false
		}
	}
	if g.kind == KindCustom && !g.matrix.ApproxEqual(o.matrix) {
		return false
	}
	return true
}

// WithTargets returns a copy of g acting on a substituted target tuple.
// The tuple length must match the gate's arity.
func (g Gate) WithTargets(targets ...int) (Gate, error) {
	if len(targets) != len(g.targets) {
		return Gate{}, errArity(g, len(targets))
	}
	out := g
	out.targets = slices.Clone(targets)
	out.labels = slices.Clone(g.labels)
	return out, nil
}
