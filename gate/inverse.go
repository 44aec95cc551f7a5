package gate

import "fmt"

// Inverse returns the gate whose operator undoes g, using the family's
// closed-form rule. Self-inverse kinds return themselves; the dagger
// pairs swap; rotations negate angles. Custom gates follow their
// declared inverse policy, and an unsupported policy is a structural
// error: no general adjoint is derivable within the closed
// representation.
func (g Gate) Inverse() (Gate, error) {
	switch g.kind {
	case KindX, KindY, KindZ, KindH, KindCX, KindCZ, KindCCX:
		return g, nil
	case KindS:
		return SDg(g.targets[0]), nil
	case KindSDg:
		return S(g.targets[0]), nil
	case KindT:
		return TDg(g.targets[0]), nil
	case KindTDg:
		return T(g.targets[0]), nil
	case KindISwap:
		return ISwapDg(g.targets[0], g.targets[1]), nil
	case KindISwapDg:
		return ISwap(g.targets[0], g.targets[1]), nil
	case KindRX:
		return RX(-g.params[0], g.targets[0]), nil
	case KindRY:
		return RY(-g.params[0], g.targets[0]), nil
	case KindRZ:
		return RZ(-g.params[0], g.targets[0]), nil
	case KindP:
		return P(-g.params[0], g.targets[0]), nil
	case KindR:
		// Negate θ, keep the axis angle φ.
		return R(-g.params[0], g.params[1], g.targets[0]), nil
	case KindU:
		// U(θ,φ,λ)† = U(-θ,-λ,-φ).
		return U(-g.params[0], -g.params[2], -g.params[1], g.targets[0]), nil
	case KindCustom:
		switch g.invPolicy {
		case InverseHermitian:
			// Hermiticity was checked at construction.
			return g, nil
		case InverseExplicit:
			inv := g
			inv.matrix, inv.inverse = g.inverse, g.matrix
			return inv, nil
		}
		return Gate{}, fmt.Errorf("%w: custom gate %q", ErrNoInverse, g.symbol)
	}
	return Gate{}, fmt.Errorf("%w: kind %q", ErrNoInverse, g.kind)
}
