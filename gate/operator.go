package gate

import (
	"math"
	"math/cmplx"

	"qvecsim/linalg"
)

// Operator returns the gate's unitary matrix in its own target-ordered
// basis: the first listed target is the most significant bit of the
// local bit pattern. The simulation engine relies on exactly this
// convention when gathering amplitudes.
func (g Gate) Operator() linalg.Matrix {
	switch g.kind {
	case KindX:
		return linalg.Matrix{{0, 1}, {1, 0}}
	case KindY:
		return linalg.Matrix{{0, -1i}, {1i, 0}}
	case KindZ:
		return linalg.Matrix{{1, 0}, {0, -1}}
	case KindH:
		h := complex(1/math.Sqrt2, 0)
		return linalg.Matrix{{h, h}, {h, -h}}
	case KindS:
		return linalg.Matrix{{1, 0}, {0, 1i}}
	case KindSDg:
		return linalg.Matrix{{1, 0}, {0, -1i}}
	case KindT:
		return linalg.Matrix{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}
	case KindTDg:
		return linalg.Matrix{{1, 0}, {0, cmplx.Exp(complex(0, -math.Pi/4))}}
	case KindRX:
		c := complex(math.Cos(g.params[0]/2), 0)
		s := complex(0, -math.Sin(g.params[0]/2))
		return linalg.Matrix{{c, s}, {s, c}}
	case KindRY:
		c := complex(math.Cos(g.params[0]/2), 0)
		s := complex(math.Sin(g.params[0]/2), 0)
		return linalg.Matrix{{c, -s}, {s, c}}
	case KindRZ:
		e := cmplx.Exp(complex(0, g.params[0]/2))
		return linalg.Matrix{{cmplx.Conj(e), 0}, {0, e}}
	case KindR:
		theta, phi := g.params[0], g.params[1]
		c := complex(math.Cos(theta/2), 0)
		s := math.Sin(theta / 2)
		off := complex(0, -s)
		return linalg.Matrix{
			{c, off * cmplx.Exp(complex(0, -phi))},
			{off * cmplx.Exp(complex(0, phi)), c},
		}
	case KindP:
		return linalg.Matrix{{1, 0}, {0, cmplx.Exp(complex(0, g.params[0]))}}
	case KindU:
		theta, phi, lambda := g.params[0], g.params[1], g.params[2]
		c := complex(math.Cos(theta/2), 0)
		s := complex(math.Sin(theta/2), 0)
		return linalg.Matrix{
			{c, -s * cmplx.Exp(complex(0, lambda))},
			{s * cmplx.Exp(complex(0, phi)), c * cmplx.Exp(complex(0, phi+lambda))},
		}
	case KindCX:
		// Control is the first target, hence the MSB.
		return linalg.Matrix{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
			{0, 0, 1, 0},
		}
	case KindCZ:
		return linalg.Matrix{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, -1},
		}
	case KindCCX:
		m := linalg.Identity(8)
		m[6][6], m[6][7] = 0, 1
		m[7][6], m[7][7] = 1, 0
		return m
	case KindISwap:
		return linalg.Matrix{
			{1, 0, 0, 0},
			{0, 0, 1i, 0},
			{0, 1i, 0, 0},
			{0, 0, 0, 1},
		}
	case KindISwapDg:
		return linalg.Matrix{
			{1, 0, 0, 0},
			{0, 0, -1i, 0},
			{0, -1i, 0, 0},
			{0, 0, 0, 1},
		}
	case KindCustom:
		return g.matrix.Clone()
	}
	panic("gate: unknown kind " + string(g.kind))
}
