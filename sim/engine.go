// Package sim evaluates circuits against a state vector.
//
// The engine applies each gate's small 2^k×2^k matrix directly to the
// 2^n-amplitude state with bit-indexed gather/scatter, touching O(2^n)
// amplitudes per gate and never materializing a full-space operator.
package sim

import (
	"qvecsim/circuit"
	"qvecsim/gate"
	"qvecsim/linalg"
)

// Run simulates the circuit from the all-zero computational basis state
// and returns the final state vector. Steps execute strictly in pipeline
// order; within one step, gates execute in listed order, mutating a
// working buffer owned by this call. Two gates sharing a target within a
// step therefore compose sequentially in listed order.
func Run(c *circuit.Circuit) linalg.Vector {
	n := c.NumQubits()
	state := linalg.Basis(1<<n, 0)
	for _, step := range c.Steps() {
		for _, g := range step {
			apply(state, g, n)
		}
	}
	return state
}

// apply updates state in place with the gate's unitary.
//
// An amplitude's index is read as an n-bit pattern with qubit 1 as the
// most significant bit. The gate's targets pick out k bit positions; the
// remaining n-k are spectators. Because the two position sets are
// disjoint, every index splits uniquely into a spectator pattern b0 and
// a target pattern b1 with index = b0|b1. For each b0 the 2^k amplitudes
// addressed by the b1 values are gathered into a sub-vector, multiplied
// by the gate matrix, and scattered back.
//
// The b1 ordering matches Operator()'s basis: the first listed target is
// the most significant bit of the local pattern.
func apply(state linalg.Vector, g gate.Gate, n int) {
	targets := g.Targets()
	k := len(targets)
	op := g.Operator()

	// One bit mask per target, first target highest.
	masks := make([]int, k)
	targetMask := 0
	for j, t := range targets {
		masks[j] = 1 << (n - t)
		targetMask |= masks[j]
	}

	// offsets[l] is the index contribution of local target pattern l.
	dim := 1 << k
	offsets := make([]int, dim)
	for l := range dim {
		off := 0
		for j := range k {
			if l&(1<<(k-1-j)) != 0 {
				off |= masks[j]
			}
		}
		offsets[l] = off
	}

	sub := make(linalg.Vector, dim)
	for b0 := range len(state) {
		if b0&targetMask != 0 {
			continue // not a spectator-only pattern
		}
		for l, off := range offsets {
			sub[l] = state[b0|off]
		}
		for l := range dim {
			var sum complex128
			for m, a := range op[l] {
				sum += a * sub[m]
			}
			state[b0|offsets[l]] = sum
		}
	}
}

// Probabilities returns the squared magnitude of each amplitude.
func Probabilities(state linalg.Vector) []float64 {
	probs := make([]float64, len(state))
	for i, a := range state {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return probs
}
