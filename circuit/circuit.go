// Package circuit holds the ordered gate pipeline a simulation runs.
//
// A circuit owns an append-only sequence of steps, each step an ordered
// list of gates appended together. Qubit and classical-bit counts are
// fixed at construction; only the pipeline mutates.
package circuit

import (
	"errors"
	"fmt"
	"slices"

	"qvecsim/gate"
)

var (
	// ErrBadSize reports a non-positive qubit count or negative bit count.
	ErrBadSize = errors.New("circuit: invalid size")

	// ErrTargetRange reports a gate target outside the circuit's qubits.
	ErrTargetRange = errors.New("circuit: gate target out of range")

	// ErrDuplicateTarget reports a gate whose target tuple repeats a qubit.
	ErrDuplicateTarget = errors.New("circuit: duplicate target within gate")

	// ErrEmptyStep reports an append with no gates.
	ErrEmptyStep = errors.New("circuit: empty step")

	// ErrBadMapping reports a reorder mapping that is not injective, omits
	// a referenced qubit, or maps outside the circuit.
	ErrBadMapping = errors.New("circuit: invalid qubit mapping")
)

// Circuit is a pipeline of gate steps over a fixed number of qubits and
// classical bits.
type Circuit struct {
	numQubits int
	numBits   int
	steps     [][]gate.Gate
}

// New returns an empty circuit with the given qubit and classical-bit
// counts. The qubit count must be at least 1.
func New(numQubits, numBits int) (*Circuit, error) {
	if numQubits < 1 || numBits < 0 {
		return nil, fmt.Errorf("%w: %d qubits, %d bits", ErrBadSize, numQubits, numBits)
	}
	return &Circuit{numQubits: numQubits, numBits: numBits}, nil
}

// NumQubits returns the qubit count.
func (c *Circuit) NumQubits() int { return c.numQubits }

// NumBits returns the classical-bit count.
func (c *Circuit) NumBits() int { return c.numBits }

// validate checks one gate's target tuple against the circuit.
func (c *Circuit) validate(g gate.Gate) error {
	targets := g.Targets()
	for i, t := range targets {
		if t < 1 || t > c.numQubits {
			return fmt.Errorf("%w: %s target q%d, circuit has %d qubits", ErrTargetRange, g.Symbol(), t, c.numQubits)
		}
		if slices.Contains(targets[:i], t) {
			return fmt.Errorf("%w: %s targets %v", ErrDuplicateTarget, g.Symbol(), targets)
		}
	}
	return nil
}

// Append adds one step holding the given gates, in listed order. Every
// target of every gate is validated first; on any failure the pipeline
// is left unchanged.
//
// Gates in one step run sequentially in listed order during simulation.
// Two gates sharing a target within a step compose in that order; the
// circuit does not reject the overlap.
func (c *Circuit) Append(gates ...gate.Gate) error {
	if len(gates) == 0 {
		return ErrEmptyStep
	}
	for _, g := range gates {
		if err := c.validate(g); err != nil {
			return err
		}
	}
	c.steps = append(c.steps, slices.Clone(gates))
	return nil
}

// RemoveLast removes and returns the last step, or nil when the
// pipeline is empty.
func (c *Circuit) RemoveLast() []gate.Gate {
	if len(c.steps) == 0 {
		return nil
	}
	last := c.steps[len(c.steps)-1]
	c.steps = c.steps[:len(c.steps)-1]
	return last
}

// Depth returns the number of steps. This is the pipeline's step count,
// not a parallelism-optimal schedule depth.
func (c *Circuit) Depth() int { return len(c.steps) }

// NumGates returns the total gate count across all steps.
func (c *Circuit) NumGates() int {
	n := 0
	for _, step := range c.steps {
		n += len(step)
	}
	return n
}

// CountByKind tallies instruction symbols across all steps.
func (c *Circuit) CountByKind() map[string]int {
	counts := make(map[string]int)
	for _, step := range c.steps {
		for _, g := range step {
			counts[g.Symbol()]++
		}
	}
	return counts
}

// Step returns the gates at pipeline position i.
func (c *Circuit) Step(i int) []gate.Gate {
	return slices.Clone(c.steps[i])
}

// Steps returns a copy of the pipeline for read-only iteration, e.g. by
// renderers. Gates are immutable values, so sharing them is safe.
func (c *Circuit) Steps() [][]gate.Gate {
	out := make([][]gate.Gate, len(c.steps))
	for i, step := range c.steps {
		out[i] = slices.Clone(step)
	}
	return out
}

// Reorder returns a new circuit with every gate's targets remapped
// through mapping. The mapping must be injective and cover every qubit
// the circuit references, and must map into the circuit's qubit range.
// The receiver is never mutated.
func (c *Circuit) Reorder(mapping map[int]int) (*Circuit, error) {
	seen := make(map[int]int, len(mapping))
	for from, to := range mapping {
		if prev, dup := seen[to]; dup {
			return nil, fmt.Errorf("%w: q%d and q%d both map to q%d", ErrBadMapping, prev, from, to)
		}
		seen[to] = from
		if to < 1 || to > c.numQubits {
			return nil, fmt.Errorf("%w: q%d maps to q%d, circuit has %d qubits", ErrBadMapping, from, to, c.numQubits)
		}
	}

	out := &Circuit{numQubits: c.numQubits, numBits: c.numBits}
	for _, step := range c.steps {
		newStep := make([]gate.Gate, 0, len(step))
		for _, g := range step {
			targets := g.Targets()
			for i, t := range targets {
				to, ok := mapping[t]
				if !ok {
					return nil, fmt.Errorf("%w: q%d referenced by %s but not mapped", ErrBadMapping, t, g.Symbol())
				}
				targets[i] = to
			}
			remapped, err := g.WithTargets(targets...)
			if err != nil {
				return nil, err
			}
			newStep = append(newStep, remapped)
		}
		out.steps = append(out.steps, newStep)
	}
	return out, nil
}
