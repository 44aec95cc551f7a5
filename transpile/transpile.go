// Package transpile rewrites circuits to fit a device's qubit
// connectivity. Two-qubit gates on non-adjacent qubits are conjugated
// by SWAP chains along a shortest coupling path; each SWAP is spelled
// as three CX gates, so routed circuits stay inside the closed gate
// family and are exactly equivalent to their originals.
package transpile

import (
	"errors"
	"fmt"

	"qvecsim/circuit"
	"qvecsim/gate"
)

var (
	// ErrBadCoupling reports a malformed coupling map.
	ErrBadCoupling = errors.New("transpile: bad coupling map")

	// ErrUnroutable reports a gate no SWAP chain can make local.
	ErrUnroutable = errors.New("transpile: unroutable gate")
)

// CouplingMap is an undirected adjacency over 1-based qubits.
type CouplingMap struct {
	numQubits int
	adj       map[int]map[int]bool
}

// NewCouplingMap builds a map over numQubits qubits with the given
// undirected edges.
func NewCouplingMap(numQubits int, edges [][2]int) (*CouplingMap, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("%w: %d qubits", ErrBadCoupling, numQubits)
	}
	cm := &CouplingMap{numQubits: numQubits, adj: make(map[int]map[int]bool)}
	for _, e := range edges {
		a, b := e[0], e[1]
		if a < 1 || a > numQubits || b < 1 || b > numQubits || a == b {
			return nil, fmt.Errorf("%w: edge (%d, %d)", ErrBadCoupling, a, b)
		}
		cm.link(a, b)
	}
	return cm, nil
}

// Linear returns the nearest-neighbour chain 1-2-...-n.
func Linear(numQubits int) (*CouplingMap, error) {
	edges := make([][2]int, 0, numQubits-1)
	for q := 1; q < numQubits; q++ {
		edges = append(edges, [2]int{q, q + 1})
	}
	return NewCouplingMap(numQubits, edges)
}

func (cm *CouplingMap) link(a, b int) {
	if cm.adj[a] == nil {
		cm.adj[a] = make(map[int]bool)
	}
	if cm.adj[b] == nil {
		cm.adj[b] = make(map[int]bool)
	}
	cm.adj[a][b] = true
	cm.adj[b][a] = true
}

// NumQubits returns the device size.
func (cm *CouplingMap) NumQubits() int { return cm.numQubits }

// Adjacent reports whether two qubits share an edge.
func (cm *CouplingMap) Adjacent(a, b int) bool { return cm.adj[a][b] }

// Path returns a shortest chain of qubits from a to b, inclusive, or
// nil when the map does not connect them.
func (cm *CouplingMap) Path(a, b int) []int {
	if a == b {
		return []int{a}
	}
	prev := map[int]int{a: 0}
	queue := []int{a}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		for next := range cm.adj[q] {
			if _, seen := prev[next]; seen {
				continue
			}
			prev[next] = q
			if next == b {
				path := []int{b}
				for at := q; at != 0; at = prev[at] {
					path = append([]int{at}, path...)
				}
				return path
			}
			queue = append(queue, next)
		}
	}
	return nil
}

// Fits reports whether every multi-qubit gate in the circuit already
// acts on pairwise-adjacent qubits of this map.
func (cm *CouplingMap) Fits(c *circuit.Circuit) bool {
	if c.NumQubits() > cm.numQubits {
		return false
	}
	for _, step := range c.Steps() {
		for _, g := range step {
			targets := g.Targets()
			for i := 0; i < len(targets); i++ {
				for j := i + 1; j < len(targets); j++ {
					if !cm.Adjacent(targets[i], targets[j]) {
						return false
					}
				}
			}
		}
	}
	return true
}

// swapGates spells SWAP(x, y) as three CX gates.
func swapGates(x, y int) []gate.Gate {
	return []gate.Gate{gate.CX(x, y), gate.CX(y, x), gate.CX(x, y)}
}

// Route rewrites the circuit so every multi-qubit gate acts on adjacent
// qubits, one gate per output step. Two-qubit gates on distant qubits
// get their first operand swapped along a shortest path, applied, then
// swapped back. Three-qubit gates must already be local.
func Route(c *circuit.Circuit, cm *CouplingMap) (*circuit.Circuit, error) {
	if c.NumQubits() > cm.numQubits {
		return nil, fmt.Errorf("%w: circuit has %d qubits, device %d", ErrUnroutable, c.NumQubits(), cm.numQubits)
	}

	out, err := circuit.New(c.NumQubits(), c.NumBits())
	if err != nil {
		return nil, err
	}
	emit := func(gates ...gate.Gate) error {
		for _, g := range gates {
			if err := out.Append(g); err != nil {
				return err
			}
		}
		return nil
	}

	for _, step := range c.Steps() {
		for _, g := range step {
			targets := g.Targets()
			switch len(targets) {
			case 1:
				if err := emit(g); err != nil {
					return nil, err
				}

			case 2:
				a, b := targets[0], targets[1]
				if cm.Adjacent(a, b) {
					if err := emit(g); err != nil {
						return nil, err
					}
					continue
				}
				path := cm.Path(a, b)
				if path == nil {
					return nil, fmt.Errorf("%w: %s on disconnected qubits %d and %d", ErrUnroutable, g.Symbol(), a, b)
				}

				// Walk a's state down the path until it neighbours b.
				var chain []gate.Gate
				for i := 0; i+2 < len(path); i++ {
					chain = append(chain, swapGates(path[i], path[i+1])...)
				}
				moved, err := g.WithTargets(path[len(path)-2], b)
				if err != nil {
					return nil, err
				}
				if err := emit(chain...); err != nil {
					return nil, err
				}
				if err := emit(moved); err != nil {
					return nil, err
				}
				for i := len(chain) - 1; i >= 0; i-- {
					if err := emit(chain[i]); err != nil {
						return nil, err
					}
				}

			default:
				for i := 0; i < len(targets); i++ {
					for j := i + 1; j < len(targets); j++ {
						if !cm.Adjacent(targets[i], targets[j]) {
							return nil, fmt.Errorf("%w: %s needs qubits %v mutually adjacent", ErrUnroutable, g.Symbol(), targets)
						}
					}
				}
				if err := emit(g); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}
