// Package remote submits circuits to an execution backend and polls
// for their shot counts. Circuits travel as a flat instruction program,
// one instruction per gate, so any backend speaking the same JSON shape
// can run them.
package remote

import (
	"errors"
	"fmt"

	"qvecsim/circuit"
	"qvecsim/gate"
)

var (
	// ErrUnsupported reports a gate with no wire form (custom gates).
	ErrUnsupported = errors.New("remote: gate has no wire form")

	// ErrBadProgram reports a program that does not decode to a circuit.
	ErrBadProgram = errors.New("remote: bad program")
)

// Instruction is one gate on the wire. Params are named angles in
// radians; Qubits are 1-based targets in gate order. Bits carries
// classical-bit indices for backends whose instruction sets record
// measurements; the closed gate family never sets it.
type Instruction struct {
	Symbol string             `json:"symbol"`
	Params map[string]float64 `json:"params,omitempty"`
	Qubits []int              `json:"qubits"`
	Bits   []int              `json:"bits,omitempty"`
}

// Program is a circuit on the wire. Each step holds the instructions
// applied together at that pipeline position.
type Program struct {
	NumQubits int             `json:"num_qubits"`
	NumBits   int             `json:"num_bits,omitempty"`
	Steps     [][]Instruction `json:"steps"`
}

// paramNames gives the wire names of each kind's angles, in the order
// the gate constructors take them.
func paramNames(k gate.Kind) []string {
	switch k {
	case gate.KindRX, gate.KindRY, gate.KindRZ:
		return []string{"theta"}
	case gate.KindP:
		return []string{"lambda"}
	case gate.KindR:
		return []string{"theta", "phi"}
	case gate.KindU:
		return []string{"theta", "phi", "lambda"}
	}
	return nil
}

// EncodeInstruction flattens one gate. Custom gates have no wire form.
func EncodeInstruction(g gate.Gate) (Instruction, error) {
	if g.Kind() == gate.KindCustom {
		return Instruction{}, fmt.Errorf("%w: %q", ErrUnsupported, g.Symbol())
	}
	in := Instruction{Symbol: g.Symbol(), Qubits: g.Targets()}
	if params := g.Params(); len(params) > 0 {
		names := paramNames(g.Kind())
		in.Params = make(map[string]float64, len(params))
		for i, v := range params {
			in.Params[names[i]] = v
		}
	}
	return in, nil
}

// DecodeInstruction rebuilds the gate an instruction names.
func DecodeInstruction(in Instruction) (gate.Gate, error) {
	q := in.Qubits
	arity := map[string]int{
		"x": 1, "y": 1, "z": 1, "h": 1, "s": 1, "sdg": 1, "t": 1, "tdg": 1,
		"rx": 1, "ry": 1, "rz": 1, "p": 1, "r": 1, "u": 1,
		"cx": 2, "cz": 2, "iswap": 2, "iswapdg": 2, "ccx": 3,
	}
	want, ok := arity[in.Symbol]
	if !ok {
		return gate.Gate{}, fmt.Errorf("%w: unknown symbol %q", ErrBadProgram, in.Symbol)
	}
	if len(q) != want {
		return gate.Gate{}, fmt.Errorf("%w: %s takes %d qubits, got %d", ErrBadProgram, in.Symbol, want, len(q))
	}

	angle := func(name string) (float64, error) {
		v, ok := in.Params[name]
		if !ok {
			return 0, fmt.Errorf("%w: %s missing angle %q", ErrBadProgram, in.Symbol, name)
		}
		return v, nil
	}

	switch in.Symbol {
	case "x":
		return gate.X(q[0]), nil
	case "y":
		return gate.Y(q[0]), nil
	case "z":
		return gate.Z(q[0]), nil
	case "h":
		return gate.H(q[0]), nil
	case "s":
		return gate.S(q[0]), nil
	case "sdg":
		return gate.SDg(q[0]), nil
	case "t":
		return gate.T(q[0]), nil
	case "tdg":
		return gate.TDg(q[0]), nil
	case "cx":
		return gate.CX(q[0], q[1]), nil
	case "cz":
		return gate.CZ(q[0], q[1]), nil
	case "iswap":
		return gate.ISwap(q[0], q[1]), nil
	case "iswapdg":
		return gate.ISwapDg(q[0], q[1]), nil
	case "ccx":
		return gate.CCX(q[0], q[1], q[2]), nil
	case "rx", "ry", "rz":
		theta, err := angle("theta")
		if err != nil {
			return gate.Gate{}, err
		}
		switch in.Symbol {
		case "rx":
			return gate.RX(theta, q[0]), nil
		case "ry":
			return gate.RY(theta, q[0]), nil
		}
		return gate.RZ(theta, q[0]), nil
	case "p":
		lambda, err := angle("lambda")
		if err != nil {
			return gate.Gate{}, err
		}
		return gate.P(lambda, q[0]), nil
	case "r":
		theta, err := angle("theta")
		if err != nil {
			return gate.Gate{}, err
		}
		phi, err := angle("phi")
		if err != nil {
			return gate.Gate{}, err
		}
		return gate.R(theta, phi, q[0]), nil
	}

	theta, err := angle("theta")
	if err != nil {
		return gate.Gate{}, err
	}
	phi, err := angle("phi")
	if err != nil {
		return gate.Gate{}, err
	}
	lambda, err := angle("lambda")
	if err != nil {
		return gate.Gate{}, err
	}
	return gate.U(theta, phi, lambda, q[0]), nil
}

// EncodeProgram flattens a circuit, one instruction per gate, one
// program step per pipeline step.
func EncodeProgram(c *circuit.Circuit) (Program, error) {
	p := Program{NumQubits: c.NumQubits(), NumBits: c.NumBits()}
	for _, step := range c.Steps() {
		ins := make([]Instruction, 0, len(step))
		for _, g := range step {
			in, err := EncodeInstruction(g)
			if err != nil {
				return Program{}, err
			}
			ins = append(ins, in)
		}
		p.Steps = append(p.Steps, ins)
	}
	return p, nil
}

// DecodeProgram rebuilds the circuit a program names. Target validation
// happens at attachment, so a malformed program surfaces the circuit
// package's errors.
func DecodeProgram(p Program) (*circuit.Circuit, error) {
	c, err := circuit.New(p.NumQubits, p.NumBits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadProgram, err)
	}
	for i, step := range p.Steps {
		gates := make([]gate.Gate, 0, len(step))
		for _, in := range step {
			g, err := DecodeInstruction(in)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			gates = append(gates, g)
		}
		if err := c.Append(gates...); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return c, nil
}
