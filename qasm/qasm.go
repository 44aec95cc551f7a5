// Package qasm reads and writes circuits as OpenQASM 2.0 text.
//
// Each instruction line becomes one pipeline step, so a parsed circuit's
// depth equals its instruction count, mirroring how the encoder lays one
// step per line.
package qasm

import (
	"errors"
	"fmt"
	"strings"

	"qvecsim/circuit"
	"qvecsim/gate"
)

var (
	// ErrUnsupported reports a gate with no QASM spelling (custom gates).
	ErrUnsupported = errors.New("qasm: gate has no QASM form")

	// ErrParse reports unparseable QASM input.
	ErrParse = errors.New("qasm: parse error")
)

// Encode renders the circuit as OpenQASM 2.0. Qubit q[i] corresponds to
// circuit qubit i+1.
func Encode(c *circuit.Circuit) (string, error) {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.NumQubits())
	if c.NumBits() > 0 {
		fmt.Fprintf(&sb, "creg c[%d];\n", c.NumBits())
	}
	sb.WriteString("\n")

	for _, step := range c.Steps() {
		for _, g := range step {
			line, err := encodeGate(g)
			if err != nil {
				return "", err
			}
			sb.WriteString(line + "\n")
		}
	}
	return sb.String(), nil
}

func encodeGate(g gate.Gate) (string, error) {
	if g.Kind() == gate.KindCustom {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, g.Symbol())
	}

	args := make([]string, 0, 3)
	for _, t := range g.Targets() {
		args = append(args, fmt.Sprintf("q[%d]", t-1))
	}
	operands := strings.Join(args, ", ")

	if params := g.Params(); len(params) > 0 {
		return fmt.Sprintf("%s(%s) %s;", g.Symbol(), formatAngles(params), operands), nil
	}
	return fmt.Sprintf("%s %s;", g.Symbol(), operands), nil
}
