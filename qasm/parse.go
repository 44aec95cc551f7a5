package qasm

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"qvecsim/circuit"
	"qvecsim/gate"
)

// Pre-compiled regexps for QASM parsing.
var (
	qregRegex     = regexp.MustCompile(`^qreg\s+\w+\[(\d+)\];?$`)
	cregRegex     = regexp.MustCompile(`^creg\s+\w+\[(\d+)\];?$`)
	oneQubitRegex = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	paramRegex    = regexp.MustCompile(`^(\w+)\s*\(\s*(` + anglePattern + `(?:\s*,\s*` + anglePattern + `)*)\s*\)\s+q\[(\d+)\];?$`)
	twoQubitRegex = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	triQubitRegex = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\],\s*q\[(\d+)\];?$`)
)

// Parse builds a circuit from OpenQASM 2.0 text. Every gate line
// becomes one pipeline step. QASM's q[i] is circuit qubit i+1. The qreg
// and creg declarations must precede the first gate.
func Parse(text string) (*circuit.Circuit, error) {
	var c *circuit.Circuit
	qubits, numBits := 0, 0

	for lineNum, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "", strings.HasPrefix(line, "//"),
			strings.HasPrefix(line, "OPENQASM"), strings.HasPrefix(line, "include"):
			continue
		}

		if m := qregRegex.FindStringSubmatch(line); m != nil {
			qubits, _ = strconv.Atoi(m[1])
			continue
		}
		if m := cregRegex.FindStringSubmatch(line); m != nil {
			numBits, _ = strconv.Atoi(m[1])
			continue
		}

		g, err := parseGate(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
		if c == nil {
			if qubits == 0 {
				return nil, fmt.Errorf("%w: line %d: gate before qreg declaration", ErrParse, lineNum+1)
			}
			if c, err = circuit.New(qubits, numBits); err != nil {
				return nil, err
			}
		}
		if err := c.Append(g); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
	}

	if c == nil {
		if qubits == 0 {
			return nil, fmt.Errorf("%w: no qreg declaration", ErrParse)
		}
		return circuit.New(qubits, numBits)
	}
	return c, nil
}

func parseGate(line string) (gate.Gate, error) {
	if m := paramRegex.FindStringSubmatch(line); m != nil {
		name := strings.ToLower(m[1])
		target, _ := strconv.Atoi(m[3])
		var params []float64
		for _, part := range strings.Split(m[2], ",") {
			val, ok := parseAngle(part)
			if !ok {
				return gate.Gate{}, fmt.Errorf("%w: bad angle %q", ErrParse, part)
			}
			params = append(params, val)
		}
		return paramGate(name, params, target+1)
	}

	if m := triQubitRegex.FindStringSubmatch(line); m != nil {
		name := strings.ToLower(m[1])
		a, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		c, _ := strconv.Atoi(m[4])
		switch name {
		case "ccx", "toffoli":
			return gate.CCX(a+1, b+1, c+1), nil
		}
		return gate.Gate{}, fmt.Errorf("%w: unknown three-qubit gate %q", ErrParse, name)
	}

	if m := twoQubitRegex.FindStringSubmatch(line); m != nil {
		name := strings.ToLower(m[1])
		a, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		switch name {
		case "cx", "cnot":
			return gate.CX(a+1, b+1), nil
		case "cz":
			return gate.CZ(a+1, b+1), nil
		case "iswap":
			return gate.ISwap(a+1, b+1), nil
		case "iswapdg":
			return gate.ISwapDg(a+1, b+1), nil
		}
		return gate.Gate{}, fmt.Errorf("%w: unknown two-qubit gate %q", ErrParse, name)
	}

	if m := oneQubitRegex.FindStringSubmatch(line); m != nil {
		name := strings.ToLower(m[1])
		target, _ := strconv.Atoi(m[2])
		t := target + 1
		switch name {
		case "x":
			return gate.X(t), nil
		case "y":
			return gate.Y(t), nil
		case "z":
			return gate.Z(t), nil
		case "h":
			return gate.H(t), nil
		case "s":
			return gate.S(t), nil
		case "sdg":
			return gate.SDg(t), nil
		case "t":
			return gate.T(t), nil
		case "tdg":
			return gate.TDg(t), nil
		}
		return gate.Gate{}, fmt.Errorf("%w: unknown gate %q", ErrParse, name)
	}

	return gate.Gate{}, fmt.Errorf("%w: %q", ErrParse, line)
}

// paramGate maps a parameterized mnemonic to a gate, accepting the u1,
// u2, u3 spellings alongside p and u.
func paramGate(name string, params []float64, target int) (gate.Gate, error) {
	arity := map[string]int{
		"rx": 1, "ry": 1, "rz": 1, "p": 1, "u1": 1, "r": 2, "u2": 2, "u": 3, "u3": 3,
	}
	want, ok := arity[name]
	if !ok {
		return gate.Gate{}, fmt.Errorf("%w: unknown parameterized gate %q", ErrParse, name)
	}
	if len(params) != want {
		return gate.Gate{}, fmt.Errorf("%w: %s takes %d angles, got %d", ErrParse, name, want, len(params))
	}

	switch name {
	case "rx":
		return gate.RX(params[0], target), nil
	case "ry":
		return gate.RY(params[0], target), nil
	case "rz":
		return gate.RZ(params[0], target), nil
	case "p", "u1":
		return gate.P(params[0], target), nil
	case "r":
		return gate.R(params[0], params[1], target), nil
	case "u2":
		return gate.U(math.Pi/2, params[0], params[1], target), nil
	}
	return gate.U(params[0], params[1], params[2], target), nil
}
