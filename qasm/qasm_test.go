package qasm

import (
	"errors"
	"math"
	"strings"
	"testing"

	"qvecsim/circuit"
	"qvecsim/gate"
)

func TestParseBell(t *testing.T) {
	text := `OPENQASM 2.0;
include "qelib1.inc";

qreg q[2];
creg c[2];

h q[0];
cx q[0], q[1];`

	c, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if c.NumQubits() != 2 || c.NumBits() != 2 {
		t.Fatalf("expected 2 qubits / 2 bits, got %d / %d", c.NumQubits(), c.NumBits())
	}
	if c.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", c.Depth())
	}
	if g := c.Step(0)[0]; !g.Equal(gate.H(1)) {
		t.Errorf("step 0: expected h q1, got %s %v", g.Symbol(), g.Targets())
	}
	if g := c.Step(1)[0]; !g.Equal(gate.CX(1, 2)) {
		t.Errorf("step 1: expected cx q1,q2, got %s %v", g.Symbol(), g.Targets())
	}
}

func TestParseGateKinds(t *testing.T) {
	tests := []struct {
		line string
		want gate.Gate
	}{
		{"x q[0];", gate.X(1)},
		{"y q[1];", gate.Y(2)},
		{"z q[2];", gate.Z(3)},
		{"sdg q[0];", gate.SDg(1)},
		{"tdg q[0];", gate.TDg(1)},
		{"rx(pi/2) q[0];", gate.RX(math.Pi/2, 1)},
		{"ry(-pi/4) q[1];", gate.RY(-math.Pi/4, 2)},
		{"rz(0.25) q[0];", gate.RZ(0.25, 1)},
		{"p(pi/8) q[0];", gate.P(math.Pi/8, 1)},
		{"u1(pi/8) q[0];", gate.P(math.Pi/8, 1)},
		{"r(pi/2, pi/4) q[0];", gate.R(math.Pi/2, math.Pi/4, 1)},
		{"u(pi/2, 0, pi) q[0];", gate.U(math.Pi/2, 0, math.Pi, 1)},
		{"u3(1.5, -0.5, 0.25) q[2];", gate.U(1.5, -0.5, 0.25, 3)},
		{"u2(0, pi) q[0];", gate.U(math.Pi/2, 0, math.Pi, 1)},
		{"cz q[0], q[2];", gate.CZ(1, 3)},
		{"cnot q[1], q[0];", gate.CX(2, 1)},
		{"iswap q[0], q[1];", gate.ISwap(1, 2)},
		{"iswapdg q[0], q[1];", gate.ISwapDg(1, 2)},
		{"ccx q[0], q[1], q[2];", gate.CCX(1, 2, 3)},
		{"toffoli q[0], q[1], q[2];", gate.CCX(1, 2, 3)},
	}

	for _, tt := range tests {
		c, err := Parse("qreg q[3];\n" + tt.line)
		if err != nil {
			t.Errorf("%q: parse error: %v", tt.line, err)
			continue
		}
		if c.NumGates() != 1 {
			t.Errorf("%q: expected 1 gate, got %d", tt.line, c.NumGates())
			continue
		}
		if g := c.Step(0)[0]; !g.Equal(tt.want) {
			t.Errorf("%q: got %s targets %v params %v", tt.line, g.Symbol(), g.Targets(), g.Params())
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no qreg", "h q[0];"},
		{"empty", ""},
		{"unknown gate", "qreg q[2];\nfoo q[0];"},
		{"unknown controlled", "qreg q[2];\nqx q[0], q[1];"},
		{"bad arity", "qreg q[2];\nrx(1, 2) q[0];"},
		{"garbage", "qreg q[2];\nh q[0] q[1] extra"},
	}
	for _, tt := range tests {
		if _, err := Parse(tt.text); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestParseTargetOutOfRange(t *testing.T) {
	_, err := Parse("qreg q[2];\nh q[5];")
	if !errors.Is(err, circuit.ErrTargetRange) {
		t.Fatalf("expected target-range error, got %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	c, err := circuit.New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	gates := []gate.Gate{
		gate.H(1),
		gate.CX(1, 2),
		gate.RZ(math.Pi/4, 3),
		gate.U(1.25, -0.5, math.Pi/2, 2),
		gate.CCX(1, 2, 3),
		gate.ISwap(2, 3),
		gate.TDg(1),
	}
	for _, g := range gates {
		if err := c.Append(g); err != nil {
			t.Fatal(err)
		}
	}

	text, err := Encode(c)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse error: %v\n%s", err, text)
	}

	if parsed.NumQubits() != c.NumQubits() || parsed.Depth() != c.Depth() {
		t.Fatalf("round trip changed shape: %d qubits depth %d", parsed.NumQubits(), parsed.Depth())
	}
	for i, g := range gates {
		if got := parsed.Step(i)[0]; !got.Equal(g) {
			t.Errorf("step %d: expected %s %v, got %s %v %v",
				i, g.Symbol(), g.Targets(), got.Symbol(), got.Targets(), got.Params())
		}
	}
}

func TestEncodePiNotation(t *testing.T) {
	c, _ := circuit.New(1, 0)
	if err := c.Append(gate.RX(math.Pi/2, 1)); err != nil {
		t.Fatal(err)
	}
	text, err := Encode(c)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "rx(pi/2) q[0];") {
		t.Errorf("expected pi notation, got:\n%s", text)
	}
}

func TestEncodeRejectsCustom(t *testing.T) {
	c, _ := circuit.New(1, 0)
	g, err := gate.NewCustom("blob", [][]complex128{{0, 1}, {1, 0}}, gate.InverseHermitian, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Append(g); err != nil {
		t.Fatal(err)
	}
	if _, err := Encode(c); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestParseAngle(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1.5707", 1.5707, true},
		{"pi", math.Pi, true},
		{"-pi", -math.Pi, true},
		{"pi/2", math.Pi / 2, true},
		{"3*pi/4", 3 * math.Pi / 4, true},
		{"2pi", 2 * math.Pi, true},
		{"-2*pi/3", -2 * math.Pi / 3, true},
		{"3.14e-2", 0.0314, true},
		{"", 0, false},
		{"tau", 0, false},
		{"pi/0", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseAngle(tt.in)
		if ok != tt.ok {
			t.Errorf("%q: ok=%v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}
}
