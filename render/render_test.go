package render

import (
	"strings"
	"testing"

	"qvecsim/circuit"
	"qvecsim/gate"
)

func TestPadCenter(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"H", 5, "  H  "},
		{"RX", 5, " RX  "},
		{"S†", 5, " S†  "},
		{"toolong", 5, "toolo"},
	}
	for _, tt := range tests {
		if got := padCenter(tt.in, tt.width); got != tt.want {
			t.Errorf("padCenter(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestStepCells(t *testing.T) {
	cells := stepCells([]gate.Gate{gate.CX(1, 3)}, 3)

	if cells[1].label != "●" || cells[1].boxed {
		t.Errorf("qubit 1: expected inline control, got %+v", cells[1])
	}
	if cells[3].label != "⊕" || cells[3].boxed {
		t.Errorf("qubit 3: expected inline target, got %+v", cells[3])
	}
	if !cells[2].passThrough {
		t.Errorf("qubit 2: expected pass-through, got %+v", cells[2])
	}
	if !cells[1].connBelow || !cells[3].connAbove {
		t.Error("expected vertical connector between control and target")
	}
}

func TestStepCellsBoxed(t *testing.T) {
	cells := stepCells([]gate.Gate{gate.H(2)}, 3)
	if cells[2].label != "H" || !cells[2].boxed {
		t.Errorf("expected boxed H, got %+v", cells[2])
	}
	if cells[1].label != "" || cells[3].label != "" {
		t.Error("other wires should be bare")
	}
}

func TestDiagram(t *testing.T) {
	c, err := circuit.New(3, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range []gate.Gate{gate.H(1), gate.CX(1, 3), gate.SDg(2)} {
		if err := c.Append(g); err != nil {
			t.Fatal(err)
		}
	}

	out := Diagram(c)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1+3*3 {
		t.Fatalf("expected header plus 3 rows per qubit, got %d lines:\n%s", len(lines), out)
	}
	for _, want := range []string{"q1", "q2", "q3", "H", "●", "⊕", "S†", "┼"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagram missing %q:\n%s", want, out)
		}
	}
}

func TestViewPastDepth(t *testing.T) {
	c, _ := circuit.New(2, 0)
	if err := c.Append(gate.X(1)); err != nil {
		t.Fatal(err)
	}

	out := View(c, 2, 0, 4)
	if !strings.Contains(out, "╔") {
		t.Errorf("expected cursor highlight on empty column:\n%s", out)
	}
}
