// Package render draws circuits as fixed-width wire diagrams. One
// column per pipeline step, three text rows per qubit wire. Control and
// target markers are drawn inline on the wire, named gates in boxes.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"qvecsim/circuit"
	"qvecsim/gate"
)

// cellInfo describes one (step, qubit) cell of the grid.
type cellInfo struct {
	label       string // display label on this wire, "" for bare wire
	boxed       bool   // label drawn in a box rather than inline
	passThrough bool   // a connector crosses this wire between two other qubits
	connAbove   bool
	connBelow   bool
}

// inline marks the labels drawn directly on the wire.
func inline(label string) bool {
	switch label {
	case "●", "⊕", "×":
		return true
	}
	return false
}

// padCenter centres a string within the given visual width.
func padCenter(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return string([]rune(s)[:width])
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// stepCells lays one step's gates onto per-qubit cells. Qubits are
// 1-based, index 0 is unused. When gates in a step share a qubit the
// later gate's label wins; the engine still applies both.
func stepCells(step []gate.Gate, numQubits int) []cellInfo {
	cells := make([]cellInfo, numQubits+1)
	for _, g := range step {
		targets := g.Targets()
		labels := g.Labels()
		lo, hi := targets[0], targets[0]
		for _, t := range targets {
			lo, hi = min(lo, t), max(hi, t)
		}
		for i, t := range targets {
			cells[t].label = labels[i]
			cells[t].boxed = !inline(labels[i])
			cells[t].passThrough = false
		}
		for q := lo; q < hi; q++ {
			cells[q].connBelow = true
			cells[q+1].connAbove = true
		}
		for q := lo + 1; q < hi; q++ {
			if cells[q].label == "" {
				cells[q].passThrough = true
			}
		}
	}
	return cells
}

// renderCell returns the three text rows for a single cell, each exactly
// cellW visual characters wide.
func renderCell(info cellInfo, cursor bool) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	if cursor {
		innerW := cellW - 2
		inDashL := (innerW - 1) / 2
		inDashR := innerW - inDashL - 1
		top = cursorColStyle.Render("╔" + strings.Repeat("═", innerW) + "╗")
		bot = cursorColStyle.Render("╚" + strings.Repeat("═", innerW) + "╝")
		wall := cursorColStyle.Render("║")

		switch {
		case info.label != "" && !info.boxed:
			mid = wall + strings.Repeat("─", inDashL) + gateStyle.Render(info.label) + strings.Repeat("─", inDashR) + wall
		case info.label != "":
			name := padCenter(info.label, gateNameW)
			mid = wall + "─┤" + gateStyle.Render(name) + "├─" + wall
		case info.passThrough:
			mid = wall + strings.Repeat("─", inDashL) + "┼" + strings.Repeat("─", inDashR) + wall
		default:
			mid = wall + strings.Repeat("─", innerW) + wall
		}
		return
	}

	switch {
	case info.label != "" && !info.boxed:
		top, bot = emptyRow, emptyRow
		if info.connAbove {
			top = vertRow
		}
		if info.connBelow {
			bot = vertRow
		}
		mid = strings.Repeat("─", dashL) + gateStyle.Render(info.label) + strings.Repeat("─", dashR)

	case info.label != "":
		margin := (cellW - gateBoxW) / 2
		rightMargin := cellW - margin - gateBoxW
		name := padCenter(info.label, gateNameW)
		top = strings.Repeat(" ", margin) + gateStyle.Render("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin)
		mid = strings.Repeat("─", margin) + gateStyle.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)
		bot = strings.Repeat(" ", margin) + gateStyle.Render("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)
		if info.connAbove {
			top = vertRow
		}
		if info.connBelow {
			bot = vertRow
		}

	case info.passThrough:
		top, bot = vertRow, vertRow
		mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)

	default:
		top, bot = emptyRow, emptyRow
		if info.connAbove {
			top = vertRow
		}
		if info.connBelow {
			bot = vertRow
		}
		mid = strings.Repeat("─", cellW)
	}
	return
}

// Diagram renders the whole circuit with no highlight.
func Diagram(c *circuit.Circuit) string {
	return View(c, -1, 0, c.Depth())
}

// View renders steps [start, start+count) with the cursor step's column
// highlighted. A negative cursor disables the highlight. Columns past
// the circuit's depth render as bare wire.
func View(c *circuit.Circuit, cursor, start, count int) string {
	var sb strings.Builder
	n := c.NumQubits()

	header := strings.Repeat(" ", labelW)
	for step := start; step < start+count; step++ {
		num := padCenter(fmt.Sprintf("%d", step), cellW)
		if step == cursor {
			header += cursorColStyle.Render(num)
		} else {
			header += dimStyle.Render(num)
		}
	}
	sb.WriteString(header + "\n")

	columns := make([][]cellInfo, 0, count)
	for step := start; step < start+count; step++ {
		if step < 0 || step >= c.Depth() {
			columns = append(columns, make([]cellInfo, n+1))
			continue
		}
		columns = append(columns, stepCells(c.Step(step), n))
	}

	for q := 1; q <= n; q++ {
		topLine := strings.Repeat(" ", labelW)
		midLine := qubitLabelStyle.Render(fmt.Sprintf("%-5s", fmt.Sprintf("q%d", q))) + "──"
		botLine := strings.Repeat(" ", labelW)
		for i, cells := range columns {
			top, mid, bot := renderCell(cells[q], start+i == cursor)
			topLine += top
			midLine += mid
			botLine += bot
		}
		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}
	return sb.String()
}
