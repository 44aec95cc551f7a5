// Package tui is a read-only circuit viewer. The cursor walks the
// pipeline step by step; the amplitude panel shows the state after
// applying every step left of the cursor.
package tui

import (
	"fmt"
	"math/cmplx"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qvecsim/circuit"
	"qvecsim/linalg"
	"qvecsim/render"
	"qvecsim/sim"
)

const cellW = 11 // matches the render package's column width

// Model is the viewer state. cursor counts applied steps, so cursor 0
// shows the initial state and cursor Depth() the final one.
type Model struct {
	circ   *circuit.Circuit
	cursor int
	state  linalg.Vector
	amps   viewport.Model
	width  int
	height int
}

// New returns a viewer positioned before the first step.
func New(c *circuit.Circuit) Model {
	m := Model{
		circ: c,
		amps: viewport.New(40, 20),
	}
	m.state = m.stateAt(0)
	m.amps.SetContent(m.ampContent())
	return m
}

// stateAt simulates the first k steps.
func (m Model) stateAt(k int) linalg.Vector {
	prefix, err := circuit.New(m.circ.NumQubits(), m.circ.NumBits())
	if err != nil {
		return linalg.Basis(1<<m.circ.NumQubits(), 0)
	}
	for i := 0; i < k; i++ {
		if err := prefix.Append(m.circ.Step(i)...); err != nil {
			break
		}
	}
	return sim.Run(prefix)
}

func (m *Model) moveCursor(to int) {
	if to < 0 || to > m.circ.Depth() {
		return
	}
	m.cursor = to
	m.state = m.stateAt(to)
	m.amps.SetContent(m.ampContent())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		ampWidth := m.width / 3
		m.amps = viewport.New(max(ampWidth-4, 20), max(m.height-10, 6))
		m.amps.SetContent(m.ampContent())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.moveCursor(m.cursor - 1)
		case "right", "l":
			m.moveCursor(m.cursor + 1)
		case "home", "g":
			m.moveCursor(0)
		case "end", "G":
			m.moveCursor(m.circ.Depth())
		case "up", "k":
			m.amps.ScrollUp(1)
		case "down", "j":
			m.amps.ScrollDown(1)
		case "pgup":
			m.amps.HalfPageUp()
		case "pgdown":
			m.amps.HalfPageDown()
		}
	}
	return m, nil
}

// ampContent formats one line per basis state: ket label, amplitude,
// probability bar.
func (m Model) ampContent() string {
	n := m.circ.NumQubits()
	probs := sim.Probabilities(m.state)

	var sb strings.Builder
	for idx, amp := range m.state {
		bar := strings.Repeat("█", int(probs[idx]*20+0.5))
		fmt.Fprintf(&sb, "%s %s  %s\n",
			labelStyle.Render(fmt.Sprintf("|%0*b⟩", n, idx)),
			formatAmp(amp),
			barStyle.Render(bar))
	}
	return sb.String()
}

func formatAmp(a complex128) string {
	if cmplx.Abs(a) < linalg.Tol {
		return dimStyle.Render("    0     ")
	}
	return fmt.Sprintf("%+.3f%+.3fi", real(a), imag(a))
}

func (m Model) renderCircuitPanel(width, height int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Circuit"))
	sb.WriteString("\n\n")

	maxSteps := max((width-12)/cellW, 1)
	start := 0
	if m.cursor >= maxSteps {
		start = m.cursor - maxSteps + 1
	}
	count := min(maxSteps, m.circ.Depth()-start+1)

	sb.WriteString(render.View(m.circ, m.cursor, start, count))
	fmt.Fprintf(&sb, "\n  Step %d of %d", m.cursor, m.circ.Depth())
	return circuitPanelStyle.Width(width).Height(height).Render(sb.String())
}

func (m Model) renderAmpPanel(width, height int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Amplitudes"))
	sb.WriteString("\n\n")
	sb.WriteString(m.amps.View())
	return ampPanelStyle.Width(width).Height(height).Render(sb.String())
}

func (m Model) renderControls(width int) string {
	var sb strings.Builder
	sb.WriteString(keyStyle.Render("←→/hl"))
	sb.WriteString(" Step  ")
	sb.WriteString(keyStyle.Render("g/G"))
	sb.WriteString(" First/Last  ")
	sb.WriteString(keyStyle.Render("↑↓/jk"))
	sb.WriteString(" Scroll amplitudes  ")
	sb.WriteString(keyStyle.Render("q"))
	sb.WriteString(" Quit")
	return controlsStyle.Width(width).Render(sb.String())
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	ampWidth := m.width / 3
	circuitWidth := m.width - ampWidth - 4
	controlsHeight := 3
	panelHeight := max(m.height-controlsHeight-2, 6)

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCircuitPanel(circuitWidth, panelHeight),
		m.renderAmpPanel(ampWidth, panelHeight))
	return lipgloss.JoinVertical(lipgloss.Left, top, m.renderControls(m.width-4))
}

// Run starts the viewer on the given circuit.
func Run(c *circuit.Circuit) error {
	p := tea.NewProgram(New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
