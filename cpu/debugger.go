package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// model is the bubbletea program backing Debug. It steps the wired CPU
// one instruction at a time and renders its programmer-visible state
// alongside a hex strip of the memory around PC.
type model struct {
	cpu    *CPU
	prevPC uint16
	err    error
	quit   bool
}

// Init starts the debugger with the CPU exactly as the caller left it
// (already Reset or SetPC'd); Debug performs no loading of its own.
func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quit = true
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.PCValue()
			if err := m.cpu.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderRow renders one 16-byte row of memory starting at start,
// highlighting the CPU's current PC if it falls within the row.
func (m model) renderRow(start uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.cpu.Bus.Read(addr)
		if addr == m.cpu.PCValue() {
			s += fmt.Sprintf("[%02X] ", b)
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

// memoryStrip renders a handful of 16-byte rows centered on PC.
func (m model) memoryStrip() string {
	base := m.cpu.PCValue() &^ 0x0F
	var rows []string
	for i := -2; i <= 2; i++ {
		row := int32(base) + int32(i)*16
		if row < 0 || row > 0xFFF0 {
			continue
		}
		rows = append(rows, m.renderRow(uint16(row)))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	r := m.cpu.Regs()
	flagNames := "N V _ B D I Z C"
	var bits string
	for i := 7; i >= 0; i-- {
		if r.P&(1<<uint(i)) != 0 {
			bits += "/ "
		} else {
			bits += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04X (was %04X)
 A: %02X
 X: %02X
 Y: %02X
SP: %02X
CYC: %d
%s
%s
`, r.PC, m.prevPC, r.A, r.X, r.Y, r.SP, r.Cycles, flagNames, bits)
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	trace := m.cpu.Trace()
	if trace == "" {
		trace = "(not yet stepped)"
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.memoryStrip(),
			m.status(),
		),
		"",
		trace,
		"",
		spew.Sdump(m.cpu.Regs()),
	)
}

// Debug starts an interactive step debugger over c. Space or j steps
// one instruction; q quits. The caller is responsible for Reset or
// SetPC before calling Debug.
func (c *CPU) Debug() error {
	final, err := tea.NewProgram(model{cpu: c}).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
