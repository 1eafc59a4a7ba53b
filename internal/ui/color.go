package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/amonks/devflow/task"
)

// ColorEnabled reports whether w is a terminal that should receive ANSI
// styling. NO_COLOR and TERM=dumb turn styling off.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Palette renders labels with or without color.
type Palette struct {
	enabled bool
}

// NewPalette returns a palette that styles output only when enabled.
func NewPalette(enabled bool) Palette {
	return Palette{enabled: enabled}
}

var (
	statusColors = map[task.Status]lipgloss.Color{
		task.StatusTodo:  lipgloss.Color("8"),
		task.StatusDoing: lipgloss.Color("4"),
		task.StatusDone:  lipgloss.Color("2"),
	}
	priorityColors = map[task.Priority]lipgloss.Color{
		task.PriorityHigh:   lipgloss.Color("1"),
		task.PriorityMedium: lipgloss.Color("3"),
		task.PriorityLow:    lipgloss.Color("2"),
	}
	boldStyle = lipgloss.NewStyle().Bold(true)
)

// Status returns the status label.
func (p Palette) Status(s task.Status) string {
	return p.paint(string(s), statusColors[s])
}

// Priority returns the priority label.
func (p Palette) Priority(pr task.Priority) string {
	return p.paint(string(pr), priorityColors[pr])
}

// Bold emphasizes value.
func (p Palette) Bold(value string) string {
	if !p.enabled {
		return value
	}
	return boldStyle.Render(value)
}

// Warn highlights value in red.
func (p Palette) Warn(value string) string {
	return p.paint(value, lipgloss.Color("1"))
}

func (p Palette) paint(value string, color lipgloss.Color) string {
	if !p.enabled || color == "" {
		return value
	}
	return lipgloss.NewStyle().Foreground(color).Render(value)
}
