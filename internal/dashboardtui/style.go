package dashboardtui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/amonks/devflow/store"
	"github.com/amonks/devflow/task"
)

var borderASCII = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

// palette holds the styles for one theme.
type palette struct {
	tabBar      lipgloss.Style
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	pane        lipgloss.Style
	paneActive  lipgloss.Style
	helpBar     lipgloss.Style
	selected    lipgloss.Style
	normal      lipgloss.Style
	muted       lipgloss.Style
	label       lipgloss.Style
	errorText   lipgloss.Style
	okText      lipgloss.Style
	timer       lipgloss.Style
	timerActive lipgloss.Style
}

func newPalette(theme store.Theme) palette {
	fg, bg, accent, border := lipgloss.Color("235"), lipgloss.Color("254"), lipgloss.Color("25"), lipgloss.Color("250")
	if theme == store.ThemeDark {
		fg, bg, accent, border = lipgloss.Color("252"), lipgloss.Color("236"), lipgloss.Color("33"), lipgloss.Color("238")
	}
	pane := lipgloss.NewStyle().Border(borderASCII).BorderForeground(border).Padding(0, 1)
	return palette{
		tabBar:      lipgloss.NewStyle().Foreground(fg).Background(bg),
		tabActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(accent).Bold(true).Padding(0, 1),
		tabInactive: lipgloss.NewStyle().Foreground(fg).Background(bg).Padding(0, 1),
		pane:        pane,
		paneActive:  pane.BorderForeground(accent),
		helpBar:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(accent),
		normal:      lipgloss.NewStyle().Foreground(fg),
		muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		label:       lipgloss.NewStyle().Bold(true),
		errorText:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		okText:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		timer:       lipgloss.NewStyle().Bold(true),
		timerActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

var priorityMarks = map[task.Priority]string{
	task.PriorityHigh:   "!!!",
	task.PriorityMedium: "!! ",
	task.PriorityLow:    "!  ",
}

var statusMarks = map[task.Status]string{
	task.StatusTodo:  "[ ]",
	task.StatusDoing: "[~]",
	task.StatusDone:  "[x]",
}
