package pomodoro

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Notifier is told when a focus session completes.
type Notifier interface {
	SessionComplete(sessions int) error
}

// NopNotifier ignores completions.
type NopNotifier struct{}

// SessionComplete does nothing.
func (NopNotifier) SessionComplete(int) error { return nil }

// BellNotifier rings the terminal bell and prints a line.
type BellNotifier struct {
	w     io.Writer
	style lipgloss.Style
}

// NewBellNotifier writes completion notices to w.
func NewBellNotifier(w io.Writer) *BellNotifier {
	return &BellNotifier{
		w:     w,
		style: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	}
}

// SessionComplete writes a bell and a summary line.
func (b *BellNotifier) SessionComplete(sessions int) error {
	msg := b.style.Render("Pomodoro session complete!")
	_, err := fmt.Fprintf(b.w, "\a%s Take a 5 minute break. (%d today)\n", msg, sessions)
	return err
}
