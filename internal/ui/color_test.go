package ui

import (
	"bytes"
	"testing"

	"github.com/amonks/devflow/task"
)

func TestColorEnabled_NonTerminal(t *testing.T) {
	if ColorEnabled(&bytes.Buffer{}) {
		t.Fatal("expected buffers to disable color")
	}
}

func TestPalette_Disabled(t *testing.T) {
	p := NewPalette(false)
	if got := p.Status(task.StatusDoing); got != "doing" {
		t.Fatalf("expected plain label, got %q", got)
	}
	if got := p.Priority(task.PriorityHigh); got != "high" {
		t.Fatalf("expected plain label, got %q", got)
	}
	if got := p.Bold("x") + p.Warn("y"); got != "xy" {
		t.Fatalf("expected plain text, got %q", got)
	}
}
