package listflags

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/amonks/devflow/store"
	"github.com/amonks/devflow/task"
)

func TestAddTaskFilters_Defaults(t *testing.T) {
	var filters TaskFilters
	cmd := &cobra.Command{Use: "test"}
	AddTaskFilters(cmd, &filters)

	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	q, err := filters.Query()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != store.FilterAll || q.Priority != store.FilterAll || q.Type != store.FilterAll || q.Search != "" {
		t.Fatalf("unexpected query %+v", q)
	}
}

func TestAddTaskFilters_Parses(t *testing.T) {
	var filters TaskFilters
	cmd := &cobra.Command{Use: "test"}
	AddTaskFilters(cmd, &filters)

	if err := cmd.ParseFlags([]string{"--status", " DOING ", "--priority", "high", "--type", "Bug", "--search", " auth "}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	q, err := filters.Query()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != "doing" || q.Priority != "high" || q.Type != "bug" || q.Search != "auth" {
		t.Fatalf("unexpected query %+v", q)
	}
}

func TestAddTaskFilters_Aliases(t *testing.T) {
	var filters TaskFilters
	cmd := &cobra.Command{Use: "test"}
	AddTaskFilters(cmd, &filters)

	if err := cmd.ParseFlags([]string{"--kind", "research", "--query", "graphql"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if filters.Type != "research" || filters.Search != "graphql" {
		t.Fatalf("expected aliases to set canonical flags, got %+v", filters)
	}
}

func TestTaskFilters_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		filters TaskFilters
		want    error
	}{
		{name: "status", filters: TaskFilters{Status: "blocked"}, want: task.ErrInvalidStatus},
		{name: "priority", filters: TaskFilters{Priority: "urgent"}, want: task.ErrInvalidPriority},
		{name: "type", filters: TaskFilters{Type: "chore"}, want: task.ErrInvalidType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.filters.Query(); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
