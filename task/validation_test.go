package task

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validTask() Task {
	created := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	return Task{
		ID:        "1",
		Title:     "Build auth",
		Status:    StatusTodo,
		Priority:  PriorityHigh,
		Type:      TypeFeature,
		Tags:      []string{"auth"},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestValidateTask(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Task)
		want   error
	}{
		{name: "valid", mutate: func(*Task) {}},
		{name: "empty id", mutate: func(tk *Task) { tk.ID = " " }, want: ErrEmptyID},
		{name: "empty title", mutate: func(tk *Task) { tk.Title = "" }, want: ErrEmptyTitle},
		{name: "long title", mutate: func(tk *Task) { tk.Title = strings.Repeat("a", MaxTitleLength+1) }, want: ErrTitleTooLong},
		{name: "bad status", mutate: func(tk *Task) { tk.Status = "blocked" }, want: ErrInvalidStatus},
		{name: "bad priority", mutate: func(tk *Task) { tk.Priority = "urgent" }, want: ErrInvalidPriority},
		{name: "bad type", mutate: func(tk *Task) { tk.Type = "chore" }, want: ErrInvalidType},
		{name: "negative estimate", mutate: func(tk *Task) { tk.EstimatedHours = Hours(-1) }, want: ErrNegativeHours},
		{name: "negative actual", mutate: func(tk *Task) { tk.ActualHours = Hours(-0.5) }, want: ErrNegativeHours},
		{name: "updated before created", mutate: func(tk *Task) { tk.UpdatedAt = tk.CreatedAt.Add(-time.Hour) }, want: ErrUpdatedBeforeCreated},
		{name: "self dependency", mutate: func(tk *Task) { tk.Dependencies = []string{"1"} }, want: ErrSelfDependency},
		{name: "duplicate dependency", mutate: func(tk *Task) { tk.Dependencies = []string{"2", "2"} }, want: ErrDuplicateDependency},
		{name: "dangling dependency allowed", mutate: func(tk *Task) { tk.Dependencies = []string{"missing"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := validTask()
			tt.mutate(&tk)
			err := ValidateTask(&tk)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestClone_DoesNotShareSlices(t *testing.T) {
	original := validTask()
	original.DueDate = Date(2025, 1, 20)
	original.EstimatedHours = Hours(8)
	original.Dependencies = []string{"2"}

	copied := original.Clone()
	copied.Tags[0] = "changed"
	copied.Dependencies[0] = "3"
	*copied.EstimatedHours = 1
	*copied.DueDate = copied.DueDate.AddDate(0, 0, 1)

	if original.Tags[0] != "auth" {
		t.Fatalf("expected tags to be copied, got %v", original.Tags)
	}
	if original.Dependencies[0] != "2" {
		t.Fatalf("expected dependencies to be copied, got %v", original.Dependencies)
	}
	if *original.EstimatedHours != 8 {
		t.Fatalf("expected estimate to be copied, got %v", *original.EstimatedHours)
	}
	if DayKey(*original.DueDate) != "2025-01-20" {
		t.Fatalf("expected due date to be copied, got %v", original.DueDate)
	}
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2025, 1, 17, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		due  *time.Time
		want int
		ok   bool
	}{
		{name: "none", due: nil, ok: false},
		{name: "tomorrow", due: Date(2025, 1, 18), want: 1, ok: true},
		{name: "today", due: Date(2025, 1, 17), want: 0, ok: true},
		{name: "overdue", due: Date(2025, 1, 10), want: -7, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := validTask()
			tk.DueDate = tt.due
			got, ok := DaysUntilDue(tk, now)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("DaysUntilDue = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIsOverdue_IgnoresDoneTasks(t *testing.T) {
	now := time.Date(2025, 1, 17, 12, 0, 0, 0, time.UTC)
	tk := validTask()
	tk.DueDate = Date(2025, 1, 10)

	if !IsOverdue(tk, now) {
		t.Fatalf("expected open task to be overdue")
	}
	tk.Status = StatusDone
	if IsOverdue(tk, now) {
		t.Fatalf("expected done task not to be overdue")
	}
}
