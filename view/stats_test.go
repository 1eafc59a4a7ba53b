package view

import (
	"math"
	"testing"
	"time"

	"github.com/amonks/devflow/store"
	"github.com/amonks/devflow/task"
)

func TestComputeStats_Seed(t *testing.T) {
	now := time.Date(2025, 1, 17, 12, 0, 0, 0, time.UTC)
	st := store.Seed()
	s := ComputeStats(st, now)

	if s.Total != 4 || s.Todo != 2 || s.Doing != 1 || s.Done != 1 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.CompletionRate != 25 {
		t.Fatalf("expected 25%% completion, got %d", s.CompletionRate)
	}
	if s.HighPriorityOpen != 1 {
		t.Fatalf("expected 1 open high-priority task, got %d", s.HighPriorityOpen)
	}
	// The window ends on 01-24, so task 4 (due 01-25) is not counted.
	if s.DueThisWeek != 2 {
		t.Fatalf("expected 2 tasks due this week, got %d", s.DueThisWeek)
	}
	if s.AchievementsUnlocked != 1 || s.AchievementsTotal != 4 {
		t.Fatalf("unexpected achievements: %d/%d", s.AchievementsUnlocked, s.AchievementsTotal)
	}
	if s.TotalExperience != 250 || s.TotalMaxExperience != 400 {
		t.Fatalf("unexpected experience: %d/%d", s.TotalExperience, s.TotalMaxExperience)
	}
	if math.Abs(s.AverageSkillProgress-0.625) > 1e-9 {
		t.Fatalf("expected average progress 0.625, got %v", s.AverageSkillProgress)
	}
}

func TestComputeStats_DueWindow(t *testing.T) {
	now := time.Date(2025, 1, 17, 23, 0, 0, 0, time.UTC)
	tasks := []task.Task{
		{ID: "overdue", Status: task.StatusTodo, DueDate: task.Date(2024, time.December, 1)},
		{ID: "edge", Status: task.StatusDoing, DueDate: task.Date(2025, time.January, 24)},
		{ID: "later", Status: task.StatusTodo, DueDate: task.Date(2025, time.January, 25)},
		{ID: "done", Status: task.StatusDone, DueDate: task.Date(2025, time.January, 18)},
		{ID: "none", Status: task.StatusTodo},
	}
	s := ComputeStats(store.State{Tasks: tasks}, now)
	if s.DueThisWeek != 2 {
		t.Fatalf("expected overdue and edge tasks, got %d", s.DueThisWeek)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats(store.Empty(), time.Now())
	if s.Total != 0 || s.CompletionRate != 0 || s.AverageSkillProgress != 0 {
		t.Fatalf("unexpected stats for empty state: %+v", s)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		part, whole, want int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{4, 4, 100},
	}
	for _, tt := range tests {
		if got := Percent(tt.part, tt.whole); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.part, tt.whole, got, tt.want)
		}
	}
}

func TestSeries(t *testing.T) {
	tasks := store.Seed().Tasks

	status := StatusSeries(tasks)
	if len(status) != 3 || status[0].Label != "todo" || status[0].Count != 2 || status[0].Percent != 50 {
		t.Fatalf("unexpected status series: %+v", status)
	}

	priority := PrioritySeries(tasks)
	if priority[0].Label != "high" || priority[0].Count != 2 || priority[2].Label != "low" || priority[2].Count != 1 {
		t.Fatalf("unexpected priority series: %+v", priority)
	}

	types := TypeSeries(tasks)
	total := 0
	for _, s := range types {
		total += s.Count
	}
	if len(types) != 4 || total != 4 {
		t.Fatalf("unexpected type series: %+v", types)
	}
}

func TestComputeTimeTracking(t *testing.T) {
	tt := ComputeTimeTracking(store.Seed().Tasks)
	if tt.EstimatedHours != 20 || tt.ActualHours != 12 {
		t.Fatalf("unexpected totals: %v/%v", tt.EstimatedHours, tt.ActualHours)
	}
	if tt.CompletedEstimatedHours != 6 || tt.CompletedActualHours != 8 {
		t.Fatalf("unexpected completed totals: %v/%v", tt.CompletedEstimatedHours, tt.CompletedActualHours)
	}
	if tt.Accuracy != 75 {
		t.Fatalf("expected 75%% accuracy, got %d", tt.Accuracy)
	}
	if len(tt.InProgress) != 1 || tt.InProgress[0].ID != "1" {
		t.Fatalf("unexpected in-progress tasks: %v", ids(tt.InProgress))
	}

	noActual := ComputeTimeTracking([]task.Task{{Status: task.StatusDone, EstimatedHours: task.Hours(3)}})
	if noActual.Accuracy != 0 {
		t.Fatalf("expected 0 accuracy without actual hours, got %d", noActual.Accuracy)
	}
}

func TestProgress(t *testing.T) {
	if p, ok := Progress(task.Task{EstimatedHours: task.Hours(8), ActualHours: task.Hours(4)}); !ok || p != 0.5 {
		t.Fatalf("expected 0.5, got %v %v", p, ok)
	}
	if p, _ := Progress(task.Task{EstimatedHours: task.Hours(6), ActualHours: task.Hours(8)}); p != 1 {
		t.Fatalf("expected clamp to 1, got %v", p)
	}
	if _, ok := Progress(task.Task{EstimatedHours: task.Hours(2)}); ok {
		t.Fatal("expected no progress without actual hours")
	}
}
