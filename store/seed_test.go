package store

import (
	"testing"
	"time"

	"github.com/amonks/devflow/growth"
	"github.com/amonks/devflow/task"
)

func TestSeed(t *testing.T) {
	st := Seed()

	if len(st.Tasks) != 4 || len(st.Skills) != 4 || len(st.Achievements) != 4 || len(st.Activities) != 4 {
		t.Fatalf("unexpected seed sizes: tasks=%d skills=%d achievements=%d activities=%d",
			len(st.Tasks), len(st.Skills), len(st.Achievements), len(st.Activities))
	}
	if len(st.Journal) != 3 {
		t.Fatalf("expected 3 journal entries, got %d", len(st.Journal))
	}
	if st.View != ViewDashboard || st.Theme != ThemeLight || st.Filters != DefaultFilters() {
		t.Fatalf("unexpected session defaults: %s %s %+v", st.View, st.Theme, st.Filters)
	}
	if st.Pomodoro != (Pomodoro{TimeRemaining: PomodoroDuration}) {
		t.Fatalf("unexpected pomodoro: %+v", st.Pomodoro)
	}

	first, _ := st.Task("1")
	if first.Status != task.StatusDoing || first.Priority != task.PriorityHigh || first.Type != task.TypeFeature {
		t.Fatalf("unexpected task 1 enums: %+v", first)
	}
	if first.DueDate == nil || task.DayKey(*first.DueDate) != "2025-01-20" {
		t.Fatalf("unexpected due date: %v", first.DueDate)
	}
	if first.EstimatedOrZero() != 8 || first.ActualOrZero() != 4 {
		t.Fatalf("unexpected hours: %v/%v", first.EstimatedOrZero(), first.ActualOrZero())
	}
	wantCreated := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	if !first.CreatedAt.Equal(wantCreated) {
		t.Fatalf("expected created %v, got %v", wantCreated, first.CreatedAt)
	}

	second, _ := st.Task("2")
	if second.ActualHours != nil || second.StartDate != nil {
		t.Fatal("expected task 2 to have no actual hours or start date")
	}

	for _, tk := range st.Tasks {
		if err := task.ValidateTask(&tk); err != nil {
			t.Fatalf("seed task %s invalid: %v", tk.ID, err)
		}
	}

	unlocked, _ := st.Achievement("1")
	if !unlocked.IsUnlocked || unlocked.UnlockedAt == nil {
		t.Fatalf("expected achievement 1 unlocked, got %+v", unlocked)
	}
	for _, a := range st.Achievements[1:] {
		if a.IsUnlocked || a.UnlockedAt != nil {
			t.Fatalf("expected achievement %s locked", a.ID)
		}
	}

	for _, a := range st.Activities {
		if !a.Type.IsValid() {
			t.Fatalf("seed activity %s has invalid type %q", a.ID, a.Type)
		}
	}
	for _, e := range st.Journal {
		if err := growth.ValidateJournalEntry(&e); err != nil {
			t.Fatalf("seed journal %s invalid: %v", e.ID, err)
		}
	}
}

func TestSeed_ReturnsIndependentCopies(t *testing.T) {
	a := Seed()
	a.Tasks[0].Title = "changed"
	b := Seed()
	if b.Tasks[0].Title == "changed" {
		t.Fatal("seed state shared between calls")
	}
}

func TestExtendedAchievements(t *testing.T) {
	list := ExtendedAchievements()
	if len(list) != 6 {
		t.Fatalf("expected 6 catalog achievements, got %d", len(list))
	}
	for _, a := range list {
		if a.IsUnlocked {
			t.Fatalf("catalog achievement %s should be locked", a.ID)
		}
		if a.Rarity == "" || a.Category == "" || a.Reward == "" {
			t.Fatalf("catalog achievement %s missing decoration: %+v", a.ID, a)
		}
	}
	if list[0].ID != "5" || list[len(list)-1].ID != "10" {
		t.Fatalf("unexpected catalog ids %s..%s", list[0].ID, list[len(list)-1].ID)
	}
}

func TestDecodeState_RejectsUnknownFields(t *testing.T) {
	if _, err := DecodeState([]byte("bogus: 1\n")); err == nil {
		t.Fatal("expected error for unknown field")
	}
	st, err := DecodeState([]byte("theme: dark\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Theme != ThemeDark || st.View != ViewDashboard || st.Pomodoro.TimeRemaining != PomodoroDuration {
		t.Fatalf("expected defaults preserved, got %+v", st)
	}
}
