package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/amonks/devflow/growth"
	"github.com/amonks/devflow/internal/config"
	"github.com/amonks/devflow/pomodoro"
	"github.com/amonks/devflow/store"
	"github.com/amonks/devflow/task"
)

var testNow = time.Date(2025, 1, 17, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	n := 0
	a, err := New(Options{
		Config: cfg,
		Clock:  func() time.Time { return testNow },
		NewID: func() string {
			n++
			return "id-" + strconv.Itoa(n)
		},
		PomodoroOptions: []pomodoro.Option{pomodoro.WithInterval(time.Hour)},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

func TestNew_AppliesThemeAndRejectsBadTimeout(t *testing.T) {
	a := newTestApp(t, &config.Config{UI: config.UI{Theme: "dark"}})
	if got := a.Snapshot().Theme; got != store.ThemeDark {
		t.Fatalf("expected dark theme, got %q", got)
	}
	if len(a.Snapshot().Tasks) != 4 {
		t.Fatalf("expected seed tasks, got %d", len(a.Snapshot().Tasks))
	}

	_, err := New(Options{Config: &config.Config{Suggest: config.Suggest{Timeout: "soon"}}})
	if err == nil {
		t.Fatal("expected timeout parse error")
	}
}

func TestCycleTaskStatus(t *testing.T) {
	a := newTestApp(t, nil)

	tests := []struct {
		want     task.Status
		activity growth.ActivityType
		verb     string
	}{
		{want: task.StatusDone, activity: growth.ActivityTaskCompleted, verb: "Completed"},
		{want: task.StatusTodo, activity: growth.ActivityTaskUpdated, verb: "Moved back to todo"},
		{want: task.StatusDoing, activity: growth.ActivityTaskUpdated, verb: "Started"},
	}

	// Seed task 1 starts in doing.
	for _, tt := range tests {
		updated, err := a.CycleTaskStatus("1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != tt.want || !updated.UpdatedAt.Equal(testNow) {
			t.Fatalf("expected %s at %v, got %s at %v", tt.want, testNow, updated.Status, updated.UpdatedAt)
		}
		stored, _ := a.Snapshot().Task("1")
		if stored.Status != tt.want {
			t.Fatalf("store not updated: %s", stored.Status)
		}
		latest := a.Snapshot().Activities[0]
		if latest.Type != tt.activity || latest.TaskID != "1" || !strings.HasPrefix(latest.Description, tt.verb) {
			t.Fatalf("unexpected activity %+v", latest)
		}
	}
}

func TestCycleTaskStatus_UnknownIsNoOp(t *testing.T) {
	a := newTestApp(t, nil)
	before := a.Snapshot()

	_, err := a.CycleTaskStatus("missing")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	after := a.Snapshot()
	if len(after.Activities) != len(before.Activities) {
		t.Fatal("expected no activity for unknown task")
	}
}

func TestSetTaskStatus_Invalid(t *testing.T) {
	a := newTestApp(t, nil)
	if _, err := a.SetTaskStatus("1", "blocked"); !errors.Is(err, task.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := a.SetTaskStatus("2", task.StatusDone); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := a.Snapshot().Task("2")
	if got.Status != task.StatusDone {
		t.Fatalf("expected done, got %s", got.Status)
	}
}

func TestCreateTask(t *testing.T) {
	a := newTestApp(t, nil)

	created, err := a.CreateTask(NewTask{
		Title: "  Write release notes ",
		Tags:  []string{"docs", " ", "release"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "id-1" || created.Title != "Write release notes" {
		t.Fatalf("unexpected task %+v", created)
	}
	if created.Status != task.StatusTodo || created.Priority != task.PriorityMedium || created.Type != task.TypeFeature {
		t.Fatalf("expected defaults, got %s %s %s", created.Status, created.Priority, created.Type)
	}
	if len(created.Tags) != 2 {
		t.Fatalf("expected blank tag dropped, got %v", created.Tags)
	}

	st := a.Snapshot()
	if _, ok := st.Task("id-1"); !ok {
		t.Fatal("task not stored")
	}
	if st.Tasks[len(st.Tasks)-1].ID != "id-1" {
		t.Fatal("expected new task appended")
	}
	if st.Activities[0].Type != growth.ActivityTaskCreated || st.Activities[0].ID != "id-2" {
		t.Fatalf("unexpected activity %+v", st.Activities[0])
	}
}

func TestCreateTask_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input NewTask
		want  error
	}{
		{name: "empty title", input: NewTask{Title: "  "}, want: task.ErrEmptyTitle},
		{name: "bad priority", input: NewTask{Title: "x", Priority: "urgent"}, want: task.ErrInvalidPriority},
		{name: "negative hours", input: NewTask{Title: "x", EstimatedHours: task.Hours(-1)}, want: task.ErrNegativeHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, nil)
			before := len(a.Snapshot().Tasks)
			if _, err := a.CreateTask(tt.input); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if len(a.Snapshot().Tasks) != before {
				t.Fatal("invalid task was stored")
			}
		})
	}
}

func TestDeleteTask(t *testing.T) {
	a := newTestApp(t, nil)
	if err := a.DeleteTask("1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := a.Snapshot().Task("1"); ok {
		t.Fatal("task still present")
	}
	if err := a.DeleteTask("1"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUnlockAchievement(t *testing.T) {
	a := newTestApp(t, nil)
	got, err := a.UnlockAchievement("2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsUnlocked || got.UnlockedAt == nil || !got.UnlockedAt.Equal(testNow) {
		t.Fatalf("unexpected achievement %+v", got)
	}
	if a.Snapshot().Activities[0].Type != growth.ActivityAchievementUnlocked {
		t.Fatal("expected achievement activity")
	}
	if _, err := a.UnlockAchievement("nope"); !errors.Is(err, ErrAchievementNotFound) {
		t.Fatalf("expected ErrAchievementNotFound, got %v", err)
	}
}

func TestGainExperience(t *testing.T) {
	initial := store.Empty()
	initial.Skills = []growth.Skill{{ID: "s", Name: "Go", Level: 1, Experience: 80, MaxExperience: 100}}
	a, err := New(Options{Initial: &initial, Clock: func() time.Time { return testNow }})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := a.GainExperience("s", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Level != 1 || got.Experience != 90 || len(a.Snapshot().Activities) != 0 {
		t.Fatalf("expected no level change, got %+v", got)
	}

	got, err = a.GainExperience("s", 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Level != 2 || got.Experience != 15 {
		t.Fatalf("expected level 2 with 15 xp, got %+v", got)
	}
	acts := a.Snapshot().Activities
	if len(acts) != 1 || acts[0].Type != growth.ActivitySkillImproved || acts[0].SkillID != "s" {
		t.Fatalf("unexpected activities %+v", acts)
	}

	if _, err := a.GainExperience("missing", 1); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
	if _, err := a.GainExperience("s", -1); err == nil {
		t.Fatal("expected error for negative xp")
	}
}

func TestAddJournalEntry(t *testing.T) {
	a := newTestApp(t, nil)

	entry, err := a.AddJournalEntry(NewEntry{
		Title:   "Shipped search",
		Content: "Tags are searchable now.",
		Lessons: []string{"", "Index early", "  "},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Rating != growth.DefaultRating || entry.Mood != growth.MoodGood {
		t.Fatalf("expected defaults, got rating %d mood %s", entry.Rating, entry.Mood)
	}
	if entry.Date.Format(task.DayLayout) != "2025-01-17" {
		t.Fatalf("expected today's date, got %v", entry.Date)
	}
	if len(entry.Lessons) != 1 || entry.Lessons[0] != "Index early" {
		t.Fatalf("expected compacted lessons, got %v", entry.Lessons)
	}
	if a.Snapshot().Journal[0].ID != entry.ID {
		t.Fatal("expected entry prepended")
	}

	if _, err := a.AddJournalEntry(NewEntry{Title: "t"}); !errors.Is(err, growth.ErrEmptyJournalContent) {
		t.Fatalf("expected ErrEmptyJournalContent, got %v", err)
	}
	if _, err := a.AddJournalEntry(NewEntry{Title: "t", Content: "c", Rating: 9}); !errors.Is(err, growth.ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating, got %v", err)
	}
}

func TestTitlesCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Fix   the\tbuild", want: "Fix the build"},
		{in: "  Write\n release notes ", want: "Write release notes"},
		{in: "plain", want: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			a := newTestApp(t, nil)
			created, err := a.CreateTask(NewTask{Title: tt.in})
			if err != nil {
				t.Fatalf("CreateTask: %v", err)
			}
			if created.Title != tt.want {
				t.Fatalf("task title = %q, want %q", created.Title, tt.want)
			}
			entry, err := a.AddJournalEntry(NewEntry{Title: tt.in, Content: "notes"})
			if err != nil {
				t.Fatalf("AddJournalEntry: %v", err)
			}
			if entry.Title != tt.want {
				t.Fatalf("journal title = %q, want %q", entry.Title, tt.want)
			}
		})
	}
}

func TestRequestLearning(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("question") == "fail" {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `[{"title": "Go concurrency"}]`)
	}))
	defer server.Close()

	a := newTestApp(t, &config.Config{Suggest: config.Suggest{LearningURL: server.URL}})
	tasksBefore := a.Snapshot().Tasks

	panel := a.RequestLearning(context.Background(), "goroutines")
	if panel.Loading || panel.Err != "" || len(panel.Items) != 1 || panel.Question != "goroutines" {
		t.Fatalf("unexpected panel %+v", panel)
	}

	panel = a.RequestLearning(context.Background(), "fail")
	if panel.Loading || len(panel.Items) != 0 || !strings.Contains(panel.Err, "503") {
		t.Fatalf("expected described failure, got %+v", panel)
	}
	if len(a.Snapshot().Tasks) != len(tasksBefore) {
		t.Fatal("failed fetch changed tasks")
	}

	panel = a.RequestLearning(context.Background(), "  ")
	if panel.Question == "" {
		t.Fatal("expected a random question for blank input")
	}
}

func TestRequestLearning_LateResponseIsDropped(t *testing.T) {
	slowArrived := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		question := r.URL.Query().Get("question")
		if question == "slow" {
			close(slowArrived)
			<-release
		}
		_, _ = io.WriteString(w, `[{"title": "About `+question+`"}]`)
	}))
	defer server.Close()

	a := newTestApp(t, &config.Config{Suggest: config.Suggest{LearningURL: server.URL}})

	done := make(chan store.LearningPanel)
	go func() {
		done <- a.RequestLearning(context.Background(), "slow")
	}()
	<-slowArrived

	panel := a.RequestLearning(context.Background(), "fast")
	if len(panel.Items) != 1 || panel.Items[0].Title != "About fast" {
		t.Fatalf("unexpected panel %+v", panel)
	}

	close(release)
	<-done

	got := a.Snapshot().Learning
	if got.Question != "fast" || got.Loading || len(got.Items) != 1 || got.Items[0].Title != "About fast" {
		t.Fatalf("expected the newer request to win, got %+v", got)
	}
}

func TestRequestPlan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"suggestions": [{"type": "split", "title": "Auth"}, {"type": "split", "title": "Auth"}]}`)
	}))
	defer server.Close()

	a := newTestApp(t, &config.Config{Suggest: config.Suggest{PlannerURL: server.URL}})
	panel := a.RequestPlan(context.Background())
	if panel.Err != "" || len(panel.Items) != 2 {
		t.Fatalf("unexpected panel %+v", panel)
	}
	if panel.Items[0].Key != "split-Auth" || panel.Items[1].Key != "split-Auth-1" {
		t.Fatalf("expected normalized keys, got %q %q", panel.Items[0].Key, panel.Items[1].Key)
	}
}

func TestRequestPlan_NotConfigured(t *testing.T) {
	a := newTestApp(t, nil)
	panel := a.RequestPlan(context.Background())
	if panel.Loading || !strings.Contains(panel.Err, "[suggest]") {
		t.Fatalf("expected configuration hint, got %+v", panel)
	}
}

func TestTogglePomodoro(t *testing.T) {
	a := newTestApp(t, nil)

	if !a.TogglePomodoro(context.Background()) {
		t.Fatal("expected session to start")
	}
	st := a.Snapshot().Pomodoro
	if !st.Active || st.TimeRemaining != store.PomodoroDuration {
		t.Fatalf("unexpected pomodoro %+v", st)
	}
	if a.TogglePomodoro(context.Background()) {
		t.Fatal("expected session to stop")
	}
	if a.Snapshot().Pomodoro.Active || a.Pomodoro.Running() {
		t.Fatal("expected timer stopped")
	}
}
