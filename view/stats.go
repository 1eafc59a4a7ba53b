package view

import (
	"math"
	"time"

	"github.com/amonks/devflow/store"
	"github.com/amonks/devflow/task"
)

// DueSoonDays is the look-ahead window for Stats.DueThisWeek.
const DueSoonDays = 7

// Stats is the dashboard's headline numbers.
type Stats struct {
	Total int
	Todo  int
	Doing int
	Done  int
	// CompletionRate is the rounded percentage of done tasks.
	CompletionRate int

	HighPriorityOpen int
	// DueThisWeek counts unfinished tasks due on or before today+7,
	// overdue tasks included.
	DueThisWeek int

	PomodorosToday       int
	AchievementsUnlocked int
	AchievementsTotal    int

	TotalExperience    int
	TotalMaxExperience int
	// AverageSkillProgress is the mean of per-skill progress ratios.
	AverageSkillProgress float64
}

// ComputeStats aggregates st as seen at now.
func ComputeStats(st store.State, now time.Time) Stats {
	var s Stats
	s.Total = len(st.Tasks)

	limit := task.DayKey(now.AddDate(0, 0, DueSoonDays))
	for _, t := range st.Tasks {
		switch t.Status {
		case task.StatusTodo:
			s.Todo++
		case task.StatusDoing:
			s.Doing++
		case task.StatusDone:
			s.Done++
		}
		if t.Status.IsResolved() {
			continue
		}
		if t.Priority == task.PriorityHigh {
			s.HighPriorityOpen++
		}
		if due, ok := t.DueKey(); ok && due <= limit {
			s.DueThisWeek++
		}
	}
	s.CompletionRate = Percent(s.Done, s.Total)

	s.PomodorosToday = st.Pomodoro.SessionsCompleted
	s.AchievementsTotal = len(st.Achievements)
	for _, a := range st.Achievements {
		if a.IsUnlocked {
			s.AchievementsUnlocked++
		}
	}

	var progress float64
	for _, sk := range st.Skills {
		s.TotalExperience += sk.Experience
		s.TotalMaxExperience += sk.MaxExperience
		progress += sk.Progress()
	}
	if len(st.Skills) > 0 {
		s.AverageSkillProgress = progress / float64(len(st.Skills))
	}
	return s
}

// Percent returns part/whole as a rounded percentage, or 0 when whole is 0.
func Percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
