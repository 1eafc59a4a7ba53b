// Package store holds the dashboard's single in-memory state and the pure
// transition function that evolves it.
package store

import (
	"github.com/amonks/devflow/growth"
	"github.com/amonks/devflow/suggest"
	"github.com/amonks/devflow/task"
)

// PomodoroDuration is the length of one focus session in seconds.
const PomodoroDuration = 25 * 60

// FilterAll disables a status, priority or type filter.
const FilterAll = "all"

// View is the top-level screen selector.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewPlanning  View = "planning"
	ViewGrowth    View = "growth"
)

// ValidViews returns all view values in tab order.
func ValidViews() []View {
	return []View{ViewDashboard, ViewPlanning, ViewGrowth}
}

// IsValid returns true if the view is a known value.
func (v View) IsValid() bool {
	for _, valid := range ValidViews() {
		if v == valid {
			return true
		}
	}
	return false
}

// Theme is the color theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Filters holds the task list selectors. Each selector is FilterAll or a
// concrete enum value.
type Filters struct {
	Status   string `yaml:"status"`
	Priority string `yaml:"priority"`
	Type     string `yaml:"type"`
}

// DefaultFilters returns filters that match every task.
func DefaultFilters() Filters {
	return Filters{Status: FilterAll, Priority: FilterAll, Type: FilterAll}
}

// Pomodoro is the timer portion of the state.
type Pomodoro struct {
	Active            bool `yaml:"active"`
	TimeRemaining     int  `yaml:"timeRemaining"`
	SessionsCompleted int  `yaml:"sessionsCompleted"`
}

// LearningPanel is the state of the learning-recommendation panel.
type LearningPanel struct {
	Question string
	Items    []suggest.Recommendation
	Err      string
	Loading  bool
	// Request numbers the latest request; responses to older ones are
	// ignored.
	Request int
}

// PlannerPanel is the state of the planner suggestion panel.
type PlannerPanel struct {
	Items   []suggest.PlanSuggestion
	Err     string
	Loading bool
	Request int
}

// State is a snapshot of everything the dashboard shows. Snapshots are
// treated as immutable: Apply never modifies the slices of its input.
type State struct {
	Tasks        []task.Task           `yaml:"tasks"`
	Skills       []growth.Skill        `yaml:"skills"`
	Achievements []growth.Achievement  `yaml:"achievements"`
	Activities   []growth.Activity     `yaml:"activities"`
	Journal      []growth.JournalEntry `yaml:"journal"`

	View        View     `yaml:"view"`
	Theme       Theme    `yaml:"theme"`
	SearchQuery string   `yaml:"searchQuery"`
	Filters     Filters  `yaml:"filters"`
	Pomodoro    Pomodoro `yaml:"pomodoro"`

	Learning LearningPanel `yaml:"-"`
	Planner  PlannerPanel  `yaml:"-"`
}

// Task returns the task with the given id.
func (s State) Task(id string) (task.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// Skill returns the skill with the given id.
func (s State) Skill(id string) (growth.Skill, bool) {
	for _, sk := range s.Skills {
		if sk.ID == id {
			return sk, true
		}
	}
	return growth.Skill{}, false
}

// Achievement returns the achievement with the given id.
func (s State) Achievement(id string) (growth.Achievement, bool) {
	for _, a := range s.Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return growth.Achievement{}, false
}

// Empty returns a state with no entities and default session values.
func Empty() State {
	return State{
		View:     ViewDashboard,
		Theme:    ThemeLight,
		Filters:  DefaultFilters(),
		Pomodoro: Pomodoro{TimeRemaining: PomodoroDuration},
	}
}
