package store

import (
	"fmt"

	"github.com/amonks/devflow/growth"
	"github.com/amonks/devflow/suggest"
	"github.com/amonks/devflow/task"
)

// Action is a request to change the state. The set of actions is closed;
// Apply ignores values it does not recognize.
type Action interface {
	action()
	fmt.Stringer
}

// AddTask appends a task. Ids are not checked for uniqueness.
type AddTask struct{ Task task.Task }

// UpdateTask replaces the task with the same id.
type UpdateTask struct{ Task task.Task }

// DeleteTask removes the task with the given id. Dependency lists that
// reference it are left alone.
type DeleteTask struct{ ID string }

// SetView switches the top-level screen.
type SetView struct{ View View }

// ToggleTheme flips between the light and dark theme.
type ToggleTheme struct{}

// StartPomodoro begins a fresh focus session.
type StartPomodoro struct{}

// StopPomodoro abandons the current session.
type StopPomodoro struct{}

// TickPomodoro counts one second down.
type TickPomodoro struct{}

// CompletePomodoroSession records a finished session.
type CompletePomodoroSession struct{}

// UpdateSkill replaces the skill with the same id.
type UpdateSkill struct{ Skill growth.Skill }

// UnlockAchievement marks an achievement unlocked at the current time.
type UnlockAchievement struct{ ID string }

// AddActivity prepends an entry to the activity log.
type AddActivity struct{ Activity growth.Activity }

// SetSearchQuery replaces the task search text.
type SetSearchQuery struct{ Query string }

// SetFilterStatus replaces the status selector.
type SetFilterStatus struct{ Value string }

// SetFilterPriority replaces the priority selector.
type SetFilterPriority struct{ Value string }

// SetFilterType replaces the type selector.
type SetFilterType struct{ Value string }

// ClearFilters resets every selector to FilterAll and clears the search.
type ClearFilters struct{}

// AddJournalEntry prepends an entry to the growth journal.
type AddJournalEntry struct{ Entry growth.JournalEntry }

// RequestLearning marks the learning panel as loading for a question.
type RequestLearning struct{ Question string }

// ReceiveLearning delivers the outcome of a learning request. Err is the
// user-facing message when the request failed. Request must match the
// panel's current request number or the outcome is dropped.
type ReceiveLearning struct {
	Request int
	Items   []suggest.Recommendation
	Err     string
}

// RequestPlan marks the planner panel as loading.
type RequestPlan struct{}

// ReceivePlan delivers the outcome of a planner request, matched like
// ReceiveLearning.
type ReceivePlan struct {
	Request int
	Items   []suggest.PlanSuggestion
	Err     string
}

func (AddTask) action()                 {}
func (UpdateTask) action()              {}
func (DeleteTask) action()              {}
func (SetView) action()                 {}
func (ToggleTheme) action()             {}
func (StartPomodoro) action()           {}
func (StopPomodoro) action()            {}
func (TickPomodoro) action()            {}
func (CompletePomodoroSession) action() {}
func (UpdateSkill) action()             {}
func (UnlockAchievement) action()       {}
func (AddActivity) action()             {}
func (SetSearchQuery) action()          {}
func (SetFilterStatus) action()         {}
func (SetFilterPriority) action()       {}
func (SetFilterType) action()           {}
func (ClearFilters) action()            {}
func (AddJournalEntry) action()         {}
func (RequestLearning) action()         {}
func (ReceiveLearning) action()         {}
func (RequestPlan) action()             {}
func (ReceivePlan) action()             {}

func (a AddTask) String() string        { return "ADD_TASK " + a.Task.ID }
func (a UpdateTask) String() string     { return "UPDATE_TASK " + a.Task.ID }
func (a DeleteTask) String() string     { return "DELETE_TASK " + a.ID }
func (a SetView) String() string        { return "SET_VIEW " + string(a.View) }
func (ToggleTheme) String() string      { return "TOGGLE_THEME" }
func (StartPomodoro) String() string    { return "START_POMODORO" }
func (StopPomodoro) String() string     { return "STOP_POMODORO" }
func (TickPomodoro) String() string     { return "TICK_POMODORO" }
func (CompletePomodoroSession) String() string {
	return "COMPLETE_POMODORO_SESSION"
}
func (a UpdateSkill) String() string       { return "UPDATE_SKILL " + a.Skill.ID }
func (a UnlockAchievement) String() string { return "UNLOCK_ACHIEVEMENT " + a.ID }
func (a AddActivity) String() string {
	return "ADD_ACTIVITY " + string(a.Activity.Type)
}
func (a SetSearchQuery) String() string    { return fmt.Sprintf("SET_SEARCH_QUERY %q", a.Query) }
func (a SetFilterStatus) String() string   { return "SET_FILTER_STATUS " + a.Value }
func (a SetFilterPriority) String() string { return "SET_FILTER_PRIORITY " + a.Value }
func (a SetFilterType) String() string     { return "SET_FILTER_TYPE " + a.Value }
func (ClearFilters) String() string        { return "CLEAR_FILTERS" }
func (a AddJournalEntry) String() string   { return "ADD_JOURNAL_ENTRY " + a.Entry.ID }
func (a RequestLearning) String() string {
	return fmt.Sprintf("REQUEST_LEARNING %q", a.Question)
}
func (a ReceiveLearning) String() string {
	return fmt.Sprintf("RECEIVE_LEARNING request=%d items=%d err=%t", a.Request, len(a.Items), a.Err != "")
}
func (RequestPlan) String() string { return "REQUEST_PLAN" }
func (a ReceivePlan) String() string {
	return fmt.Sprintf("RECEIVE_PLAN request=%d items=%d err=%t", a.Request, len(a.Items), a.Err != "")
}
