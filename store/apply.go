package store

import (
	"time"

	"github.com/amonks/devflow/growth"
	"github.com/amonks/devflow/suggest"
	"github.com/amonks/devflow/task"
)

// Apply returns the state that results from applying a to s, using the wall
// clock for timestamps.
func Apply(s State, a Action) State {
	return ApplyAt(s, a, time.Now())
}

// ApplyAt returns the state that results from applying a to s at time now.
// It never modifies the slices of s; collections that change are copied.
// Unknown actions and updates that name a missing id return s unchanged.
func ApplyAt(s State, a Action, now time.Time) State {
	switch a := a.(type) {
	case AddTask:
		s.Tasks = appendTask(s.Tasks, a.Task)

	case UpdateTask:
		s.Tasks = replaceTask(s.Tasks, a.Task)

	case DeleteTask:
		s.Tasks = removeTask(s.Tasks, a.ID)

	case SetView:
		s.View = a.View

	case ToggleTheme:
		s.Theme = s.Theme.Toggle()

	case StartPomodoro:
		s.Pomodoro.Active = true
		s.Pomodoro.TimeRemaining = PomodoroDuration

	case StopPomodoro:
		s.Pomodoro.Active = false
		s.Pomodoro.TimeRemaining = PomodoroDuration

	case TickPomodoro:
		s.Pomodoro.TimeRemaining = max(0, s.Pomodoro.TimeRemaining-1)

	case CompletePomodoroSession:
		s.Pomodoro.SessionsCompleted++
		s.Pomodoro.Active = false
		s.Pomodoro.TimeRemaining = PomodoroDuration

	case UpdateSkill:
		s.Skills = replaceSkill(s.Skills, a.Skill)

	case UnlockAchievement:
		s.Achievements = unlockAchievement(s.Achievements, a.ID, now)

	case AddActivity:
		s.Activities = growth.PrependActivity(s.Activities, a.Activity)

	case SetSearchQuery:
		s.SearchQuery = a.Query

	case SetFilterStatus:
		s.Filters.Status = a.Value

	case SetFilterPriority:
		s.Filters.Priority = a.Value

	case SetFilterType:
		s.Filters.Type = a.Value

	case ClearFilters:
		s.Filters = DefaultFilters()
		s.SearchQuery = ""

	case AddJournalEntry:
		journal := make([]growth.JournalEntry, 0, len(s.Journal)+1)
		journal = append(journal, a.Entry)
		s.Journal = append(journal, s.Journal...)

	case RequestLearning:
		s.Learning = LearningPanel{Question: a.Question, Loading: true, Request: s.Learning.Request + 1}

	case ReceiveLearning:
		if a.Request != s.Learning.Request {
			return s
		}
		s.Learning.Loading = false
		s.Learning.Err = a.Err
		s.Learning.Items = append([]suggest.Recommendation(nil), a.Items...)

	case RequestPlan:
		s.Planner = PlannerPanel{Loading: true, Request: s.Planner.Request + 1}

	case ReceivePlan:
		if a.Request != s.Planner.Request {
			return s
		}
		s.Planner.Loading = false
		s.Planner.Err = a.Err
		s.Planner.Items = append([]suggest.PlanSuggestion(nil), a.Items...)
	}
	return s
}

func appendTask(tasks []task.Task, t task.Task) []task.Task {
	out := make([]task.Task, 0, len(tasks)+1)
	out = append(out, tasks...)
	return append(out, t.Clone())
}

func replaceTask(tasks []task.Task, t task.Task) []task.Task {
	var out []task.Task
	for i := range tasks {
		if tasks[i].ID != t.ID {
			continue
		}
		if out == nil {
			out = append([]task.Task(nil), tasks...)
		}
		out[i] = t.Clone()
	}
	if out == nil {
		return tasks
	}
	return out
}

func removeTask(tasks []task.Task, id string) []task.Task {
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		out := make([]task.Task, 0, len(tasks)-1)
		out = append(out, tasks[:i]...)
		for _, rest := range tasks[i+1:] {
			if rest.ID != id {
				out = append(out, rest)
			}
		}
		return out
	}
	return tasks
}

func replaceSkill(skills []growth.Skill, sk growth.Skill) []growth.Skill {
	var out []growth.Skill
	for i := range skills {
		if skills[i].ID != sk.ID {
			continue
		}
		if out == nil {
			out = append([]growth.Skill(nil), skills...)
		}
		out[i] = sk
	}
	if out == nil {
		return skills
	}
	return out
}

func unlockAchievement(list []growth.Achievement, id string, now time.Time) []growth.Achievement {
	var out []growth.Achievement
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if out == nil {
			out = append([]growth.Achievement(nil), list...)
		}
		out[i] = list[i].Unlock(now)
	}
	if out == nil {
		return list
	}
	return out
}
