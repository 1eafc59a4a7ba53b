package app

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/amonks/devflow/growth"
	internalstrings "github.com/amonks/devflow/internal/strings"
	"github.com/amonks/devflow/store"
	"github.com/amonks/devflow/task"
)

// NewTask is the user input for CreateTask. Empty enum fields take the
// defaults todo, medium and feature.
type NewTask struct {
	Title          string
	Description    string
	Status         task.Status
	Priority       task.Priority
	Type           task.Type
	DueDate        *time.Time
	StartDate      *time.Time
	EstimatedHours *float64
	Tags           []string
	Dependencies   []string
}

var statusVerbs = map[task.Status]string{
	task.StatusTodo:  "Moved back to todo",
	task.StatusDoing: "Started",
	task.StatusDone:  "Completed",
}

// CreateTask validates input, adds the task and records a task_created
// activity. Runs of whitespace in the title collapse to single spaces.
func (a *App) CreateTask(input NewTask) (task.Task, error) {
	now := a.now()
	t := task.Task{
		ID:             a.newID(),
		Title:          internalstrings.NormalizeWhitespace(input.Title),
		Description:    strings.TrimSpace(input.Description),
		Status:         input.Status,
		Priority:       input.Priority,
		Type:           input.Type,
		DueDate:        input.DueDate,
		StartDate:      input.StartDate,
		EstimatedHours: input.EstimatedHours,
		Tags:           growth.CompactLines(input.Tags),
		Dependencies:   input.Dependencies,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if t.Status == "" {
		t.Status = task.StatusTodo
	}
	if t.Priority == "" {
		t.Priority = task.PriorityMedium
	}
	if t.Type == "" {
		t.Type = task.TypeFeature
	}
	if err := task.ValidateTask(&t); err != nil {
		return task.Task{}, err
	}

	a.Store.Dispatch(store.AddTask{Task: t})
	a.record(growth.Activity{
		Type:        growth.ActivityTaskCreated,
		Description: fmt.Sprintf("Created %q", t.Title),
		TaskID:      t.ID,
	})
	a.log.Info("task created", zap.String("id", t.ID))
	return t, nil
}

// CycleTaskStatus advances a task through todo, doing and done, wrapping
// back to todo.
func (a *App) CycleTaskStatus(id string) (task.Task, error) {
	return a.changeStatus(id, task.Status.Next)
}

// SetTaskStatus moves a task to status.
func (a *App) SetTaskStatus(id string, status task.Status) (task.Task, error) {
	if !status.IsValid() {
		return task.Task{}, fmt.Errorf("%w: %q", task.ErrInvalidStatus, status)
	}
	return a.changeStatus(id, func(task.Status) task.Status { return status })
}

func (a *App) changeStatus(id string, next func(task.Status) task.Status) (task.Task, error) {
	now := a.now()
	var updated task.Task
	_, ok := a.Store.DispatchFunc(func(st store.State) store.Action {
		current, found := st.Task(id)
		if !found {
			return nil
		}
		updated = current.Clone()
		updated.Status = next(current.Status)
		updated.UpdatedAt = now
		return store.UpdateTask{Task: updated}
	})
	if !ok {
		return task.Task{}, fmt.Errorf("%w: %q", ErrTaskNotFound, id)
	}

	kind := growth.ActivityTaskUpdated
	if updated.Status == task.StatusDone {
		kind = growth.ActivityTaskCompleted
	}
	a.record(growth.Activity{
		Type:        kind,
		Description: fmt.Sprintf("%s %q", statusVerbs[updated.Status], updated.Title),
		TaskID:      updated.ID,
	})
	return updated, nil
}

// DeleteTask removes a task. Dependencies on it are left in place.
func (a *App) DeleteTask(id string) error {
	_, ok := a.Store.DispatchFunc(func(st store.State) store.Action {
		if _, found := st.Task(id); !found {
			return nil
		}
		return store.DeleteTask{ID: id}
	})
	if !ok {
		return fmt.Errorf("%w: %q", ErrTaskNotFound, id)
	}
	return nil
}

// record stamps and prepends an activity.
func (a *App) record(act growth.Activity) {
	act.ID = a.newID()
	act.Timestamp = a.now()
	a.Store.Dispatch(store.AddActivity{Activity: act})
}
