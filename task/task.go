package task

import "time"

// Task represents a single unit of work.
type Task struct {
	// ID is a unique identifier supplied by whoever creates the task.
	ID string `json:"id" yaml:"id"`

	// Title is the short summary of the task.
	Title string `json:"title" yaml:"title"`

	// Description provides additional context about the task.
	Description string `json:"description" yaml:"description"`

	Status   Status   `json:"status" yaml:"status"`
	Priority Priority `json:"priority" yaml:"priority"`
	Type     Type     `json:"type" yaml:"type"`

	// DueDate is the day the task should be finished (nil when unscheduled).
	DueDate *time.Time `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`

	// StartDate is the day work is planned to begin (nil when unscheduled).
	StartDate *time.Time `json:"startDate,omitempty" yaml:"startDate,omitempty"`

	// EstimatedHours is the planned effort (nil when not estimated).
	EstimatedHours *float64 `json:"estimatedHours,omitempty" yaml:"estimatedHours,omitempty"`

	// ActualHours is the effort spent so far (nil when not tracked).
	ActualHours *float64 `json:"actualHours,omitempty" yaml:"actualHours,omitempty"`

	// Tags are free-text labels in display order.
	Tags []string `json:"tags" yaml:"tags"`

	// Dependencies are the IDs of tasks this task waits on. References may
	// dangle after the referenced task is deleted.
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`

	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Hours returns a pointer to the provided hour count.
func Hours(h float64) *float64 {
	return &h
}

// Date returns a pointer to midnight UTC on the given day.
func Date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

// Clone returns a copy of t that shares no slices or pointers with it.
func (t Task) Clone() Task {
	out := t
	if t.DueDate != nil {
		due := *t.DueDate
		out.DueDate = &due
	}
	if t.StartDate != nil {
		start := *t.StartDate
		out.StartDate = &start
	}
	if t.EstimatedHours != nil {
		out.EstimatedHours = Hours(*t.EstimatedHours)
	}
	if t.ActualHours != nil {
		out.ActualHours = Hours(*t.ActualHours)
	}
	if t.Tags != nil {
		out.Tags = append([]string(nil), t.Tags...)
	}
	if t.Dependencies != nil {
		out.Dependencies = append([]string(nil), t.Dependencies...)
	}
	return out
}

// EstimatedOrZero returns the estimate, or 0 when none is set.
func (t Task) EstimatedOrZero() float64 {
	if t.EstimatedHours == nil {
		return 0
	}
	return *t.EstimatedHours
}

// ActualOrZero returns the tracked hours, or 0 when none are set.
func (t Task) ActualOrZero() float64 {
	if t.ActualHours == nil {
		return 0
	}
	return *t.ActualHours
}
