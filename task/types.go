// Package task defines the unit of work tracked by the DevFlow dashboard.
//
// Tasks are plain values. They are owned by the application store and only
// change through store actions; the helpers in this package never mutate a
// task in place.
//
// The public API covers:
//   - Status, Priority and Type enums with validation
//   - ValidateTask for records built by callers before they are dispatched
//   - due date helpers and dependency analysis
package task

// Status represents the state of a task.
type Status string

const (
	// StatusTodo indicates the task has not been started.
	StatusTodo Status = "todo"

	// StatusDoing indicates the task is being worked on.
	StatusDoing Status = "doing"

	// StatusDone indicates the task is finished.
	StatusDone Status = "done"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusDoing, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// IsResolved returns true when a status is considered resolved for dependencies.
func (s Status) IsResolved() bool {
	return s == StatusDone
}

// Next returns the status that follows s in the todo -> doing -> done cycle.
// Done wraps back to todo.
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusDoing
	case StatusDoing:
		return StatusDone
	default:
		return StatusTodo
	}
}

// Priority represents the importance of a task.
type Priority string

const (
	// PriorityLow is the lowest priority.
	PriorityLow Priority = "low"

	// PriorityMedium is the default priority.
	PriorityMedium Priority = "medium"

	// PriorityHigh is the highest priority.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values, highest first.
func ValidPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort weight of a priority (high=3, medium=2, low=1).
// Unknown priorities rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Type represents the category of a task.
type Type string

const (
	// TypeFeature is new functionality.
	TypeFeature Type = "feature"

	// TypeBug is a defect fix.
	TypeBug Type = "bug"

	// TypeRefactor is a restructuring without behavior change.
	TypeRefactor Type = "refactor"

	// TypeResearch is an investigation.
	TypeResearch Type = "research"
)

// ValidTypes returns all valid task type values.
func ValidTypes() []Type {
	return []Type{TypeFeature, TypeBug, TypeRefactor, TypeResearch}
}

// IsValid returns true if the type is a known valid value.
func (t Type) IsValid() bool {
	for _, valid := range ValidTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500
