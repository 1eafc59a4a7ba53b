package task

import (
	"errors"
	"fmt"
	"strings"

	internalstrings "github.com/amonks/devflow/internal/strings"
	"github.com/amonks/devflow/internal/validation"
)

var (
	// ErrEmptyID is returned when a task has no identifier.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidType is returned when an invalid task type is provided.
	ErrInvalidType = errors.New("invalid task type")

	// ErrNegativeHours is returned when estimated or actual hours are negative.
	ErrNegativeHours = errors.New("hours cannot be negative")

	// ErrUpdatedBeforeCreated is returned when updatedAt precedes createdAt.
	ErrUpdatedBeforeCreated = errors.New("updated_at cannot precede created_at")

	// ErrSelfDependency is returned when a task depends on itself.
	ErrSelfDependency = errors.New("task cannot depend on itself")

	// ErrDuplicateDependency is returned when a dependency is listed twice.
	ErrDuplicateDependency = errors.New("dependency listed more than once")
)

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidateTask checks if a task record is well formed.
//
// The store never calls this: it accepts whatever it is given. Callers that
// build tasks from user input validate before dispatching.
func ValidateTask(t *Task) error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyID
	}

	if err := ValidateTitle(t.Title); err != nil {
		return err
	}

	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}

	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}

	if !t.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, t.Type)
	}

	if t.EstimatedHours != nil && *t.EstimatedHours < 0 {
		return fmt.Errorf("%w: estimated %v", ErrNegativeHours, *t.EstimatedHours)
	}
	if t.ActualHours != nil && *t.ActualHours < 0 {
		return fmt.Errorf("%w: actual %v", ErrNegativeHours, *t.ActualHours)
	}

	if t.UpdatedAt.Before(t.CreatedAt) {
		return ErrUpdatedBeforeCreated
	}

	seen := make(map[string]struct{}, len(t.Dependencies))
	for _, dep := range t.Dependencies {
		if dep == t.ID {
			return ErrSelfDependency
		}
		if _, ok := seen[dep]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateDependency, dep)
		}
		seen[dep] = struct{}{}
	}

	return nil
}

// ParseStatus resolves user input to a status.
func ParseStatus(input string) (Status, error) {
	value := Status(normalizeInput(input))
	if !value.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidStatus, Status(input), ValidStatuses())
	}
	return value, nil
}

// ParsePriority resolves user input to a priority.
func ParsePriority(input string) (Priority, error) {
	value := Priority(normalizeInput(input))
	if !value.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidPriority, Priority(input), ValidPriorities())
	}
	return value, nil
}

// ParseType resolves user input to a task type.
func ParseType(input string) (Type, error) {
	value := Type(normalizeInput(input))
	if !value.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidType, Type(input), ValidTypes())
	}
	return value, nil
}

func normalizeInput(input string) string {
	return internalstrings.NormalizeLowerTrimSpace(input)
}
