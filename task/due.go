package task

import (
	"math"
	"time"
)

// DayLayout is the calendar-day format used to compare due dates.
const DayLayout = "2006-01-02"

// DayKey returns the YYYY-MM-DD portion of t as recorded, without any
// timezone normalization.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// DueKey returns the due day key of the task and whether it has a due date.
func (t Task) DueKey() (string, bool) {
	if t.DueDate == nil {
		return "", false
	}
	return DayKey(*t.DueDate), true
}

// DaysUntilDue returns the number of days from now until the due date,
// rounded up, and whether the task has a due date. Overdue tasks yield
// negative values.
func DaysUntilDue(t Task, now time.Time) (int, bool) {
	if t.DueDate == nil {
		return 0, false
	}
	days := t.DueDate.Sub(now).Hours() / 24
	return int(math.Ceil(days)), true
}

// IsOverdue reports whether an unfinished task is past its due date.
func IsOverdue(t Task, now time.Time) bool {
	if t.Status == StatusDone {
		return false
	}
	days, ok := DaysUntilDue(t, now)
	return ok && days < 0
}
