package view

import (
	"time"

	"github.com/amonks/devflow/task"
)

// Month is a Sunday-first calendar grid.
type Month struct {
	Year  int
	Month time.Month
	// Leading is the number of blank cells before the first day.
	Leading int
	Days    []Day
}

// Day is one calendar cell.
type Day struct {
	Date  time.Time
	Key   string
	Tasks []task.Task
}

// BuildMonth buckets tasks into the days of the given month by the
// YYYY-MM-DD portion of their due date.
func BuildMonth(tasks []task.Task, year int, month time.Month) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	byKey := make(map[string][]task.Task)
	for _, t := range tasks {
		if key, ok := t.DueKey(); ok {
			byKey[key] = append(byKey[key], t)
		}
	}

	m := Month{
		Year:    year,
		Month:   month,
		Leading: int(first.Weekday()),
		Days:    make([]Day, 0, days),
	}
	for d := 1; d <= days; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		key := task.DayKey(date)
		m.Days = append(m.Days, Day{Date: date, Key: key, Tasks: byKey[key]})
	}
	return m
}

// TasksDueOn returns the tasks whose due date falls on the calendar day of
// day, in input order.
func TasksDueOn(tasks []task.Task, day time.Time) []task.Task {
	key := task.DayKey(day)
	var out []task.Task
	for _, t := range tasks {
		if due, ok := t.DueKey(); ok && due == key {
			out = append(out, t)
		}
	}
	return out
}

// Weeks splits the grid into rows of seven cells. Blank cells are nil.
func (m Month) Weeks() [][]*Day {
	cells := make([]*Day, m.Leading, m.Leading+len(m.Days))
	for i := range m.Days {
		cells = append(cells, &m.Days[i])
	}
	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}
	weeks := make([][]*Day, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}
