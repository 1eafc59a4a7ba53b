// Package view computes the derived data the dashboard renders: filtered
// task lists, statistics, calendar buckets, chart series and growth
// summaries. Every function is a pure function of its arguments.
package view

import (
	"slices"
	"strings"

	"github.com/amonks/devflow/store"
	"github.com/amonks/devflow/task"
)

// Query selects and orders tasks for the task list.
type Query struct {
	Search   string
	Status   string
	Priority string
	Type     string
}

// QueryFromState returns the query described by the state's search text and
// filter selectors.
func QueryFromState(st store.State) Query {
	return Query{
		Search:   st.SearchQuery,
		Status:   st.Filters.Status,
		Priority: st.Filters.Priority,
		Type:     st.Filters.Type,
	}
}

// HasActiveFilters reports whether any selector is narrowed or search text
// is present.
func HasActiveFilters(st store.State) bool {
	return st.SearchQuery != "" ||
		active(st.Filters.Status) ||
		active(st.Filters.Priority) ||
		active(st.Filters.Type)
}

func active(selector string) bool {
	return selector != "" && selector != store.FilterAll
}

// FilterTasks returns the tasks matching q, highest priority first. Tasks of
// equal priority are ordered by due date when both have one and otherwise
// keep their relative order. The input slice is not modified.
func FilterTasks(tasks []task.Task, q Query) []task.Task {
	needle := strings.ToLower(q.Search)
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if needle != "" && !matchesSearch(t, needle) {
			continue
		}
		if active(q.Status) && string(t.Status) != q.Status {
			continue
		}
		if active(q.Priority) && string(t.Priority) != q.Priority {
			continue
		}
		if active(q.Type) && string(t.Type) != q.Type {
			continue
		}
		out = append(out, t)
	}

	slices.SortStableFunc(out, compareTasks)
	return out
}

func matchesSearch(t task.Task, needle string) bool {
	if strings.Contains(strings.ToLower(t.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), needle) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func compareTasks(a, b task.Task) int {
	if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
		return rb - ra
	}
	if a.DueDate != nil && b.DueDate != nil {
		return a.DueDate.Compare(*b.DueDate)
	}
	return 0
}
