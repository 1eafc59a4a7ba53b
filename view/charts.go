package view

import "github.com/amonks/devflow/task"

// Slice is one bar or pie segment of a chart.
type Slice struct {
	Label   string
	Count   int
	Percent int
}

// StatusSeries counts tasks per status in workflow order.
func StatusSeries(tasks []task.Task) []Slice {
	labels := make([]string, 0, 3)
	for _, s := range task.ValidStatuses() {
		labels = append(labels, string(s))
	}
	return series(tasks, labels, func(t task.Task) string { return string(t.Status) })
}

// PrioritySeries counts tasks per priority, highest first.
func PrioritySeries(tasks []task.Task) []Slice {
	labels := make([]string, 0, 3)
	for _, p := range task.ValidPriorities() {
		labels = append(labels, string(p))
	}
	return series(tasks, labels, func(t task.Task) string { return string(t.Priority) })
}

// TypeSeries counts tasks per type.
func TypeSeries(tasks []task.Task) []Slice {
	labels := make([]string, 0, 4)
	for _, ty := range task.ValidTypes() {
		labels = append(labels, string(ty))
	}
	return series(tasks, labels, func(t task.Task) string { return string(t.Type) })
}

func series(tasks []task.Task, labels []string, key func(task.Task) string) []Slice {
	counts := make(map[string]int, len(labels))
	for _, t := range tasks {
		counts[key(t)]++
	}
	out := make([]Slice, 0, len(labels))
	for _, l := range labels {
		out = append(out, Slice{Label: l, Count: counts[l], Percent: Percent(counts[l], len(tasks))})
	}
	return out
}
