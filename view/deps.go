package view

import (
	"github.com/amonks/devflow/task"
)

// DependencyNode is one task's place in the dependency graph.
type DependencyNode struct {
	Task task.Task
	// Blockers are dependencies that exist and are not done.
	Blockers []task.Task
	// Dependents are tasks that list this task as a dependency.
	Dependents []task.Task
	// Missing are dependency ids that match no task.
	Missing []string
}

// Blocked reports whether the task waits on an unfinished dependency.
func (n DependencyNode) Blocked() bool {
	return len(n.Blockers) > 0
}

// DependencyReport is the dependency analysis for a task list.
type DependencyReport struct {
	// Nodes are in input order.
	Nodes []DependencyNode
	// Blocked lists unfinished tasks that have at least one blocker.
	Blocked []task.Task
	// Cycles lists dependency cycles as task id paths, each starting and
	// ending with the same id.
	Cycles [][]string
}

// AnalyzeDependencies resolves each task's dependencies against tasks.
func AnalyzeDependencies(tasks []task.Task) DependencyReport {
	byID := make(map[string]task.Task, len(tasks))
	for _, t := range tasks {
		if _, ok := byID[t.ID]; !ok {
			byID[t.ID] = t
		}
	}

	dependents := make(map[string][]task.Task)
	for _, t := range tasks {
		for _, dep := range t.Dependencies {
			dependents[dep] = append(dependents[dep], t)
		}
	}

	var report DependencyReport
	for _, t := range tasks {
		node := DependencyNode{Task: t, Dependents: dependents[t.ID]}
		for _, dep := range t.Dependencies {
			d, ok := byID[dep]
			if !ok {
				node.Missing = append(node.Missing, dep)
				continue
			}
			if !d.Status.IsResolved() {
				node.Blockers = append(node.Blockers, d)
			}
		}
		if node.Blocked() && !t.Status.IsResolved() {
			report.Blocked = append(report.Blocked, t)
		}
		report.Nodes = append(report.Nodes, node)
	}
	report.Cycles = findCycles(tasks, byID)
	return report
}

func findCycles(tasks []task.Task, byID map[string]task.Task) [][]string {
	const (
		unvisited = iota
		visiting
		visited
	)
	state := make(map[string]int, len(byID))
	var stack []string
	var cycles [][]string

	var visit func(id string)
	visit = func(id string) {
		state[id] = visiting
		stack = append(stack, id)
		for _, dep := range byID[id].Dependencies {
			if _, ok := byID[dep]; !ok {
				continue
			}
			switch state[dep] {
			case unvisited:
				visit(dep)
			case visiting:
				for i := len(stack) - 1; i >= 0; i-- {
					if stack[i] == dep {
						cycle := append([]string(nil), stack[i:]...)
						cycles = append(cycles, append(cycle, dep))
						break
					}
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[id] = visited
	}

	for _, t := range tasks {
		if state[t.ID] == unvisited {
			visit(t.ID)
		}
	}
	return cycles
}
