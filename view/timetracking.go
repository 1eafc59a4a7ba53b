package view

import (
	"math"

	"github.com/amonks/devflow/task"
)

// TimeTracking compares planned and spent effort.
type TimeTracking struct {
	EstimatedHours          float64
	ActualHours             float64
	CompletedEstimatedHours float64
	CompletedActualHours    float64
	// Accuracy is completed estimate over completed actual as a rounded
	// percentage; 0 when either side is 0.
	Accuracy   int
	InProgress []task.Task
}

// ComputeTimeTracking totals the hours recorded on tasks.
func ComputeTimeTracking(tasks []task.Task) TimeTracking {
	var tt TimeTracking
	for _, t := range tasks {
		tt.EstimatedHours += t.EstimatedOrZero()
		tt.ActualHours += t.ActualOrZero()
		switch t.Status {
		case task.StatusDone:
			tt.CompletedEstimatedHours += t.EstimatedOrZero()
			tt.CompletedActualHours += t.ActualOrZero()
		case task.StatusDoing:
			tt.InProgress = append(tt.InProgress, t)
		}
	}
	if tt.CompletedEstimatedHours > 0 && tt.CompletedActualHours > 0 {
		tt.Accuracy = int(math.Round(tt.CompletedEstimatedHours / tt.CompletedActualHours * 100))
	}
	return tt
}

// Progress returns actual over estimated hours for t, clamped to [0, 1], and
// whether both values are present.
func Progress(t task.Task) (float64, bool) {
	if t.EstimatedHours == nil || t.ActualHours == nil || *t.EstimatedHours == 0 {
		return 0, false
	}
	return math.Min(1, math.Max(0, *t.ActualHours / *t.EstimatedHours)), true
}
