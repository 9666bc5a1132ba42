// Package task defines the schedulable task record and the PERT duration
// estimate derived from its three-point time estimates.
package task

import "fmt"

// Task is one unit of schedulable work loaded from an external source.
// Predecessors holds the raw reference text exactly as loaded: empty, a
// single task ID, or a comma-delimited list of IDs. Parsing and validation
// of the references happen in the graph package.
type Task struct {
	ID            string
	Predecessors  string
	BestHours     float64
	ExpectedHours float64
	WorstHours    float64
}

// PERTDuration returns the weighted three-point estimate
// (best + 4*expected + worst) / 6.
//
// The inputs are passed through unvalidated: if the estimates are out of
// order the result may fall outside [best, worst]. Callers wanting ordering
// enforcement use CheckEstimateOrder.
func PERTDuration(best, expected, worst float64) float64 {
	return (best + 4*expected + worst) / 6
}

// Duration returns the task's PERT duration in hours.
func (t Task) Duration() float64 {
	return PERTDuration(t.BestHours, t.ExpectedHours, t.WorstHours)
}

// CheckEstimateOrder reports whether the task's three-point estimates
// satisfy best <= expected <= worst. Estimates are accepted permissively by
// default; this check backs the CLI's --strict mode.
func CheckEstimateOrder(t Task) error {
	if t.BestHours > t.ExpectedHours || t.ExpectedHours > t.WorstHours {
		return fmt.Errorf("task %s: estimates out of order (best=%g expected=%g worst=%g)",
			t.ID, t.BestHours, t.ExpectedHours, t.WorstHours)
	}
	return nil
}
