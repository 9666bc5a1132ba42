// Package analyze turns a solved schedule into a decision-ready report:
// per-task float (slack) relative to the makespan, presented in start-time
// order. Criticality is left to the caller, classified against an explicit
// tolerance rather than a comparison baked into the data.
package analyze

import (
	"math"
	"sort"

	"github.com/joshharrison/slackline/internal/schedule"
	"github.com/joshharrison/slackline/internal/task"
)

// DefaultCriticalTolerance is the float threshold below which a task is
// treated as lying on a longest dependency chain.
const DefaultCriticalTolerance = 1e-9

// Row is the full per-task result: solved times, the original three-point
// estimates, and float relative to the makespan.
type Row struct {
	ID            string  `json:"taskID"`
	Start         float64 `json:"startTime"`
	End           float64 `json:"endTime"`
	Duration      float64 `json:"pertDuration"`
	BestHours     float64 `json:"bestCaseHours"`
	ExpectedHours float64 `json:"expectedHours"`
	WorstHours    float64 `json:"worstCaseHours"`
	Float         float64 `json:"floatHours"`
}

// Report is the analyzed schedule: makespan plus rows ordered by ascending
// start time, ties broken by task ID.
type Report struct {
	Makespan float64
	Rows     []Row
}

// Critical reports whether a float value is within tol of zero.
func Critical(float, tol float64) bool {
	return math.Abs(float) < tol
}

// CriticalCount returns how many rows are critical at the given tolerance.
func (r *Report) CriticalCount(tol float64) int {
	n := 0
	for _, row := range r.Rows {
		if Critical(row.Float, tol) {
			n++
		}
	}
	return n
}

// Analyze joins the solved schedule with the original task records and
// computes float(t) = makespan - end(t) for every task.
func Analyze(tasks []task.Task, s *schedule.Schedule) *Report {
	r := &Report{Makespan: s.Makespan}

	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		tt, ok := s.Tasks[t.ID]
		if !ok || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		r.Rows = append(r.Rows, Row{
			ID:            t.ID,
			Start:         tt.Start,
			End:           tt.End,
			Duration:      tt.Duration,
			BestHours:     t.BestHours,
			ExpectedHours: t.ExpectedHours,
			WorstHours:    t.WorstHours,
			Float:         s.Makespan - tt.End,
		})
	}

	sort.Slice(r.Rows, func(i, j int) bool {
		if r.Rows[i].Start != r.Rows[j].Start {
			return r.Rows[i].Start < r.Rows[j].Start
		}
		return r.Rows[i].ID < r.Rows[j].ID
	})

	return r
}
