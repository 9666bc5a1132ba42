package analyze

import (
	"math"
	"testing"

	"github.com/joshharrison/slackline/internal/graph"
	"github.com/joshharrison/slackline/internal/schedule"
	"github.com/joshharrison/slackline/internal/task"
)

func analyzeTasks(t *testing.T, tasks []task.Task) *Report {
	t.Helper()
	s, err := schedule.Solve(graph.Build(tasks))
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	return Analyze(tasks, s)
}

func TestAnalyze_FloatAndOrdering(t *testing.T) {
	// a(pert 2) -> b(pert 4) -> c(pert 1), makespan 7
	tasks := []task.Task{
		{ID: "c", Predecessors: "b", BestHours: 1, ExpectedHours: 1, WorstHours: 1},
		{ID: "a", BestHours: 1, ExpectedHours: 2, WorstHours: 3},
		{ID: "b", Predecessors: "a", BestHours: 2, ExpectedHours: 4, WorstHours: 6},
	}

	r := analyzeTasks(t, tasks)

	if math.Abs(r.Makespan-7) > 1e-9 {
		t.Fatalf("expected makespan 7, got %g", r.Makespan)
	}

	// Rows come back in start order regardless of input order
	wantOrder := []string{"a", "b", "c"}
	wantFloat := []float64{5, 1, 0}
	if len(r.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(r.Rows))
	}
	for i, row := range r.Rows {
		if row.ID != wantOrder[i] {
			t.Errorf("row %d: expected task %s, got %s", i, wantOrder[i], row.ID)
		}
		if math.Abs(row.Float-wantFloat[i]) > 1e-9 {
			t.Errorf("task %s: expected float %g, got %g", row.ID, wantFloat[i], row.Float)
		}
		if row.Float < 0 {
			t.Errorf("task %s: negative float %g", row.ID, row.Float)
		}
	}

	// Exactly one task on the longest chain's tail has zero float
	if !Critical(r.Rows[2].Float, DefaultCriticalTolerance) {
		t.Error("expected task c to be critical")
	}
	if Critical(r.Rows[0].Float, DefaultCriticalTolerance) {
		t.Error("expected task a to have float")
	}
}

func TestAnalyze_EqualStartsTieBreakByID(t *testing.T) {
	tasks := []task.Task{
		{ID: "zeta", BestHours: 1, ExpectedHours: 1, WorstHours: 1},
		{ID: "alpha", BestHours: 2, ExpectedHours: 2, WorstHours: 2},
		{ID: "mid", BestHours: 1, ExpectedHours: 1, WorstHours: 1},
	}

	r := analyzeTasks(t, tasks)

	want := []string{"alpha", "mid", "zeta"}
	for i, row := range r.Rows {
		if row.ID != want[i] {
			t.Errorf("row %d: expected %s, got %s", i, want[i], row.ID)
		}
	}
}

func TestAnalyze_RowsCarryEstimates(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", BestHours: 1, ExpectedHours: 2, WorstHours: 3},
	}

	r := analyzeTasks(t, tasks)

	row := r.Rows[0]
	if row.BestHours != 1 || row.ExpectedHours != 2 || row.WorstHours != 3 {
		t.Errorf("estimates not carried through: %+v", row)
	}
	if math.Abs(row.Duration-2) > 1e-9 {
		t.Errorf("expected pert duration 2, got %g", row.Duration)
	}
	if math.Abs(row.End-(row.Start+row.Duration)) > 1e-9 {
		t.Error("end != start + duration")
	}
}

func TestAnalyze_AtLeastOneZeroFloat(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", BestHours: 1, ExpectedHours: 2, WorstHours: 4},
		{ID: "b", Predecessors: "a", BestHours: 2, ExpectedHours: 5, WorstHours: 7},
		{ID: "c", BestHours: 1, ExpectedHours: 1, WorstHours: 1},
	}

	r := analyzeTasks(t, tasks)

	if r.CriticalCount(DefaultCriticalTolerance) < 1 {
		t.Error("expected at least one critical task")
	}
}

func TestCritical(t *testing.T) {
	cases := []struct {
		float, tol float64
		want       bool
	}{
		{0, DefaultCriticalTolerance, true},
		{1e-12, DefaultCriticalTolerance, true},
		{-1e-12, DefaultCriticalTolerance, true},
		{0.5, DefaultCriticalTolerance, false},
		{0.5, 1, true},
	}

	for _, c := range cases {
		if got := Critical(c.float, c.tol); got != c.want {
			t.Errorf("Critical(%g, %g) = %v, want %v", c.float, c.tol, got, c.want)
		}
	}
}
