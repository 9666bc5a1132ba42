// Package schedule computes the earliest feasible start time for every
// task and the project makespan by forward relaxation over a topologically
// ordered dependency graph. For a precedence-only model this is the unique
// minimal-makespan assignment.
package schedule

import (
	"sort"

	"github.com/joshharrison/slackline/internal/graph"
)

// Solve computes the earliest-start schedule for the graph. Tasks with no
// predecessors start at 0; every other task starts when its last
// predecessor finishes. Returns ErrEmptyTaskSet for an empty graph and a
// *CycleError naming the offending tasks when no topological order exists.
// Output is deterministic for a fixed input.
func Solve(g *graph.DepGraph) (*Schedule, error) {
	if g.TaskCount() == 0 {
		return nil, ErrEmptyTaskSet
	}

	order, err := topoSort(g)
	if err != nil {
		return nil, err
	}

	s := &Schedule{
		Tasks: make(map[string]*TaskTimes, len(order)),
		Order: order,
	}

	// Forward pass: start(t) = max over predecessors of end(p)
	for _, id := range order {
		n := g.Nodes[id]
		start := 0.0
		for _, pred := range n.Preds {
			if end := s.Tasks[pred].End; end > start {
				start = end
			}
		}
		tt := &TaskTimes{ID: id, Start: start, Duration: n.Duration, End: start + n.Duration}
		s.Tasks[id] = tt
		if tt.End > s.Makespan {
			s.Makespan = tt.End
		}
	}

	return s, nil
}

// topoSort is Kahn's algorithm with a sorted ready queue so the resulting
// order is stable for a fixed input.
func topoSort(g *graph.DepGraph) ([]string, error) {
	inDegree := make(map[string]int, len(g.Nodes))
	for id, n := range g.Nodes {
		inDegree[id] = len(n.Preds)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	var order []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		var newReady []string
		for _, succ := range g.Nodes[node].Succs {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				newReady = append(newReady, succ)
			}
		}
		sort.Strings(newReady)
		queue = append(queue, newReady...)
	}

	if len(order) != g.TaskCount() {
		return nil, &CycleError{Tasks: g.DetectCycle()}
	}

	return order, nil
}
