package graph

import "fmt"

// Node is one task in the dependency graph, carrying its precomputed PERT
// duration so the solver never re-queries the task set.
type Node struct {
	ID       string
	Duration float64  // PERT duration in hours
	Preds    []string // validated predecessor IDs, sorted
	Succs    []string // tasks that list this node as a predecessor, sorted
}

// UnresolvedRef records a predecessor reference that matched no known task
// ID. The edge is dropped and solving proceeds without it; the reference is
// surfaced to the caller as a warning rather than swallowed.
type UnresolvedRef struct {
	TaskID string // the referencing task
	Ref    string // the reference text that resolved to nothing
}

func (u UnresolvedRef) String() string {
	return fmt.Sprintf("predecessor %q not found for task %q", u.Ref, u.TaskID)
}

// DepGraph is the directed dependency graph over task IDs. An edge p -> t
// means p must finish before t starts.
type DepGraph struct {
	Nodes      map[string]*Node
	Roots      []string // tasks with no predecessors
	Leaves     []string // tasks nothing depends on
	Unresolved []UnresolvedRef
}

// TaskCount returns the number of tasks in the graph.
func (g *DepGraph) TaskCount() int {
	return len(g.Nodes)
}
