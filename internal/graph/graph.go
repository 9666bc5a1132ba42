// Package graph builds the validated task-dependency graph: predecessor
// reference parsing, referential-integrity checks, and adjacency over task
// IDs. Cycle detection lives here; the solver decides when a cycle is fatal.
package graph

import (
	"sort"
	"strings"

	"github.com/joshharrison/slackline/internal/task"
)

// ParsePredecessors splits a raw predecessor field into individual task ID
// references. The field may be empty, a single ID, or a comma-delimited
// list; entries are trimmed and empty entries after trimming are dropped.
func ParsePredecessors(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var refs []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			refs = append(refs, p)
		}
	}
	return refs
}

// Build constructs a DepGraph from the loaded task records. Each node gets
// its PERT duration computed once at build time. Predecessor references
// that match no task ID are recorded as UnresolvedRef warnings and the edge
// is dropped; duplicate references collapse to a single edge. Build never
// fails on cyclic input — the solver reports cycles as a typed error.
func Build(tasks []task.Task) *DepGraph {
	g := &DepGraph{Nodes: make(map[string]*Node, len(tasks))}

	for _, t := range tasks {
		g.Nodes[t.ID] = &Node{ID: t.ID, Duration: t.Duration()}
	}

	edgeSet := make(map[[2]string]bool)
	for _, t := range tasks {
		for _, ref := range ParsePredecessors(t.Predecessors) {
			if _, ok := g.Nodes[ref]; !ok {
				g.Unresolved = append(g.Unresolved, UnresolvedRef{TaskID: t.ID, Ref: ref})
				continue
			}
			key := [2]string{ref, t.ID}
			if edgeSet[key] {
				continue
			}
			edgeSet[key] = true
			g.Nodes[t.ID].Preds = append(g.Nodes[t.ID].Preds, ref)
			g.Nodes[ref].Succs = append(g.Nodes[ref].Succs, t.ID)
		}
	}

	// Sort adjacency lists for deterministic traversal order
	for _, n := range g.Nodes {
		sort.Strings(n.Preds)
		sort.Strings(n.Succs)
	}

	for id, n := range g.Nodes {
		if len(n.Preds) == 0 {
			g.Roots = append(g.Roots, id)
		}
		if len(n.Succs) == 0 {
			g.Leaves = append(g.Leaves, id)
		}
	}
	sort.Strings(g.Roots)
	sort.Strings(g.Leaves)

	return g
}

// DetectCycle returns the cycle path if one exists, or nil if the graph is
// acyclic. Uses DFS with coloring: white (unvisited), gray (in progress),
// black (done).
func (g *DepGraph) DetectCycle() []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int)
	parent := make(map[string]string)

	var dfs func(node string) []string
	dfs = func(node string) []string {
		color[node] = gray
		for _, next := range g.Nodes[node].Succs {
			if color[next] == gray {
				// Found a cycle — reconstruct it
				cycle := []string{next, node}
				cur := node
				for cur != next {
					cur = parent[cur]
					cycle = append(cycle, cur)
				}
				// Reverse to get dependency order
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return cycle
			}
			if color[next] == white {
				parent[next] = node
				if cycle := dfs(next); cycle != nil {
					return cycle
				}
			}
		}
		color[node] = black
		return nil
	}

	// Sort keys for deterministic detection
	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if color[id] == white {
			if cycle := dfs(id); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
