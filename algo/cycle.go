package algo

import "github.com/arborio-graphs/nextgraph/core"

// nodeState is a node's color during the iterative DFS cycle search:
// the classic white/gray/black three-coloring, renamed to avoid the
// recursion-depth connotation those names carry outside a recursive
// telling of DFS.
type nodeState int

const (
	unvisited nodeState = iota
	visiting
	visited
)

// frame is one level of the explicit DFS stack: the node being explored
// and a cursor into the slice of its outbound neighbors, so resuming a
// partially explored node costs O(1) rather than rescanning its row.
type frame struct {
	node      int
	neighbors []int
	cursor    int
}

// FindCycle searches every connected component for a directed cycle
// using an iterative, explicit-stack DFS — no recursion, so it cannot
// overflow the call stack on a deep or wide graph.
//
// If a cycle exists, the returned path is a closed loop: its first and
// last elements are equal, e.g. [1, 2, 0, 1]. A self-loop on node n
// returns [n, n]. If the graph is acyclic, ok is false.
func FindCycle[N, W any](g *core.CsmGraph[N, W]) ([]int, bool) {
	numNodes := g.NumberNodes()
	if numNodes == 0 {
		return nil, false
	}

	states := make([]nodeState, numNodes)
	predecessor := make([]int, numNodes)

	rowOf := func(n int) []int {
		seq, err := g.OutboundEdges(n)
		if err != nil {
			return nil
		}
		var row []int
		for v := range seq {
			row = append(row, v)
		}
		return row
	}

	for start := 0; start < numNodes; start++ {
		if states[start] != unvisited {
			continue
		}

		states[start] = visiting
		stack := []frame{{node: start, neighbors: rowOf(start)}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.cursor >= len(top.neighbors) {
				states[top.node] = visited
				stack = stack[:len(stack)-1]
				continue
			}

			v := top.neighbors[top.cursor]
			top.cursor++
			u := top.node

			switch states[v] {
			case visiting:
				return reconstructCycle(u, v, predecessor), true
			case unvisited:
				predecessor[v] = u
				states[v] = visiting
				stack = append(stack, frame{node: v, neighbors: rowOf(v)})
			case visited:
				// Already fully explored; nothing to do.
			}
		}
	}
	return nil, false
}

// reconstructCycle walks predecessor links backward from u until it
// reaches v, then appends v again to make the loop explicit: [v, ..., u, v].
// v is always an ancestor of u on the active DFS path when the back
// edge u->v is seen, so the walk terminates. A self-loop (u == v)
// skips the walk entirely and yields [u, u].
func reconstructCycle(u, v int, predecessor []int) []int {
	path := []int{u}
	for current := u; current != v; {
		current = predecessor[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	path = append(path, v)
	return path
}
