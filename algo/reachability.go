package algo

import "github.com/arborio-graphs/nextgraph/core"

// IsReachable reports whether stop is reachable from start by following
// outbound edges, including the trivial case start == stop.
func IsReachable[N, W any](g *core.CsmGraph[N, W], start, stop int) bool {
	_, ok := ShortestPathLen(g, start, stop)
	return ok
}

// ShortestPathLen returns the length, in nodes, of the shortest path
// from start to stop via a plain BFS. "Length in nodes" means a direct
// edge has length 2, and start == stop has length 1 — this is a hop
// count plus one, not a hop count. Returns ok=false if either index is
// out of range or stop is unreachable from start.
func ShortestPathLen[N, W any](g *core.CsmGraph[N, W], start, stop int) (int, bool) {
	if !g.ContainsNode(start) || !g.ContainsNode(stop) {
		return 0, false
	}
	if start == stop {
		return 1, true
	}

	type frontierNode struct {
		index  int
		length int
	}
	queue := []frontierNode{{index: start, length: 1}}
	visited := make([]bool, g.NumberNodes())
	visited[start] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		seq, err := g.OutboundEdges(current.index)
		if err != nil {
			continue
		}
		for neighbor := range seq {
			if neighbor == stop {
				return current.length + 1, true
			}
			if !visited[neighbor] {
				visited[neighbor] = true
				queue = append(queue, frontierNode{index: neighbor, length: current.length + 1})
			}
		}
	}
	return 0, false
}

// ShortestPath returns the full node-index path from start to stop,
// inclusive of both endpoints, or ok=false if no path exists.
func ShortestPath[N, W any](g *core.CsmGraph[N, W], start, stop int) ([]int, bool) {
	if !g.ContainsNode(start) || !g.ContainsNode(stop) {
		return nil, false
	}
	if start == stop {
		return []int{start}, true
	}

	numNodes := g.NumberNodes()
	predecessors := make([]int, numNodes)
	visited := make([]bool, numNodes)

	queue := []int{start}
	visited[start] = true
	found := false

loop:
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		seq, err := g.OutboundEdges(current)
		if err != nil {
			continue
		}
		for neighbor := range seq {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			predecessors[neighbor] = current
			queue = append(queue, neighbor)
			if neighbor == stop {
				found = true
				break loop
			}
		}
	}

	if !found {
		return nil, false
	}

	var path []int
	current := stop
	for {
		path = append(path, current)
		if current == start {
			break
		}
		current = predecessors[current]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
