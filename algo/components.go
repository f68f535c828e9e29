package algo

import "github.com/arborio-graphs/nextgraph/core"

// WeaklyConnectedComponents partitions every node into the set of nodes
// reachable from it while treating all edges as undirected — a node
// that is only reachable by following an edge "backward" still lands
// in the same component as its neighbor. Each returned slice is one
// component, in no particular order; every node index appears exactly
// once across all of them.
func WeaklyConnectedComponents[N, W any](g *core.CsmGraph[N, W]) [][]int {
	numNodes := g.NumberNodes()
	visited := make([]bool, numNodes)
	var components [][]int

	for start := 0; start < numNodes; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue := []int{start}
		component := []int{start}

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			for _, neighbor := range undirectedNeighbors(g, current) {
				if visited[neighbor] {
					continue
				}
				visited[neighbor] = true
				queue = append(queue, neighbor)
				component = append(component, neighbor)
			}
		}
		components = append(components, component)
	}
	return components
}

// undirectedNeighbors concatenates a node's outbound and inbound
// neighbors, the edges-as-undirected view every weakly-connected sweep
// needs.
func undirectedNeighbors[N, W any](g *core.CsmGraph[N, W], node int) []int {
	var neighbors []int
	if seq, err := g.OutboundEdges(node); err == nil {
		for v := range seq {
			neighbors = append(neighbors, v)
		}
	}
	if seq, err := g.InboundEdges(node); err == nil {
		for v := range seq {
			neighbors = append(neighbors, v)
		}
	}
	return neighbors
}
