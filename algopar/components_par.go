package algopar

import (
	"sync/atomic"

	"github.com/arborio-graphs/nextgraph/core"
)

// WeaklyConnectedComponentsPar is the parallel counterpart of
// algo.WeaklyConnectedComponents: each component's BFS frontier expands
// across p's workers the same way ShortestPathLenPar's does, using an
// atomic.Bool.CompareAndSwap claim per node. Components themselves are
// still discovered sequentially, root by root, since the set of
// unvisited roots shrinks as each component finishes and a parallel
// scan for the next root would race against components still running.
func WeaklyConnectedComponentsPar[N, W any](p *Pool, g *core.CsmGraph[N, W]) [][]int {
	numNodes := g.NumberNodes()
	visited := make([]atomic.Bool, numNodes)
	var components [][]int

	for start := 0; start < numNodes; start++ {
		if !visited[start].CompareAndSwap(false, true) {
			continue
		}
		component := []int{start}
		frontier := []int{start}

		for len(frontier) > 0 {
			discovered := make([][]int, len(frontier))
			_ = p.forEach(len(frontier), func(i int) error {
				u := frontier[i]
				var local []int
				for _, v := range undirectedNeighborsPar(g, u) {
					if visited[v].CompareAndSwap(false, true) {
						local = append(local, v)
					}
				}
				discovered[i] = local
				return nil
			})

			var next []int
			for _, local := range discovered {
				next = append(next, local...)
				component = append(component, local...)
			}
			frontier = next
		}
		components = append(components, component)
	}
	return components
}

func undirectedNeighborsPar[N, W any](g *core.CsmGraph[N, W], node int) []int {
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
