package algopar

import (
	"sort"
	"sync/atomic"

	"github.com/arborio-graphs/nextgraph/core"
)

// TopologicalSortPar computes a topological order the same way
// algo.TopologicalSort does, but expands each Kahn frontier in
// parallel: in-degree decrements use atomic.Int64.Add so concurrent
// writers from the same level never race, and a node is only ever
// added to the next frontier by whichever goroutine's decrement drove
// its in-degree to exactly zero. Each frontier is sorted ascending
// before it is emitted into the output, so the resulting order is
// fully deterministic even though the per-level expansion is not.
func TopologicalSortPar[N, W any](p *Pool, g *core.CsmGraph[N, W]) ([]int, bool) {
	numNodes := g.NumberNodes()
	if numNodes == 0 {
		return []int{}, true
	}

	inDegree := make([]atomic.Int64, numNodes)
	for i := 0; i < numNodes; i++ {
		if seq, err := g.OutboundEdges(i); err == nil {
			for v := range seq {
				inDegree[v].Add(1)
			}
		}
	}

	var frontier []int
	for i := 0; i < numNodes; i++ {
		if inDegree[i].Load() == 0 {
			frontier = append(frontier, i)
		}
	}

	sorted := make([]int, 0, numNodes)
	for len(frontier) > 0 {
		sort.Ints(frontier)
		sorted = append(sorted, frontier...)

		discovered := make([][]int, len(frontier))
		_ = p.forEach(len(frontier), func(i int) error {
			u := frontier[i]
			var local []int
			seq, err := g.OutboundEdges(u)
			if err != nil {
				return nil
			}
			for v := range seq {
				if inDegree[v].Add(-1) == 0 {
					local = append(local, v)
				}
			}
			discovered[i] = local
			return nil
		})

		frontier = frontier[:0]
		for _, local := range discovered {
			frontier = append(frontier, local...)
		}
	}

	if len(sorted) != numNodes {
		return nil, false
	}
	return sorted, true
}
