package algopar

import (
	"sync/atomic"

	"github.com/arborio-graphs/nextgraph/core"
)

// IsReachablePar is the parallel counterpart of algo.IsReachable.
func IsReachablePar[N, W any](p *Pool, g *core.CsmGraph[N, W], start, stop int) bool {
	_, ok := ShortestPathLenPar(p, g, start, stop)
	return ok
}

// ShortestPathLenPar computes the same hop-based length as
// algo.ShortestPathLen, but expands each BFS frontier in parallel.
// Discovery uses atomic.Bool.CompareAndSwap as a claim: whichever
// goroutine's CAS first flips a node's visited flag from false to true
// is the one that adds it to the next frontier, so each node is
// discovered by exactly one goroutine even though many may race to
// discover it at once.
func ShortestPathLenPar[N, W any](p *Pool, g *core.CsmGraph[N, W], start, stop int) (int, bool) {
	if !g.ContainsNode(start) || !g.ContainsNode(stop) {
		return 0, false
	}
	if start == stop {
		return 1, true
	}

	numNodes := g.NumberNodes()
	visited := make([]atomic.Bool, numNodes)
	visited[start].Store(true)

	frontier := []int{start}
	length := 1

	for len(frontier) > 0 {
		length++

		discovered := make([][]int, len(frontier))
		_ = p.forEach(len(frontier), func(i int) error {
			u := frontier[i]
			var local []int
			seq, err := g.OutboundEdges(u)
			if err != nil {
				return nil
			}
			for v := range seq {
				if visited[v].CompareAndSwap(false, true) {
					local = append(local, v)
				}
			}
			discovered[i] = local
			return nil
		})

		var next []int
		for _, local := range discovered {
			for _, v := range local {
				if v == stop {
					return length, true
				}
				next = append(next, v)
			}
		}
		frontier = next
	}
	return 0, false
}

// unclaimed marks a predecessor slot no discoverer has won yet. Node
// indices are nonnegative, so -1 can never collide with a real one.
const unclaimed = -1

// ShortestPathPar is the parallel counterpart of algo.ShortestPath.
// The per-node predecessor slot doubles as the visited flag: each slot
// starts at the unclaimed sentinel, and discovery is a single
// CompareAndSwap from the sentinel to the discoverer's own index.
// Whichever goroutine wins that race owns the node; every loser backs
// off without writing. Once stop is claimed, a shared found flag lets
// the remaining tasks of the level return early, and the level barrier
// after it ends the search.
//
// The returned path is a shortest path, but not a deterministic one:
// when several same-level discoverers race for a node, any of them may
// win, so equally short paths can differ between runs. The length is
// deterministic regardless.
func ShortestPathPar[N, W any](p *Pool, g *core.CsmGraph[N, W], start, stop int) ([]int, bool) {
	if !g.ContainsNode(start) || !g.ContainsNode(stop) {
		return nil, false
	}
	if start == stop {
		return []int{start}, true
	}

	numNodes := g.NumberNodes()
	predecessors := make([]atomic.Int64, numNodes)
	for i := range predecessors {
		predecessors[i].Store(unclaimed)
	}
	// The start node claims itself so no level can re-discover it.
	predecessors[start].Store(int64(start))

	frontier := []int{start}
	var found atomic.Bool

	for len(frontier) > 0 && !found.Load() {
		discovered := make([][]int, len(frontier))
		_ = p.forEach(len(frontier), func(i int) error {
			if found.Load() {
				return nil
			}
			u := frontier[i]
			var local []int
			seq, err := g.OutboundEdges(u)
			if err != nil {
				return nil
			}
			for v := range seq {
				if predecessors[v].CompareAndSwap(unclaimed, int64(u)) {
					local = append(local, v)
					if v == stop {
						found.Store(true)
					}
				}
			}
			discovered[i] = local
			return nil
		})

		var next []int
		for _, local := range discovered {
			next = append(next, local...)
		}
		frontier = next
	}

	if !found.Load() {
		return nil, false
	}

	var path []int
	current := stop
	for {
		path = append(path, current)
		if current == start {
			break
		}
		current = int(predecessors[current].Load())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
