package algopar

import (
	"sync"
	"sync/atomic"

	"github.com/arborio-graphs/nextgraph/core"
)

// FindNodePar is the parallel counterpart of core's FindNode: it scans
// every node's payload with pred concurrently across p's workers and
// returns the lowest-index match, the same result a sequential left-to-
// right scan would find, even though the scan itself is unordered.
func FindNodePar[N, W any](p *Pool, g *core.CsmGraph[N, W], pred func(index int, payload N) bool) (int, N, bool) {
	numNodes := g.NumberNodes()
	var (
		mu       sync.Mutex
		bestIdx  = -1
		best     N
		anyFound atomic.Bool
	)

	_ = p.forEach(numNodes, func(i int) error {
		payload, ok := g.GetNode(i)
		if !ok || !pred(i, payload) {
			return nil
		}
		anyFound.Store(true)
		mu.Lock()
		if bestIdx == -1 || i < bestIdx {
			bestIdx = i
			best = payload
		}
		mu.Unlock()
		return nil
	})

	if !anyFound.Load() {
		var zero N
		return 0, zero, false
	}
	return bestIdx, best, true
}
