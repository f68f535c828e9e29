// Package algo provides sequential, single-goroutine analysis
// algorithms over a frozen *core.CsmGraph: reachability, shortest path
// by hop count, topological sort, cycle detection, and weakly connected
// components. Every algorithm here operates through the CsmGraph's
// public GraphView/GraphTraverse surface — none of it reaches into the
// CSR internals directly, that's what core itself is for.
//
// All of these are O(V + E) and none of them mutate the graph, so it is
// always safe to run several of them over the same *core.CsmGraph
// concurrently from different goroutines.
package algo
