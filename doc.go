// Package nextgraph (github.com/arborio-graphs/nextgraph) is an
// in-memory, generic, directed graph library built around an explicit
// two-phase lifecycle:
//
//   - core.DynamicGraph[N, W] — cheap to mutate, tombstones removed
//     nodes instead of shifting indices.
//   - core.CsmGraph[N, W]     — built once by Freeze, read-only
//     Compressed Sparse Row form with O(log degree) edge lookups and
//     both forward and backward traversal.
//
// core.DynamicGraph.Freeze and core.CsmGraph.Unfreeze move between the
// two forms in a single O(V+E) pass. Package algo implements sequential
// analysis over a frozen graph: reachability, shortest path by hop
// count, topological sort, cycle detection, and weakly connected
// components. Package algopar provides level-synchronous, goroutine-
// parallel counterparts of reachability, shortest path, topological
// sort and weakly connected components behind a worker Pool; it has no
// parallel cycle detection.
package nextgraph
