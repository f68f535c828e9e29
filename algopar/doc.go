// Package algopar provides level-synchronous, data-parallel
// counterparts of the sequential analysis algorithms in package algo:
// TopologicalSortPar, IsReachablePar, ShortestPathLenPar,
// ShortestPathPar, FindNodePar, and WeaklyConnectedComponentsPar.
//
// Each algorithm processes one BFS/Kahn frontier at a time, fanning the
// frontier's work out across a bounded Pool of goroutines and joining
// before advancing to the next frontier — the same shape as the
// sequential version, just with each level's work parallelized. Shared
// per-node state (visited flags, in-degrees, predecessors) lives in
// slices of sync/atomic values, each cell moving only one way (false to
// true, a count down to zero, the unclaimed sentinel to an index). No
// other locking is used: nothing reads a slot that a later level wrote
// without first crossing the errgroup.Group.Wait that ends the level
// that wrote it.
//
// These are worth reaching for only on large, wide graphs where the
// per-level fan-out amortizes its own synchronization cost; on small
// graphs, package algo's sequential versions will generally be faster.
package algopar
