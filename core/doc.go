// Package core provides a two-phase, generic, in-memory directed graph:
//
//   - DynamicGraph[N, W] — a mutation-optimized adjacency-list form with
//     tombstone-based node removal.
//   - CsmGraph[N, W]     — a read-optimized, immutable Compressed Sparse
//     Row (CSR) form with both forward and backward adjacency, sorted
//     per-node for binary-searchable edge lookup.
//
// The two forms are connected by an explicit, infallible phase
// transition: Freeze compacts tombstones, renumbers nodes, and builds
// the CSR layout in a single O(V+E) pass; Unfreeze is its inverse.
//
// Nodes are identified by dense nonnegative integer indices. A node
// carries a payload of type N; an edge carries a weight of type W.
// Parallel edges are permitted and are preserved as a bag through
// Freeze/Unfreeze — relative order among parallel edges for the same
// (source, target) pair is not guaranteed.
//
// DynamicGraph is not safe for concurrent mutation: callers owning a
// *DynamicGraph[N, W] must serialize their own access. CsmGraph is
// immutable after construction and safe for concurrent readers without
// any synchronization, which is what lets the algo and algopar packages
// query it from multiple goroutines.
package core
