package core

// csrBlock is one direction of a CsmGraph's Compressed Sparse Row layout:
// offsets has length numberNodes()+1, and row i's neighbors live at
// targets[offsets[i]:offsets[i+1]] with parallel weights at the same
// slice of weights. Keeping targets and weights as separate slices
// (struct-of-arrays) instead of a slice of (target, weight) pairs lets
// ContainsEdge's binary search scan a pure []int with no weight-sized
// stride between comparisons.
type csrBlock[W any] struct {
	offsets []int
	targets []int
	weights []W
}

// row returns block i's target/weight slices.
func (b csrBlock[W]) row(i int) ([]int, []W) {
	start, end := b.offsets[i], b.offsets[i+1]
	return b.targets[start:end], b.weights[start:end]
}

// binarySearchThreshold is the row length at which ContainsEdge switches
// from a linear scan to a binary search. Below it, linear scan wins on
// cache locality; at or above it, binary search's O(log n) wins.
const binarySearchThreshold = 64

// CsmGraph is the frozen, read-optimized form of the graph: a
// Compressed Sparse Row layout built once by Freeze. It never changes
// after construction, so concurrent reads from multiple goroutines
// (including every algopar algorithm) are safe without locking.
type CsmGraph[N, W any] struct {
	nodes     []N
	forward   csrBlock[W]
	backward  csrBlock[W]
	rootIndex int
	hasRoot   bool
}
