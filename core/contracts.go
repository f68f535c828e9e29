package core

import "iter"

// GraphView is the read-only capability surface shared by DynamicGraph
// and CsmGraph: node/edge inspection and root-node inspection.
type GraphView[N, W any] interface {
	// IsFrozen reports whether this form is the read-optimized CsmGraph.
	IsFrozen() bool

	ContainsNode(index int) bool
	GetNode(index int) (N, bool)
	NumberNodes() int

	ContainsEdge(a, b int) bool
	NumberEdges() int
	// GetEdges returns the outgoing (target, weight) pairs of src in
	// stored order, or ok=false if src is out of range.
	GetEdges(src int) ([]EdgeRef[W], bool)

	ContainsRootNode() bool
	GetRootNode() (N, bool)
	GetRootIndex() (int, bool)
}

// EdgeRef pairs a target index with a reference to its edge weight.
// Keeping it a small value struct (rather than a pointer pair) avoids
// an allocation per edge when GetEdges materializes a row.
type EdgeRef[W any] struct {
	Target int
	Weight *W
}

// GraphMutate is the capability surface exposed only by DynamicGraph.
type GraphMutate[N, W any] interface {
	AddNode(payload N) int
	UpdateNode(index int, payload N) error
	AddEdge(a, b int, weight W) error
	RemoveEdge(a, b int) error
	RemoveNode(index int) error
	AddRootNode(payload N) int
	Clear()
}

// GraphTraverse is the capability surface exposed only by CsmGraph: two
// lazy, non-allocating index sequences over a node's forward/backward
// CSR row.
type GraphTraverse[N, W any] interface {
	OutboundEdges(a int) (iter.Seq[int], error)
	InboundEdges(a int) (iter.Seq[int], error)
}
