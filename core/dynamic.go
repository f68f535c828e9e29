package core

// edgeEntry is one outgoing edge stored in a DynamicGraph adjacency row:
// the target node index and its weight.
type edgeEntry[W any] struct {
	target int
	weight W
}

// slot holds a node payload that may have been tombstoned. A struct
// with a presence flag, rather than a pointer or an optional-value
// wrapper, avoids an allocation per node for value-typed N.
type slot[N any] struct {
	value   N
	present bool
}

// DynamicGraph is the evolutionary, mutation-optimized form of the graph.
// Node removal tombstones a slot (nodes[i] becomes "absent") rather than
// shifting indices, so every other node's index stays stable across
// mutation. Edge rows are plain slices in insertion order — no sorting,
// no CSR — which is what makes mutation cheap and Freeze's job real work.
//
// DynamicGraph carries no internal lock. Concurrent mutation is out of
// scope; callers that need it must synchronize externally.
type DynamicGraph[N, W any] struct {
	nodes         []slot[N]
	edges         [][]edgeEntry[W]
	rootIndex     int
	hasRoot       bool
	outDegreeHint int
}

// NewDynamicGraph builds an empty DynamicGraph, optionally pre-sized by
// capacity hints. Construction never fails: a negative hint is clamped
// to zero rather than rejected.
func NewDynamicGraph[N, W any](opts ...ConstructOption) *DynamicGraph[N, W] {
	o := resolveConstructOptions(opts)
	return &DynamicGraph[N, W]{
		nodes:         make([]slot[N], 0, o.NodeCapacity),
		edges:         make([][]edgeEntry[W], 0, o.NodeCapacity),
		hasRoot:       false,
		outDegreeHint: o.OutDegreeHint,
	}
}

// Tuple is the external, owned-weight representation of one edge, used
// by FromParts/ToParts. EdgeRef (core's read-path type) carries a
// pointer instead, since GetEdges must not copy a caller's weight type
// on every call.
type Tuple[W any] struct {
	Target int
	Weight W
}

// FromParts rebuilds a DynamicGraph from a prior ToParts dump. nodes and
// edges must have equal length; every edge target must be in range. Both
// are programmer-error conditions and panic rather than returning an
// error: this constructor is for round-tripping trusted data, not for
// parsing untrusted input.
func FromParts[N, W any](nodes []N, present []bool, edges [][]Tuple[W], rootIndex int, hasRoot bool) *DynamicGraph[N, W] {
	if len(nodes) != len(edges) || len(nodes) != len(present) {
		panic("core: FromParts: nodes, present and edges length mismatch")
	}
	for _, row := range edges {
		for _, e := range row {
			if e.Target < 0 || e.Target >= len(nodes) {
				panic("core: FromParts: edge target out of range")
			}
		}
	}
	if hasRoot && (rootIndex < 0 || rootIndex >= len(nodes)) {
		panic("core: FromParts: root index out of range")
	}

	g := &DynamicGraph[N, W]{
		nodes:     make([]slot[N], len(nodes)),
		edges:     make([][]edgeEntry[W], len(edges)),
		rootIndex: rootIndex,
		hasRoot:   hasRoot,
	}
	for i, n := range nodes {
		g.nodes[i] = slot[N]{value: n, present: present[i]}
	}
	for i, row := range edges {
		r := make([]edgeEntry[W], len(row))
		for j, e := range row {
			r[j] = edgeEntry[W]{target: e.Target, weight: e.Weight}
		}
		g.edges[i] = r
	}
	return g
}

// ToParts dumps a DynamicGraph into the same shape FromParts consumes:
// nodes, a presence mask, edge rows, and the root designation.
func (g *DynamicGraph[N, W]) ToParts() (nodes []N, present []bool, edges [][]Tuple[W], rootIndex int, hasRoot bool) {
	nodes = make([]N, len(g.nodes))
	present = make([]bool, len(g.nodes))
	for i, s := range g.nodes {
		nodes[i] = s.value
		present[i] = s.present
	}
	edges = make([][]Tuple[W], len(g.edges))
	for i, row := range g.edges {
		r := make([]Tuple[W], len(row))
		for j, e := range row {
			r[j] = Tuple[W]{Target: e.target, Weight: e.weight}
		}
		edges[i] = r
	}
	return nodes, present, edges, g.rootIndex, g.hasRoot
}
