// Package graphgen builds small, deterministic random graphs for tests:
// a seeded random DAG and a seeded random general digraph. It is not
// part of the public API.
package graphgen

import (
	"math/rand"

	"github.com/arborio-graphs/nextgraph/core"
)

// RandomDAG builds a DynamicGraph[int, int] with numNodes nodes, each
// holding its own index as payload, and up to numEdges edges. Every
// edge goes from a lower-indexed node to a higher-indexed one, which
// guarantees the result is acyclic regardless of which edges land.
// Determinism: the same seed, numNodes, and numEdges always produce the
// same graph.
func RandomDAG(numNodes, numEdges int, seed int64) *core.DynamicGraph[int, int] {
	rng := rand.New(rand.NewSource(seed))
	g := core.NewDynamicGraph[int, int](core.WithNodeCapacity(numNodes))
	for i := 0; i < numNodes; i++ {
		g.AddNode(i)
	}
	if numNodes < 2 {
		return g
	}
	for i := 0; i < numEdges; i++ {
		a := rng.Intn(numNodes - 1)
		b := a + 1 + rng.Intn(numNodes-a-1)
		_ = g.AddEdge(a, b, rng.Intn(100))
	}
	return g
}

// RandomDigraph builds a DynamicGraph[int, int] with numNodes nodes and
// up to numEdges edges between uniformly random endpoints, including
// self-loops and parallel edges — unlike RandomDAG, the result may
// contain cycles.
func RandomDigraph(numNodes, numEdges int, seed int64) *core.DynamicGraph[int, int] {
	rng := rand.New(rand.NewSource(seed))
	g := core.NewDynamicGraph[int, int](core.WithNodeCapacity(numNodes))
	for i := 0; i < numNodes; i++ {
		g.AddNode(i)
	}
	if numNodes == 0 {
		return g
	}
	for i := 0; i < numEdges; i++ {
		a := rng.Intn(numNodes)
		b := rng.Intn(numNodes)
		_ = g.AddEdge(a, b, rng.Intn(100))
	}
	return g
}
