package core

// Stats is a read-only snapshot of a graph's size, computed from any
// GraphView. It is computed on demand by CollectStats and is never
// stored on the graph itself.
type Stats struct {
	NumberNodes int
	NumberEdges int
	HasRoot     bool
}

// CollectStats computes a Stats snapshot from any GraphView.
func CollectStats[N, W any](g GraphView[N, W]) Stats {
	return Stats{
		NumberNodes: g.NumberNodes(),
		NumberEdges: g.NumberEdges(),
		HasRoot:     g.ContainsRootNode(),
	}
}
