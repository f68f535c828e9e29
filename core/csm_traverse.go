package core

import "iter"

// OutboundEdges returns a lazy, non-allocating sequence over a's direct
// successors in sorted order, or an error if a is out of range.
func (g *CsmGraph[N, W]) OutboundEdges(a int) (iter.Seq[int], error) {
	if !g.ContainsNode(a) {
		return nil, NewNodeNotFound(a)
	}
	targets, _ := g.forward.row(a)
	return func(yield func(int) bool) {
		for _, t := range targets {
			if !yield(t) {
				return
			}
		}
	}, nil
}

// InboundEdges returns a lazy, non-allocating sequence over a's direct
// predecessors in sorted order, or an error if a is out of range.
func (g *CsmGraph[N, W]) InboundEdges(a int) (iter.Seq[int], error) {
	if !g.ContainsNode(a) {
		return nil, NewNodeNotFound(a)
	}
	sources, _ := g.backward.row(a)
	return func(yield func(int) bool) {
		for _, s := range sources {
			if !yield(s) {
				return
			}
		}
	}, nil
}
