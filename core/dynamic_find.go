package core

// FindNode scans live nodes in index order and returns the first one
// pred accepts. It is a pure GraphView query, so it lives on both
// DynamicGraph and CsmGraph rather than only on the mutable form.
func (g *DynamicGraph[N, W]) FindNode(pred func(index int, payload N) bool) (int, N, bool) {
	for i, s := range g.nodes {
		if s.present && pred(i, s.value) {
			return i, s.value, true
		}
	}
	var zero N
	return 0, zero, false
}
