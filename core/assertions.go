package core

var (
	_ GraphView[int, int]     = (*DynamicGraph[int, int])(nil)
	_ GraphMutate[int, int]   = (*DynamicGraph[int, int])(nil)
	_ GraphView[int, int]     = (*CsmGraph[int, int])(nil)
	_ GraphTraverse[int, int] = (*CsmGraph[int, int])(nil)
)
