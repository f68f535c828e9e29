package core

import "sort"

// countingSortThreshold is the row length at or above which a row is sorted
// by counting sort over the node-index domain instead of
// a general comparison sort — the domain is bounded (every target is a
// valid node index), so counting sort's O(n + V) beats O(n log n) once
// a row is large enough to amortize the count-array pass.
const countingSortThreshold = 128

// Freeze converts this DynamicGraph into a CsmGraph: a compressed,
// read-optimized snapshot. It is O(V + E) and infallible — there is no
// input state a valid DynamicGraph can be in that Freeze cannot handle.
//
// The source graph is left usable — Go has no by-value ownership
// transfer — but any tombstoned nodes and their dangling edges are
// simply absent from the result: Freeze is also where compaction
// finally happens.
func (g *DynamicGraph[N, W]) Freeze() *CsmGraph[N, W] {
	// Phase 1: compaction and index remapping.
	remap := make([]int, len(g.nodes))
	newNodes := make([]N, 0, len(g.nodes))
	for old, s := range g.nodes {
		if !s.present {
			remap[old] = -1
			continue
		}
		remap[old] = len(newNodes)
		newNodes = append(newNodes, s.value)
	}
	numNew := len(newNodes)

	if numNew == 0 {
		return &CsmGraph[N, W]{
			nodes:    newNodes,
			forward:  csrBlock[W]{offsets: []int{0}},
			backward: csrBlock[W]{offsets: []int{0}},
			hasRoot:  false,
		}
	}

	// Phase 2: edge remapping and degree counting.
	type remappedEdge struct {
		source, target int
		weight         W
	}
	remapped := make([]remappedEdge, 0, g.NumberEdges())
	outDeg := make([]int, numNew)
	inDeg := make([]int, numNew)
	for oldSrc, row := range g.edges {
		newSrc := remap[oldSrc]
		if newSrc < 0 {
			continue
		}
		for _, e := range row {
			newTgt := remap[e.target]
			if newTgt < 0 {
				continue
			}
			remapped = append(remapped, remappedEdge{source: newSrc, target: newTgt, weight: e.weight})
			outDeg[newSrc]++
			inDeg[newTgt]++
		}
	}
	totalEdges := len(remapped)

	// Phase 3: prefix-sum offsets for both directions.
	fwdOffsets := make([]int, numNew+1)
	backOffsets := make([]int, numNew+1)
	for i := 0; i < numNew; i++ {
		fwdOffsets[i+1] = fwdOffsets[i] + outDeg[i]
		backOffsets[i+1] = backOffsets[i] + inDeg[i]
	}

	// Phase 4: single-pass placement using write-head counters seeded
	// from copies of the offsets.
	fwdTargets := make([]int, totalEdges)
	fwdWeights := make([]W, totalEdges)
	backTargets := make([]int, totalEdges)
	backWeights := make([]W, totalEdges)

	fwdHeads := append([]int(nil), fwdOffsets...)
	backHeads := append([]int(nil), backOffsets...)

	for _, e := range remapped {
		fp := fwdHeads[e.source]
		fwdTargets[fp] = e.target
		fwdWeights[fp] = e.weight
		fwdHeads[e.source]++

		bp := backHeads[e.target]
		backTargets[bp] = e.source
		backWeights[bp] = e.weight
		backHeads[e.target]++
	}

	// Phase 5: per-row sort ascending by partner index.
	sortCSRRows(fwdOffsets, fwdTargets, fwdWeights, numNew)
	sortCSRRows(backOffsets, backTargets, backWeights, numNew)

	// Phase 6: remap the root index, if any.
	newRootIndex, hasRoot := 0, false
	if g.hasRoot {
		if mapped := remap[g.rootIndex]; mapped >= 0 {
			newRootIndex, hasRoot = mapped, true
		}
	}

	return &CsmGraph[N, W]{
		nodes:     newNodes,
		forward:   csrBlock[W]{offsets: fwdOffsets, targets: fwdTargets, weights: fwdWeights},
		backward:  csrBlock[W]{offsets: backOffsets, targets: backTargets, weights: backWeights},
		rootIndex: newRootIndex,
		hasRoot:   hasRoot,
	}
}

// sortCSRRows sorts each row of a CSR block ascending by partner index,
// keeping the parallel weights slice in lockstep. Rows below
// countingSortThreshold use a comparison sort; rows of that length or
// longer use counting sort over the node-index domain [0, numNodes).
func sortCSRRows[W any](offsets, targets []int, weights []W, numNodes int) {
	for i := 0; i < numNodes; i++ {
		start, end := offsets[i], offsets[i+1]
		n := end - start
		if n < 2 {
			continue
		}
		rowTargets := targets[start:end]
		rowWeights := weights[start:end]
		if n < countingSortThreshold {
			sortRowByComparison(rowTargets, rowWeights)
		} else {
			sortRowByCounting(rowTargets, rowWeights, numNodes)
		}
	}
}

// sortRowByComparison sorts a small row with sort.Sort over an index
// permutation, swapping both slices in lockstep.
func sortRowByComparison[W any](targets []int, weights []W) {
	sort.Sort(&pairSorter[W]{targets: targets, weights: weights})
}

type pairSorter[W any] struct {
	targets []int
	weights []W
}

func (p *pairSorter[W]) Len() int           { return len(p.targets) }
func (p *pairSorter[W]) Less(i, j int) bool { return p.targets[i] < p.targets[j] }
func (p *pairSorter[W]) Swap(i, j int) {
	p.targets[i], p.targets[j] = p.targets[j], p.targets[i]
	p.weights[i], p.weights[j] = p.weights[j], p.weights[i]
}

// sortRowByCounting sorts a large row in O(n + numNodes) by counting
// occurrences of each target value, then scattering into place. It
// allocates one []int and one []W of length n as scratch, reused
// nowhere else — still cheaper than an n log n comparison sort once n
// is large relative to numNodes.
func sortRowByCounting[W any](targets []int, weights []W, numNodes int) {
	counts := make([]int, numNodes+1)
	for _, t := range targets {
		counts[t+1]++
	}
	for i := 1; i < len(counts); i++ {
		counts[i] += counts[i-1]
	}

	sortedTargets := make([]int, len(targets))
	sortedWeights := make([]W, len(weights))
	cursor := append([]int(nil), counts...)
	for i, t := range targets {
		pos := cursor[t]
		sortedTargets[pos] = t
		sortedWeights[pos] = weights[i]
		cursor[t]++
	}
	copy(targets, sortedTargets)
	copy(weights, sortedWeights)
}
