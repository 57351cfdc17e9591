package rds

import (
	"github.com/plan-systems/klog"
)

// generalise discovers a pattern for one path jointly with new equivalence
// classes, in three stages: bootstrap each context window against existing
// classes, generalize every interior slot of each boosted window, and run
// the significance search over each surviving candidate. The winning
// (pattern, candidate) pair commits its slot substitutions and rewires the
// pattern range. Reports whether a pattern was found.
func (g *Graph) generalise(path SearchPath, params Params) bool {
	// BOOTSTRAPPING STAGE. Candidate 0 is always the unmodified path.
	boostedContexts := []Range{{Start: 0, End: 0}}
	boostedPaths := []SearchPath{path}
	encounteredECs := [][]EquivalenceClass{make([]EquivalenceClass, params.ContextSize-2)}

	for i := 0; i+params.ContextSize-1 < len(path); i++ {
		context := Range{Start: i, End: i + params.ContextSize - 1}
		boostedPart, encountered := g.bootstrap(path.Slice(context.Start, context.End), params.OverlapThreshold)

		boostedContexts = append(boostedContexts, context)
		boostedPaths = append(boostedPaths, path.Substitute(context.Start, context.End, boostedPart))
		encounteredECs = append(encounteredECs, encountered)
	}

	// GENERALISATION STAGE: for every boosted window, try each interior
	// slot. A slot whose computed class has more than one member is replaced
	// by a matching existing class, or by the brand-new-class sentinel
	// (an index one past the arena) when none matches.
	general2boost := []int{0}
	generalSlots := []int{0}
	generalPaths := []SearchPath{path}
	generalECs := []EquivalenceClass{nil}

	for i := 1; i < len(boostedPaths); i++ {
		contextStart := boostedContexts[i].Start
		contextFinish := boostedContexts[i].End
		boostedPart := boostedPaths[i].Slice(contextStart, contextFinish)

		firstForBoost := len(generalPaths)
		for j := 1; j < params.ContextSize-1; j++ {
			ec := g.computeEquivalenceClass(boostedPart, j)

			generalPath := append(SearchPath(nil), boostedPaths[i]...)
			if len(ec) > 1 {
				generalPath[contextStart+j] = g.findExistingEquivalenceClass(ec)
			}

			// A candidate identical to the original path has nothing new to
			// test; neither does a duplicate of one already queued for this
			// boosted window.
			if generalPath.Equal(path) {
				continue
			}
			repeated := false
			for k := firstForBoost; k < len(generalPaths); k++ {
				if generalPath.Equal(generalPaths[k]) {
					repeated = true
					break
				}
			}
			if repeated {
				continue
			}

			general2boost = append(general2boost, i)
			generalSlots = append(generalSlots, contextStart+j)
			generalPaths = append(generalPaths, generalPath)
			generalECs = append(generalECs, ec)
		}
	}
	klog.V(2).Infof("rds: generalise testing %d candidate paths", len(generalPaths))

	// DISTILLATION STAGE: significance-search every candidate. A candidate
	// whose generalized slot holds the sentinel is simulated on a throwaway
	// clone carrying the tentative new class.
	var allPatterns []Range
	var allPvalues []Significance
	var pattern2general []int

	for i := range generalPaths {
		slot := generalSlots[i]

		var connections ConnectionMatrix
		if generalPaths[i][slot] >= len(g.nodes) {
			sim := g.Clone()
			sim.rewireNewClass(nil, generalECs[i])
			connections = sim.ConnectionMatrix(generalPaths[i])
		} else {
			connections = g.ConnectionMatrix(generalPaths[i])
		}

		flows, descents := g.descentsMatrix(connections)
		somePatterns, somePvalues, ok := g.findSignificantPatterns(connections, flows, descents, params.Eta, params.Alpha)
		if !ok {
			continue
		}

		for j := range somePatterns {
			// A brand-new class is only worth committing when the discovered
			// pattern actually contains the generalized slot.
			if generalPaths[i][slot] >= len(g.nodes) &&
				(slot < somePatterns[j].Start || slot > somePatterns[j].End) {
				continue
			}

			allPatterns = append(allPatterns, somePatterns[j])
			allPvalues = append(allPvalues, somePvalues[j])
			pattern2general = append(pattern2general, i)
		}
	}

	// Pick the single most significant accepted pair; first found wins ties.
	bestFound := false
	bestIndex := 0
	for i := range allPatterns {
		if bestFound && !allPvalues[i].less(allPvalues[bestIndex]) {
			continue
		}
		bestFound = true
		bestIndex = i
	}
	if !bestFound {
		return false
	}
	klog.V(2).Infof("rds: generalise accepted %d patterns", len(allPatterns))

	bestPattern := allPatterns[bestIndex]
	bestGeneral := pattern2general[bestIndex]
	bestPath := append(SearchPath(nil), generalPaths[bestGeneral]...)
	bestEC := generalECs[bestGeneral]
	bestBoost := general2boost[bestGeneral]
	bestContext := boostedContexts[bestBoost]
	bestEncountered := encounteredECs[bestBoost]

	// REWIRING STAGE: commit slot substitutions inside the overlap of the
	// winning pattern and its context window, then rewire the pattern range.
	oldNumNodes := len(g.nodes)
	searchStart := max(bestPattern.Start, bestContext.Start)
	searchFinish := min(bestPattern.End, bestContext.End)

	for i := searchStart; i <= searchFinish; i++ {
		if bestPath[i] >= oldNumNodes {
			// A new class was discovered at this slot.
			bestPath[i] = g.rewireNewClass(nil, bestEC)
		} else if bestPath[i] != path[i] {
			// The slot was boosted from an existing class. If the encountered
			// members only partially overlap it, commit a new, narrower class
			// instead of mutating the existing one.
			localSlot := i - (bestContext.Start + 1)
			existing := g.nodes[bestPath[i]].Class()
			overlap := bestEncountered[localSlot].Overlap(existing)

			if float64(len(overlap))/float64(len(existing)) < 1.0 {
				klog.V(2).Infof("rds: generalise committing narrowed class %v", overlap)
				bestPath[i] = g.rewireNewClass(nil, overlap)
			}
		}
	}

	bestConnections := g.ConnectionMatrix(bestPath)
	toRewire := g.rewirableConnections(bestConnections, bestPattern)
	g.rewirePattern(toRewire, NewSignificantPattern(bestPath.Slice(bestPattern.Start, bestPattern.End)))
	klog.V(2).Infof("rds: generalise rewired %d occurrences", len(toRewire))

	return true
}

// bootstrap slides one context window against the corpus: it finds every
// occurrence matching the window's first and last node, collects the class
// of literal values seen at each interior slot, and substitutes each slot
// with the best-overlapping pre-existing class above the threshold (best =
// highest overlap ratio; absence leaves the literal value). Returns the
// boosted window and the per-slot encountered classes.
func (g *Graph) bootstrap(window SearchPath, overlapThreshold float64) (SearchPath, []EquivalenceClass) {
	last := len(window) - 1
	cons := g.filterConnections(g.allNodeConnections(window[0]), last, window.Slice(last, last))

	encountered := make([]EquivalenceClass, 0, last-1)
	for i := 1; i < last; i++ {
		var ec EquivalenceClass
		for _, con := range cons {
			ec.Add(g.paths[con.Path][con.Pos+i])
		}
		encountered = append(encountered, ec)
	}

	overlapECs := window.Slice(1, last-1)
	overlapRatios := make([]float64, last-1)

	boosted := append(SearchPath(nil), window...)
	for i := range encountered {
		for j := range g.nodes {
			if g.nodes[j].Type != LexClass {
				continue
			}
			class := g.nodes[j].Class()
			overlap := float64(len(encountered[i].Overlap(class))) / float64(len(class))
			if overlap > overlapRatios[i] && overlap > overlapThreshold {
				overlapECs[i] = j
				overlapRatios[i] = overlap
			}
		}
		boosted[i+1] = overlapECs[i]
	}

	return boosted, encountered
}

// findExistingEquivalenceClass returns the index of the first existing class
// node that is a subset of ec, or one past the arena when none is. The
// subset direction is deliberate and order-dependent on node creation;
// generalization depends on this exact rule.
func (g *Graph) findExistingEquivalenceClass(ec EquivalenceClass) int {
	for i := range g.nodes {
		if g.nodes[i].Type != LexClass {
			continue
		}
		existing := g.nodes[i].Class()
		if len(ec.Overlap(existing)) == len(existing) {
			return i
		}
	}

	return len(g.nodes)
}
