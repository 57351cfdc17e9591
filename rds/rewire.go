package rds

import (
	"fmt"

	"github.com/plan-systems/klog"
)

// Rewiring is the only place the node arena, search paths and parse trees
// mutate, and every form finishes by rebuilding all connection and parent
// indices. The operation counters are bumped here and nowhere else.

// rewireToClass overwrites every listed path slot with the index of an
// existing class node. The target must be a class node; anything else is a
// caller bug.
func (g *Graph) rewireToClass(connections []Connection, classIndex int) {
	if classIndex < 0 || classIndex >= len(g.nodes) || g.nodes[classIndex].Type != LexClass {
		panic(fmt.Sprintf("rds: rewire target %d is not an equivalence class node", classIndex))
	}

	for _, con := range connections {
		g.paths[con.Path][con.Pos] = classIndex
	}

	g.rewireOps++
	g.updateAllConnections()
}

// rewireNewClass appends a brand-new class node holding a copy of ec, then
// rewires the listed slots to it. Returns the new node's index. An empty
// connection list still appends the node — generalization uses that to
// materialize a class before any slot references it.
func (g *Graph) rewireNewClass(connections []Connection, ec EquivalenceClass) int {
	g.nodes = append(g.nodes, newClassNode(ec.clone()))
	idx := len(g.nodes) - 1
	g.rewireToClass(connections, idx)

	return idx
}

// rewirePattern appends a brand-new pattern node and collapses every listed
// occurrence span onto it, in paths and parse trees both.
//
// The connection list is grouped by path (first-appearance order) with
// positions ascending, and any occurrence overlapping a previously accepted
// one in the same path is dropped, so no two rewired spans of the same pass
// overlap. Surviving occurrences apply per path in descending position
// order, keeping earlier positions unaffected by the shrinkage from
// collapsing later ones. An empty connection list leaves the graph
// completely unchanged.
func (g *Graph) rewirePattern(connections []Connection, sp SignificantPattern) {
	if len(connections) == 0 {
		klog.Warningf("rds: pattern rewire invoked with no connections; graph unchanged")
		return
	}

	g.nodes = append(g.nodes, newPatternNode(NewSignificantPattern(sp)))
	newIndex := len(g.nodes) - 1
	size := len(sp)

	sorted := sortConnections(connections)

	valid := sorted[:1]
	for _, con := range sorted[1:] {
		last := valid[len(valid)-1]
		if con.Path == last.Path && con.Pos <= last.Pos+size-1 {
			continue
		}
		valid = append(valid, con)
	}

	for i := len(valid) - 1; i >= 0; i-- {
		pathIndex, pos := valid[i].Path, valid[i].Pos

		// Defensive bookkeeping: a malformed occurrence is skipped rather
		// than aborting a long distillation pass.
		if pathIndex >= len(g.paths) {
			klog.Warningf("rds: rewire skipping connection with path %d of %d", pathIndex, len(g.paths))
			continue
		}
		if pos+size-1 >= len(g.paths[pathIndex]) {
			klog.Warningf("rds: rewire skipping connection at %d overrunning path of length %d", pos, len(g.paths[pathIndex]))
			continue
		}

		// Where a class member stands in for a literal pattern member, lift
		// the literal under the canonical node first.
		segment := g.paths[pathIndex].Slice(pos, pos+size-1)
		for j, n := range segment {
			if n != sp[j] {
				g.trees[pathIndex].Rewire(pos+j, pos+j, sp[j])
			}
		}
		g.trees[pathIndex].Rewire(pos, pos+size-1, newIndex)

		g.paths[pathIndex].Rewire(pos, pos+size-1, newIndex)
	}

	g.patternCount++
	g.rewireOps++
	g.updateAllConnections()
}

// sortConnections groups connections by path in first-appearance order with
// positions ascending within each group.
func sortConnections(connections []Connection) []Connection {
	sorted := make([]Connection, 0, len(connections))

	for _, con := range connections {
		foundGroup, inserted := false, false
		for j, s := range sorted {
			if con.Path == s.Path {
				foundGroup = true
				if con.Pos < s.Pos {
					sorted = append(sorted[:j], append([]Connection{con}, sorted[j:]...)...)
					inserted = true
					break
				}
			} else if foundGroup {
				sorted = append(sorted[:j], append([]Connection{con}, sorted[j:]...)...)
				inserted = true
				break
			}
		}
		if !inserted {
			sorted = append(sorted, con)
		}
	}

	return sorted
}

// rewirableConnections extracts the occurrence list to rewire for a chosen
// pattern range: the matrix cell covering the whole span.
func (g *Graph) rewirableConnections(connections ConnectionMatrix, best Range) []Connection {
	return append([]Connection(nil), connections[best.End][best.Start]...)
}
