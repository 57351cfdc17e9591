package rds

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// WritePCFG emits the learned grammar, one rule per line, in the form
// "LHS -> RHS_tokens [probability]". Class nodes produce one E<i> rule per
// member, pattern nodes one P<i> rule over their whole sequence, and the top
// level one S rule per distinct (start/end-stripped) path, weighted by how
// many sequences share it. Zero totals substitute 1.0 to avoid division by
// zero.
//
// Probabilities come from the counts of the last estimation pass; call
// Distill before emitting.
func (g *Graph) WritePCFG(w io.Writer) error {
	for i := range g.nodes {
		switch g.nodes[i].Type {
		case LexClass:
			class := g.nodes[i].Class()
			total := 0.0
			for j := range class {
				total += float64(g.nodeCount(i, j))
			}
			if total == 0 {
				total = 1.0
			}
			for j, member := range class {
				prob := float64(g.nodeCount(i, j)) / total
				if _, err := fmt.Fprintf(w, "E%d -> %s [%.6g]\n", i, g.NodeName(member), prob); err != nil {
					return err
				}
			}

		case LexPattern:
			total := float64(g.nodeCount(i, 0))
			if total == 0 {
				total = 1.0
			}
			prob := float64(g.nodeCount(i, 0)) / total

			var rhs strings.Builder
			for _, member := range g.nodes[i].Pattern() {
				rhs.WriteString(" ")
				rhs.WriteString(g.NodeName(member))
			}
			if _, err := fmt.Fprintf(w, "P%d ->%s [%.6g]\n", i, rhs.String(), prob); err != nil {
				return err
			}
		}
	}

	// Top level: an empirical distribution over whole generalized sentences,
	// grouped and emitted in sorted order.
	groups := treemap.NewWithStringComparator()
	for _, path := range g.paths {
		names := make([]string, 0, len(path)-2)
		for _, n := range path[1 : len(path)-1] {
			names = append(names, g.NodeName(n))
		}
		rhs := strings.Join(names, " ")
		if count, found := groups.Get(rhs); found {
			groups.Put(rhs, count.(int)+1)
		} else {
			groups.Put(rhs, 1)
		}
	}

	total := len(g.paths)
	var err error
	groups.Each(func(key, value interface{}) {
		if err != nil {
			return
		}
		prob := 1.0
		if total > 0 {
			prob = float64(value.(int)) / float64(total)
		}
		rhs := key.(string)
		if rhs != "" {
			rhs = " " + rhs
		}
		_, err = fmt.Fprintf(w, "S ->%s [%.6g]\n", rhs, prob)
	})

	return err
}

// nodeCount reads a counter defensively: estimation may not have run yet.
func (g *Graph) nodeCount(node, slot int) int {
	if node >= len(g.counts) || slot >= len(g.counts[node]) {
		return 0
	}

	return g.counts[node][slot]
}
