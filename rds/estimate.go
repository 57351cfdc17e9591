package rds

import (
	"github.com/plan-systems/klog"
)

// estimateProbabilities recomputes the per-node frequency counters purely
// from the final parse trees: every non-root tree node bumps its graph
// node's counter, and a class-typed tree node bumps the counter of whichever
// member its single child realized. Path scanning plays no part here.
func (g *Graph) estimateProbabilities() {
	g.counts = make([][]int, len(g.nodes))
	for i := range g.nodes {
		if g.nodes[i].Type == LexClass {
			g.counts[i] = make([]int, len(g.nodes[i].Class()))
		} else {
			g.counts[i] = make([]int, 1)
		}
	}

	for _, tree := range g.trees {
		treeNodes := tree.Nodes()
		for j := 1; j < len(treeNodes); j++ {
			nodeIndex := treeNodes[j].Value()
			if nodeIndex < 0 || nodeIndex >= len(g.nodes) {
				klog.Warningf("rds: estimate skipping tree value %d outside arena of %d", nodeIndex, len(g.nodes))
				continue
			}

			if g.nodes[nodeIndex].Type == LexClass {
				children := treeNodes[j].Children()
				if len(children) != 1 {
					klog.Warningf("rds: class tree node %d has %d children, want 1", j, len(children))
					continue
				}
				chosen := treeNodes[children[0]].Value()
				for k, member := range g.nodes[nodeIndex].Class() {
					if member == chosen {
						g.counts[nodeIndex][k]++
					}
				}
			} else {
				g.counts[nodeIndex][0]++
			}
		}
	}
}
