package rds

import (
	"github.com/plan-systems/klog"
)

// Distill runs the fixed-point discovery loop: every pass scans all current
// search paths, distilling short paths directly and generalizing the rest;
// the loop ends when an entire scan yields no new pattern. Probability
// estimation runs once afterward.
//
// Paths shorter than the context window — or every path, when ContextSize is
// below 3 — skip generalization and go straight to the literal-path
// significance search.
func (g *Graph) Distill(params Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	for iteration := 0; ; iteration++ {
		klog.V(2).Infof("rds: distill iteration %d over %d paths", iteration, len(g.paths))

		found := false
		for i := range g.paths {
			path := g.paths[i]
			if params.ContextSize < 3 || len(path) < params.ContextSize {
				found = g.distillPath(path, params) || found
			} else {
				found = g.generalise(path, params) || found
			}
		}

		if !found {
			klog.V(2).Infof("rds: converged after %d iterations, %d patterns", iteration, g.patternCount)
			break
		}
	}

	g.estimateProbabilities()

	return nil
}

// distillPath searches one literal path for its most significant pattern and
// rewires every occurrence of the winning range. Reports whether a pattern
// was found.
func (g *Graph) distillPath(path SearchPath, params Params) bool {
	connections := g.ConnectionMatrix(path)
	flows, descents := g.descentsMatrix(connections)

	patterns, pvalues, ok := g.findSignificantPatterns(connections, flows, descents, params.Eta, params.Alpha)
	if !ok {
		return false
	}

	best := patterns[0]
	bestPattern := NewSignificantPattern(path.Slice(best.Start, best.End))
	toRewire := g.rewirableConnections(connections, best)

	klog.V(2).Infof("rds: pattern %v at [%d, %d] p=(%g, %g), rewiring %d occurrences",
		bestPattern, best.Start, best.End, pvalues[0].Left, pvalues[0].Right, len(toRewire))

	g.rewirePattern(toRewire, bestPattern)

	return true
}
