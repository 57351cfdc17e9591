package rds

import (
	"math"

	"github.com/plan-systems/klog"

	"github.com/gitrdm/madios/mathutil"
)

// Generate produces one random surface realization of the grammar rooted at
// the start node.
func (g *Graph) Generate() []string {
	return g.GenerateAt(startIndex)
}

// GenerateAt produces one random realization rooted at the given node:
// markers and symbols yield their literal text, class nodes expand a
// uniformly random member, pattern nodes expand every member in order.
// An out-of-range node yields nil.
func (g *Graph) GenerateAt(node int) []string {
	if node < 0 || node >= len(g.nodes) {
		klog.Errorf("rds: generate node %d outside arena of %d", node, len(g.nodes))
		return nil
	}

	switch g.nodes[node].Type {
	case LexStart:
		return []string{"*"}
	case LexEnd:
		return []string{"#"}
	case LexSymbol:
		return []string{g.nodes[node].Symbol()}
	case LexClass:
		class := g.nodes[node].Class()
		if len(class) == 0 {
			return nil
		}
		pick := int(math.Floor(float64(len(class)) * mathutil.UniformRand()))
		return g.GenerateAt(class[pick])
	case LexPattern:
		var sequence []string
		for _, member := range g.nodes[node].Pattern() {
			sequence = append(sequence, g.GenerateAt(member)...)
		}
		return sequence
	default:
		klog.Errorf("rds: generate encountered unknown lexicon type %d", g.nodes[node].Type)
		return nil
	}
}

// GeneratePath realizes every node of a search path in order, skipping
// out-of-range indices.
func (g *Graph) GeneratePath(path SearchPath) []string {
	var sequence []string
	for _, node := range path {
		if node < 0 || node >= len(g.nodes) {
			klog.Errorf("rds: generate path node %d outside arena of %d", node, len(g.nodes))
			continue
		}
		sequence = append(sequence, g.GenerateAt(node)...)
	}

	return sequence
}
