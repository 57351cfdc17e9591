package rds

import (
	"fmt"
	"strings"
)

// NodeName returns the grammar-symbol name of a node: "*" and "#" for the
// markers, the literal token text for symbols, "E<i>" for classes and
// "P<i>" for patterns.
func (g *Graph) NodeName(node int) string {
	if node < 0 || node >= len(g.nodes) {
		return fmt.Sprintf("[INVALID_NODE:%d]", node)
	}

	switch g.nodes[node].Type {
	case LexStart:
		return "*"
	case LexEnd:
		return "#"
	case LexSymbol:
		return g.nodes[node].Symbol()
	case LexClass:
		return fmt.Sprintf("E%d", node)
	case LexPattern:
		return fmt.Sprintf("P%d", node)
	default:
		return fmt.Sprintf("[UNKNOWN_TYPE:%d]", node)
	}
}

// NodeString renders a node with its composite contents: "E[a,b]" for a
// class over members a and b, "P[...]" for a pattern, the plain name
// otherwise.
func (g *Graph) NodeString(node int) string {
	if node < 0 || node >= len(g.nodes) {
		return fmt.Sprintf("[INVALID_NODE:%d]", node)
	}

	switch g.nodes[node].Type {
	case LexClass:
		return "E[" + g.renderUnits(g.nodes[node].Class(), ",") + "]"
	case LexPattern:
		return "P[" + g.renderUnits(g.nodes[node].Pattern(), "") + "]"
	default:
		return g.NodeName(node)
	}
}

// PathString renders a path's node names space-separated inside brackets.
func (g *Graph) PathString(path SearchPath) string {
	names := make([]string, len(path))
	for i, n := range path {
		names[i] = g.NodeName(n)
	}

	return "[" + strings.Join(names, " ") + "]"
}

// String dumps the search paths and the lexicon with parent references, for
// debugging.
func (g *Graph) String() string {
	var b strings.Builder

	b.WriteString("Search Paths\n")
	for _, path := range g.paths {
		b.WriteString(g.PathString(path))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nRDS Graph Nodes %d\n", len(g.nodes))
	for i := range g.nodes {
		parents := make([]string, len(g.nodes[i].parents))
		for j, p := range g.nodes[i].parents {
			parents[j] = fmt.Sprintf("%d", p.Path)
		}
		fmt.Fprintf(&b, "Lexicon %d: %s   ------->  %d  [%s]\n",
			i, g.NodeString(i), len(g.nodes[i].parents), strings.Join(parents, "   "))
	}

	return b.String()
}

func (g *Graph) renderUnits(units []int, sep string) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = g.NodeName(u)
	}

	return strings.Join(parts, sep)
}
