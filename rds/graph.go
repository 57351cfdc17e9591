package rds

import (
	"github.com/gitrdm/madios/parsetree"
)

// Graph owns the node arena, the per-sequence search paths, and the
// per-sequence parse trees. Node indices 0 and 1 are permanently reserved
// for the start and end markers; symbol nodes are created once during
// construction (deduplicated by token text); pattern and class nodes are
// created only by rewiring and never deleted — the arena only grows.
type Graph struct {
	nodes []Node
	paths []SearchPath
	trees []parsetree.Tree[int]

	// counts holds the observed-frequency statistics recomputed by
	// estimateProbabilities: one counter per class member for class nodes,
	// a single counter for everything else.
	counts [][]int

	// corpusSize is the summed length of all current search paths,
	// refreshed by updateAllConnections.
	corpusSize int

	// patternCount and rewireOps are bumped exclusively inside the
	// rewiring entry points.
	patternCount int
	rewireOps    int
}

// NewGraph builds the initial graph from tokenized sequences: one symbol
// node per distinct token in first-seen order, one start/end-bounded search
// path and one flat parse tree per sequence.
func NewGraph(sequences [][]string) (*Graph, error) {
	if len(sequences) == 0 {
		return nil, ErrEmptyCorpus
	}

	g := &Graph{}
	g.buildInitialGraph(sequences)

	return g, nil
}

func (g *Graph) buildInitialGraph(sequences [][]string) {
	g.nodes = append(g.nodes, newStartNode(), newEndNode())

	// The two marker slots keep token indices aligned with node indices.
	byToken := make(map[string]int)

	for _, seq := range sequences {
		path := SearchPath{startIndex}
		for _, tok := range seq {
			idx, seen := byToken[tok]
			if !seen {
				idx = len(g.nodes)
				byToken[tok] = idx
				g.nodes = append(g.nodes, newSymbolNode(tok))
			}
			path = append(path, idx)
		}
		path = append(path, endIndex)
		g.paths = append(g.paths, path)
	}

	g.updateAllConnections()

	for _, path := range g.paths {
		g.trees = append(g.trees, parsetree.FromValues([]int(path)))
	}
}

// Reserved arena slots for the sequence boundary markers.
const (
	startIndex = 0
	endIndex   = 1
)

// updateAllConnections rebuilds every node's connection and parent lists
// from scratch by re-scanning all paths and all composite nodes. Called
// after any path or node-table mutation; incremental patching is never
// attempted. O(total path length + total composite size).
func (g *Graph) updateAllConnections() {
	for i := range g.nodes {
		g.nodes[i].connections = nil
		g.nodes[i].parents = nil
	}

	g.corpusSize = 0
	for i, path := range g.paths {
		g.corpusSize += len(path)
		for j, n := range path {
			g.nodes[n].connections = append(g.nodes[n].connections, Connection{Path: i, Pos: j})
		}
	}

	for i := range g.nodes {
		switch g.nodes[i].Type {
		case LexPattern:
			sp := g.nodes[i].Pattern()
			for _, u := range sp {
				g.nodes[u].parents = append(g.nodes[u].parents, Connection{Path: i, Pos: sp.Find(u)})
			}
		case LexClass:
			for _, u := range g.nodes[i].Class() {
				g.nodes[u].parents = append(g.nodes[u].parents, Connection{Path: i, Pos: 0})
			}
		}
	}
}

// NodeConnections returns a node's direct connections; for a class node the
// result additionally includes the unioned connections of every member, which
// is what lets a pattern search see through a class to all its alternatives.
func (g *Graph) NodeConnections(nodeIndex int) ([]Connection, error) {
	if nodeIndex < 0 || nodeIndex >= len(g.nodes) {
		return nil, ErrNodeIndex
	}

	return g.allNodeConnections(nodeIndex), nil
}

// allNodeConnections is the unchecked form used on engine-produced indices.
func (g *Graph) allNodeConnections(nodeIndex int) []Connection {
	n := &g.nodes[nodeIndex]
	cons := append([]Connection(nil), n.connections...)

	if n.Type == LexClass {
		for _, u := range n.Class() {
			cons = append(cons, g.nodes[u].connections...)
		}
	}

	return cons
}

// Clone returns a full deep copy of the graph: nodes, payloads, connections,
// parents, paths, parse trees and counters. Mutating the clone never aliases
// the original; distillation uses clones to simulate not-yet-created
// equivalence classes.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		corpusSize:   g.corpusSize,
		patternCount: g.patternCount,
		rewireOps:    g.rewireOps,
	}

	c.nodes = make([]Node, len(g.nodes))
	for i := range g.nodes {
		c.nodes[i] = g.nodes[i].clone()
	}

	c.paths = make([]SearchPath, len(g.paths))
	for i, p := range g.paths {
		c.paths[i] = append(SearchPath(nil), p...)
	}

	c.trees = make([]parsetree.Tree[int], len(g.trees))
	for i := range g.trees {
		c.trees[i] = g.trees[i].Clone()
	}

	c.counts = make([][]int, len(g.counts))
	for i, row := range g.counts {
		c.counts[i] = append([]int(nil), row...)
	}

	return c
}

// Paths returns a read-only view of the current search paths.
func (g *Graph) Paths() []SearchPath { return g.paths }

// Nodes returns a read-only view of the node arena.
func (g *Graph) Nodes() []Node { return g.nodes }

// Trees returns a read-only view of the per-sequence parse trees.
func (g *Graph) Trees() []parsetree.Tree[int] { return g.trees }

// Counts returns the per-node frequency counters computed by the last
// probability estimation pass (nil before Distill completes).
func (g *Graph) Counts() [][]int { return g.counts }

// PatternCount returns the number of significant patterns discovered so far.
func (g *Graph) PatternCount() int { return g.patternCount }

// RewiringCount returns the number of rewiring operations performed.
func (g *Graph) RewiringCount() int { return g.rewireOps }
