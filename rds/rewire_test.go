package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRewirePattern_NoConnections verifies the guard: with nothing to rewire
// the graph stays byte-for-byte identical and no pattern node is created.
func TestRewirePattern_NoConnections(t *testing.T) {
	g, err := NewGraph([][]string{{"A", "B"}, {"A", "C"}})
	require.NoError(t, err)

	before := g.Clone()
	assert.NotPanics(t, func() {
		g.rewirePattern(nil, NewSignificantPattern([]int{2, 3}))
	})

	assert.Equal(t, len(before.Nodes()), len(g.Nodes()), "no orphan pattern node")
	assert.Equal(t, before.Paths(), g.Paths())
	assert.Equal(t, 0, g.PatternCount())
	assert.Equal(t, 0, g.RewiringCount())
}

// TestRewirePattern_CollapsesOccurrences verifies that every listed span
// collapses to the new pattern node in paths and trees alike.
func TestRewirePattern_CollapsesOccurrences(t *testing.T) {
	g, err := NewGraph([][]string{{"x", "a", "b", "y"}, {"z", "a", "b", "w"}})
	require.NoError(t, err)

	// a=3, b=4 in both sequences.
	g.rewirePattern([]Connection{{Path: 0, Pos: 2}, {Path: 1, Pos: 2}}, NewSignificantPattern([]int{3, 4}))

	sp := len(g.Nodes()) - 1
	require.Equal(t, LexPattern, g.Nodes()[sp].Type)
	assert.Equal(t, SignificantPattern{3, 4}, g.Nodes()[sp].Pattern())

	assert.Equal(t, SearchPath{0, 2, sp, 5, 1}, g.Paths()[0])
	assert.Equal(t, SearchPath{0, 6, sp, 7, 1}, g.Paths()[1])

	assert.Equal(t, 1, g.PatternCount())
	assert.Equal(t, 1, g.RewiringCount())

	// The pattern node's occurrences are re-indexed from the new paths.
	assert.Equal(t, []Connection{{Path: 0, Pos: 2}, {Path: 1, Pos: 2}}, g.Nodes()[sp].Connections())

	// Each tree gains one internal node subsuming the collapsed leaves.
	for i, tree := range g.Trees() {
		root := tree.Nodes()[0]
		require.Len(t, root.Children(), 5, "tree %d root mirrors the shrunken path", i)

		internal := root.Children()[2]
		assert.Equal(t, sp, tree.Nodes()[internal].Value())
		assert.Len(t, tree.Nodes()[internal].Children(), 2)
	}
}

// TestRewirePattern_DropsOverlaps verifies that occurrences overlapping an
// already accepted one in the same path are skipped, so collapsed spans
// never intersect.
func TestRewirePattern_DropsOverlaps(t *testing.T) {
	g, err := NewGraph([][]string{{"a", "a", "a", "a"}})
	require.NoError(t, err)

	// Candidate spans at positions 1, 2 and 3; position 2 overlaps the span
	// accepted at 1.
	g.rewirePattern([]Connection{
		{Path: 0, Pos: 1},
		{Path: 0, Pos: 2},
		{Path: 0, Pos: 3},
	}, NewSignificantPattern([]int{2, 2}))

	sp := len(g.Nodes()) - 1
	assert.Equal(t, SearchPath{0, sp, sp, 1}, g.Paths()[0])
	assert.Equal(t, 1, g.PatternCount(), "one pattern node shared by both spans")
}

// TestRewirePattern_LiftsClassMembers verifies that where a class member
// stood in for the canonical pattern slot, the tree first wraps the literal
// under the class node.
func TestRewirePattern_LiftsClassMembers(t *testing.T) {
	g, err := NewGraph([][]string{{"a", "b", "c"}, {"a", "d", "c"}})
	require.NoError(t, err)

	// b=3, d=5; collapse [a E c] across both sequences.
	class := g.rewireNewClass(nil, EquivalenceClass{3, 5})
	g.rewirePattern([]Connection{{Path: 0, Pos: 1}, {Path: 1, Pos: 1}},
		NewSignificantPattern([]int{2, class, 4}))

	sp := len(g.Nodes()) - 1
	assert.Equal(t, SearchPath{0, sp, 1}, g.Paths()[0])
	assert.Equal(t, SearchPath{0, sp, 1}, g.Paths()[1])

	for i, tree := range g.Trees() {
		root := tree.Nodes()[0]
		require.Len(t, root.Children(), 3)

		spNode := tree.Nodes()[root.Children()[1]]
		require.Equal(t, sp, spNode.Value())
		require.Len(t, spNode.Children(), 3, "tree %d pattern arity", i)

		middle := tree.Nodes()[spNode.Children()[1]]
		assert.Equal(t, class, middle.Value(), "literal lifted under the class node")
		require.Len(t, middle.Children(), 1)
	}
}

// TestRewireNewClass verifies node creation, payload copying and that an
// empty connection list still materializes the class.
func TestRewireNewClass(t *testing.T) {
	g, err := NewGraph([][]string{{"a", "b", "c"}, {"a", "d", "c"}})
	require.NoError(t, err)

	ec := EquivalenceClass{3, 5}
	idx := g.rewireNewClass(nil, ec)

	require.Equal(t, len(g.Nodes())-1, idx)
	assert.Equal(t, LexClass, g.Nodes()[idx].Type)
	assert.Equal(t, ec, g.Nodes()[idx].Class())
	assert.Equal(t, 1, g.RewiringCount())

	// The stored payload must not alias the caller's slice.
	ec[0] = 99
	assert.Equal(t, EquivalenceClass{3, 5}, g.Nodes()[idx].Class())
}

// TestRewireToClass verifies slot overwriting and the non-class target panic.
func TestRewireToClass(t *testing.T) {
	g, err := NewGraph([][]string{{"a", "b", "c"}, {"a", "d", "c"}})
	require.NoError(t, err)

	idx := g.rewireNewClass([]Connection{{Path: 0, Pos: 2}, {Path: 1, Pos: 2}}, EquivalenceClass{3, 5})

	assert.Equal(t, SearchPath{0, 2, idx, 4, 1}, g.Paths()[0])
	assert.Equal(t, SearchPath{0, 2, idx, 4, 1}, g.Paths()[1])

	assert.Panics(t, func() { g.rewireToClass(nil, 2) }, "symbol node is not a class")
	assert.Panics(t, func() { g.rewireToClass(nil, len(g.Nodes())) }, "index past the arena")
}

// TestSortConnections verifies path grouping in first-appearance order with
// ascending positions inside each group.
func TestSortConnections(t *testing.T) {
	got := sortConnections([]Connection{
		{Path: 1, Pos: 5},
		{Path: 0, Pos: 2},
		{Path: 1, Pos: 1},
		{Path: 0, Pos: 7},
		{Path: 2, Pos: 0},
	})

	assert.Equal(t, []Connection{
		{Path: 1, Pos: 1},
		{Path: 1, Pos: 5},
		{Path: 0, Pos: 2},
		{Path: 0, Pos: 7},
		{Path: 2, Pos: 0},
	}, got)
}
