package rds

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNodeName covers every lexicon shape plus the invalid-index fallback.
func TestNodeName(t *testing.T) {
	g, err := NewGraph([][]string{{"a", "b", "c"}, {"a", "d", "c"}})
	require.NoError(t, err)

	class := g.rewireNewClass(nil, EquivalenceClass{3, 5})
	g.rewirePattern([]Connection{{Path: 0, Pos: 1}, {Path: 1, Pos: 1}},
		NewSignificantPattern([]int{2, class, 4}))
	sp := len(g.Nodes()) - 1

	assert.Equal(t, "*", g.NodeName(0))
	assert.Equal(t, "#", g.NodeName(1))
	assert.Equal(t, "b", g.NodeName(3))
	assert.Equal(t, "E6", g.NodeName(class))
	assert.Equal(t, "P7", g.NodeName(sp))
	assert.Equal(t, "[INVALID_NODE:99]", g.NodeName(99))
	assert.Equal(t, "[INVALID_NODE:-1]", g.NodeName(-1))
}

// TestNodeString verifies composite rendering: comma-separated class
// members, unseparated pattern members.
func TestNodeString(t *testing.T) {
	g, err := NewGraph([][]string{{"a", "b", "c"}, {"a", "d", "c"}})
	require.NoError(t, err)

	class := g.rewireNewClass(nil, EquivalenceClass{3, 5})
	g.rewirePattern([]Connection{{Path: 0, Pos: 1}, {Path: 1, Pos: 1}},
		NewSignificantPattern([]int{2, class, 4}))
	sp := len(g.Nodes()) - 1

	assert.Equal(t, "E[b,d]", g.NodeString(class))
	assert.Equal(t, "P[aE6c]", g.NodeString(sp))
	assert.Equal(t, "a", g.NodeString(2))
}

// TestPathString verifies name rendering of a whole search path.
func TestPathString(t *testing.T) {
	g, err := NewGraph([][]string{{"a", "b", "c"}, {"a", "d", "c"}})
	require.NoError(t, err)

	assert.Equal(t, "[* a b c #]", g.PathString(g.Paths()[0]))
	assert.Equal(t, "[* a d c #]", g.PathString(g.Paths()[1]))
}

// TestGraphString verifies the debug dump carries the paths, the node count
// and parent references.
func TestGraphString(t *testing.T) {
	g, err := NewGraph([][]string{{"a", "b", "c"}, {"a", "d", "c"}})
	require.NoError(t, err)
	class := g.rewireNewClass(nil, EquivalenceClass{3, 5})

	out := g.String()
	assert.Contains(t, out, "Search Paths\n")
	assert.Contains(t, out, "[* a b c #]")
	assert.Contains(t, out, "RDS Graph Nodes 7")
	assert.Contains(t, out, "E[b,d]")

	// b's single parent is the class node.
	assert.Contains(t, out, "Lexicon 3: b")
	assert.Contains(t, out, "1  ["+strconv.Itoa(class)+"]")
}
