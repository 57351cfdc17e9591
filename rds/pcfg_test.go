package rds

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWritePCFG_ClassProbabilities verifies that class rules weight members
// by their realization counts.
func TestWritePCFG_ClassProbabilities(t *testing.T) {
	g, err := NewGraph([][]string{{"B"}, {"D"}})
	require.NoError(t, err)

	// B=2, D=3; the class lands at index 4.
	class := g.rewireNewClass(nil, EquivalenceClass{2, 3})
	g.estimateProbabilities()
	g.counts[class] = []int{3, 1}

	var b strings.Builder
	require.NoError(t, g.WritePCFG(&b))

	assert.Contains(t, b.String(), "E4 -> B [0.75]\n")
	assert.Contains(t, b.String(), "E4 -> D [0.25]\n")
}

// TestWritePCFG_ZeroCountGuard verifies that a class no parse tree ever
// realized emits zero-probability rules instead of dividing by zero.
func TestWritePCFG_ZeroCountGuard(t *testing.T) {
	g, err := NewGraph([][]string{{"B"}, {"D"}})
	require.NoError(t, err)

	g.rewireNewClass(nil, EquivalenceClass{2, 3})
	g.estimateProbabilities()

	var b strings.Builder
	require.NoError(t, g.WritePCFG(&b))

	assert.Contains(t, b.String(), "E4 -> B [0]\n")
	assert.Contains(t, b.String(), "E4 -> D [0]\n")
}

// TestWritePCFG_GroupsAndSortsSentences verifies that identical generalized
// sentences merge into one weighted rule and rules emit in sorted order.
func TestWritePCFG_GroupsAndSortsSentences(t *testing.T) {
	g, err := NewGraph([][]string{
		{"b", "x"},
		{"a", "x"},
		{"b", "x"},
		{"b", "y"},
	})
	require.NoError(t, err)
	g.estimateProbabilities()

	var b strings.Builder
	require.NoError(t, g.WritePCFG(&b))

	assert.Equal(t, "S -> a x [0.25]\nS -> b x [0.5]\nS -> b y [0.25]\n", b.String())
}

// TestWritePCFG_BeforeDistill verifies that emission without a prior
// estimation pass degrades to zero counts rather than panicking.
func TestWritePCFG_BeforeDistill(t *testing.T) {
	g, err := NewGraph([][]string{{"a", "b"}})
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, g.WritePCFG(&b))
	assert.Equal(t, "S -> a b [1]\n", b.String())
}

// TestEstimateProbabilities_CountsFromTrees verifies that counters derive
// from parse trees: every leaf and internal node bumps its graph node, and a
// class counter tracks which member its child realized.
func TestEstimateProbabilities_CountsFromTrees(t *testing.T) {
	g, err := NewGraph([][]string{{"a", "b", "c"}, {"a", "d", "c"}})
	require.NoError(t, err)

	// b=3, d=5; collapse [a E c] in both sequences.
	class := g.rewireNewClass(nil, EquivalenceClass{3, 5})
	g.rewirePattern([]Connection{{Path: 0, Pos: 1}, {Path: 1, Pos: 1}},
		NewSignificantPattern([]int{2, class, 4}))
	sp := len(g.nodes) - 1

	g.estimateProbabilities()

	assert.Equal(t, []int{2}, g.counts[startIndex], "one start marker per tree")
	assert.Equal(t, []int{2}, g.counts[2], "a realizes in both trees")
	assert.Equal(t, []int{1}, g.counts[3], "b realizes once")
	assert.Equal(t, []int{1, 1}, g.counts[class], "the class realizes each member once")
	assert.Equal(t, []int{2}, g.counts[sp])
}
