// Package parsetree implements an index-arena parse forest.
//
// A Tree records how the tokens of one input sequence were progressively
// grouped during distillation. It starts flat: node 0 is the root and every
// value becomes a direct child of the root. Each Rewire call introduces a new
// internal node that subsumes a contiguous run of root children, so the tree
// always reconstructs, for any composite occurrence, exactly which original
// leaves it spans.
//
// Nodes reference each other by index into the tree's node slice, never by
// pointer, which keeps a Tree a plain value: copying the node slice is a full
// deep copy.
package parsetree
