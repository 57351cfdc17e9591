// Package rds implements the ADIOS (Automatic DIstillation Of Structure)
// grammar-induction engine over an RDS (Representational Data Structure)
// graph.
//
// Description:
//
//	Input sequences are represented as search paths through a shared node
//	arena: index 0 is the permanent start marker, index 1 the end marker, and
//	each distinct token gets one symbol node. Distillation repeatedly looks
//	for statistically significant recurring subsequences, generalizes
//	interchangeable slot fillers into equivalence classes, and rewires every
//	matching span in every path to reference the new composite node. The
//	converged graph is a probabilistic context-free grammar.
//
// Algorithm Outline:
//  1. Build the initial graph: one symbol node per distinct token, one
//     start/end-bounded search path and one flat parse tree per sequence.
//  2. For each path, compute the connection matrix: cell (i, j) holds every
//     (path, position) occurrence compatible with the sub-window i..j. The
//     sweep is dynamic programming — each cell filters its inward neighbor,
//     so occurrence lists only shrink as the window grows.
//  3. Derive flow ratios between adjacent window sizes and descent ratios
//     between adjacent flows. A descent below Eta marks a candidate pattern
//     boundary; a binomial-tail test on both boundaries against Alpha
//     accepts or rejects the candidate.
//  4. For paths long enough, generalize first: bootstrap context windows
//     against existing equivalence classes, compute a candidate equivalence
//     class per interior slot, and re-run the significance search over each
//     generalized candidate (simulating brand-new classes on a throwaway
//     clone of the graph).
//  5. Rewire the winning pattern: collapse every non-overlapping occurrence
//     span in paths and parse trees to a single new node, then rebuild all
//     connection and parent indices from scratch.
//  6. Repeat until a full scan finds nothing, then estimate rule
//     probabilities from the parse trees.
//
// Concurrency: none. The engine is single-threaded; all mutation funnels
// through the rewiring methods, and clones never share state with their
// source.
//
// Errors: exported entry points validate inputs and return sentinel errors
// (see errors.go). Violated internal invariants — indices produced by the
// engine itself going out of range — panic, since they indicate a logic bug
// rather than a recoverable condition. Defensive bookkeeping during bulk
// rewiring instead logs and skips the offending occurrence.
package rds
