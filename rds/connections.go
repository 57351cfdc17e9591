package rds

import "fmt"

// ConnectionMatrix is the window-compatibility matrix for one search path:
// cell [i][j] lists every (path, start-position) occurrence compatible with
// the sub-window spanning columns i..j (or j..i — the matrix is symmetric by
// construction). The diagonal holds the occurrences of the single node at
// that position, expanded through class membership. Derived data: recomputed
// per analysis call, never persisted.
type ConnectionMatrix [][][]Connection

// Dim returns the matrix dimension (the analyzed path's length).
func (m ConnectionMatrix) Dim() int { return len(m) }

// ConnectionMatrix computes the window-compatibility matrix for path.
//
// The off-diagonal sweep is dynamic programming: cell (j, i) for j > i
// filters the adjacent inward cell (j-1, i) by the single additional node at
// offset j, so candidate-occurrence lists only shrink as the window grows.
// That monotone shrinkage is the statistical premise of the whole algorithm.
func (g *Graph) ConnectionMatrix(path SearchPath) ConnectionMatrix {
	dim := len(path)
	m := make(ConnectionMatrix, dim)
	for i := range m {
		m[i] = make([][]Connection, dim)
	}

	for i := 0; i < dim; i++ {
		m[i][i] = g.allNodeConnections(path[i])

		// Grow the window downward from the diagonal, one node at a time.
		for j := i + 1; j < dim; j++ {
			m[j][i] = g.filterConnections(m[j-1][i], j-i, path.Slice(j, j))
			m[i][j] = m[j][i]
		}
	}

	return m
}

// filterConnections keeps the occurrences in cons whose underlying path also
// matches segment starting startOffset positions after the occurrence start.
// A class node in segment matches by membership; any other node by index
// equality.
func (g *Graph) filterConnections(cons []Connection, startOffset int, segment SearchPath) []Connection {
	var filtered []Connection

	for _, con := range cons {
		target := g.paths[con.Path]

		// The occurrence's path must be long enough to hold the segment.
		if con.Pos+startOffset+len(segment) > len(target) {
			continue
		}

		matched := true
		for j, want := range segment {
			actual := target[con.Pos+startOffset+j]
			if g.nodes[want].Type == LexClass {
				if !g.nodes[want].Class().Has(actual) {
					matched = false
					break
				}
			} else if want != actual {
				matched = false
				break
			}
		}

		if matched {
			filtered = append(filtered, con)
		}
	}

	return filtered
}

// computeEquivalenceClass collects the node values observed at slotIndex
// across every occurrence matching the fixed prefix [0, slotIndex-1] and
// suffix [slotIndex+1, end] of path. slotIndex must be interior.
func (g *Graph) computeEquivalenceClass(path SearchPath, slotIndex int) EquivalenceClass {
	if slotIndex <= 0 || slotIndex >= len(path)-1 {
		panic(fmt.Sprintf("rds: equivalence slot %d not interior to path of length %d", slotIndex, len(path)))
	}

	cons := g.allNodeConnections(path[0])
	cons = g.filterConnections(cons, 0, path.Slice(0, slotIndex-1))
	cons = g.filterConnections(cons, slotIndex+1, path.Slice(slotIndex+1, len(path)-1))

	var ec EquivalenceClass
	for _, con := range cons {
		ec.Add(g.paths[con.Path][con.Pos+slotIndex])
	}

	return ec
}
