package rds

import (
	"fmt"
	"slices"
	"strings"
)

// SearchPath is the current node-index representation of one input sequence.
// After graph construction every path begins with the start node (index 0)
// and ends with the end node (index 1); rewiring shrinks the interior as
// spans collapse into composite nodes, but the path keeps representing the
// same original sentence for the whole run.
type SearchPath []int

// Slice returns a copy of the inclusive sub-range [start, finish].
func (p SearchPath) Slice(start, finish int) SearchPath {
	if start > finish || finish >= len(p) {
		panic(fmt.Sprintf("rds: path slice [%d, %d] out of range for length %d", start, finish, len(p)))
	}

	return append(SearchPath(nil), p[start:finish+1]...)
}

// Substitute returns a new path with the inclusive range [start, finish]
// replaced by segment. The receiver is unchanged.
func (p SearchPath) Substitute(start, finish int, segment SearchPath) SearchPath {
	if start > finish || finish >= len(p) {
		panic(fmt.Sprintf("rds: path substitute [%d, %d] out of range for length %d", start, finish, len(p)))
	}

	out := make(SearchPath, 0, start+len(segment)+len(p)-finish-1)
	out = append(out, p[:start]...)
	out = append(out, segment...)
	out = append(out, p[finish+1:]...)

	return out
}

// Rewire collapses the inclusive range [start, finish] to the single node
// index, in place.
func (p *SearchPath) Rewire(start, finish, node int) {
	old := *p
	out := make(SearchPath, 0, len(old)-(finish-start))
	out = append(out, old[:start]...)
	out = append(out, node)
	out = append(out, old[finish+1:]...)
	*p = out
}

// Equal reports element-wise equality.
func (p SearchPath) Equal(other SearchPath) bool {
	return slices.Equal(p, other)
}

// String renders the raw node indices, e.g. "[0 --> 4 --> 2 --> 1]".
func (p SearchPath) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = fmt.Sprintf("%d", n)
	}

	return "[" + strings.Join(parts, " --> ") + "]"
}
