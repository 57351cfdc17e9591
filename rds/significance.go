package rds

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gitrdm/madios/mathutil"
)

// descentsMatrix derives the flow and descent ratio matrices from a
// connection matrix.
//
// flow(i, j) is the ratio of occurrence counts between adjacent window sizes
// in the direction away from the diagonal; the diagonal's flow is the node's
// occurrence count over the corpus size. descent(i, j) is the ratio of
// successive flows, with the self-comparison diagonal fixed at 1.0: a
// descent below Eta means extending the window shrank the candidate's
// support disproportionately — the sharp drop-off that demarcates a pattern
// boundary.
func (g *Graph) descentsMatrix(connections ConnectionMatrix) (flows, descents *mat.Dense) {
	dim := connections.Dim()

	flows = mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			switch {
			case i > j:
				flows.Set(i, j, float64(len(connections[i][j]))/float64(len(connections[i-1][j])))
			case i < j:
				flows.Set(i, j, float64(len(connections[i][j]))/float64(len(connections[i+1][j])))
			default:
				flows.Set(i, j, float64(len(connections[i][j]))/float64(g.corpusSize))
			}
		}
	}

	descents = mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			switch {
			case i > j:
				descents.Set(i, j, flows.At(i, j)/flows.At(i-1, j))
			case i < j:
				descents.Set(i, j, flows.At(i, j)/flows.At(i+1, j))
			default:
				descents.Set(i, j, 1.0)
			}
		}
	}

	return flows, descents
}

// noPValue is an impossible p-value marking "not computed / no valid
// boundary"; callers must treat any |p| > 1 as a discarded candidate.
const noPValue = 2.0

// findSignificantPatterns scans the descent matrix for candidate pattern
// boundaries and binomial-tests every (start, end) combination. The returned
// lists hold every accepted candidate with the single most significant one
// (lowest max of its two p-values, first found winning ties) swapped to the
// front. Returns ok=false when nothing is significant.
func (g *Graph) findSignificantPatterns(connections ConnectionMatrix, flows, descents *mat.Dense, eta, alpha float64) (patterns []Range, pvalues []Significance, ok bool) {
	dim := connections.Dim()

	// A row whose descent drops below eta somewhere to the left ends a
	// pattern at the previous row; a drop to the right starts one at the
	// next row.
	var candidateStartRows, candidateEndRows []int
	for i := 0; i < dim; i++ {
		for j := i - 1; j >= 0; j-- {
			if descents.At(i, j) < eta {
				candidateEndRows = append(candidateEndRows, i-1)
				break
			}
		}
		for j := i + 1; j < dim; j++ {
			if descents.At(i, j) < eta {
				candidateStartRows = append(candidateStartRows, i+1)
				break
			}
		}
	}

	var candidates []Range
	for _, s := range candidateStartRows {
		for _, e := range candidateEndRows {
			if s < e {
				candidates = append(candidates, Range{Start: s, End: e})
			}
		}
	}

	// Boundary p-values depend only on (row, col), so cache them across
	// candidate ranges.
	cache := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			cache.Set(i, j, noPValue)
		}
	}

	for _, cand := range candidates {
		var sig Significance
		sig.Right, _ = g.findBestRightDescentColumn(cache, connections, flows, descents, cand, eta)
		sig.Left, _ = g.findBestLeftDescentColumn(cache, connections, flows, descents, cand, eta)
		if math.Abs(sig.Left) > 1.0 || math.Abs(sig.Right) > 1.0 {
			continue
		}

		if !sig.isSignificant(alpha) {
			continue
		}

		patterns = append(patterns, cand)
		pvalues = append(pvalues, sig)

		// Keep the most significant candidate at the front.
		if len(patterns) == 1 || pvalues[len(pvalues)-1].less(pvalues[0]) {
			patterns[0], patterns[len(patterns)-1] = patterns[len(patterns)-1], patterns[0]
			pvalues[0], pvalues[len(pvalues)-1] = pvalues[len(pvalues)-1], pvalues[0]
		}
	}

	return patterns, pvalues, len(patterns) > 0
}

// computeRightSignificance evaluates the binomial tail at a right descent
// point: the probability of observing at most the boundary's occurrence
// count under the null hypothesis that the pattern's support genuinely
// extends eta-scaled past it. Small values reject the null and confirm a
// real boundary.
func (g *Graph) computeRightSignificance(connections ConnectionMatrix, flows *mat.Dense, row, col int, eta float64) float64 {
	patternOcc := len(connections[row-1][col])
	descentOcc := len(connections[row][col])

	significance := 0.0
	for i := 0; i <= descentOcc; i++ {
		significance += mathutil.Binom(i, patternOcc, eta*flows.At(row-1, col))
	}

	return math.Min(math.Max(significance, 0.0), 1.0)
}

// computeLeftSignificance mirrors computeRightSignificance for a left
// descent point (row just before the pattern start).
func (g *Graph) computeLeftSignificance(connections ConnectionMatrix, flows *mat.Dense, row, col int, eta float64) float64 {
	patternOcc := len(connections[row+1][col])
	descentOcc := len(connections[row][col])

	significance := 0.0
	for i := 0; i <= descentOcc; i++ {
		significance += mathutil.Binom(i, patternOcc, eta*flows.At(row+1, col))
	}

	return math.Min(math.Max(significance, 0.0), 1.0)
}

// findBestRightDescentColumn searches all columns left of the pattern start
// for the most significant qualifying right boundary (descent below eta).
// Returns noPValue when no column qualifies.
func (g *Graph) findBestRightDescentColumn(cache *mat.Dense, connections ConnectionMatrix, flows, descents *mat.Dense, pattern Range, eta float64) (pvalue float64, bestColumn int) {
	pvalue = noPValue
	row := pattern.End + 1

	for i := 0; i <= pattern.Start; i++ {
		if !(descents.At(row, i) < eta) {
			continue
		}
		if cache.At(row, i) > 1.0 {
			cache.Set(row, i, g.computeRightSignificance(connections, flows, row, i, eta))
		}
		if cache.At(row, i) < pvalue {
			bestColumn = i
			pvalue = cache.At(row, i)
		}
	}

	return pvalue, bestColumn
}

// findBestLeftDescentColumn mirrors findBestRightDescentColumn for the left
// boundary, searching the columns from the pattern end rightward.
func (g *Graph) findBestLeftDescentColumn(cache *mat.Dense, connections ConnectionMatrix, flows, descents *mat.Dense, pattern Range, eta float64) (pvalue float64, bestColumn int) {
	pvalue = noPValue
	row := pattern.Start - 1

	for i := pattern.End; i < connections.Dim(); i++ {
		if !(descents.At(row, i) < eta) {
			continue
		}
		if cache.At(row, i) > 1.0 {
			cache.Set(row, i, g.computeLeftSignificance(connections, flows, row, i, eta))
		}
		if cache.At(row, i) < pvalue {
			bestColumn = i
			pvalue = cache.At(row, i)
		}
	}

	return pvalue, bestColumn
}
