package rds

import "slices"

// EquivalenceClass is an unordered collection of node indices considered
// mutually interchangeable in some discovered context. Members are unique;
// membership is a linear scan, since classes stay small in practice.
//
// Once a class is inserted into the node arena it is never mutated again —
// refinements become new, narrower classes.
type EquivalenceClass []int

// Has reports whether unit is a member.
func (ec EquivalenceClass) Has(unit int) bool {
	return slices.Contains(ec, unit)
}

// Add appends unit unless already present. Reports whether it was added.
func (ec *EquivalenceClass) Add(unit int) bool {
	if ec.Has(unit) {
		return false
	}
	*ec = append(*ec, unit)

	return true
}

// Overlap returns the intersection with other, in other's member order.
func (ec EquivalenceClass) Overlap(other EquivalenceClass) EquivalenceClass {
	var overlap EquivalenceClass
	for _, u := range other {
		if ec.Has(u) {
			overlap.Add(u)
		}
	}

	return overlap
}

// clone returns an independent copy.
func (ec EquivalenceClass) clone() EquivalenceClass {
	return append(EquivalenceClass(nil), ec...)
}
