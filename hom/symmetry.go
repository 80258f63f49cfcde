package hom

// filterSymmetry restricts a branch vertex's candidate set for
// first-occurrence canonicalization: once symmetryPrefix (or more)
// distinct values have already entered the image, every candidate is
// left alone. Before that point, any candidate value that has never been
// used yet ("fresh") is collapsed down to the single smallest such
// value — trying more than one "first occurrence" of an unused value at
// the same branch point only reproduces isomorphic subtrees under any
// automorphism of H permuting the unused values. Already-used candidate
// values are never touched: they represent genuinely distinct choices,
// not symmetric ones.
//
// This is deliberately documented as "first-occurrence canonicalization
// over a caller-chosen prefix length," not as a quotient by Aut(H): it
// prunes a real but restricted class of symmetric duplicates, and the
// caller controls how deep into the search it applies via
// WithSymmetryPrefix.
func (e *engine) filterSymmetry(cands []int) []int {
	if e.usedCount >= e.symmetryPrefix {
		return cands
	}

	var used, fresh []int
	for _, u := range cands {
		if e.imageUsed[u] {
			used = append(used, u)
		} else {
			fresh = append(fresh, u)
		}
	}
	if len(fresh) == 0 {
		return used
	}
	// fresh is built from bits(), already ascending.
	return append(used, fresh[0])
}
