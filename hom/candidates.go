package hom

import "math/big"

// candidateStore tracks, for every G-vertex, the set of H-vertices it
// could still map to given the assignments made so far. It supports
// incremental narrowing on assign and exact undo on unassign, so the
// engine never has to recompute the whole store from scratch inside the
// backtracking loop.
type candidateStore struct {
	g    *bitGraph
	h    *bitGraph
	cand []*big.Int
}

// undoEntry records one candidate-set narrowing so it can be reversed.
type undoEntry struct {
	vertex int
	prior  *big.Int
}

// newCandidateStore builds the initial store: every unassigned G-vertex
// may map to any H-vertex, except where a partial map already fixes it
// (represented by the engine narrowing cand afterwards via seedPartialMap).
func newCandidateStore(g, h *bitGraph) *candidateStore {
	cs := &candidateStore{g: g, h: h, cand: make([]*big.Int, g.n)}
	full := oneBits(h.n)
	for v := 0; v < g.n; v++ {
		cs.cand[v] = new(big.Int).Set(full)
	}
	return cs
}

// fix narrows vertex v's candidate set down to exactly {u}, recording the
// prior value so it can be restored. Used both for direct assignment and
// for seeding a caller-supplied partial map.
func (cs *candidateStore) fix(v, u int) undoEntry {
	prior := cs.cand[v]
	cs.cand[v] = new(big.Int).SetBit(new(big.Int), u, 1)
	return undoEntry{vertex: v, prior: prior}
}

// assign propagates the consequence of f(v) = u to every unassigned
// neighbor w of v: w's candidates are intersected with H's neighbors of
// u, since any eventual f(w) must be adjacent to f(v) in H. Returns the
// list of touched vertices' prior candidate sets, in touch order, so the
// caller can undo exactly this call's effect.
func (cs *candidateStore) assign(v, u int, unassigned []bool) []undoEntry {
	var undo []undoEntry
	hNeighbors := cs.h.adj[u]
	for _, w := range bits(cs.g.adj[v], cs.g.n) {
		if !unassigned[w] {
			continue
		}
		before := cs.cand[w]
		after := new(big.Int).And(before, hNeighbors)
		if after.Cmp(before) == 0 {
			continue
		}
		undo = append(undo, undoEntry{vertex: w, prior: before})
		cs.cand[w] = after
	}
	return undo
}

// restore reverses a batch of undoEntry records in reverse order (LIFO),
// matching the explicit-stack frame discipline in engine.go.
func (cs *candidateStore) restore(undo []undoEntry) {
	for i := len(undo) - 1; i >= 0; i-- {
		cs.cand[undo[i].vertex] = undo[i].prior
	}
}
