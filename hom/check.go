package hom

// checkAssign reports whether f(v) = u is consistent with every already
// committed assignment: every assigned neighbor w of v must already map
// to an H-neighbor of u, and — in retract mode — a vertex that is already
// in the image of f is forced to map to itself.
func (e *engine) checkAssign(v, u int) bool {
	if e.retract {
		// v already in the image of some earlier assignment: v must fix itself.
		if e.imageUsed[v] && v != u {
			return false
		}
		// u was already assigned (as a G-vertex) to something other than
		// itself, and is only now entering the image via this assignment:
		// the fixed-point requirement is violated regardless of which
		// assignment happened first.
		if u < len(e.f) && e.f[u] >= 0 && e.f[u] != u {
			return false
		}
	}
	for _, w := range bits(e.g.adj[v], e.g.n) {
		if e.f[w] < 0 {
			continue
		}
		if e.h.adj[u].Bit(e.f[w]) != 1 {
			return false
		}
	}
	return true
}
