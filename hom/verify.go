package hom

import (
	"fmt"

	"github.com/latticehom/homsearch/core"
)

// IsHom reports whether f is a homomorphism from g to h: every G-vertex
// is mapped, every image vertex exists in h, and every edge of g maps to
// an edge of h. A malformed f (missing domain vertex, or a range value
// outside h) is a contract violation and returns an error rather than a
// silent false; "not a homomorphism" returns (false, nil).
func IsHom(g, h *core.Graph, f map[string]string) (bool, error) {
	for _, v := range g.Vertices() {
		if _, ok := f[v]; !ok {
			return false, fmt.Errorf("hom: f is not total: missing image for %q: %w", v, ErrMalformedGraph)
		}
	}
	for _, u := range f {
		if !h.HasVertex(u) {
			return false, fmt.Errorf("hom: f maps to unknown vertex %q: %w", u, ErrMalformedGraph)
		}
	}
	for _, e := range g.Edges() {
		if !h.HasEdge(f[e.From], f[e.To]) {
			return false, nil
		}
	}
	return true, nil
}
