package hom

import (
	"context"
	"fmt"

	"github.com/latticehom/homsearch/core"
)

// FindRetracts runs Search in retract mode: g is matched against itself,
// with every vertex already in the image forced to map to itself. The
// identity map is always among the results (it trivially satisfies every
// constraint).
func FindRetracts(ctx context.Context, g *core.Graph, opts ...SearchOption) (Result, error) {
	opts = append(append([]SearchOption(nil), opts...), WithRetract())
	return Search(ctx, g, g, opts...)
}

// FindHomImage looks for a single vertex v (drawn from candidates, or
// every vertex of g in sorted order if candidates is nil) such that g
// has a homomorphism onto g minus v. It returns the induced subgraph on
// the image of the first such map found, and true; or (nil, false, nil)
// if g already has no proper homomorphic image among the candidates.
//
// Operating on the whole graph (rather than per connected component) is
// deliberate: two components that are homomorphically equivalent (e.g.
// two copies of the same complete graph) can only collapse onto one
// another through a map that spans both, which a per-component search
// would never consider.
func FindHomImage(g *core.Graph, candidates []string) (*core.Graph, bool, error) {
	if candidates == nil {
		candidates = g.Vertices()
	}
	for _, v := range candidates {
		if !g.HasVertex(v) {
			return nil, false, fmt.Errorf("hom: FindHomImage: unknown vertex %q: %w", v, ErrMalformedGraph)
		}
		keep := make(map[string]bool, g.VertexCount())
		for _, id := range g.Vertices() {
			keep[id] = id != v
		}
		target := core.InducedSubgraph(g, keep)

		res, err := Search(context.Background(), g, target, WithCap(1))
		if err != nil {
			return nil, false, err
		}
		if res.Count == 0 {
			continue
		}
		f := res.Maps[0]
		image := make(map[string]bool, g.VertexCount())
		for _, u := range f {
			image[u] = true
		}
		return core.InducedSubgraph(g, image), true, nil
	}
	return nil, false, nil
}

// FindCore computes the core of g: its smallest retract, unique up to
// isomorphism. A complete graph is its own core (valid for simple
// undirected graphs, which is all this package accepts). Otherwise g is
// repeatedly replaced by a strictly smaller homomorphic image (via
// FindHomImage) until no further reduction is possible; each successful
// reduction strictly decreases vertex count, so this terminates. When g
// is vertex-transitive, the first reduction attempt is restricted to a
// single vertex, since every vertex is equivalent for that purpose.
func FindCore(g *core.Graph, vertexTransitive bool) (*core.Graph, error) {
	bg, err := newBitGraph(g)
	if err != nil {
		return nil, err
	}
	if bg.isComplete() {
		return g, nil
	}

	var first []string
	if vertexTransitive {
		verts := g.Vertices()
		if len(verts) > 0 {
			first = verts[:1]
		}
	}

	reduced, ok, err := FindHomImage(g, first)
	if err != nil {
		return nil, err
	}
	if !ok {
		return g, nil
	}

	current := reduced
	for {
		next, ok, err := FindHomImage(current, nil)
		if err != nil {
			return nil, err
		}
		if !ok {
			return current, nil
		}
		current = next
	}
}
