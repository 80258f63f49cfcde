package hom

import (
	"fmt"
	"math/big"

	"github.com/latticehom/homsearch/core"
)

// bitGraph is an immutable, renumbered view of a simple undirected graph:
// vertices are 0..n-1 in sorted-label order, and adjacency is a per-vertex
// bitset. This is the representation the search engine operates on;
// core.Graph remains the public ingress/egress type (§6).
//
// The bitset choice follows the one third-party precedent for this in the
// reference corpus (a graph library building its bitmaps on math/big.Int,
// see OneBits/PopCount) rather than inventing a bespoke bitset type.
type bitGraph struct {
	n    int
	adj  []*big.Int
	deg  []int
	toID []string       // index -> label
	toIx map[string]int // label -> index
}

// newBitGraph validates g against the engine's contract (simple,
// undirected, no per-edge direction overrides) and renumbers it into a
// bitGraph. The two label<->index maps are built once here and used only
// at the package boundary, per the "translate at ingress/egress only"
// design note.
func newBitGraph(g *core.Graph) (*bitGraph, error) {
	if g == nil {
		return nil, fmt.Errorf("hom: nil graph: %w", ErrMalformedGraph)
	}
	if g.Directed() || g.HasDirectedEdges() {
		return nil, fmt.Errorf("hom: directed edges not supported: %w", ErrMalformedGraph)
	}

	labels := g.Vertices() // already sorted lexicographically
	n := len(labels)
	toIx := make(map[string]int, n)
	for i, l := range labels {
		toIx[l] = i
	}

	adj := make([]*big.Int, n)
	for i := range adj {
		adj[i] = new(big.Int)
	}
	for _, e := range g.Edges() {
		if e.Directed {
			return nil, fmt.Errorf("hom: edge %s is directed: %w", e.ID, ErrMalformedGraph)
		}
		u, ok := toIx[e.From]
		if !ok {
			return nil, fmt.Errorf("hom: edge %s references unknown vertex %q: %w", e.ID, e.From, ErrMalformedGraph)
		}
		v, ok := toIx[e.To]
		if !ok {
			return nil, fmt.Errorf("hom: edge %s references unknown vertex %q: %w", e.ID, e.To, ErrMalformedGraph)
		}
		if u == v {
			return nil, fmt.Errorf("hom: self-loop at %q not supported: %w", e.From, ErrMalformedGraph)
		}
		adj[u].SetBit(adj[u], v, 1)
		adj[v].SetBit(adj[v], u, 1)
	}

	deg := make([]int, n)
	for i, a := range adj {
		deg[i] = popCount(a)
	}

	return &bitGraph{n: n, adj: adj, deg: deg, toID: labels, toIx: toIx}, nil
}

// popCount mirrors the reference corpus's big.Int bit-counting idiom
// (Brian Kernighan's word-clearing loop over b.Bits()).
func popCount(b *big.Int) int {
	c := 0
	for _, w := range b.Bits() {
		for w != 0 {
			w &= w - 1
			c++
		}
	}
	return c
}

// oneBits returns a bitset with the low n bits set, used to seed "every
// vertex is still a candidate" before any pruning has happened.
func oneBits(n int) *big.Int {
	one := big.NewInt(1)
	b := new(big.Int)
	return b.Sub(b.Lsh(one, uint(n)), one)
}

// bits returns the sorted list of set bit positions below n, used when a
// candidate set must be iterated deterministically.
func bits(b *big.Int, n int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if b.Bit(i) == 1 {
			out = append(out, i)
		}
	}
	return out
}

// isComplete reports |E| == n(n-1)/2, the distilled spec's documented
// complete-graph shortcut for FindCore. It is valid only for simple
// undirected graphs, which is exactly what bitGraph guarantees.
func (bg *bitGraph) isComplete() bool {
	edges := 0
	for _, a := range bg.adj {
		edges += popCount(a)
	}
	edges /= 2
	return edges == bg.n*(bg.n-1)/2
}

