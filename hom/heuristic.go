package hom

import (
	"errors"
	"fmt"
	"sort"

	"github.com/latticehom/homsearch/bfs"
	"github.com/latticehom/homsearch/core"
)

// selectBranchVertex picks the next unassigned G-vertex to branch on:
// maximize (assigned-neighbor count, degree, -index), read
// lexicographically left to right. Ties on the first two keys fall
// through to preferring the lower index, for determinism.
func (e *engine) selectBranchVertex() int {
	best := -1
	for v := 0; v < e.g.n; v++ {
		if !e.unassigned[v] {
			continue
		}
		if best < 0 || better(e, v, best) {
			best = v
		}
	}
	return best
}

func better(e *engine, v, than int) bool {
	if e.assignedNeighbors[v] != e.assignedNeighbors[than] {
		return e.assignedNeighbors[v] > e.assignedNeighbors[than]
	}
	if e.g.deg[v] != e.g.deg[than] {
		return e.g.deg[v] > e.g.deg[than]
	}
	return v < than
}

// OrderMaxAdjacent builds a branching order starting from preordered and
// greedily appending one vertex at a time, chosen by applying priorities
// in reverse via repeated stable sort — the last priority in the list
// sorts first, so the first priority the caller named ends up dominant.
// Recognized priorities: "within" (most neighbors already in the
// ordered prefix), "degree" (largest total degree), "dist2" (smallest
// second-shortest distance to the ordered prefix), "random" (orders by
// label; no random draw is made). An unrecognized name returns
// ErrInvalidOption.
func OrderMaxAdjacent(g *core.Graph, preordered []string, priorities []string) ([]string, error) {
	if g == nil {
		return nil, fmt.Errorf("OrderMaxAdjacent: nil graph: %w", ErrMalformedGraph)
	}
	for _, p := range priorities {
		switch p {
		case "within", "degree", "dist2", "random":
		default:
			return nil, fmt.Errorf("OrderMaxAdjacent: unknown priority %q: %w", p, ErrInvalidOption)
		}
	}

	all := g.Vertices()
	ordered := append([]string(nil), preordered...)
	inOrder := make(map[string]bool, len(all))
	for _, v := range ordered {
		inOrder[v] = true
	}

	remaining := make([]string, 0, len(all))
	for _, v := range all {
		if !inOrder[v] {
			remaining = append(remaining, v)
		}
	}

	for len(remaining) > 0 {
		best, err := pickNext(g, ordered, remaining, priorities)
		if err != nil {
			return nil, err
		}
		ordered = append(ordered, best)
		for i, v := range remaining {
			if v == best {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return ordered, nil
}

func pickNext(g *core.Graph, ordered, remaining []string, priorities []string) (string, error) {
	candidates := append([]string(nil), remaining...)

	for i := len(priorities) - 1; i >= 0; i-- {
		switch priorities[i] {
		case "within":
			withinCount := make(map[string]int, len(candidates))
			for _, v := range candidates {
				nbrs, err := g.NeighborIDs(v)
				if err != nil {
					return "", fmt.Errorf("OrderMaxAdjacent: %w", err)
				}
				c := 0
				for _, n := range nbrs {
					if containsStr(ordered, n) {
						c++
					}
				}
				withinCount[v] = c
			}
			sort.SliceStable(candidates, func(a, b int) bool {
				return withinCount[candidates[a]] > withinCount[candidates[b]]
			})
		case "degree":
			sort.SliceStable(candidates, func(a, b int) bool {
				return degreeOf(g, candidates[a]) > degreeOf(g, candidates[b])
			})
		case "dist2":
			d, err := secondDistToSet(g, candidates, ordered)
			if err != nil {
				return "", err
			}
			sort.SliceStable(candidates, func(a, b int) bool {
				return d[candidates[a]] < d[candidates[b]]
			})
		case "random":
			// Deterministic module: "random" breaks ties by label order
			// rather than drawing entropy the engine has no seed for.
			sort.SliceStable(candidates, func(a, b int) bool {
				return candidates[a] < candidates[b]
			})
		}
	}
	return candidates[0], nil
}

func degreeOf(g *core.Graph, v string) int {
	in, out, undirected, err := g.Degree(v)
	if err != nil {
		return 0
	}
	return in + out + undirected
}

func containsStr(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// secondDistToSet computes, for each vertex v in candidates, its distance
// to the set W (ordered) in the graph obtained by removing one of v's
// edges into W, when v has exactly one neighbor in W. The guard order is
// deliberate: vertices with >=2 neighbors in W short-circuit to distance
// 1 before any edge is removed, since removing one of >=2 edges into W
// still leaves a direct edge into W. Only the exactly-one-neighbor case
// needs the edge-removal + BFS fallback, and by the time that fallback
// runs the direct edge is gone, so the BFS distance is guaranteed >= 2.
// Vertices with zero neighbors in W get the unreachable sentinel g.VertexCount().
func secondDistToSet(g *core.Graph, candidates, w []string) (map[string]int, error) {
	inW := make(map[string]bool, len(w))
	for _, x := range w {
		inW[x] = true
	}
	sentinel := g.VertexCount()

	out := make(map[string]int, len(candidates))
	for _, v := range candidates {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return nil, fmt.Errorf("secondDistToSet: %w", err)
		}
		var inWNeighbors []string
		for _, n := range nbrs {
			if inW[n] {
				inWNeighbors = append(inWNeighbors, n)
			}
		}
		switch {
		case len(inWNeighbors) >= 2:
			out[v] = 1
		case len(inWNeighbors) == 1:
			removed := inWNeighbors[0]
			res, err := bfs.BFS(g, v, bfs.WithFilterNeighbor(func(curr, neighbor string) bool {
				return !((curr == v && neighbor == removed) || (curr == removed && neighbor == v))
			}))
			if err != nil && !errors.Is(err, bfs.ErrWeightedGraph) {
				return nil, fmt.Errorf("secondDistToSet: %w", err)
			}
			best := sentinel
			if res != nil {
				for _, x := range w {
					if d, ok := res.Depth[x]; ok && d < best {
						best = d
					}
				}
			}
			out[v] = best
		default:
			out[v] = sentinel
		}
	}
	return out, nil
}
