// Package hom searches for graph homomorphisms: structure-preserving maps
// f: V(G) -> V(H) such that every edge of G maps to an edge of H.
//
// It builds on core.Graph for input/output at the package boundary and
// renumbers to a bitset-backed internal representation for the search
// itself. On top of the base search it offers retracts (homomorphisms of
// a graph to itself fixing its image pointwise), homomorphic images, and
// cores (the smallest retract of a graph, unique up to isomorphism).
//
// Complexity: the base problem is NP-complete; the backtracking engine
// relies on candidate-set pruning, a dynamic branching heuristic, and
// symmetry breaking to keep practical instances tractable, but no bound
// better than exponential in the worst case is claimed.
//
// Concurrency: Search is single-threaded; SearchParallel splits the top
// levels of the search tree across an errgroup-bounded worker pool.
package hom
