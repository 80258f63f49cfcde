package hom

import (
	"context"
	"fmt"

	"github.com/latticehom/homsearch/core"
)

// frame is one level of the explicit backtracking stack: the vertex
// being branched on, its (symmetry-filtered) candidate list fixed at
// push time, and the bookkeeping needed to undo whichever candidate is
// currently applied. Using an explicit stack instead of Go-level
// recursion keeps goroutine stack growth bounded for dense, high-order
// graphs and makes cooperative cancellation a single check per frame pop.
type frame struct {
	v          int
	cands      []int
	idx        int
	applied    bool
	assignUndo []undoEntry
	usedAdded  bool
}

// engine holds all mutable state for one Search invocation.
type engine struct {
	ctx context.Context

	g, h *bitGraph
	cs   *candidateStore

	f                 []int // g-index -> h-index, -1 if unassigned
	unassigned        []bool
	assignedNeighbors []int // per unassigned g-vertex: count of already-assigned neighbors
	assignedCount     int

	imageUsed []bool // h-index -> already appears in the image
	usedCount int

	retract        bool
	symmetryPrefix int
	cap            int
	onlyCount      bool
	maxDepth       int
	depthBase      int   // assignedCount at the start of this Search call, so maxDepth counts fresh assignments
	branchOrder    []int // g-indices, explicit order; exhausting it cuts the branch like maxDepth
	logger         Logger

	stack []*frame

	count    int
	results  []map[string]string
	complete bool
}

// Search finds homomorphisms f: V(g) -> V(h) preserving every edge of g.
// See SearchOption for the available knobs; an infeasible partial map or
// exhausted search space yields an empty, non-error Result.
func Search(ctx context.Context, g, h *core.Graph, opts ...SearchOption) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}

	bg, err := newBitGraph(g)
	if err != nil {
		return Result{}, err
	}
	bh, err := newBitGraph(h)
	if err != nil {
		return Result{}, err
	}
	if o.retract && bg.n != bh.n {
		return Result{}, fmt.Errorf("hom: retract search requires g and h to be the same graph: %w", ErrMalformedGraph)
	}

	e := &engine{
		ctx:               ctx,
		g:                 bg,
		h:                 bh,
		cs:                newCandidateStore(bg, bh),
		f:                 make([]int, bg.n),
		unassigned:        make([]bool, bg.n),
		assignedNeighbors: make([]int, bg.n),
		imageUsed:         make([]bool, bh.n),
		retract:           o.retract,
		symmetryPrefix:    o.symmetryPrefix,
		cap:               o.cap,
		onlyCount:         o.onlyCount,
		maxDepth:          o.maxDepth,
		logger:            o.logger,
		complete:          true,
	}
	for i := range e.f {
		e.f[i] = -1
		e.unassigned[i] = true
	}

	for _, name := range o.branchOrder {
		idx, ok := bg.toIx[name]
		if !ok {
			return Result{}, fmt.Errorf("hom: WithBranchOrder references unknown vertex %q: %w", name, ErrInvalidOption)
		}
		e.branchOrder = append(e.branchOrder, idx)
	}

	if len(o.partialMap) > 0 {
		if !e.seedPartialMap(o.partialMap) {
			return Result{Count: 0}, nil
		}
	}
	e.depthBase = e.assignedCount

	if err := e.run(); err != nil {
		return Result{}, err
	}

	res := Result{Count: e.count, Complete: e.complete}
	if !o.onlyCount {
		res.Maps = e.results
	}
	return res, nil
}

// seedPartialMap fixes f(label)=label for every entry in m, propagating
// candidate narrowing as assign would. Returns false if the partial map
// is infeasible (an edge of g would be violated, or a label is unknown).
func (e *engine) seedPartialMap(m map[string]string) bool {
	for gl, hl := range m {
		gi, ok := e.g.toIx[gl]
		if !ok {
			return false
		}
		hi, ok := e.h.toIx[hl]
		if !ok {
			return false
		}
		if !e.checkAssign(gi, hi) {
			return false
		}
		e.applyAssign(gi, hi)
	}
	return true
}

// run drives the explicit-stack backtracking loop.
func (e *engine) run() error {
	if e.cap == 0 {
		return nil
	}
	if e.shouldCut() {
		if e.assignedCount < e.g.n {
			e.complete = false
		}
		e.emit()
		return nil
	}

	e.stack = append(e.stack, e.pushFrame())

	for len(e.stack) > 0 {
		select {
		case <-e.ctx.Done():
			return e.ctx.Err()
		default:
		}

		top := e.stack[len(e.stack)-1]
		if top.applied {
			e.undoFrame(top)
		}
		if top.idx >= len(top.cands) {
			e.stack = e.stack[:len(e.stack)-1]
			continue
		}
		u := top.cands[top.idx]
		top.idx++
		if !e.checkAssign(top.v, u) {
			continue
		}
		e.doAssignFrame(top, u)

		if e.shouldCut() {
			if e.assignedCount < e.g.n {
				e.complete = false
			}
			if e.emit() {
				break
			}
			continue
		}

		e.stack = append(e.stack, e.pushFrame())
	}
	return nil
}

// shouldCut reports whether the branch currently being built must stop
// extending and be emitted as-is: full assignment, the maxDepth budget
// of fresh assignments (since depthBase) spent, or an explicit
// WithBranchOrder list run out of vertices to assign.
func (e *engine) shouldCut() bool {
	if e.assignedCount == e.g.n {
		return true
	}
	if e.maxDepth >= 0 && (e.assignedCount-e.depthBase) >= e.maxDepth {
		return true
	}
	if len(e.branchOrder) > 0 && !e.hasUnassignedBranchOrder() {
		return true
	}
	return false
}

func (e *engine) hasUnassignedBranchOrder() bool {
	for _, v := range e.branchOrder {
		if e.unassigned[v] {
			return true
		}
	}
	return false
}

// pushFrame selects the next branch vertex and builds its candidate
// list, symmetry-filtered at the point this frame is created.
func (e *engine) pushFrame() *frame {
	v := e.nextBranchVertex()
	cands := bits(e.cs.cand[v], e.h.n)
	cands = e.filterSymmetry(cands)
	return &frame{v: v, cands: cands}
}

// nextBranchVertex picks the next G-vertex to assign. pushFrame is only
// ever called when shouldCut has already verified an explicit
// branchOrder (if any) still has an unassigned entry, so the heuristic
// below only fires when no explicit order was supplied at all.
func (e *engine) nextBranchVertex() int {
	for _, v := range e.branchOrder {
		if e.unassigned[v] {
			return v
		}
	}
	return e.selectBranchVertex()
}

func (e *engine) doAssignFrame(fr *frame, u int) {
	fr.applied = true
	fr.assignUndo = e.applyAssignUndoable(fr.v, u)
	if !e.imageUsed[u] {
		e.imageUsed[u] = true
		e.usedCount++
		fr.usedAdded = true
	}
}

func (e *engine) undoFrame(fr *frame) {
	u := e.f[fr.v]
	e.unapplyAssign(fr.v, fr.assignUndo)
	if fr.usedAdded {
		e.imageUsed[u] = false
		e.usedCount--
	}
	fr.applied = false
	fr.assignUndo = nil
	fr.usedAdded = false
}

// applyAssign is the non-undoable seed-time variant used by
// seedPartialMap, where there is no frame to later pop.
func (e *engine) applyAssign(v, u int) {
	e.cs.fix(v, u)
	e.cs.assign(v, u, e.unassigned)
	e.commitAssign(v, u)
	if !e.imageUsed[u] {
		e.imageUsed[u] = true
		e.usedCount++
	}
}

func (e *engine) applyAssignUndoable(v, u int) []undoEntry {
	undo := []undoEntry{e.cs.fix(v, u)}
	undo = append(undo, e.cs.assign(v, u, e.unassigned)...)
	e.commitAssign(v, u)
	return undo
}

func (e *engine) commitAssign(v, u int) {
	e.f[v] = u
	e.unassigned[v] = false
	e.assignedCount++
	for _, w := range bits(e.g.adj[v], e.g.n) {
		if e.unassigned[w] {
			e.assignedNeighbors[w]++
		}
	}
}

func (e *engine) unapplyAssign(v int, undo []undoEntry) {
	for _, w := range bits(e.g.adj[v], e.g.n) {
		if e.unassigned[w] {
			e.assignedNeighbors[w]--
		}
	}
	e.f[v] = -1
	e.unassigned[v] = true
	e.assignedCount--
	e.cs.restore(undo)
}

// emit records the current assignment (complete or depth-cut) and
// reports whether the search should stop because the cap was reached.
func (e *engine) emit() bool {
	e.count++
	if !e.onlyCount {
		m := make(map[string]string, e.g.n)
		for gi, hi := range e.f {
			if hi < 0 {
				continue
			}
			m[e.g.toID[gi]] = e.h.toID[hi]
		}
		e.results = append(e.results, m)
	}
	return e.cap != CapUnlimited && e.count >= e.cap
}
