package hom

import "fmt"

// CapUnlimited is the distinguished "no limit" sentinel for WithCap,
// chosen over overloading 0 per the documented convention: a caller who
// explicitly wants zero results can still ask for WithCap(0).
const CapUnlimited = -1

// searchOptions holds the resolved configuration for Search.
type searchOptions struct {
	cap            int
	maxDepth       int // -1 = until every vertex is assigned
	onlyCount      bool
	symmetryPrefix int
	partialMap     map[string]string
	retract        bool
	branchOrder    []string
	logger         Logger
	err            error
}

func defaultSearchOptions() searchOptions {
	return searchOptions{
		cap:      CapUnlimited,
		maxDepth: -1,
		logger:   nullLogger{},
	}
}

// SearchOption configures Search, FindRetracts, and SearchParallel.
type SearchOption func(*searchOptions)

// WithCap bounds the number of maps returned (or counted). Use
// CapUnlimited (the default) for no bound; 0 means "stop immediately,
// report nothing."
func WithCap(n int) SearchOption {
	return func(o *searchOptions) {
		if n < CapUnlimited {
			o.err = fmt.Errorf("WithCap: negative cap %d: %w", n, ErrInvalidOption)
			return
		}
		o.cap = n
	}
}

// WithMaxDepth stops extending a branch once it has made d further
// assignments beyond whatever partial map it started from (d >= 0); a
// map cut short this way marks the Result incomplete, while a branch that
// is already total at that point stays complete. Absent, search runs
// until every G-vertex is assigned.
func WithMaxDepth(d int) SearchOption {
	return func(o *searchOptions) {
		if d < 0 {
			o.err = fmt.Errorf("WithMaxDepth: negative depth %d: %w", d, ErrInvalidOption)
			return
		}
		o.maxDepth = d
	}
}

// WithOnlyCount skips materializing maps and only counts them (capped by
// WithCap exactly as counting would be).
func WithOnlyCount() SearchOption {
	return func(o *searchOptions) { o.onlyCount = true }
}

// WithSymmetryPrefix enables first-occurrence canonicalization over the
// first k distinct values to enter the image, pruning automorphic
// duplicates of the search tree's earliest branches.
func WithSymmetryPrefix(k int) SearchOption {
	return func(o *searchOptions) {
		if k < 0 {
			o.err = fmt.Errorf("WithSymmetryPrefix: negative prefix %d: %w", k, ErrInvalidOption)
			return
		}
		o.symmetryPrefix = k
	}
}

// WithPartialMap seeds the search with a caller-supplied partial
// assignment. An infeasible partial map yields an empty result, not an
// error.
func WithPartialMap(m map[string]string) SearchOption {
	return func(o *searchOptions) { o.partialMap = m }
}

// WithRetract switches Search into retract mode: H must be G, and any
// vertex already appearing in the image of f is forced to map to itself.
// FindRetracts sets this automatically.
func WithRetract() SearchOption {
	return func(o *searchOptions) { o.retract = true }
}

// WithBranchOrder fixes the vertex visitation order explicitly, in place
// of the dynamic heuristic. Once every vertex in order has been assigned,
// Search stops extending that branch and emits the current partial map as
// a result, exactly like a WithMaxDepth cut.
func WithBranchOrder(order []string) SearchOption {
	return func(o *searchOptions) { o.branchOrder = order }
}

// WithLogger injects a Logger for SearchParallel's branch-limit warnings
// and per-stage frontier sizes. Defaults to a no-op logger.
func WithLogger(l Logger) SearchOption {
	return func(o *searchOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

func resolveOptions(opts []SearchOption) (searchOptions, error) {
	o := defaultSearchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}

// Result is the outcome of a Search, FindRetracts, or SearchParallel call.
type Result struct {
	// Count is populated when onlyCount is set, or always alongside Maps.
	Count int
	// Maps holds found homomorphisms as label->label assignments, absent
	// when onlyCount is set.
	Maps []map[string]string
	// Complete is false when a result was cut short by WithMaxDepth.
	Complete bool
}
