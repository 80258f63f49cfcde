package hom

import "errors"

// Sentinel errors returned by the hom package. Wrap with fmt.Errorf and
// "%w" for context; check with errors.Is.
var (
	// ErrMalformedGraph indicates the input graph violates the engine's
	// contract: a nil graph, directed edges, per-edge direction overrides,
	// self-loops, or edges naming unknown vertices. It also marks a
	// non-total or out-of-range map passed to IsHom, an unknown vertex
	// passed to FindHomImage, and a retract search whose g and h differ
	// in order.
	ErrMalformedGraph = errors.New("hom: malformed graph")

	// ErrWorkerFailure indicates a parallel search worker terminated
	// without reporting any result, distinct from a worker that
	// completed and simply found nothing.
	ErrWorkerFailure = errors.New("hom: worker failed to report a result")

	// ErrInvalidOption indicates a functional option carried an invalid
	// value (unknown branching priority, negative depth or cap passed
	// to a raw field instead of the documented sentinel).
	ErrInvalidOption = errors.New("hom: invalid option")

	// ErrLimitExceeded is a non-fatal condition: a parallel search stage
	// produced more partial maps than its branch limit allowed. It is
	// never returned as a hard error; it is logged and recorded in
	// ParallelStats.BranchLimitWarnings.
	ErrLimitExceeded = errors.New("hom: branch limit exceeded")
)
