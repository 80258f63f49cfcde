package hom

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/latticehom/homsearch/core"
)

// ParallelStats reports how a SearchParallel run used its worker pool,
// in place of the single running done/total counter the sequential
// driver this is grounded on prints to its log.
type ParallelStats struct {
	Dispatched          int
	Completed           int
	BranchLimitWarnings int
}

// defaultWorkers mirrors the performance-analysis tool's
// DefaultParallelConfig: use every available core unless the caller
// overrides it.
func defaultWorkers() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// SearchParallel runs a staged depth-splitting search starting from the
// caller's WithPartialMap (or the empty map): for each depth d in depths
// except the last (ascending, counted from that starting map), every
// frontier partial map is extended to depth d by one Search call on the
// worker pool, and the results form the next frontier; the final stage
// then runs a full search from each frontier partial map, one worker each.
// The last entry of depths is not used as a cut depth. The worker pool shape (bounded errgroup draining
// a task channel, shared context for cancellation) follows the
// performance-analysis tool's ParallelAnalyzer.
func SearchParallel(ctx context.Context, g, h *core.Graph, depths []int, opts ...SearchOption) (Result, *ParallelStats, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, nil, err
	}
	if len(depths) == 0 {
		res, err := Search(ctx, g, h, opts...)
		return res, &ParallelStats{Dispatched: 1, Completed: 1}, err
	}

	frontier := []map[string]string{o.partialMap}
	seedSize := len(o.partialMap)
	stats := &ParallelStats{}

	for stageIdx, d := range depths {
		isLast := stageIdx == len(depths)-1
		var nextFrontier []map[string]string
		var mu sync.Mutex

		g2, ctx2 := errgroup.WithContext(ctx)
		g2.SetLimit(defaultWorkers())

		var aggregated []map[string]string
		var aggCount int

		for _, partial := range frontier {
			partial := partial
			stats.Dispatched++
			g2.Go(func() error {
				sizeDelta := len(partial) - seedSize
				prefix := o.symmetryPrefix - sizeDelta
				if prefix < 0 {
					prefix = 0
				}
				// d is the cumulative depth from the start of the whole
				// search; WithMaxDepth counts assignments made since this
				// stage's own seed, so offset by what the seed already holds.
				stageDepth := d - sizeDelta
				if stageDepth < 0 {
					stageDepth = 0
				}

				var stageOpts []SearchOption
				if isLast {
					stageOpts = append(append([]SearchOption(nil), opts...),
						WithPartialMap(partial), WithSymmetryPrefix(prefix))
				} else {
					// Intermediate stages must always materialize Maps to seed
					// the next frontier, so the caller's own opts (which may
					// include WithOnlyCount) are deliberately NOT reused here.
					stageOpts = []SearchOption{
						WithPartialMap(partial), WithSymmetryPrefix(prefix), WithMaxDepth(stageDepth),
					}
					if o.retract {
						stageOpts = append(stageOpts, WithRetract())
					}
					if len(o.branchOrder) > 0 {
						stageOpts = append(stageOpts, WithBranchOrder(o.branchOrder))
					}
					stageOpts = append(stageOpts, WithLogger(o.logger))
					if o.cap != CapUnlimited {
						stageOpts = append(stageOpts, WithCap(o.cap))
					}
				}

				res, err := Search(ctx2, g, h, stageOpts...)
				if err != nil {
					return fmt.Errorf("%w: %v", ErrWorkerFailure, err)
				}

				mu.Lock()
				defer mu.Unlock()
				stats.Completed++
				if !isLast {
					if o.cap != CapUnlimited && res.Count >= o.cap {
						stats.BranchLimitWarnings++
						o.logger.Warnf("%v: stage %d, partial map of size %d", ErrLimitExceeded, stageIdx, len(partial))
					}
					nextFrontier = append(nextFrontier, res.Maps...)
				} else {
					aggCount += res.Count
					if !o.onlyCount {
						aggregated = append(aggregated, res.Maps...)
					}
				}
				return nil
			})
		}

		if err := g2.Wait(); err != nil {
			return Result{}, stats, err
		}

		if isLast {
			return Result{Count: aggCount, Maps: aggregated, Complete: true}, stats, nil
		}
		frontier = nextFrontier
		if reportModulus(len(frontier)) > 0 && len(frontier)%reportModulus(len(frontier)) == 0 {
			o.logger.Infof("hom: stage %d produced %d partial maps", stageIdx, len(frontier))
		}
	}

	return Result{}, stats, nil
}

// reportModulus guards the reporting cadence against the zero-division
// the source driver's unguarded len(args)/100 is prone to on small
// frontiers.
func reportModulus(total int) int {
	m := total / 100
	if m < 1 {
		m = 1
	}
	return m
}
