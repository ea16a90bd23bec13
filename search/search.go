// Package search implements a generic best-first shortest-path engine.
//
// Notes on implementation choices:
//
//   - Stale heap entries are filtered on pop instead of using decrease-key.
//   - The goal test happens on pop, not on push: the first pop of the goal is
//     optimal because costs never decrease along an expansion.
//   - Every successor is checked against its parent's cost so that a policy
//     with negative steps fails loudly (ErrNegativeStep) instead of returning
//     a wrong answer.
package search

import (
	"container/heap"
	"fmt"

	"github.com/rs/zerolog"
)

// Run searches from start to goal and returns the minimum cost to reach goal.
//
// Returns:
//
//   - cost:  the optimal cost, valid only when found is true.
//   - found: false when the goal is unreachable (or lies beyond MaxCost).
//   - err:   a sentinel error for invalid input; unreachability is not an error.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. expand must be non-nil (ErrNilExpander).
//  3. costs must be non-nil (ErrNilCostTable).
//  4. start.Cost must be ≥ 0 (ErrNegativeCost).
//
// The cost table is written only by relaxation, so each entry strictly
// decreases over the run. It is left populated when Run returns.
func Run[P Position[P]](expand Expander[P], costs CostTable[P], start State[P], goal P, opts ...Option[P]) (int64, bool, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions[P]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return 0, false, cfg.err
	}

	// 2) Validate collaborators and the seed
	if expand == nil {
		return 0, false, ErrNilExpander
	}
	if costs == nil {
		return 0, false, ErrNilCostTable
	}
	if start.Cost < 0 {
		return 0, false, fmt.Errorf("%w: got %d", ErrNegativeCost, start.Cost)
	}

	// 3) Run the main loop
	r := &runner[P]{
		expand: expand,
		costs:  costs,
		goal:   goal,
		opts:   cfg,
		pq:     make(frontier[P], 0, 16),
	}
	r.seed(start)
	cost, found, err := r.process()
	r.summary(found, cost, err)

	return cost, found, err
}

// runner holds the mutable state of a single Run.
type runner[P Position[P]] struct {
	expand Expander[P]
	costs  CostTable[P]
	goal   P
	opts   Options[P]
	pq     frontier[P]

	pops, pushes, stale int
}

// seed records the start cost (when it improves the table) and pushes it.
func (r *runner[P]) seed(start State[P]) {
	heap.Init(&r.pq)
	if start.Cost > r.opts.MaxCost {
		return
	}
	if start.Cost < r.costs.Lookup(start.Pos) {
		r.costs.Update(start.Pos, start.Cost)
		r.opts.OnRelax(start)
	}
	r.push(start)
}

// process pops entries until the goal is reached or the frontier drains.
func (r *runner[P]) process() (int64, bool, error) {
	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(State[P])
		r.pops++
		r.opts.OnPop(cur)
		r.opts.Logger.Trace().
			Int64("cost", cur.Cost).
			Interface("pos", cur.Pos).
			Msg("pop")

		if cur.Pos == r.goal {
			return cur.Cost, true, nil
		}

		// A cheaper path to cur.Pos was relaxed after this entry was pushed.
		if cur.Cost > r.costs.Lookup(cur.Pos) {
			r.stale++
			continue
		}

		if err := r.relax(cur); err != nil {
			return 0, false, err
		}
	}

	return 0, false, nil
}

// relax expands cur and pushes every successor that improves the table.
func (r *runner[P]) relax(cur State[P]) error {
	for _, next := range r.expand.Expand(cur) {
		if next.Cost < cur.Cost {
			return fmt.Errorf("%w: %v→%v cost %d→%d", ErrNegativeStep, cur.Pos, next.Pos, cur.Cost, next.Cost)
		}
		if next.Cost > r.opts.MaxCost {
			continue
		}
		// strict "<" keeps equal-cost duplicates out of the heap
		if next.Cost >= r.costs.Lookup(next.Pos) {
			continue
		}
		r.costs.Update(next.Pos, next.Cost)
		r.opts.OnRelax(next)
		r.push(next)
	}

	return nil
}

func (r *runner[P]) push(s State[P]) {
	heap.Push(&r.pq, s)
	r.pushes++
}

// summary logs run statistics at debug level.
func (r *runner[P]) summary(found bool, cost int64, err error) {
	var ev *zerolog.Event
	if err != nil {
		ev = r.opts.Logger.Warn().Err(err)
	} else {
		ev = r.opts.Logger.Debug()
	}
	ev.Bool("found", found).
		Int64("cost", cost).
		Int("pops", r.pops).
		Int("pushes", r.pushes).
		Int("stale", r.stale).
		Msg("search finished")
}
