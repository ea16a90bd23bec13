// Package search defines the state, policy and option types used by Run.
package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// Infinity is the cost of a position that has not been reached yet.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by Run.
var (
	// ErrNilExpander indicates that no expansion policy was supplied.
	ErrNilExpander = errors.New("search: expander is nil")

	// ErrNilCostTable indicates that no cost table was supplied.
	ErrNilCostTable = errors.New("search: cost table is nil")

	// ErrNegativeCost indicates that the start state carries a negative cost.
	ErrNegativeCost = errors.New("search: start cost must be non-negative")

	// ErrNegativeStep indicates that an expansion produced a successor whose
	// cost is lower than the cost of the state it was expanded from.
	ErrNegativeStep = errors.New("search: negative step cost encountered")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Position is the constraint for search positions. Positions are map keys
// (comparable) and must be totally ordered: Compare returns a negative number,
// zero or a positive number when the receiver sorts before, equal to or after
// other. The order is only used to break ties between equal-cost entries.
type Position[P any] interface {
	comparable
	Compare(other P) int
}

// State is a frontier entry: the cost paid to reach Pos.
type State[P any] struct {
	Cost int64
	Pos  P
}

// Expander produces the successor states of s. Implementations must be pure:
// repeated calls with the same state return the same successors.
type Expander[P any] interface {
	Expand(s State[P]) []State[P]
}

// ExpanderFunc adapts an ordinary function to the Expander interface.
type ExpanderFunc[P any] func(s State[P]) []State[P]

// Expand calls f(s).
func (f ExpanderFunc[P]) Expand(s State[P]) []State[P] { return f(s) }

// Options configures a single Run.
//
// OnPop    – called for every entry taken off the frontier, stale ones included.
// OnRelax  – called after each successful cost-table update.
// MaxCost  – entries costing more than this are neither pushed nor expanded.
// Logger   – receives per-pop trace events and a debug summary.
type Options[P any] struct {
	OnPop   func(s State[P])
	OnRelax func(s State[P])
	MaxCost int64
	Logger  zerolog.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures Run via functional arguments. Invalid options are
// recorded and surfaced by Run as ErrOptionViolation.
type Option[P any] func(*Options[P])

// DefaultOptions returns Options with no-op hooks, no cost cap and a
// disabled logger.
func DefaultOptions[P any]() Options[P] {
	return Options[P]{
		OnPop:   func(State[P]) {},
		OnRelax: func(State[P]) {},
		MaxCost: Infinity,
		Logger:  zerolog.Nop(),
	}
}

// WithOnPop registers a callback invoked for every popped entry.
func WithOnPop[P any](fn func(s State[P])) Option[P] {
	return func(o *Options[P]) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithOnRelax registers a callback invoked after each relaxation.
func WithOnRelax[P any](fn func(s State[P])) Option[P] {
	return func(o *Options[P]) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithMaxCost caps the explored cost. A goal costing more than max is
// reported as not found.
//
//	max >= 0: cap at max
//	max < 0:  invalid option → ErrOptionViolation
func WithMaxCost[P any](max int64) Option[P] {
	return func(o *Options[P]) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithLogger sets the logger used for tracing.
func WithLogger[P any](l zerolog.Logger) Option[P] {
	return func(o *Options[P]) {
		o.Logger = l
	}
}
