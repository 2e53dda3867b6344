package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/lvlcsp/core"
)

// VariableOrdering selects which unassigned variable the search branches
// on next.
type VariableOrdering uint8

const (
	// MRV picks the smallest current domain; ties break by degree to other
	// unassigned variables, then by insertion order. The default.
	MRV VariableOrdering = iota

	// Static picks the first unassigned variable in insertion order.
	Static

	// Degree picks the variable with the most constraints touching other
	// unassigned variables; ties break by insertion order.
	Degree

	// DynamicMRV is MRV recomputed from scratch on every call. Selection
	// runs once per search node in this engine, so it currently coincides
	// with MRV; the knob is kept so configurations stay portable.
	DynamicMRV
)

// String returns the stable lowercase name used by configuration files.
func (o VariableOrdering) String() string {
	switch o {
	case MRV:
		return "mrv"
	case Static:
		return "static"
	case Degree:
		return "degree"
	case DynamicMRV:
		return "dynamic-mrv"
	default:
		return "unknown"
	}
}

// ValueOrdering selects the order candidate values are tried in.
type ValueOrdering uint8

const (
	// Natural tries values in domain (insertion) order. The default.
	Natural ValueOrdering = iota

	// LeastConstraining tries first the value that would remove the fewest
	// values from neighboring domains; stable ascending by that count.
	LeastConstraining

	// Random tries values in a seeded deterministic shuffle; see WithSeed.
	Random
)

// String returns the stable lowercase name used by configuration files.
func (o ValueOrdering) String() string {
	switch o {
	case Natural:
		return "natural"
	case LeastConstraining:
		return "least-constraining"
	case Random:
		return "random"
	default:
		return "unknown"
	}
}

// Option configures a Solver via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds the solver configuration.
type Options struct {
	// Ctx allows external cancellation; defaults to context.Background().
	Ctx context.Context

	// Timeout is the wall-clock budget for one Solve; 0 disables it.
	// Hitting the budget yields a Solution with Satisfied=false, not an error.
	Timeout time.Duration

	// Propagation toggles constraint propagation: AC-3 preprocessing before
	// the search plus per-assignment pruning during it. Default true.
	// Disabled, the search falls back to plain consistency checks.
	Propagation bool

	// FullPropagation replaces the per-assignment forward check with a full
	// AC-3 pass. Stronger pruning, higher per-node cost. Default false.
	FullPropagation bool

	// VarOrdering selects the variable heuristic. Default MRV.
	VarOrdering VariableOrdering

	// ValOrdering selects the value heuristic. Default Natural.
	ValOrdering ValueOrdering

	// Seed drives the Random value ordering. 0 selects a fixed default
	// seed, so runs are reproducible unless the caller opts out.
	Seed int64

	// OnAssign, if non-nil, is invoked after each search assignment with
	// the variable, the tried value, and the search depth.
	OnAssign func(id core.VariableID, v core.Value, depth int)

	// OnBacktrack, if non-nil, is invoked when a variable exhausts its
	// candidates and the search unwinds past it.
	OnBacktrack func(id core.VariableID, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the documented defaults: background context, no
// timeout, propagation on (forward checking), MRV + Natural orderings,
// fixed seed, no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Timeout:     0,
		Propagation: true,
		VarOrdering: MRV,
		ValOrdering: Natural,
		Seed:        0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeout sets the wall-clock budget for one Solve.
//
//	d > 0: stop after d, reporting Satisfied=false
//	d == 0: explicit "no budget"
//	d < 0: invalid option → ErrOptionViolation
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative timeout %v", ErrOptionViolation, d)
			return
		}
		o.Timeout = d
	}
}

// WithPropagation toggles constraint propagation.
func WithPropagation(enabled bool) Option {
	return func(o *Options) { o.Propagation = enabled }
}

// WithFullPropagation runs a full AC-3 pass after every assignment instead
// of the cheaper forward check. Implies propagation.
func WithFullPropagation() Option {
	return func(o *Options) {
		o.Propagation = true
		o.FullPropagation = true
	}
}

// WithVariableOrdering selects the variable heuristic.
func WithVariableOrdering(v VariableOrdering) Option {
	return func(o *Options) {
		if v > DynamicMRV {
			o.err = fmt.Errorf("%w: variable ordering %d", ErrOptionViolation, v)
			return
		}
		o.VarOrdering = v
	}
}

// WithValueOrdering selects the value heuristic.
func WithValueOrdering(v ValueOrdering) Option {
	return func(o *Options) {
		if v > Random {
			o.err = fmt.Errorf("%w: value ordering %d", ErrOptionViolation, v)
			return
		}
		o.ValOrdering = v
	}
}

// WithSeed fixes the stream for the Random value ordering. Seed 0 keeps
// the default deterministic stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithOnAssign registers a hook invoked after every search assignment.
func WithOnAssign(fn func(id core.VariableID, v core.Value, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAssign = fn
		}
	}
}

// WithOnBacktrack registers a hook invoked on every backtrack.
func WithOnBacktrack(fn func(id core.VariableID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBacktrack = fn
		}
	}
}
