package solver

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvlcsp/core"
	"github.com/katalvlaran/lvlcsp/propagate"
)

// errDeadline marks an expired time budget internally; Solve translates it
// into a Satisfied=false Solution rather than an error.
var errDeadline = errors.New("solver: time budget exceeded")

// engine holds all per-solve search state. A dedicated struct (instead of
// closures over Solve locals) keeps dependencies explicit and the hot-path
// state predictable.
type engine struct {
	vars   []*core.Variable
	lookup core.Lookup
	cons   []core.Constraint
	opts   Options

	ctx        context.Context
	usesBudget bool // distinguishes our deadline from caller cancellation

	a     core.Assignment
	tr    *core.Trail
	rng   *rand.Rand
	stats *core.Stats
}

// Solve runs the backtracking search and returns a Solution.
//
// Infeasibility and timeout are reported inside the Solution
// (Satisfied=false); only structural errors (unknown scope ids), invalid
// options, kind mismatches inside constraints, and caller cancellation
// surface as a non-nil error. Domains and assignments are fully restored
// before returning, so a Solver can solve repeatedly.
func (s *Solver) Solve() (Solution, error) {
	if s.opts.err != nil {
		return Solution{}, s.opts.err
	}
	if err := s.bind(); err != nil {
		return Solution{}, err
	}

	s.stats.Reset()
	start := time.Now()

	ctx := s.opts.Ctx
	usesBudget := s.opts.Timeout > 0
	if usesBudget {
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, start.Add(s.opts.Timeout))
		defer cancel()
	}

	e := &engine{
		vars:       s.vars,
		lookup:     s.lookup,
		cons:       s.cons,
		opts:       s.opts,
		ctx:        ctx,
		usesBudget: usesBudget,
		a:          make(core.Assignment, len(s.vars)),
		tr:         core.NewTrail(),
		rng:        rngFromSeed(s.opts.Seed),
		stats:      &s.stats,
	}

	found, err := e.solve()

	sol := Solution{Satisfied: found, Backtracks: s.stats.Backtracks}
	if found {
		sol.Assignment = e.a.Clone()
	} else {
		sol.Assignment = core.Assignment{}
	}

	// Unwind everything so the problem is pristine for the next call.
	e.tr.UndoTo(0)
	for _, v := range s.vars {
		v.Unassign()
	}

	s.stats.TotalTime = time.Since(start)
	sol.SolveTime = s.stats.TotalTime

	if err != nil {
		if errors.Is(err, errDeadline) {
			// Budget exhausted: a result, not an error.
			return sol, nil
		}
		return Solution{}, err
	}
	return sol, nil
}

// solve preprocesses and recurses.
func (e *engine) solve() (bool, error) {
	if e.opts.Propagation {
		ok, err := propagate.AC3(e.ctx, e.cons, e.lookup, e.a, e.tr, e.stats)
		if err != nil {
			return false, e.translate(err)
		}
		if !ok {
			return false, nil
		}
	}
	return e.backtrack(0)
}

// backtrack is the recursive assign → propagate → recurse → undo loop.
func (e *engine) backtrack(depth int) (bool, error) {
	if err := e.interrupted(); err != nil {
		return false, err
	}
	e.stats.NodesExplored++

	if e.a.Complete(len(e.vars)) {
		return true, nil
	}

	v := e.selectVariable()

	order, err := e.orderValues(v)
	if err != nil {
		return false, err
	}

	for _, val := range order {
		mark := e.tr.Mark()
		e.assign(v, val, depth)

		ok, err := e.propagateAfter(v)
		if err != nil {
			e.undo(v, mark)
			return false, err
		}
		if ok {
			found, err := e.backtrack(depth + 1)
			if err != nil {
				e.undo(v, mark)
				return false, err
			}
			if found {
				return true, nil
			}
		}
		e.undo(v, mark)
	}

	e.stats.Backtracks++
	if e.opts.OnBacktrack != nil {
		e.opts.OnBacktrack(v.ID(), depth)
	}
	return false, nil
}

// assign binds val to v and narrows v's domain to the singleton {val},
// recording the narrowing on the trail.
func (e *engine) assign(v *core.Variable, val core.Value, depth int) {
	e.a[v.ID()] = val
	v.Assign(val)
	v.Domain().Each(func(w core.Value) bool {
		if w != val {
			e.tr.Prune(v, w)
			e.stats.DomainReductions++
		}
		return true
	})
	if e.opts.OnAssign != nil {
		e.opts.OnAssign(v.ID(), val, depth)
	}
}

// undo rewinds one failed candidate: trail back to mark, value unbound.
func (e *engine) undo(v *core.Variable, mark int) {
	e.tr.UndoTo(mark)
	v.Unassign()
	delete(e.a, v.ID())
}

// propagateAfter runs the configured propagation step for a fresh
// assignment of v, or a plain consistency check when propagation is off.
func (e *engine) propagateAfter(v *core.Variable) (bool, error) {
	if !e.opts.Propagation {
		for _, c := range v.Constraints() {
			e.stats.ConstraintChecks++
			if !c.IsSatisfied(e.a) {
				return false, nil
			}
		}
		return true, nil
	}

	var (
		ok  bool
		err error
	)
	if e.opts.FullPropagation {
		ok, err = propagate.AC3(e.ctx, e.cons, e.lookup, e.a, e.tr, e.stats)
	} else {
		ok, err = propagate.Forward(e.ctx, v, e.lookup, e.a, e.tr, e.stats)
	}
	if err != nil {
		return false, e.translate(err)
	}
	return ok, nil
}

// interrupted maps context state to the internal deadline sentinel or the
// caller's cancellation error.
func (e *engine) interrupted() error {
	select {
	case <-e.ctx.Done():
		return e.translate(e.ctx.Err())
	default:
		return nil
	}
}

// translate turns a deadline hit on our own budget into errDeadline;
// everything else passes through.
func (e *engine) translate(err error) error {
	if e.usesBudget && errors.Is(err, context.DeadlineExceeded) {
		return errDeadline
	}
	return err
}
