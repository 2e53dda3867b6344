package solver

import (
	"fmt"

	"github.com/katalvlaran/lvlcsp/core"
)

// Solver owns one CSP: its variables, its constraints, its configuration,
// and the statistics of the most recent solve.
//
// A Solver is not safe for concurrent use; distinct instances are
// independent. Constraints are immutable after construction and may be
// shared between instances.
type Solver struct {
	vars  []*core.Variable
	index map[core.VariableID]int
	cons  []core.Constraint
	opts  Options
	stats core.Stats
}

// New creates an empty Solver, applying any number of functional Options.
// Invalid options are surfaced as ErrOptionViolation by Solve.
func New(opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Solver{
		index: make(map[core.VariableID]int),
		opts:  o,
	}
}

// AddVariable registers a variable with the given discrete domain.
// Duplicate values are dropped; duplicate ids and empty domains are
// structural errors surfaced immediately.
func (s *Solver) AddVariable(id core.VariableID, values ...core.Value) error {
	if _, dup := s.index[id]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateVariable, id)
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyDomain, id)
	}
	s.index[id] = len(s.vars)
	s.vars = append(s.vars, core.NewVariable(id, core.NewDomain(values...)))
	return nil
}

// AddConstraint registers a constraint. A nil constraint is rejected here;
// scope ids are checked against the variable set when Solve runs, so
// variables and constraints may be added in any order.
func (s *Solver) AddConstraint(c core.Constraint) error {
	if c == nil {
		return ErrNilConstraint
	}
	s.cons = append(s.cons, c)
	return nil
}

// Clear releases variables, constraints, and statistics, returning the
// Solver to its post-New state. Options are kept.
func (s *Solver) Clear() {
	s.vars = nil
	s.index = make(map[core.VariableID]int)
	s.cons = nil
	s.stats.Reset()
}

// VariableCount returns the number of registered variables.
func (s *Solver) VariableCount() int { return len(s.vars) }

// ConstraintCount returns the number of registered constraints.
func (s *Solver) ConstraintCount() int { return len(s.cons) }

// Statistics returns the counters accumulated by the most recent Solve.
func (s *Solver) Statistics() core.Stats { return s.stats }

// ResetStatistics zeroes the counters.
func (s *Solver) ResetStatistics() { s.stats.Reset() }

// lookup resolves an id to its solver-owned Variable, or nil.
func (s *Solver) lookup(id core.VariableID) *core.Variable {
	i, ok := s.index[id]
	if !ok {
		return nil
	}
	return s.vars[i]
}

// bind validates every constraint's scope against the variable set and
// rebuilds the variable→constraint adjacency from scratch.
func (s *Solver) bind() error {
	for _, v := range s.vars {
		v.DetachAll()
	}
	for _, c := range s.cons {
		for _, id := range c.Scope() {
			v := s.lookup(id)
			if v == nil {
				return fmt.Errorf("%w: %q in %s", ErrUnknownVariable, id, c.String())
			}
			v.Attach(c)
		}
	}
	return nil
}
