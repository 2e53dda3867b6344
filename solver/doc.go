// Package solver provides the lvlcsp constraint satisfaction engine:
// problem construction, interleaved backtracking search with propagation,
// ordering heuristics, validation, and statistics.
//
// What
//
//   - Build a problem with AddVariable / AddConstraint, then call Solve.
//   - Solve runs depth-first backtracking: select a variable (Static, MRV,
//     Degree, DynamicMRV), order its candidates (Natural, LeastConstraining,
//     Random with a fixed seed), assign, propagate (forward checking by
//     default, full AC-3 with WithFullPropagation, plain consistency checks
//     with propagation off), recurse, undo through the trail on failure.
//   - AC-3 preprocesses the initial problem when propagation is enabled,
//     failing fast on an empty domain.
//   - IsConsistent / Validate check a caller-supplied assignment without
//     touching solver state.
//
// Why
//
//	Finite-domain CSPs (scheduling, placement, puzzles, configuration)
//	reduce to exactly this loop; the engine keeps the search tree cheap to
//	unwind by logging domain prunings instead of copying domains per frame.
//
// Outcomes
//
//	Solve returns (Solution, error). Unsatisfiability and an exhausted time
//	budget are Solutions with Satisfied=false — normal results. Errors are
//	reserved for misuse and abort conditions: ErrOptionViolation,
//	ErrUnknownVariable, core.ErrKindMismatch from a numeric constraint over
//	non-numeric values, or the caller's context error.
//
// Determinism
//
//	Given identical variables, constraints, and options (including the
//	seed), two runs produce identical Solutions and identical statistics:
//	iteration follows insertion order, the AC-3 queue is FIFO, and the
//	Random ordering derives from a fixed seed.
//
// Concurrency
//
//	A Solver is single-threaded; Solve runs entirely on the calling
//	goroutine and returns only on completion, unsatisfiability, timeout, or
//	cancellation. Distinct Solver instances are independent, and immutable
//	constraints may be shared between them.
//
// Usage
//
//	s := solver.New(
//	    solver.WithTimeout(2*time.Second),
//	    solver.WithVariableOrdering(solver.MRV),
//	    solver.WithValueOrdering(solver.LeastConstraining),
//	)
//	_ = s.AddVariable("x", core.IntRange(1, 3)...)
//	_ = s.AddVariable("y", core.IntRange(1, 3)...)
//	_ = s.AddConstraint(constraint.NotEqual("x", "y"))
//	sol, err := s.Solve()
//
// Errors
//
//   - ErrDuplicateVariable, ErrEmptyDomain   from AddVariable
//   - ErrNilConstraint                       from AddConstraint
//   - ErrUnknownVariable, ErrOptionViolation from Solve
//   - core.ErrKindMismatch                   from numeric constraints
package solver
