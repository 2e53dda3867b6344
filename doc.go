// Package lvlcsp is an in-memory discrete constraint satisfaction (CSP)
// solver: define variables over finite domains, add constraints, solve.
//
// 🚀 What is lvlcsp?
//
//	A deterministic, dependency-light library that brings together:
//		• Core model: tagged values, insertion-ordered prunable domains,
//		  variables, assignments, the undo trail
//		• Constraints: NotEqual, AllDifferent, Equal, LessThan,
//		  LessThanOrEqual, SumEquals, plus user predicates (unary & binary)
//		• Propagation: AC-3 arc consistency and forward checking
//		• Search: depth-first backtracking with MRV / Degree / Static
//		  variable ordering and Natural / LeastConstraining / Random values
//		• Validation: consistency checks and per-constraint violation reports
//		• Config: optional YAML loading of solver knobs
//
// ✨ Why choose lvlcsp?
//
//   - Deterministic – same problem + same options ⇒ same answer, same stats
//   - Rock-solid undo – a trail log restores domains exactly on backtrack
//   - Pure Go core – no cgo; yaml only in the optional config package
//   - Observable – OnAssign/OnBacktrack hooks expose the search as it runs
//
// Everything is organized under five subpackages:
//
//	core/       — Value, Domain, Variable, Assignment, Trail, Stats, contract
//	constraint/ — concrete constraint variants and factory constructors
//	propagate/  — AC-3 worklist engine and the forward checker
//	solver/     — the Solver facade: build, solve, validate, statistics
//	config/     — YAML → solver options (optional collaborator)
//
// Quick taste (map coloring):
//
//	s := solver.New()
//	_ = s.AddVariable("west", core.Str("red"), core.Str("green"))
//	_ = s.AddVariable("east", core.Str("red"), core.Str("green"))
//	_ = s.AddConstraint(constraint.NotEqual("west", "east"))
//	sol, _ := s.Solve() // sol.Satisfied, sol.Assignment, sol.Backtracks
//
// Runnable examples live in solver/example_test.go; the solver tests cover
// n-queens, a distinct-sum puzzle, and an unsatisfiable pigeonhole.
package lvlcsp
