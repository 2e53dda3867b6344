// Package core provides the fundamental data model shared by every lvlcsp
// package: discrete values, variables with prunable domains, assignments,
// the constraint contract, the undo trail, and solver statistics.
//
// What
//
//   - Value: a tagged union over {int64, float64, string, bool}. Comparable,
//     so it can key maps and be tested with ==. Ordering and arithmetic are
//     defined only between values of the same Kind.
//   - Domain: an insertion-ordered set of Values with O(1) removal and
//     restoration. Removal never reorders surviving values, which keeps
//     search fully deterministic.
//   - Variable: identity + current domain + optional assigned value + the
//     constraints attached to it (non-owning; the solver owns both sides).
//   - Assignment: a map from VariableID to Value, extended and rolled back
//     by the search — one logical assignment per search frame, one physical map.
//   - Constraint: the contract every constraint variant honors; see the
//     Constraint interface for the satisfaction and revise semantics.
//   - Trail: the undo log of domain prunings. Backtracking restores domains
//     by replaying the trail in reverse.
//   - Stats: counters maintained by the search and propagation engines.
//
// Why
//
//	Variables reference constraints and constraints reference variables.
//	Holding both sides as solver-owned values and crossing the gap with
//	VariableIDs (resolved through a Lookup) removes the ownership cycle and
//	makes undo a pure replay of recorded prunings.
//
// Determinism
//
//	Domains preserve insertion order under any sequence of Remove/Restore
//	pairs, so re-running the same problem with the same configuration visits
//	the same search tree and produces identical statistics.
//
// See: the constraint, propagate and solver packages for the engines built
// on top of these types.
package core
