// Package constraint provides the concrete constraint variants accepted by
// the lvlcsp solver, built from plain factory functions.
//
// What
//
//   - NotEqual(x, y): the bound values of x and y must differ.
//   - AllDifferent(vs…): all bound scope values pairwise distinct.
//   - Equal / LessThan / LessThanOrEqual(x, y): numeric comparisons between
//     two variables of a single kind (all-int or all-float).
//   - SumEquals(vs, target): integer scope variables summing to target,
//     with range pruning over the unbound remainder.
//   - Unary(v, pred) / Binary(x, y, pred): user-supplied pure predicates.
//
// Every variant honors the core.Constraint contract:
//
//   - IsSatisfied is vacuously true while scope variables are unbound,
//     unless falsity is provable from the bound subset (AllDifferent with a
//     duplicate among bound values, for instance, fails early).
//   - Revise removes from the target variable's domain values that the
//     variant can show have no supporting completion, recording every
//     removal on the trail. A supported value is never removed; Equal and
//     AllDifferent use weaker projections and may keep unsupported values.
//
// Errors
//
//	Numeric variants return core.ErrKindMismatch the first time they meet a
//	non-numeric or cross-kind value; the solver surfaces that to the caller
//	instead of backtracking over it. A panicking user predicate is absorbed:
//	the tested combination counts as unsatisfied and nothing is pruned.
//
// Construction mistakes (empty scope, nil predicate) are
// programmer errors and panic with a stable message, matching the strict
// constructor policy used elsewhere in this library family.
//
// Determinism
//
//	Scope order is the construction order and revise iterates domains in
//	insertion order, so pruning is reproducible run to run.
package constraint
