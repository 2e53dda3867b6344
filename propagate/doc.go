// Package propagate provides the two propagation engines driving the
// lvlcsp search: AC-3 arc consistency and single-step forward checking.
//
// What
//
//   - AC3: a FIFO worklist over every (variable, constraint) arc. Each pop
//     calls the constraint's Revise on the arc's variable; a modified domain
//     re-enqueues the sibling arcs, an emptied domain fails the propagation.
//     Runs to fixpoint.
//   - Forward: after one assignment, revises each still-unassigned neighbor
//     of the assigned variable once per shared constraint — no queue, no
//     fixpoint. The
//     cheap default during search.
//
// Both engines record every pruning on the caller's trail so that
// backtracking restores domains exactly, and maintain the caller's Stats
// (one constraint check per revise, one domain reduction per removal).
//
// Guarantees
//
//   - Termination: every enqueue follows a strict domain reduction, and
//     total domain size is finite, so AC3 performs at most Σ|domain_i|
//     productive revisions.
//   - Monotonicity: revise only removes values; domains never grow.
//   - Determinism: arcs seed in (constraint, scope) insertion order and the
//     queue is strictly FIFO, so pruning order is reproducible.
//
// Errors
//
//	The boolean result distinguishes consistency (true) from a domain
//	wipeout (false); both are normal outcomes. An error means the solve
//	must abort: a kind mismatch inside a constraint, or ctx cancellation
//	(checked once per queue iteration).
package propagate
