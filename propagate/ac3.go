package propagate

import (
	"context"

	"github.com/katalvlaran/lvlcsp/core"
)

// arc pairs a variable with one constraint whose scope contains it.
type arc struct {
	v *core.Variable
	c core.Constraint
}

// ac3 holds the worklist state for one propagation run.
type ac3 struct {
	ctx   context.Context
	vars  core.Lookup
	a     core.Assignment
	tr    *core.Trail
	stats *core.Stats
	queue []arc
}

// AC3 enforces arc consistency across the whole constraint graph: it seeds
// one arc per (scope variable, constraint) pair and revises to fixpoint.
//
// Returns (false, nil) when some domain empties (the subtree is
// infeasible), (true, nil) at a consistent fixpoint, and a non-nil error
// on cancellation or a constraint evaluation error. Prunings go on tr;
// stats counts one check per revise and one reduction per removed value.
//
// Complexity: O(e·d) revise calls for e arcs and maximum domain size d.
func AC3(ctx context.Context, constraints []core.Constraint, vars core.Lookup, a core.Assignment, tr *core.Trail, stats *core.Stats) (bool, error) {
	e := &ac3{ctx: ctx, vars: vars, a: a, tr: tr, stats: stats}
	e.seed(constraints)
	return e.run()
}

// seed fills the queue with every arc, in constraint-then-scope order.
func (e *ac3) seed(constraints []core.Constraint) {
	for _, c := range constraints {
		for _, id := range c.Scope() {
			if v := e.vars(id); v != nil {
				e.queue = append(e.queue, arc{v: v, c: c})
			}
		}
	}
}

// run drains the queue to fixpoint.
func (e *ac3) run() (bool, error) {
	for len(e.queue) > 0 {
		// cancellation/timeout check (once per iteration)
		select {
		case <-e.ctx.Done():
			return false, e.ctx.Err()
		default:
		}

		cur := e.queue[0]
		e.queue = e.queue[1:]

		e.stats.ConstraintChecks++
		removed, err := cur.c.Revise(cur.v, e.vars, e.a, e.tr)
		if err != nil {
			return false, err
		}
		if removed == 0 {
			continue
		}
		e.stats.DomainReductions += uint64(removed)

		if cur.v.Domain().IsEmpty() {
			return false, nil
		}
		e.requeueNeighbors(cur)
	}
	return true, nil
}

// requeueNeighbors re-enqueues (Y, C') for every constraint C' ≠ C attached
// to the revised variable and every scope variable Y other than it.
func (e *ac3) requeueNeighbors(cur arc) {
	for _, c2 := range cur.v.Constraints() {
		if c2 == cur.c {
			continue
		}
		for _, id := range c2.Scope() {
			if id == cur.v.ID() {
				continue
			}
			if y := e.vars(id); y != nil {
				e.queue = append(e.queue, arc{v: y, c: c2})
			}
		}
	}
}
