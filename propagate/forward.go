package propagate

import (
	"context"

	"github.com/katalvlaran/lvlcsp/core"
)

// Forward runs one step of forward checking after assigned received a
// value: every constraint attached to assigned revises each of its other
// still-unassigned scope variables exactly once.
//
// Returns (false, nil) as soon as a neighbor's domain empties; no queue and
// no fixpoint, which is what makes it cheaper than AC3. Prunings go on tr;
// stats counts one check per revise and one reduction per removed value.
func Forward(ctx context.Context, assigned *core.Variable, vars core.Lookup, a core.Assignment, tr *core.Trail, stats *core.Stats) (bool, error) {
	for _, c := range assigned.Constraints() {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		for _, id := range c.Scope() {
			if id == assigned.ID() || a.Bound(id) {
				continue
			}
			y := vars(id)
			if y == nil {
				continue
			}

			stats.ConstraintChecks++
			removed, err := c.Revise(y, vars, a, tr)
			if err != nil {
				return false, err
			}
			if removed == 0 {
				continue
			}
			stats.DomainReductions += uint64(removed)
			if y.Domain().IsEmpty() {
				return false, nil
			}
		}
	}
	return true, nil
}
