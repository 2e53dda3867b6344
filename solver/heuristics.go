package solver

import (
	"sort"

	"github.com/katalvlaran/lvlcsp/core"
)

// selectVariable picks the next branching variable per the configured
// ordering. The caller guarantees at least one variable is unassigned.
func (e *engine) selectVariable() *core.Variable {
	switch e.opts.VarOrdering {
	case Static:
		return e.selectStatic()
	case Degree:
		return e.selectDegree()
	default: // MRV and DynamicMRV both rescan; selection runs once per node
		return e.selectMRV()
	}
}

// selectStatic returns the first unassigned variable in insertion order.
func (e *engine) selectStatic() *core.Variable {
	for _, v := range e.vars {
		if !e.a.Bound(v.ID()) {
			return v
		}
	}
	return nil
}

// selectMRV returns the unassigned variable with the smallest current
// domain; ties break by unassigned-neighbor degree (more first), then by
// insertion order (strict comparisons while scanning in order).
func (e *engine) selectMRV() *core.Variable {
	var (
		best       *core.Variable
		bestSize   int
		bestDegree int
	)
	for _, v := range e.vars {
		if e.a.Bound(v.ID()) {
			continue
		}
		size := v.Domain().Size()
		if best == nil || size < bestSize {
			best, bestSize, bestDegree = v, size, e.unassignedDegree(v)
			continue
		}
		if size == bestSize {
			if d := e.unassignedDegree(v); d > bestDegree {
				best, bestSize, bestDegree = v, size, d
			}
		}
	}
	return best
}

// selectDegree returns the unassigned variable with the most constraints
// touching other unassigned variables; ties break by insertion order.
func (e *engine) selectDegree() *core.Variable {
	var (
		best       *core.Variable
		bestDegree int
	)
	for _, v := range e.vars {
		if e.a.Bound(v.ID()) {
			continue
		}
		d := e.unassignedDegree(v)
		if best == nil || d > bestDegree {
			best, bestDegree = v, d
		}
	}
	return best
}

// unassignedDegree counts v's constraints whose scope still contains some
// other unassigned variable.
func (e *engine) unassignedDegree(v *core.Variable) int {
	n := 0
	for _, c := range v.Constraints() {
		for _, id := range c.Scope() {
			if id != v.ID() && !e.a.Bound(id) {
				n++
				break
			}
		}
	}
	return n
}

// orderValues materializes v's candidate order per the configured value
// ordering.
func (e *engine) orderValues(v *core.Variable) ([]core.Value, error) {
	vals := v.Domain().Values()
	switch e.opts.ValOrdering {
	case LeastConstraining:
		return e.orderLeastConstraining(v, vals)
	case Random:
		shuffleValuesInPlace(vals, e.rng)
		return vals, nil
	default:
		return vals, nil
	}
}

// orderLeastConstraining sorts candidates ascending by the number of values
// a tentative assignment would remove from neighboring domains. Each
// simulation runs the same per-assignment revision the search would and is
// rolled back through the trail; simulated removals do not count as
// DomainReductions.
func (e *engine) orderLeastConstraining(v *core.Variable, vals []core.Value) ([]core.Value, error) {
	counts := make([]int, len(vals))
	for i, val := range vals {
		mark := e.tr.Mark()
		e.a[v.ID()] = val

		removed, err := e.countNeighborRemovals(v)

		delete(e.a, v.ID())
		e.tr.UndoTo(mark)
		if err != nil {
			return nil, err
		}
		counts[i] = removed
	}

	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return counts[idx[a]] < counts[idx[b]] })

	out := make([]core.Value, len(vals))
	for i, j := range idx {
		out[i] = vals[j]
	}
	return out, nil
}

// countNeighborRemovals revises every unassigned neighbor of v once and
// totals the removals. Mirrors propagate.Forward, but counting instead of
// failing on wipeout: a wiped neighbor simply yields a large count and the
// value sorts last on its own.
func (e *engine) countNeighborRemovals(v *core.Variable) (int, error) {
	total := 0
	for _, c := range v.Constraints() {
		for _, id := range c.Scope() {
			if id == v.ID() || e.a.Bound(id) {
				continue
			}
			y := e.lookup(id)
			if y == nil {
				continue
			}
			e.stats.ConstraintChecks++
			removed, err := c.Revise(y, e.lookup, e.a, e.tr)
			if err != nil {
				return 0, err
			}
			total += removed
		}
	}
	return total, nil
}
