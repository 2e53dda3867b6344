package constraint

import (
	"fmt"

	"github.com/katalvlaran/lvlcsp/core"
)

// allDifferent is the n-ary pairwise-distinct constraint.
type allDifferent struct {
	scope []core.VariableID
}

// AllDifferent returns a constraint requiring every scope variable to take
// a distinct value. Panics on an empty scope.
func AllDifferent(vs ...core.VariableID) core.Constraint {
	if len(vs) == 0 {
		panic(panicEmptyScope)
	}
	scope := make([]core.VariableID, len(vs))
	copy(scope, vs)
	return &allDifferent{scope: scope}
}

func (c *allDifferent) Name() string { return "AllDifferent" }

func (c *allDifferent) String() string {
	return fmt.Sprintf("AllDifferent(%s)", joinScope(c.scope))
}

func (c *allDifferent) Scope() []core.VariableID { return c.scope }

func (c *allDifferent) Arity() int { return len(c.scope) }

// IsSatisfied proves falsity as soon as two bound scope values collide;
// unbound variables do not constrain anything yet.
func (c *allDifferent) IsSatisfied(a core.Assignment) bool {
	seen := make(map[core.Value]struct{}, len(c.scope))
	for _, id := range c.scope {
		v, ok := a.Get(id)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// Revise removes from target every value already owned by another bound
// scope variable, the domain-consistency projection of AllDifferent.
// (Hall-interval pruning would be stronger but is not required here.)
func (c *allDifferent) Revise(target *core.Variable, _ core.Lookup, a core.Assignment, tr *core.Trail) (int, error) {
	removed := 0
	for _, id := range c.scope {
		if id == target.ID() {
			continue
		}
		v, ok := a.Get(id)
		if !ok {
			continue
		}
		if tr.Prune(target, v) {
			removed++
		}
	}
	return removed, nil
}
