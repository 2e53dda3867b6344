package constraint

import (
	"fmt"

	"github.com/katalvlaran/lvlcsp/core"
)

// notEqual is the binary x != y constraint.
type notEqual struct {
	x, y core.VariableID
}

// NotEqual returns a constraint requiring x and y to take different values.
func NotEqual(x, y core.VariableID) core.Constraint {
	return &notEqual{x: x, y: y}
}

func (c *notEqual) Name() string { return "NotEqual" }

func (c *notEqual) String() string { return fmt.Sprintf("%s != %s", c.x, c.y) }

func (c *notEqual) Scope() []core.VariableID { return []core.VariableID{c.x, c.y} }

func (c *notEqual) Arity() int { return 2 }

// IsSatisfied fails only when both sides are bound to the same value.
func (c *notEqual) IsSatisfied(a core.Assignment) bool {
	vx, okx := a.Get(c.x)
	vy, oky := a.Get(c.y)
	if !okx || !oky {
		return true
	}
	return vx != vy
}

// Revise removes the other side's decided value (bound, or a singleton
// domain) from target.
func (c *notEqual) Revise(target *core.Variable, vars core.Lookup, a core.Assignment, tr *core.Trail) (int, error) {
	other := c.x
	if target.ID() == c.x {
		other = c.y
	} else if target.ID() != c.y {
		return 0, nil
	}

	val, decided := boundOrSingleton(other, vars, a)
	if !decided {
		return 0, nil
	}
	if tr.Prune(target, val) {
		return 1, nil
	}
	return 0, nil
}
