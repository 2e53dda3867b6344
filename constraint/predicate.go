package constraint

import (
	"fmt"

	"github.com/katalvlaran/lvlcsp/core"
)

// unary wraps a user predicate over a single variable.
type unary struct {
	v    core.VariableID
	pred UnaryPredicate
}

// Unary returns a constraint requiring pred to hold on v's value.
// Panics on a nil predicate.
func Unary(v core.VariableID, pred UnaryPredicate) core.Constraint {
	if pred == nil {
		panic(panicNilPredicate)
	}
	return &unary{v: v, pred: pred}
}

func (c *unary) Name() string { return "UnaryPredicate" }

func (c *unary) String() string { return fmt.Sprintf("pred(%s)", c.v) }

func (c *unary) Scope() []core.VariableID { return []core.VariableID{c.v} }

func (c *unary) Arity() int { return 1 }

func (c *unary) IsSatisfied(a core.Assignment) bool {
	v, ok := a.Get(c.v)
	if !ok {
		return true
	}
	return safely(func() bool { return c.pred(v) })
}

// Revise filters target's domain by the predicate. A value is pruned only
// when the predicate returns false; a panicking predicate prunes nothing.
func (c *unary) Revise(target *core.Variable, _ core.Lookup, _ core.Assignment, tr *core.Trail) (int, error) {
	if target.ID() != c.v {
		return 0, nil
	}

	var pruned []core.Value
	target.Domain().Each(func(v core.Value) bool {
		if safely(func() bool { return !c.pred(v) }) {
			pruned = append(pruned, v)
		}
		return true
	})

	removed := 0
	for _, v := range pruned {
		if tr.Prune(target, v) {
			removed++
		}
	}
	return removed, nil
}

// binary wraps a user predicate over an ordered pair of variables.
type binary struct {
	x, y core.VariableID
	pred BinaryPredicate
}

// Binary returns a constraint requiring pred(x, y) to hold on the bound
// values of x and y, in that argument order. Panics on a nil predicate.
func Binary(x, y core.VariableID, pred BinaryPredicate) core.Constraint {
	if pred == nil {
		panic(panicNilPredicate)
	}
	return &binary{x: x, y: y, pred: pred}
}

func (c *binary) Name() string { return "BinaryPredicate" }

func (c *binary) String() string { return fmt.Sprintf("pred(%s, %s)", c.x, c.y) }

func (c *binary) Scope() []core.VariableID { return []core.VariableID{c.x, c.y} }

func (c *binary) Arity() int { return 2 }

func (c *binary) IsSatisfied(a core.Assignment) bool {
	vx, okx := a.Get(c.x)
	vy, oky := a.Get(c.y)
	if !okx || !oky {
		return true
	}
	return safely(func() bool { return c.pred(vx, vy) })
}

// Revise keeps a candidate iff some value of the opposite variable (its
// bound value, or any value in its current domain) satisfies the predicate.
// A panicking predicate counts as support, so it prunes nothing.
func (c *binary) Revise(target *core.Variable, vars core.Lookup, a core.Assignment, tr *core.Trail) (int, error) {
	targetIsX := target.ID() == c.x
	if !targetIsX && target.ID() != c.y {
		return 0, nil
	}
	other := c.y
	if !targetIsX {
		other = c.x
	}

	test := func(v, w core.Value) bool {
		if targetIsX {
			return !safely(func() bool { return !c.pred(v, w) })
		}
		return !safely(func() bool { return !c.pred(w, v) })
	}

	var pruned []core.Value
	if w, ok := a.Get(other); ok {
		target.Domain().Each(func(v core.Value) bool {
			if !test(v, w) {
				pruned = append(pruned, v)
			}
			return true
		})
	} else {
		vr := vars(other)
		if vr == nil || vr.Domain().IsEmpty() {
			// No candidates to support anything against; the engine reports
			// the wipeout on the other side.
			return 0, nil
		}
		target.Domain().Each(func(v core.Value) bool {
			supported := false
			vr.Domain().Each(func(w core.Value) bool {
				supported = test(v, w)
				return !supported
			})
			if !supported {
				pruned = append(pruned, v)
			}
			return true
		})
	}

	removed := 0
	for _, v := range pruned {
		if tr.Prune(target, v) {
			removed++
		}
	}
	return removed, nil
}
