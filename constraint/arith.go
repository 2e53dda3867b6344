package constraint

import (
	"fmt"

	"github.com/katalvlaran/lvlcsp/core"
)

// arithOp selects the comparison applied by an arith constraint.
type arithOp uint8

const (
	opEqual arithOp = iota
	opLess
	opLessEq
)

// arith is the binary numeric comparison family: x == y, x < y, x <= y.
type arith struct {
	x, y core.VariableID
	op   arithOp
}

// Equal returns a constraint requiring x and y to take the same numeric value.
func Equal(x, y core.VariableID) core.Constraint {
	return &arith{x: x, y: y, op: opEqual}
}

// LessThan returns a constraint requiring x < y numerically.
func LessThan(x, y core.VariableID) core.Constraint {
	return &arith{x: x, y: y, op: opLess}
}

// LessThanOrEqual returns a constraint requiring x <= y numerically.
func LessThanOrEqual(x, y core.VariableID) core.Constraint {
	return &arith{x: x, y: y, op: opLessEq}
}

func (c *arith) Name() string {
	switch c.op {
	case opEqual:
		return "Equal"
	case opLess:
		return "LessThan"
	default:
		return "LessThanOrEqual"
	}
}

func (c *arith) String() string {
	switch c.op {
	case opEqual:
		return fmt.Sprintf("%s == %s", c.x, c.y)
	case opLess:
		return fmt.Sprintf("%s < %s", c.x, c.y)
	default:
		return fmt.Sprintf("%s <= %s", c.x, c.y)
	}
}

func (c *arith) Scope() []core.VariableID { return []core.VariableID{c.x, c.y} }

func (c *arith) Arity() int { return 2 }

// holds applies the comparison to two same-kind numeric values.
func (c *arith) holds(vx, vy core.Value) (bool, error) {
	fx, fy, err := numericSameKind(vx, vy)
	if err != nil {
		return false, err
	}
	switch c.op {
	case opEqual:
		return fx == fy, nil
	case opLess:
		return fx < fy, nil
	default:
		return fx <= fy, nil
	}
}

// IsSatisfied is vacuous until both sides are bound. Kind mismatches make
// the combination unsatisfied here; Revise reports them as errors.
func (c *arith) IsSatisfied(a core.Assignment) bool {
	vx, okx := a.Get(c.x)
	vy, oky := a.Get(c.y)
	if !okx || !oky {
		return true
	}
	ok, err := c.holds(vx, vy)
	return err == nil && ok
}

// Revise prunes target by the min/max of the opposite side's domain. For
// LessThan and LessThanOrEqual a candidate survives iff some opposite value
// makes the comparison hold; for Equal it survives iff it lies within the
// opposite [min, max], so a candidate with no equal opposite value can stay.
func (c *arith) Revise(target *core.Variable, vars core.Lookup, a core.Assignment, tr *core.Trail) (int, error) {
	targetIsX := target.ID() == c.x
	if !targetIsX && target.ID() != c.y {
		return 0, nil
	}
	other := c.y
	if !targetIsX {
		other = c.x
	}

	support, err := c.otherBounds(other, vars, a)
	if err != nil {
		return 0, err
	}
	if support == nil {
		// Opposite domain empty: nothing to prune against; the wipeout is
		// reported by the propagation engine.
		return 0, nil
	}

	var pruned []core.Value
	var evalErr error
	target.Domain().Each(func(v core.Value) bool {
		keep, err2 := c.supported(v, targetIsX, *support)
		if err2 != nil {
			evalErr = err2
			return false
		}
		if !keep {
			pruned = append(pruned, v)
		}
		return true
	})
	if evalErr != nil {
		return 0, evalErr
	}

	removed := 0
	for _, v := range pruned {
		if tr.Prune(target, v) {
			removed++
		}
	}
	return removed, nil
}

// bounds carries the numeric envelope of the opposite side's candidates.
type bounds struct {
	min, max float64
	kind     core.Kind
}

// otherBounds computes the numeric [min, max] of the opposite variable's
// effective candidates (its bound value, or its current domain). A nil
// result means the opposite side has no candidates at all.
func (c *arith) otherBounds(other core.VariableID, vars core.Lookup, a core.Assignment) (*bounds, error) {
	if v, ok := a.Get(other); ok {
		n, num := v.Numeric()
		if !num {
			return nil, fmt.Errorf("%w: %s bound to %s value", core.ErrKindMismatch, other, v.Kind())
		}
		return &bounds{min: n, max: n, kind: v.Kind()}, nil
	}

	vr := vars(other)
	if vr == nil || vr.Domain().IsEmpty() {
		return nil, nil
	}

	var (
		b       *bounds
		kindErr error
	)
	vr.Domain().Each(func(v core.Value) bool {
		n, num := v.Numeric()
		if !num {
			kindErr = fmt.Errorf("%w: %s holds %s value", core.ErrKindMismatch, other, v.Kind())
			return false
		}
		if b == nil {
			b = &bounds{min: n, max: n, kind: v.Kind()}
			return true
		}
		if v.Kind() != b.kind {
			kindErr = fmt.Errorf("%w: mixed %s/%s domain on %s", core.ErrKindMismatch, b.kind, v.Kind(), other)
			return false
		}
		if n < b.min {
			b.min = n
		}
		if n > b.max {
			b.max = n
		}
		return true
	})
	if kindErr != nil {
		return nil, kindErr
	}
	return b, nil
}

// supported reports whether candidate v (on the target side) has a
// supporting value within the opposite envelope.
func (c *arith) supported(v core.Value, targetIsX bool, o bounds) (bool, error) {
	n, num := v.Numeric()
	if !num || v.Kind() != o.kind {
		return false, fmt.Errorf("%w: %s candidate against %s domain", core.ErrKindMismatch, v.Kind(), o.kind)
	}
	switch c.op {
	case opEqual:
		// Envelope check only proves possibility; exact support is membership,
		// which the caller cannot see here; stay sound with the range test.
		return n >= o.min && n <= o.max, nil
	case opLess:
		if targetIsX {
			return n < o.max, nil
		}
		return n > o.min, nil
	default:
		if targetIsX {
			return n <= o.max, nil
		}
		return n >= o.min, nil
	}
}
