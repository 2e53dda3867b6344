package constraint

import (
	"fmt"

	"github.com/katalvlaran/lvlcsp/core"
)

// sumEquals is the n-ary integer constraint sum(scope) == target.
type sumEquals struct {
	scope  []core.VariableID
	target int64
}

// SumEquals returns a constraint requiring the integer scope variables to
// sum to target. Panics on an empty scope.
func SumEquals(vs []core.VariableID, target int64) core.Constraint {
	if len(vs) == 0 {
		panic(panicEmptyScope)
	}
	scope := make([]core.VariableID, len(vs))
	copy(scope, vs)
	return &sumEquals{scope: scope, target: target}
}

func (c *sumEquals) Name() string { return "SumEquals" }

func (c *sumEquals) String() string {
	return fmt.Sprintf("%s == %d", joinScope(c.scope), c.target)
}

func (c *sumEquals) Scope() []core.VariableID { return c.scope }

func (c *sumEquals) Arity() int { return len(c.scope) }

// IsSatisfied sums the bound values: with the full scope bound it demands
// equality; with a partial binding it stays tentatively satisfied (the
// range proof needs domains, which live in Revise). Non-integer bound
// values can never satisfy an integer sum.
func (c *sumEquals) IsSatisfied(a core.Assignment) bool {
	var bound int64
	n := 0
	for _, id := range c.scope {
		v, ok := a.Get(id)
		if !ok {
			continue
		}
		i, isInt := v.AsInt()
		if !isInt {
			return false
		}
		bound += i
		n++
	}
	if n < len(c.scope) {
		return true
	}
	return bound == c.target
}

// intSpan is the [lo, hi] envelope of one unbound variable's domain.
type intSpan struct {
	lo, hi int64
}

// Revise prunes candidate v from target when no completion of the other
// unbound scope variables can reach the target sum:
// target ∉ [S + v + Σlo', S + v + Σhi'].
func (c *sumEquals) Revise(target *core.Variable, vars core.Lookup, a core.Assignment, tr *core.Trail) (int, error) {
	inScope := false
	for _, id := range c.scope {
		if id == target.ID() {
			inScope = true
			break
		}
	}
	if !inScope {
		return 0, nil
	}

	var (
		bound   int64 // sum of bound values, target excluded
		restLo  int64 // Σ min over other unbound variables
		restHi  int64 // Σ max over other unbound variables
		wipeout bool
	)
	for _, id := range c.scope {
		if id == target.ID() {
			continue
		}
		if v, ok := a.Get(id); ok {
			i, isInt := v.AsInt()
			if !isInt {
				return 0, fmt.Errorf("%w: %s bound to %s value in integer sum", core.ErrKindMismatch, id, v.Kind())
			}
			bound += i
			continue
		}
		span, empty, err := domainSpan(id, vars)
		if err != nil {
			return 0, err
		}
		if empty {
			wipeout = true
			break
		}
		restLo += span.lo
		restHi += span.hi
	}

	var pruned []core.Value
	var evalErr error
	target.Domain().Each(func(v core.Value) bool {
		i, isInt := v.AsInt()
		if !isInt {
			evalErr = fmt.Errorf("%w: %s candidate in integer sum", core.ErrKindMismatch, v.Kind())
			return false
		}
		if wipeout || bound+i+restLo > c.target || bound+i+restHi < c.target {
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

// domainSpan returns the integer [min, max] of id's current domain.
// The second result reports an empty domain.
func domainSpan(id core.VariableID, vars core.Lookup) (intSpan, bool, error) {
	vr := vars(id)
	if vr == nil || vr.Domain().IsEmpty() {
		return intSpan{}, true, nil
	}
	var (
		span    intSpan
		first   = true
		kindErr error
	)
	vr.Domain().Each(func(v core.Value) bool {
		i, isInt := v.AsInt()
		if !isInt {
			kindErr = fmt.Errorf("%w: %s holds %s value in integer sum", core.ErrKindMismatch, id, v.Kind())
			return false
		}
		if first {
			span = intSpan{lo: i, hi: i}
			first = false
			return true
		}
		if i < span.lo {
			span.lo = i
		}
		if i > span.hi {
			span.hi = i
		}
		return true
	})
	if kindErr != nil {
		return intSpan{}, false, kindErr
	}
	return span, false, nil
}
