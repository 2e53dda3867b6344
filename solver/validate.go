package solver

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlcsp/core"
)

// IsConsistent reports whether a violates nothing: every constraint's
// satisfaction test holds on the (possibly partial) assignment, and every
// bound value belongs to its variable's original domain. Stateless: no
// statistics are touched and no domains are modified.
func (s *Solver) IsConsistent(a core.Assignment) bool {
	for _, v := range s.vars {
		val, ok := a.Get(v.ID())
		if ok && !v.Domain().ContainsOriginal(val) {
			return false
		}
	}
	for id := range a {
		if s.lookup(id) == nil {
			return false
		}
	}
	for _, c := range s.cons {
		if !c.IsSatisfied(a) {
			return false
		}
	}
	return true
}

// Validate returns one Violation per failing constraint, plus synthetic
// violations for bindings outside a variable's original domain and for
// unknown ids. Valid ⇔ no violations ⇔ IsConsistent(a).
//
// Ordering is deterministic: domain violations in variable insertion
// order, unknown ids sorted, then constraint violations in insertion order.
func (s *Solver) Validate(a core.Assignment) ValidationResult {
	var out []Violation

	for _, v := range s.vars {
		val, ok := a.Get(v.ID())
		if !ok || v.Domain().ContainsOriginal(val) {
			continue
		}
		out = append(out, Violation{
			Constraint: "OutOfDomain",
			Variables:  []core.VariableID{v.ID()},
			Description: fmt.Sprintf("value %s is outside the original domain of %s",
				val, v.ID()),
		})
	}

	var unknown []string
	for id := range a {
		if s.lookup(id) == nil {
			unknown = append(unknown, string(id))
		}
	}
	sort.Strings(unknown)
	for _, id := range unknown {
		out = append(out, Violation{
			Constraint:  "UnknownVariable",
			Variables:   []core.VariableID{core.VariableID(id)},
			Description: fmt.Sprintf("assignment binds unknown variable %q", id),
		})
	}

	for _, c := range s.cons {
		if c.IsSatisfied(a) {
			continue
		}
		scope := c.Scope()
		vars := make([]core.VariableID, len(scope))
		copy(vars, scope)
		out = append(out, Violation{
			Constraint:  c.Name(),
			Variables:   vars,
			Description: fmt.Sprintf("constraint %s is violated", c.String()),
		})
	}

	return ValidationResult{Valid: len(out) == 0, Violations: out}
}
