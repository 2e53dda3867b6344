package constraint

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlcsp/core"
)

// Panic messages for constructor misuse (programmer error, not user input).
const (
	panicEmptyScope   = "constraint: empty scope"
	panicNilPredicate = "constraint: nil predicate"
	panicShortScope   = "constraint: scope needs at least two variables"
)

// UnaryPredicate tests a single value. It must be pure.
type UnaryPredicate func(core.Value) bool

// BinaryPredicate tests an ordered pair (x, y). It must be pure.
type BinaryPredicate func(x, y core.Value) bool

// joinScope renders "a, b, c" for String() implementations.
func joinScope(ids []core.VariableID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}

// boundOrSingleton resolves the effective value of id: the assignment wins,
// otherwise a singleton domain counts as decided. The bool result reports
// whether a value was found.
func boundOrSingleton(id core.VariableID, vars core.Lookup, a core.Assignment) (core.Value, bool) {
	if v, ok := a.Get(id); ok {
		return v, true
	}
	if vr := vars(id); vr != nil && vr.Domain().Size() == 1 {
		return vr.Domain().First()
	}
	return core.Value{}, false
}

// safely runs f, mapping a panic inside a user predicate to false:
// the combination is treated as unsatisfied and nothing is pruned.
func safely(f func() bool) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return f()
}

// numericSameKind validates that a and b are numeric values of one kind and
// returns their payloads widened to float64.
func numericSameKind(a, b core.Value) (float64, float64, error) {
	if !a.IsNumeric() || !b.IsNumeric() || a.Kind() != b.Kind() {
		return 0, 0, fmt.Errorf("%w: %s vs %s", core.ErrKindMismatch, a.Kind(), b.Kind())
	}
	av, _ := a.Numeric()
	bv, _ := b.Numeric()
	return av, bv, nil
}
