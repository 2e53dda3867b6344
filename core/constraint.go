package core

// Lookup resolves a VariableID to the solver-owned Variable, or nil when
// the id is unknown. Constraints receive a Lookup instead of variable
// pointers so that cross-references stay id-based.
type Lookup func(VariableID) *Variable

// Constraint is the contract every constraint variant honors. Constraints
// are immutable after construction and may be shared between solvers.
type Constraint interface {
	// Name returns the stable variant name, e.g. "AllDifferent".
	Name() string

	// String returns a human-readable rendering, e.g. "x != y".
	String() string

	// Scope returns the ordered list of variable ids the constraint
	// references. Callers must not mutate the returned slice.
	Scope() []VariableID

	// Arity returns len(Scope()).
	Arity() int

	// IsSatisfied tests the constraint against a possibly partial
	// assignment. When the assignment does not bind every scope variable
	// the constraint is tentatively satisfied (vacuously true), unless the
	// variant can prove falsity from the bound subset alone. Must be pure.
	IsSatisfied(a Assignment) bool

	// Revise is the per-arc pruning hook used by arc consistency and
	// forward checking. It removes from target's domain values that the
	// variant can show have no satisfying completion, given the bound
	// values in a and the other scope variables' current domains. A value
	// with a supporting completion is never removed; weaker variants may
	// keep unsupported values (Equal prunes by the opposite min/max,
	// AllDifferent only removes values held by bound scope variables). Every
	// removal must be recorded on tr. It returns the number of values
	// removed; an error (e.g. ErrKindMismatch) aborts the solve.
	Revise(target *Variable, vars Lookup, a Assignment, tr *Trail) (int, error)
}
