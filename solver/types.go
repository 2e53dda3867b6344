package solver

import (
	"errors"
	"time"

	"github.com/katalvlaran/lvlcsp/core"
)

// Sentinel errors for problem construction and solving.
var (
	// ErrDuplicateVariable is returned when AddVariable sees an id twice.
	ErrDuplicateVariable = errors.New("solver: duplicate variable id")

	// ErrEmptyDomain is returned when AddVariable receives no values.
	ErrEmptyDomain = errors.New("solver: empty initial domain")

	// ErrNilConstraint is returned when AddConstraint receives nil.
	ErrNilConstraint = errors.New("solver: nil constraint")

	// ErrUnknownVariable is returned at solve time when a constraint's
	// scope references an id that was never added.
	ErrUnknownVariable = errors.New("solver: constraint references unknown variable")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Solution is the outcome of one Solve call.
//
// Satisfied=false covers both exhaustion (no assignment exists) and a hit
// timeout; inspect Statistics().TotalTime against the configured budget to
// tell them apart.
type Solution struct {
	// Assignment binds every variable when Satisfied, and is empty otherwise.
	Assignment core.Assignment

	// Satisfied reports whether Assignment satisfies every constraint.
	Satisfied bool

	// SolveTime is the wall clock spent inside Solve.
	SolveTime time.Duration

	// Backtracks mirrors Statistics().Backtracks for this solve.
	Backtracks uint64
}

// Violation describes one failing constraint in a validated assignment.
type Violation struct {
	// Constraint is the stable variant name ("AllDifferent", …), or
	// "OutOfDomain" / "UnknownVariable" for the synthetic violations.
	Constraint string

	// Variables lists the scope involved in the violation.
	Variables []core.VariableID

	// Description is a human-readable account of the failure.
	Description string
}

// ValidationResult is the outcome of Validate.
type ValidationResult struct {
	// Valid is true iff Violations is empty.
	Valid bool

	// Violations lists every failing constraint plus synthetic entries for
	// bindings outside a variable's original domain or to unknown ids.
	Violations []Violation
}
