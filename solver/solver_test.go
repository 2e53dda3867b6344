package solver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcsp/constraint"
	"github.com/katalvlaran/lvlcsp/core"
	"github.com/katalvlaran/lvlcsp/solver"
)

// TestAddVariable_StructuralErrors covers duplicate ids and empty domains.
func TestAddVariable_StructuralErrors(t *testing.T) {
	s := solver.New()

	require.NoError(t, s.AddVariable("x", core.Ints(1, 2)...))
	assert.ErrorIs(t, s.AddVariable("x", core.Ints(3)...), solver.ErrDuplicateVariable)
	assert.ErrorIs(t, s.AddVariable("y"), solver.ErrEmptyDomain)
	assert.Equal(t, 1, s.VariableCount())
}

// TestAddConstraint_NilRejected is the only immediate constraint check.
func TestAddConstraint_NilRejected(t *testing.T) {
	s := solver.New()
	assert.ErrorIs(t, s.AddConstraint(nil), solver.ErrNilConstraint)
}

// TestSolve_UnknownScopeID is rejected at solve time, not at AddConstraint.
func TestSolve_UnknownScopeID(t *testing.T) {
	s := solver.New()
	require.NoError(t, s.AddVariable("x", core.Ints(1)...))
	require.NoError(t, s.AddConstraint(constraint.NotEqual("x", "ghost")))

	_, err := s.Solve()

	assert.ErrorIs(t, err, solver.ErrUnknownVariable)
}

// TestSolve_InvalidOptionSurfaces reports deferred option errors.
func TestSolve_InvalidOptionSurfaces(t *testing.T) {
	s := solver.New(solver.WithTimeout(-time.Second))
	require.NoError(t, s.AddVariable("x", core.Ints(1)...))

	_, err := s.Solve()

	assert.ErrorIs(t, err, solver.ErrOptionViolation)
}

// TestClear returns the solver to its post-New state.
func TestClear(t *testing.T) {
	s := solver.New()
	require.NoError(t, s.AddVariable("x", core.Ints(1)...))
	require.NoError(t, s.AddConstraint(constraint.Unary("x", func(core.Value) bool { return true })))

	s.Clear()

	assert.Zero(t, s.VariableCount())
	assert.Zero(t, s.ConstraintCount())
	require.NoError(t, s.AddVariable("x", core.Ints(2)...), "ids are reusable after Clear")

	sol, err := s.Solve()
	require.NoError(t, err)
	assert.True(t, sol.Satisfied)
	assert.Equal(t, core.Int(2), sol.Assignment["x"])
}

// TestVersionAndGPUIntrospection pins the portable-core answers.
func TestVersionAndGPUIntrospection(t *testing.T) {
	assert.NotEmpty(t, solver.Version())
	assert.False(t, solver.GPUAvailable())
	assert.Zero(t, solver.GPUDeviceCount())
}

// TestOrderingNames pins the configuration-file spellings.
func TestOrderingNames(t *testing.T) {
	assert.Equal(t, "mrv", solver.MRV.String())
	assert.Equal(t, "static", solver.Static.String())
	assert.Equal(t, "degree", solver.Degree.String())
	assert.Equal(t, "dynamic-mrv", solver.DynamicMRV.String())
	assert.Equal(t, "natural", solver.Natural.String())
	assert.Equal(t, "least-constraining", solver.LeastConstraining.String())
	assert.Equal(t, "random", solver.Random.String())
}
