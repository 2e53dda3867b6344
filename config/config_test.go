package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcsp/config"
	"github.com/katalvlaran/lvlcsp/constraint"
	"github.com/katalvlaran/lvlcsp/core"
	"github.com/katalvlaran/lvlcsp/solver"
)

// TestParse_FullDocument decodes every supported key.
func TestParse_FullDocument(t *testing.T) {
	doc := []byte(`
timeout_ms: 2000
propagation: true
full_propagation: true
variable_ordering: degree
value_ordering: random
seed: 42
`)

	c, err := config.Parse(doc)
	require.NoError(t, err)

	require.NotNil(t, c.TimeoutMS)
	assert.Equal(t, int64(2000), *c.TimeoutMS)
	require.NotNil(t, c.Propagation)
	assert.True(t, *c.Propagation)
	assert.True(t, c.FullPropagation)
	assert.Equal(t, "degree", c.VariableOrdering)
	assert.Equal(t, "random", c.ValueOrdering)
	require.NotNil(t, c.Seed)
	assert.Equal(t, int64(42), *c.Seed)

	opts, err := c.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 6)
}

// TestParse_EmptyDocumentKeepsDefaults: absent keys yield no options.
func TestParse_EmptyDocumentKeepsDefaults(t *testing.T) {
	c, err := config.Parse(nil)
	require.NoError(t, err)

	opts, err := c.Options()
	require.NoError(t, err)
	assert.Empty(t, opts)
}

// TestParse_UnknownKeyRejected surfaces typos instead of ignoring them.
func TestParse_UnknownKeyRejected(t *testing.T) {
	_, err := config.Parse([]byte("timeot_ms: 100\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestOptions_UnknownOrderingNames reject misspelled heuristics.
func TestOptions_UnknownOrderingNames(t *testing.T) {
	c, err := config.Parse([]byte("variable_ordering: mvr\n"))
	require.NoError(t, err)
	_, err = c.Options()
	assert.ErrorIs(t, err, config.ErrUnknownOrdering)

	c, err = config.Parse([]byte("value_ordering: lcv\n"))
	require.NoError(t, err)
	_, err = c.Options()
	assert.ErrorIs(t, err, config.ErrUnknownOrdering)
}

// TestOptions_NegativeTimeoutRejected: Parse accepts the document; the
// range check happens in Options.
func TestOptions_NegativeTimeoutRejected(t *testing.T) {
	c, err := config.Parse([]byte("timeout_ms: -5\n"))
	require.NoError(t, err)

	_, err = c.Options()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestLoad_RoundTripIntoSolver drives a file all the way into a Solve.
func TestLoad_RoundTripIntoSolver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"timeout_ms: 1000\nvariable_ordering: static\nvalue_ordering: natural\n",
	), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	opts, err := c.Options()
	require.NoError(t, err)

	s := solver.New(opts...)
	require.NoError(t, s.AddVariable("x", core.Ints(1, 2)...))
	require.NoError(t, s.AddVariable("y", core.Ints(1, 2)...))
	require.NoError(t, s.AddConstraint(constraint.NotEqual("x", "y")))

	sol, err := s.Solve()
	require.NoError(t, err)
	assert.True(t, sol.Satisfied)
	assert.NotEqual(t, sol.Assignment["x"], sol.Assignment["y"])
	assert.LessOrEqual(t, sol.SolveTime, time.Second)
}

// TestLoad_MissingFile wraps the IO failure.
func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
