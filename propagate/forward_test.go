package propagate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcsp/constraint"
	"github.com/katalvlaran/lvlcsp/core"
	"github.com/katalvlaran/lvlcsp/propagate"
)

// TestForward_PrunesNeighbors removes the assigned value from NotEqual peers.
func TestForward_PrunesNeighbors(t *testing.T) {
	cons := []core.Constraint{
		constraint.NotEqual("x", "y"),
		constraint.NotEqual("x", "z"),
	}
	m, lk := problem(map[core.VariableID][]core.Value{
		"x": core.Ints(1, 2, 3),
		"y": core.Ints(1, 2, 3),
		"z": core.Ints(1, 2, 3),
	}, []core.VariableID{"x", "y", "z"}, cons...)
	tr := core.NewTrail()
	var st core.Stats

	a := core.Assignment{"x": core.Int(2)}
	m["x"].Assign(core.Int(2))

	ok, err := propagate.Forward(context.Background(), m["x"], lk, a, tr, &st)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, core.Ints(1, 3), m["y"].Domain().Values())
	assert.Equal(t, core.Ints(1, 3), m["z"].Domain().Values())
	assert.Equal(t, uint64(2), st.DomainReductions)
}

// TestForward_DetectsWipeout fails when a neighbor runs dry.
func TestForward_DetectsWipeout(t *testing.T) {
	cons := []core.Constraint{constraint.NotEqual("x", "y")}
	m, lk := problem(map[core.VariableID][]core.Value{
		"x": core.Ints(1, 2),
		"y": core.Ints(1),
	}, []core.VariableID{"x", "y"}, cons...)
	tr := core.NewTrail()
	var st core.Stats

	a := core.Assignment{"x": core.Int(1)}
	m["x"].Assign(core.Int(1))

	ok, err := propagate.Forward(context.Background(), m["x"], lk, a, tr, &st)

	require.NoError(t, err)
	assert.False(t, ok)
}

// TestForward_SkipsBoundNeighbors leaves already-assigned peers untouched.
func TestForward_SkipsBoundNeighbors(t *testing.T) {
	cons := []core.Constraint{constraint.AllDifferent("x", "y", "z")}
	m, lk := problem(map[core.VariableID][]core.Value{
		"x": core.Ints(1, 2, 3),
		"y": core.Ints(1, 2, 3),
		"z": core.Ints(1, 2, 3),
	}, []core.VariableID{"x", "y", "z"}, cons...)
	tr := core.NewTrail()
	var st core.Stats

	a := core.Assignment{"x": core.Int(1), "y": core.Int(2)}
	m["x"].Assign(core.Int(1))
	m["y"].Assign(core.Int(2))

	ok, err := propagate.Forward(context.Background(), m["x"], lk, a, tr, &st)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, core.Ints(1, 2, 3), m["y"].Domain().Values(), "bound neighbor untouched")
	assert.Equal(t, core.Ints(3), m["z"].Domain().Values(), "both bound values pruned from z")
}

// TestForward_NoConstraints is a no-op success.
func TestForward_NoConstraints(t *testing.T) {
	m, lk := problem(map[core.VariableID][]core.Value{
		"x": core.Ints(1),
	}, []core.VariableID{"x"})
	m["x"].Assign(core.Int(1))

	ok, err := propagate.Forward(context.Background(), m["x"], lk,
		core.Assignment{"x": core.Int(1)}, core.NewTrail(), &core.Stats{})

	require.NoError(t, err)
	assert.True(t, ok)
}
