package circuit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qvecsim/gate"
)

func TestNew(t *testing.T) {
	c, err := New(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, c.NumQubits())
	assert.Equal(t, 3, c.NumBits())
	assert.Equal(t, 0, c.Depth())

	_, err = New(0, 0)
	assert.ErrorIs(t, err, ErrBadSize)
	_, err = New(2, -1)
	assert.ErrorIs(t, err, ErrBadSize)
}

func TestAppendAndCounts(t *testing.T) {
	c, err := New(3, 0)
	require.NoError(t, err)

	require.NoError(t, c.Append(gate.H(1)))
	require.NoError(t, c.Append(gate.CX(1, 2), gate.H(3)))
	require.NoError(t, c.Append(gate.CX(1, 2)))

	assert.Equal(t, 3, c.Depth(), "depth equals the number of append calls")
	assert.Equal(t, 4, c.NumGates())
	assert.Equal(t, map[string]int{"h": 2, "cx": 2}, c.CountByKind())
}

func TestAppendValidation(t *testing.T) {
	c, err := New(2, 0)
	require.NoError(t, err)
	require.NoError(t, c.Append(gate.H(1)))

	// A target beyond the qubit count fails and leaves the pipeline alone.
	err = c.Append(gate.H(1), gate.X(3))
	assert.ErrorIs(t, err, ErrTargetRange)
	assert.Equal(t, 1, c.Depth())
	assert.Equal(t, 1, c.NumGates())

	err = c.Append(gate.X(0))
	assert.ErrorIs(t, err, ErrTargetRange)

	// Control and target of one gate must be distinct.
	err = c.Append(gate.CX(2, 2))
	assert.ErrorIs(t, err, ErrDuplicateTarget)
	assert.Equal(t, 1, c.Depth())

	assert.ErrorIs(t, c.Append(), ErrEmptyStep)
}

func TestRemoveLast(t *testing.T) {
	c, err := New(2, 0)
	require.NoError(t, err)
	require.NoError(t, c.Append(gate.H(1)))
	require.NoError(t, c.Append(gate.CX(1, 2)))

	step := c.RemoveLast()
	require.Len(t, step, 1)
	assert.True(t, step[0].Equal(gate.CX(1, 2)))
	assert.Equal(t, 1, c.Depth())

	c.RemoveLast()
	assert.Nil(t, c.RemoveLast(), "removing from an empty pipeline")
}

func TestStepsAreReadOnly(t *testing.T) {
	c, err := New(2, 0)
	require.NoError(t, err)
	require.NoError(t, c.Append(gate.H(1), gate.X(2)))

	steps := c.Steps()
	steps[0][0] = gate.Z(2)

	assert.True(t, c.Step(0)[0].Equal(gate.H(1)), "mutating the copy must not touch the circuit")
}

func TestReorder(t *testing.T) {
	c, err := New(3, 0)
	require.NoError(t, err)
	require.NoError(t, c.Append(gate.H(1)))
	require.NoError(t, c.Append(gate.CX(1, 2), gate.RZ(math.Pi/4, 3)))

	swapped, err := c.Reorder(map[int]int{1: 2, 2: 1, 3: 3})
	require.NoError(t, err)

	assert.True(t, swapped.Step(0)[0].Equal(gate.H(2)))
	assert.True(t, swapped.Step(1)[0].Equal(gate.CX(2, 1)))
	assert.True(t, swapped.Step(1)[1].Equal(gate.RZ(math.Pi/4, 3)))

	// Original untouched.
	assert.True(t, c.Step(0)[0].Equal(gate.H(1)))
	assert.True(t, c.Step(1)[0].Equal(gate.CX(1, 2)))
}

func TestReorderFailures(t *testing.T) {
	c, err := New(3, 0)
	require.NoError(t, err)
	require.NoError(t, c.Append(gate.CX(1, 2)))

	// Non-injective.
	_, err = c.Reorder(map[int]int{1: 2, 2: 2})
	assert.ErrorIs(t, err, ErrBadMapping)

	// Omits a referenced qubit.
	_, err = c.Reorder(map[int]int{1: 2})
	assert.ErrorIs(t, err, ErrBadMapping)

	// Maps outside the circuit.
	_, err = c.Reorder(map[int]int{1: 1, 2: 4})
	assert.ErrorIs(t, err, ErrBadMapping)

	// Failed reorders never mutate the original.
	assert.Equal(t, 1, c.Depth())
	assert.True(t, c.Step(0)[0].Equal(gate.CX(1, 2)))
}
