package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewValidation(t *testing.T) {
	_, err := New([]float64{1, 2, 3}, 0)
	assert.Error(t, err)

	_, err = New([]float64{1, 2, 3}, 2)
	assert.Error(t, err, "length must be a multiple of NumVars")

	f, err := New([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, f.NumNodes())
}

func TestAt(t *testing.T) {
	// Two variables at three nodes.
	f, err := New([]float64{0, 10, 1, 11, 2, 12}, 2)
	require.NoError(t, err)
	require.Equal(t, 3, f.NumNodes())

	v, err := f.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	v, err = f.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 12.0, v)

	for _, bad := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 2}} {
		_, err := f.At(bad[0], bad[1])
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "node %d var %d", bad[0], bad[1])
	}
}

func TestNodeValues(t *testing.T) {
	f, err := New([]float64{0, 10, 1, 11}, 2)
	require.NoError(t, err)

	vals, err := f.NodeValues(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 11}, vals)

	// The returned slice is a copy; mutating it must not touch the
	// backing buffer.
	vals[0] = 99
	again, err := f.NodeValues(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 11}, again)

	_, err = f.NodeValues(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestFromDense(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		0, 10,
		1, 11,
		2, 12,
	})
	f := FromDense(m)

	assert.Equal(t, 2, f.NumVars)
	assert.Equal(t, 3, f.NumNodes())
	assert.Equal(t, []float64{0, 10, 1, 11, 2, 12}, f.Values)
}
