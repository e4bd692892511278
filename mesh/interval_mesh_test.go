package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUniformIntervalMesh(t *testing.T) {
	m, err := NewUniformIntervalMesh(4, -1, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, m.Dimension())
	assert.Equal(t, 5, m.NumNodes())
	assert.Equal(t, 4, m.NumElements())
	assert.Equal(t, 4, m.NumActiveElements())

	assert.InDelta(t, -1.0, m.Coords[0], 1e-15)
	assert.InDelta(t, -0.5, m.Coords[1], 1e-15)
	assert.InDelta(t, 0.0, m.Coords[2], 1e-15)
	assert.Equal(t, 1.0, m.Coords[4], "right end must be exact")

	for k, ev := range m.EToV {
		assert.Equal(t, [2]int{k, k + 1}, ev)
	}
}

func TestNewUniformIntervalMeshRejectsBadInput(t *testing.T) {
	_, err := NewUniformIntervalMesh(0, 0, 1)
	assert.Error(t, err)

	_, err = NewUniformIntervalMesh(3, 1, 1)
	assert.Error(t, err)

	_, err = NewUniformIntervalMesh(3, 2, 1)
	assert.Error(t, err)
}

func TestNewIntervalMeshValidation(t *testing.T) {
	coords := []float64{0, 1, 2}

	cases := []struct {
		name string
		etov [][2]int
	}{
		{"no elements", nil},
		{"node out of range", [][2]int{{0, 3}}},
		{"negative node", [][2]int{{-1, 1}}},
		{"degenerate element", [][2]int{{1, 1}}},
		{"endpoints reversed", [][2]int{{1, 0}}},
		{"branching left endpoint", [][2]int{{0, 1}, {0, 2}}},
		{"branching right endpoint", [][2]int{{0, 2}, {1, 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewIntervalMesh(coords, tc.etov)
			assert.Error(t, err)
		})
	}

	_, err := NewIntervalMesh([]float64{0}, [][2]int{{0, 0}})
	assert.Error(t, err, "single-node mesh must be rejected")
}

func TestNeighborAdjacency(t *testing.T) {
	m, err := NewUniformIntervalMesh(3, 0, 3)
	require.NoError(t, err)

	elems := m.ActiveElements()
	require.Len(t, elems, 3)

	// Leftmost element: boundary on the left only.
	assert.Nil(t, elems[0].Neighbor(Left))
	require.NotNil(t, elems[0].Neighbor(Right))
	assert.Equal(t, 1, elems[0].Neighbor(Right).NodeID(0))

	// Interior element: both neighbors present.
	assert.NotNil(t, elems[1].Neighbor(Left))
	assert.NotNil(t, elems[1].Neighbor(Right))

	// Rightmost element: boundary on the right only.
	require.NotNil(t, elems[2].Neighbor(Left))
	assert.Nil(t, elems[2].Neighbor(Right))
}

func TestNeighborWithShuffledNodeNumbering(t *testing.T) {
	// Same three-element chain over [0,3], nodes numbered out of
	// spatial order: x[3]=0, x[1]=1, x[0]=2, x[2]=3.
	coords := []float64{2, 1, 3, 0}
	etov := [][2]int{{0, 2}, {3, 1}, {1, 0}}
	m, err := NewIntervalMesh(coords, etov)
	require.NoError(t, err)

	elems := m.ActiveElements()
	require.Len(t, elems, 3)

	// Element 0 spans [2,3]: rightmost.
	assert.NotNil(t, elems[0].Neighbor(Left))
	assert.Nil(t, elems[0].Neighbor(Right))

	// Element 1 spans [0,1]: leftmost.
	assert.Nil(t, elems[1].Neighbor(Left))
	assert.NotNil(t, elems[1].Neighbor(Right))

	// Element 2 spans [1,2]: interior.
	assert.NotNil(t, elems[2].Neighbor(Left))
	assert.NotNil(t, elems[2].Neighbor(Right))
}

func TestSetActiveChangesAdjacency(t *testing.T) {
	m, err := NewUniformIntervalMesh(3, 0, 3)
	require.NoError(t, err)

	require.NoError(t, m.SetActive(1, false))
	assert.Equal(t, 2, m.NumActiveElements())

	elems := m.ActiveElements()
	require.Len(t, elems, 2)

	// The former neighbors of the deactivated element now see a
	// boundary where it used to be.
	assert.Nil(t, elems[0].Neighbor(Right))
	assert.Nil(t, elems[1].Neighbor(Left))

	require.NoError(t, m.SetActive(1, true))
	assert.Equal(t, 3, m.NumActiveElements())

	assert.Error(t, m.SetActive(7, false))
	assert.Error(t, m.SetActive(-1, false))
}

func TestCoordinateLookup(t *testing.T) {
	m, err := NewUniformIntervalMesh(2, 0, 1)
	require.NoError(t, err)

	x, err := m.Coordinate(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, x, 1e-15)

	_, err = m.Coordinate(3)
	assert.Error(t, err)
	_, err = m.Coordinate(-1)
	assert.Error(t, err)
}
