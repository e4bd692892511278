package mesh

import (
	"fmt"
)

// IntervalMesh is a conforming 1D mesh of line elements. Nodes may be
// numbered in arbitrary order; adjacency is derived from shared
// endpoint nodes. Elements can be switched inactive to model
// refined-away parts of an adapted mesh.
type IntervalMesh struct {
	Coords []float64 // Node id → x position
	EToV   [][2]int  // Element → (left node id, right node id)

	active    []bool  // Element participation flags
	nodeElems [][]int // Node id → incident element indices
}

// NewIntervalMesh builds a mesh from node coordinates and
// element-to-vertex connectivity. Each element's endpoints must be
// ordered left to right, and the connectivity must form a conforming
// chain: no node may serve as the left endpoint of two elements, nor
// as the right endpoint of two.
func NewIntervalMesh(coords []float64, etov [][2]int) (*IntervalMesh, error) {
	if len(coords) < 2 {
		return nil, fmt.Errorf("need at least 2 nodes, got %d", len(coords))
	}
	if len(etov) == 0 {
		return nil, fmt.Errorf("mesh has no elements")
	}

	leftUse := make([]int, len(coords))
	rightUse := make([]int, len(coords))
	nodeElems := make([][]int, len(coords))

	for k, ev := range etov {
		v0, v1 := ev[0], ev[1]
		if v0 < 0 || v0 >= len(coords) || v1 < 0 || v1 >= len(coords) {
			return nil, fmt.Errorf("element %d references node out of range: (%d, %d) with %d nodes",
				k, v0, v1, len(coords))
		}
		if v0 == v1 {
			return nil, fmt.Errorf("element %d is degenerate: both endpoints are node %d", k, v0)
		}
		if coords[v0] >= coords[v1] {
			return nil, fmt.Errorf("element %d endpoints not ordered left to right: x[%d]=%g >= x[%d]=%g",
				k, v0, coords[v0], v1, coords[v1])
		}
		leftUse[v0]++
		rightUse[v1]++
		if leftUse[v0] > 1 {
			return nil, fmt.Errorf("node %d is the left endpoint of %d elements; mesh is not conforming",
				v0, leftUse[v0])
		}
		if rightUse[v1] > 1 {
			return nil, fmt.Errorf("node %d is the right endpoint of %d elements; mesh is not conforming",
				v1, rightUse[v1])
		}
		nodeElems[v0] = append(nodeElems[v0], k)
		nodeElems[v1] = append(nodeElems[v1], k)
	}

	active := make([]bool, len(etov))
	for k := range active {
		active[k] = true
	}

	return &IntervalMesh{
		Coords:    coords,
		EToV:      etov,
		active:    active,
		nodeElems: nodeElems,
	}, nil
}

// NewUniformIntervalMesh builds n equally sized line elements spanning
// [xmin, xmax], with node i at xmin + i*h.
func NewUniformIntervalMesh(n int, xmin, xmax float64) (*IntervalMesh, error) {
	if n < 1 {
		return nil, fmt.Errorf("need at least 1 element, got %d", n)
	}
	if xmin >= xmax {
		return nil, fmt.Errorf("invalid domain [%g, %g]", xmin, xmax)
	}

	h := (xmax - xmin) / float64(n)
	coords := make([]float64, n+1)
	for i := range coords {
		coords[i] = xmin + float64(i)*h
	}
	coords[n] = xmax // avoid accumulation drift at the right end

	etov := make([][2]int, n)
	for k := range etov {
		etov[k] = [2]int{k, k + 1}
	}

	return NewIntervalMesh(coords, etov)
}

func (m *IntervalMesh) Dimension() int { return 1 }

// NumNodes returns the total node count, active or not.
func (m *IntervalMesh) NumNodes() int { return len(m.Coords) }

// NumElements returns the total element count, active or not.
func (m *IntervalMesh) NumElements() int { return len(m.EToV) }

func (m *IntervalMesh) NumActiveElements() int {
	n := 0
	for _, on := range m.active {
		if on {
			n++
		}
	}
	return n
}

// ActiveElements yields the active elements in element-index order.
func (m *IntervalMesh) ActiveElements() []Element {
	elems := make([]Element, 0, len(m.EToV))
	for k, on := range m.active {
		if on {
			elems = append(elems, intervalElement{m: m, k: k})
		}
	}
	return elems
}

func (m *IntervalMesh) Coordinate(nodeID int) (float64, error) {
	if nodeID < 0 || nodeID >= len(m.Coords) {
		return 0, fmt.Errorf("node id %d out of range [0, %d)", nodeID, len(m.Coords))
	}
	return m.Coords[nodeID], nil
}

// SetActive switches an element in or out of the active set.
func (m *IntervalMesh) SetActive(elem int, on bool) error {
	if elem < 0 || elem >= len(m.active) {
		return fmt.Errorf("element %d out of range [0, %d)", elem, len(m.active))
	}
	m.active[elem] = on
	return nil
}

// intervalElement is a borrowed view into its mesh; it holds no state
// of its own.
type intervalElement struct {
	m *IntervalMesh
	k int
}

func (e intervalElement) NumNodes() int { return 2 }

func (e intervalElement) NodeID(local int) int { return e.m.EToV[e.k][local] }

func (e intervalElement) Neighbor(s Side) Element {
	node := e.m.EToV[e.k][s]
	for _, other := range e.m.nodeElems[node] {
		if other != e.k && e.m.active[other] {
			return intervalElement{m: e.m, k: other}
		}
	}
	return nil
}
