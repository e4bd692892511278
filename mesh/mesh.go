package mesh

// Side selects one of the two neighbors of a 1D element.
type Side uint8

const (
	Left Side = iota
	Right
)

// Element is a read-only view of a single mesh element.
type Element interface {
	// Neighbor returns the adjacent active element on the given side,
	// or nil when the element sits on a domain boundary there.
	Neighbor(s Side) Element

	// NumNodes returns the number of local nodes (2 for linear line
	// elements).
	NumNodes() int

	// NodeID maps a local node index to the global node id. Local node
	// 0 is the left endpoint and local node NumNodes()-1 the right.
	NodeID(local int) int
}

// Mesh is the traversal capability consumed by output writers.
type Mesh interface {
	// Dimension returns the spatial dimension of the mesh.
	Dimension() int

	// NumActiveElements counts the elements currently participating in
	// the discretization. In a distributed mesh this count must agree
	// across all processes.
	NumActiveElements() int

	// ActiveElements yields the active elements in the mesh's native
	// order, which need not be sorted by coordinate.
	ActiveElements() []Element

	// Coordinate returns the x position of a global node id.
	Coordinate(nodeID int) (float64, error)
}
