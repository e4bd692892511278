// Package field holds per-node solution data in the flat layout used
// by 1D output writers: Values[nodeID*NumVars + varIdx].
package field

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrIndexOutOfRange flags a node/variable pair that falls outside the
// backing value buffer.
var ErrIndexOutOfRange = errors.New("field: node/variable index out of range")

// NodalField is a typed view over a caller-owned flat value buffer.
// Every access goes through bounds-checked accessors; the buffer is
// never indexed past its length.
type NodalField struct {
	Values  []float64 // Flat buffer: Values[nodeID*NumVars + varIdx]
	NumVars int       // Values per node
}

// New wraps a flat value buffer. The buffer length must be a whole
// multiple of numVars.
func New(values []float64, numVars int) (*NodalField, error) {
	if numVars < 1 {
		return nil, fmt.Errorf("field: need at least 1 variable per node, got %d", numVars)
	}
	if len(values)%numVars != 0 {
		return nil, fmt.Errorf("field: buffer length %d is not a multiple of %d variables per node",
			len(values), numVars)
	}
	return &NodalField{Values: values, NumVars: numVars}, nil
}

// FromDense flattens a (nodes × variables) matrix into a NodalField.
func FromDense(m *mat.Dense) *NodalField {
	rows, cols := m.Dims()
	values := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		values = append(values, m.RawRowView(i)...)
	}
	return &NodalField{Values: values, NumVars: cols}
}

// NumNodes returns the number of nodes the buffer covers.
func (f *NodalField) NumNodes() int { return len(f.Values) / f.NumVars }

// At returns the value of one variable at one node.
func (f *NodalField) At(nodeID, varIdx int) (float64, error) {
	if varIdx < 0 || varIdx >= f.NumVars {
		return 0, fmt.Errorf("%w: variable %d with %d variables per node",
			ErrIndexOutOfRange, varIdx, f.NumVars)
	}
	if nodeID < 0 || nodeID >= f.NumNodes() {
		return 0, fmt.Errorf("%w: node %d with values for %d nodes",
			ErrIndexOutOfRange, nodeID, f.NumNodes())
	}
	return f.Values[nodeID*f.NumVars+varIdx], nil
}

// NodeValues returns a copy of the contiguous run of all variables at
// one node.
func (f *NodalField) NodeValues(nodeID int) ([]float64, error) {
	if nodeID < 0 || nodeID >= f.NumNodes() {
		return nil, fmt.Errorf("%w: node %d with values for %d nodes",
			ErrIndexOutOfRange, nodeID, f.NumNodes())
	}
	vals := make([]float64, f.NumVars)
	copy(vals, f.Values[nodeID*f.NumVars:])
	return vals, nil
}
