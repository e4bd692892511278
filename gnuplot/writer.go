// Package gnuplot exports 1D meshes and nodal solution fields as a
// gnuplot script plus a companion tab-separated data file.
package gnuplot

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/plot1d/field"
	"github.com/notargets/plot1d/mesh"
)

// Option is a bitmask of display options for the generated script.
type Option uint8

const (
	// GridOn overlays element-boundary tick marks and a grid.
	GridOn Option = 1 << iota
	// PNGOutput directs gnuplot to a PNG file instead of an
	// interactive terminal.
	PNGOutput
)

var (
	// ErrUnsupportedGeometry reports a mesh this writer cannot plot:
	// dimension other than 1, or a 1D mesh that is not a single
	// connected interval.
	ErrUnsupportedGeometry = errors.New("gnuplot: unsupported mesh geometry")

	// ErrMissingData reports a nodal-data export requested without a
	// usable solution or variable names.
	ErrMissingData = errors.New("gnuplot: nodal data export requires a solution and variable names")

	// ErrNoActiveElements reports a mesh with nothing to plot; the
	// domain extent would be degenerate.
	ErrNoActiveElements = errors.New("gnuplot: mesh has no active elements")
)

// Writer exports a 1D mesh, optionally with a nodal field, for
// external visualization with gnuplot.
//
// In a distributed-mesh deployment every process must call the export
// methods together with an identical active-element traversal, but
// only the coordinating process (rank 0 unless SetProcessID says
// otherwise) performs file I/O. The other ranks traverse and return.
type Writer struct {
	mesh  mesh.Mesh
	title string
	grid  bool
	png   bool
	rank  int
}

// NewWriter creates a writer for the given mesh. The mesh is not
// validated until an export method runs.
func NewWriter(m mesh.Mesh, title string, opts Option) *Writer {
	return &Writer{
		mesh:  m,
		title: title,
		grid:  opts&GridOn != 0,
		png:   opts&PNGOutput != 0,
	}
}

// SetProcessID tells the writer which process it runs on. Rank 0 is
// the coordinator and the only rank that writes files.
func (w *Writer) SetProcessID(rank int) { w.rank = rank }

// Write emits only the script artifact, with no plot clauses and no
// data file. Useful for a geometry-only sanity plot of the mesh
// extents and element boundaries.
func (w *Writer) Write(path string) error {
	return w.writeSolution(path, nil, nil)
}

// WriteNodalData emits the script artifact at path and the data
// artifact at path+"_data". names defines both the legend labels and
// the data column order; its length must equal soln.NumVars.
func (w *Writer) WriteNodalData(path string, soln *field.NodalField, names []string) error {
	if soln == nil || len(soln.Values) == 0 || len(names) == 0 {
		return ErrMissingData
	}
	if len(names) != soln.NumVars {
		return fmt.Errorf("%w: %d names for a field with %d variables per node",
			ErrMissingData, len(names), soln.NumVars)
	}
	return w.writeSolution(path, soln, names)
}

func (w *Writer) writeSolution(path string, soln *field.NodalField, names []string) error {
	if d := w.mesh.Dimension(); d != 1 {
		return fmt.Errorf("%w: mesh dimension is %d, want 1", ErrUnsupportedGeometry, d)
	}

	elems := w.mesh.ActiveElements()
	if len(elems) == 0 {
		return ErrNoActiveElements
	}

	// Every rank performs the bounds/tick traversal so that
	// active-element iteration stays consistent across a distributed
	// mesh, even though only the coordinator emits output.
	xmin, xmax, ticks, err := w.scanBounds(elems)
	if err != nil {
		return err
	}
	if w.rank != 0 {
		return nil
	}

	dataPath := path + "_data"
	if err := os.WriteFile(path, []byte(w.script(path, dataPath, xmin, xmax, ticks, names)), 0o644); err != nil {
		return fmt.Errorf("gnuplot: write script file: %w", err)
	}

	if soln == nil {
		return nil
	}

	rows, err := w.collectNodalData(elems, soln)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dataPath, []byte(formatRows(rows)), 0o644); err != nil {
		return fmt.Errorf("gnuplot: write data file: %w", err)
	}
	return nil
}

// scanBounds walks the active elements once, reducing the domain
// extent over all boundary-adjacent elements and collecting the
// element-boundary tick list in traversal order (gnuplot accepts
// unsorted tick lists).
func (w *Writer) scanBounds(elems []mesh.Element) (xmin, xmax float64, ticks string, err error) {
	var lefts, rights []float64
	var tickList []string

	for _, el := range elems {
		leftX, err := w.mesh.Coordinate(el.NodeID(0))
		if err != nil {
			return 0, 0, "", err
		}
		rightX, err := w.mesh.Coordinate(el.NodeID(el.NumNodes() - 1))
		if err != nil {
			return 0, 0, "", err
		}

		if el.Neighbor(mesh.Left) == nil {
			lefts = append(lefts, leftX)
			tickList = append(tickList, `"" `+formatFloat(leftX))
		}
		if el.Neighbor(mesh.Right) == nil {
			rights = append(rights, rightX)
		}
		tickList = append(tickList, `"" `+formatFloat(rightX))
	}

	if len(lefts) != 1 || len(rights) != 1 {
		return 0, 0, "", fmt.Errorf("%w: found %d left and %d right boundary elements, want exactly 1 of each (disconnected mesh?)",
			ErrUnsupportedGeometry, len(lefts), len(rights))
	}

	return floats.Min(lefts), floats.Max(rights), strings.Join(tickList, ", \\\n"), nil
}

// script renders the full gnuplot command file. names == nil produces
// the geometry-only variant without plot clauses.
func (w *Writer) script(path, dataPath string, xmin, xmax float64, ticks string, names []string) string {
	var sb strings.Builder

	sb.WriteString("# Generated by plot1d: 1D nodal solution in gnuplot format\n")
	fmt.Fprintf(&sb, "# Execute this by loading gnuplot and typing \"call '%s'\"\n", path)
	sb.WriteString("reset\n")
	fmt.Fprintf(&sb, "set title \"%s\"\n", w.title)
	sb.WriteString("set xlabel \"x\"\n")
	sb.WriteString("set xtics nomirror\n")
	fmt.Fprintf(&sb, "set xrange [%s:%s]\n", formatFloat(xmin), formatFloat(xmax))

	if w.grid {
		fmt.Fprintf(&sb, "set x2tics (%s)\n", ticks)
		sb.WriteString("set grid noxtics noytics x2tics\n")
	}
	if w.png {
		sb.WriteString("set terminal png\n")
		fmt.Fprintf(&sb, "set output \"%s.png\"\n", path)
	}

	for i, name := range names {
		if i == 0 {
			fmt.Fprintf(&sb, "plot \"%s\" using 1:2 title \"%s\" with lines", dataPath, name)
		} else {
			fmt.Fprintf(&sb, ", \\\n\"%s\" using 1:%d title \"%s\" with lines", dataPath, i+2, name)
		}
	}
	if len(names) > 0 {
		sb.WriteByte('\n')
	}

	return sb.String()
}

// nodeSample is one row of the data artifact before ordering.
type nodeSample struct {
	id   int
	x    float64
	vals []float64
}

// collectNodalData walks the active elements and their local nodes,
// deduplicating shared nodes by global node id. Repeat visits of a
// node overwrite its entry (last write wins); in a conforming mesh
// every visit carries identical values. The coordinate is looked up
// only to order the output.
func (w *Writer) collectNodalData(elems []mesh.Element, soln *field.NodalField) ([]nodeSample, error) {
	byNode := make(map[int]nodeSample)

	for _, el := range elems {
		for local := 0; local < el.NumNodes(); local++ {
			id := el.NodeID(local)
			x, err := w.mesh.Coordinate(id)
			if err != nil {
				return nil, err
			}
			vals, err := soln.NodeValues(id)
			if err != nil {
				return nil, err
			}
			byNode[id] = nodeSample{id: id, x: x, vals: vals}
		}
	}

	rows := make([]nodeSample, 0, len(byNode))
	for _, s := range byNode {
		rows = append(rows, s)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].x != rows[j].x {
			return rows[i].x < rows[j].x
		}
		return rows[i].id < rows[j].id
	})
	return rows, nil
}

// formatRows renders the data artifact: one line per node, ascending
// coordinate, tab-separated, no header.
func formatRows(rows []nodeSample) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(formatFloat(row.x))
		for _, v := range row.vals {
			sb.WriteByte('\t')
			sb.WriteString(formatFloat(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// formatFloat uses the shortest representation that round-trips, so
// repeated exports of the same inputs are byte-identical.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
