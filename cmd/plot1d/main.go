// Command plot1d builds a uniform 1D mesh, samples analytic profiles
// at its nodes, and exports a gnuplot script/data pair. Intended as a
// quick smoke driver for the library.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/notargets/plot1d/field"
	"github.com/notargets/plot1d/gnuplot"
	"github.com/notargets/plot1d/mesh"
)

func main() {
	var (
		n     = flag.Int("elements", 10, "number of line elements")
		xmin  = flag.Float64("xmin", 0, "left end of the domain")
		xmax  = flag.Float64("xmax", 1, "right end of the domain")
		title = flag.String("title", "1D nodal solution", "plot title")
		grid  = flag.Bool("grid", false, "overlay element-boundary tick marks and a grid")
		png   = flag.Bool("png", false, "emit PNG terminal directives")
		out   = flag.String("o", "solution.gp", "script output path; the data file gets a _data suffix")
	)
	flag.Parse()

	m, err := mesh.NewUniformIntervalMesh(*n, *xmin, *xmax)
	if err != nil {
		log.Fatalf("build mesh: %v", err)
	}

	names := []string{"sin(pi x)", "x^2"}
	values := make([]float64, 0, m.NumNodes()*len(names))
	for id := 0; id < m.NumNodes(); id++ {
		x, err := m.Coordinate(id)
		if err != nil {
			log.Fatalf("node %d: %v", id, err)
		}
		values = append(values, math.Sin(math.Pi*x), x*x)
	}
	soln, err := field.New(values, len(names))
	if err != nil {
		log.Fatalf("build field: %v", err)
	}

	var opts gnuplot.Option
	if *grid {
		opts |= gnuplot.GridOn
	}
	if *png {
		opts |= gnuplot.PNGOutput
	}

	w := gnuplot.NewWriter(m, *title, opts)
	if err := w.WriteNodalData(*out, soln, names); err != nil {
		log.Fatalf("export: %v", err)
	}

	fmt.Printf("wrote %s and %s_data (%d elements, %d nodes)\n",
		*out, *out, m.NumActiveElements(), m.NumNodes())
}
