// Package trace plots the running posterior of a monophyly test as a
// convergence diagnostic: for well-mixed chains the curve flattens
// out after the burn-in.
package trace

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot saves a plot of the running posterior (one value per retained
// sample) to fn; the format is deduced from the extension.
func Plot(trace []float64, fn string) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.X.Label.Text = "sample"
	p.Y.Label.Text = "P(monophyly)"
	p.Y.Min = 0
	p.Y.Max = 1

	pts := make(plotter.XYs, len(trace))
	for i, v := range trace {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}

	err = plotutil.AddLinePoints(p, "posterior", pts)
	if err != nil {
		return err
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, fn)
}
