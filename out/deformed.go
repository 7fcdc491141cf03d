// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/dct328/gosees/ele"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// PlotDeformed draws all elements at the committed state projected onto the ix-iy plane
//  fact -- scale factor of displacements; use 0 to draw the undeformed shape only
//  Note: elements that cannot display themselves are drawn as straight lines between nodes
func PlotDeformed(filename string, fact float64, ix, iy int) (err error) {
	if ix < 0 || iy < 0 || ix >= Dom.Ndim || iy >= Dom.Ndim || ix == iy {
		return chk.Err("cannot project onto axes %d and %d in %dD", ix, iy, Dom.Ndim)
	}
	p := plot.New()
	p.Title.Text = "deformed shape"
	for _, e := range Dom.Elems {
		undeformed := make(plotter.XYs, 0, 2)
		deformed := make(plotter.XYs, 0, 3)
		for _, tag := range e.ExternalNodes() {
			n := Dom.GetNode(tag)
			undeformed = append(undeformed, plotter.XY{X: n.X[ix], Y: n.X[iy]})
			deformed = append(deformed, plotter.XY{X: n.X[ix] + fact*at(n.Uc, ix), Y: n.X[iy] + fact*at(n.Uc, iy)})
		}
		if d, ok := e.(ele.CanDisplay); ok {
			v1, v2, v3 := d.DisplayPoints(fact)
			deformed = plotter.XYs{{X: v1[ix], Y: v1[iy]}, {X: v2[ix], Y: v2[iy]}, {X: v3[ix], Y: v3[iy]}}
		}
		lu, err := plotter.NewLine(undeformed)
		if err != nil {
			return err
		}
		lu.LineStyle = lineStyle(0)
		p.Add(lu)
		if fact == 0 {
			continue
		}
		ld, err := plotter.NewLine(deformed)
		if err != nil {
			return err
		}
		ld.LineStyle = lineStyle(1)
		p.Add(ld)
	}
	return save(p, filename)
}

// at returns u[i] or zero if the node has fewer DOFs
func at(u []float64, i int) float64 {
	if i < len(u) {
		return u[i]
	}
	return 0
}
