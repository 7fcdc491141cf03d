// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/dct328/gosees/ele/beam"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Beams returns all 2D elastic beams of the domain
func Beams() (beams []*beam.ElasticBeam2d) {
	for _, e := range Dom.Elems {
		if b, ok := e.(*beam.ElasticBeam2d); ok {
			beams = append(beams, b)
		}
	}
	return
}

// BeamDiagMoment plots the bending moment diagrams of all beams at the current state
//  Input
//   nstations -- number of points along each beam
//   coef      -- coefficient to scale max(dimension) divided by max(M); e.g. 0.1
//  Note: diagrams are drawn normal to the beam axis on the side of positive M
func BeamDiagMoment(filename string, nstations int, coef float64) (err error) {
	beams := Beams()
	if len(beams) == 0 {
		return chk.Err("there are no beams in the domain")
	}

	// bending moments and extent of the structure
	allM := make([][]float64, len(beams))
	maxAbsM := 0.0
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for i, b := range beams {
		allM[i] = b.Moments(nstations)
		for _, m := range allM[i] {
			maxAbsM = math.Max(maxAbsM, math.Abs(m))
		}
		for _, tag := range b.ExternalNodes() {
			x := Dom.GetNode(tag).X
			xmin, xmax = math.Min(xmin, x[0]), math.Max(xmax, x[0])
			ymin, ymax = math.Min(ymin, x[1]), math.Max(ymax, x[1])
		}
	}

	// scaling factor
	dist := math.Max(xmax-xmin, ymax-ymin)
	sf := 1.0
	if maxAbsM > 1e-7 {
		sf = coef * dist / maxAbsM
	}

	// draw
	p := plot.New()
	p.Title.Text = "bending moments"
	for i, b := range beams {
		xa := Dom.GetNode(b.ExternalNodes()[0]).X
		xb := Dom.GetNode(b.ExternalNodes()[1]).X
		dx, dy := xb[0]-xa[0], xb[1]-xa[1]
		l := math.Hypot(dx, dy)
		nx, ny := -dy/l, dx/l
		n := len(allM[i])
		axis := plotter.XYs{{X: xa[0], Y: xa[1]}, {X: xb[0], Y: xb[1]}}
		diag := make(plotter.XYs, n+2)
		diag[0] = plotter.XY{X: xa[0], Y: xa[1]}
		for j, m := range allM[i] {
			ξ := float64(j) / float64(n-1)
			diag[j+1] = plotter.XY{X: xa[0] + ξ*dx + sf*m*nx, Y: xa[1] + ξ*dy + sf*m*ny}
		}
		diag[n+1] = plotter.XY{X: xb[0], Y: xb[1]}
		la, err := plotter.NewLine(axis)
		if err != nil {
			return err
		}
		la.LineStyle.Width = vg.Points(2)
		ld, err := plotter.NewLine(diag)
		if err != nil {
			return err
		}
		ld.LineStyle = lineStyle(1)
		p.Add(la, ld)
	}
	return save(p, filename)
}
