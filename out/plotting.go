// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/dct328/gosees/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// figure size
var (
	FigWidth  = 6 * vg.Inch
	FigHeight = 4 * vg.Inch
)

// PlotAll draws all plots of the simulation file
//  Note: files are named {simKey}-{plotKey}.png
func PlotAll() (err error) {
	sim := Analysis.Sim
	for _, pd := range sim.Plots {
		fn := filepath.Join(sim.DirOut, io.Sf("%s-%s.png", sim.Key, pd.Key))
		if err = PlotHysteresis(pd, fn); err != nil {
			return
		}
		if Analysis.ShowMsg {
			io.Pf("> Plot saved in %s\n", fn)
		}
	}
	return
}

// PlotHysteresis plots one recorded component against another; e.g. force versus displacement
func PlotHysteresis(pd *inp.PlotData, filename string) (err error) {
	X, err := Get(pd.Xrec, pd.Xidx)
	if err != nil {
		return
	}
	Y, err := Get(pd.Yrec, pd.Yidx)
	if err != nil {
		return
	}
	xlbl, ylbl := pd.Xlabel, pd.Ylabel
	if xlbl == "" {
		xlbl = GetLabel(pd.Xrec, pd.Xidx)
	}
	if ylbl == "" {
		ylbl = GetLabel(pd.Yrec, pd.Yidx)
	}
	return SaveXY(filename, pd.Key, xlbl, ylbl, X, Y)
}

// SaveXY draws one curve and saves the figure
func SaveXY(filename, title, xlbl, ylbl string, X, Y []float64) (err error) {
	if len(X) != len(Y) {
		return chk.Err("cannot plot %q: len(X)=%d and len(Y)=%d differ", title, len(X), len(Y))
	}
	if len(X) == 0 {
		return chk.Err("cannot plot %q: there are no points", title)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlbl
	p.Y.Label.Text = ylbl
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(X))
	for i := range X {
		pts[i] = plotter.XY{X: X[i], Y: Y[i]}
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return
	}
	l.LineStyle = lineStyle(0)
	p.Add(l)
	return save(p, filename)
}

// save creates the directory and saves the figure
func save(p *plot.Plot, filename string) (err error) {
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err = os.MkdirAll(dir, 0777); err != nil {
			return chk.Err("cannot create directory %q:\n%v", dir, err)
		}
	}
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	return p.Save(FigWidth, FigHeight, filename)
}
