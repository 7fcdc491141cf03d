// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Colors holds the colors of curves
var Colors = []color.RGBA{
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 128, B: 0, A: 255},
	{R: 139, G: 69, B: 19, A: 255},
	{R: 255, G: 0, B: 255, A: 255},
}

// lineStyle returns the style of curve i
func lineStyle(i int) draw.LineStyle {
	s := plotter.DefaultLineStyle
	s.Color = Colors[i%len(Colors)]
	s.Width = vg.Points(1.2)
	return s
}

// GetLabel returns the axis label of one recorded component; e.g. "disp:u1"
func GetLabel(reckey string, idx int) string {
	if r, ok := RecMap[reckey]; ok && idx >= 0 && idx < len(r.Labels) {
		return io.Sf("%s:%s", reckey, r.Labels[idx])
	}
	return io.Sf("%s[%d]", reckey, idx)
}
