// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dct328/gosees/fem"
	"github.com/dct328/gosees/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spring = `
data: {ndim: 2}
nodes:
  - {tag: 1, crds: [0, 0], ndf: 2, fix: [0, 1]}
  - {tag: 2, crds: [0, 0], ndf: 2, fix: [1]}
materials:
  - {tag: 1, model: elastic, prms: [{n: E, v: 100}]}
elements:
  - {tag: 1, type: zero-length, nodes: [1, 2], mats: [1], dirs: [0]}
series:
  - {tag: 1, type: linear}
patterns:
  - {tag: 1, series: 1, loads: [{node: 2, vals: [10, 0]}]}
solver: {integrator: load-control, dt: 0.5, nsteps: 4}
recorders:
  - {key: u, type: node, tag: 2, args: [disp, "0"]}
  - {key: disp, type: node, tag: 2, args: [disp]}
  - {key: q, type: element, tag: 1, args: [basicForce]}
plots:
  - {key: fd, xrec: u, xidx: 0, yrec: q, yidx: 0, xlabel: u, ylabel: q}
  - {key: fd-default, xrec: disp, xidx: 0, yrec: q, yidx: 0}
`

func newMain(tst *testing.T, text string) *fem.Main {
	sim, err := inp.ParseSim([]byte(text))
	require.NoError(tst, err)
	sim.DirOut = tst.TempDir()
	sim.Key = "test"
	m, err := fem.NewMainSim(sim, chk.Verbose)
	require.NoError(tst, err)
	return m
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. recorders")

	m := newMain(tst, spring)
	require.NoError(tst, Start(m))
	require.Len(tst, Recorders, 3)
	require.NoError(tst, m.Run())

	chk.Array(tst, "times", 1e-15, Times, []float64{0, 0.5, 1, 1.5, 2})
	u, err := Get("u", 0)
	require.NoError(tst, err)
	chk.Array(tst, "u", 1e-14, u, []float64{0, 0.05, 0.1, 0.15, 0.2})
	q, err := Get("q", 0)
	require.NoError(tst, err)
	chk.Array(tst, "q", 1e-12, q, []float64{0, 5, 10, 15, 20})
	uy, err := Get("disp", 1)
	require.NoError(tst, err)
	chk.Array(tst, "uy", 1e-15, uy, make([]float64, 5))
	assert.Equal(tst, []string{"u1", "u2"}, RecMap["disp"].Labels)
	assert.Equal(tst, "disp:u1", GetLabel("disp", 0))
	assert.Equal(tst, "disp[7]", GetLabel("disp", 7))

	_, err = Get("disp", 2)
	assert.Error(tst, err)
	_, err = Get("none", 0)
	assert.Error(tst, err)

	// files
	require.NoError(tst, SaveAll())
	_, res := io.ReadTable(filepath.Join(m.Sim.DirOut, "test-u.txt"))
	chk.Array(tst, "time from file", 1e-15, res["time"], Times)
	chk.Array(tst, "u from file", 1e-14, res["u1"], u)
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. hysteresis plots")

	m := newMain(tst, spring)
	require.NoError(tst, Start(m))
	require.NoError(tst, m.Run())
	require.NoError(tst, PlotAll())
	for _, key := range []string{"fd", "fd-default"} {
		_, err := os.Stat(filepath.Join(m.Sim.DirOut, io.Sf("test-%s.png", key)))
		assert.NoError(tst, err)
	}

	// wrong components
	err := PlotHysteresis(&inp.PlotData{Key: "wrong", Xrec: "u", Xidx: 3, Yrec: "q"}, filepath.Join(m.Sim.DirOut, "wrong.png"))
	assert.Error(tst, err)
	assert.Error(tst, SaveXY("x.png", "x", "", "", []float64{1}, nil))
}

func Test_out03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out03. invalid recorders")

	m := newMain(tst, spring)
	for _, rd := range []*inp.RecorderData{
		{Key: "a", Type: "node", Tag: 2, Args: []string{"force"}},
		{Key: "b", Type: "node", Tag: 2, Args: []string{"disp", "2"}},
		{Key: "c", Type: "node", Tag: 2},
		{Key: "d", Type: "node", Tag: 9, Args: []string{"disp"}},
		{Key: "e", Type: "element", Tag: 9, Args: []string{"basicForce"}},
		{Key: "f", Type: "element", Tag: 1, Args: []string{"nothing"}},
	} {
		_, err := NewRecorder(rd, m.Dom)
		assert.Error(tst, err, rd.Key)
	}
	r, err := NewRecorder(&inp.RecorderData{Key: "v", Type: "node", Tag: 2, Args: []string{"vel", "0"}}, m.Dom)
	require.NoError(tst, err)
	assert.Error(tst, r.Save(m.Sim.DirOut, "v.txt"), "no records")

	// file cannot be created
	r.Record(0)
	require.NoError(tst, os.WriteFile(filepath.Join(m.Sim.DirOut, "blocker"), nil, 0644))
	assert.Error(tst, r.Save(filepath.Join(m.Sim.DirOut, "blocker"), "v.txt"))
	require.NoError(tst, r.Save(m.Sim.DirOut, "v.txt"))
}

func Test_out04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out04. bending moment diagram")

	m := newMain(tst, `
data: {ndim: 2}
nodes:
  - {tag: 1, crds: [0, 0], fix: [0, 1, 2]}
  - {tag: 2, crds: [2, 0]}
  - {tag: 3, crds: [2, 1]}
elements:
  - {tag: 1, type: elastic-beam-2d, nodes: [1, 2], prms: [{n: A, v: 1}, {n: E, v: 100}, {n: I, v: 2}]}
  - {tag: 2, type: elastic-beam-2d, nodes: [2, 3], prms: [{n: A, v: 1}, {n: E, v: 100}, {n: I, v: 2}]}
series:
  - {tag: 1, type: constant}
patterns:
  - {tag: 1, series: 1, loads: [{node: 3, vals: [1, 0, 0]}]}
solver: {integrator: load-control}
`)
	require.NoError(tst, Start(m))
	require.NoError(tst, m.Run())
	require.Len(tst, Beams(), 2)
	fn := filepath.Join(m.Sim.DirOut, "moments.png")
	require.NoError(tst, BeamDiagMoment(fn, 11, 0.2))
	_, err := os.Stat(fn)
	assert.NoError(tst, err)
}

func Test_out05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out05. terminal chart")

	m := newMain(tst, spring)
	require.NoError(tst, Start(m))
	require.NoError(tst, m.Run())
	chart, err := Terminal("q", 0)
	require.NoError(tst, err)
	assert.Contains(tst, chart, "q:")
	if chk.Verbose {
		io.Pf("%s\n", chart)
	}
	_, err = Terminal("q", 4)
	assert.Error(tst, err)
}

func Test_out06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out06. deformed shape")

	m := newMain(tst, spring)
	require.NoError(tst, Start(m))
	require.NoError(tst, m.Run())
	fn := filepath.Join(m.Sim.DirOut, "shape.png")
	require.NoError(tst, PlotDeformed(fn, 10, 0, 1))
	_, err := os.Stat(fn)
	assert.NoError(tst, err)
	assert.Error(tst, PlotDeformed(fn, 1, 0, 2), "3rd axis in 2D")
	assert.Error(tst, PlotDeformed(fn, 1, 1, 1), "same axis")

	// bearing drawn with its own polyline
	b := io.ReadFile("../inp/data/slider.yaml")
	m = newMain(tst, string(b))
	require.NoError(tst, Start(m))
	fn = filepath.Join(m.Sim.DirOut, "slider.png")
	require.NoError(tst, PlotDeformed(fn, 0, 0, 2))
	_, err = os.Stat(fn)
	assert.NoError(tst, err)
}
