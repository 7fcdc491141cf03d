// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read slider model")

	sim, err := ReadSim("data/slider.yaml", "", false, false)
	require.NoError(tst, err)
	if chk.Verbose {
		for _, m := range sim.Materials {
			io.Pforan("%v\n", m)
		}
	}

	assert.Equal(tst, "slider", sim.Key)
	assert.Equal(tst, "json", sim.EncType)
	chk.Int(tst, "ndim", sim.Data.Ndim, 3)
	chk.Int(tst, "nnodes", len(sim.Nodes), 2)
	chk.Int(tst, "ndf of node 1", sim.Nodes[0].Ndf, 6)
	chk.Ints(tst, "fix of node 2", sim.Node(2).Fix, []int{1, 3, 4, 5})
	chk.Array(tst, "mass of node 2", 1e-15, sim.Node(2).Mass, []float64{1, 0, 0, 0, 0, 0})

	// materials
	m := sim.Materials.Get(1)
	require.NotNil(tst, m)
	prms := m.Prms.Dbf()
	chk.Int(tst, "nprms", len(prms), 1)
	assert.Equal(tst, "E", prms[0].N)
	chk.Float64(tst, "E", 1e-15, prms[0].V, 1e6)
	assert.Nil(tst, sim.Materials.Get(123))

	// element
	e := sim.Elements[0]
	assert.Equal(tst, "flat-slider-3d", e.Type)
	chk.Ints(tst, "mats", e.Mats, []int{1, 2, 2, 2})
	chk.Float64(tst, "k0", 1e-15, e.Prms.Get("k0", 0), 100)
	chk.Float64(tst, "maxIter (default)", 1e-15, e.Prms.Get("maxIter", 25), 25)
	assert.False(tst, e.Prms.Has("tol"))

	// analysis
	assert.Equal(tst, "collocation-hs-incr-reduct", sim.Solver.Integrator)
	chk.Float64(tst, "reduct", 1e-15, sim.Solver.Prms.Get("reduct", 1), 0.8)
	chk.Float64(tst, "dt", 1e-15, sim.Solver.Dt, 0.01)
	chk.Int(tst, "nsteps", sim.Solver.Nsteps, 800)
	chk.Int(tst, "nmaxit", sim.Solver.NmaxIt, 40)
	chk.Float64(tst, "tol", 1e-15, sim.Solver.Tol, 1e-8)
	chk.Int(tst, "nrecorders", len(sim.Recorders), 2)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. invalid models")

	// unknown key
	_, err := ParseSim([]byte("data: {ndim: 3, banana: 1}\n"))
	assert.Error(tst, err)

	// missing node
	_, err = ParseSim([]byte(`
nodes: [{tag: 1, crds: [0, 0, 0]}]
elements: [{tag: 1, type: zero-length, nodes: [1, 2]}]
`))
	assert.Error(tst, err)

	// duplicated material
	_, err = ParseSim([]byte(`
materials: [{tag: 1, model: elastic}, {tag: 1, model: elastic-pp}]
`))
	assert.Error(tst, err)

	// missing series
	_, err = ParseSim([]byte(`
nodes: [{tag: 1, crds: [0, 0]}]
data: {ndim: 2}
patterns: [{tag: 1, series: 9, loads: [{node: 1, vals: [1, 0, 0]}]}]
`))
	assert.Error(tst, err)

	// wrong analysis
	_, err = ParseSim([]byte("solver: {dt: -1}\n"))
	assert.Error(tst, err)
	sim, err := ParseSim([]byte("solver: {nsteps: 2}\n"))
	require.NoError(tst, err)
	chk.Int(tst, "nmaxit (default)", sim.Solver.NmaxIt, 20)

	// minimal
	sim, err = ParseSim([]byte("data: {ndim: 2}\nnodes: [{tag: 1, crds: [0, 0]}]\n"))
	require.NoError(tst, err)
	chk.Int(tst, "ndf 2D", sim.Nodes[0].Ndf, 3)
	assert.Equal(tst, "gob", sim.EncType)
}

func Test_func01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("func01. gosl functions and files")

	f, err := NewFunc("cte", Prms{{N: "c", V: 3}})
	require.NoError(tst, err)
	chk.Float64(tst, "f", 1e-15, f.F(1, nil), 3)

	f, err = NewFunc("banana", nil)
	assert.Error(tst, err)
	assert.Nil(tst, f)
	_, err = NewFunc("cte", nil)
	assert.Error(tst, err, "missing c")

	b, err := ReadFile("data/slider.yaml")
	require.NoError(tst, err)
	assert.Contains(tst, string(b), "flat-slider-3d")
	_, err = ReadFile("data/not-there.yaml")
	assert.Error(tst, err)
	_, err = ReadSim("data/not-there.yaml", "", false, false)
	assert.Error(tst, err)
}
