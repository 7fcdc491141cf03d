// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/dct328/gosees/inp"
	"github.com/dct328/gosees/persist"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spring holds a zero-length spring with k=100 and a node with unit mass
const spring = `
data: {ndim: 2}
nodes:
  - {tag: 1, crds: [0, 0], ndf: 2, fix: [0, 1]}
  - {tag: 2, crds: [0, 0], ndf: 2, mass: [1, 0], fix: [1]}
materials:
  - {tag: 1, model: elastic, prms: [{n: E, v: 100}]}
elements:
  - {tag: 1, type: zero-length, nodes: [1, 2], mats: [1], dirs: [0]}
series:
  - {tag: 1, type: linear, prms: [{n: cfactor, v: 1}]}
patterns:
  - {tag: 1, type: plain, series: 1, loads: [{node: 2, vals: [%g, 0]}]}
`

func parse(tst *testing.T, text string) *inp.Simulation {
	sim, err := inp.ParseSim([]byte(text))
	require.NoError(tst, err)
	return sim
}

// newmark returns the displacements of an undamped SDOF under p(t) = t using Newmark's method
func newmark(m, k, β, γ, Δt float64, nsteps int) (res []float64) {
	var u, v, a float64
	keff := k + m/(β*Δt*Δt)
	for n := 1; n <= nsteps; n++ {
		p := float64(n) * Δt
		peff := p + m*(u/(β*Δt*Δt)+v/(β*Δt)+(0.5/β-1)*a)
		unew := peff / keff
		anew := (unew-u)/(β*Δt*Δt) - v/(β*Δt) - (0.5/β-1)*a
		v += Δt * ((1-γ)*a + γ*anew)
		u, a = unew, anew
		res = append(res, u)
	}
	return
}

func Test_fem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem01. load control with spring")

	sim := parse(tst, io.Sf(spring, 10.0)+"solver: {integrator: load-control, dt: 0.5, nsteps: 4}\n")
	main, err := NewMainSim(sim, chk.Verbose)
	require.NoError(tst, err)
	chk.Int(tst, "neq", main.Dom.Neq, 1)
	chk.Ints(tst, "eqs of node 2", main.Dom.GetNode(2).Eqs, []int{0, -1})

	var us []float64
	main.OnStep = func(step int) error {
		us = append(us, main.Dom.GetNode(2).Uc[0])
		chk.Int(tst, "nit", main.Analysis.Nit, 1)
		return nil
	}
	require.NoError(tst, main.Run())
	chk.Array(tst, "u", 1e-14, us, []float64{0.05, 0.1, 0.15, 0.2})
	chk.Float64(tst, "t", 1e-15, main.Dom.TimeC, 2)
	chk.Int(tst, "commitTag", main.Dom.CommitTag, 4)

	// revert to start
	main.Dom.RevertToStart()
	chk.Float64(tst, "u", 1e-15, main.Dom.GetNode(2).U[0], 0)
	assert.Nil(tst, main.Dom.Node(123))
	assert.Nil(tst, main.Dom.Element(123))
}

func Test_fem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem02. cantilever and domain state")

	text := `
data: {ndim: 2}
nodes:
  - {tag: 1, crds: [0, 0], fix: [0, 1, 2]}
  - {tag: 2, crds: [2, 0]}
elements:
  - {tag: 1, type: elastic-beam-2d, nodes: [1, 2], prms: [{n: A, v: 1}, {n: E, v: 100}, {n: I, v: 2}]}
series:
  - {tag: 1, type: constant}
patterns:
  - {tag: 1, series: 1, loads: [{node: 2, vals: [0, -1, 0]}]}
solver: {integrator: load-control}
`
	sim := parse(tst, text)
	main, err := NewMainSim(sim, chk.Verbose)
	require.NoError(tst, err)
	require.NoError(tst, main.Run())

	// P⋅L³/(3EI) and P⋅L²/(2EI)
	u := main.Dom.GetNode(2).Uc
	chk.Array(tst, "u2", 1e-14, u, []float64{0, -8.0 / 600.0, -0.01})

	// save and read state
	var buf bytes.Buffer
	require.NoError(tst, main.Dom.SaveState(3, persist.NewWriter(&buf, "gob")))
	dom, err := NewDomain(parse(tst, text), false)
	require.NoError(tst, err)
	require.NoError(tst, dom.ReadState(3, persist.NewReader(&buf, "gob")))
	chk.Array(tst, "u2", 1e-15, dom.GetNode(2).U, u)
	chk.Float64(tst, "t", 1e-15, dom.TimeC, 1)
	r, err := dom.Element(1).SetResponse([]string{"basicForce"})
	require.NoError(tst, err)
	chk.Float64(tst, "M at support", 1e-13, math.Abs(r.Values()[1]), 2)

	// mismatched domain
	buf.Reset()
	require.NoError(tst, main.Dom.SaveState(0, persist.NewWriter(&buf, "gob")))
	other, err := NewDomain(parse(tst, io.Sf(spring, 1.0)), false)
	require.NoError(tst, err)
	assert.Error(tst, other.ReadState(0, persist.NewReader(&buf, "gob")))
}

func Test_fem03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem03. collocation with θ=1 equals Newmark")

	sim := parse(tst, io.Sf(spring, 1.0)+`
solver:
  integrator: collocation
  prms: [{n: theta, v: 1}, {n: beta, v: 0.25}, {n: gamma, v: 0.5}]
  dt: 0.05
  nsteps: 40
  nmaxit: 5
  tol: 1.0e-10
`)
	main, err := NewMainSim(sim, chk.Verbose)
	require.NoError(tst, err)
	var us []float64
	main.OnStep = func(step int) error {
		us = append(us, main.Dom.GetNode(2).Uc[0])
		return nil
	}
	require.NoError(tst, main.Run())
	chk.Array(tst, "u", 1e-11, us, newmark(1, 100, 0.25, 0.5, 0.05, 40))
	chk.Float64(tst, "t", 1e-13, main.Dom.TimeC, 2)
}

func Test_fem04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem04. Wilson θ and ramp load")

	sim := parse(tst, io.Sf(spring, 1.0)+`
solver:
  integrator: collocation
  prms: [{n: theta, v: 1.4}]
  dt: 0.01
  nsteps: 100
  tol: 1.0e-10
`)
	main, err := NewMainSim(sim, chk.Verbose)
	require.NoError(tst, err)
	coll := main.Int.(*Collocation)
	chk.Float64(tst, "β", 1e-15, coll.Beta, 1.0/6.0)
	chk.Float64(tst, "γ", 1e-15, coll.Gamma, 0.5)
	require.NoError(tst, main.Run())

	// u = (1/k)⋅(t - sin(ω⋅t)/ω) with ω = 10
	t := main.Dom.TimeC
	chk.Float64(tst, "t", 1e-12, t, 1)
	ana := 0.01 * (t - math.Sin(10*t)/10)
	assert.InDelta(tst, ana, main.Dom.GetNode(2).Uc[0], 3e-4)
}

func Test_fem05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem05. increment reduction")

	text := io.Sf(spring, 1.0) + `
solver:
  integrator: collocation-hs-incr-reduct
  prms: [{n: theta, v: 1}, {n: beta, v: 0.25}, {n: gamma, v: 0.5}, {n: reduct, v: 0.5}]
  dt: 0.05
  nsteps: 20
  nmaxit: 80
  tol: 1.0e-13
`
	main, err := NewMainSim(parse(tst, text), chk.Verbose)
	require.NoError(tst, err)
	hs := main.Int.(*CollocationHSIncrReduct)
	chk.Float64(tst, "reduct", 1e-15, hs.Reduct, 0.5)
	var us []float64
	main.OnStep = func(step int) error {
		us = append(us, main.Dom.GetNode(2).Uc[0])
		assert.Greater(tst, main.Analysis.Nit, 10)
		return nil
	}
	require.NoError(tst, main.Run())
	chk.Array(tst, "u", 1e-10, us, newmark(1, 100, 0.25, 0.5, 0.05, 20))

	// iterations exhausted
	sim := parse(tst, text)
	sim.Solver.NmaxIt = 2
	main, err = NewMainSim(sim, chk.Verbose)
	require.NoError(tst, err)
	err = main.Run()
	var cerr *ConvergenceError
	require.True(tst, errors.As(err, &cerr))
	chk.Int(tst, "step", cerr.Step, 0)
	chk.Int(tst, "nit", cerr.Nit, 2)
	chk.Float64(tst, "t", 1e-15, cerr.Time, 0.05)
	chk.Float64(tst, "tc", 1e-15, main.Dom.TimeC, 0)
	chk.Float64(tst, "u", 1e-15, main.Dom.GetNode(2).U[0], 0)
	chk.Int(tst, "commitTag", main.Dom.CommitTag, 0)
}

func Test_fem06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem06. integrators")

	o, err := NewCollocationFull(1.2, 0.25, 0.5)
	require.NoError(tst, err)
	assert.Error(tst, o.NewStep(0.1), "domain is not set")

	dom, err := NewDomain(parse(tst, io.Sf(spring, 1.0)), false)
	require.NoError(tst, err)
	require.NoError(tst, o.DomainChanged(dom))
	assert.Error(tst, o.NewStep(0))
	require.NoError(tst, o.NewStep(0.1))
	c1, c2, c3 := o.Coefficients()
	chk.Float64(tst, "c1", 1e-15, c1, 1)
	chk.Float64(tst, "c2", 1e-12, c2, 0.5/(0.25*0.12))
	chk.Float64(tst, "c3", 1e-10, c3, 1/(0.25*0.12*0.12))
	chk.Float64(tst, "t", 1e-15, dom.Time, 0.12)
	require.NoError(tst, o.RevertToLastStep())
	chk.Float64(tst, "t", 1e-15, dom.Time, 0)

	// reduced increments
	hs, err := NewCollocationHSIncrReduct(1, 0.5)
	require.NoError(tst, err)
	require.NoError(tst, hs.DomainChanged(dom))
	require.NoError(tst, hs.NewStep(0.1))
	require.NoError(tst, hs.Update([]float64{0.2}))
	chk.Float64(tst, "U", 1e-15, hs.U[0], 0.1)
	chk.Float64(tst, "U'", 1e-13, hs.Udot[0], 0.1*0.5/(0.1/6))
	chk.Float64(tst, "U''", 1e-10, hs.Udotdot[0], 0.1/(0.01/6))
	chk.Float64(tst, "node", 1e-15, dom.GetNode(2).U[0], 0.1)
	assert.Error(tst, hs.Update([]float64{1, 2}))
	assert.Contains(tst, hs.String(), "reduct: 0.5")

	// invalid parameters
	_, err = NewCollocation(0)
	assert.Error(tst, err)
	_, err = NewCollocationFull(1, 0, 0.5)
	assert.Error(tst, err)
	_, err = NewCollocationHSIncrReduct(1, 0)
	assert.Error(tst, err)
	_, err = NewCollocationHSIncrReduct(1, 1.5)
	assert.Error(tst, err)
	_, err = NewLoadControl(-1)
	assert.Error(tst, err)
	_, err = NewIntegrator(&inp.SolverData{Integrator: "newmark"})
	assert.Error(tst, err)
}

func Test_fem07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem07. flat slider bearing under cyclic shear")

	sim, err := inp.ReadSim("../inp/data/slider.yaml", "", false, false)
	require.NoError(tst, err)
	sim.DirOut = tst.TempDir()
	main, err := NewMainSim(sim, chk.Verbose)
	require.NoError(tst, err)

	qb, err := main.Dom.Element(1).SetResponse([]string{"basicForce"})
	require.NoError(tst, err)
	cs, err := main.Dom.Element(1).SetResponse([]string{"contactState"})
	require.NoError(tst, err)
	var qmax float64
	main.OnStep = func(step int) error {
		qmax = math.Max(qmax, math.Abs(qb.Values()[2]))
		chk.Float64(tst, "N", 1e-6, qb.Values()[0], -100)
		return nil
	}
	require.NoError(tst, main.Run())
	chk.Float64(tst, "contact", 1e-15, cs.Values()[0], 1)
	assert.InDelta(tst, 10, qmax, 1e-3, "friction force is μ⋅N when sliding")

	// restart from saved state
	require.NoError(tst, main.SaveState())
	again, err := NewMainSim(sim, false)
	require.NoError(tst, err)
	require.NoError(tst, again.ReadState())
	chk.Array(tst, "u2", 1e-15, again.Dom.GetNode(2).Uc, main.Dom.GetNode(2).Uc)
	chk.Float64(tst, "t", 1e-12, again.Dom.TimeC, 8)
}

func Test_fem08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem08. free vibration from initial velocity")

	text := io.Sf(spring, 0.0) + `
initial:
  - {kind: vel, dof: 0, fcn: cte, prms: [{n: c, v: 1}]}
solver:
  integrator: collocation
  prms: [{n: theta, v: 1}, {n: beta, v: 0.25}, {n: gamma, v: 0.5}]
  dt: 0.01
  nsteps: 50
`
	main, err := NewMainSim(parse(tst, text), chk.Verbose)
	require.NoError(tst, err)
	chk.Array(tst, "v0", 1e-15, main.Dom.GetNode(2).Vc, []float64{1, 0})
	chk.Array(tst, "v0 (fixed node)", 1e-15, main.Dom.GetNode(1).Vc, []float64{0, 0})

	// u = v0/ω⋅sin(ω⋅t) with ω = 10
	main.OnStep = func(step int) error {
		t := main.Dom.TimeC
		chk.AnaNum(tst, io.Sf("u(%.2f)", t), 1e-3, main.Dom.GetNode(2).Uc[0], 0.1*math.Sin(10*t), chk.Verbose)
		return nil
	}
	require.NoError(tst, main.Run())

	// invalid data
	_, err = NewMainSim(parse(tst, io.Sf(spring, 0.0)+"initial: [{kind: disp, dof: 1, nodes: [2], fcn: cte}]\n"), false)
	assert.Error(tst, err, "fixed DOF")
	_, err = NewMainSim(parse(tst, io.Sf(spring, 0.0)+"initial: [{kind: disp, dof: 0, fcn: unknown}]\n"), false)
	assert.Error(tst, err, "unknown function")
	_, err = inp.ParseSim([]byte(io.Sf(spring, 0.0) + "initial: [{kind: accel, dof: 0, fcn: cte}]\n"))
	assert.Error(tst, err, "invalid kind")
}

func Test_fem09(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem09. capped slider iterations with θ > 1")

	for _, θ := range []float64{1, 1.2} {
		sim, err := inp.ReadSim("../inp/data/slider.yaml", "", false, false)
		require.NoError(tst, err)
		sim.DirOut = tst.TempDir()
		sim.Solver.Nsteps = 5
		sim.Solver.Prms[0] = inp.Prm{N: "theta", V: θ}
		sim.Elements[0].Prms = append(sim.Elements[0].Prms, inp.Prm{N: "maxIter", V: 1})
		main, err := NewMainSim(sim, chk.Verbose)
		require.NoError(tst, err)
		require.NoError(tst, main.Run(), "θ=%g", θ)
		chk.Int(tst, "commitTag", main.Dom.CommitTag, 5)
		chk.Float64(tst, "t", 1e-12, main.Dom.TimeC, 0.05)

		// integrator and domain agree on the committed response
		hs := main.Int.(*CollocationHSIncrReduct)
		n := main.Dom.GetNode(2)
		chk.Float64(tst, "u", 1e-15, hs.U[n.Eqs[0]], n.Uc[0])
	}
}
