// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"bytes"
	"testing"

	"github.com/dct328/gosees/persist"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_elasticpp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elasticpp01. elastic-plastic boundary")

	E, eyp := 200.0, 0.01
	m := NewElasticPP(1, E, eyp)
	chk.Float64(tst, "fyp", 1e-14, m.Fyp, 2)
	chk.Float64(tst, "fyn", 1e-14, m.Fyn, -2)

	// elastic
	m.SetTrialStrain(eyp/2, 0)
	chk.Float64(tst, "σ(eyp/2)", 1e-14, m.Stress(), E*eyp/2)
	chk.Float64(tst, "D(eyp/2)", 1e-14, m.Tangent(), E)

	// plastic: clamped
	m.SetTrialStrain(eyp+1e-4, 0)
	chk.Float64(tst, "σ(eyp+δ)", 1e-14, m.Stress(), E*eyp)
	chk.Float64(tst, "D(eyp+δ)", 1e-14, m.Tangent(), 0)

	// negative side
	m.SetTrialStrain(-eyp-1e-4, 0)
	chk.Float64(tst, "σ(-eyp-δ)", 1e-14, m.Stress(), -E*eyp)
	chk.Float64(tst, "D(-eyp-δ)", 1e-14, m.Tangent(), 0)
}

func Test_elasticpp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elasticpp02. plastic strain changes on commit only")

	m := NewElasticPP(1, 200, 0.01)

	// trials beyond yield do not change ep
	m.SetTrialStrain(0.012, 0)
	m.SetTrialStrain(0.015, 0)
	chk.Float64(tst, "ep after trials", 1e-14, m.Ep, 0)
	m.RevertToLastCommit()
	chk.Float64(tst, "ε after revert", 1e-14, m.Strain(), 0)
	chk.Float64(tst, "σ after revert", 1e-14, m.Stress(), 0)
	chk.Float64(tst, "D after revert", 1e-14, m.Tangent(), 200)

	// commit beyond yield
	m.SetTrialStrain(0.012, 0)
	m.Commit()
	chk.Float64(tst, "ep after commit", 1e-14, m.Ep, 0.002)

	// unloading is elastic from the shifted origin
	m.SetTrialStrain(0.011, 0)
	chk.Float64(tst, "σ unloading", 1e-13, m.Stress(), 1.8)
	chk.Float64(tst, "D unloading", 1e-14, m.Tangent(), 200)

	// reverse yielding
	m.SetTrialStrain(-0.02, 0)
	chk.Float64(tst, "σ reverse", 1e-13, m.Stress(), -2)
	m.Commit()
	chk.Float64(tst, "ep reverse", 1e-14, m.Ep, -0.01)
}

func Test_elasticpp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elasticpp03. revert idempotence and replay from start")

	m := NewElasticPP(1, 200, 0.01)
	path := []float64{0.004, 0.013, 0.009, -0.015, -0.002, 0.02}

	var stresses, tangents []float64
	for _, eps := range path {
		m.SetTrialStrain(eps, 0)
		m.Commit()
		stresses = append(stresses, m.Stress())
		tangents = append(tangents, m.Tangent())
	}

	// revert twice yields the same trial state as once
	m.SetTrialStrain(0.5, 0)
	m.RevertToLastCommit()
	s1, e1, d1 := m.Stress(), m.Strain(), m.Tangent()
	m.RevertToLastCommit()
	assert.Equal(tst, s1, m.Stress())
	assert.Equal(tst, e1, m.Strain())
	assert.Equal(tst, d1, m.Tangent())

	// replay
	m.RevertToStart()
	chk.Float64(tst, "D after RevertToStart", 1e-14, m.Tangent(), 200)
	chk.Float64(tst, "ep after RevertToStart", 1e-14, m.Ep, 0)
	for i, eps := range path {
		m.SetTrialStrain(eps, 0)
		m.Commit()
		chk.Float64(tst, "σ replay", 1e-14, m.Stress(), stresses[i])
		chk.Float64(tst, "D replay", 1e-14, m.Tangent(), tangents[i])
	}
}

func Test_elasticpp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elasticpp04. constructors, copy and factory")

	// flipped yield strains
	m := NewElasticPPWith(3, 100, -0.02, 0.01, 0.001)
	chk.Float64(tst, "fyp", 1e-14, m.Fyp, 2)
	chk.Float64(tst, "fyn", 1e-14, m.Fyn, -1)
	chk.Float64(tst, "ezero", 1e-14, m.Ezero, 0.001)

	// initial strain offset
	m.SetTrialStrain(0.002, 0)
	chk.Float64(tst, "σ with ezero", 1e-14, m.Stress(), 0.1)

	// copy carries the plastic strain but not the trial state
	m.SetTrialStrain(0.05, 0)
	m.Commit()
	c := m.GetCopy().(*ElasticPP)
	chk.Float64(tst, "copy ep", 1e-14, c.Ep, m.Ep)
	chk.Float64(tst, "copy fyp", 1e-14, c.Fyp, m.Fyp)
	chk.Float64(tst, "copy fyn", 1e-14, c.Fyn, m.Fyn)
	chk.Float64(tst, "copy strain", 1e-14, c.Strain(), 0)
	chk.Int(tst, "copy tag", c.Tag(), 3)

	// copies are independent
	c.SetTrialStrain(-1, 0)
	c.Commit()
	assert.NotEqual(tst, c.Ep, m.Ep)

	// factory
	mdl, err := New("elastic-pp")
	require.NoError(tst, err)
	err = mdl.Init(7, []*dbf.P{
		&dbf.P{N: "E", V: 200},
		&dbf.P{N: "epsyP", V: 0.01},
	})
	require.NoError(tst, err)
	chk.Float64(tst, "factory fyn", 1e-14, mdl.(*ElasticPP).Fyn, -2)
	chk.Int(tst, "factory tag", mdl.Tag(), 7)

	_, err = New("steel99")
	assert.Error(tst, err)
	err = mdl.Init(7, []*dbf.P{&dbf.P{N: "Ee", V: 1}})
	assert.Error(tst, err)

	// class tags
	blank, err := NewByClassTag(ClassElasticPP)
	require.NoError(tst, err)
	_, ok := blank.(*ElasticPP)
	assert.True(tst, ok)
}

func Test_elasticpp05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elasticpp05. persistence and responses")

	for _, enctype := range []string{"gob", "json"} {
		m := NewElasticPPWith(4, 300, 0.01, -0.005, 0)
		m.SetTrialStrain(0.02, 0)
		m.Commit()

		var buf bytes.Buffer
		require.NoError(tst, m.SendSelf(5, persist.NewWriter(&buf, enctype)))

		r := new(ElasticPP)
		require.NoError(tst, r.RecvSelf(5, persist.NewReader(&buf, enctype)))
		chk.Int(tst, "tag", r.Tag(), 4)
		chk.Float64(tst, "E", 1e-14, r.E, 300)
		chk.Float64(tst, "ep", 1e-14, r.Ep, m.Ep)
		chk.Float64(tst, "fyn", 1e-14, r.Fyn, -1.5)
		chk.Float64(tst, "trial strain", 1e-14, r.Strain(), 0.02)
		chk.Float64(tst, "trial stress", 1e-14, r.Stress(), m.Stress())
		chk.Float64(tst, "trial tangent", 1e-14, r.Tangent(), 0)
	}

	m := NewElasticPP(1, 200, 0.01)
	res, err := m.SetResponse([]string{"stressStrain"})
	require.NoError(tst, err)
	m.SetTrialStrain(0.001, 0)
	chk.Array(tst, "stressStrain", 1e-14, res.Values(), []float64{0.2, 0.001})

	_, err = m.SetResponse([]string{"energy"})
	assert.Error(tst, err)
}

func Test_elasticpp06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elasticpp06. driver and hysteresis")

	m := NewElasticPP(1, 200, 0.01)
	drv := NewDriver(m)
	drv.VerD = chk.Verbose
	drv.Nsub = 3
	err := drv.Run(Cycle(0.03, 10, 2))
	require.NoError(tst, err)

	smax, smin := 0.0, 0.0
	for _, p := range drv.Res {
		if p.Stress > smax {
			smax = p.Stress
		}
		if p.Stress < smin {
			smin = p.Stress
		}
	}
	chk.Float64(tst, "σmax", 1e-13, smax, 2)
	chk.Float64(tst, "σmin", 1e-13, smin, -2)

	// the return from the negative peak to zero strain yields again in tension
	last := drv.Res[len(drv.Res)-1]
	chk.Float64(tst, "final strain", 1e-14, last.Strain, 0)
	assert.True(tst, last.Stress > 0)
}
