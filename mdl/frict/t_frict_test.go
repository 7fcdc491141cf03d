// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frict

import (
	"bytes"
	"math"
	"testing"

	"github.com/dct328/gosees/persist"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_coulomb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coulomb01")

	m := NewCoulomb(1, 0.1)
	m.SetTrial(1000, 0.5)
	chk.Float64(tst, "Ff", 1e-12, m.FrictionForce(), 100)
	chk.Float64(tst, "μ", 1e-15, m.FrictionCoeff(), 0.1)

	// tension: no friction
	m.SetTrial(-10, 0.5)
	chk.Float64(tst, "Ff(N<0)", 1e-15, m.FrictionForce(), 0)

	// commit protocol
	m.SetTrial(500, 1)
	m.Commit()
	m.SetTrial(800, 2)
	m.RevertToLastCommit()
	chk.Float64(tst, "N", 1e-15, m.NormalForce(), 500)
	chk.Float64(tst, "v", 1e-15, m.Velocity(), 1)
	m.RevertToStart()
	chk.Float64(tst, "N after reset", 1e-15, m.NormalForce(), 0)
}

func Test_veldep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("veldep01")

	m, err := New("vel-dependent")
	require.NoError(tst, err)
	err = m.Init(2, []*dbf.P{
		&dbf.P{N: "muSlow", V: 0.05},
		&dbf.P{N: "muFast", V: 0.15},
		&dbf.P{N: "transRate", V: 10},
	})
	require.NoError(tst, err)

	m.SetTrial(100, 0)
	chk.Float64(tst, "μ(0)", 1e-15, m.FrictionCoeff(), 0.05)
	m.SetTrial(100, -0.1)
	chk.Float64(tst, "μ(-0.1)", 1e-15, m.FrictionCoeff(), 0.15-0.1*math.Exp(-1))
	m.SetTrial(100, 1e3)
	chk.Float64(tst, "μ(∞)", 1e-15, m.FrictionCoeff(), 0.15)
	chk.Float64(tst, "Ff(∞)", 1e-12, m.FrictionForce(), 15)

	// responses
	r, err := m.SetResponse([]string{"frictionForce"})
	require.NoError(tst, err)
	chk.Array(tst, "Ff response", 1e-12, r.Values(), []float64{15})
	_, err = m.SetResponse([]string{"temperature"})
	assert.Error(tst, err)

	// persistence through the broker class tag
	var buf bytes.Buffer
	require.NoError(tst, m.SendSelf(0, persist.NewWriter(&buf, "json")))
	blank, err := NewByClassTag(m.ClassTag())
	require.NoError(tst, err)
	require.NoError(tst, blank.RecvSelf(0, persist.NewReader(&buf, "json")))
	blank.SetTrial(100, 1e3)
	chk.Float64(tst, "received Ff(∞)", 1e-12, blank.FrictionForce(), 15)
	chk.Int(tst, "received tag", blank.Tag(), 2)

	// bad parameters
	_, err = New("stribeck")
	assert.Error(tst, err)
	assert.Error(tst, m.Init(2, []*dbf.P{&dbf.P{N: "muSlow", V: -1}}))
}
