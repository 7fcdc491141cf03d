// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package beam

import (
	"bytes"
	"testing"

	"github.com/dct328/gosees/broker"
	"github.com/dct328/gosees/ele"
	"github.com/dct328/gosees/persist"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beam(tst *testing.T, x2, y2 float64, cmass float64) (*ElasticBeam2d, *ele.FreeNode) {
	o, err := New(1, 1, 2, dbf.Params{
		&dbf.P{N: "E", V: 100},
		&dbf.P{N: "A", V: 1},
		&dbf.P{N: "I", V: 2},
		&dbf.P{N: "rho", V: 3},
		&dbf.P{N: "cMass", V: cmass},
	})
	require.NoError(tst, err)
	n1 := ele.NewFreeNode(1, 3, 0, 0)
	n2 := ele.NewFreeNode(2, 3, x2, y2)
	require.NoError(tst, o.SetDomain(ele.NodeMap{1: n1, 2: n2}))
	return o, n2
}

func Test_beam01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam01. horizontal beam")

	o, n2 := beam(tst, 2, 0, 0)
	chk.Float64(tst, "L", 1e-15, o.L, 2)
	K := o.TangentStiff()
	chk.Float64(tst, "K00", 1e-12, K.At(0, 0), 50)
	chk.Float64(tst, "K11", 1e-12, K.At(1, 1), 300)
	chk.Float64(tst, "K12", 1e-12, K.At(1, 2), 300)
	chk.Float64(tst, "K22", 1e-12, K.At(2, 2), 400)
	chk.Float64(tst, "K25", 1e-12, K.At(2, 5), 200)
	chk.Float64(tst, "K14", 1e-12, K.At(1, 4), -300)

	n2.U[0], n2.U[2] = 0.01, 0.003
	chk.Int(tst, "status", o.Update(), 0)
	chk.Array(tst, "v", 1e-15, o.V, []float64{0.01, 0, 0.003})
	chk.Array(tst, "q", 1e-14, o.Q, []float64{0.5, 0.6, 1.2})
	chk.Array(tst, "F", 1e-14, o.ResistingForce().RawVector().Data, []float64{-0.5, 0.9, 0.6, 0.5, -0.9, 1.2})

	M := o.Moments(5)
	chk.Float64(tst, "M(0)", 1e-14, M[0], -0.6)
	chk.Float64(tst, "M(L)", 1e-14, M[4], 1.2)
	r, err := o.SetResponse([]string{"moments", "3"})
	require.NoError(tst, err)
	assert.Len(tst, r.Values(), 3)

	// lumped mass
	chk.Float64(tst, "M00", 1e-15, o.Mass().At(0, 0), 3)
	chk.Float64(tst, "M22", 1e-15, o.Mass().At(2, 2), 0)
}

func Test_beam02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam02. vertical beam with consistent mass")

	o, _ := beam(tst, 0, 2, 1)
	K := o.TangentStiff()
	chk.Float64(tst, "K00", 1e-12, K.At(0, 0), 300)
	chk.Float64(tst, "K11", 1e-12, K.At(1, 1), 50)
	M := o.Mass()
	total := M.At(0, 0) + M.At(0, 3) + M.At(3, 0) + M.At(3, 3)
	chk.Float64(tst, "total mass", 1e-13, total, 6)

	// persistence
	var buf bytes.Buffer
	require.NoError(tst, o.SendSelf(1, persist.NewWriter(&buf, "gob")))
	r := new(ElasticBeam2d)
	require.NoError(tst, r.RecvSelf(1, persist.NewReader(&buf, "gob"), broker.Default))
	assert.Equal(tst, o.String(), r.String())

	// errors
	_, err := New(1, 1, 2, dbf.Params{&dbf.P{N: "E", V: 1}})
	assert.Error(tst, err)
	_, err = New(1, 1, 2, dbf.Params{&dbf.P{N: "wrong", V: 1}})
	assert.Error(tst, err)
}

func Test_beam03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam03. alpha and d are record data only")

	ref, n := beam(tst, 2, 0, 0)
	o, err := New(1, 1, 2, dbf.Params{
		&dbf.P{N: "E", V: 100},
		&dbf.P{N: "A", V: 1},
		&dbf.P{N: "I", V: 2},
		&dbf.P{N: "rho", V: 3},
		&dbf.P{N: "alpha", V: 1.2e-5},
		&dbf.P{N: "d", V: 0.4},
	})
	require.NoError(tst, err)
	nodes := ele.NodeMap{1: ele.NewFreeNode(1, 3, 0, 0), 2: n}
	require.NoError(tst, o.SetDomain(nodes))
	n.U[0], n.U[1], n.U[2] = 0.01, -0.02, 0.003
	chk.Int(tst, "status", ref.Update(), 0)
	chk.Int(tst, "status", o.Update(), 0)
	chk.Array(tst, "K", 1e-15, o.TangentStiff().RawMatrix().Data, ref.TangentStiff().RawMatrix().Data)
	chk.Array(tst, "F", 1e-15, o.ResistingForce().RawVector().Data, ref.ResistingForce().RawVector().Data)

	var buf bytes.Buffer
	require.NoError(tst, o.SendSelf(1, persist.NewWriter(&buf, "json")))
	r := new(ElasticBeam2d)
	require.NoError(tst, r.RecvSelf(1, persist.NewReader(&buf, "json"), broker.Default))
	chk.Float64(tst, "alpha", 1e-20, r.Alpha, 1.2e-5)
	chk.Float64(tst, "d", 1e-15, r.D, 0.4)
}
