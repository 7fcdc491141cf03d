// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/dct328/gosees/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func Test_ele01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ele01. triad and transformation")

	e0, e1, e2, err := Triad([]float64{0, 0, 2}, []float64{1, 0, 0})
	require.NoError(tst, err)
	chk.Array(tst, "e0", 1e-15, []float64{e0.X, e0.Y, e0.Z}, []float64{0, 0, 1})
	chk.Array(tst, "e1", 1e-15, []float64{e1.X, e1.Y, e1.Z}, []float64{1, 0, 0})
	chk.Array(tst, "e2", 1e-15, []float64{e2.X, e2.Y, e2.Z}, []float64{0, 1, 0})

	// yp not orthogonal to x
	_, e1, _, err = Triad([]float64{1, 0, 0}, []float64{1, 1, 0})
	require.NoError(tst, err)
	chk.Array(tst, "e1", 1e-15, []float64{e1.X, e1.Y, e1.Z}, []float64{0, 1, 0})

	_, _, _, err = Triad([]float64{1, 0, 0}, []float64{2, 0, 0})
	assert.Error(tst, err)
	_, _, _, err = Triad([]float64{1, 0}, []float64{0, 1, 0})
	assert.Error(tst, err)

	// rotation of 90 degrees
	T := mat.NewDense(2, 2, []float64{0, 1, -1, 0})
	A := mat.NewDense(2, 2, []float64{1, 2, 2, 5})
	chk.Array(tst, "TtAT", 1e-15, TtAT(T, A).RawMatrix().Data, []float64{5, -2, -2, 1})
}

func Test_ele02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ele02. nodes")

	n1 := NewFreeNode(1, 3, 0, 0)
	n2 := NewFreeNode(2, 2, 1, 0)
	n1.U[0], n1.U[2], n2.U[1] = 1, 3, 4
	n1.Commit()
	n1.U[0] = 7
	chk.Array(tst, "committed", 1e-15, n1.Disp(), []float64{1, 0, 3})
	chk.Array(tst, "gather", 1e-15, Gather([]Node{n1, n2}, Node.TrialDisp).RawVector().Data, []float64{7, 0, 3, 0, 4})
	chk.Array(tst, "RV", 1e-15, n1.RV([]float64{2, 3, 4}), []float64{2, 3, 0})
	chk.Array(tst, "RV 6 DOFs", 1e-15, TranslationalRV(6, 3, []float64{1}), []float64{1, 0, 0, 0, 0, 0})

	d := NodeMap{1: n1, 2: n2}
	assert.Nil(tst, d.Node(3))
	nodes, err := FindNodes(d, 10, []int{2, 1}, 0)
	require.NoError(tst, err)
	chk.Int(tst, "tag", nodes[0].Tag(), 2)
	_, err = FindNodes(d, 10, []int{1, 2}, 3)
	assert.Error(tst, err, "wrong ndf")
	_, err = FindNodes(d, 10, []int{1, 3}, 0)
	assert.Error(tst, err, "missing node")
}

func Test_ele03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ele03. Rayleigh factors and factory")

	r := NewRayleigh(inp.Prms{{N: "alphaM", V: 0.1}, {N: "betaK0", V: 0.02}, {N: "E", V: 100}})
	assert.Equal(tst, Rayleigh{AlphaM: 0.1, BetaK0: 0.02}, r)
	assert.True(tst, r.Active())
	r = NewRayleigh(nil)
	assert.False(tst, r.Active())

	_, err := GetInfo(&inp.ElemData{Tag: 1, Type: "unknown"}, 2)
	assert.Error(tst, err)
	_, err = New(&inp.ElemData{Tag: 1, Type: "unknown"}, nil)
	assert.Error(tst, err)
	assert.Panics(tst, func() { GetAllocator("unknown") })
}
