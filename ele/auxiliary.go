// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Gather concatenates a nodal quantity of all nodes; e.g. Gather(nodes, Node.TrialDisp)
func Gather(nodes []Node, get func(Node) []float64) *mat.VecDense {
	var res []float64
	for _, n := range nodes {
		res = append(res, get(n)...)
	}
	return mat.NewVecDense(len(res), res)
}

// TtAT returns Tᵀ⋅A⋅T
func TtAT(T, A mat.Matrix) *mat.Dense {
	var AT, res mat.Dense
	AT.Mul(A, T)
	res.Mul(T.T(), &AT)
	return &res
}

// Triad computes the unit vectors of a local system given the local x-axis and a
// vector yp in the local x-y plane:
//
//  z = x × yp  and  y = z × x
//
func Triad(x, yp []float64) (e0, e1, e2 r3.Vec, err error) {
	if len(x) != 3 || len(yp) != 3 {
		err = chk.Err("orientation vectors must have 3 components. len(x)=%d len(yp)=%d", len(x), len(yp))
		return
	}
	xv := r3.Vec{X: x[0], Y: x[1], Z: x[2]}
	yv := r3.Vec{X: yp[0], Y: yp[1], Z: yp[2]}
	zv := r3.Cross(xv, yv)
	yv = r3.Cross(zv, xv)
	xn, yn, zn := r3.Norm(xv), r3.Norm(yv), r3.Norm(zv)
	if xn == 0 || yn == 0 || zn == 0 {
		err = chk.Err("invalid orientation vectors: x=%v and yp=%v are null or parallel", x, yp)
		return
	}
	e0, e1, e2 = r3.Scale(1/xn, xv), r3.Scale(1/yn, yv), r3.Scale(1/zn, zv)
	return
}

// errNode returns the error for missing nodes
func errNode(etag, ntag int) error {
	return chk.Err("element %d: cannot find node %d", etag, ntag)
}

// errNdf returns the error for nodes with the wrong number of DOFs
func errNdf(etag, ntag, ndf, required int) error {
	return chk.Err("element %d: node %d has %d DOFs but %d are required", etag, ntag, ndf, required)
}
