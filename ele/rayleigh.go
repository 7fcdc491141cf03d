// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/dct328/gosees/inp"

	"gonum.org/v1/gonum/mat"
)

// Rayleigh holds Rayleigh damping factors
//
//  C = αM⋅M + βK⋅K + βK0⋅K0 + βKc⋅Kc
//
//  where K is the current tangent, K0 the initial tangent and Kc the last committed tangent
//
type Rayleigh struct {
	AlphaM float64    // mass proportional factor
	BetaK  float64    // current tangent factor
	BetaK0 float64    // initial tangent factor
	BetaKc float64    // committed tangent factor
	Kc     *mat.Dense // committed tangent
}

// NewRayleigh reads the factors alphaM, betaK, betaK0 and betaKc from element parameters
func NewRayleigh(prms inp.Prms) Rayleigh {
	return Rayleigh{
		AlphaM: prms.Get("alphaM", 0),
		BetaK:  prms.Get("betaK", 0),
		BetaK0: prms.Get("betaK0", 0),
		BetaKc: prms.Get("betaKc", 0),
	}
}

// Active tells whether any factor is non-zero
func (o *Rayleigh) Active() bool {
	return o.AlphaM != 0 || o.BetaK != 0 || o.BetaK0 != 0 || o.BetaKc != 0
}

// Damp returns the damping matrix of element e
func (o *Rayleigh) Damp(e Element) *mat.Dense {
	n := e.NumDOF()
	C := mat.NewDense(n, n, nil)
	if o.AlphaM != 0 {
		C.Scale(o.AlphaM, e.Mass())
	}
	addScaled(C, o.BetaK, func() *mat.Dense { return e.TangentStiff() })
	addScaled(C, o.BetaK0, func() *mat.Dense { return e.InitialStiff() })
	addScaled(C, o.BetaKc, func() *mat.Dense { return o.Kc })
	return C
}

// CommitStiff saves the committed tangent when needed
func (o *Rayleigh) CommitStiff(e Element) {
	if o.BetaKc == 0 {
		return
	}
	if o.Kc == nil {
		n := e.NumDOF()
		o.Kc = mat.NewDense(n, n, nil)
	}
	o.Kc.Copy(e.TangentStiff())
}

// Forces returns C⋅v where v holds the trial velocities of the nodes of e
func (o *Rayleigh) Forces(e Element, nodes []Node) *mat.VecDense {
	f := mat.NewVecDense(e.NumDOF(), nil)
	f.MulVec(o.Damp(e), Gather(nodes, Node.TrialVel))
	return f
}

// addScaled performs C += α⋅A(); A is only computed when α != 0
func addScaled(C *mat.Dense, α float64, A func() *mat.Dense) {
	if α == 0 {
		return
	}
	a := A()
	if a == nil {
		return
	}
	var tmp mat.Dense
	tmp.Scale(α, a)
	C.Add(C, &tmp)
}
