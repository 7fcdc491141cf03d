// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/dct328/gosees/ele"
	"github.com/dct328/gosees/inp"

	"github.com/cpmech/gosl/io"
)

// Node holds the trial and committed response of a node, in addition to its equation numbers
type Node struct {

	// input
	Id   int       // tag
	X    []float64 // coordinates
	Ndim int       // space dimension
	M    []float64 // lumped mass; one value per DOF. may be nil
	Eqs  []int     // equation numbers; -1 means fixed DOF

	// trial response
	U []float64 // displacements
	V []float64 // velocities
	A []float64 // accelerations

	// committed response
	Uc []float64 // displacements
	Vc []float64 // velocities
	Ac []float64 // accelerations

	// loads
	Load []float64 // applied loads at current time
}

// NewNode allocates a new node. Equation numbers are set by the Domain
func NewNode(nd *inp.NodeData, ndim int) (o *Node) {
	n := nd.Ndf
	o = &Node{Id: nd.Tag, X: nd.Crds, Ndim: ndim, Eqs: make([]int, n)}
	if len(nd.Mass) > 0 {
		o.M = nd.Mass
	}
	o.U, o.V, o.A = make([]float64, n), make([]float64, n), make([]float64, n)
	o.Uc, o.Vc, o.Ac = make([]float64, n), make([]float64, n), make([]float64, n)
	o.Load = make([]float64, n)
	return
}

// ele.Node interface
func (o *Node) Tag() int                     { return o.Id }
func (o *Node) Ndf() int                     { return len(o.Eqs) }
func (o *Node) Crds() []float64              { return o.X }
func (o *Node) Disp() []float64              { return o.Uc }
func (o *Node) TrialDisp() []float64         { return o.U }
func (o *Node) TrialVel() []float64          { return o.V }
func (o *Node) TrialAccel() []float64        { return o.A }
func (o *Node) RV(accel []float64) []float64 { return ele.TranslationalRV(len(o.Eqs), o.Ndim, accel) }

// SetTrial sets the trial response from global vectors. Fixed DOFs are left untouched.
// Nil vectors are skipped.
func (o *Node) SetTrial(U, V, A []float64) {
	for i, eq := range o.Eqs {
		if eq < 0 {
			continue
		}
		if U != nil {
			o.U[i] = U[eq]
		}
		if V != nil {
			o.V[i] = V[eq]
		}
		if A != nil {
			o.A[i] = A[eq]
		}
	}
}

// Commit saves the trial response
func (o *Node) Commit() {
	copy(o.Uc, o.U)
	copy(o.Vc, o.V)
	copy(o.Ac, o.A)
}

// RevertToLastCommit restores the committed response
func (o *Node) RevertToLastCommit() {
	copy(o.U, o.Uc)
	copy(o.V, o.Vc)
	copy(o.A, o.Ac)
}

// RevertToStart clears the response
func (o *Node) RevertToStart() {
	for i := range o.U {
		o.U[i], o.V[i], o.A[i] = 0, 0, 0
		o.Uc[i], o.Vc[i], o.Ac[i] = 0, 0, 0
	}
}

// ZeroLoad clears the applied loads
func (o *Node) ZeroLoad() {
	for i := range o.Load {
		o.Load[i] = 0
	}
}

// AddLoad adds fact⋅vals to the applied loads
func (o *Node) AddLoad(vals []float64, fact float64) {
	for i := 0; i < len(vals) && i < len(o.Load); i++ {
		o.Load[i] += fact * vals[i]
	}
}

// AddInertiaLoad adds -M⋅R⋅accel to the applied loads
func (o *Node) AddInertiaLoad(accel []float64) {
	if o.M == nil {
		return
	}
	r := o.RV(accel)
	for i, m := range o.M {
		o.Load[i] -= m * r[i]
	}
}

// String returns a summary
func (o *Node) String() string {
	return io.Sf("Node %d: crds=%v eqs=%v U=%v", o.Id, o.X, o.Eqs, o.U)
}
