// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/dct328/gosees/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LoadControl implements a static integrator where the pseudo-time λ is incremented by Δλ
type LoadControl struct {
	Δλ  float64   // increment of pseudo-time; 0 means Δt
	λ   float64   // current pseudo-time
	dom *Domain   // domain
	U   []float64 // trial displacements
	Ut  []float64 // committed displacements
}

func init() {
	integrators["load-control"] = func(prms inp.Prms, Δt float64) (Integrator, error) {
		return NewLoadControl(prms.Get("dlambda", 0))
	}
}

// NewLoadControl returns a new static integrator
func NewLoadControl(Δλ float64) (*LoadControl, error) {
	if Δλ < 0 {
		return nil, chk.Err("load control: increment of pseudo-time must not be negative. %g is invalid", Δλ)
	}
	return &LoadControl{Δλ: Δλ}, nil
}

// DomainChanged allocates vectors
func (o *LoadControl) DomainChanged(d *Domain) error {
	o.dom = d
	o.λ = d.TimeC
	o.U = make([]float64, d.Neq)
	o.Ut = make([]float64, d.Neq)
	for _, n := range d.Nodes {
		for i, eq := range n.Eqs {
			if eq >= 0 {
				o.U[eq] = n.Uc[i]
				o.Ut[eq] = n.Uc[i]
			}
		}
	}
	return nil
}

// NewStep increments the pseudo-time and applies the loads
func (o *LoadControl) NewStep(Δt float64) error {
	if o.dom == nil {
		return chk.Err("load control: DomainChanged must be called first")
	}
	Δλ := o.Δλ
	if Δλ == 0 {
		Δλ = Δt
	}
	o.λ += Δλ
	o.dom.ApplyLoad(o.λ)
	o.dom.SetTrial(o.U, nil, nil)
	return status2err(o.dom.Update(), "load control: update of domain")
}

// Update adds δU to the trial displacements
func (o *LoadControl) Update(δU []float64) error {
	floats.Add(o.U, δU)
	o.dom.SetTrial(o.U, nil, nil)
	return status2err(o.dom.Update(), "load control: update of domain")
}

// FormTangent computes K = Kt
func (o *LoadControl) FormTangent(K *mat.Dense) { o.dom.AssembleTangent(K, 1, 0, 0) }

// FormUnbalance computes R = P(λ) - Fint
func (o *LoadControl) FormUnbalance(R []float64) { o.dom.Unbalance(R, false) }

// Commit commits the domain
func (o *LoadControl) Commit() error {
	copy(o.Ut, o.U)
	return status2err(o.dom.Commit(), "load control: commit of domain")
}

// RevertToLastStep restores the last committed displacements and pseudo-time
func (o *LoadControl) RevertToLastStep() error {
	copy(o.U, o.Ut)
	o.λ = o.dom.TimeC
	return status2err(o.dom.RevertToLastCommit(), "load control: revert of domain")
}

func (o *LoadControl) String() string {
	return io.Sf("LoadControl: Δλ = %g  λ = %g", o.Δλ, o.λ)
}
