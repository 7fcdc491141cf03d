// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/dct328/gosees/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Collocation implements the collocation method of dynamics. Equilibrium is enforced at
// t + θ⋅Δt using Newmark's approximations; the response at t + Δt is then recovered by
// linear interpolation of accelerations. β=1/6 and γ=1/2 give Wilson's θ method.
//
//  Corrections from δU:
//      U   += δU
//      U'  += c2⋅δU       with c2 = γ / (β⋅θ⋅Δt)
//      U'' += c3⋅δU       with c3 = 1 / (β⋅(θ⋅Δt)²)
//
//  Effective tangent: c1⋅K + c2⋅C + c3⋅M with c1 = 1
//
type Collocation struct {

	// parameters
	Theta  float64 // θ
	Beta   float64 // β
	Gamma  float64 // γ
	Reduct float64 // factor scaling each δU; 1 means no reduction

	// coefficients
	Δt float64 // time step
	c1 float64 // coefficient of K
	c2 float64 // coefficient of C
	c3 float64 // coefficient of M

	// response at t
	Ut       []float64 // displacements
	Utdot    []float64 // velocities
	Utdotdot []float64 // accelerations

	// trial response
	U       []float64 // displacements
	Udot    []float64 // velocities
	Udotdot []float64 // accelerations

	// auxiliary
	dom     *Domain   // domain
	scaledU []float64 // Reduct⋅δU
	name    string    // name of method
}

// CollocationHSIncrReduct implements the collocation method for hybrid simulations. Each
// displacement increment is multiplied by 0 < Reduct ≤ 1 before being applied, thereby
// suppressing load/unload oscillations caused by the feedback of experimental subassemblies
type CollocationHSIncrReduct struct {
	Collocation
}

func init() {
	integrators["collocation"] = func(prms inp.Prms, Δt float64) (Integrator, error) {
		θ := prms.Get("theta", 1)
		if prms.Has("beta") || prms.Has("gamma") {
			return NewCollocationFull(θ, prms.Get("beta", 1.0/6.0), prms.Get("gamma", 0.5))
		}
		return NewCollocation(θ)
	}
	integrators["collocation-hs-incr-reduct"] = func(prms inp.Prms, Δt float64) (Integrator, error) {
		θ := prms.Get("theta", 1)
		r := prms.Get("reduct", 1)
		if prms.Has("beta") || prms.Has("gamma") {
			return NewCollocationHSIncrReductFull(θ, prms.Get("beta", 1.0/6.0), prms.Get("gamma", 0.5), r)
		}
		return NewCollocationHSIncrReduct(θ, r)
	}
}

// NewCollocation returns Wilson's θ method; i.e. β = 1/6 and γ = 1/2
func NewCollocation(θ float64) (*Collocation, error) {
	return NewCollocationFull(θ, 1.0/6.0, 0.5)
}

// NewCollocationFull returns a new integrator
func NewCollocationFull(θ, β, γ float64) (o *Collocation, err error) {
	o = &Collocation{Theta: θ, Beta: β, Gamma: γ, Reduct: 1, name: "Collocation"}
	if err = o.check(); err != nil {
		return nil, err
	}
	return
}

// NewCollocationHSIncrReduct returns a hybrid-simulation integrator with β = 1/6 and γ = 1/2
func NewCollocationHSIncrReduct(θ, reduct float64) (*CollocationHSIncrReduct, error) {
	return NewCollocationHSIncrReductFull(θ, 1.0/6.0, 0.5, reduct)
}

// NewCollocationHSIncrReductFull returns a new hybrid-simulation integrator
func NewCollocationHSIncrReductFull(θ, β, γ, reduct float64) (o *CollocationHSIncrReduct, err error) {
	o = &CollocationHSIncrReduct{Collocation{Theta: θ, Beta: β, Gamma: γ, Reduct: reduct, name: "CollocationHSIncrReduct"}}
	if err = o.check(); err != nil {
		return nil, err
	}
	return
}

// check checks parameters
func (o *Collocation) check() error {
	if o.Theta <= 0 {
		return chk.Err("%s: θ must be positive. %g is invalid", o.nm(), o.Theta)
	}
	if o.Beta <= 0 {
		return chk.Err("%s: β must be positive. %g is invalid", o.nm(), o.Beta)
	}
	if o.Gamma < 0 {
		return chk.Err("%s: γ must not be negative. %g is invalid", o.nm(), o.Gamma)
	}
	if o.Reduct <= 0 || o.Reduct > 1 {
		return chk.Err("%s: reduction factor must be in (0, 1]. %g is invalid", o.nm(), o.Reduct)
	}
	return nil
}

func (o *Collocation) nm() string {
	if o.name == "" {
		return "Collocation"
	}
	return o.name
}

// Coefficients returns c1, c2 and c3 of the last step
func (o *Collocation) Coefficients() (c1, c2, c3 float64) { return o.c1, o.c2, o.c3 }

// DomainChanged allocates vectors and sets the response at t from the committed nodal response
func (o *Collocation) DomainChanged(d *Domain) error {
	o.dom = d
	n := d.Neq
	o.Ut, o.Utdot, o.Utdotdot = make([]float64, n), make([]float64, n), make([]float64, n)
	o.U, o.Udot, o.Udotdot = make([]float64, n), make([]float64, n), make([]float64, n)
	o.scaledU = make([]float64, n)
	for _, nod := range d.Nodes {
		for i, eq := range nod.Eqs {
			if eq >= 0 {
				o.U[eq], o.Udot[eq], o.Udotdot[eq] = nod.Uc[i], nod.Vc[i], nod.Ac[i]
			}
		}
	}
	return nil
}

// NewStep caches the response at t and predicts the response at t + θ⋅Δt
func (o *Collocation) NewStep(Δt float64) error {
	if Δt <= 0 {
		return chk.Err("%s: time step must be positive. Δt=%g is invalid", o.nm(), Δt)
	}
	if o.dom == nil {
		return chk.Err("%s: DomainChanged must be called first", o.nm())
	}

	// coefficients
	θΔt := o.Theta * Δt
	o.Δt = Δt
	o.c1 = 1.0
	o.c2 = o.Gamma / (o.Beta * θΔt)
	o.c3 = 1.0 / (o.Beta * θΔt * θΔt)

	// response at t
	copy(o.Ut, o.U)
	copy(o.Utdot, o.Udot)
	copy(o.Utdotdot, o.Udotdot)

	// predictor: δU = 0
	a1 := 1.0 - o.Gamma/o.Beta
	a2 := θΔt * (1.0 - 0.5*o.Gamma/o.Beta)
	a3 := -1.0 / (o.Beta * θΔt)
	a4 := 1.0 - 0.5/o.Beta
	for i := range o.U {
		o.Udot[i] = a1*o.Utdot[i] + a2*o.Utdotdot[i]
		o.Udotdot[i] = a3*o.Utdot[i] + a4*o.Utdotdot[i]
	}

	// loads at t + θ⋅Δt
	o.dom.ApplyLoad(o.dom.TimeC + θΔt)
	o.dom.SetTrial(o.U, o.Udot, o.Udotdot)
	return status2err(o.dom.Update(), o.nm()+": update of domain")
}

// Update applies Reduct⋅δU to the trial response
func (o *Collocation) Update(δU []float64) error {
	if len(δU) != len(o.U) {
		return chk.Err("%s: size of increment must be %d. %d is invalid", o.nm(), len(o.U), len(δU))
	}
	floats.ScaleTo(o.scaledU, o.Reduct, δU)
	floats.Add(o.U, o.scaledU)
	floats.AddScaled(o.Udot, o.c2, o.scaledU)
	floats.AddScaled(o.Udotdot, o.c3, o.scaledU)
	o.dom.SetTrial(o.U, o.Udot, o.Udotdot)
	return status2err(o.dom.Update(), o.nm()+": update of domain")
}

// FormTangent computes K = c1⋅Kt + c2⋅C + c3⋅M
func (o *Collocation) FormTangent(K *mat.Dense) { o.dom.AssembleTangent(K, o.c1, o.c2, o.c3) }

// FormUnbalance computes R = P(t + θ⋅Δt) - Fint - C⋅U' - M⋅U''
func (o *Collocation) FormUnbalance(R []float64) { o.dom.Unbalance(R, true) }

// Commit computes the response at t + Δt and commits the domain. Elements whose local
// solves do not converge at t + Δt are committed with their best estimate
func (o *Collocation) Commit() error {
	if o.dom == nil {
		return chk.Err("%s: DomainChanged must be called first", o.nm())
	}
	θ, β, γ, Δt := o.Theta, o.Beta, o.Gamma, o.Δt
	for i := range o.U {
		o.Udotdot[i] = o.Utdotdot[i] + (o.Udotdot[i]-o.Utdotdot[i])/θ
		o.Udot[i] = o.Utdot[i] + Δt*((1.0-γ)*o.Utdotdot[i]+γ*o.Udotdot[i])
		o.U[i] = o.Ut[i] + Δt*o.Utdot[i] + Δt*Δt*((0.5-β)*o.Utdotdot[i]+β*o.Udotdot[i])
	}
	o.dom.Time = o.dom.TimeC + Δt
	o.dom.SetTrial(o.U, o.Udot, o.Udotdot)
	if θ != 1 {
		if status := o.dom.Update(); status < 0 {
			logrus.WithFields(logrus.Fields{"t": o.dom.Time, "status": status}).Debug(o.nm() + ": update of domain at t + Δt returned a negative status")
		}
	}
	return status2err(o.dom.Commit(), o.nm()+": commit of domain")
}

// RevertToLastStep restores the response at t
func (o *Collocation) RevertToLastStep() error {
	if o.dom == nil {
		return nil
	}
	copy(o.U, o.Ut)
	copy(o.Udot, o.Utdot)
	copy(o.Udotdot, o.Utdotdot)
	return status2err(o.dom.RevertToLastCommit(), o.nm()+": revert of domain")
}

func (o *Collocation) String() string {
	l := io.Sf("%s:\n", o.nm())
	l += io.Sf("  theta: %g  beta: %g  gamma: %g\n", o.Theta, o.Beta, o.Gamma)
	if o.Reduct != 1 || o.name == "CollocationHSIncrReduct" {
		l += io.Sf("  reduct: %g\n", o.Reduct)
	}
	l += io.Sf("  c1: %g  c2: %g  c3: %g", o.c1, o.c2, o.c3)
	return l
}
