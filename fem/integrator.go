// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/dct328/gosees/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Integrator advances the response of a Domain over one step
//
//  The protocol for each step is:
//      NewStep(Δt)                        -- predicts trial response and applies loads
//      loop: FormTangent, FormUnbalance,  -- Newton iterations performed by Analysis
//            Update(δU)
//      Commit() or RevertToLastStep()
//
type Integrator interface {
	DomainChanged(d *Domain) error // allocates vectors for a new (or modified) domain
	NewStep(Δt float64) error      // starts a new step
	Update(δU []float64) error     // corrects the trial response with an increment of displacements
	FormTangent(K *mat.Dense)      // computes the effective tangent matrix
	FormUnbalance(R []float64)     // computes the effective unbalanced forces
	Commit() error                 // accepts the trial response
	RevertToLastStep() error       // discards the trial response
	String() string
}

// IntegratorAllocator defines functions that allocate integrators
type IntegratorAllocator func(prms inp.Prms, Δt float64) (Integrator, error)

// integrators holds all integrator allocators
var integrators = make(map[string]IntegratorAllocator)

// NewIntegrator allocates an integrator by name
func NewIntegrator(sd *inp.SolverData) (Integrator, error) {
	alloc, ok := integrators[sd.Integrator]
	if !ok {
		return nil, chk.Err("cannot find integrator named %q", sd.Integrator)
	}
	return alloc(sd.Prms, sd.Dt)
}

// StatusError reports negative status codes returned by elements
type StatusError struct {
	What   string // operation; e.g. "update of domain"
	Status int    // sum of status codes
}

func (o *StatusError) Error() string {
	return io.Sf("%s failed with status %d", o.What, o.Status)
}

// status2err converts summed status codes of the domain into errors
func status2err(status int, what string) error {
	if status < 0 {
		return &StatusError{what, status}
	}
	return nil
}
