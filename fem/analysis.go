// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ConvergenceError is returned when Newton iterations fail to reduce the unbalanced forces
type ConvergenceError struct {
	Step int     // step index
	Time float64 // time at the end of the step
	Norm float64 // norm of the unbalanced forces of the last iteration
	Nit  int     // number of iterations
}

func (o *ConvergenceError) Error() string {
	return io.Sf("Newton iterations did not converge after %d iterations: step=%d t=%g |R|=%g", o.Nit, o.Step, o.Time, o.Norm)
}

// Analysis solves steps with Newton's method and a dense linear solver
type Analysis struct {
	Dom    *Domain    // domain
	Int    Integrator // integrator
	NmaxIt int        // max number of iterations
	Tol    float64    // tolerance on |R|
	ShowR  bool       // show residual
	Nit    int        // number of iterations of the last step

	// workspace
	K  *mat.Dense    // effective tangent
	R  *mat.VecDense // unbalanced forces
	δU *mat.VecDense // increment of displacements
}

// NewAnalysis returns a new analysis
func NewAnalysis(dom *Domain, integ Integrator, nmaxit int, tol float64) (o *Analysis, err error) {
	if nmaxit < 1 {
		return nil, chk.Err("max number of iterations must be at least 1. %d is invalid", nmaxit)
	}
	if tol <= 0 {
		return nil, chk.Err("tolerance must be positive. %g is invalid", tol)
	}
	o = &Analysis{Dom: dom, Int: integ, NmaxIt: nmaxit, Tol: tol}
	if err = integ.DomainChanged(dom); err != nil {
		return nil, err
	}
	if n := dom.Neq; n > 0 {
		o.K = mat.NewDense(n, n, nil)
		o.R = mat.NewVecDense(n, nil)
		o.δU = mat.NewVecDense(n, nil)
	}
	return
}

// Analyze runs nsteps steps of size Δt. onStep is called after each commit and may be nil
func (o *Analysis) Analyze(nsteps int, Δt float64, onStep func(step int) error) (err error) {
	for step := 0; step < nsteps; step++ {
		if err = o.SolveStep(step, Δt); err != nil {
			return fmt.Errorf("analysis stopped at step %d: %w", step, err)
		}
		if onStep != nil {
			if err = onStep(step); err != nil {
				return
			}
		}
	}
	return
}

// SolveStep performs one step. On failure, the domain is reverted to the last committed state
func (o *Analysis) SolveStep(step int, Δt float64) (err error) {

	// new step
	o.Nit = 0
	if err = o.Int.NewStep(Δt); err != nil {
		if !o.tolerate(step, err) {
			o.Int.RevertToLastStep()
			return
		}
	}

	// no equations
	if o.Dom.Neq == 0 {
		return o.commit()
	}

	// iterations
	R := o.R.RawVector().Data
	var norm float64
	for o.Nit = 0; o.Nit <= o.NmaxIt; o.Nit++ {

		// unbalanced forces
		o.Int.FormUnbalance(R)
		norm = floats.Norm(R, 2)
		if o.ShowR {
			io.Pf("%4d%4d%23.10e\n", step, o.Nit, norm)
		}
		if norm < o.Tol {
			return o.commit()
		}
		if o.Nit == o.NmaxIt {
			break
		}

		// solve K⋅δU = R
		o.Int.FormTangent(o.K)
		if err = o.δU.SolveVec(o.K, o.R); err != nil {
			if c, ok := err.(mat.Condition); !ok || math.IsInf(float64(c), 1) {
				o.Int.RevertToLastStep()
				return chk.Err("linear solver failed at step %d:\n%v", step, err)
			}
			logrus.WithFields(logrus.Fields{"step": step, "it": o.Nit}).Debug("tangent matrix is ill-conditioned")
		}

		// update
		if err = o.Int.Update(o.δU.RawVector().Data); err != nil {
			if !o.tolerate(step, err) {
				o.Int.RevertToLastStep()
				return
			}
		}
	}

	// failure
	o.Int.RevertToLastStep()
	return &ConvergenceError{Step: step, Time: o.Dom.TimeC + Δt, Norm: norm, Nit: o.Nit}
}

// commit commits the integrator; on failure, the response at t is restored
func (o *Analysis) commit() (err error) {
	if err = o.Int.Commit(); err != nil {
		o.Int.RevertToLastStep()
	}
	return
}

// tolerate tells whether err comes from elements whose local solves did not converge; in
// this case iterations go on with the best estimate of the elements
func (o *Analysis) tolerate(step int, err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		logrus.WithFields(logrus.Fields{"step": step, "it": o.Nit, "status": se.Status}).Debug(se.What + " returned a negative status")
		return true
	}
	return false
}
