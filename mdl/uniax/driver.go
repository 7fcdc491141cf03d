// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Point holds one committed point of a strain path
type Point struct {
	Strain  float64
	Stress  float64
	Tangent float64
}

// Driver runs strain paths through a model, committing after every increment
type Driver struct {
	Model Model   // model being driven
	Res   []Point // results; one point per strain value
	Nsub  int     // number of trial evaluations per increment (≥1); the last one is committed
	VerD  bool    // verbose
}

// NewDriver returns a new driver
func NewDriver(model Model) *Driver {
	return &Driver{Model: model, Nsub: 1}
}

// Run drives the model through the given strains
func (o *Driver) Run(strains []float64) (err error) {
	o.Res = make([]Point, 0, len(strains))
	prev := o.Model.Strain()
	nsub := o.Nsub
	if nsub < 1 {
		nsub = 1
	}
	for i, eps := range strains {
		for j := 1; j <= nsub; j++ {
			trial := prev + (eps-prev)*float64(j)/float64(nsub)
			if status := o.Model.SetTrialStrain(trial, 0); status < 0 {
				return chk.Err("SetTrialStrain failed at point %d (ε=%g): status=%d", i, trial, status)
			}
		}
		o.Res = append(o.Res, Point{eps, o.Model.Stress(), o.Model.Tangent()})
		if status := o.Model.Commit(); status < 0 {
			return chk.Err("Commit failed at point %d: status=%d", i, status)
		}
		if o.VerD {
			io.Pf("%4d ε=%13.6e σ=%13.6e D=%13.6e\n", i, eps, o.Model.Stress(), o.Model.Tangent())
		}
		prev = eps
	}
	return
}

// Cycle returns a strain path going 0 → amp → -amp → 0, repeated ncycles times with n points per quarter
func Cycle(amp float64, n, ncycles int) (strains []float64) {
	for c := 0; c < ncycles; c++ {
		for i := 1; i <= n; i++ {
			strains = append(strains, amp*float64(i)/float64(n))
		}
		for i := 1; i <= 2*n; i++ {
			strains = append(strains, amp-2*amp*float64(i)/float64(2*n))
		}
		for i := 1; i <= n; i++ {
			strains = append(strains, -amp+amp*float64(i)/float64(n))
		}
	}
	return
}
