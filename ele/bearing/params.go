// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bearing

import (
	"github.com/dct328/gosees/ele"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Params holds the parameters of slider bearings
type Params struct {
	K0          float64      // initial elastic stiffness in the sliding directions
	K2          float64      // [2D] linear elastic stiffness of the shear spring
	K3          float64      // [2D] nonlinear elastic stiffness of the shear spring
	Mu          float64      // [2D] exponent of the nonlinear elastic spring
	ShearDistI  float64      // shear distance from node i as a fraction of the length
	AddRayleigh bool         // add Rayleigh damping
	Mass        float64      // element mass
	MaxIter     int          // max number of iterations of the shear resolution
	Tol         float64      // tolerance of the shear resolution
	KFactUplift float64      // stiffness factor after uplift
	Ray         ele.Rayleigh // Rayleigh damping factors
}

// Defaults3d returns the default parameters of 3D sliders
func Defaults3d() Params {
	return Params{MaxIter: 25, Tol: 1e-12, KFactUplift: 1e-8}
}

// Defaults2d returns the default parameters of 2D sliders
func Defaults2d() Params {
	return Params{Mu: 2, MaxIter: 25, Tol: 1e-12, KFactUplift: 1e-6}
}

// Init reads parameters
func (o *Params) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "k0", "kInit":
			o.K0 = p.V
		case "k2":
			o.K2 = p.V
		case "k3":
			o.K3 = p.V
		case "mu":
			o.Mu = p.V
		case "sDI", "shearDist":
			o.ShearDistI = p.V
		case "doRayleigh":
			o.AddRayleigh = p.V > 0
		case "mass":
			o.Mass = p.V
		case "maxIter":
			o.MaxIter = int(p.V)
		case "tol":
			o.Tol = p.V
		case "kFactUplift":
			o.KFactUplift = p.V
		case "alphaM":
			o.Ray.AlphaM = p.V
		case "betaK":
			o.Ray.BetaK = p.V
		case "betaK0":
			o.Ray.BetaK0 = p.V
		case "betaKc":
			o.Ray.BetaKc = p.V
		default:
			return chk.Err("slider bearing: parameter named %q is invalid", p.N)
		}
	}
	if o.K0 <= 0 {
		return chk.Err("slider bearing: initial stiffness k0 must be positive. k0=%g is invalid", o.K0)
	}
	if o.MaxIter < 1 {
		return chk.Err("slider bearing: maxIter must be at least 1. maxIter=%d is invalid", o.MaxIter)
	}
	return
}
