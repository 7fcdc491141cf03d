// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bearing

import "gonum.org/v1/gonum/mat"

// bolted connection between the slider plates (units: mm, N)
const (
	boltFu      = 500.0       // ultimate strength of plates
	boltTcover  = 13.0        // thickness of cover plate
	boltTcore   = 13.0        // thickness of core plate
	boltN       = 1.0         // number of bolts
	boltE       = 205000.0    // Young's modulus
	boltNu      = 0.3         // Poisson's coefficient
	Clearance   = 1.5         // clearance of bolt holes
	boltD       = 20.0        // bolt diameter
	boltPi      = 3.141592654 // π as used by the calibration
	boltL       = boltTcover + boltTcore
	boltG       = boltE / 2.0 / (1.0 + boltNu)
	boltI       = 0.25 * boltPi * boltD * boltD * boltD * boltD / 16.0
	boltA       = boltPi * boltD * boltD / 4
	boltAs      = boltA * 0.9
	boltPhi     = 12 * boltE * boltI / boltG / boltAs / boltL / boltL // shear deformation factor
	boltK       = 12 * boltE * boltI / boltL / boltL / boltL / (1 + boltPhi)
	boltFactor  = 1 + boltPhi
	boltMk11    = boltE * boltA / boltL
	boltMk26    = 6 * boltE * boltI / boltL / boltL / boltFactor
	boltMk55    = (4 + boltPhi) * boltE * boltI / boltL / boltFactor
	boltMk115   = (2 - boltPhi) * boltE * boltI / boltL / boltFactor
	boltBearing = boltN * 1.0 / (1.0/(boltFu*boltTcover*30.0) + 1.0/(boltFu*boltTcore*30.0*0.5) + 1.0/boltK)
)

// KBearing is the shear stiffness of the bolted connection
const KBearing = boltBearing

// boltMatrix returns the local 12×12 stiffness of the bolted connection used after uplift.
// k0 is the torsional stiffness.
func boltMatrix(k0 float64) *mat.Dense {
	kl := mat.NewDense(12, 12, nil)
	diag := []float64{boltMk11, KBearing, KBearing, k0, boltMk55, boltMk55}
	for i, v := range diag {
		kl.Set(i, i, v)
		kl.Set(i+6, i+6, v)
	}
	sym := func(i, j int, v float64) {
		kl.Set(i, j, v)
		kl.Set(j, i, v)
	}
	sym(4, 2, boltMk26)
	sym(5, 1, boltMk26)
	sym(6, 0, -boltMk11)
	sym(7, 1, -KBearing)
	sym(8, 2, -KBearing)
	sym(9, 3, -k0)
	sym(10, 4, boltMk115)
	sym(11, 5, boltMk115)
	sym(11, 1, boltMk26)
	sym(10, 2, boltMk26)
	sym(8, 4, -boltMk26)
	sym(7, 5, -boltMk26)
	sym(10, 8, -boltMk26)
	sym(11, 7, -boltMk26)
	return kl
}

// clearanceReduced returns (|u| - Clearance)⋅sign(u) if |u| > Clearance and zero otherwise
func clearanceReduced(u float64) float64 {
	if u > Clearance {
		return u - Clearance
	}
	if u < -Clearance {
		return u + Clearance
	}
	return 0
}

// sign returns -1, 0 or 1
func sign(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
