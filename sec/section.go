// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sec implements cross-section models integrating uniaxial materials
package sec

import (
	"github.com/dct328/gosees/mdl/uniax"
	"github.com/dct328/gosees/persist"
	"github.com/dct328/gosees/response"

	"gonum.org/v1/gonum/mat"
)

// section response codes
const (
	RespMz = 1 // moment about z
	RespP  = 2 // axial force
	RespVy = 3 // shear along y
	RespMy = 4 // moment about y
	RespVz = 5 // shear along z
	RespT  = 6 // torsion
)

// class tags used by object brokers
const (
	ClassFiberSection3d = 1
)

// Section defines section force-deformation models
type Section interface {
	Tag() int
	ClassTag() int
	Order() int  // number of generalised deformations
	Type() []int // response code of each generalised deformation

	SetTrialDeformation(e []float64) int // sets trial generalised deformations
	Deformation() []float64              // trial generalised deformations
	Force() []float64                    // stress resultants
	Tangent() *mat.Dense                 // section tangent
	InitialTangent() *mat.Dense          // initial section tangent

	Commit() int
	RevertToLastCommit() int
	RevertToStart() int
	GetCopy() Section

	SendSelf(commitTag int, ch persist.Channel) error
	RecvSelf(commitTag int, ch persist.Channel, b Broker) error
	SetResponse(args []string) (response.Response, error)
	SetParameter(args []string, v float64) error
	String() string
}

// Broker allocates blank materials given their class tags
type Broker interface {
	NewUniaxialMaterial(classTag int) (uniax.Model, error)
}

// codeLabels returns deformation and force labels for the given codes
func codeLabels(codes []int) (defs, forces []string) {
	for _, c := range codes {
		switch c {
		case RespMz:
			defs, forces = append(defs, "kappaZ"), append(forces, "Mz")
		case RespP:
			defs, forces = append(defs, "eps"), append(forces, "P")
		case RespVy:
			defs, forces = append(defs, "gammaY"), append(forces, "Vy")
		case RespMy:
			defs, forces = append(defs, "kappaY"), append(forces, "My")
		case RespVz:
			defs, forces = append(defs, "gammaZ"), append(forces, "Vz")
		case RespT:
			defs, forces = append(defs, "theta"), append(forces, "T")
		default:
			defs, forces = append(defs, "Unknown"), append(forces, "Unknown")
		}
	}
	return
}
