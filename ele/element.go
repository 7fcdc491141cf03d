// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite elements
package ele

import (
	"github.com/dct328/gosees/persist"
	"github.com/dct328/gosees/response"

	"gonum.org/v1/gonum/mat"
)

// Element defines what all elements must implement.
//
//  Update, Commit and the Revert methods return status codes: 0 means ok and negative values
//  mean failure. Callers add the codes of all elements.
//
type Element interface {

	// information and initialisation
	Tag() int                            // returns the element tag
	ExternalNodes() []int                // tags of connected nodes
	NumDOF() int                         // total number of degrees of freedom
	SetDomain(d NodeProvider) (err error) // finds nodes and computes transformations

	// called for each iteration
	Update() int                                // computes the trial state from the trial response of nodes
	TangentStiff() *mat.Dense                   // current tangent in global coordinates
	InitialStiff() *mat.Dense                   // initial tangent in global coordinates
	Damp() *mat.Dense                           // damping matrix
	Mass() *mat.Dense                           // mass matrix
	ResistingForce() *mat.VecDense              // internal force
	ResistingForceIncInertia() *mat.VecDense    // internal force minus loads plus damping and inertia forces
	ZeroLoad()                                  // clears element loads
	AddInertiaLoadToUnbalance(accel []float64) int // adds -M⋅R⋅accel to the element loads

	// commit protocol
	Commit() int
	RevertToLastCommit() int
	RevertToStart() int

	// output
	SetResponse(args []string) (response.Response, error)
	String() string
}

// CanPersist defines elements that can save and restore their state
type CanPersist interface {
	SendSelf(commitTag int, ch persist.Channel) (err error)
	RecvSelf(commitTag int, ch persist.Channel, b Broker) (err error)
}

// CanDisplay defines elements that can return points of a polyline for drawings
type CanDisplay interface {
	DisplayPoints(fact float64) (v1, v2, v3 []float64) // deformed points with displacements scaled by fact
}

// WithRayleigh defines elements accepting Rayleigh damping factors
type WithRayleigh interface {
	SetRayleigh(r Rayleigh)
}
