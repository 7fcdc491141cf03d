// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package uniax implements uniaxial (one-dimensional) material models
//
//  All models follow the trial/commit protocol:
//
//   SetTrialStrain  ->  mutates trial values only
//   Commit          ->  accepts trial values; internal (plastic) variables change here only
//   RevertToLastCommit -> discards trial values
//   RevertToStart   ->  clears the whole history
//
package uniax

import (
	"github.com/dct328/gosees/persist"
	"github.com/dct328/gosees/response"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// class tags used by object brokers
const (
	ClassElastic   = 1
	ClassElasticPP = 2
)

// Model defines uniaxial material models
type Model interface {

	// information and initialisation
	Tag() int                                  // returns the material tag
	ClassTag() int                             // returns the class tag (for brokers)
	Init(tag int, prms dbf.Params) error       // initialises model
	GetPrms() dbf.Params                       // gets (an example) of parameters
	SetParameter(name string, v float64) error // changes one parameter

	// trial state
	SetTrialStrain(strain, strainRate float64) int // sets trial strain; returns status
	Strain() float64                              // trial strain
	Stress() float64                              // trial stress
	Tangent() float64                             // trial tangent
	InitialTangent() float64                      // initial (elastic) tangent
	DampTangent() float64                         // tangent with respect to the strain rate
	HasFailed() bool                              // material has failed

	// commit protocol
	Commit() int             // accepts trial state
	RevertToLastCommit() int // discards trial state
	RevertToStart() int      // clears history
	GetCopy() Model          // deep copy with the same history

	// persistence and output
	SendSelf(commitTag int, ch persist.Channel) error
	RecvSelf(commitTag int, ch persist.Channel) error
	SetResponse(args []string) (response.Response, error)
	String() string
}

// New returns a new (blank) model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'uniax' database", name)
	}
	return allocator(), nil
}

// NewByClassTag returns a new blank model for the given class tag
func NewByClassTag(classTag int) (model Model, err error) {
	for _, allocator := range allocators {
		m := allocator()
		if m.ClassTag() == classTag {
			return m, nil
		}
	}
	return nil, chk.Err("there is no uniaxial material with class tag %d", classTag)
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}

// setResponse implements the responses common to all models
func setResponse(m Model, args []string) (response.Response, error) {
	if len(args) == 0 {
		return nil, response.ErrUnknown(m.String(), args)
	}
	switch args[0] {
	case "stress":
		return response.Scalar("stress", m.Stress), nil
	case "tangent":
		return response.Scalar("tangent", m.Tangent), nil
	case "strain":
		return response.Scalar("strain", m.Strain), nil
	case "stressStrain", "stressANDstrain", "stressAndStrain":
		return response.New([]string{"stress", "strain"}, func() []float64 {
			return []float64{m.Stress(), m.Strain()}
		}), nil
	case "stressStrainTangent":
		return response.New([]string{"stress", "strain", "tangent"}, func() []float64 {
			return []float64{m.Stress(), m.Strain(), m.Tangent()}
		}), nil
	}
	return nil, response.ErrUnknown("uniaxial material", args)
}
