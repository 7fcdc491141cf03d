// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package frict implements friction models for sliding bearings
package frict

import (
	"github.com/dct328/gosees/persist"
	"github.com/dct328/gosees/response"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// class tags used by object brokers
const (
	ClassCoulomb      = 1
	ClassVelDependent = 2
)

// Model defines friction models: (N, v) ⇒ friction force
type Model interface {
	Tag() int                            // returns the model tag
	ClassTag() int                       // returns the class tag (for brokers)
	Init(tag int, prms dbf.Params) error // initialises model
	GetPrms() dbf.Params                 // gets (an example) of parameters

	SetTrial(normalForce, velocity float64) int // sets trial normal force and sliding velocity
	NormalForce() float64                       // trial normal force
	Velocity() float64                          // trial sliding velocity
	FrictionForce() float64                     // trial friction force
	FrictionCoeff() float64                     // trial friction coefficient

	Commit() int
	RevertToLastCommit() int
	RevertToStart() int
	GetCopy() Model

	SendSelf(commitTag int, ch persist.Channel) error
	RecvSelf(commitTag int, ch persist.Channel) error
	SetResponse(args []string) (response.Response, error)
	String() string
}

// New returns a new (blank) model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'frict' database", name)
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
	return nil, chk.Err("there is no friction model with class tag %d", classTag)
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}

// state holds the trial and committed values shared by all models
type state struct {
	trialN   float64
	trialVel float64
	commitN  float64
	commitV  float64
}

func (o *state) set(N, vel float64) {
	o.trialN, o.trialVel = N, vel
}

func (o *state) commit() {
	o.commitN, o.commitV = o.trialN, o.trialVel
}

func (o *state) revert() {
	o.trialN, o.trialVel = o.commitN, o.commitV
}

func (o *state) reset() {
	*o = state{}
}

// setResponse implements the responses common to all models
func setResponse(m Model, args []string) (response.Response, error) {
	if len(args) > 0 {
		switch args[0] {
		case "normalForce", "N":
			return response.Scalar("N", m.NormalForce), nil
		case "velocity", "vel", "slidingVelocity":
			return response.Scalar("vel", m.Velocity), nil
		case "frictionForce", "Ff":
			return response.Scalar("Ff", m.FrictionForce), nil
		case "frictionCoeff", "COF", "mu":
			return response.Scalar("COF", m.FrictionCoeff), nil
		}
	}
	return nil, response.ErrUnknown("friction model", args)
}
