// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"github.com/dct328/gosees/persist"
	"github.com/dct328/gosees/response"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Elastic implements a linear elastic model with optional viscous damping
//  σ = E⋅ε + η⋅dεdt
type Elastic struct {
	E   float64 // Young's modulus
	Eta float64 // damping coefficient

	trialStrain     float64
	trialStrainRate float64
	commitStrain    float64
	commitRate      float64

	tag int
}

// add model to factory
func init() {
	allocators["elastic"] = func() Model { return new(Elastic) }
}

// NewElastic returns a new elastic model
func NewElastic(tag int, E, eta float64) *Elastic {
	return &Elastic{tag: tag, E: E, Eta: eta}
}

// Init initialises model
func (o *Elastic) Init(tag int, prms dbf.Params) (err error) {
	o.tag = tag
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "eta":
			o.Eta = p.V
		default:
			return chk.Err("elastic: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Elastic) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 200000},
		&dbf.P{N: "eta", V: 0},
	}
}

// SetParameter changes one parameter
func (o *Elastic) SetParameter(name string, v float64) error {
	switch name {
	case "E":
		o.E = v
	case "eta":
		o.Eta = v
	default:
		return chk.Err("elastic: cannot set parameter %q", name)
	}
	return nil
}

// Tag returns the material tag
func (o *Elastic) Tag() int { return o.tag }

// ClassTag returns the class tag
func (o *Elastic) ClassTag() int { return ClassElastic }

// SetTrialStrain sets the trial strain and strain rate
func (o *Elastic) SetTrialStrain(strain, strainRate float64) int {
	o.trialStrain = strain
	o.trialStrainRate = strainRate
	return 0
}

// Strain returns the trial strain
func (o *Elastic) Strain() float64 { return o.trialStrain }

// Stress returns the trial stress
func (o *Elastic) Stress() float64 { return o.E*o.trialStrain + o.Eta*o.trialStrainRate }

// Tangent returns E
func (o *Elastic) Tangent() float64 { return o.E }

// InitialTangent returns E
func (o *Elastic) InitialTangent() float64 { return o.E }

// DampTangent returns η
func (o *Elastic) DampTangent() float64 { return o.Eta }

// HasFailed returns false
func (o *Elastic) HasFailed() bool { return false }

// Commit accepts the trial state
func (o *Elastic) Commit() int {
	o.commitStrain = o.trialStrain
	o.commitRate = o.trialStrainRate
	return 0
}

// RevertToLastCommit discards the trial state
func (o *Elastic) RevertToLastCommit() int {
	o.trialStrain = o.commitStrain
	o.trialStrainRate = o.commitRate
	return 0
}

// RevertToStart clears the history
func (o *Elastic) RevertToStart() int {
	o.trialStrain, o.trialStrainRate = 0, 0
	o.commitStrain, o.commitRate = 0, 0
	return 0
}

// GetCopy returns a deep copy
func (o *Elastic) GetCopy() Model {
	c := *o
	return &c
}

// SendSelf sends [tag, E, eta, commitStrain, commitRate]
func (o *Elastic) SendSelf(commitTag int, ch persist.Channel) (err error) {
	data := []float64{float64(o.tag), o.E, o.Eta, o.commitStrain, o.commitRate}
	if err = ch.SendVector(commitTag, data); err != nil {
		return chk.Err("Elastic: failed to send data\n%v", err)
	}
	return
}

// RecvSelf receives the data sent by SendSelf
func (o *Elastic) RecvSelf(commitTag int, ch persist.Channel) (err error) {
	data := make([]float64, 5)
	if err = ch.RecvVector(commitTag, data); err != nil {
		return chk.Err("Elastic: failed to receive data\n%v", err)
	}
	o.tag = int(data[0])
	o.E, o.Eta = data[1], data[2]
	o.commitStrain, o.commitRate = data[3], data[4]
	o.RevertToLastCommit()
	return
}

// SetResponse returns a handle to stress, strain or tangent
func (o *Elastic) SetResponse(args []string) (response.Response, error) {
	return setResponse(o, args)
}

// String returns a summary of the model
func (o *Elastic) String() string {
	return io.Sf("Elastic tag: %d\n  E: %g\n  eta: %g\n", o.tag, o.E, o.Eta)
}
