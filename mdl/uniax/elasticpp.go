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
	"github.com/sirupsen/logrus"
)

// DblEpsilon is the machine epsilon for float64
const DblEpsilon = 2.220446049250313e-16

// ElasticPP implements an elastic perfectly-plastic model
//  Note: the plastic strain is only updated by Commit
type ElasticPP struct {

	// parameters
	E     float64 // Young's modulus
	Fyp   float64 // positive yield stress
	Fyn   float64 // negative yield stress
	Ezero float64 // initial strain offset

	// internal variables
	Ep float64 // committed plastic strain

	// trial state
	trialStrain  float64
	trialStress  float64
	trialTangent float64

	// committed state
	commitStrain  float64
	commitStress  float64
	commitTangent float64

	tag int
}

// add model to factory
func init() {
	allocators["elastic-pp"] = func() Model { return new(ElasticPP) }
}

// NewElasticPP returns a symmetric model with yield stress ±E·eyp
func NewElasticPP(tag int, E, eyp float64) (o *ElasticPP) {
	o = &ElasticPP{tag: tag, E: E}
	o.Fyp = E * eyp
	o.Fyn = -o.Fyp
	o.RevertToStart()
	return
}

// NewElasticPPWith returns a model with distinct yield strains and initial strain offset.
// A negative eyp or a positive eyn is flipped with a warning.
func NewElasticPPWith(tag int, E, eyp, eyn, ezero float64) (o *ElasticPP) {
	if eyp < 0 {
		logrus.WithField("tag", tag).Warn("ElasticPP: eyp < 0, setting > 0")
		eyp = -eyp
	}
	if eyn > 0 {
		logrus.WithField("tag", tag).Warn("ElasticPP: eyn > 0, setting < 0")
		eyn = -eyn
	}
	o = &ElasticPP{tag: tag, E: E, Ezero: ezero}
	o.Fyp = E * eyp
	o.Fyn = E * eyn
	o.RevertToStart()
	return
}

// Init initialises model
func (o *ElasticPP) Init(tag int, prms dbf.Params) (err error) {
	var eyp, eyn, ezero float64
	var hasEyn bool
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "epsyP":
			eyp = p.V
		case "epsyN":
			eyn, hasEyn = p.V, true
		case "eps0":
			ezero = p.V
		default:
			return chk.Err("elastic-pp: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.E == 0 {
		return chk.Err("elastic-pp: Young's modulus E must be given and cannot be zero\n")
	}
	if hasEyn {
		*o = *NewElasticPPWith(tag, o.E, eyp, eyn, ezero)
		return
	}
	*o = *NewElasticPP(tag, o.E, eyp)
	o.Ezero = ezero
	return
}

// GetPrms gets (an example) of parameters
func (o ElasticPP) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 200000},
		&dbf.P{N: "epsyP", V: 0.002},
		&dbf.P{N: "epsyN", V: -0.002},
		&dbf.P{N: "eps0", V: 0},
	}
}

// SetParameter changes one parameter
func (o *ElasticPP) SetParameter(name string, v float64) error {
	switch name {
	case "sigmaY", "fy", "Fy":
		o.Fyp, o.Fyn = v, -v
	case "sigmaYp", "fyp", "Fyp":
		o.Fyp = v
	case "sigmaYn", "fyn", "Fyn":
		o.Fyn = v
	case "E":
		o.E = v
	case "epsP", "ep":
		o.Ep = v
	default:
		return chk.Err("elastic-pp: cannot set parameter %q", name)
	}
	return nil
}

// Tag returns the material tag
func (o *ElasticPP) Tag() int { return o.tag }

// ClassTag returns the class tag
func (o *ElasticPP) ClassTag() int { return ClassElasticPP }

// yield returns the trial stress for the given strain and the value of the yield function
func (o *ElasticPP) yield(strain float64) (sigtrial, f float64) {
	sigtrial = o.E * (strain - o.Ezero - o.Ep)
	if sigtrial >= 0 {
		f = sigtrial - o.Fyp
	} else {
		f = -sigtrial + o.Fyn
	}
	return
}

// SetTrialStrain sets the trial strain; the plastic strain is not changed
func (o *ElasticPP) SetTrialStrain(strain, strainRate float64) int {
	o.trialStrain = strain
	sigtrial, f := o.yield(strain)
	if f <= -o.E*DblEpsilon {
		o.trialStress = sigtrial
		o.trialTangent = o.E
		return 0
	}
	if sigtrial > 0 {
		o.trialStress = o.Fyp
	} else {
		o.trialStress = o.Fyn
	}
	o.trialTangent = 0
	return 0
}

// Strain returns the trial strain
func (o *ElasticPP) Strain() float64 { return o.trialStrain }

// Stress returns the trial stress
func (o *ElasticPP) Stress() float64 { return o.trialStress }

// Tangent returns the trial tangent
func (o *ElasticPP) Tangent() float64 { return o.trialTangent }

// InitialTangent returns E
func (o *ElasticPP) InitialTangent() float64 { return o.E }

// DampTangent returns zero
func (o *ElasticPP) DampTangent() float64 { return 0 }

// HasFailed returns false
func (o *ElasticPP) HasFailed() bool { return false }

// Commit updates the plastic strain and accepts the trial state
func (o *ElasticPP) Commit() int {
	sigtrial, f := o.yield(o.trialStrain)
	if f > -o.E*DblEpsilon {
		if sigtrial > 0 {
			o.Ep += f / o.E
		} else {
			o.Ep -= f / o.E
		}
	}
	o.commitStrain = o.trialStrain
	o.commitTangent = o.trialTangent
	o.commitStress = o.trialStress
	return 0
}

// RevertToLastCommit discards the trial state
func (o *ElasticPP) RevertToLastCommit() int {
	o.trialStrain = o.commitStrain
	o.trialTangent = o.commitTangent
	o.trialStress = o.commitStress
	return 0
}

// RevertToStart clears the history
func (o *ElasticPP) RevertToStart() int {
	o.trialStrain, o.commitStrain = 0, 0
	o.trialTangent, o.commitTangent = o.E, o.E
	o.trialStress, o.commitStress = 0, 0
	o.Ep = 0
	return 0
}

// GetCopy returns a new model with the same parameters and plastic strain.
// The trial and committed strains of the copy start from zero.
func (o *ElasticPP) GetCopy() Model {
	c := NewElasticPPWith(o.tag, o.E, o.Fyp/o.E, o.Fyn/o.E, o.Ezero)
	c.Ep = o.Ep
	return c
}

// SendSelf sends [tag, ep, E, ezero, fyp, fyn, commitStrain, commitStress, commitTangent]
func (o *ElasticPP) SendSelf(commitTag int, ch persist.Channel) (err error) {
	data := []float64{float64(o.tag), o.Ep, o.E, o.Ezero, o.Fyp, o.Fyn, o.commitStrain, o.commitStress, o.commitTangent}
	if err = ch.SendVector(commitTag, data); err != nil {
		return chk.Err("ElasticPP: failed to send data\n%v", err)
	}
	return
}

// RecvSelf receives the data sent by SendSelf; the trial state is set to the committed one
func (o *ElasticPP) RecvSelf(commitTag int, ch persist.Channel) (err error) {
	data := make([]float64, 9)
	if err = ch.RecvVector(commitTag, data); err != nil {
		return chk.Err("ElasticPP: failed to receive data\n%v", err)
	}
	o.tag = int(data[0])
	o.Ep = data[1]
	o.E = data[2]
	o.Ezero = data[3]
	o.Fyp = data[4]
	o.Fyn = data[5]
	o.commitStrain = data[6]
	o.commitStress = data[7]
	o.commitTangent = data[8]
	o.RevertToLastCommit()
	return
}

// SetResponse returns a handle to stress, strain or tangent
func (o *ElasticPP) SetResponse(args []string) (response.Response, error) {
	return setResponse(o, args)
}

// String returns a summary of the model
func (o *ElasticPP) String() string {
	return io.Sf("ElasticPP tag: %d\n  E: %g\n  ep: %g\n  stress: %g tangent: %g\n", o.tag, o.E, o.Ep, o.trialStress, o.trialTangent)
}
