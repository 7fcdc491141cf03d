// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frict

import (
	"github.com/dct328/gosees/persist"
	"github.com/dct328/gosees/response"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Coulomb implements Coulomb friction with a constant coefficient
//  Ff = μ⋅N  if N > 0
//  Ff = 0    otherwise
type Coulomb struct {
	Mu  float64 // friction coefficient
	st  state
	tag int
}

// add model to factory
func init() {
	allocators["coulomb"] = func() Model { return new(Coulomb) }
}

// NewCoulomb returns a new model
func NewCoulomb(tag int, mu float64) *Coulomb {
	return &Coulomb{Mu: mu, tag: tag}
}

// Init initialises model
func (o *Coulomb) Init(tag int, prms dbf.Params) (err error) {
	o.tag = tag
	for _, p := range prms {
		switch p.N {
		case "mu":
			o.Mu = p.V
		default:
			return chk.Err("coulomb: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Mu < 0 {
		return chk.Err("coulomb: friction coefficient cannot be negative. mu=%g\n", o.Mu)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Coulomb) GetPrms() dbf.Params {
	return []*dbf.P{&dbf.P{N: "mu", V: 0.1}}
}

// Tag returns the model tag
func (o *Coulomb) Tag() int { return o.tag }

// ClassTag returns the class tag
func (o *Coulomb) ClassTag() int { return ClassCoulomb }

// SetTrial sets the trial normal force and velocity
func (o *Coulomb) SetTrial(normalForce, velocity float64) int {
	o.st.set(normalForce, velocity)
	return 0
}

// NormalForce returns the trial normal force
func (o *Coulomb) NormalForce() float64 { return o.st.trialN }

// Velocity returns the trial velocity
func (o *Coulomb) Velocity() float64 { return o.st.trialVel }

// FrictionForce returns μ⋅N for compressive N, zero otherwise
func (o *Coulomb) FrictionForce() float64 {
	if o.st.trialN > 0 {
		return o.Mu * o.st.trialN
	}
	return 0
}

// FrictionCoeff returns μ
func (o *Coulomb) FrictionCoeff() float64 { return o.Mu }

// Commit accepts the trial state
func (o *Coulomb) Commit() int { o.st.commit(); return 0 }

// RevertToLastCommit discards the trial state
func (o *Coulomb) RevertToLastCommit() int { o.st.revert(); return 0 }

// RevertToStart clears the history
func (o *Coulomb) RevertToStart() int { o.st.reset(); return 0 }

// GetCopy returns a deep copy
func (o *Coulomb) GetCopy() Model {
	c := *o
	return &c
}

// SendSelf sends [tag, mu]
func (o *Coulomb) SendSelf(commitTag int, ch persist.Channel) (err error) {
	if err = ch.SendVector(commitTag, []float64{float64(o.tag), o.Mu}); err != nil {
		return chk.Err("Coulomb: failed to send data\n%v", err)
	}
	return
}

// RecvSelf receives the data sent by SendSelf
func (o *Coulomb) RecvSelf(commitTag int, ch persist.Channel) (err error) {
	data := make([]float64, 2)
	if err = ch.RecvVector(commitTag, data); err != nil {
		return chk.Err("Coulomb: failed to receive data\n%v", err)
	}
	o.tag, o.Mu = int(data[0]), data[1]
	o.st.reset()
	return
}

// SetResponse returns a handle to N, vel, Ff or COF
func (o *Coulomb) SetResponse(args []string) (response.Response, error) {
	return setResponse(o, args)
}

// String returns a summary of the model
func (o *Coulomb) String() string {
	return io.Sf("Coulomb tag: %d\n  mu: %g\n", o.tag, o.Mu)
}
