// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frict

import (
	"math"

	"github.com/dct328/gosees/persist"
	"github.com/dct328/gosees/response"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// VelDependent implements a velocity dependent friction coefficient
//  μ(v) = μfast - (μfast - μslow)⋅exp(-a⋅|v|)
type VelDependent struct {
	MuSlow    float64 // coefficient at zero velocity
	MuFast    float64 // coefficient at large velocity
	TransRate float64 // transition rate a
	st        state
	tag       int
}

// add model to factory
func init() {
	allocators["vel-dependent"] = func() Model { return new(VelDependent) }
}

// NewVelDependent returns a new model
func NewVelDependent(tag int, muSlow, muFast, transRate float64) *VelDependent {
	return &VelDependent{MuSlow: muSlow, MuFast: muFast, TransRate: transRate, tag: tag}
}

// Init initialises model
func (o *VelDependent) Init(tag int, prms dbf.Params) (err error) {
	o.tag = tag
	for _, p := range prms {
		switch p.N {
		case "muSlow":
			o.MuSlow = p.V
		case "muFast":
			o.MuFast = p.V
		case "transRate":
			o.TransRate = p.V
		default:
			return chk.Err("vel-dependent: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.MuSlow < 0 || o.MuFast < 0 {
		return chk.Err("vel-dependent: friction coefficients cannot be negative. muSlow=%g muFast=%g\n", o.MuSlow, o.MuFast)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o VelDependent) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "muSlow", V: 0.06},
		&dbf.P{N: "muFast", V: 0.12},
		&dbf.P{N: "transRate", V: 20},
	}
}

// Tag returns the model tag
func (o *VelDependent) Tag() int { return o.tag }

// ClassTag returns the class tag
func (o *VelDependent) ClassTag() int { return ClassVelDependent }

// SetTrial sets the trial normal force and velocity
func (o *VelDependent) SetTrial(normalForce, velocity float64) int {
	o.st.set(normalForce, velocity)
	return 0
}

// NormalForce returns the trial normal force
func (o *VelDependent) NormalForce() float64 { return o.st.trialN }

// Velocity returns the trial velocity
func (o *VelDependent) Velocity() float64 { return o.st.trialVel }

// FrictionCoeff returns μ(v)
func (o *VelDependent) FrictionCoeff() float64 {
	return o.MuFast - (o.MuFast-o.MuSlow)*math.Exp(-o.TransRate*math.Abs(o.st.trialVel))
}

// FrictionForce returns μ(v)⋅N for compressive N, zero otherwise
func (o *VelDependent) FrictionForce() float64 {
	if o.st.trialN > 0 {
		return o.FrictionCoeff() * o.st.trialN
	}
	return 0
}

// Commit accepts the trial state
func (o *VelDependent) Commit() int { o.st.commit(); return 0 }

// RevertToLastCommit discards the trial state
func (o *VelDependent) RevertToLastCommit() int { o.st.revert(); return 0 }

// RevertToStart clears the history
func (o *VelDependent) RevertToStart() int { o.st.reset(); return 0 }

// GetCopy returns a deep copy
func (o *VelDependent) GetCopy() Model {
	c := *o
	return &c
}

// SendSelf sends [tag, muSlow, muFast, transRate]
func (o *VelDependent) SendSelf(commitTag int, ch persist.Channel) (err error) {
	if err = ch.SendVector(commitTag, []float64{float64(o.tag), o.MuSlow, o.MuFast, o.TransRate}); err != nil {
		return chk.Err("VelDependent: failed to send data\n%v", err)
	}
	return
}

// RecvSelf receives the data sent by SendSelf
func (o *VelDependent) RecvSelf(commitTag int, ch persist.Channel) (err error) {
	data := make([]float64, 4)
	if err = ch.RecvVector(commitTag, data); err != nil {
		return chk.Err("VelDependent: failed to receive data\n%v", err)
	}
	o.tag = int(data[0])
	o.MuSlow, o.MuFast, o.TransRate = data[1], data[2], data[3]
	o.st.reset()
	return
}

// SetResponse returns a handle to N, vel, Ff or COF
func (o *VelDependent) SetResponse(args []string) (response.Response, error) {
	return setResponse(o, args)
}

// String returns a summary of the model
func (o *VelDependent) String() string {
	return io.Sf("VelDependent tag: %d\n  muSlow: %g\n  muFast: %g\n  transRate: %g\n", o.tag, o.MuSlow, o.MuFast, o.TransRate)
}
