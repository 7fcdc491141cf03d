// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tseries

import (
	"github.com/dct328/gosees/persist"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Constant returns C for all times
type Constant struct {
	Id int
	C  float64
}

func (o *Constant) Tag() int                 { return o.Id }
func (o *Constant) Factor(t float64) float64 { return o.C }
func (o *Constant) GetCopy() Series          { c := *o; return &c }
func (o *Constant) String() string           { return io.Sf("Constant Series: %d  factor: %g", o.Id, o.C) }

// SendSelf sends [C]
func (o *Constant) SendSelf(commitTag int, ch persist.Channel) error {
	return ch.SendVector(commitTag, []float64{o.C})
}

// RecvSelf receives [C]
func (o *Constant) RecvSelf(commitTag int, ch persist.Channel) (err error) {
	data := make([]float64, 1)
	if err = ch.RecvVector(commitTag, data); err == nil {
		o.C = data[0]
	}
	return
}

// Linear returns C⋅t
type Linear struct {
	Id int
	C  float64
}

func (o *Linear) Tag() int                 { return o.Id }
func (o *Linear) Factor(t float64) float64 { return o.C * t }
func (o *Linear) GetCopy() Series          { c := *o; return &c }
func (o *Linear) String() string           { return io.Sf("Linear Series: %d  factor: %g", o.Id, o.C) }

// SendSelf sends [C]
func (o *Linear) SendSelf(commitTag int, ch persist.Channel) error {
	return ch.SendVector(commitTag, []float64{o.C})
}

// RecvSelf receives [C]
func (o *Linear) RecvSelf(commitTag int, ch persist.Channel) (err error) {
	data := make([]float64, 1)
	if err = ch.RecvVector(commitTag, data); err == nil {
		o.C = data[0]
	}
	return
}

// Func adapts gosl functions of time
type Func struct {
	Id   int
	Type string // name of function; e.g. "rmp"
	F    dbf.T
}

func (o *Func) Tag() int                 { return o.Id }
func (o *Func) Factor(t float64) float64 { return o.F.F(t, nil) }
func (o *Func) GetCopy() Series          { c := *o; return &c }
func (o *Func) String() string           { return io.Sf("Function Series: %d  type: %s", o.Id, o.Type) }
