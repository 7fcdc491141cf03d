// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tseries

import (
	"math"

	"github.com/dct328/gosees/persist"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sirupsen/logrus"
)

// Triangle implements a periodic triangular wave active in [TStart, TFinish]
//
//      cFactor + zeroShift     /\
//                             /  \
//      zeroShift  ----------/----\----------/----
//                                 \        /
//                                  \      /
//                                   \    /
//                                    \  /
//                                     \/
//      |<----------- period ---------->|
//
type Triangle struct {
	TStart     float64 // start time
	TFinish    float64 // finish time
	Period     float64 // period
	PhaseShift float64 // phase shift (time)
	CFactor    float64 // amplitude
	ZeroShift  float64 // offset of the wave
	tag        int
}

// NewTriangle returns a new series. A zero period is replaced by 1
func NewTriangle(tag int, tStart, tFinish, period, phaseShift, cFactor, zeroShift float64) *Triangle {
	if period == 0 {
		logrus.WithFields(logrus.Fields{"series": tag}).Warn("triangle series: input period is zero, setting period to 1")
		period = 1
	}
	return &Triangle{tStart, tFinish, period, phaseShift, cFactor, zeroShift, tag}
}

// Tag returns the tag
func (o *Triangle) Tag() int { return o.tag }

// Factor returns the load factor; zero outside [TStart, TFinish]
func (o *Triangle) Factor(pseudoTime float64) float64 {
	if pseudoTime < o.TStart || pseudoTime > o.TFinish {
		return 0
	}
	T := o.Period
	slope := o.CFactor / (T / 4)
	phi := o.PhaseShift - o.ZeroShift/slope
	x := (pseudoTime + phi - o.TStart) / T
	k := x - math.Floor(x)
	switch {
	case k < 0.25:
		return slope*k*T + o.ZeroShift
	case k < 0.75:
		return o.CFactor - slope*(k-0.25)*T + o.ZeroShift
	case k < 1.00:
		return -o.CFactor + slope*(k-0.75)*T + o.ZeroShift
	}
	return 0
}

// GetCopy returns a copy
func (o *Triangle) GetCopy() Series {
	c := *o
	return &c
}

// SendSelf sends [cFactor, tStart, tFinish, period, phaseShift, zeroShift]
func (o *Triangle) SendSelf(commitTag int, ch persist.Channel) (err error) {
	data := []float64{o.CFactor, o.TStart, o.TFinish, o.Period, o.PhaseShift, o.ZeroShift}
	if err = ch.SendVector(commitTag, data); err != nil {
		return chk.Err("triangle series: channel failed to send data\n%v", err)
	}
	return
}

// RecvSelf receives the data sent by SendSelf. On failure, the series is reset to
// cFactor=1, period=1 with all other values equal to zero
func (o *Triangle) RecvSelf(commitTag int, ch persist.Channel) (err error) {
	data := make([]float64, 6)
	if err = ch.RecvVector(commitTag, data); err != nil {
		o.CFactor, o.TStart, o.TFinish, o.Period, o.PhaseShift, o.ZeroShift = 1, 0, 0, 1, 0, 0
		return chk.Err("triangle series: channel failed to receive data\n%v", err)
	}
	o.CFactor, o.TStart, o.TFinish, o.Period, o.PhaseShift, o.ZeroShift = data[0], data[1], data[2], data[3], data[4], data[5]
	return
}

// String returns a summary
func (o *Triangle) String() string {
	l := "Triangle Series\n"
	l += io.Sf("\tFactor: %g\n", o.CFactor)
	l += io.Sf("\ttStart: %g\n", o.TStart)
	l += io.Sf("\ttFinish: %g\n", o.TFinish)
	l += io.Sf("\tPeriod: %g\n", o.Period)
	l += io.Sf("\tPhase Shift: %g\n", o.PhaseShift)
	l += io.Sf("\tZero Shift: %g", o.ZeroShift)
	return l
}
