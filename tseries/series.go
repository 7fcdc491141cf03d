// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tseries implements time series: load factors as functions of (pseudo) time
package tseries

import (
	"github.com/dct328/gosees/inp"
	"github.com/dct328/gosees/persist"
	"github.com/dct328/gosees/spectrum"

	"github.com/cpmech/gosl/chk"
)

// Series defines time series
type Series interface {
	Tag() int
	Factor(pseudoTime float64) float64 // load factor at pseudoTime
	GetCopy() Series
	String() string
}

// CanPersist defines series that can be saved and restored
type CanPersist interface {
	SendSelf(commitTag int, ch persist.Channel) error
	RecvSelf(commitTag int, ch persist.Channel) error
}

// New returns a new series from input data. Types other than "triangle", "constant",
// "linear" and "spectral" are taken as names of gosl functions; e.g. "rmp" or "cos"
func New(sd *inp.SeriesData) (Series, error) {
	p := sd.Prms
	switch sd.Type {
	case "triangle":
		return NewTriangle(sd.Tag, p.Get("tstart", 0), p.Get("tfinish", 0), p.Get("period", 1),
			p.Get("phaseshift", 0), p.Get("cfactor", 1), p.Get("zeroshift", 0)), nil
	case "constant":
		return &Constant{Id: sd.Tag, C: p.Get("cfactor", 1)}, nil
	case "linear":
		return &Linear{Id: sd.Tag, C: p.Get("cfactor", 1)}, nil
	case "spectral":
		s, err := spectrum.New(sd.Tag, sd.Spectrum)
		if err != nil {
			return nil, err
		}
		return NewSpectral(sd.Tag, s, int(p.Get("n", 50)), uint64(p.Get("seed", 0)), p.Get("cfactor", 1))
	}
	f, err := inp.NewFunc(sd.Type, sd.Prms)
	if err != nil {
		return nil, chk.Err("series %d: cannot allocate function of type %q:\n%v", sd.Tag, sd.Type, err)
	}
	return &Func{Id: sd.Tag, Type: sd.Type, F: f}, nil
}
