// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tseries

import (
	"math"
	"math/rand/v2"

	"github.com/dct328/gosees/spectrum"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// Spectral synthesises a stationary signal from a spectrum by superposition of harmonics
//
//  f(t) = C ⋅ Σ_k √(2⋅S(fₖ)⋅Δf) ⋅ cos(2π⋅fₖ⋅t + φₖ)
//
//  fₖ are the mid-points of n intervals in [fmin, fmax] and φₖ are uniform random phases
//  generated from seed; thus the signal is reproducible
type Spectral struct {
	Spec  spectrum.Spectrum // spectrum
	C     float64           // scale factor
	Freqs []float64         // frequencies
	Amps  []float64         // amplitudes
	Phase []float64         // phases
	seed  uint64
	tag   int
}

// NewSpectral returns a new series with n harmonics
func NewSpectral(tag int, spec spectrum.Spectrum, n int, seed uint64, c float64) (o *Spectral, err error) {
	if n < 1 {
		return nil, chk.Err("spectral series %d: number of harmonics must be positive. %d is invalid", tag, n)
	}
	fmin, fmax := spec.MinFrequency(), spec.MaxFrequency()
	if fmax <= fmin {
		return nil, chk.Err("spectral series %d: frequency band [%g, %g] is empty", tag, fmin, fmax)
	}
	o = &Spectral{Spec: spec, C: c, seed: seed, tag: tag}
	df := (fmax - fmin) / float64(n)
	o.Freqs = make([]float64, n)
	if n == 1 {
		o.Freqs[0] = fmin + df/2
	} else {
		floats.Span(o.Freqs, fmin+df/2, fmax-df/2)
	}
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	o.Amps = make([]float64, n)
	o.Phase = make([]float64, n)
	for k, f := range o.Freqs {
		o.Amps[k] = math.Sqrt(2 * spec.Amplitude(f) * df)
		o.Phase[k] = 2 * math.Pi * rnd.Float64()
	}
	return
}

func (o *Spectral) Tag() int { return o.tag }

// Factor returns the synthesised signal at time t
func (o *Spectral) Factor(t float64) (res float64) {
	for k, f := range o.Freqs {
		res += o.Amps[k] * math.Cos(2*math.Pi*f*t+o.Phase[k])
	}
	return o.C * res
}

// GetCopy returns a copy sharing the spectrum
func (o *Spectral) GetCopy() Series {
	c := *o
	c.Freqs = append([]float64{}, o.Freqs...)
	c.Amps = append([]float64{}, o.Amps...)
	c.Phase = append([]float64{}, o.Phase...)
	return &c
}

func (o *Spectral) String() string {
	return io.Sf("Spectral Series: %d  harmonics: %d  seed: %d\n  %v", o.tag, len(o.Freqs), o.seed, o.Spec)
}
