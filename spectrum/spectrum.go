// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package spectrum implements frequency spectra used to synthesise excitations
package spectrum

import (
	"github.com/dct328/gosees/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Spectrum defines power spectra S(f)
type Spectrum interface {
	Tag() int
	MinFrequency() float64               // lowest frequency with non-zero amplitude
	MaxFrequency() float64               // highest frequency with non-zero amplitude
	Amplitude(frequency float64) float64 // S(f)
	String() string
}

// New returns a new spectrum from input data
func New(tag int, sd *inp.SpectrumData) (Spectrum, error) {
	if sd == nil {
		return nil, chk.Err("spectrum %d: data is missing", tag)
	}
	switch sd.Type {
	case "narrow-band", "narrowBand":
		return NewNarrowBand(tag, sd.Prms.Get("fmin", 0), sd.Prms.Get("fmax", 0), sd.Prms.Get("amp", 1))
	}
	return nil, chk.Err("spectrum %d: type %q is not available", tag, sd.Type)
}

// NarrowBand has a constant amplitude inside [fmin, fmax] and zero outside
type NarrowBand struct {
	tag  int
	fmin float64
	fmax float64
	amp  float64
}

// NewNarrowBand returns a new narrow band spectrum
func NewNarrowBand(tag int, fmin, fmax, amp float64) (*NarrowBand, error) {
	if fmin < 0 || fmax < fmin {
		return nil, chk.Err("narrow band spectrum %d: frequencies must satisfy 0 ≤ fmin ≤ fmax. fmin=%g fmax=%g is invalid", tag, fmin, fmax)
	}
	return &NarrowBand{tag, fmin, fmax, amp}, nil
}

func (o *NarrowBand) Tag() int              { return o.tag }
func (o *NarrowBand) MinFrequency() float64 { return o.fmin }
func (o *NarrowBand) MaxFrequency() float64 { return o.fmax }

// Amplitude returns the amplitude inside [fmin, fmax] and zero otherwise
func (o *NarrowBand) Amplitude(frequency float64) float64 {
	if frequency < o.fmin || frequency > o.fmax {
		return 0
	}
	return o.amp
}

func (o *NarrowBand) String() string {
	return io.Sf("NarrowBandSpectrum: %d  fmin: %g  fmax: %g  amplitude: %g", o.tag, o.fmin, o.fmax, o.amp)
}
