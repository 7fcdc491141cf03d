// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"testing"

	"github.com/dct328/gosees/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_narrowband01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("narrowband01. amplitude inside and outside the band")

	s, err := New(1, &inp.SpectrumData{Type: "narrow-band", Prms: inp.Prms{{N: "fmin", V: 1}, {N: "fmax", V: 3}, {N: "amp", V: 0.5}}})
	require.NoError(tst, err)
	chk.Float64(tst, "fmin", 1e-15, s.MinFrequency(), 1)
	chk.Float64(tst, "fmax", 1e-15, s.MaxFrequency(), 3)
	chk.Float64(tst, "S(0.5)", 1e-15, s.Amplitude(0.5), 0)
	chk.Float64(tst, "S(1)", 1e-15, s.Amplitude(1), 0.5)
	chk.Float64(tst, "S(2)", 1e-15, s.Amplitude(2), 0.5)
	chk.Float64(tst, "S(3)", 1e-15, s.Amplitude(3), 0.5)
	chk.Float64(tst, "S(3.1)", 1e-15, s.Amplitude(3.1), 0)

	_, err = NewNarrowBand(2, 3, 1, 1)
	assert.Error(tst, err)
	_, err = New(3, &inp.SpectrumData{Type: "white-noise"})
	assert.Error(tst, err)
	_, err = New(4, nil)
	assert.Error(tst, err)
}
