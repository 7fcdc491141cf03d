// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package broker

import (
	"bytes"
	"testing"

	"github.com/dct328/gosees/mdl/frict"
	"github.com/dct328/gosees/mdl/uniax"
	"github.com/dct328/gosees/persist"
	"github.com/dct328/gosees/sec"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_broker01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("broker01. blank objects by class tag")

	m, err := Default.NewUniaxialMaterial(uniax.ClassElasticPP)
	require.NoError(tst, err)
	chk.Int(tst, "material class", m.ClassTag(), uniax.ClassElasticPP)

	f, err := Default.NewFrictionModel(frict.ClassVelDependent)
	require.NoError(tst, err)
	chk.Int(tst, "friction class", f.ClassTag(), frict.ClassVelDependent)

	s, err := Default.NewSection(sec.ClassFiberSection3d)
	require.NoError(tst, err)
	chk.Int(tst, "section class", s.ClassTag(), sec.ClassFiberSection3d)

	_, err = Default.NewUniaxialMaterial(-1)
	assert.Error(tst, err)
	_, err = Default.NewFrictionModel(-1)
	assert.Error(tst, err)
	_, err = Default.NewSection(-1)
	assert.Error(tst, err)
}

func Test_broker02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("broker02. section round trip through json")

	fibers := []sec.Fiber{{Y: -1, Z: 0, A: 2}, {Y: 1, Z: 0, A: 2}}
	mats := []uniax.Model{uniax.NewElasticPP(3, 10, 0.1), uniax.NewElasticPP(3, 10, 0.1)}
	s, err := sec.NewFiberSection3d(5, fibers, mats, nil)
	require.NoError(tst, err)
	s.SetTrialDeformation([]float64{0.05, 0.01, 0, 0})
	s.Commit()

	var buf bytes.Buffer
	require.NoError(tst, s.SendSelf(1, persist.NewWriter(&buf, "json")))
	r, err := Default.NewSection(s.ClassTag())
	require.NoError(tst, err)
	require.NoError(tst, r.RecvSelf(1, persist.NewReader(&buf, "json"), Default))
	chk.Array(tst, "force", 1e-14, r.Force(), s.Force())
}
