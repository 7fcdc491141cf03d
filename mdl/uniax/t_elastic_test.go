// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"bytes"
	"testing"

	"github.com/dct328/gosees/persist"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

func Test_elastic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elastic01")

	m := NewElastic(2, 1e10, 5)
	m.SetTrialStrain(1e-6, 0.1)
	chk.Float64(tst, "σ", 1e-10, m.Stress(), 1e4+0.5)
	chk.Float64(tst, "D", 1e-15, m.Tangent(), 1e10)
	chk.Float64(tst, "C", 1e-15, m.DampTangent(), 5)

	m.Commit()
	m.SetTrialStrain(3e-6, 0)
	m.RevertToLastCommit()
	chk.Float64(tst, "ε after revert", 1e-20, m.Strain(), 1e-6)

	var buf bytes.Buffer
	require.NoError(tst, m.SendSelf(0, persist.NewWriter(&buf, "gob")))
	r := new(Elastic)
	require.NoError(tst, r.RecvSelf(0, persist.NewReader(&buf, "gob")))
	chk.Float64(tst, "recv σ", 1e-10, r.Stress(), m.Stress())

	c := m.GetCopy()
	c.SetTrialStrain(1, 0)
	chk.Float64(tst, "source unchanged", 1e-20, m.Strain(), 1e-6)
}
