// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"bytes"
	"testing"

	"github.com/dct328/gosees/mdl/uniax"
	"github.com/dct328/gosees/persist"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// classBroker allocates materials from the uniax database
type classBroker struct{}

func (classBroker) NewUniaxialMaterial(classTag int) (uniax.Model, error) {
	return uniax.NewByClassTag(classTag)
}

// square returns a 2×2 patch of elastic-plastic fibers on [0,2]×[0,2]
func square(tst *testing.T) *FiberSection3d {
	patch, err := NewRectPatch(0, 0, 2, 2, 2, 2)
	require.NoError(tst, err)
	mats := make([]uniax.Model, patch.NumFibers())
	for i := range mats {
		mats[i] = uniax.NewElasticPP(1, 100, 0.01)
	}
	o, err := NewFiberSection3dStrat(1, mats, patch, nil)
	require.NoError(tst, err)
	return o
}

func Test_fibersec01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fibersec01. centroid and pure axial deformation")

	o := square(tst)
	chk.Int(tst, "nfibers", o.NumFibers(), 4)
	chk.Float64(tst, "ybar", 1e-15, o.YBar, 1)
	chk.Float64(tst, "zbar", 1e-15, o.ZBar, 1)

	res := o.SetTrialDeformation([]float64{0.001, 0, 0, 0})
	chk.Int(tst, "status", res, 0)
	chk.Float64(tst, "P", 1e-12, o.Force()[0], 0.4)
	chk.Float64(tst, "Mz", 1e-14, o.Force()[1], 0)
	chk.Float64(tst, "My", 1e-14, o.Force()[2], 0)

	// fiber strains
	for i, m := range o.Mats {
		chk.Float64(tst, io.Sf("ε%d", i), 1e-15, m.Strain(), 0.001)
	}

	// tangent: EA, EI about both axes
	k := o.Tangent()
	chk.Float64(tst, "k00", 1e-12, k.At(0, 0), 400)
	chk.Float64(tst, "k11", 1e-12, k.At(1, 1), 100)
	chk.Float64(tst, "k22", 1e-12, k.At(2, 2), 100)
	chk.Float64(tst, "k01", 1e-12, k.At(0, 1), 0)
	chk.Float64(tst, "k33", 1e-12, k.At(3, 3), DefaultTorsionStiffness)
	assert.True(tst, mat.Equal(k, o.InitialTangent()))
}

func Test_fibersec02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fibersec02. centroid after each added fiber")

	o := NewFiberSection3dEmpty(2, 0, nil)
	fibers := []Fiber{{0, 0, 1}, {2, 0, 1}, {2, 4, 2}, {-1, 1, 0.5}}
	var sa, sy, sz float64
	for _, f := range fibers {
		o.AddFiber(f, uniax.NewElastic(1, 10, 0))
		sa += f.A
		sy += f.Y * f.A
		sz += f.Z * f.A
		chk.Float64(tst, "ybar", 1e-14, o.YBar, sy/sa)
		chk.Float64(tst, "zbar", 1e-14, o.ZBar, sz/sa)
	}
	chk.Int(tst, "nfibers", o.NumFibers(), len(fibers))

	// materials are copies
	m := uniax.NewElastic(7, 10, 0)
	o.AddFiber(Fiber{1, 1, 1}, m)
	m.SetTrialStrain(1, 0)
	chk.Float64(tst, "copied material", 1e-15, o.Mats[4].Strain(), 0)
}

func Test_fibersec03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fibersec03. bending and the strain sign convention")

	o := square(tst)
	κ := 0.001
	o.SetTrialDeformation([]float64{0, κ, 0, 0})
	for i, f := range o.Fibers {
		y := f.Y - o.YBar
		chk.Float64(tst, io.Sf("ε%d", i), 1e-15, o.Mats[i].Strain(), -y*κ)
	}
	chk.Float64(tst, "P", 1e-12, o.Force()[0], 0)
	chk.Float64(tst, "Mz", 1e-12, o.Force()[1], 100*κ)

	o.SetTrialDeformation([]float64{0, 0, κ, 0.5})
	chk.Float64(tst, "My", 1e-12, o.Force()[2], 100*κ)
	chk.Float64(tst, "T", 1e-3, o.Force()[3], 0.5*DefaultTorsionStiffness)
}

func Test_fibersec04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fibersec04. commit, revert and copies")

	o := square(tst)

	// yield all fibers and commit
	o.SetTrialDeformation([]float64{0.02, 0, 0, 0})
	chk.Float64(tst, "P yield", 1e-12, o.Force()[0], 4)
	chk.Float64(tst, "k00 yield", 1e-12, o.Tangent().At(0, 0), 0)
	chk.Int(tst, "commit", o.Commit(), 0)

	// trial and revert
	o.SetTrialDeformation([]float64{0.015, 0, 0, 0})
	chk.Float64(tst, "P unload", 1e-12, o.Force()[0], 2)
	o.RevertToLastCommit()
	chk.Float64(tst, "P reverted", 1e-12, o.Force()[0], 4)
	chk.Float64(tst, "k00 reverted", 1e-12, o.Tangent().At(0, 0), 0)
	chk.Array(tst, "e reverted", 1e-15, o.Deformation(), []float64{0.02, 0, 0, 0})
	chk.Float64(tst, "T reverted", 1e-15, o.Force()[3], 0)

	// deep copy
	c := o.GetCopy().(*FiberSection3d)
	c.SetTrialDeformation([]float64{0, 0, 0, 0})
	chk.Float64(tst, "P of source", 1e-12, o.Force()[0], 4)
	chk.Float64(tst, "P copy", 1e-12, c.Force()[0], -4)

	// start
	o.RevertToStart()
	chk.Array(tst, "s start", 1e-15, o.Force(), []float64{0, 0, 0, 0})
	chk.Float64(tst, "k00 start", 1e-12, o.Tangent().At(0, 0), 400)
	chk.Float64(tst, "k33 start", 1e-12, o.Tangent().At(3, 3), DefaultTorsionStiffness)
}

func Test_fibersec05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fibersec05. persistence and responses")

	o := square(tst)
	o.SetTrialDeformation([]float64{0.02, 0.001, 0, 0})
	o.Commit()

	var buf bytes.Buffer
	require.NoError(tst, o.SendSelf(3, persist.NewWriter(&buf, "gob")))
	r := new(FiberSection3d)
	require.NoError(tst, r.RecvSelf(3, persist.NewReader(&buf, "gob"), classBroker{}))
	chk.Int(tst, "tag", r.Tag(), 1)
	chk.Int(tst, "nfibers", r.NumFibers(), 4)
	chk.Float64(tst, "ybar", 1e-15, r.YBar, 1)
	chk.Array(tst, "s", 1e-12, r.Force()[:3], o.Force()[:3])

	// responses
	resp, err := o.SetResponse([]string{"forceAndDeformation"})
	require.NoError(tst, err)
	assert.Equal(tst, []string{"eps", "kappaZ", "kappaY", "theta", "P", "Mz", "My", "T"}, resp.Labels())
	assert.Len(tst, resp.Values(), 8)

	resp, err = o.SetResponse([]string{"fiberData"})
	require.NoError(tst, err)
	assert.Len(tst, resp.Values(), 20)

	resp, err = o.SetResponse([]string{"fiber", "0", "stress"})
	require.NoError(tst, err)
	chk.Float64(tst, "fiber 0 stress", 1e-14, resp.Values()[0], o.Mats[0].Stress())

	resp, err = o.SetResponse([]string{"fiber", "1.6", "1.4", "strain"})
	require.NoError(tst, err)
	chk.Float64(tst, "closest strain", 1e-14, resp.Values()[0], o.Mats[3].Strain())

	resp, err = o.SetResponse([]string{"sectionFailed"})
	require.NoError(tst, err)
	chk.Float64(tst, "failed", 1e-15, resp.Values()[0], 0)

	_, err = o.SetResponse([]string{"banana"})
	assert.Error(tst, err)

	// parameters
	require.NoError(tst, o.SetParameter([]string{"material", "1", "E"}, 50))
	o.RevertToStart()
	chk.Float64(tst, "k00 new E", 1e-12, o.InitialTangent().At(0, 0), 200)
	assert.Error(tst, o.SetParameter([]string{"banana"}, 1))
}
