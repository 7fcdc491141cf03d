// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"math"
	"strconv"

	"github.com/dct328/gosees/mdl/uniax"
	"github.com/dct328/gosees/persist"
	"github.com/dct328/gosees/response"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// DefaultTorsionStiffness is the stiffness of the elastic torsion material
// created when none is given
const DefaultTorsionStiffness = 1.0e10

// sectionCodes holds the order of generalised deformations: (P, Mz, My, T)
var sectionCodes = []int{RespP, RespMz, RespMy, RespT}

// Fiber holds the location and area of one fiber
type Fiber struct {
	Y, Z float64 // location
	A    float64 // area
}

// FiberSection3d implements a 3D section discretised into uniaxial fibers plus
// an uncoupled torsion material.
//
//  strain at fiber i:  ε_i = e0 - y_i⋅e1 + z_i⋅e2
//  with y_i and z_i measured from the area centroid
//
type FiberSection3d struct {

	// data
	Fibers  []Fiber         // fiber locations and areas
	Mats    []uniax.Model   // one material per fiber
	Torsion uniax.Model     // torsion material
	Strat   Integration     // section integration strategy; may be nil
	YBar    float64         // centroid y
	ZBar    float64         // centroid z
	abar    float64         // total area
	qzbar   float64         // first moment Σ y A
	qybar   float64         // first moment Σ z A

	// state
	e       []float64  // trial deformations
	eCommit []float64  // committed deformations
	s       []float64  // stress resultants
	ks      *mat.Dense // tangent
	tag     int
}

// NewFiberSection3d returns a section made of the given fibers. Materials are
// copied; the torsion material is copied too or, if nil, an elastic material
// with DefaultTorsionStiffness is used.
func NewFiberSection3d(tag int, fibers []Fiber, mats []uniax.Model, torsion uniax.Model) (o *FiberSection3d, err error) {
	if len(fibers) != len(mats) {
		return nil, chk.Err("fiber section %d: number of fibers (%d) and materials (%d) differ", tag, len(fibers), len(mats))
	}
	o = NewFiberSection3dEmpty(tag, len(fibers), torsion)
	for i, f := range fibers {
		if mats[i] == nil {
			return nil, chk.Err("fiber section %d: material of fiber %d is missing", tag, i)
		}
		o.AddFiber(f, mats[i])
	}
	return
}

// NewFiberSection3dEmpty returns a section without fibers and with room for capacity fibers
func NewFiberSection3dEmpty(tag, capacity int, torsion uniax.Model) (o *FiberSection3d) {
	o = new(FiberSection3d)
	o.tag = tag
	o.Fibers = make([]Fiber, 0, capacity)
	o.Mats = make([]uniax.Model, 0, capacity)
	if torsion == nil {
		o.Torsion = uniax.NewElastic(0, DefaultTorsionStiffness, 0)
	} else {
		o.Torsion = torsion.GetCopy()
	}
	o.e = make([]float64, 4)
	o.eCommit = make([]float64, 4)
	o.s = make([]float64, 4)
	o.ks = mat.NewDense(4, 4, nil)
	o.ks.Set(3, 3, o.Torsion.Tangent())
	o.s[3] = o.Torsion.Stress()
	return
}

// NewFiberSection3dStrat returns a section whose fiber locations and areas are
// given by an integration strategy; one material per fiber
func NewFiberSection3dStrat(tag int, mats []uniax.Model, strat Integration, torsion uniax.Model) (o *FiberSection3d, err error) {
	n := strat.NumFibers()
	if n != len(mats) {
		return nil, chk.Err("fiber section %d: integration has %d fibers but %d materials were given", tag, n, len(mats))
	}
	y, z, w := make([]float64, n), make([]float64, n), make([]float64, n)
	strat.FiberLocations(n, y, z)
	strat.FiberWeights(n, w)
	fibers := make([]Fiber, n)
	for i := 0; i < n; i++ {
		fibers[i] = Fiber{y[i], z[i], w[i]}
	}
	o, err = NewFiberSection3d(tag, fibers, mats, torsion)
	if err != nil {
		return
	}
	o.Strat = strat.GetCopy()
	return
}

// AddFiber appends a fiber with a copy of the given material and updates the centroid
func (o *FiberSection3d) AddFiber(f Fiber, m uniax.Model) {
	if len(o.Fibers) == cap(o.Fibers) {
		n := 2*cap(o.Fibers) + 1
		fibers := make([]Fiber, len(o.Fibers), n)
		mats := make([]uniax.Model, len(o.Mats), n)
		copy(fibers, o.Fibers)
		copy(mats, o.Mats)
		o.Fibers, o.Mats = fibers, mats
	}
	o.Fibers = append(o.Fibers, f)
	o.Mats = append(o.Mats, m.GetCopy())
	o.abar += f.A
	o.qzbar += f.Y * f.A
	o.qybar += f.Z * f.A
	o.centroid()
}

// centroid computes YBar and ZBar from the accumulated moments
func (o *FiberSection3d) centroid() {
	if o.abar != 0 {
		o.YBar = o.qzbar / o.abar
		o.ZBar = o.qybar / o.abar
	} else {
		o.YBar, o.ZBar = 0, 0
	}
}

// NumFibers returns the number of fibers
func (o *FiberSection3d) NumFibers() int { return len(o.Fibers) }

// Tag returns the section tag
func (o *FiberSection3d) Tag() int { return o.tag }

// ClassTag returns the class tag
func (o *FiberSection3d) ClassTag() int { return ClassFiberSection3d }

// Order returns 4
func (o *FiberSection3d) Order() int { return 4 }

// Type returns the codes (P, Mz, My, T)
func (o *FiberSection3d) Type() []int { return sectionCodes }

// SetTrialDeformation sets trial deformations and integrates fiber responses
func (o *FiberSection3d) SetTrialDeformation(e []float64) (res int) {
	copy(o.e, e)
	o.s[0], o.s[1], o.s[2] = 0, 0, 0
	o.ks.Zero()
	for i, f := range o.Fibers {
		y := f.Y - o.YBar
		z := f.Z - o.ZBar
		res += o.Mats[i].SetTrialStrain(e[0]-y*e[1]+z*e[2], 0)
		o.addFiberResponse(y, z, f.A, o.Mats[i].Stress(), o.Mats[i].Tangent(), o.ks, o.s)
	}
	res += o.Torsion.SetTrialStrain(e[3], 0)
	o.ks.Set(3, 3, o.Torsion.Tangent())
	o.s[3] = o.Torsion.Stress()
	return
}

// addFiberResponse adds the contribution of one fiber to ks and s
func (o *FiberSection3d) addFiberResponse(y, z, A, σ, tangent float64, ks *mat.Dense, s []float64) {
	tA := tangent * A
	k00 := ks.At(0, 0) + tA
	k01 := ks.At(0, 1) - y*tA
	k02 := ks.At(0, 2) + z*tA
	k11 := ks.At(1, 1) + y*y*tA
	k12 := ks.At(1, 2) - y*z*tA
	k22 := ks.At(2, 2) + z*z*tA
	ks.Set(0, 0, k00)
	ks.Set(0, 1, k01)
	ks.Set(1, 0, k01)
	ks.Set(0, 2, k02)
	ks.Set(2, 0, k02)
	ks.Set(1, 1, k11)
	ks.Set(1, 2, k12)
	ks.Set(2, 1, k12)
	ks.Set(2, 2, k22)
	if s != nil {
		fA := σ * A
		s[0] += fA
		s[1] -= y * fA
		s[2] += z * fA
	}
}

// Deformation returns the trial deformations
func (o *FiberSection3d) Deformation() []float64 { return o.e }

// Force returns the stress resultants
func (o *FiberSection3d) Force() []float64 { return o.s }

// Tangent returns the section tangent
func (o *FiberSection3d) Tangent() *mat.Dense { return o.ks }

// InitialTangent returns the section tangent computed with initial material tangents
func (o *FiberSection3d) InitialTangent() *mat.Dense {
	k := mat.NewDense(4, 4, nil)
	for i, f := range o.Fibers {
		o.addFiberResponse(f.Y-o.YBar, f.Z-o.ZBar, f.A, 0, o.Mats[i].InitialTangent(), k, nil)
	}
	k.Set(3, 3, o.Torsion.InitialTangent())
	return k
}

// Commit commits all fibers and the torsion material
func (o *FiberSection3d) Commit() (res int) {
	for _, m := range o.Mats {
		res += m.Commit()
	}
	res += o.Torsion.Commit()
	copy(o.eCommit, o.e)
	return
}

// RevertToLastCommit reverts all materials and recomputes s and ks from their committed state
func (o *FiberSection3d) RevertToLastCommit() (res int) {
	copy(o.e, o.eCommit)
	return o.revert(func(m uniax.Model) int { return m.RevertToLastCommit() })
}

// RevertToStart clears the history of all materials
func (o *FiberSection3d) RevertToStart() (res int) {
	for i := range o.e {
		o.e[i], o.eCommit[i] = 0, 0
	}
	return o.revert(func(m uniax.Model) int { return m.RevertToStart() })
}

func (o *FiberSection3d) revert(fcn func(m uniax.Model) int) (res int) {
	o.s[0], o.s[1], o.s[2] = 0, 0, 0
	o.ks.Zero()
	for i, f := range o.Fibers {
		m := o.Mats[i]
		res += fcn(m)
		o.addFiberResponse(f.Y-o.YBar, f.Z-o.ZBar, f.A, m.Stress(), m.Tangent(), o.ks, o.s)
	}
	res += fcn(o.Torsion)
	o.ks.Set(3, 3, o.Torsion.Tangent())
	o.s[3] = o.Torsion.Stress()
	return
}

// GetCopy returns a deep copy
func (o *FiberSection3d) GetCopy() Section {
	c := NewFiberSection3dEmpty(o.tag, len(o.Fibers), o.Torsion)
	for i, f := range o.Fibers {
		c.AddFiber(f, o.Mats[i])
	}
	if o.Strat != nil {
		c.Strat = o.Strat.GetCopy()
	}
	copy(c.e, o.e)
	copy(c.eCommit, o.eCommit)
	copy(c.s, o.s)
	c.ks.Copy(o.ks)
	return c
}

// SendSelf sends tags, fiber data and the state of every material
func (o *FiberSection3d) SendSelf(commitTag int, ch persist.Channel) (err error) {
	n := len(o.Fibers)
	if err = ch.SendID(commitTag, []int{o.tag, n, o.Torsion.ClassTag()}); err != nil {
		return
	}
	if err = o.Torsion.SendSelf(commitTag, ch); err != nil {
		return
	}
	if n == 0 {
		return
	}
	ids := make([]int, 2*n)
	data := make([]float64, 3*n)
	for i, f := range o.Fibers {
		ids[2*i] = o.Mats[i].ClassTag()
		data[3*i], data[3*i+1], data[3*i+2] = f.Y, f.Z, f.A
	}
	if err = ch.SendID(commitTag, ids); err != nil {
		return
	}
	if err = ch.SendVector(commitTag, data); err != nil {
		return
	}
	for _, m := range o.Mats {
		if err = m.SendSelf(commitTag, ch); err != nil {
			return
		}
	}
	return
}

// RecvSelf restores the section; blank materials are obtained from the broker
func (o *FiberSection3d) RecvSelf(commitTag int, ch persist.Channel, b Broker) (err error) {
	tags := make([]int, 3)
	if err = ch.RecvID(commitTag, tags); err != nil {
		return
	}
	o.tag = tags[0]
	n := tags[1]
	if o.Torsion == nil || o.Torsion.ClassTag() != tags[2] {
		if o.Torsion, err = b.NewUniaxialMaterial(tags[2]); err != nil {
			return
		}
	}
	if err = o.Torsion.RecvSelf(commitTag, ch); err != nil {
		return
	}
	if o.e == nil {
		o.e, o.eCommit, o.s = make([]float64, 4), make([]float64, 4), make([]float64, 4)
		o.ks = mat.NewDense(4, 4, nil)
	}
	o.Fibers, o.Mats = make([]Fiber, n), make([]uniax.Model, n)
	o.abar, o.qzbar, o.qybar = 0, 0, 0
	if n > 0 {
		ids := make([]int, 2*n)
		data := make([]float64, 3*n)
		if err = ch.RecvID(commitTag, ids); err != nil {
			return
		}
		if err = ch.RecvVector(commitTag, data); err != nil {
			return
		}
		for i := 0; i < n; i++ {
			if o.Mats[i], err = b.NewUniaxialMaterial(ids[2*i]); err != nil {
				return
			}
			if err = o.Mats[i].RecvSelf(commitTag, ch); err != nil {
				return
			}
			f := Fiber{data[3*i], data[3*i+1], data[3*i+2]}
			o.Fibers[i] = f
			o.abar += f.A
			o.qzbar += f.Y * f.A
			o.qybar += f.Z * f.A
		}
	}
	o.centroid()
	o.RevertToLastCommit()
	return
}

// FailedFibers returns the number of fibers whose material has failed
func (o *FiberSection3d) FailedFibers() (count int) {
	for _, m := range o.Mats {
		if m.HasFailed() {
			count++
		}
	}
	return
}

// closest returns the index of the fiber closest to (y,z); if matTag >= 0
// only fibers with that material tag are considered. Returns -1 if none.
func (o *FiberSection3d) closest(y, z float64, matTag int) (key int) {
	key = -1
	dmin := math.Inf(1)
	for i, f := range o.Fibers {
		if matTag >= 0 && o.Mats[i].Tag() != matTag {
			continue
		}
		d := (f.Y-y)*(f.Y-y) + (f.Z-z)*(f.Z-z)
		if d < dmin {
			dmin, key = d, i
		}
	}
	return
}

// SetResponse returns handles to section results
//  deformation(s)       ⇒ e
//  force(s)             ⇒ s
//  forceAndDeformation  ⇒ e then s
//  fiberData            ⇒ (y, z, A, σ, ε) for each fiber
//  numFailedFiber       ⇒ number of failed fibers
//  sectionFailed        ⇒ 1 when all fibers failed
//  fiber i args...          ⇒ response of fiber i
//  fiber y z args...        ⇒ response of the closest fiber
//  fiber y z matTag args... ⇒ response of the closest fiber with matTag
func (o *FiberSection3d) SetResponse(args []string) (response.Response, error) {
	if len(args) == 0 {
		return nil, response.ErrUnknown(o.String(), args)
	}
	defs, forces := codeLabels(sectionCodes)
	key := args[0]
	switch {
	case response.Match(key, "deformations", "deformation"):
		return response.New(defs, func() []float64 { return append([]float64{}, o.e...) }), nil
	case response.Match(key, "forces", "force"):
		return response.New(forces, func() []float64 { return append([]float64{}, o.s...) }), nil
	case key == "forceAndDeformation":
		return response.New(append(append([]string{}, defs...), forces...), func() []float64 {
			return append(append([]float64{}, o.e...), o.s...)
		}), nil
	case key == "fiberData":
		return response.New(nil, func() []float64 {
			res := make([]float64, 0, 5*len(o.Fibers))
			for i, f := range o.Fibers {
				res = append(res, f.Y, f.Z, f.A, o.Mats[i].Stress(), o.Mats[i].Strain())
			}
			return res
		}), nil
	case response.Match(key, "numFailedFiber", "numFiberFailed"):
		return response.Scalar("numFailed", func() float64 { return float64(o.FailedFibers()) }), nil
	case response.Match(key, "sectionFailed", "hasSectionFailed", "hasFailed"):
		return response.Scalar("failed", func() float64 {
			if len(o.Fibers) > 0 && o.FailedFibers() == len(o.Fibers) {
				return 1
			}
			return 0
		}), nil
	case key == "fiber":
		return o.fiberResponse(args)
	}
	return nil, response.ErrUnknown(o.String(), args)
}

// fiberResponse selects a fiber and forwards the remaining arguments to its material
func (o *FiberSection3d) fiberResponse(args []string) (response.Response, error) {
	argc := len(args)
	if argc < 3 {
		return nil, response.ErrUnknown(o.String(), args)
	}
	var key, next int
	switch {
	case argc <= 3:
		i, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, chk.Err("fiber section %d: invalid fiber index %q", o.tag, args[1])
		}
		key, next = i, 2
	default:
		y, erry := strconv.ParseFloat(args[1], 64)
		z, errz := strconv.ParseFloat(args[2], 64)
		if erry != nil || errz != nil {
			return nil, chk.Err("fiber section %d: invalid fiber location (%q,%q)", o.tag, args[1], args[2])
		}
		matTag := -1
		next = 3
		if argc > 4 {
			if mt, err := strconv.Atoi(args[3]); err == nil {
				matTag, next = mt, 4
			}
		}
		key = o.closest(y, z, matTag)
	}
	if key < 0 || key >= len(o.Fibers) {
		return nil, chk.Err("fiber section %d: cannot find fiber for %v", o.tag, args[1:])
	}
	return o.Mats[key].SetResponse(args[next:])
}

// SetParameter changes a parameter of the materials. With args = ["material", tag, name]
// only fibers (and the torsion material) with that tag are changed; otherwise args[0] is the
// parameter name applied to all materials. Returns an error if no material accepted it.
func (o *FiberSection3d) SetParameter(args []string, v float64) (err error) {
	if len(args) == 0 {
		return chk.Err("fiber section %d: parameter name is missing", o.tag)
	}
	matTag, name := -1, args[0]
	if args[0] == "material" {
		if len(args) < 3 {
			return chk.Err("fiber section %d: 'material' requires a tag and a parameter name", o.tag)
		}
		if matTag, err = strconv.Atoi(args[1]); err != nil {
			return chk.Err("fiber section %d: invalid material tag %q", o.tag, args[1])
		}
		name = args[2]
	}
	found := 0
	for _, m := range append([]uniax.Model{o.Torsion}, o.Mats...) {
		if matTag >= 0 && m.Tag() != matTag {
			continue
		}
		if m.SetParameter(name, v) == nil {
			found++
		}
	}
	if found == 0 {
		return chk.Err("fiber section %d: no material accepted parameter %q", o.tag, name)
	}
	return nil
}

// String returns a summary
func (o *FiberSection3d) String() string {
	l := io.Sf("FiberSection3d, tag: %d\n", o.tag)
	l += io.Sf("  Section code: PMzMyT\n")
	l += io.Sf("  Number of fibers: %d\n", len(o.Fibers))
	l += io.Sf("  Centroid: (%g, %g)\n", o.YBar, o.ZBar)
	l += io.Sf("  Torsion: %s", o.Torsion.String())
	return l
}
