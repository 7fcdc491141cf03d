// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/dct328/gosees/inp"
	"github.com/dct328/gosees/mdl/frict"
	"github.com/dct328/gosees/mdl/uniax"
	"github.com/dct328/gosees/sec"

	"github.com/cpmech/gosl/chk"
)

// Broker allocates blank sub-models of elements when receiving their state
type Broker interface {
	sec.Broker
	NewFrictionModel(classTag int) (frict.Model, error)
	NewSection(classTag int) (sec.Section, error)
}

// Library holds the materials, friction models and sections of a model, by tag.
// Elements copy what they take from the library.
type Library struct {
	Ndim int                 // space dimension
	Mats map[int]uniax.Model // uniaxial materials
	Frns map[int]frict.Model // friction models
	Secs map[int]sec.Section // sections
}

// NewLibrary allocates and initialises all models in sim
func NewLibrary(sim *inp.Simulation) (o *Library, err error) {
	o = &Library{
		Ndim: sim.Data.Ndim,
		Mats: make(map[int]uniax.Model),
		Frns: make(map[int]frict.Model),
		Secs: make(map[int]sec.Section),
	}
	for _, m := range sim.Materials {
		mdl, err := uniax.New(m.Model)
		if err != nil {
			return nil, err
		}
		if err = mdl.Init(m.Tag, m.Prms.Dbf()); err != nil {
			return nil, chk.Err("cannot initialise material %d:\n%v", m.Tag, err)
		}
		o.Mats[m.Tag] = mdl
	}
	for _, f := range sim.Frictions {
		mdl, err := frict.New(f.Model)
		if err != nil {
			return nil, err
		}
		if err = mdl.Init(f.Tag, f.Prms.Dbf()); err != nil {
			return nil, chk.Err("cannot initialise friction model %d:\n%v", f.Tag, err)
		}
		o.Frns[f.Tag] = mdl
	}
	for _, s := range sim.Sections {
		if o.Secs[s.Tag], err = o.newSection(s); err != nil {
			return nil, err
		}
	}
	return
}

// newSection builds a fiber section from individual fibers and patches
func (o *Library) newSection(s *inp.SectionData) (sec.Section, error) {
	if s.Type != "fiber3d" && s.Type != "" {
		return nil, chk.Err("section %d: type %q is not available", s.Tag, s.Type)
	}
	var torsion uniax.Model
	if s.Torsion != 0 {
		torsion = o.Mats[s.Torsion]
	}
	ns := len(s.Fibers)
	for _, p := range s.Patches {
		ns += p.Ny * p.Nz
	}
	res := sec.NewFiberSection3dEmpty(s.Tag, ns, torsion)
	for _, f := range s.Fibers {
		res.AddFiber(sec.Fiber{Y: f.Y, Z: f.Z, A: f.A}, o.Mats[f.Mat])
	}
	for _, p := range s.Patches {
		patch, err := sec.NewRectPatch(p.Ya, p.Za, p.Yb, p.Zb, p.Ny, p.Nz)
		if err != nil {
			return nil, chk.Err("section %d: %v", s.Tag, err)
		}
		n := patch.NumFibers()
		y, z, a := make([]float64, n), make([]float64, n), make([]float64, n)
		patch.FiberLocations(n, y, z)
		patch.FiberWeights(n, a)
		for i := 0; i < n; i++ {
			res.AddFiber(sec.Fiber{Y: y[i], Z: z[i], A: a[i]}, o.Mats[p.Mat])
		}
	}
	return res, nil
}

// Mat returns a copy of a material
func (o *Library) Mat(tag int) (uniax.Model, error) {
	if m, ok := o.Mats[tag]; ok {
		return m.GetCopy(), nil
	}
	return nil, chk.Err("cannot find uniaxial material %d", tag)
}

// Frn returns a copy of a friction model
func (o *Library) Frn(tag int) (frict.Model, error) {
	if m, ok := o.Frns[tag]; ok {
		return m.GetCopy(), nil
	}
	return nil, chk.Err("cannot find friction model %d", tag)
}

// Sec returns a copy of a section
func (o *Library) Sec(tag int) (sec.Section, error) {
	if s, ok := o.Secs[tag]; ok {
		return s.GetCopy(), nil
	}
	return nil, chk.Err("cannot find section %d", tag)
}
