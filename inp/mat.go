// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Prm holds one parameter as written in model files; e.g. {n: E, v: 200}
type Prm struct {
	N string  `yaml:"n"` // name
	V float64 `yaml:"v"` // value
}

// Prms holds parameters
type Prms []Prm

// Dbf converts the parameters to the format used by models
func (o Prms) Dbf() (prms dbf.Params) {
	prms = make(dbf.Params, len(o))
	for i, p := range o {
		prms[i] = &dbf.P{N: p.N, V: p.V}
	}
	return
}

// Get returns the value of a parameter or the default if it is not present
func (o Prms) Get(name string, dflt float64) float64 {
	for _, p := range o {
		if p.N == name {
			return p.V
		}
	}
	return dflt
}

// Has tells whether a parameter is present
func (o Prms) Has(name string) bool {
	for _, p := range o {
		if p.N == name {
			return true
		}
	}
	return false
}

// MatData holds data of uniaxial materials and friction models
type MatData struct {
	Tag   int    `yaml:"tag"`   // tag of material
	Model string `yaml:"model"` // name of model; e.g. "elastic-pp", "coulomb"
	Prms  Prms   `yaml:"prms"`  // model parameters
}

// FiberData holds one fiber of a section
type FiberData struct {
	Y   float64 `yaml:"y"`   // location
	Z   float64 `yaml:"z"`   // location
	A   float64 `yaml:"a"`   // area
	Mat int     `yaml:"mat"` // material tag
}

// PatchData holds a rectangular patch of fibers
type PatchData struct {
	Mat int     `yaml:"mat"` // material tag
	Ya  float64 `yaml:"ya"`  // first corner
	Za  float64 `yaml:"za"`  // first corner
	Yb  float64 `yaml:"yb"`  // opposite corner
	Zb  float64 `yaml:"zb"`  // opposite corner
	Ny  int     `yaml:"ny"`  // divisions along y
	Nz  int     `yaml:"nz"`  // divisions along z
}

// SectionData holds section data
type SectionData struct {
	Tag     int          `yaml:"tag"`     // tag of section
	Type    string       `yaml:"type"`    // type of section; e.g. "fiber3d"
	Torsion int          `yaml:"torsion"` // tag of torsion material; 0 => elastic with large stiffness
	Fibers  []*FiberData `yaml:"fibers"`  // individual fibers
	Patches []*PatchData `yaml:"patches"` // rectangular patches
}

// MatsData holds materials
type MatsData []*MatData

// Get returns material by tag
//  Note: returns nil if not found
func (o MatsData) Get(tag int) *MatData {
	for _, m := range o {
		if m.Tag == tag {
			return m
		}
	}
	return nil
}

// check checks for duplicated tags and missing models
func (o MatsData) check(kind string) (err error) {
	tags := make(map[int]bool)
	for _, m := range o {
		if tags[m.Tag] {
			return chk.Err("%s tag %d is duplicated", kind, m.Tag)
		}
		tags[m.Tag] = true
		if m.Model == "" {
			return chk.Err("%s %d: model name is missing", kind, m.Tag)
		}
	}
	return
}

// String prints one material
func (o MatData) String() string {
	l := io.Sf("  {tag: %d, model: %q, prms: [", o.Tag, o.Model)
	for i, p := range o.Prms {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{n: %s, v: %g}", p.N, p.V)
	}
	return l + "]}"
}
