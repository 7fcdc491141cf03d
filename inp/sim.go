// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of models from YAML files
package inp

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `yaml:"desc"`    // description of simulation
	DirOut  string `yaml:"dirout"`  // directory for output; e.g. /tmp/gosees
	Encoder string `yaml:"encoder"` // encoder name; e.g. "gob" "json"
	Ndim    int    `yaml:"ndim"`    // space dimension; 2 or 3
}

// NodeData holds node data
type NodeData struct {
	Tag  int       `yaml:"tag"`  // tag of node
	Crds []float64 `yaml:"crds"` // coordinates
	Ndf  int       `yaml:"ndf"`  // number of degrees of freedom; 0 => 3 in 2D and 6 in 3D
	Mass []float64 `yaml:"mass"` // lumped mass; one value per DOF
	Fix  []int     `yaml:"fix"`  // fixed DOFs; e.g. [0, 1, 2]
}

// ElemData holds element data
type ElemData struct {
	Tag   int       `yaml:"tag"`   // tag of element
	Type  string    `yaml:"type"`  // type of element; e.g. "flat-slider-3d", "zero-length", "elastic-beam-2d"
	Nodes []int     `yaml:"nodes"` // node tags
	Mats  []int     `yaml:"mats"`  // uniaxial material tags
	Dirs  []int     `yaml:"dirs"`  // directions of materials (zero-length)
	Frn   int       `yaml:"frn"`   // friction model tag
	Sec   int       `yaml:"sec"`   // section tag
	X     []float64 `yaml:"x"`     // local x-axis
	Yp    []float64 `yaml:"yp"`    // vector in the local x-y plane
	Prms  Prms      `yaml:"prms"`  // element parameters
}

// SolverData holds analysis data
type SolverData struct {
	Integrator string  `yaml:"integrator"` // "load-control", "collocation", "collocation-hs-incr-reduct"
	Prms       Prms    `yaml:"prms"`       // integrator parameters; e.g. theta, beta, gamma, reduct, dlambda
	Dt         float64 `yaml:"dt"`         // time step
	Nsteps     int     `yaml:"nsteps"`     // number of steps
	NmaxIt     int     `yaml:"nmaxit"`     // max number of Newton iterations
	Tol        float64 `yaml:"tol"`        // tolerance on the norm of the unbalanced force
	ShowR      bool    `yaml:"showr"`      // show residual
}

// RecorderData holds recorders
//  node    -- Args are DOF response keys; e.g. ["disp", "0"]
//  element -- Args are passed to the element SetResponse
type RecorderData struct {
	Key  string   `yaml:"key"`  // name of recorder; also the file key
	Type string   `yaml:"type"` // "node" or "element"
	Tag  int      `yaml:"tag"`  // tag of node or element
	Args []string `yaml:"args"` // response arguments
}

// PlotData holds data to plot one recorded component against another
type PlotData struct {
	Key    string `yaml:"key"`    // filename key
	Xrec   string `yaml:"xrec"`   // recorder for the x-axis
	Xidx   int    `yaml:"xidx"`   // component of the x recorder
	Yrec   string `yaml:"yrec"`   // recorder for the y-axis
	Yidx   int    `yaml:"yidx"`   // component of the y recorder
	Xlabel string `yaml:"xlabel"` // label of x-axis
	Ylabel string `yaml:"ylabel"` // label of y-axis
}

// InitialData holds initial nodal values given by a function of the coordinates
//  e.g. {kind: vel, dof: 0, nodes: [2], fcn: cte, prms: [{n: c, v: 1}]}
type InitialData struct {
	Kind  string `yaml:"kind"`  // "disp" or "vel"
	Dof   int    `yaml:"dof"`   // DOF index
	Nodes []int  `yaml:"nodes"` // nodes; empty means all nodes with this free DOF
	Fcn   string `yaml:"fcn"`   // name of gosl function; e.g. "cte"
	Prms  Prms   `yaml:"prms"`  // parameters of function
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data            `yaml:"data"`      // global data
	Nodes     []*NodeData     `yaml:"nodes"`     // nodes
	Materials MatsData        `yaml:"materials"` // uniaxial materials
	Frictions MatsData        `yaml:"frictions"` // friction models
	Sections  []*SectionData  `yaml:"sections"`  // sections
	Elements  []*ElemData     `yaml:"elements"`  // elements
	Series    SeriesSet       `yaml:"series"`    // time series
	Patterns  []*PatternData  `yaml:"patterns"`  // load patterns
	Initial   []*InitialData  `yaml:"initial"`   // initial values
	Solver    SolverData      `yaml:"solver"`    // analysis data
	Recorders []*RecorderData `yaml:"recorders"` // recorders
	Plots     []*PlotData     `yaml:"plots"`     // plots

	// derived
	DirOut  string // directory to save results
	Key     string // simulation key; e.g. slider01.yaml => slider01 or slider01-alias
	EncType string // encoder type
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Integrator = "load-control"
	o.Dt = 1
	o.Nsteps = 1
	o.NmaxIt = 20
	o.Tol = 1e-8
}

// ReadSim reads all simulation data from a YAML file
func ReadSim(simfilepath, alias string, erasePrev, createDirOut bool) (o *Simulation, err error) {

	// read file
	b, err := ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode and check
	o, err = ParseSim(b)
	if err != nil {
		return nil, chk.Err("simulation file %q is invalid:\n%v", simfilepath, err)
	}

	// filename key
	o.Key = io.FnKey(filepath.Base(simfilepath))
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = filepath.Join(os.TempDir(), "gosees", o.Key)
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}
	return
}

// ParseSim decodes and checks simulation data. Unknown keys are errors.
func ParseSim(b []byte) (o *Simulation, err error) {
	o = new(Simulation)
	o.Solver.SetDefault()
	decoder := yaml.NewDecoder(bytes.NewReader(b))
	decoder.KnownFields(true)
	if err = decoder.Decode(o); err != nil {
		return nil, chk.Err("cannot decode simulation data:\n%v", err)
	}
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}
	o.Key = "sim"
	if err = o.Check(); err != nil {
		return nil, err
	}
	return
}

// Check checks the consistency of tags
func (o *Simulation) Check() (err error) {

	// space dimension
	if o.Data.Ndim == 0 {
		o.Data.Ndim = 3
	}
	if o.Data.Ndim != 2 && o.Data.Ndim != 3 {
		return chk.Err("space dimension must be 2 or 3. ndim=%d is invalid", o.Data.Ndim)
	}

	// nodes
	nodes := make(map[int]bool)
	for _, n := range o.Nodes {
		if nodes[n.Tag] {
			return chk.Err("node tag %d is duplicated", n.Tag)
		}
		nodes[n.Tag] = true
		if n.Ndf == 0 {
			n.Ndf = 3 * (o.Data.Ndim - 1)
		}
		if len(n.Mass) > 0 && len(n.Mass) != n.Ndf {
			return chk.Err("node %d: mass must have %d values. %d is invalid", n.Tag, n.Ndf, len(n.Mass))
		}
		for _, dof := range n.Fix {
			if dof < 0 || dof >= n.Ndf {
				return chk.Err("node %d: cannot fix DOF %d", n.Tag, dof)
			}
		}
	}

	// materials and friction models
	if err = o.Materials.check("material"); err != nil {
		return
	}
	if err = o.Frictions.check("friction model"); err != nil {
		return
	}

	// sections
	for _, s := range o.Sections {
		for _, f := range s.Fibers {
			if o.Materials.Get(f.Mat) == nil {
				return chk.Err("section %d: cannot find material %d", s.Tag, f.Mat)
			}
		}
		for _, p := range s.Patches {
			if o.Materials.Get(p.Mat) == nil {
				return chk.Err("section %d: cannot find material %d", s.Tag, p.Mat)
			}
		}
		if s.Torsion != 0 && o.Materials.Get(s.Torsion) == nil {
			return chk.Err("section %d: cannot find torsion material %d", s.Tag, s.Torsion)
		}
	}

	// elements
	elems := make(map[int]bool)
	for _, e := range o.Elements {
		if elems[e.Tag] {
			return chk.Err("element tag %d is duplicated", e.Tag)
		}
		elems[e.Tag] = true
		for _, n := range e.Nodes {
			if !nodes[n] {
				return chk.Err("element %d: cannot find node %d", e.Tag, n)
			}
		}
		for _, m := range e.Mats {
			if o.Materials.Get(m) == nil {
				return chk.Err("element %d: cannot find material %d", e.Tag, m)
			}
		}
		if e.Frn != 0 && o.Frictions.Get(e.Frn) == nil {
			return chk.Err("element %d: cannot find friction model %d", e.Tag, e.Frn)
		}
	}

	// patterns
	for _, p := range o.Patterns {
		if err = p.check(o.Series); err != nil {
			return
		}
		for _, l := range p.Loads {
			if !nodes[l.Node] {
				return chk.Err("pattern %d: cannot find node %d", p.Tag, l.Node)
			}
		}
	}

	// initial values
	for _, d := range o.Initial {
		if d.Kind != "disp" && d.Kind != "vel" {
			return chk.Err("initial values: kind %q is invalid; options are \"disp\" and \"vel\"", d.Kind)
		}
		for _, n := range d.Nodes {
			if !nodes[n] {
				return chk.Err("initial values: cannot find node %d", n)
			}
		}
	}

	// analysis
	if o.Solver.Dt <= 0 || o.Solver.Nsteps < 1 {
		return chk.Err("analysis needs dt > 0 and nsteps >= 1. dt=%g nsteps=%d", o.Solver.Dt, o.Solver.Nsteps)
	}

	// recorders
	recs := make(map[string]bool)
	for _, r := range o.Recorders {
		if recs[r.Key] {
			return chk.Err("recorder key %q is duplicated", r.Key)
		}
		recs[r.Key] = true
		switch r.Type {
		case "node":
			if !nodes[r.Tag] {
				return chk.Err("recorder %q: cannot find node %d", r.Key, r.Tag)
			}
		case "element":
			if !elems[r.Tag] {
				return chk.Err("recorder %q: cannot find element %d", r.Key, r.Tag)
			}
		default:
			return chk.Err("recorder %q: type %q is invalid; options are \"node\" and \"element\"", r.Key, r.Type)
		}
	}
	for _, p := range o.Plots {
		if !recs[p.Xrec] || !recs[p.Yrec] {
			return chk.Err("plot %q: cannot find recorders %q and %q", p.Key, p.Xrec, p.Yrec)
		}
	}
	return
}

// Node returns node data by tag
//  Note: returns nil if not found
func (o *Simulation) Node(tag int) *NodeData {
	for _, n := range o.Nodes {
		if n.Tag == tag {
			return n
		}
	}
	return nil
}
