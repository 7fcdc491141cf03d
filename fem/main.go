// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the domain, integrators and the Newton solver of nonlinear
// structural analyses
package fem

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/dct328/gosees/inp"
	"github.com/dct328/gosees/persist"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for a simulation using the finite element method
type Main struct {
	Sim      *inp.Simulation      // simulation data
	Dom      *Domain              // domain
	Int      Integrator           // integrator
	Analysis *Analysis            // Newton solver
	OnStep   func(step int) error // called after each converged step; e.g. to record results
	ShowMsg  bool                 // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.yaml) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running multiple FE solutions
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
func NewMain(simfilepath, alias string, erasePrev, verbose bool) (o *Main, err error) {
	sim, err := inp.ReadSim(simfilepath, alias, erasePrev, true)
	if err != nil {
		return
	}
	if verbose {
		io.Pf("> Simulation file read\n")
	}
	return NewMainSim(sim, verbose)
}

// NewMainSim returns a new Main structure from simulation data already read
func NewMainSim(sim *inp.Simulation, verbose bool) (o *Main, err error) {
	o = &Main{Sim: sim, ShowMsg: verbose}
	o.Dom, err = NewDomain(sim, verbose)
	if err != nil {
		return nil, chk.Err("cannot allocate domain:\n%v", err)
	}
	o.Int, err = NewIntegrator(&sim.Solver)
	if err != nil {
		return nil, err
	}
	o.Analysis, err = NewAnalysis(o.Dom, o.Int, sim.Solver.NmaxIt, sim.Solver.Tol)
	if err != nil {
		return nil, err
	}
	o.Analysis.ShowR = sim.Solver.ShowR
	if o.ShowMsg {
		io.Pf("> Domain and integrator allocated\n")
		io.Pf("%v\n", o.Int)
	}
	return
}

// Run runs all steps
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Running FE solver\n")
	}

	// time loop
	s := &o.Sim.Solver
	return o.Analysis.Analyze(s.Nsteps, s.Dt, o.OnStep)
}

// StateFilename returns the name of the file with the state of the domain
func (o *Main) StateFilename() string {
	return filepath.Join(o.Sim.DirOut, io.Sf("%s-state.%s", o.Sim.Key, o.Sim.EncType))
}

// SaveState saves the committed state of the domain
func (o *Main) SaveState() (err error) {
	var buf bytes.Buffer
	if err = o.Dom.SaveState(0, persist.NewWriter(&buf, o.Sim.EncType)); err != nil {
		return
	}
	if err = os.WriteFile(o.StateFilename(), buf.Bytes(), 0644); err != nil {
		return chk.Err("cannot save state:\n%v", err)
	}
	if o.ShowMsg {
		io.Pf("> State saved in %s\n", o.StateFilename())
	}
	return
}

// ReadState reads the state saved by SaveState and re-initialises the integrator
func (o *Main) ReadState() (err error) {
	b, err := inp.ReadFile(o.StateFilename())
	if err != nil {
		return chk.Err("cannot read state:\n%v", err)
	}
	if err = o.Dom.ReadState(0, persist.NewReader(bytes.NewReader(b), o.Sim.EncType)); err != nil {
		return
	}
	return o.Int.DomainChanged(o.Dom)
}

// onexit prints the final message with the cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) error {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
