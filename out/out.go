// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements recorders of FE simulation results and plotting
package out

import (
	"github.com/dct328/gosees/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sirupsen/logrus"
)

// Global variables
var (

	// data set by Start
	Analysis  *fem.Main            // the fem structure
	Dom       *fem.Domain          // [from Analysis] FE domain
	Recorders []*Recorder          // all recorders, in the order of the simulation file
	RecMap    map[string]*Recorder // maps keys to recorders

	// results collected by Record
	Times []float64 // committed times
)

// Start allocates the recorders of a simulation and hooks them to the analysis
//  Note: Record is called after every converged step and also once by Start to
//        record the initial state
func Start(m *fem.Main) (err error) {
	Analysis = m
	Dom = m.Dom
	Recorders = make([]*Recorder, 0, len(m.Sim.Recorders))
	RecMap = make(map[string]*Recorder)
	Times = nil
	for _, rd := range m.Sim.Recorders {
		r, err := NewRecorder(rd, Dom)
		if err != nil {
			return chk.Err("cannot allocate recorder %q:\n%v", rd.Key, err)
		}
		Recorders = append(Recorders, r)
		RecMap[r.Key] = r
	}
	prev := m.OnStep
	m.OnStep = func(step int) error {
		if prev != nil {
			if err := prev(step); err != nil {
				return err
			}
		}
		Record()
		return nil
	}
	Record()
	return
}

// Record records the current committed state
func Record() {
	Times = append(Times, Dom.TimeC)
	for _, r := range Recorders {
		r.Record(Dom.TimeC)
	}
}

// Get returns the recorded values of one component of a recorder
func Get(key string, idx int) (v []float64, err error) {
	r, ok := RecMap[key]
	if !ok {
		return nil, chk.Err("cannot find recorder %q", key)
	}
	return r.Column(idx)
}

// SaveAll saves the results of all recorders in the output directory
//  Note: files are named {simKey}-{recKey}.txt
func SaveAll() (err error) {
	sim := Analysis.Sim
	for _, r := range Recorders {
		fn := io.Sf("%s-%s.txt", sim.Key, r.Key)
		if err = r.Save(sim.DirOut, fn); err != nil {
			return
		}
		logrus.WithFields(logrus.Fields{"recorder": r.Key, "rows": len(r.Rows)}).Debug("recorder saved")
	}
	if Analysis.ShowMsg {
		io.Pf("> Results saved in %s\n", sim.DirOut)
	}
	return
}
