// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/dct328/gosees/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// SetInitial sets initial displacements or velocities with functions of the nodal coordinates
//  Note: accelerations start from zero; i.e. initial displacements should be in equilibrium
func (o *Domain) SetInitial(ini []*inp.InitialData) (err error) {
	if len(ini) == 0 {
		return
	}
	for _, d := range ini {

		// function
		var fcn dbf.T
		fcn, err = inp.NewFunc(d.Fcn, d.Prms)
		if err != nil {
			return chk.Err("cannot allocate function %q for initial %s:\n%v", d.Fcn, d.Kind, err)
		}

		// nodes
		nodes := o.Nodes
		if len(d.Nodes) > 0 {
			nodes = make([]*Node, len(d.Nodes))
			for i, tag := range d.Nodes {
				if nodes[i] = o.GetNode(tag); nodes[i] == nil {
					return chk.Err("cannot find node %d for setting initial %s", tag, d.Kind)
				}
			}
		}

		// set values
		for _, n := range nodes {
			if d.Dof >= n.Ndf() || n.Eqs[d.Dof] < 0 {
				if len(d.Nodes) > 0 {
					return chk.Err("DOF %d of node %d is fixed or does not exist. cannot set initial %s", d.Dof, n.Id, d.Kind)
				}
				continue
			}
			v := fcn.F(0, n.X)
			switch d.Kind {
			case "disp":
				n.Uc[d.Dof] = v
			case "vel":
				n.Vc[d.Dof] = v
			default:
				return chk.Err("initial values of %q cannot be set; options are \"disp\" and \"vel\"", d.Kind)
			}
		}
	}
	for _, n := range o.Nodes {
		n.RevertToLastCommit()
	}
	o.Update()
	return
}
