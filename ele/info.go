// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Info holds information required to check nodes before allocating an element
type Info struct {
	Nnodes int      // number of nodes
	Ndf    int      // DOFs per node; 0 means any
	Dofs   []string // names of DOFs of each node. ex: ["ux", "uy", "rz"]
}

// dofs2d and dofs3d are the DOF names of frame nodes
var (
	dofs2d = []string{"ux", "uy", "rz"}
	dofs3d = []string{"ux", "uy", "uz", "rx", "ry", "rz"}
)

// FrameInfo returns the information of two-node elements with frame DOFs
func FrameInfo(ndim int) *Info {
	if ndim == 2 {
		return &Info{Nnodes: 2, Ndf: 3, Dofs: dofs2d}
	}
	return &Info{Nnodes: 2, Ndf: 6, Dofs: dofs3d}
}
