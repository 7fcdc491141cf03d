// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Node defines what elements need from nodes. Elements reference nodes but never own them.
type Node interface {
	Tag() int
	Ndf() int                     // number of degrees of freedom
	Crds() []float64              // coordinates
	Disp() []float64              // committed displacements
	TrialDisp() []float64         // trial displacements
	TrialVel() []float64          // trial velocities
	TrialAccel() []float64        // trial accelerations
	RV(accel []float64) []float64 // influence of a ground acceleration on each DOF
}

// NodeProvider returns nodes by tag
type NodeProvider interface {
	Node(tag int) Node // returns nil if not found
}

// FindNodes returns the nodes of an element checking the number of DOFs
func FindNodes(d NodeProvider, etag int, tags []int, ndf int) (nodes []Node, err error) {
	nodes = make([]Node, len(tags))
	for i, tag := range tags {
		nodes[i] = d.Node(tag)
		if nodes[i] == nil {
			return nil, errNode(etag, tag)
		}
		if ndf > 0 && nodes[i].Ndf() != ndf {
			return nil, errNdf(etag, tag, nodes[i].Ndf(), ndf)
		}
	}
	return
}

// FreeNode implements Node with plain slices; used to drive elements without a domain
type FreeNode struct {
	Id      int       // tag
	X       []float64 // coordinates
	U       []float64 // trial displacements
	Ucommit []float64 // committed displacements
	V       []float64 // trial velocities
	A       []float64 // trial accelerations
}

// NewFreeNode returns a new node with ndf DOFs at the given coordinates
func NewFreeNode(tag, ndf int, crds ...float64) *FreeNode {
	return &FreeNode{
		Id:      tag,
		X:       crds,
		U:       make([]float64, ndf),
		Ucommit: make([]float64, ndf),
		V:       make([]float64, ndf),
		A:       make([]float64, ndf),
	}
}

func (o *FreeNode) Tag() int                     { return o.Id }
func (o *FreeNode) Ndf() int                     { return len(o.U) }
func (o *FreeNode) Crds() []float64              { return o.X }
func (o *FreeNode) Disp() []float64              { return o.Ucommit }
func (o *FreeNode) TrialDisp() []float64         { return o.U }
func (o *FreeNode) TrialVel() []float64          { return o.V }
func (o *FreeNode) TrialAccel() []float64        { return o.A }
func (o *FreeNode) RV(accel []float64) []float64 { return TranslationalRV(len(o.U), len(o.X), accel) }

// Commit copies trial displacements to committed displacements
func (o *FreeNode) Commit() { copy(o.Ucommit, o.U) }

// NodeMap implements NodeProvider with a map
type NodeMap map[int]Node

// Node returns a node or nil
func (o NodeMap) Node(tag int) Node {
	if n, ok := o[tag]; ok {
		return n
	}
	return nil
}

// TranslationalRV returns the influence vector of a ground acceleration on a node with ndf
// DOFs whose first ndim DOFs are translations
func TranslationalRV(ndf, ndim int, accel []float64) []float64 {
	res := make([]float64, ndf)
	for i := 0; i < len(accel) && i < ndim && i < ndf; i++ {
		res[i] = accel[i]
	}
	return res
}
