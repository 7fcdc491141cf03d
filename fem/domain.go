// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/dct328/gosees/broker"
	"github.com/dct328/gosees/ele"
	"github.com/dct328/gosees/inp"
	"github.com/dct328/gosees/persist"
	"github.com/dct328/gosees/tseries"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Domain holds all Nodes, Elements and load Patterns of a model, in addition to the
// equation numbers of free DOFs
type Domain struct {

	// init: auxiliary variables
	Sim     *inp.Simulation // input data
	Lib     *ele.Library    // materials, friction models and sections
	Ndim    int             // space dimension
	ShowMsg bool            // show messages

	// model
	Nodes    []*Node                // all nodes
	Elems    []ele.Element          // all elements
	Series   map[int]tseries.Series // all time series
	Patterns []*Pattern             // all load patterns

	// equations
	Neq  int     // number of equations == number of free DOFs
	Emap [][]int // [nelems][nedof] equation numbers of element DOFs; -1 means fixed

	// time
	Time      float64 // current (trial) time
	TimeC     float64 // committed time
	CommitTag int     // number of commits

	// auxiliary maps
	tag2node map[int]*Node
	tag2elem map[int]ele.Element
}

// NewDomain allocates nodes, elements, time series and load patterns
func NewDomain(sim *inp.Simulation, verbose bool) (o *Domain, err error) {

	// new domain
	o = new(Domain)
	o.Sim = sim
	o.Ndim = sim.Data.Ndim
	o.ShowMsg = verbose
	o.tag2node = make(map[int]*Node)
	o.tag2elem = make(map[int]ele.Element)

	// library
	o.Lib, err = ele.NewLibrary(sim)
	if err != nil {
		return nil, chk.Err("cannot allocate models:\n%v", err)
	}

	// nodes and equation numbers
	for _, nd := range sim.Nodes {
		n := NewNode(nd, o.Ndim)
		fixed := make(map[int]bool)
		for _, dof := range nd.Fix {
			fixed[dof] = true
		}
		for i := range n.Eqs {
			n.Eqs[i] = -1
			if !fixed[i] {
				n.Eqs[i] = o.Neq
				o.Neq++
			}
		}
		o.Nodes = append(o.Nodes, n)
		o.tag2node[n.Id] = n
	}

	// elements
	for _, edat := range sim.Elements {
		info, err := ele.GetInfo(edat, o.Ndim)
		if err != nil {
			return nil, err
		}
		if info.Nnodes > 0 && len(edat.Nodes) != info.Nnodes {
			return nil, chk.Err("element %d of type %q needs %d nodes. %d is invalid", edat.Tag, edat.Type, info.Nnodes, len(edat.Nodes))
		}
		for _, tag := range edat.Nodes {
			if info.Ndf > 0 && o.tag2node[tag].Ndf() != info.Ndf {
				return nil, chk.Err("element %d of type %q needs %d DOFs per node. node %d has %d", edat.Tag, edat.Type, info.Ndf, tag, o.tag2node[tag].Ndf())
			}
		}
		e, err := ele.New(edat, o.Lib)
		if err != nil {
			return nil, err
		}
		if err = e.SetDomain(o); err != nil {
			return nil, chk.Err("cannot set domain of element %d:\n%v", edat.Tag, err)
		}
		if err = o.addElement(e); err != nil {
			return nil, err
		}
	}

	// time series
	o.Series = make(map[int]tseries.Series)
	for _, sd := range sim.Series {
		s, err := tseries.New(sd)
		if err != nil {
			return nil, err
		}
		o.Series[sd.Tag] = s
	}

	// load patterns
	for _, pd := range sim.Patterns {
		p, err := NewPattern(pd, o.Series)
		if err != nil {
			return nil, err
		}
		o.Patterns = append(o.Patterns, p)
	}

	// initial values
	if err = o.SetInitial(sim.Initial); err != nil {
		return nil, err
	}

	// message
	if o.ShowMsg {
		io.Pf(">> Number of nodes = %d\n", len(o.Nodes))
		io.Pf(">> Number of elements = %d\n", len(o.Elems))
		io.Pf(">> Number of equations = %d\n", o.Neq)
	}
	return
}

// addElement adds an element and its equation numbers
func (o *Domain) addElement(e ele.Element) (err error) {
	if _, ok := o.tag2elem[e.Tag()]; ok {
		return chk.Err("element tag %d is duplicated", e.Tag())
	}
	var eqs []int
	for _, tag := range e.ExternalNodes() {
		eqs = append(eqs, o.tag2node[tag].Eqs...)
	}
	if len(eqs) != e.NumDOF() {
		return chk.Err("element %d has %d DOFs but its nodes have %d", e.Tag(), e.NumDOF(), len(eqs))
	}
	o.Elems = append(o.Elems, e)
	o.Emap = append(o.Emap, eqs)
	o.tag2elem[e.Tag()] = e
	return
}

// Node returns a node or nil; implements ele.NodeProvider
func (o *Domain) Node(tag int) ele.Node {
	if n, ok := o.tag2node[tag]; ok {
		return n
	}
	return nil
}

// GetNode returns a node or nil
func (o *Domain) GetNode(tag int) *Node {
	return o.tag2node[tag]
}

// Element returns an element or nil
func (o *Domain) Element(tag int) ele.Element {
	return o.tag2elem[tag]
}

// SetTrial sets the trial response of all nodes from global vectors; nil vectors are skipped
func (o *Domain) SetTrial(U, V, A []float64) {
	for _, n := range o.Nodes {
		n.SetTrial(U, V, A)
	}
}

// Update updates the trial state of all elements and returns the sum of status codes
func (o *Domain) Update() (status int) {
	for _, e := range o.Elems {
		status += e.Update()
	}
	return
}

// ApplyLoad sets the time and computes the loads of all patterns at time t
func (o *Domain) ApplyLoad(t float64) {
	o.Time = t
	for _, n := range o.Nodes {
		n.ZeroLoad()
	}
	for _, e := range o.Elems {
		e.ZeroLoad()
	}
	for _, p := range o.Patterns {
		p.Apply(o, t)
	}
}

// AssembleTangent computes K = cK⋅Kt + cC⋅C + cM⋅M for all free DOFs
func (o *Domain) AssembleTangent(K *mat.Dense, cK, cC, cM float64) {
	K.Zero()
	for k, e := range o.Elems {
		eqs := o.Emap[k]
		if cK != 0 {
			scatterMat(K, eqs, e.TangentStiff(), cK)
		}
		if cC != 0 {
			scatterMat(K, eqs, e.Damp(), cC)
		}
		if cM != 0 {
			scatterMat(K, eqs, e.Mass(), cM)
		}
	}
	if cM == 0 {
		return
	}
	for _, n := range o.Nodes {
		for i, m := range n.M {
			if eq := n.Eqs[i]; eq >= 0 {
				K.Set(eq, eq, K.At(eq, eq)+cM*m)
			}
		}
	}
}

// Unbalance computes R = Fext - Fint. With inertia, nodal inertia forces are subtracted
// and element forces include damping, inertia and element loads
func (o *Domain) Unbalance(R []float64, inertia bool) {
	for i := range R {
		R[i] = 0
	}
	for _, n := range o.Nodes {
		for i, eq := range n.Eqs {
			if eq < 0 {
				continue
			}
			R[eq] += n.Load[i]
			if inertia && n.M != nil {
				R[eq] -= n.M[i] * n.A[i]
			}
		}
	}
	for k, e := range o.Elems {
		var f *mat.VecDense
		if inertia {
			f = e.ResistingForceIncInertia()
		} else {
			f = e.ResistingForce()
		}
		for i, eq := range o.Emap[k] {
			if eq >= 0 {
				R[eq] -= f.AtVec(i)
			}
		}
	}
}

// Commit commits nodes and elements and returns the sum of status codes
func (o *Domain) Commit() (status int) {
	for _, n := range o.Nodes {
		n.Commit()
	}
	for _, e := range o.Elems {
		status += e.Commit()
	}
	o.TimeC = o.Time
	o.CommitTag++
	return
}

// RevertToLastCommit restores the committed state of nodes and elements
func (o *Domain) RevertToLastCommit() (status int) {
	for _, n := range o.Nodes {
		n.RevertToLastCommit()
	}
	for _, e := range o.Elems {
		status += e.RevertToLastCommit()
	}
	o.Time = o.TimeC
	return
}

// RevertToStart brings nodes and elements back to the initial state
func (o *Domain) RevertToStart() (status int) {
	for _, n := range o.Nodes {
		n.RevertToStart()
	}
	for _, e := range o.Elems {
		status += e.RevertToStart()
	}
	o.Time, o.TimeC, o.CommitTag = 0, 0, 0
	return
}

// SaveState writes the committed state of nodes and elements to a channel
func (o *Domain) SaveState(commitTag int, ch persist.Channel) (err error) {
	if err = ch.SendID(commitTag, []int{o.CommitTag, len(o.Nodes), len(o.Elems)}); err != nil {
		return
	}
	if err = ch.SendVector(commitTag, []float64{o.TimeC}); err != nil {
		return
	}
	for _, n := range o.Nodes {
		data := append(append(append([]float64{}, n.Uc...), n.Vc...), n.Ac...)
		if err = ch.SendVector(commitTag, data); err != nil {
			return chk.Err("cannot send state of node %d:\n%v", n.Id, err)
		}
	}
	for _, e := range o.Elems {
		if p, ok := e.(ele.CanPersist); ok {
			if err = p.SendSelf(commitTag, ch); err != nil {
				return chk.Err("cannot send state of element %d:\n%v", e.Tag(), err)
			}
		}
	}
	return
}

// ReadState reads the state written by SaveState into a domain built from the same model
func (o *Domain) ReadState(commitTag int, ch persist.Channel) (err error) {
	idata := make([]int, 3)
	if err = ch.RecvID(commitTag, idata); err != nil {
		return chk.Err("cannot read domain header:\n%v", err)
	}
	if idata[1] != len(o.Nodes) || idata[2] != len(o.Elems) {
		return chk.Err("saved state has %d nodes and %d elements but domain has %d and %d", idata[1], idata[2], len(o.Nodes), len(o.Elems))
	}
	t := make([]float64, 1)
	if err = ch.RecvVector(commitTag, t); err != nil {
		return
	}
	for _, n := range o.Nodes {
		ndf := n.Ndf()
		data := make([]float64, 3*ndf)
		if err = ch.RecvVector(commitTag, data); err != nil {
			return chk.Err("cannot receive state of node %d:\n%v", n.Id, err)
		}
		copy(n.Uc, data[:ndf])
		copy(n.Vc, data[ndf:2*ndf])
		copy(n.Ac, data[2*ndf:])
		n.RevertToLastCommit()
	}
	for _, e := range o.Elems {
		if p, ok := e.(ele.CanPersist); ok {
			if err = p.RecvSelf(commitTag, ch, broker.Default); err != nil {
				return chk.Err("cannot receive state of element %d:\n%v", e.Tag(), err)
			}
			if err = e.SetDomain(o); err != nil {
				return
			}
		}
	}
	o.Time, o.TimeC, o.CommitTag = t[0], t[0], idata[0]
	o.Update()
	return
}

// scatterMat adds c⋅Ke into K for free DOFs
func scatterMat(K *mat.Dense, eqs []int, Ke *mat.Dense, c float64) {
	if Ke == nil {
		return
	}
	for i, I := range eqs {
		if I < 0 {
			continue
		}
		for j, J := range eqs {
			if J >= 0 {
				K.Set(I, J, K.At(I, J)+c*Ke.At(i, j))
			}
		}
	}
}
