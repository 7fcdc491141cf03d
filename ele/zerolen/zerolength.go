// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package zerolen implements zero-length elements connecting two nodes at the same location
package zerolen

import (
	"strconv"

	"github.com/dct328/gosees/ele"
	"github.com/dct328/gosees/inp"
	"github.com/dct328/gosees/mdl/uniax"
	"github.com/dct328/gosees/persist"
	"github.com/dct328/gosees/response"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// ZeroLength connects two nodes with uniaxial materials acting along local directions
//
//  directions: 0, 1, 2 = translations along local x, y, z
//              3, 4, 5 = rotations about local x, y, z
//
//  deformation of material i:  εᵢ = bᵢ⋅(u₂ - u₁)   where bᵢ holds the direction cosines
//
type ZeroLength struct {
	Mats []uniax.Model // materials; one per direction
	Dirs []int         // directions
	Dim  int           // space dimension
	X    []float64     // local x-axis
	Yp   []float64     // vector in the local x-y plane
	Ray  ele.Rayleigh  // Rayleigh damping
	Ndof int           // total number of DOFs

	B *mat.Dense // [nmats][ndof] deformation-displacement rows

	// auxiliary
	tag    int
	conn   []int
	nodes  []ele.Node
	useRay bool
	load   *mat.VecDense
}

// register element
func init() {
	ele.SetInfoFunc("zero-length", func(edat *inp.ElemData, ndim int) *ele.Info {
		return &ele.Info{Nnodes: 2}
	})
	ele.SetAllocator("zero-length", func(edat *inp.ElemData, lib *ele.Library) (ele.Element, error) {
		if len(edat.Nodes) != 2 {
			return nil, chk.Err("zero-length element needs 2 nodes. %d is invalid", len(edat.Nodes))
		}
		mats := make([]uniax.Model, len(edat.Mats))
		for i, m := range edat.Mats {
			var err error
			if mats[i], err = lib.Mat(m); err != nil {
				return nil, err
			}
		}
		o, err := Construct(edat.Tag, lib.Ndim, edat.Nodes[0], edat.Nodes[1], edat.X, edat.Yp, mats, edat.Dirs)
		if err != nil {
			return nil, err
		}
		if edat.Prms.Get("doRayleigh", 0) > 0 {
			o.SetRayleigh(ele.NewRayleigh(edat.Prms))
		}
		return o, nil
	})
}

// Construct returns a new element. It accepts:
//  one material and one direction;
//  one material and many directions, in which case the material is copied for each direction;
//  the same number of materials and directions.
// x and yp default to the global X and Y axes.
func Construct(tag, dim, nd1, nd2 int, x, yp []float64, mats []uniax.Model, dirs []int) (o *ZeroLength, err error) {
	if len(mats) == 1 && len(dirs) > 1 {
		m := mats[0]
		mats = make([]uniax.Model, len(dirs))
		for i := range dirs {
			mats[i] = m
		}
	}
	return NewZeroLength(tag, dim, nd1, nd2, x, yp, mats, dirs)
}

// NewZeroLength returns a new element with one material per direction. Materials are copied.
func NewZeroLength(tag, dim, nd1, nd2 int, x, yp []float64, mats []uniax.Model, dirs []int) (o *ZeroLength, err error) {
	if dim < 1 || dim > 3 {
		return nil, chk.Err("zero-length %d: dimension must be 1, 2 or 3. %d is invalid", tag, dim)
	}
	n := len(mats)
	if n < 1 || n > 6 {
		return nil, chk.Err("zero-length %d: number of materials must be in [1, 6]. %d is invalid", tag, n)
	}
	if len(dirs) != n {
		return nil, chk.Err("zero-length %d: there must be one direction per material. %d directions for %d materials is invalid", tag, len(dirs), n)
	}
	o = &ZeroLength{Dim: dim, tag: tag, conn: []int{nd1, nd2}}
	for i, m := range mats {
		if m == nil {
			return nil, chk.Err("zero-length %d: material %d is missing", tag, i)
		}
		if dirs[i] < 0 || dirs[i] > 5 {
			return nil, chk.Err("zero-length %d: direction must be in [0, 5]. %d is invalid", tag, dirs[i])
		}
		o.Mats = append(o.Mats, m.GetCopy())
	}
	o.Dirs = append([]int{}, dirs...)
	o.X, o.Yp = []float64{1, 0, 0}, []float64{0, 1, 0}
	if len(x) > 0 {
		o.X = pad3(x)
	}
	if len(yp) > 0 {
		o.Yp = pad3(yp)
	}
	return
}

// SetRayleigh activates Rayleigh damping
func (o *ZeroLength) SetRayleigh(r ele.Rayleigh) {
	o.Ray = r
	o.useRay = r.Active()
}

func (o *ZeroLength) Tag() int             { return o.tag }
func (o *ZeroLength) ExternalNodes() []int { return o.conn }
func (o *ZeroLength) NumDOF() int          { return o.Ndof }

// SetDomain finds the nodes and computes the deformation-displacement rows
func (o *ZeroLength) SetDomain(d ele.NodeProvider) (err error) {
	o.nodes, err = ele.FindNodes(d, o.tag, o.conn, 0)
	if err != nil {
		return
	}
	ndf := o.nodes[0].Ndf()
	if o.nodes[1].Ndf() != ndf {
		return chk.Err("zero-length %d: nodes have different numbers of DOFs: %d and %d", o.tag, ndf, o.nodes[1].Ndf())
	}
	c1, c2 := o.nodes[0].Crds(), o.nodes[1].Crds()
	for i := 0; i < len(c1) && i < len(c2); i++ {
		if c1[i] != c2[i] {
			io.Pfred("zero-length %d: nodes %d and %d have different coordinates\n", o.tag, o.conn[0], o.conn[1])
			break
		}
	}
	e0, e1, e2, err := ele.Triad(o.X, o.Yp)
	if err != nil {
		return chk.Err("zero-length %d: %v", o.tag, err)
	}
	axes := [3][3]float64{{e0.X, e0.Y, e0.Z}, {e1.X, e1.Y, e1.Z}, {e2.X, e2.Y, e2.Z}}

	// positions of translations and rotations in each node
	var trans, rots []int
	switch {
	case o.Dim == 1 && ndf == 1:
		trans = []int{0}
	case o.Dim == 2 && ndf == 2:
		trans = []int{0, 1}
	case o.Dim == 2 && ndf == 3:
		trans, rots = []int{0, 1}, []int{-1, -1, 2}
	case o.Dim == 3 && ndf == 3:
		trans = []int{0, 1, 2}
	case o.Dim == 3 && ndf == 6:
		trans, rots = []int{0, 1, 2}, []int{3, 4, 5}
	default:
		return chk.Err("zero-length %d: combination of dimension %d and %d DOFs per node is invalid", o.tag, o.Dim, ndf)
	}

	o.Ndof = 2 * ndf
	o.load = mat.NewVecDense(o.Ndof, nil)
	o.B = mat.NewDense(len(o.Mats), o.Ndof, nil)
	for i, dir := range o.Dirs {
		pos := trans
		if dir > 2 {
			pos = rots
		}
		a := axes[dir%3]
		if len(pos) == 0 || (dir > 2 && o.Dim == 2 && dir != 5) || (dir <= 2 && dir >= len(trans)) {
			return chk.Err("zero-length %d: direction %d is invalid in %dD with %d DOFs per node", o.tag, dir, o.Dim, ndf)
		}
		for k, p := range pos {
			if p < 0 {
				continue
			}
			o.B.Set(i, p, -a[k])
			o.B.Set(i, p+ndf, a[k])
		}
	}
	return
}

// deformations returns B⋅v where v is gathered from nodes
func (o *ZeroLength) deformations(get func(ele.Node) []float64) []float64 {
	var res mat.VecDense
	res.MulVec(o.B, ele.Gather(o.nodes, get))
	return res.RawVector().Data
}

// Update sets the trial strains of materials
func (o *ZeroLength) Update() (res int) {
	eps := o.deformations(ele.Node.TrialDisp)
	rate := o.deformations(ele.Node.TrialVel)
	for i, m := range o.Mats {
		res += m.SetTrialStrain(eps[i], rate[i])
	}
	return
}

// sumBtB returns Σ cᵢ⋅bᵢᵀ⋅bᵢ
func (o *ZeroLength) sumBtB(c func(m uniax.Model) float64) *mat.Dense {
	D := mat.NewDense(len(o.Mats), len(o.Mats), nil)
	for i, m := range o.Mats {
		D.Set(i, i, c(m))
	}
	return ele.TtAT(o.B, D)
}

func (o *ZeroLength) TangentStiff() *mat.Dense {
	return o.sumBtB(uniax.Model.Tangent)
}

func (o *ZeroLength) InitialStiff() *mat.Dense {
	return o.sumBtB(uniax.Model.InitialTangent)
}

// Damp returns the damping from the materials plus Rayleigh damping
func (o *ZeroLength) Damp() *mat.Dense {
	C := o.sumBtB(uniax.Model.DampTangent)
	if o.useRay {
		C.Add(C, o.Ray.Damp(o))
	}
	return C
}

// Mass returns zero; zero-length elements have no mass
func (o *ZeroLength) Mass() *mat.Dense {
	return mat.NewDense(o.Ndof, o.Ndof, nil)
}

func (o *ZeroLength) ZeroLoad() { o.load.Zero() }

// AddInertiaLoadToUnbalance does nothing
func (o *ZeroLength) AddInertiaLoadToUnbalance(accel []float64) int { return 0 }

// basicForces returns the material stresses
func (o *ZeroLength) basicForces() []float64 {
	q := make([]float64, len(o.Mats))
	for i, m := range o.Mats {
		q[i] = m.Stress()
	}
	return q
}

// ResistingForce returns Σ σᵢ⋅bᵢ
func (o *ZeroLength) ResistingForce() *mat.VecDense {
	f := mat.NewVecDense(o.Ndof, nil)
	q := o.basicForces()
	f.MulVec(o.B.T(), mat.NewVecDense(len(q), q))
	return f
}

// ResistingForceIncInertia returns the internal force minus loads plus Rayleigh damping forces
func (o *ZeroLength) ResistingForceIncInertia() *mat.VecDense {
	f := o.ResistingForce()
	f.SubVec(f, o.load)
	if o.useRay {
		f.AddVec(f, o.Ray.Forces(o, o.nodes))
	}
	return f
}

func (o *ZeroLength) Commit() (res int) {
	for _, m := range o.Mats {
		res += m.Commit()
	}
	if o.useRay && o.nodes != nil {
		o.Ray.CommitStiff(o)
	}
	return
}

func (o *ZeroLength) RevertToLastCommit() (res int) {
	for _, m := range o.Mats {
		res += m.RevertToLastCommit()
	}
	return
}

func (o *ZeroLength) RevertToStart() (res int) {
	for _, m := range o.Mats {
		res += m.RevertToStart()
	}
	return
}

// SendSelf sends [tag, dim, nmats, useRayleigh], nodes, directions, material class tags,
// orientation and Rayleigh factors and the materials
func (o *ZeroLength) SendSelf(commitTag int, ch persist.Channel) (err error) {
	useRay := 0
	if o.useRay {
		useRay = 1
	}
	n := len(o.Mats)
	ids := []int{o.tag, o.Dim, n, useRay, o.conn[0], o.conn[1]}
	ids = append(ids, o.Dirs...)
	for _, m := range o.Mats {
		ids = append(ids, m.ClassTag())
	}
	if err = ch.SendID(commitTag, []int{len(ids)}); err != nil {
		return
	}
	if err = ch.SendID(commitTag, ids); err != nil {
		return
	}
	data := append(append([]float64{}, o.X...), o.Yp...)
	data = append(data, o.Ray.AlphaM, o.Ray.BetaK, o.Ray.BetaK0, o.Ray.BetaKc)
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

// RecvSelf receives the data sent by SendSelf
func (o *ZeroLength) RecvSelf(commitTag int, ch persist.Channel, b ele.Broker) (err error) {
	size := make([]int, 1)
	if err = ch.RecvID(commitTag, size); err != nil {
		return
	}
	ids := make([]int, size[0])
	if err = ch.RecvID(commitTag, ids); err != nil {
		return
	}
	o.tag, o.Dim = ids[0], ids[1]
	n := ids[2]
	o.useRay = ids[3] == 1
	o.conn = []int{ids[4], ids[5]}
	o.Dirs = append([]int{}, ids[6:6+n]...)
	data := make([]float64, 10)
	if err = ch.RecvVector(commitTag, data); err != nil {
		return
	}
	o.X = append([]float64{}, data[0:3]...)
	o.Yp = append([]float64{}, data[3:6]...)
	o.Ray = ele.Rayleigh{AlphaM: data[6], BetaK: data[7], BetaK0: data[8], BetaKc: data[9]}
	o.Mats = make([]uniax.Model, n)
	for i := range o.Mats {
		if o.Mats[i], err = b.NewUniaxialMaterial(ids[6+n+i]); err != nil {
			return
		}
		if err = o.Mats[i].RecvSelf(commitTag, ch); err != nil {
			return
		}
	}
	return
}

// SetResponse returns handles to element results
func (o *ZeroLength) SetResponse(args []string) (response.Response, error) {
	if len(args) == 0 {
		return nil, response.ErrUnknown(o.String(), args)
	}
	key := args[0]
	switch {
	case response.Match(key, "force", "forces", "globalForce", "globalForces"):
		return response.New(response.Numbered("P", o.Ndof), func() []float64 {
			return o.ResistingForce().RawVector().Data
		}), nil
	case response.Match(key, "basicForce", "basicForces", "localForce", "localForces"):
		return response.New(response.Numbered("q", len(o.Mats)), o.basicForces), nil
	case response.Match(key, "deformation", "deformations", "basicDeformation", "basicDeformations"):
		return response.New(response.Numbered("e", len(o.Mats)), func() []float64 {
			return o.deformations(ele.Node.TrialDisp)
		}), nil
	case response.Match(key, "material", "-material"):
		if len(args) > 2 {
			i, err := strconv.Atoi(args[1])
			if err == nil && i >= 1 && i <= len(o.Mats) {
				return o.Mats[i-1].SetResponse(args[2:])
			}
		}
	}
	return nil, response.ErrUnknown(o.String(), args)
}

// String returns a summary
func (o *ZeroLength) String() string {
	l := io.Sf("Element: %d  type: ZeroLength  iNode: %d  jNode: %d\n", o.tag, o.conn[0], o.conn[1])
	for i, m := range o.Mats {
		l += io.Sf("  Material: %d  direction: %d\n", m.Tag(), o.Dirs[i])
	}
	return l
}

// pad3 returns a 3-component copy of v
func pad3(v []float64) []float64 {
	res := make([]float64, 3)
	copy(res, v)
	return res
}
