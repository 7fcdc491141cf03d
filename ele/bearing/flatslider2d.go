// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bearing

import (
	"math"

	"github.com/dct328/gosees/ele"
	"github.com/dct328/gosees/inp"
	"github.com/dct328/gosees/mdl/frict"
	"github.com/dct328/gosees/mdl/uniax"
	"github.com/dct328/gosees/persist"
	"github.com/dct328/gosees/response"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// FlatSlider2d implements a 2D flat slider whose shear force combines a hysteretic friction
// component with linear and nonlinear elastic springs:
//
//  qb1 = qFriction + k2⋅ub1 + k3⋅sign(ub1)⋅|ub1|^μ
//
//  basic system: ub = {axial, shear, rotation}
//
type FlatSlider2d struct {

	// data
	Frn  frict.Model    // friction model
	Mats [2]uniax.Model // axial and moment materials
	Prm  Params         // parameters
	X    []float64      // local x-axis; taken from nodes if empty

	// derived
	L      float64    // length
	Tgl    *mat.Dense // [6][6] global to local transformation
	Tlb    *mat.Dense // [3][6] local to basic transformation
	KbInit *mat.Dense // [3][3] initial basic stiffness

	// state
	ContactState int        // Uplifted or InContact
	Ub           []float64  // [3] basic displacements
	Qb           []float64  // [3] basic forces
	Kb           *mat.Dense // [3][3] basic tangent
	Ul           []float64  // [6] local displacements
	UbPlastic    float64    // trial plastic displacement
	UbPlasticC   float64    // committed plastic displacement

	// auxiliary
	tag   int
	conn  []int
	nodes []ele.Node
	load  *mat.VecDense
}

// register element
func init() {
	ele.SetInfoFunc("flat-slider-2d", func(edat *inp.ElemData, ndim int) *ele.Info {
		if ndim != 2 {
			return nil
		}
		return ele.FrameInfo(2)
	})
	ele.SetAllocator("flat-slider-2d", func(edat *inp.ElemData, lib *ele.Library) (ele.Element, error) {
		if len(edat.Nodes) != 2 || len(edat.Mats) != 2 {
			return nil, chk.Err("flat-slider-2d needs 2 nodes and 2 materials. %d nodes and %d materials are invalid", len(edat.Nodes), len(edat.Mats))
		}
		frn, err := lib.Frn(edat.Frn)
		if err != nil {
			return nil, err
		}
		var mats [2]uniax.Model
		for i, m := range edat.Mats {
			if mats[i], err = lib.Mat(m); err != nil {
				return nil, err
			}
		}
		prm := Defaults2d()
		if err = prm.Init(edat.Prms.Dbf()); err != nil {
			return nil, err
		}
		return NewFlatSlider2d(edat.Tag, edat.Nodes[0], edat.Nodes[1], frn, mats[0], mats[1], prm, edat.X)
	})
}

// NewFlatSlider2d returns a new element. The friction model and materials are copied.
func NewFlatSlider2d(tag, nd1, nd2 int, frn frict.Model, matP, matMz uniax.Model, prm Params, x []float64) (o *FlatSlider2d, err error) {
	if frn == nil || matP == nil || matMz == nil {
		return nil, chk.Err("flat slider %d: friction model and materials are required", tag)
	}
	if prm.Mu <= 0 {
		return nil, chk.Err("flat slider %d: exponent mu must be positive. mu=%g is invalid", tag, prm.Mu)
	}
	o = new(FlatSlider2d)
	o.tag = tag
	o.conn = []int{nd1, nd2}
	o.Frn = frn.GetCopy()
	o.Mats[0] = matP.GetCopy()
	o.Mats[1] = matMz.GetCopy()
	o.Prm = prm
	o.X = append([]float64{}, x...)
	o.alloc()
	o.RevertToStart()
	return
}

func (o *FlatSlider2d) alloc() {
	o.Tgl = mat.NewDense(6, 6, nil)
	o.Tlb = mat.NewDense(3, 6, nil)
	o.Kb = mat.NewDense(3, 3, nil)
	o.Ub = make([]float64, 3)
	o.Qb = make([]float64, 3)
	o.Ul = make([]float64, 6)
	o.load = mat.NewVecDense(6, nil)
	o.KbInit = mat.NewDense(3, 3, []float64{
		o.Mats[0].InitialTangent(), 0, 0,
		0, o.Prm.K0 + o.Prm.K2, 0,
		0, 0, o.Mats[1].InitialTangent(),
	})
}

func (o *FlatSlider2d) Tag() int             { return o.tag }
func (o *FlatSlider2d) ExternalNodes() []int { return o.conn }
func (o *FlatSlider2d) NumDOF() int          { return 6 }

// SetDomain finds the nodes and computes the transformations
func (o *FlatSlider2d) SetDomain(d ele.NodeProvider) (err error) {
	o.nodes, err = ele.FindNodes(d, o.tag, o.conn, 3)
	if err != nil {
		return
	}
	c1, c2 := o.nodes[0].Crds(), o.nodes[1].Crds()
	xp := []float64{c2[0] - c1[0], c2[1] - c1[1]}
	o.L = math.Hypot(xp[0], xp[1])
	if len(o.X) == 0 {
		if o.L <= uniax.DblEpsilon {
			o.X = []float64{1, 0}
		} else {
			o.X = xp
		}
	}
	if len(o.X) < 2 {
		return chk.Err("flat slider %d: local x-axis needs 2 components", o.tag)
	}
	xn := math.Hypot(o.X[0], o.X[1])
	if xn == 0 {
		return chk.Err("flat slider %d: local x-axis is null", o.tag)
	}
	cx, cy := o.X[0]/xn, o.X[1]/xn

	o.Tgl.Zero()
	for b := 0; b < 2; b++ {
		k := 3 * b
		o.Tgl.Set(k, k, cx)
		o.Tgl.Set(k, k+1, cy)
		o.Tgl.Set(k+1, k, -cy)
		o.Tgl.Set(k+1, k+1, cx)
		o.Tgl.Set(k+2, k+2, 1)
	}
	o.Tlb.Zero()
	for i := 0; i < 3; i++ {
		o.Tlb.Set(i, i, -1)
		o.Tlb.Set(i, i+3, 1)
	}
	o.Tlb.Set(1, 2, -o.Prm.ShearDistI*o.L)
	o.Tlb.Set(1, 5, -(1-o.Prm.ShearDistI)*o.L)
	return
}

// elastic returns the force and tangent of the elastic shear springs
func (o *FlatSlider2d) elastic(u float64) (q, k float64) {
	au := math.Abs(u)
	q = o.Prm.K2*u + o.Prm.K3*sign(u)*math.Pow(au, o.Prm.Mu)
	k = o.Prm.K2
	if au > 0 || o.Prm.Mu >= 1 {
		k += o.Prm.K3 * o.Prm.Mu * math.Pow(au, o.Prm.Mu-1)
	}
	return
}

// Update resolves the axial, shear and rotational responses
func (o *FlatSlider2d) Update() int {
	ug := ele.Gather(o.nodes, ele.Node.TrialDisp)
	vg := ele.Gather(o.nodes, ele.Node.TrialVel)
	mulVec(o.Ul, o.Tgl, ug.RawVector().Data)
	mulVec(o.Ub, o.Tlb, o.Ul)
	uldot := make([]float64, 6)
	ubdot := make([]float64, 3)
	mulVec(uldot, o.Tgl, vg.RawVector().Data)
	mulVec(ubdot, o.Tlb, uldot)

	// axial
	o.Mats[0].SetTrialStrain(o.Ub[0], ubdot[0])
	o.Qb[0] = o.Mats[0].Stress()
	o.Kb.Set(0, 0, o.Mats[0].Tangent())
	o.ContactState = InContact

	// uplift
	if o.Qb[0] >= 0 {
		o.Kb.Scale(o.Prm.KFactUplift, o.KbInit)
		o.Qb[0], o.Qb[1], o.Qb[2] = 0, 0, 0
		o.UbPlastic = o.Ub[1]
		o.ContactState = Uplifted
		return 0
	}

	// shear
	k0 := o.Prm.K0
	qE, kE := o.elastic(o.Ub[1])
	iter := 0
	var norm float64
	for {
		iter++
		qbOld := o.Qb[1]
		o.Frn.SetTrial(-o.Qb[0], math.Abs(ubdot[1]))
		qYield := o.Frn.FrictionForce()
		qTrial := k0 * (o.Ub[1] - o.UbPlasticC)
		Y := math.Abs(qTrial) - qYield
		if Y <= 0 {
			o.Qb[1] = qTrial + qE
			o.Kb.Set(1, 1, k0+kE)
		} else {
			o.UbPlastic = o.UbPlasticC + Y/k0*sign(qTrial)
			o.Qb[1] = qYield*sign(qTrial) + qE
			o.Kb.Set(1, 1, kE)
		}
		norm = math.Abs(o.Qb[1] - qbOld)
		if norm < o.Prm.Tol || iter > o.Prm.MaxIter {
			break
		}
	}
	if iter >= o.Prm.MaxIter {
		logrus.WithFields(logrus.Fields{"element": o.tag, "iter": iter, "norm": norm}).Warn("flat slider: did not find the shear force")
		return -1
	}

	// rotation
	o.Mats[1].SetTrialStrain(o.Ub[2], ubdot[2])
	o.Qb[2] = o.Mats[1].Stress()
	o.Kb.Set(2, 2, o.Mats[1].Tangent())
	return 0
}

// TangentStiff returns the tangent in global coordinates including P-Δ terms
func (o *FlatSlider2d) TangentStiff() *mat.Dense {
	kl := ele.TtAT(o.Tlb, o.Kb)
	q0 := o.Qb[0]
	Ls := (1 - o.Prm.ShearDistI) * o.L
	kl.Set(2, 1, kl.At(2, 1)-q0)
	kl.Set(2, 4, kl.At(2, 4)+q0)
	kl.Set(2, 5, kl.At(2, 5)-q0*Ls)
	kl.Set(5, 5, kl.At(5, 5)+q0*Ls)
	return ele.TtAT(o.Tgl, kl)
}

// InitialStiff returns the initial tangent in global coordinates
func (o *FlatSlider2d) InitialStiff() *mat.Dense {
	return ele.TtAT(o.Tgl, ele.TtAT(o.Tlb, o.KbInit))
}

// Damp returns the damping matrix
func (o *FlatSlider2d) Damp() *mat.Dense {
	cb := mat.NewDense(3, 3, nil)
	cb.Set(0, 0, o.Mats[0].DampTangent())
	cb.Set(2, 2, o.Mats[1].DampTangent())
	C := ele.TtAT(o.Tgl, ele.TtAT(o.Tlb, cb))
	if o.Prm.AddRayleigh {
		C.Add(C, o.Prm.Ray.Damp(o))
	}
	return C
}

// Mass returns the lumped mass matrix
func (o *FlatSlider2d) Mass() *mat.Dense {
	M := mat.NewDense(6, 6, nil)
	m := 0.5 * o.Prm.Mass
	for _, i := range []int{0, 1, 3, 4} {
		M.Set(i, i, m)
	}
	return M
}

func (o *FlatSlider2d) ZeroLoad() { o.load.Zero() }

// AddInertiaLoadToUnbalance adds -M⋅R⋅accel to the element loads
func (o *FlatSlider2d) AddInertiaLoadToUnbalance(accel []float64) int {
	if o.Prm.Mass == 0 {
		return 0
	}
	r1, r2 := o.nodes[0].RV(accel), o.nodes[1].RV(accel)
	if len(r1) != 3 || len(r2) != 3 {
		logrus.WithFields(logrus.Fields{"element": o.tag}).Warn("flat slider: matrix and vector sizes are incompatible")
		return -1
	}
	m := 0.5 * o.Prm.Mass
	for i := 0; i < 2; i++ {
		o.load.SetVec(i, o.load.AtVec(i)-m*r1[i])
		o.load.SetVec(i+3, o.load.AtVec(i+3)-m*r2[i])
	}
	return 0
}

func (o *FlatSlider2d) localForces() []float64 {
	ql := make([]float64, 6)
	mulVec(ql, o.Tlb.T(), o.Qb)
	q0 := o.Qb[0]
	Ls := (1 - o.Prm.ShearDistI) * o.L
	ql[2] += q0 * (o.Ul[4] - o.Ul[1])
	mp := q0 * Ls * o.Ul[5]
	ql[2] -= mp
	ql[5] += mp
	return ql
}

// ResistingForce returns the internal force in global coordinates
func (o *FlatSlider2d) ResistingForce() *mat.VecDense {
	f := mat.NewVecDense(6, nil)
	f.MulVec(o.Tgl.T(), mat.NewVecDense(6, o.localForces()))
	return f
}

// ResistingForceIncInertia returns the internal force minus loads plus Rayleigh and inertia forces
func (o *FlatSlider2d) ResistingForceIncInertia() *mat.VecDense {
	f := o.ResistingForce()
	f.SubVec(f, o.load)
	if o.Prm.AddRayleigh && o.Prm.Ray.Active() {
		f.AddVec(f, o.Prm.Ray.Forces(o, o.nodes))
	}
	if o.Prm.Mass != 0 {
		a1, a2 := o.nodes[0].TrialAccel(), o.nodes[1].TrialAccel()
		m := 0.5 * o.Prm.Mass
		for i := 0; i < 2; i++ {
			f.SetVec(i, f.AtVec(i)+m*a1[i])
			f.SetVec(i+3, f.AtVec(i+3)+m*a2[i])
		}
	}
	return f
}

// Commit commits the plastic displacement, the friction model and the materials
func (o *FlatSlider2d) Commit() (res int) {
	o.UbPlasticC = o.UbPlastic
	res += o.Frn.Commit()
	for _, m := range o.Mats {
		res += m.Commit()
	}
	if o.nodes != nil {
		o.Prm.Ray.CommitStiff(o)
	}
	return
}

func (o *FlatSlider2d) RevertToLastCommit() (res int) {
	res += o.Frn.RevertToLastCommit()
	for _, m := range o.Mats {
		res += m.RevertToLastCommit()
	}
	return
}

func (o *FlatSlider2d) RevertToStart() (res int) {
	for i := range o.Ub {
		o.Ub[i], o.Qb[i] = 0, 0
	}
	o.UbPlastic, o.UbPlasticC = 0, 0
	o.Kb.Copy(o.KbInit)
	o.ContactState = InContact
	res += o.Frn.RevertToStart()
	for _, m := range o.Mats {
		res += m.RevertToStart()
	}
	return
}

// SendSelf sends the parameters, the friction model and the materials
func (o *FlatSlider2d) SendSelf(commitTag int, ch persist.Channel) (err error) {
	addRay := 0.0
	if o.Prm.AddRayleigh {
		addRay = 1
	}
	data := []float64{
		float64(o.tag), o.Prm.K0, o.Prm.K2, o.Prm.K3, o.Prm.Mu, o.Prm.ShearDistI, addRay,
		o.Prm.Mass, float64(o.Prm.MaxIter), o.Prm.Tol, o.Prm.KFactUplift, float64(len(o.X)),
		o.Prm.Ray.AlphaM, o.Prm.Ray.BetaK, o.Prm.Ray.BetaK0, o.Prm.Ray.BetaKc,
	}
	if err = ch.SendVector(commitTag, data); err != nil {
		return
	}
	if err = ch.SendID(commitTag, o.conn); err != nil {
		return
	}
	ids := []int{o.Frn.ClassTag(), o.Mats[0].ClassTag(), o.Mats[1].ClassTag()}
	if err = ch.SendID(commitTag, ids); err != nil {
		return
	}
	if err = o.Frn.SendSelf(commitTag, ch); err != nil {
		return
	}
	for _, m := range o.Mats {
		if err = m.SendSelf(commitTag, ch); err != nil {
			return
		}
	}
	if len(o.X) > 0 {
		err = ch.SendVector(commitTag, o.X)
	}
	return
}

// RecvSelf receives the element; the element starts from a clean state
func (o *FlatSlider2d) RecvSelf(commitTag int, ch persist.Channel, b ele.Broker) (err error) {
	data := make([]float64, 16)
	if err = ch.RecvVector(commitTag, data); err != nil {
		return
	}
	o.tag = int(data[0])
	o.Prm = Params{
		K0: data[1], K2: data[2], K3: data[3], Mu: data[4], ShearDistI: data[5],
		AddRayleigh: data[6] == 1, Mass: data[7], MaxIter: int(data[8]), Tol: data[9],
		KFactUplift: data[10],
		Ray:         ele.Rayleigh{AlphaM: data[12], BetaK: data[13], BetaK0: data[14], BetaKc: data[15]},
	}
	o.conn = make([]int, 2)
	if err = ch.RecvID(commitTag, o.conn); err != nil {
		return
	}
	ids := make([]int, 3)
	if err = ch.RecvID(commitTag, ids); err != nil {
		return
	}
	if o.Frn, err = b.NewFrictionModel(ids[0]); err != nil {
		return
	}
	if err = o.Frn.RecvSelf(commitTag, ch); err != nil {
		return
	}
	for i := range o.Mats {
		if o.Mats[i], err = b.NewUniaxialMaterial(ids[i+1]); err != nil {
			return
		}
		if err = o.Mats[i].RecvSelf(commitTag, ch); err != nil {
			return
		}
	}
	o.X = nil
	if n := int(data[11]); n > 0 {
		o.X = make([]float64, n)
		if err = ch.RecvVector(commitTag, o.X); err != nil {
			return
		}
	}
	o.alloc()
	o.RevertToStart()
	return
}

// DisplayPoints returns the points of the polyline node i, offset of node j, node j
func (o *FlatSlider2d) DisplayPoints(fact float64) (v1, v2, v3 []float64) {
	c1, c2 := o.nodes[0].Crds(), o.nodes[1].Crds()
	d1, d2 := o.nodes[0].Disp(), o.nodes[1].Disp()
	xp := []float64{c2[0] - c1[0], c2[1] - c1[1]}
	v1 = []float64{c1[0] + d1[0]*fact, c1[1] + d1[1]*fact, 0}
	v2 = []float64{c1[0] + (d2[0]+xp[1]*d2[2])*fact, c1[1] + (d2[1]-xp[0]*d2[2])*fact, 0}
	v3 = []float64{c2[0] + d2[0]*fact, c2[1] + d2[1]*fact, 0}
	return
}

// SetResponse returns handles to element results
func (o *FlatSlider2d) SetResponse(args []string) (response.Response, error) {
	if len(args) == 0 {
		return nil, response.ErrUnknown(o.String(), args)
	}
	key := args[0]
	switch {
	case response.Match(key, "force", "forces", "globalForce", "globalForces"):
		return response.New([]string{"Px_1", "Py_1", "Mz_1", "Px_2", "Py_2", "Mz_2"}, func() []float64 {
			return o.ResistingForce().RawVector().Data
		}), nil
	case response.Match(key, "localForce", "localForces"):
		return response.New([]string{"N_1", "V_1", "M_1", "N_2", "V_2", "M_2"}, o.localForces), nil
	case response.Match(key, "basicForce", "basicForces"):
		return response.New(response.Numbered("qb", 3), func() []float64 { return append([]float64{}, o.Qb...) }), nil
	case response.Match(key, "localDisplacement", "localDisplacements"):
		return response.New(response.Numbered("ul", 6), func() []float64 { return append([]float64{}, o.Ul...) }), nil
	case response.Match(key, "deformation", "deformations", "basicDeformation", "basicDeformations", "basicDisplacement", "basicDisplacements"):
		return response.New(response.Numbered("ub", 3), func() []float64 { return append([]float64{}, o.Ub...) }), nil
	case key == "contactState":
		return response.Scalar("contactState", func() float64 { return float64(o.ContactState) }), nil
	case key == "material":
		if len(args) > 2 {
			n, err := atoi(args[1])
			if err == nil && n >= 1 && n <= 2 {
				return o.Mats[n-1].SetResponse(args[2:])
			}
		}
	case response.Match(key, "frictionModel", "frnMdl", "frictionMdl", "frnModel"):
		if len(args) > 1 {
			return o.Frn.SetResponse(args[1:])
		}
	}
	return nil, response.ErrUnknown(o.String(), args)
}

// String returns a summary
func (o *FlatSlider2d) String() string {
	l := io.Sf("Element: %d  type: FlatSlider2d  iNode: %d  jNode: %d\n", o.tag, o.conn[0], o.conn[1])
	l += io.Sf("  FrictionModel: %d\n", o.Frn.Tag())
	l += io.Sf("  k0: %g  k2: %g  k3: %g  mu: %g\n", o.Prm.K0, o.Prm.K2, o.Prm.K3, o.Prm.Mu)
	l += io.Sf("  Material ux: %d\n", o.Mats[0].Tag())
	l += io.Sf("  Material rz: %d\n", o.Mats[1].Tag())
	l += io.Sf("  shearDistI: %g  addRayleigh: %v  mass: %g\n", o.Prm.ShearDistI, o.Prm.AddRayleigh, o.Prm.Mass)
	l += io.Sf("  maxIter: %d  tol: %g", o.Prm.MaxIter, o.Prm.Tol)
	return l
}
