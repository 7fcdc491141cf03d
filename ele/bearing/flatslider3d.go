// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bearing implements friction bearing elements
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

// contact states
const (
	Uplifted  = 0 // axial force is tensile; bearing lost contact
	InContact = 1 // axial force is compressive
)

// FlatSliderSimple3d implements a flat slider bearing with a bolted connection
//
//  basic system: ub = {axial, shear y, shear z, torsion, rotation y, rotation z}
//
//   Mats[0] -- axial material         Frn -- friction model (shear y and z)
//   Mats[1] -- torsion material       Mats[2], Mats[3] -- rotational materials
//
//  After uplift, the local stiffness is replaced by the stiffness of the bolted
//  connection whose translational response starts after the hole clearance is closed.
//
type FlatSliderSimple3d struct {

	// data
	Frn  frict.Model    // friction model
	Mats [4]uniax.Model // axial, torsion and rotational materials
	Prm  Params         // parameters
	X    []float64      // local x-axis; taken from nodes if empty
	Y    []float64      // vector in local x-y plane

	// derived
	L      float64    // length
	Tgl    *mat.Dense // [12][12] global to local transformation
	Tlb    *mat.Dense // [6][12] local to basic transformation
	KbInit *mat.Dense // [6][6] initial basic stiffness

	// state
	ContactState int        // Uplifted or InContact
	Ub           []float64  // [6] basic displacements
	Qb           []float64  // [6] basic forces
	Kb           *mat.Dense // [6][6] basic tangent
	Ul           []float64  // [12] local displacements
	UbPlastic    []float64  // [2] trial plastic displacements
	UbPlasticC   []float64  // [2] committed plastic displacements

	// auxiliary
	tag   int
	conn  []int
	nodes []ele.Node
	onP0  bool
	load  *mat.VecDense
}

// register element
func init() {
	ele.SetInfoFunc("flat-slider-3d", func(edat *inp.ElemData, ndim int) *ele.Info {
		if ndim != 3 {
			return nil
		}
		return ele.FrameInfo(3)
	})
	ele.SetAllocator("flat-slider-3d", func(edat *inp.ElemData, lib *ele.Library) (ele.Element, error) {
		if len(edat.Nodes) != 2 || len(edat.Mats) != 4 {
			return nil, chk.Err("flat-slider-3d needs 2 nodes and 4 materials. %d nodes and %d materials are invalid", len(edat.Nodes), len(edat.Mats))
		}
		frn, err := lib.Frn(edat.Frn)
		if err != nil {
			return nil, err
		}
		var mats [4]uniax.Model
		for i, m := range edat.Mats {
			if mats[i], err = lib.Mat(m); err != nil {
				return nil, err
			}
		}
		prm := Defaults3d()
		if err = prm.Init(edat.Prms.Dbf()); err != nil {
			return nil, err
		}
		y := edat.Yp
		if len(y) == 0 {
			y = []float64{0, 1, 0}
		}
		return NewFlatSliderSimple3d(edat.Tag, edat.Nodes[0], edat.Nodes[1], frn, mats[:], prm, y, edat.X)
	})
}

// NewFlatSliderSimple3d returns a new element. The friction model and materials are copied.
func NewFlatSliderSimple3d(tag, nd1, nd2 int, frn frict.Model, mats []uniax.Model, prm Params, y, x []float64) (o *FlatSliderSimple3d, err error) {
	if frn == nil {
		return nil, chk.Err("flat slider %d: friction model is missing", tag)
	}
	if len(mats) != 4 {
		return nil, chk.Err("flat slider %d: 4 materials are required. %d is invalid", tag, len(mats))
	}
	o = new(FlatSliderSimple3d)
	o.tag = tag
	o.conn = []int{nd1, nd2}
	o.Frn = frn.GetCopy()
	for i, m := range mats {
		if m == nil {
			return nil, chk.Err("flat slider %d: material %d is missing", tag, i)
		}
		o.Mats[i] = m.GetCopy()
	}
	o.Prm = prm
	o.X = append([]float64{}, x...)
	o.Y = append([]float64{}, y...)
	o.onP0 = true
	o.alloc()
	o.RevertToStart()
	return
}

// alloc allocates matrices and vectors and sets the initial stiffness
func (o *FlatSliderSimple3d) alloc() {
	o.Tgl = mat.NewDense(12, 12, nil)
	o.Tlb = mat.NewDense(6, 12, nil)
	o.Kb = mat.NewDense(6, 6, nil)
	o.Ub = make([]float64, 6)
	o.Qb = make([]float64, 6)
	o.Ul = make([]float64, 12)
	o.UbPlastic = make([]float64, 2)
	o.UbPlasticC = make([]float64, 2)
	o.load = mat.NewVecDense(12, nil)
	o.KbInit = mat.NewDense(6, 6, nil)
	o.KbInit.Set(0, 0, o.Mats[0].InitialTangent())
	o.KbInit.Set(1, 1, o.Prm.K0)
	o.KbInit.Set(2, 2, o.Prm.K0)
	o.KbInit.Set(3, 3, o.Mats[1].InitialTangent())
	o.KbInit.Set(4, 4, o.Mats[2].InitialTangent())
	o.KbInit.Set(5, 5, o.Mats[3].InitialTangent())
}

// Tag returns the element tag
func (o *FlatSliderSimple3d) Tag() int { return o.tag }

// ExternalNodes returns the node tags
func (o *FlatSliderSimple3d) ExternalNodes() []int { return o.conn }

// NumDOF returns 12
func (o *FlatSliderSimple3d) NumDOF() int { return 12 }

// SetDomain finds the nodes and computes the transformations
func (o *FlatSliderSimple3d) SetDomain(d ele.NodeProvider) (err error) {
	o.nodes, err = ele.FindNodes(d, o.tag, o.conn, 6)
	if err != nil {
		return
	}
	return o.setUp()
}

// setUp computes the orientation and the transformation matrices
func (o *FlatSliderSimple3d) setUp() (err error) {
	c1, c2 := o.nodes[0].Crds(), o.nodes[1].Crds()
	xp := make([]float64, 3)
	for i := 0; i < len(c1) && i < 3; i++ {
		xp[i] = c2[i] - c1[i]
	}
	o.L = math.Sqrt(xp[0]*xp[0] + xp[1]*xp[1] + xp[2]*xp[2])
	if o.L > uniax.DblEpsilon {
		if len(o.X) == 0 {
			o.X = xp
		} else if o.onP0 {
			logrus.WithFields(logrus.Fields{"element": o.tag}).Warn("flat slider: ignoring nodes and using the given local x vector to determine the orientation")
		}
	}
	e0, e1, e2, err := ele.Triad(o.X, o.Y)
	if err != nil {
		return chk.Err("flat slider %d: %v", o.tag, err)
	}

	// global to local
	o.Tgl.Zero()
	rows := [][]float64{{e0.X, e0.Y, e0.Z}, {e1.X, e1.Y, e1.Z}, {e2.X, e2.Y, e2.Z}}
	for b := 0; b < 4; b++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				o.Tgl.Set(3*b+i, 3*b+j, rows[i][j])
			}
		}
	}

	// local to basic
	o.Tlb.Zero()
	for i := 0; i < 6; i++ {
		o.Tlb.Set(i, i, -1)
		o.Tlb.Set(i, i+6, 1)
	}
	o.Tlb.Set(1, 5, -o.Prm.ShearDistI*o.L)
	o.Tlb.Set(1, 11, -(1-o.Prm.ShearDistI)*o.L)
	o.Tlb.Set(2, 4, -o.Tlb.At(1, 5))
	o.Tlb.Set(2, 10, -o.Tlb.At(1, 11))
	return
}

// Update resolves the axial, shear and rotational responses from the trial state of nodes
func (o *FlatSliderSimple3d) Update() int {

	// global to local to basic
	ug := ele.Gather(o.nodes, ele.Node.TrialDisp)
	vg := ele.Gather(o.nodes, ele.Node.TrialVel)
	mulVec(o.Ul, o.Tgl, ug.RawVector().Data)
	mulVec(o.Ub, o.Tlb, o.Ul)
	uldot := make([]float64, 12)
	ubdot := make([]float64, 6)
	mulVec(uldot, o.Tgl, vg.RawVector().Data)
	mulVec(ubdot, o.Tlb, uldot)
	ubdotAbs := math.Sqrt(ubdot[1]*ubdot[1] + ubdot[2]*ubdot[2])

	// axial
	ub0Old := o.Mats[0].Strain()
	o.Mats[0].SetTrialStrain(o.Ub[0], ubdot[0])
	o.Qb[0] = o.Mats[0].Stress()
	o.Kb.Set(0, 0, o.Mats[0].Tangent())
	o.ContactState = InContact

	// uplift
	if o.Qb[0] >= 0 {
		o.UbPlastic[0] = o.Ub[1]
		o.UbPlastic[1] = o.Ub[2]
		for i := range o.Qb {
			o.Qb[i] = 0
		}
		o.ContactState = Uplifted
		o.Mats[0].SetTrialStrain(ub0Old, 0)
		o.Kb.Scale(o.Prm.KFactUplift, o.KbInit)
		return 0
	}

	// shear
	k0 := o.Prm.K0
	iter := 0
	var norm float64
	for {
		iter++
		qbOld0, qbOld1 := o.Qb[1], o.Qb[2]

		// normal and friction (yield) forces
		N := math.Max(-o.Qb[0], 0)
		o.Frn.SetTrial(N, ubdotAbs)
		qYield := o.Frn.FrictionForce()

		// trial shear forces of the hysteretic component
		qTrial := [2]float64{k0 * (o.Ub[1] - o.UbPlasticC[0]), k0 * (o.Ub[2] - o.UbPlasticC[1])}
		Y := [2]float64{math.Abs(qTrial[0]) - qYield, math.Abs(qTrial[1]) - qYield}
		elStrain := qYield / k0

		for d := 0; d < 2; d++ {
			i := d + 1
			if Y[d] <= 0 {
				o.Qb[i] = qTrial[d] + 1e-6*k0*o.UbPlastic[d]
				o.Kb.Set(i, i, k0)
			} else {
				o.UbPlastic[d] = o.UbPlasticC[d] + Y[d]/k0*sign(qTrial[d])
				o.Qb[i] = qYield*sign(qTrial[d]) + 1e-6*k0*o.UbPlastic[d]
				o.Kb.Set(i, i, 1e-6*k0*1000)
			}
			o.Kb.Set(1, 2, 0)
			o.Kb.Set(2, 1, 0)
		}

		// bolt bearing after the clearance is closed
		for d := 0; d < 2; d++ {
			i := d + 1
			excess := math.Abs(o.Ub[i]) - elStrain - Clearance
			if excess <= 0 {
				continue
			}
			switch {
			case Y[d] > 0 && o.Qb[i]*o.Ub[i] > 0:
				o.Qb[i] += KBearing * excess * sign(o.UbPlastic[d])
				o.Kb.Set(i, i, o.Kb.At(i, i)+KBearing*50)
			case Y[d] <= 0:
				o.Qb[i] += KBearing * excess * sign(o.Ub[i])
				o.Kb.Set(i, i, o.Kb.At(i, i)+KBearing)
			default:
				o.Qb[i] += KBearing * excess * sign(o.UbPlastic[d])
				o.Kb.Set(i, i, o.Kb.At(i, i)+KBearing)
			}
		}

		norm = math.Hypot(o.Qb[1]-qbOld0, o.Qb[2]-qbOld1)
		if norm < o.Prm.Tol || iter > o.Prm.MaxIter {
			break
		}
	}
	if iter >= o.Prm.MaxIter {
		logrus.WithFields(logrus.Fields{"element": o.tag, "iter": iter, "norm": norm}).Warn("flat slider: did not find the shear force")
		return -1
	}

	// torsion and rotations
	for i := 1; i < 4; i++ {
		o.Mats[i].SetTrialStrain(o.Ub[i+2], ubdot[i+2])
		o.Qb[i+2] = o.Mats[i].Stress()
		o.Kb.Set(i+2, i+2, o.Mats[i].Tangent())
	}
	return 0
}

// TangentStiff returns the tangent in global coordinates including P-Δ and V-Δ terms
func (o *FlatSliderSimple3d) TangentStiff() *mat.Dense {
	var kl *mat.Dense
	if o.ContactState == Uplifted {
		kl = boltMatrix(o.Prm.K0)
		logrus.WithFields(logrus.Fields{"element": o.tag, "k11": kl.At(1, 1)}).Debug("flat slider: bolt stiffness")
	} else {
		kl = ele.TtAT(o.Tlb, o.Kb)
		Ls := (1 - o.Prm.ShearDistI) * o.L
		q0, q1, q2 := o.Qb[0], o.Qb[1], o.Qb[2]
		add := func(i, j int, v float64) { kl.Set(i, j, kl.At(i, j)+v) }

		// P-Δ moments
		add(5, 1, -q0)
		add(5, 7, q0)
		add(5, 11, -q0*Ls)
		add(11, 11, q0*Ls)
		add(4, 2, q0)
		add(4, 8, -q0)
		add(4, 10, -q0*Ls)
		add(10, 10, q0*Ls)

		// V-Δ torsion
		add(3, 1, q2)
		add(3, 2, -q1)
		add(3, 7, -q2)
		add(3, 8, q1)
		add(3, 10, q1*Ls)
		add(3, 11, q2*Ls)
		add(9, 10, -q1*Ls)
		add(9, 11, -q2*Ls)
	}
	return ele.TtAT(o.Tgl, kl)
}

// InitialStiff returns the initial tangent in global coordinates
func (o *FlatSliderSimple3d) InitialStiff() *mat.Dense {
	return ele.TtAT(o.Tgl, ele.TtAT(o.Tlb, o.KbInit))
}

// Damp returns the damping matrix: material damping tangents plus Rayleigh damping if requested
func (o *FlatSliderSimple3d) Damp() *mat.Dense {
	cb := mat.NewDense(6, 6, nil)
	cb.Set(0, 0, o.Mats[0].DampTangent())
	cb.Set(3, 3, o.Mats[1].DampTangent())
	cb.Set(4, 4, o.Mats[2].DampTangent())
	cb.Set(5, 5, o.Mats[3].DampTangent())
	C := ele.TtAT(o.Tgl, ele.TtAT(o.Tlb, cb))
	if o.Prm.AddRayleigh {
		C.Add(C, o.Prm.Ray.Damp(o))
	}
	return C
}

// Mass returns the lumped mass matrix
func (o *FlatSliderSimple3d) Mass() *mat.Dense {
	M := mat.NewDense(12, 12, nil)
	if o.Prm.Mass == 0 {
		return M
	}
	m := 0.5 * o.Prm.Mass
	for i := 0; i < 3; i++ {
		M.Set(i, i, m)
		M.Set(i+6, i+6, m)
	}
	return M
}

// ZeroLoad clears the element loads
func (o *FlatSliderSimple3d) ZeroLoad() { o.load.Zero() }

// AddInertiaLoadToUnbalance adds -M⋅R⋅accel to the element loads
func (o *FlatSliderSimple3d) AddInertiaLoadToUnbalance(accel []float64) int {
	if o.Prm.Mass == 0 {
		return 0
	}
	r1, r2 := o.nodes[0].RV(accel), o.nodes[1].RV(accel)
	if len(r1) != 6 || len(r2) != 6 {
		logrus.WithFields(logrus.Fields{"element": o.tag}).Warn("flat slider: matrix and vector sizes are incompatible")
		return -1
	}
	m := 0.5 * o.Prm.Mass
	for i := 0; i < 3; i++ {
		o.load.SetVec(i, o.load.AtVec(i)-m*r1[i])
		o.load.SetVec(i+6, o.load.AtVec(i+6)-m*r2[i])
	}
	return 0
}

// localForces returns the local forces including P-Δ and V-Δ terms
func (o *FlatSliderSimple3d) localForces() []float64 {
	ql := make([]float64, 12)
	mulVec(ql, o.Tlb.T(), o.Qb)
	ul := o.Ul
	Ls := (1 - o.Prm.ShearDistI) * o.L
	q0, q1, q2 := o.Qb[0], o.Qb[1], o.Qb[2]

	// P-Δ moments
	mp1 := q0 * (ul[7] - ul[1])
	ql[5] += mp1
	mp2 := q0 * Ls * ul[11]
	ql[5] -= mp2
	ql[11] += mp2
	mp3 := q0 * (ul[8] - ul[2])
	ql[4] -= mp3
	mp4 := q0 * Ls * ul[10]
	ql[4] -= mp4
	ql[10] += mp4

	// V-Δ torsion
	vd1 := q1*(ul[8]-ul[2]) - q2*(ul[7]-ul[1])
	ql[3] += vd1
	vd2 := Ls * (q1*ul[10] + q2*ul[11])
	ql[3] += vd2
	ql[9] -= vd2
	return ql
}

// ResistingForce returns the internal force in global coordinates
func (o *FlatSliderSimple3d) ResistingForce() *mat.VecDense {
	var ql []float64
	if o.ContactState == Uplifted {
		ul2 := append([]float64{}, o.Ul...)
		for _, i := range []int{1, 2, 7, 8} {
			ul2[i] = clearanceReduced(o.Ul[i])
		}
		ql = make([]float64, 12)
		mulVec(ql, boltMatrix(o.Prm.K0), ul2)
	} else {
		ql = o.localForces()
	}
	f := mat.NewVecDense(12, nil)
	f.MulVec(o.Tgl.T(), mat.NewVecDense(12, ql))
	return f
}

// ResistingForceIncInertia returns the internal force minus loads plus Rayleigh and inertia forces
func (o *FlatSliderSimple3d) ResistingForceIncInertia() *mat.VecDense {
	f := o.ResistingForce()
	f.SubVec(f, o.load)
	if o.Prm.AddRayleigh && o.Prm.Ray.Active() {
		f.AddVec(f, o.Prm.Ray.Forces(o, o.nodes))
	}
	if o.Prm.Mass != 0 {
		a1, a2 := o.nodes[0].TrialAccel(), o.nodes[1].TrialAccel()
		m := 0.5 * o.Prm.Mass
		for i := 0; i < 3; i++ {
			f.SetVec(i, f.AtVec(i)+m*a1[i])
			f.SetVec(i+6, f.AtVec(i+6)+m*a2[i])
		}
	}
	return f
}

// Commit commits the plastic displacements, the friction model and the materials
func (o *FlatSliderSimple3d) Commit() (res int) {
	copy(o.UbPlasticC, o.UbPlastic)
	res += o.Frn.Commit()
	for _, m := range o.Mats {
		res += m.Commit()
	}
	if o.nodes != nil {
		o.Prm.Ray.CommitStiff(o)
	}
	return
}

// RevertToLastCommit reverts the friction model and the materials
func (o *FlatSliderSimple3d) RevertToLastCommit() (res int) {
	res += o.Frn.RevertToLastCommit()
	for _, m := range o.Mats {
		res += m.RevertToLastCommit()
	}
	return
}

// RevertToStart clears the history
func (o *FlatSliderSimple3d) RevertToStart() (res int) {
	for i := range o.Ub {
		o.Ub[i], o.Qb[i] = 0, 0
	}
	for i := range o.UbPlastic {
		o.UbPlastic[i], o.UbPlasticC[i] = 0, 0
	}
	o.Kb.Copy(o.KbInit)
	o.ContactState = InContact
	res += o.Frn.RevertToStart()
	for _, m := range o.Mats {
		res += m.RevertToStart()
	}
	return
}

// SendSelf sends the parameters, the friction model and the materials
func (o *FlatSliderSimple3d) SendSelf(commitTag int, ch persist.Channel) (err error) {
	addRay := 0.0
	if o.Prm.AddRayleigh {
		addRay = 1
	}
	data := []float64{
		float64(o.tag), o.Prm.K0, o.Prm.ShearDistI, addRay, o.Prm.Mass, float64(o.Prm.MaxIter),
		o.Prm.Tol, o.Prm.KFactUplift, float64(len(o.X)), float64(len(o.Y)),
		o.Prm.Ray.AlphaM, o.Prm.Ray.BetaK, o.Prm.Ray.BetaK0, o.Prm.Ray.BetaKc,
	}
	if err = ch.SendVector(commitTag, data); err != nil {
		return
	}
	if err = ch.SendID(commitTag, o.conn); err != nil {
		return
	}
	if err = ch.SendID(commitTag, []int{o.Frn.ClassTag()}); err != nil {
		return
	}
	if err = o.Frn.SendSelf(commitTag, ch); err != nil {
		return
	}
	classTags := make([]int, 4)
	for i, m := range o.Mats {
		classTags[i] = m.ClassTag()
	}
	if err = ch.SendID(commitTag, classTags); err != nil {
		return
	}
	for _, m := range o.Mats {
		if err = m.SendSelf(commitTag, ch); err != nil {
			return
		}
	}
	if len(o.X) == 3 {
		if err = ch.SendVector(commitTag, o.X); err != nil {
			return
		}
	}
	if len(o.Y) == 3 {
		err = ch.SendVector(commitTag, o.Y)
	}
	return
}

// RecvSelf receives the element; blank sub-models are obtained from the broker.
// The element starts from a clean state.
func (o *FlatSliderSimple3d) RecvSelf(commitTag int, ch persist.Channel, b ele.Broker) (err error) {
	data := make([]float64, 14)
	if err = ch.RecvVector(commitTag, data); err != nil {
		return
	}
	o.tag = int(data[0])
	o.Prm.K0 = data[1]
	o.Prm.ShearDistI = data[2]
	o.Prm.AddRayleigh = data[3] == 1
	o.Prm.Mass = data[4]
	o.Prm.MaxIter = int(data[5])
	o.Prm.Tol = data[6]
	o.Prm.KFactUplift = data[7]
	o.Prm.Ray.AlphaM = data[10]
	o.Prm.Ray.BetaK = data[11]
	o.Prm.Ray.BetaK0 = data[12]
	o.Prm.Ray.BetaKc = data[13]
	o.conn = make([]int, 2)
	if err = ch.RecvID(commitTag, o.conn); err != nil {
		return
	}
	frnClass := make([]int, 1)
	if err = ch.RecvID(commitTag, frnClass); err != nil {
		return
	}
	if o.Frn, err = b.NewFrictionModel(frnClass[0]); err != nil {
		return
	}
	if err = o.Frn.RecvSelf(commitTag, ch); err != nil {
		return
	}
	classTags := make([]int, 4)
	if err = ch.RecvID(commitTag, classTags); err != nil {
		return
	}
	for i := range o.Mats {
		if o.Mats[i], err = b.NewUniaxialMaterial(classTags[i]); err != nil {
			return
		}
		if err = o.Mats[i].RecvSelf(commitTag, ch); err != nil {
			return
		}
	}
	o.X, o.Y = nil, nil
	if int(data[8]) == 3 {
		o.X = make([]float64, 3)
		if err = ch.RecvVector(commitTag, o.X); err != nil {
			return
		}
	}
	if int(data[9]) == 3 {
		o.Y = make([]float64, 3)
		if err = ch.RecvVector(commitTag, o.Y); err != nil {
			return
		}
	}
	o.onP0 = false
	o.alloc()
	o.RevertToStart()
	return
}

// DisplayPoints returns the end points of the two lines used to draw the element:
// node i to the displaced position of node j measured from node i, and from there to node j
func (o *FlatSliderSimple3d) DisplayPoints(fact float64) (v1, v2, v3 []float64) {
	c1, c2 := o.nodes[0].Crds(), o.nodes[1].Crds()
	d1, d2 := o.nodes[0].Disp(), o.nodes[1].Disp()
	xp := []float64{c2[0] - c1[0], c2[1] - c1[1], c2[2] - c1[2]}
	v1, v2, v3 = make([]float64, 3), make([]float64, 3), make([]float64, 3)
	for i := 0; i < 3; i++ {
		v1[i] = c1[i] + d1[i]*fact
		v3[i] = c2[i] + d2[i]*fact
	}
	v2[0] = c1[0] + (d2[0]+xp[1]*d2[5]-xp[2]*d2[4])*fact
	v2[1] = c1[1] + (d2[1]-xp[0]*d2[5]+xp[2]*d2[3])*fact
	v2[2] = c1[2] + (d2[2]+xp[0]*d2[4]-xp[1]*d2[3])*fact
	return
}

// SetResponse returns handles to element results
func (o *FlatSliderSimple3d) SetResponse(args []string) (response.Response, error) {
	if len(args) == 0 {
		return nil, response.ErrUnknown(o.String(), args)
	}
	key := args[0]
	switch {
	case response.Match(key, "force", "forces", "globalForce", "globalForces"):
		return response.New(labels12("P", "M"), func() []float64 {
			return o.ResistingForce().RawVector().Data
		}), nil
	case response.Match(key, "localForce", "localForces"):
		return response.New([]string{"N_1", "Vy_1", "Vz_1", "T_1", "My_1", "Mz_1", "N_2", "Vy_2", "Vz_2", "T_2", "My_2", "Mz_2"}, o.localForces), nil
	case response.Match(key, "basicForce", "basicForces"):
		return response.New(response.Numbered("qb", 6), func() []float64 { return append([]float64{}, o.Qb...) }), nil
	case response.Match(key, "localDisplacement", "localDisplacements"):
		return response.New(labels12("u", "r"), func() []float64 { return append([]float64{}, o.Ul...) }), nil
	case response.Match(key, "deformation", "deformations", "basicDeformation", "basicDeformations", "basicDisplacement", "basicDisplacements"):
		return response.New(response.Numbered("ub", 6), func() []float64 { return append([]float64{}, o.Ub...) }), nil
	case key == "contactState":
		return response.Scalar("contactState", func() float64 { return float64(o.ContactState) }), nil
	case key == "material":
		if len(args) > 2 {
			n, err := atoi(args[1])
			if err == nil && n >= 1 && n <= 4 {
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
func (o *FlatSliderSimple3d) String() string {
	l := io.Sf("Element: %d  type: FlatSliderSimple3d  iNode: %d  jNode: %d\n", o.tag, o.conn[0], o.conn[1])
	l += io.Sf("  FrictionModel: %d\n", o.Frn.Tag())
	l += io.Sf("  kInit: %g\n", o.Prm.K0)
	l += io.Sf("  Material ux: %d\n", o.Mats[0].Tag())
	l += io.Sf("  Material rx: %d\n", o.Mats[1].Tag())
	l += io.Sf("  Material ry: %d\n", o.Mats[2].Tag())
	l += io.Sf("  Material rz: %d\n", o.Mats[3].Tag())
	l += io.Sf("  shearDistI: %g  addRayleigh: %v  mass: %g\n", o.Prm.ShearDistI, o.Prm.AddRayleigh, o.Prm.Mass)
	l += io.Sf("  maxIter: %d  tol: %g", o.Prm.MaxIter, o.Prm.Tol)
	return l
}
