// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package beam implements beam-column elements
package beam

import (
	"math"
	"strconv"

	"github.com/dct328/gosees/ele"
	"github.com/dct328/gosees/inp"
	"github.com/dct328/gosees/persist"
	"github.com/dct328/gosees/response"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// ElasticBeam2d represents a linear elastic Euler-Bernoulli beam in 2D
//
//        y1
//         ^
//         |      q1                      q2
//        (0)-------------------------------(1)------> y0   q0: axial force
//
//  basic system (linear transformation):
//
//   v0 = ul3 - ul0                     elongation
//   v1 = ul2 - (ul4 - ul1) / L         rotation at node 0 relative to chord
//   v2 = ul5 - (ul4 - ul1) / L         rotation at node 1 relative to chord
//
type ElasticBeam2d struct {

	// parameters
	A     float64 // cross-sectional area
	E     float64 // Young's modulus
	I     float64 // second moment of area
	Alpha float64 // coefficient of thermal expansion; stored and sent only, no thermal loads
	D     float64 // depth of section; stored and sent only
	Rho   float64 // mass per unit length
	CMass bool    // consistent mass; lumped otherwise

	// derived
	L   float64    // length
	Tgl *mat.Dense // [6][6] global to local
	Tlb *mat.Dense // [3][6] local to basic
	Kb  *mat.Dense // [3][3] basic stiffness

	// state
	V []float64 // [3] basic deformations
	Q []float64 // [3] basic forces

	// auxiliary
	tag   int
	conn  []int
	nodes []ele.Node
	ray   ele.Rayleigh
	load  *mat.VecDense
}

// register element
func init() {
	ele.SetInfoFunc("elastic-beam-2d", func(edat *inp.ElemData, ndim int) *ele.Info {
		if ndim != 2 {
			return nil
		}
		return ele.FrameInfo(2)
	})
	ele.SetAllocator("elastic-beam-2d", func(edat *inp.ElemData, lib *ele.Library) (ele.Element, error) {
		if len(edat.Nodes) != 2 {
			return nil, chk.Err("elastic-beam-2d needs 2 nodes. %d is invalid", len(edat.Nodes))
		}
		o, err := New(edat.Tag, edat.Nodes[0], edat.Nodes[1], edat.Prms.Dbf())
		if err != nil {
			return nil, err
		}
		o.SetRayleigh(ele.NewRayleigh(edat.Prms))
		return o, nil
	})
}

// New returns a new beam. Parameters: A, E, I, alpha, d, rho, cMass and Rayleigh factors
//  Note: alpha and d are kept in records for compatibility only
func New(tag, nd1, nd2 int, prms dbf.Params) (o *ElasticBeam2d, err error) {
	o = &ElasticBeam2d{tag: tag, conn: []int{nd1, nd2}}
	for _, p := range prms {
		switch p.N {
		case "A":
			o.A = p.V
		case "E":
			o.E = p.V
		case "I", "Iz":
			o.I = p.V
		case "alpha":
			o.Alpha = p.V
		case "d", "depth":
			o.D = p.V
		case "rho", "mass":
			o.Rho = p.V
		case "cMass":
			o.CMass = p.V > 0
		case "alphaM", "betaK", "betaK0", "betaKc":
		default:
			return nil, chk.Err("elastic beam: parameter named %q is invalid", p.N)
		}
	}
	ϵp := 1e-9
	if o.E < ϵp || o.A < ϵp || o.I < ϵp {
		return nil, chk.Err("elastic beam %d: E, A and I must be all positive", tag)
	}
	if o.Rho < 0 {
		return nil, chk.Err("elastic beam %d: rho must not be negative", tag)
	}
	o.Tgl = mat.NewDense(6, 6, nil)
	o.Tlb = mat.NewDense(3, 6, nil)
	o.Kb = mat.NewDense(3, 3, nil)
	o.V = make([]float64, 3)
	o.Q = make([]float64, 3)
	o.load = mat.NewVecDense(6, nil)
	return
}

// SetRayleigh sets Rayleigh damping factors
func (o *ElasticBeam2d) SetRayleigh(r ele.Rayleigh) { o.ray = r }

// Tag returns the element tag
func (o *ElasticBeam2d) Tag() int { return o.tag }

// ExternalNodes returns the node tags
func (o *ElasticBeam2d) ExternalNodes() []int { return o.conn }

// NumDOF returns 6
func (o *ElasticBeam2d) NumDOF() int { return 6 }

// SetDomain finds the nodes and computes the transformations and the basic stiffness
func (o *ElasticBeam2d) SetDomain(d ele.NodeProvider) (err error) {
	o.nodes, err = ele.FindNodes(d, o.tag, o.conn, 3)
	if err != nil {
		return
	}
	c1, c2 := o.nodes[0].Crds(), o.nodes[1].Crds()
	dx := c2[0] - c1[0]
	dy := c2[1] - c1[1]
	l := math.Sqrt(dx*dx + dy*dy)
	if l == 0 {
		return chk.Err("elastic beam %d: length is zero", o.tag)
	}
	o.L = l
	c := dx / l
	s := dy / l

	// T
	o.Tgl.Zero()
	for k := 0; k < 2; k++ {
		o.Tgl.Set(3*k+0, 3*k+0, c)
		o.Tgl.Set(3*k+0, 3*k+1, s)
		o.Tgl.Set(3*k+1, 3*k+0, -s)
		o.Tgl.Set(3*k+1, 3*k+1, c)
		o.Tgl.Set(3*k+2, 3*k+2, 1)
	}
	o.Tlb.Zero()
	o.Tlb.Set(0, 0, -1)
	o.Tlb.Set(0, 3, 1)
	for i := 1; i < 3; i++ {
		o.Tlb.Set(i, 1, 1/l)
		o.Tlb.Set(i, 4, -1/l)
	}
	o.Tlb.Set(1, 2, 1)
	o.Tlb.Set(2, 5, 1)

	// K
	EI := o.E * o.I
	o.Kb.Set(0, 0, o.E*o.A/l)
	o.Kb.Set(1, 1, 4*EI/l)
	o.Kb.Set(1, 2, 2*EI/l)
	o.Kb.Set(2, 1, 2*EI/l)
	o.Kb.Set(2, 2, 4*EI/l)
	return
}

// localDisp returns the local displacements
func (o *ElasticBeam2d) localDisp() []float64 {
	var ul mat.VecDense
	ul.MulVec(o.Tgl, ele.Gather(o.nodes, ele.Node.TrialDisp))
	return ul.RawVector().Data
}

// Update computes basic deformations and forces
func (o *ElasticBeam2d) Update() int {
	ul := o.localDisp()
	v := mat.NewVecDense(3, o.V)
	v.MulVec(o.Tlb, mat.NewVecDense(6, ul))
	q := mat.NewVecDense(3, o.Q)
	q.MulVec(o.Kb, v)
	return 0
}

// TangentStiff returns Tglᵀ⋅Tlbᵀ⋅Kb⋅Tlb⋅Tgl
func (o *ElasticBeam2d) TangentStiff() *mat.Dense {
	return ele.TtAT(o.Tgl, ele.TtAT(o.Tlb, o.Kb))
}

// InitialStiff equals the tangent
func (o *ElasticBeam2d) InitialStiff() *mat.Dense { return o.TangentStiff() }

// Damp returns the Rayleigh damping matrix
func (o *ElasticBeam2d) Damp() *mat.Dense {
	return o.ray.Damp(o)
}

// Mass returns the lumped or consistent mass matrix
func (o *ElasticBeam2d) Mass() *mat.Dense {
	M := mat.NewDense(6, 6, nil)
	if o.Rho == 0 {
		return M
	}
	l := o.L
	if !o.CMass {
		m := 0.5 * o.Rho * l
		for _, i := range []int{0, 1, 3, 4} {
			M.Set(i, i, m)
		}
		return M
	}
	ll := l * l
	m := o.Rho * l / 420.0
	Ml := mat.NewDense(6, 6, []float64{
		140 * m, 0, 0, 70 * m, 0, 0,
		0, 156 * m, 22 * l * m, 0, 54 * m, -13 * l * m,
		0, 22 * l * m, 4 * ll * m, 0, 13 * l * m, -3 * ll * m,
		70 * m, 0, 0, 140 * m, 0, 0,
		0, 54 * m, 13 * l * m, 0, 156 * m, -22 * l * m,
		0, -13 * l * m, -3 * ll * m, 0, -22 * l * m, 4 * ll * m,
	})
	return ele.TtAT(o.Tgl, Ml)
}

// ZeroLoad clears the element loads
func (o *ElasticBeam2d) ZeroLoad() { o.load.Zero() }

// AddInertiaLoadToUnbalance adds -M⋅R⋅accel using the lumped translational mass
func (o *ElasticBeam2d) AddInertiaLoadToUnbalance(accel []float64) int {
	if o.Rho == 0 {
		return 0
	}
	r1, r2 := o.nodes[0].RV(accel), o.nodes[1].RV(accel)
	if len(r1) != 3 || len(r2) != 3 {
		return -1
	}
	m := 0.5 * o.Rho * o.L
	for i := 0; i < 2; i++ {
		o.load.SetVec(i, o.load.AtVec(i)-m*r1[i])
		o.load.SetVec(i+3, o.load.AtVec(i+3)-m*r2[i])
	}
	return 0
}

// localForces returns [N1, V1, M1, N2, V2, M2] in the local system
func (o *ElasticBeam2d) localForces() []float64 {
	var ql mat.VecDense
	ql.MulVec(o.Tlb.T(), mat.NewVecDense(3, o.Q))
	return ql.RawVector().Data
}

// ResistingForce returns the internal force in global coordinates
func (o *ElasticBeam2d) ResistingForce() *mat.VecDense {
	f := mat.NewVecDense(6, nil)
	f.MulVec(o.Tgl.T(), mat.NewVecDense(6, o.localForces()))
	return f
}

// ResistingForceIncInertia returns the internal force minus loads plus damping and inertia forces
func (o *ElasticBeam2d) ResistingForceIncInertia() *mat.VecDense {
	f := o.ResistingForce()
	f.SubVec(f, o.load)
	if o.ray.Active() {
		f.AddVec(f, o.ray.Forces(o, o.nodes))
	}
	if o.Rho != 0 {
		var fi mat.VecDense
		fi.MulVec(o.Mass(), ele.Gather(o.nodes, ele.Node.TrialAccel))
		f.AddVec(f, &fi)
	}
	return f
}

// Commit commits the stiffness used by Rayleigh damping
func (o *ElasticBeam2d) Commit() int {
	if o.nodes != nil {
		o.ray.CommitStiff(o)
	}
	return 0
}

// RevertToLastCommit does nothing; the beam has no history
func (o *ElasticBeam2d) RevertToLastCommit() int { return 0 }

// RevertToStart clears the basic deformations and forces
func (o *ElasticBeam2d) RevertToStart() int {
	for i := range o.V {
		o.V[i], o.Q[i] = 0, 0
	}
	return 0
}

// SendSelf sends the parameters
func (o *ElasticBeam2d) SendSelf(commitTag int, ch persist.Channel) (err error) {
	cmass := 0.0
	if o.CMass {
		cmass = 1
	}
	data := []float64{float64(o.tag), o.A, o.E, o.I, o.Alpha, o.D, o.Rho, cmass,
		o.ray.AlphaM, o.ray.BetaK, o.ray.BetaK0, o.ray.BetaKc}
	if err = ch.SendVector(commitTag, data); err != nil {
		return
	}
	return ch.SendID(commitTag, o.conn)
}

// RecvSelf receives the parameters
func (o *ElasticBeam2d) RecvSelf(commitTag int, ch persist.Channel, b ele.Broker) (err error) {
	data := make([]float64, 12)
	if err = ch.RecvVector(commitTag, data); err != nil {
		return
	}
	conn := make([]int, 2)
	if err = ch.RecvID(commitTag, conn); err != nil {
		return
	}
	r, err := New(int(data[0]), conn[0], conn[1], dbf.Params{
		&dbf.P{N: "A", V: data[1]}, &dbf.P{N: "E", V: data[2]}, &dbf.P{N: "I", V: data[3]},
		&dbf.P{N: "alpha", V: data[4]}, &dbf.P{N: "d", V: data[5]}, &dbf.P{N: "rho", V: data[6]},
		&dbf.P{N: "cMass", V: data[7]},
	})
	if err != nil {
		return
	}
	r.ray = ele.Rayleigh{AlphaM: data[8], BetaK: data[9], BetaK0: data[10], BetaKc: data[11]}
	*o = *r
	return
}

// Moments computes bending moments at nstations equally spaced points along the beam
//  M(ξ) = EI⋅d²v/dτ² with Hermite interpolation of local displacements; ξ in [0, 1]
func (o *ElasticBeam2d) Moments(nstations int) (M []float64) {
	if nstations < 2 {
		nstations = 2
	}
	ua := o.localDisp()
	l := o.L
	ll := l * l
	lll := ll * l
	M = make([]float64, nstations)
	dξ := 1.0 / float64(nstations-1)
	for i := 0; i < nstations; i++ {
		τ := float64(i) * dξ * l
		M[i] = o.E * o.I * (ua[1]*((12.0*τ)/lll-6.0/ll) + ua[2]*((6.0*τ)/ll-4.0/l) + ua[4]*(6.0/ll-(12.0*τ)/lll) + ua[5]*((6.0*τ)/ll-2.0/l))
	}
	return
}

// SetResponse returns handles to element results
func (o *ElasticBeam2d) SetResponse(args []string) (response.Response, error) {
	if len(args) == 0 {
		return nil, response.ErrUnknown(o.String(), args)
	}
	switch {
	case response.Match(args[0], "force", "forces", "globalForce", "globalForces"):
		return response.New([]string{"Px_1", "Py_1", "Mz_1", "Px_2", "Py_2", "Mz_2"}, func() []float64 {
			return o.ResistingForce().RawVector().Data
		}), nil
	case response.Match(args[0], "localForce", "localForces"):
		return response.New([]string{"N_1", "V_1", "M_1", "N_2", "V_2", "M_2"}, o.localForces), nil
	case response.Match(args[0], "basicForce", "basicForces"):
		return response.New([]string{"N", "M_1", "M_2"}, func() []float64 { return append([]float64{}, o.Q...) }), nil
	case response.Match(args[0], "deformation", "deformations", "basicDeformation", "basicDeformations"):
		return response.New([]string{"eps", "theta_1", "theta_2"}, func() []float64 { return append([]float64{}, o.V...) }), nil
	case args[0] == "moments":
		n := 11
		if len(args) > 1 {
			k, err := strconv.Atoi(args[1])
			if err != nil {
				return nil, chk.Err("elastic beam %d: number of stations %q is invalid", o.tag, args[1])
			}
			n = k
		}
		return response.New(nil, func() []float64 { return o.Moments(n) }), nil
	}
	return nil, response.ErrUnknown(o.String(), args)
}

// String returns a summary
func (o *ElasticBeam2d) String() string {
	l := io.Sf("ElasticBeam2d: %d\n", o.tag)
	l += io.Sf("  Connected Nodes: %v\n", o.conn)
	l += io.Sf("  A: %g  E: %g  I: %g\n", o.A, o.E, o.I)
	l += io.Sf("  alpha: %g  d: %g  rho: %g  cMass: %v", o.Alpha, o.D, o.Rho, o.CMass)
	return l
}
