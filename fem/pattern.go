// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/dct328/gosees/inp"
	"github.com/dct328/gosees/tseries"

	"github.com/cpmech/gosl/chk"
)

// Pattern applies loads scaled by a time series
//  plain   -- nodal loads: Fᵢ = λ(t)⋅Pᵢ
//  uniform -- ground acceleration along Dof: üg(t) = λ(t); loads are -M⋅R⋅üg
type Pattern struct {
	Tag    int             // tag of pattern
	Type   string          // "plain" or "uniform"
	Series tseries.Series  // load factors
	Loads  []*inp.LoadData // nodal loads (plain)
	Dof    int             // direction of ground motion (uniform)
}

// NewPattern returns a new pattern
func NewPattern(pd *inp.PatternData, series map[int]tseries.Series) (o *Pattern, err error) {
	s, ok := series[pd.Series]
	if !ok {
		return nil, chk.Err("pattern %d: cannot find series %d", pd.Tag, pd.Series)
	}
	o = &Pattern{Tag: pd.Tag, Type: pd.Type, Series: s, Loads: pd.Loads, Dof: pd.Dof}
	if o.Type == "" {
		o.Type = "plain"
	}
	if o.Type != "plain" && o.Type != "uniform" {
		return nil, chk.Err("pattern %d: type %q is invalid; options are \"plain\" and \"uniform\"", pd.Tag, pd.Type)
	}
	return
}

// Apply adds the loads of this pattern at time t to nodes and elements
func (o *Pattern) Apply(d *Domain, t float64) {
	λ := o.Series.Factor(t)
	if o.Type == "plain" {
		for _, l := range o.Loads {
			d.tag2node[l.Node].AddLoad(l.Vals, λ)
		}
		return
	}
	accel := make([]float64, d.Ndim)
	if o.Dof < d.Ndim {
		accel[o.Dof] = λ
	}
	for _, n := range d.Nodes {
		n.AddInertiaLoad(accel)
	}
	for _, e := range d.Elems {
		e.AddInertiaLoadToUnbalance(accel)
	}
}
