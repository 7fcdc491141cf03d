// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"strconv"

	"github.com/dct328/gosees/fem"
	"github.com/dct328/gosees/inp"
	"github.com/dct328/gosees/response"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Recorder holds the history of one response
type Recorder struct {
	Key    string            // recorder key
	Resp   response.Response // handle to the values
	Labels []string          // labels of components
	Rows   [][]float64       // [nrecords][1+ncomp] time followed by values
}

// NewRecorder allocates a new recorder
//  node    -- args: "disp", "vel" or "accel" followed by an optional DOF index
//  element -- args are passed to the element
func NewRecorder(rd *inp.RecorderData, d *fem.Domain) (o *Recorder, err error) {
	o = &Recorder{Key: rd.Key}
	switch rd.Type {
	case "node":
		o.Resp, err = nodeResponse(d.GetNode(rd.Tag), rd.Args)
	case "element":
		e := d.Element(rd.Tag)
		if e == nil {
			return nil, chk.Err("cannot find element %d", rd.Tag)
		}
		o.Resp, err = e.SetResponse(rd.Args)
	default:
		err = chk.Err("type %q is invalid", rd.Type)
	}
	if err != nil {
		return nil, err
	}
	o.Labels = o.Resp.Labels()
	return
}

// nodeResponse returns a handle to nodal values
func nodeResponse(n *fem.Node, args []string) (response.Response, error) {
	if n == nil {
		return nil, chk.Err("node is not available")
	}
	if len(args) == 0 || len(args) > 2 {
		return nil, chk.Err("node %d: args must be {disp|vel|accel} [dof]", n.Id)
	}
	var vals *[]float64
	var prefix string
	switch args[0] {
	case "disp":
		vals, prefix = &n.U, "u"
	case "vel":
		vals, prefix = &n.V, "v"
	case "accel":
		vals, prefix = &n.A, "a"
	default:
		return nil, response.ErrUnknown(io.Sf("node %d", n.Id), args)
	}
	if len(args) == 1 {
		return response.New(response.Numbered(prefix, len(*vals)), func() []float64 {
			return append([]float64{}, (*vals)...)
		}), nil
	}
	dof, err := strconv.Atoi(args[1])
	if err != nil || dof < 0 || dof >= len(*vals) {
		return nil, chk.Err("node %d: DOF %q is invalid", n.Id, args[1])
	}
	return response.Scalar(io.Sf("%s%d", prefix, dof+1), func() float64 { return (*vals)[dof] }), nil
}

// Record appends the current values
func (o *Recorder) Record(t float64) {
	vals := o.Resp.Values()
	if o.Labels == nil || len(o.Labels) != len(vals) {
		o.Labels = response.Numbered(o.Key, len(vals))
	}
	o.Rows = append(o.Rows, append([]float64{t}, vals...))
}

// Column returns the history of one component
func (o *Recorder) Column(idx int) (v []float64, err error) {
	v = make([]float64, len(o.Rows))
	for i, row := range o.Rows {
		if idx < 0 || idx+1 >= len(row) {
			return nil, chk.Err("recorder %q: component %d is not available", o.Key, idx)
		}
		v[i] = row[idx+1]
	}
	return
}

// Save writes a table with a header line
func (o *Recorder) Save(dirout, fn string) (err error) {
	if len(o.Rows) == 0 {
		return chk.Err("recorder %q has no records", o.Key)
	}
	var buf bytes.Buffer
	io.Ff(&buf, "%23s", "time")
	for _, l := range o.Labels {
		io.Ff(&buf, " %23s", l)
	}
	io.Ff(&buf, "\n")
	for _, row := range o.Rows {
		for j, v := range row {
			if j > 0 {
				io.Ff(&buf, " ")
			}
			io.Ff(&buf, "%23.15e", v)
		}
		io.Ff(&buf, "\n")
	}
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot save recorder %q:\n%v", o.Key, r)
		}
	}()
	io.WriteFileD(dirout, fn, &buf)
	return
}
