// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Integration defines strategies providing fiber locations and weights (areas)
type Integration interface {
	NumFibers() int
	FiberLocations(n int, y, z []float64) // fills y and z with n locations
	FiberWeights(n int, w []float64)      // fills w with n weights
	SetParameter(name string, v float64) error
	GetCopy() Integration
}

// RectPatch divides the rectangle [Ya,Yb]×[Za,Zb] into Ny×Nz cells with one fiber at each centre
type RectPatch struct {
	Ya, Za float64 // first corner
	Yb, Zb float64 // opposite corner
	Ny, Nz int     // number of divisions
}

// NewRectPatch returns a new rectangular patch
func NewRectPatch(ya, za, yb, zb float64, ny, nz int) (o *RectPatch, err error) {
	if ny < 1 || nz < 1 {
		return nil, chk.Err("rectangular patch needs at least one division along each direction. ny=%d nz=%d", ny, nz)
	}
	if ya == yb || za == zb {
		return nil, chk.Err("rectangular patch has zero area: (%g,%g)-(%g,%g)", ya, za, yb, zb)
	}
	return &RectPatch{ya, za, yb, zb, ny, nz}, nil
}

// NumFibers returns Ny×Nz
func (o *RectPatch) NumFibers() int { return o.Ny * o.Nz }

// FiberLocations fills the cell centres; fiber index k = i⋅Nz + j
func (o *RectPatch) FiberLocations(n int, y, z []float64) {
	dy := (o.Yb - o.Ya) / float64(o.Ny)
	dz := (o.Zb - o.Za) / float64(o.Nz)
	k := 0
	for i := 0; i < o.Ny && k < n; i++ {
		for j := 0; j < o.Nz && k < n; j++ {
			y[k] = o.Ya + (float64(i)+0.5)*dy
			z[k] = o.Za + (float64(j)+0.5)*dz
			k++
		}
	}
}

// FiberWeights fills the cell areas
func (o *RectPatch) FiberWeights(n int, w []float64) {
	a := (o.Yb - o.Ya) * (o.Zb - o.Za) / float64(o.Ny*o.Nz)
	if a < 0 {
		a = -a
	}
	for k := 0; k < n; k++ {
		w[k] = a
	}
}

// SetParameter changes one of the corners coordinates
func (o *RectPatch) SetParameter(name string, v float64) error {
	switch name {
	case "ya":
		o.Ya = v
	case "za":
		o.Za = v
	case "yb":
		o.Yb = v
	case "zb":
		o.Zb = v
	default:
		return chk.Err("rectangular patch: cannot set parameter %q", name)
	}
	return nil
}

// GetCopy returns a copy
func (o *RectPatch) GetCopy() Integration {
	c := *o
	return &c
}

// String returns a summary
func (o *RectPatch) String() string {
	return io.Sf("RectPatch (%g,%g)-(%g,%g) %dx%d", o.Ya, o.Za, o.Yb, o.Zb, o.Ny, o.Nz)
}

// Points holds explicit fiber locations and areas
type Points struct {
	Y, Z, A []float64
}

// NewPoints returns a new set of points
func NewPoints(y, z, a []float64) (o *Points, err error) {
	if len(y) != len(z) || len(y) != len(a) {
		return nil, chk.Err("fiber points need the same number of y, z and area values. %d != %d != %d", len(y), len(z), len(a))
	}
	return &Points{y, z, a}, nil
}

// NumFibers returns the number of points
func (o *Points) NumFibers() int { return len(o.A) }

// FiberLocations copies the locations
func (o *Points) FiberLocations(n int, y, z []float64) {
	copy(y[:n], o.Y)
	copy(z[:n], o.Z)
}

// FiberWeights copies the areas
func (o *Points) FiberWeights(n int, w []float64) {
	copy(w[:n], o.A)
}

// SetParameter is not available for points
func (o *Points) SetParameter(name string, v float64) error {
	return chk.Err("fiber points: cannot set parameter %q", name)
}

// GetCopy returns a deep copy
func (o *Points) GetCopy() Integration {
	return &Points{
		Y: append([]float64{}, o.Y...),
		Z: append([]float64{}, o.Z...),
		A: append([]float64{}, o.A...),
	}
}
