// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// NewFunc allocates a t-x function from the gosl database of functions. An unknown
// name or missing parameter is returned as an error
func NewFunc(name string, prms Prms) (f dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			f, err = nil, chk.Err("cannot allocate function %q:\n%v", name, r)
		}
	}()
	return dbf.New(name, prms.Dbf()), nil
}

// ReadFile reads all bytes of a file
func ReadFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("%v", r)
		}
	}()
	return io.ReadFile(fn), nil
}

// SpectrumData holds frequency spectrum data
type SpectrumData struct {
	Type string `yaml:"type"` // type of spectrum; e.g. "narrow-band"
	Prms Prms   `yaml:"prms"` // parameters; e.g. fmin, fmax, amp
}

// SeriesData holds time series data
type SeriesData struct {
	Tag      int           `yaml:"tag"`      // tag of series
	Type     string        `yaml:"type"`     // type; e.g. "triangle", "constant", "linear", "spectral", or a gosl function name such as "rmp"
	Prms     Prms          `yaml:"prms"`     // parameters
	Spectrum *SpectrumData `yaml:"spectrum"` // spectrum of "spectral" series
}

// LoadData holds a nodal load
type LoadData struct {
	Node int       `yaml:"node"` // node tag
	Vals []float64 `yaml:"vals"` // reference values; one per DOF
}

// PatternData holds load patterns
//  plain   -- nodal loads times series factor
//  uniform -- ground acceleration along Dof times series factor
type PatternData struct {
	Tag    int         `yaml:"tag"`    // tag of pattern
	Type   string      `yaml:"type"`   // "plain" or "uniform"
	Series int         `yaml:"series"` // tag of time series
	Loads  []*LoadData `yaml:"loads"`  // nodal loads (plain)
	Dof    int         `yaml:"dof"`    // direction of ground motion (uniform); 0, 1 or 2
}

// SeriesSet holds all series
type SeriesSet []*SeriesData

// Get returns series by tag
//  Note: returns nil if not found
func (o SeriesSet) Get(tag int) *SeriesData {
	for _, s := range o {
		if s.Tag == tag {
			return s
		}
	}
	return nil
}

// check checks patterns against the available series
func (o *PatternData) check(series SeriesSet) (err error) {
	if series.Get(o.Series) == nil {
		return chk.Err("pattern %d: cannot find series %d", o.Tag, o.Series)
	}
	switch o.Type {
	case "plain", "":
		if len(o.Loads) == 0 {
			return chk.Err("pattern %d: plain pattern needs at least one nodal load", o.Tag)
		}
	case "uniform":
		if o.Dof < 0 || o.Dof > 2 {
			return chk.Err("pattern %d: direction of ground motion must be 0, 1 or 2. %d is invalid", o.Tag, o.Dof)
		}
	default:
		return chk.Err("pattern %d: type %q is invalid; options are \"plain\" and \"uniform\"", o.Tag, o.Type)
	}
	return
}
