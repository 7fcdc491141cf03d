// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package response implements handles to query named quantities of models and elements
package response

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Response returns the current values of a recorded quantity
type Response interface {
	Values() []float64 // current values
	Labels() []string  // one label per value (may be nil when the size varies)
}

// Func implements Response with a callback
type Func struct {
	Keys []string
	Fcn  func() []float64
}

// Values returns the current values
func (o *Func) Values() []float64 { return o.Fcn() }

// Labels returns the labels
func (o *Func) Labels() []string { return o.Keys }

// New returns a new response handle
func New(labels []string, fcn func() []float64) Response {
	return &Func{Keys: labels, Fcn: fcn}
}

// Scalar returns a handle to a single value
func Scalar(label string, fcn func() float64) Response {
	return &Func{Keys: []string{label}, Fcn: func() []float64 { return []float64{fcn()} }}
}

// Match tells whether key is one of the given names
func Match(key string, names ...string) bool {
	for _, n := range names {
		if key == n {
			return true
		}
	}
	return false
}

// ErrUnknown returns the error for unavailable responses
func ErrUnknown(owner string, args []string) error {
	return chk.Err("%s: response %q is not available", owner, strings.Join(args, " "))
}

// Numbered builds labels such as "qb1", "qb2", ...
func Numbered(prefix string, n int) (labels []string) {
	labels = make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = io.Sf("%s%d", prefix, i+1)
	}
	return
}
