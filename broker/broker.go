// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package broker allocates blank models given the class tags written by SendSelf
package broker

import (
	"github.com/dct328/gosees/mdl/frict"
	"github.com/dct328/gosees/mdl/uniax"
	"github.com/dct328/gosees/sec"

	"github.com/cpmech/gosl/chk"
)

// Broker allocates blank uniaxial materials, friction models and sections
type Broker struct{}

// Default is the broker used when receiving models
var Default Broker

// NewUniaxialMaterial returns a blank uniaxial material
func (o Broker) NewUniaxialMaterial(classTag int) (uniax.Model, error) {
	return uniax.NewByClassTag(classTag)
}

// NewFrictionModel returns a blank friction model
func (o Broker) NewFrictionModel(classTag int) (frict.Model, error) {
	return frict.NewByClassTag(classTag)
}

// NewSection returns a blank section
func (o Broker) NewSection(classTag int) (sec.Section, error) {
	switch classTag {
	case sec.ClassFiberSection3d:
		return new(sec.FiberSection3d), nil
	}
	return nil, chk.Err("there is no section with class tag %d", classTag)
}
