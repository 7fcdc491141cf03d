// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/dct328/gosees/inp"

	"github.com/cpmech/gosl/chk"
)

// InfoFuncType defines a function that returns information about a certain element type
type InfoFuncType func(edat *inp.ElemData, ndim int) *Info

// AllocatorType defines a function that allocates an element
type AllocatorType func(edat *inp.ElemData, lib *Library) (Element, error)

// GetInfo returns information about elements from factory
func GetInfo(edat *inp.ElemData, ndim int) (info *Info, err error) {
	fcn, ok := infofactory[edat.Type]
	if !ok {
		err = chk.Err("cannot get info for element {type=%q, tag=%d}", edat.Type, edat.Tag)
		return
	}
	info = fcn(edat, ndim)
	if info == nil {
		err = chk.Err("info for element {type=%q, tag=%d} is not available in %dD", edat.Type, edat.Tag, ndim)
	}
	return
}

// New returns a new element from factory
func New(edat *inp.ElemData, lib *Library) (ele Element, err error) {
	fcn, ok := allocators[edat.Type]
	if !ok {
		err = chk.Err("cannot get allocator for element {type=%q, tag=%d}", edat.Type, edat.Tag)
		return
	}
	ele, err = fcn(edat, lib)
	if err != nil {
		err = chk.Err("cannot allocate element {type=%q, tag=%d}:\n%v", edat.Type, edat.Tag, err)
	}
	return
}

// SetInfoFunc sets a new callback function to return information about an element
func SetInfoFunc(elementName string, fcn InfoFuncType) {
	if _, ok := infofactory[elementName]; ok {
		chk.Panic("cannot set information function for %q because element name exists already", elementName)
	}
	infofactory[elementName] = fcn
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(elementName string, fcn AllocatorType) {
	if _, ok := allocators[elementName]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", elementName)
	}
	allocators[elementName] = fcn
}

// GetAllocator gets callback function to allocate an element
func GetAllocator(elementName string) AllocatorType {
	if fcn, ok := allocators[elementName]; ok {
		return fcn
	}
	chk.Panic("cannot get allocator function for element %q", elementName)
	return nil
}

// infofactory holds all functions that return information about an element
var infofactory = make(map[string]InfoFuncType)

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
