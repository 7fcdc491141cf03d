// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/dct328/gosees/ele/beam"
	"github.com/dct328/gosees/ele/bearing"
	"github.com/dct328/gosees/ele/zerolen"
)

// enforce loading of all elements
func init() {
	_ = beam.ElasticBeam2d{}
	_ = bearing.FlatSliderSimple3d{}
	_ = bearing.FlatSlider2d{}
	_ = zerolen.ZeroLength{}
}
