// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/guptarohit/asciigraph"
)

// TermHeight and TermWidth hold the size of charts drawn on the terminal
var (
	TermHeight = 12
	TermWidth  = 70
)

// Terminal returns a text chart with the history of one recorded component
func Terminal(key string, idx int) (chart string, err error) {
	v, err := Get(key, idx)
	if err != nil {
		return
	}
	return asciigraph.Plot(v, asciigraph.Height(TermHeight), asciigraph.Width(TermWidth), asciigraph.Caption(GetLabel(key, idx))), nil
}
