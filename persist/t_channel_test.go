// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package persist

import (
	"bytes"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_channel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("channel01. records in order")

	for _, enc := range []string{"gob", "json"} {
		var buf bytes.Buffer
		w := NewWriter(&buf, enc)
		require.NoError(tst, w.SendID(3, []int{1, 2, 3}))
		require.NoError(tst, w.SendVector(3, []float64{0.5, -1}))
		require.NoError(tst, w.SendVector(3, nil))

		r := NewReader(&buf, enc)
		ids := make([]int, 3)
		require.NoError(tst, r.RecvID(3, ids))
		chk.Ints(tst, enc+": ids", ids, []int{1, 2, 3})
		v := make([]float64, 2)
		require.NoError(tst, r.RecvVector(3, v))
		chk.Array(tst, enc+": vector", 1e-15, v, []float64{0.5, -1})
		require.NoError(tst, r.RecvVector(3, []float64{}))
	}
}

func Test_channel02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("channel02. mismatches")

	var buf bytes.Buffer
	w := NewWriter(&buf, "gob")
	require.NoError(tst, w.SendVector(1, []float64{1, 2}))
	require.NoError(tst, w.SendVector(1, []float64{1, 2}))
	require.NoError(tst, w.SendVector(2, []float64{1}))
	require.NoError(tst, w.SendID(1, []int{1}))

	r := NewReader(&buf, "gob")
	assert.Error(tst, r.RecvVector(1, make([]float64, 3)), "size")
	assert.Error(tst, r.RecvID(1, make([]int, 2)), "kind")
	assert.Error(tst, r.RecvVector(1, make([]float64, 1)), "commit tag")
	assert.NoError(tst, r.RecvID(1, make([]int, 1)))
	assert.Error(tst, r.RecvID(1, make([]int, 1)), "end of stream")

	// wrong direction
	assert.Error(tst, w.RecvID(1, nil))
	assert.Error(tst, r.SendVector(1, nil))
	assert.Error(tst, r.SendID(1, nil))
}
