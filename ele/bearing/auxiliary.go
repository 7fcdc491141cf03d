// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bearing

import (
	"strconv"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// mulVec computes res = A⋅v
func mulVec(res []float64, A mat.Matrix, v []float64) {
	r := mat.NewVecDense(len(res), res)
	r.MulVec(A, mat.NewVecDense(len(v), v))
}

// labels12 returns the labels of 12 global forces of a 3D frame element: translations
// are labelled with ft and rotations with fr
func labels12(ft, fr string) []string {
	res := make([]string, 0, 12)
	for n := 1; n <= 2; n++ {
		for _, d := range []string{"x", "y", "z"} {
			res = append(res, io.Sf("%s%s_%d", ft, d, n))
		}
		for _, d := range []string{"x", "y", "z"} {
			res = append(res, io.Sf("%s%s_%d", fr, d, n))
		}
	}
	return res
}

// atoi converts a string to int
func atoi(s string) (int, error) { return strconv.Atoi(s) }
