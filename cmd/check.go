// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/dct328/gosees/fem"
	"github.com/dct328/gosees/inp"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.yaml>",
	Short: "Read a simulation file and allocate the domain without running",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sim, err := inp.ReadSim(args[0], "", false, false)
		if err != nil {
			return err
		}
		m, err := fem.NewMainSim(sim, verbose)
		if err != nil {
			return err
		}
		io.Pf("%s: %d nodes, %d elements, %d equations\n", sim.Key, len(m.Dom.Nodes), len(m.Dom.Elems), m.Dom.Neq)
		io.Pf("%v\n", m.Int)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
