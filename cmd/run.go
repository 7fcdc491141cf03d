// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"
	"path/filepath"

	"github.com/dct328/gosees/fem"
	"github.com/dct328/gosees/inp"
	"github.com/dct328/gosees/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// run flags
var (
	alias     string  // appended to the simulation key
	erasePrev bool    // erase previous results
	doPlot    bool    // save plots
	ascii     bool    // draw recorders on the terminal
	restart   bool    // start from the saved state
	saveState bool    // save the final state
	shape     float64 // scale factor of the deformed shape plot; 0 means no plot
)

var runCmd = &cobra.Command{
	Use:   "run <file.yaml>",
	Short: "Run a simulation and save the recorded results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSim(args[0])
	},
}

// runSim runs one simulation
func runSim(fn string) (err error) {

	// input
	sim, err := inp.ReadSim(fn, alias, false, dirOut == "")
	if err != nil {
		return
	}
	if dirOut != "" {
		sim.DirOut = dirOut
		if err = os.MkdirAll(dirOut, 0777); err != nil {
			return chk.Err("cannot create directory for output results (%s): %v", dirOut, err)
		}
	}

	// the saved state must survive when restarting
	if erasePrev && !restart {
		io.RemoveAll(io.Sf("%s/%s*", sim.DirOut, sim.Key))
	}
	if verbose {
		io.PfWhite("\ngosees v%s\n", Version)
		io.Pf("%s\n", sim.Data.Desc)
	}

	// allocate
	m, err := fem.NewMainSim(sim, verbose)
	if err != nil {
		return
	}
	if restart {
		if err = m.ReadState(); err != nil {
			return
		}
		logrus.WithField("time", m.Dom.TimeC).Info("restarting from saved state")
	}
	if err = out.Start(m); err != nil {
		return
	}

	// run and save whatever has been recorded
	errRun := m.Run()
	if len(out.Times) > 1 {
		if err = out.SaveAll(); err != nil {
			return
		}
	}
	if errRun != nil {
		return errRun
	}
	if saveState {
		if err = m.SaveState(); err != nil {
			return
		}
	}
	if doPlot {
		if err = out.PlotAll(); err != nil {
			return
		}
	}
	if shape > 0 {
		iy := 1
		if sim.Data.Ndim == 3 {
			iy = 2
		}
		fn := filepath.Join(sim.DirOut, io.Sf("%s-shape.png", sim.Key))
		if err = out.PlotDeformed(fn, shape, 0, iy); err != nil {
			return
		}
	}
	if ascii {
		for _, r := range out.Recorders {
			chart, err := out.Terminal(r.Key, 0)
			if err != nil {
				return err
			}
			io.Pf("\n%s\n", chart)
		}
	}
	return
}

func init() {
	runCmd.Flags().StringVar(&alias, "alias", "", "word appended to the simulation key")
	runCmd.Flags().BoolVar(&erasePrev, "erase", true, "erase previous results")
	runCmd.Flags().BoolVar(&doPlot, "plot", false, "save plots defined in the simulation file")
	runCmd.Flags().BoolVar(&ascii, "ascii", false, "draw the first component of each recorder on the terminal")
	runCmd.Flags().BoolVar(&restart, "restart", false, "start from the state saved by a previous run")
	runCmd.Flags().BoolVar(&saveState, "state", true, "save the final state")
	runCmd.Flags().Float64Var(&shape, "shape", 0, "save the deformed shape with displacements scaled by this factor (X-Y in 2D and X-Z in 3D)")
	rootCmd.AddCommand(runCmd)
}
