// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version holds the version of the program
const Version = "0.1.0"

// flags
var (
	logLevel string // log verbosity level
	verbose  bool   // show messages
	dirOut   string // overrides the output directory of simulation files
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "gosees",
	Short: "Nonlinear finite element analysis of structures with friction bearings",
	Long: `gosees - nonlinear structural analysis

Runs static and dynamic analyses of models with flat sliding bearings,
zero-length springs and elastic beams described in YAML files. Results
are saved as text tables and plots.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return chk.Err("invalid log level %q", logLevel)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// Execute runs the root command
func Execute() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	rootCmd.PersistentFlags().StringVar(&dirOut, "out", "", "output directory; overrides dirout in the simulation file")
}
