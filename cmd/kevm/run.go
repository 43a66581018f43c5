package main

import (
	"github.com/spf13/cobra"

	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// runCmd executes a program directly via the backend's krun.
var runCmd = &cobra.Command{
	Use:                "run [--backend (ocaml|java|llvm|haskell)] <pgm> [K args...]",
	Short:              "Execute a program via krun",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return route(cmd, toolchain.SubRun, args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
