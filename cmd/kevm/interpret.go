package main

import (
	"github.com/spf13/cobra"

	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// interpretCmd runs the backend interpreter binary directly. Output is
// surfaced only when the interpreter reports a failure; the exit status is
// the interpreter's own.
var interpretCmd = &cobra.Command{
	Use:                "interpret [--backend (ocaml|llvm)] <pgm>",
	Short:              "Execute a program with the backend interpreter",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return route(cmd, toolchain.SubInterpret, args)
	},
}

func init() {
	rootCmd.AddCommand(interpretCmd)
}
