package main

import (
	"github.com/spf13/cobra"

	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// kastCmd converts a program to a serialized form (kast or kore).
var kastCmd = &cobra.Command{
	Use:                "kast [--backend (ocaml|java|llvm|haskell)] <pgm> [output-mode] [K args...]",
	Short:              "Convert a program to kast/kore format",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return route(cmd, toolchain.SubKast, args)
	},
}

func init() {
	rootCmd.AddCommand(kastCmd)
}
