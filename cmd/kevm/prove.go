package main

import (
	"github.com/spf13/cobra"

	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// proveCmd checks a specification with the backend prover.
var proveCmd = &cobra.Command{
	Use:                "prove [--backend (java|haskell)] <spec> [K args...]",
	Short:              "Prove a specification against the VERIFICATION module",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return route(cmd, toolchain.SubProve, args)
	},
}

func init() {
	rootCmd.AddCommand(proveCmd)
}
