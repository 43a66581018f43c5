package main

import (
	"github.com/spf13/cobra"

	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// The klab family records a state log on the java backend and then opens
// the klab debugger over it.
var klabRunCmd = &cobra.Command{
	Use:                "klab-run <spec> [K args...]",
	Short:              "Run with state logging, then debug with klab",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return route(cmd, toolchain.SubKLabRun, args)
	},
}

var klabProveCmd = &cobra.Command{
	Use:                "klab-prove <spec> [K args...]",
	Short:              "Prove with state logging, then debug with klab",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return route(cmd, toolchain.SubKLabProve, args)
	},
}

func init() {
	rootCmd.AddCommand(klabRunCmd)
	rootCmd.AddCommand(klabProveCmd)
}
