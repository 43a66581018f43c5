package main

import (
	"fmt"

	"github.com/spf13/cobra"

	kevm "github.com/iamchrissmith/evm-semantics"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of kevm",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "kevm version %s\n", kevm.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
