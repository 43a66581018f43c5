package main

import (
	"github.com/spf13/cobra"

	"github.com/iamchrissmith/evm-semantics/internal/cli"
	"github.com/iamchrissmith/evm-semantics/internal/config"
	"github.com/iamchrissmith/evm-semantics/internal/dispatch"
	"github.com/iamchrissmith/evm-semantics/internal/logging"
	"github.com/iamchrissmith/evm-semantics/internal/observability"
	"github.com/iamchrissmith/evm-semantics/internal/presentation/usage"
	"github.com/iamchrissmith/evm-semantics/pkg/adapters/process"
	"github.com/iamchrissmith/evm-semantics/pkg/toolchain"
)

// Shared wiring built once in setup before any subcommand runs.
var (
	app     *dispatch.Dispatcher
	janitor = cli.NewJanitor()
)

var rootCmd = &cobra.Command{
	Use:   "kevm",
	Short: "Dispatch to the EVM semantics toolchain backends",
	Long: `kevm routes run, kast, interpret, prove and klab invocations to the
ocaml, java, llvm and haskell backends of the K EVM semantics toolchain.`,
	// Unknown subcommands fall through here and get the usage text with a
	// success status: asking for something unroutable is a help request.
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		usage.Print(cmd.OutOrStdout())
		return nil
	},
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// setup builds the configuration and the dispatcher. Environment reads
// happen here, once; everything downstream works from the Config value.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Debug)

	registry := process.DefaultRegistry()
	overrides, err := process.LoadTools(cfg.ToolsFile)
	if err != nil {
		return err
	}
	registry.Override(overrides)

	app = dispatch.New(cfg,
		dispatch.WithLogger(logger),
		dispatch.WithRegistry(registry),
		dispatch.WithJanitor(janitor),
		dispatch.WithMetrics(observability.NewRecorder(cfg.MetricsDir, logger)),
	)
	return nil
}

// route hands the raw argument list to the router. Subcommands disable
// cobra flag parsing: the positional --backend convention and the verbatim
// pass-through of tool arguments belong to the router.
func route(cmd *cobra.Command, sub toolchain.Subcommand, args []string) error {
	return app.Dispatch(cmd.Context(), sub, args)
}
