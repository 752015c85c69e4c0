package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/brunoribeiro127/envcheck/internal"
	"github.com/brunoribeiro127/envcheck/internal/envcheck"
	"github.com/brunoribeiro127/envcheck/internal/system"
)

func main() {
	slog.SetDefault(internal.NewLogger(os.Stderr, slog.LevelWarn))

	runtime := system.NewRuntime()

	inspector := envcheck.NewInspector(
		system.NewBuildInfo(),
		system.NewEnvironment(),
		system.NewFileSystem(),
		runtime,
		os.Stderr,
		os.Stdout,
	)

	if err := newRootCmd(inspector, runtime).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(inspector *envcheck.Inspector, runtime system.Runtime) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "envcheck",
		Short:         "envcheck - report vendor environment variables and Shopify credentials",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				slog.SetDefault(internal.NewLogger(os.Stderr, slog.LevelDebug))
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			return inspector.ReportEnvironment()
		},
	}

	cmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Print debug logs to standard error",
	)

	cmd.AddCommand(newDebugCmd(inspector, runtime))
	cmd.AddCommand(newVersionCmd(inspector))

	return cmd
}

func newDebugCmd(inspector *envcheck.Inspector, runtime system.Runtime) *cobra.Command {
	var parallelism int

	cmd := &cobra.Command{
		Use:           "debug [path...]",
		Short:         "Print CI debug info and check that the given paths exist",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return inspector.DebugEnvironment(parallelism, args...)
		},
	}

	cmd.Flags().IntVarP(
		&parallelism,
		"parallelism",
		"p",
		runtime.NumCPU(),
		"Number of paths checked in parallel",
	)

	return cmd
}

func newVersionCmd(inspector *envcheck.Inspector) *cobra.Command {
	var short bool

	var cmd = &cobra.Command{
		Use:           "version",
		Short:         "Shows the package version",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			if short {
				return inspector.PrintShortVersion()
			}

			return inspector.PrintVersion()
		},
	}

	cmd.Flags().BoolVarP(
		&short,
		"short",
		"s",
		false,
		"Print short version info",
	)

	return cmd
}
