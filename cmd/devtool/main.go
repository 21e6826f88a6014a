// Package main is the entry point for the devtool helper binary. It carries
// the two development operations of the project: environment setup and the
// package build. The subcommands are independent and share no state.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sanbobsan/weather-cli/internal/adapters/logger"
	"github.com/sanbobsan/weather-cli/internal/dev"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := logger.New()

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "devtool",
		Short:         "Инструменты разработки wthr",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newBuildCmd())

	return rootCmd
}

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Создать окружение разработки и установить зависимости",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setup := dev.NewSetup(dev.ExecRunner{}, cmd.OutOrStdout())
			return setup.Run(cmd.Context())
		},
	}
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Собрать дистрибутив в dist/",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			packager := dev.NewPackager(dev.ExecRunner{}, cmd.OutOrStdout())
			return packager.Run(cmd.Context())
		},
	}
}
