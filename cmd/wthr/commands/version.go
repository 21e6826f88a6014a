package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sanbobsan/weather-cli/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию приложения",
		Run: func(cmd *cobra.Command, _ []string) {
			cmdo := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(cmdo, "wthr version %s (commit: %s, date: %s)\n", build.Version, build.Commit, build.Date)
		},
	}
}
