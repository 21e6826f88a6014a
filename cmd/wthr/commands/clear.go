package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sanbobsan/weather-cli/internal/app"
	"github.com/sanbobsan/weather-cli/internal/render"
)

func (c *CLI) newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Очистить конфиг и кеш",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clearConfig, _ := cmd.Flags().GetBool("config")
			clearCache, _ := cmd.Flags().GetBool("cache")

			opts := app.ClearOptions{
				Config: clearConfig,
				Cache:  clearCache,
			}

			var msg string
			if !clearConfig && !clearCache {
				// Default behavior: clear everything.
				opts.Config = true
				opts.Cache = true
				msg = "Конфиг и кеш удалены"
			} else {
				msg = "Удалено:"
				if clearCache {
					msg += " кеш"
				}
				if clearConfig {
					msg += " конфиг"
				}
			}

			if err := c.app.Clear(opts); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Message(msg))
			return nil
		},
	}

	cmd.Flags().Bool("config", false, "Очистить только конфиг")
	cmd.Flags().Bool("cache", false, "Очистить только кеш")

	return cmd
}
