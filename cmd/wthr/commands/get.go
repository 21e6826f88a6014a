package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sanbobsan/weather-cli/internal/render"
)

func (c *CLI) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Проверить текущее место в конфиге",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			location, err := c.app.DefaultLocation()
			if err != nil {
				return err
			}

			msg := "Ваше место не указано"
			if location != "" {
				msg = "Ваше место: " + location
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Message(msg))
			return nil
		},
	}
}
