package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sanbobsan/weather-cli/internal/render"
)

func (c *CLI) newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [location]",
		Short: "Сохранить место в конфиг, чтобы автоматически использовать его для получения погоды",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location := ""
			if len(args) > 0 {
				location = args[0]
			}

			if location == "" {
				prompted, err := promptLocation(cmd)
				if err != nil {
					return err
				}
				location = prompted
			}

			if err := c.app.SetDefaultLocation(location); err != nil {
				return err
			}

			msg := fmt.Sprintf("Ваше место: %q сохранено в конфиг", location)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Message(msg))
			return nil
		},
	}
}
